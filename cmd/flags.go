package main

import (
	"github.com/urfave/cli"
)

// Hardcoded fallbacks, applied after flags, the environment, and the
// .stackship.yml / ~/.stackshiprc preferences have had their say.
const (
	defaultStackName    = "pipeline-stack"
	defaultTemplateFile = "pipeline.yaml"
	defaultParamsFile   = "pipeline-params.json"
)

func regionFlag() cli.Flag {
	return cli.StringFlag{
		Name:   "region, r",
		Usage:  "Region to deploy the stack into.",
		EnvVar: "AWS_DEFAULT_REGION",
	}
}

func profileFlag() cli.Flag {
	return cli.StringFlag{
		Name:  "profile",
		Usage: "Named credentials profile to use.",
	}
}

func stackNameFlag() cli.Flag {
	return cli.StringFlag{
		Name:  "stack-name, n",
		Usage: "Name of the pipeline stack.",
	}
}

func templateFileFlag() cli.Flag {
	return cli.StringFlag{
		Name:  "template-file, t",
		Usage: "Path to the stack template.",
	}
}

func paramsFileFlag() cli.Flag {
	return cli.StringFlag{
		Name:  "params-file, p",
		Usage: "Path to the JSON parameters and tags file.",
	}
}

func noValidateFlag() cli.Flag {
	return cli.BoolFlag{
		Name:  "no-validate",
		Usage: "Skip the remote template validation step.",
	}
}

func runPipelineFlag() cli.Flag {
	return cli.BoolFlag{
		Name:  "run-pipeline",
		Usage: "Start a pipeline execution once the stack has settled.",
	}
}
