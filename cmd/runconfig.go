package main

import (
	"github.com/urfave/cli"

	"github.com/stackship/stackship-cli/config"
)

// runConfig is the resolved configuration of a single run. It is built once
// per command and passed by value; nothing mutates it afterwards.
type runConfig struct {
	Region       string
	StackName    string
	TemplateFile string
	ParamsFile   string
	Profile      string
	Validate     bool
	RunPipeline  bool
}

// resolveConfig merges flag values (which the middleware has already backed
// with environment and preference-file defaults) with the hardcoded
// fallbacks. Last flag occurrence wins, per the flag package.
func resolveConfig(cliCtx *cli.Context) runConfig {
	cfg := runConfig{
		Region:       cliCtx.String("region"),
		StackName:    cliCtx.String("stack-name"),
		TemplateFile: cliCtx.String("template-file"),
		ParamsFile:   cliCtx.String("params-file"),
		Profile:      cliCtx.String("profile"),
		Validate:     !cliCtx.Bool("no-validate"),
		RunPipeline:  cliCtx.Bool("run-pipeline"),
	}

	if cfg.Region == "" {
		cfg.Region = config.DefaultRegion
	}
	if cfg.StackName == "" {
		cfg.StackName = defaultStackName
	}
	if cfg.TemplateFile == "" {
		cfg.TemplateFile = defaultTemplateFile
	}
	if cfg.ParamsFile == "" {
		cfg.ParamsFile = defaultParamsFile
	}

	return cfg
}
