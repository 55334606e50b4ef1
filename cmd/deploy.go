package main

import (
	"context"
	"fmt"
	"os"

	"github.com/aws/aws-sdk-go/service/cloudformation/cloudformationiface"
	"github.com/urfave/cli"

	"github.com/stackship/stackship-cli/api"
	"github.com/stackship/stackship-cli/clients"
	"github.com/stackship/stackship-cli/color"
	"github.com/stackship/stackship-cli/errs"
	"github.com/stackship/stackship-cli/middleware"
	"github.com/stackship/stackship-cli/params"
	"github.com/stackship/stackship-cli/pipeline"
	"github.com/stackship/stackship-cli/preflight"
	"github.com/stackship/stackship-cli/progress"
	"github.com/stackship/stackship-cli/report"
	"github.com/stackship/stackship-cli/stack"
)

func init() {
	deployCmd := cli.Command{
		Name:     "deploy",
		Usage:    "Create or update the pipeline stack",
		Category: "STACK",
		Action: middleware.Chain(middleware.LoadDirPrefs, middleware.LoadRcPrefs,
			deploy),
		Flags: []cli.Flag{
			regionFlag(),
			stackNameFlag(),
			templateFileFlag(),
			paramsFileFlag(),
			profileFlag(),
			noValidateFlag(),
			runPipelineFlag(),
		},
	}

	cmds = append(cmds, deployCmd)
}

func deploy(cliCtx *cli.Context) error {
	ctx := context.Background()

	cfg := resolveConfig(cliCtx)

	// Precondition checks. The first missing prerequisite aborts the run
	// before any provider call is made.
	if _, err := os.Stat(cfg.TemplateFile); err != nil {
		return errs.NewFileNotFoundError("Template file", cfg.TemplateFile)
	}

	if _, err := os.Stat(cfg.ParamsFile); err != nil {
		return errs.NewFileNotFoundError("Parameters file", cfg.ParamsFile)
	}

	templateBody, err := os.ReadFile(cfg.TemplateFile)
	if err != nil {
		return errs.NewErrorExitError("Could not read template file", err)
	}

	p, err := params.Load(cfg.ParamsFile)
	if err != nil {
		return errs.NewErrorExitError("Could not parse parameters file", err)
	}

	sess, err := clients.NewSession(cfg.Region, cfg.Profile)
	if err != nil {
		return errs.NewErrorExitError("Could not create provider session", err)
	}

	client := api.New(sess, api.CloudFormation, api.S3, api.CodePipeline, api.Connections)

	if err := validateTemplate(ctx, cfg, client.CloudFormation, string(templateBody)); err != nil {
		return err
	}

	var rep report.Report

	progress.Step("Running preflight checks")
	record(&rep, preflight.CheckBucket(ctx, client.S3, p.ArtifactBucket()))
	record(&rep, preflight.CheckConnection(ctx, client.Connections, p.ConnectionArn()))

	progress.Step("Deploying stack %s with %d parameter overrides", cfg.StackName, len(p.Overrides()))
	record(&rep, stack.Deploy(ctx, client.CloudFormation, cfg.StackName,
		string(templateBody), p.StackParameters()))

	record(&rep, stack.ApplyTags(ctx, client.CloudFormation, cfg.StackName,
		p.StackParameters(), p.StackTags()))

	progress.SpinStart("Waiting for stack " + cfg.StackName + " to settle")
	waitRes := stack.WaitSettle(ctx, client.CloudFormation, cfg.StackName)
	progress.SpinStop()
	record(&rep, waitRes)

	outputs, err := stack.Outputs(ctx, client.CloudFormation, cfg.StackName)
	if err != nil {
		record(&rep, report.WarnResult("outputs", "no outputs to show: "+err.Error()))
	} else {
		printOutputs(os.Stdout, cfg.StackName, outputs)
		record(&rep, report.OKResult("outputs", fmt.Sprintf("%d outputs", len(outputs))))
	}

	if cfg.RunPipeline {
		record(&rep, triggerPipeline(ctx, client, p.PipelineName()))
	}

	fmt.Println()
	rep.Print(os.Stdout)

	return nil
}

// validateTemplate performs the remote template check. The --no-validate
// flag skips it entirely; a validation failure is fatal.
func validateTemplate(ctx context.Context, cfg runConfig, cfn cloudformationiface.CloudFormationAPI, body string) error {
	if !cfg.Validate {
		return nil
	}

	progress.Step("Validating template %s", cfg.TemplateFile)
	if err := stack.Validate(ctx, cfn, body); err != nil {
		return cli.NewExitError("Template validation failed: "+err.Error(), errs.CodePrereq)
	}

	return nil
}

func triggerPipeline(ctx context.Context, client *api.API, name string) report.Result {
	const step = "pipeline"

	if name == "" {
		fmt.Println(color.Faint("No PipelineName parameter found; skipping pipeline start"))
		return report.SkippedResult(step, "no PipelineName parameter")
	}

	id, err := pipeline.Start(ctx, client.CodePipeline, name)
	if err != nil {
		return report.WarnResult(step, fmt.Sprintf("could not start %s: %s", name, err))
	}

	fmt.Printf("Started execution %s of pipeline %s\n", id, name)
	return report.OKResult(step, "execution "+id)
}

// record adds a step outcome to the run report, echoing warnings as they
// happen so the operator sees them in context.
func record(rep *report.Report, res report.Result) {
	if res.Status == report.Warn {
		progress.Warnf("%s: %s", res.Step, res.Detail)
	}
	rep.Add(res)
}
