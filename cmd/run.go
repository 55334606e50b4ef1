package main

import (
	"context"
	"fmt"

	"github.com/urfave/cli"

	"github.com/stackship/stackship-cli/api"
	"github.com/stackship/stackship-cli/clients"
	"github.com/stackship/stackship-cli/errs"
	"github.com/stackship/stackship-cli/middleware"
	"github.com/stackship/stackship-cli/params"
	"github.com/stackship/stackship-cli/pipeline"
)

func init() {
	runCmd := cli.Command{
		Name:      "run",
		ArgsUsage: "[pipeline-name]",
		Usage:     "Start an execution of the deployed pipeline",
		Category:  "PIPELINE",
		Action: middleware.Chain(middleware.LoadDirPrefs, middleware.LoadRcPrefs,
			run),
		Flags: []cli.Flag{
			regionFlag(),
			paramsFileFlag(),
			profileFlag(),
		},
	}

	cmds = append(cmds, runCmd)
}

func run(cliCtx *cli.Context) error {
	ctx := context.Background()

	if err := maxOptionalArgsLength(cliCtx, 1); err != nil {
		return err
	}

	cfg := resolveConfig(cliCtx)

	name := cliCtx.Args().First()
	if name == "" {
		// Fall back to the PipelineName parameter of the params file.
		p, err := params.Load(cfg.ParamsFile)
		if err == nil {
			name = p.PipelineName()
		}
	}

	if name == "" {
		return errs.NewPrereqExitError(
			"No pipeline name given and no PipelineName parameter found")
	}

	sess, err := clients.NewSession(cfg.Region, cfg.Profile)
	if err != nil {
		return errs.NewErrorExitError("Could not create provider session", err)
	}

	client := api.New(sess, api.CodePipeline)

	id, err := pipeline.Start(ctx, client.CodePipeline, name)
	if err != nil {
		return errs.NewErrorExitError("Could not start pipeline "+name, err)
	}

	fmt.Printf("Started execution %s of pipeline %s\n", id, name)
	return nil
}
