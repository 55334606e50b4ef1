package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/juju/ansiterm"
	"github.com/urfave/cli"

	"github.com/stackship/stackship-cli/api"
	"github.com/stackship/stackship-cli/clients"
	"github.com/stackship/stackship-cli/color"
	"github.com/stackship/stackship-cli/errs"
	"github.com/stackship/stackship-cli/middleware"
	"github.com/stackship/stackship-cli/stack"
)

func init() {
	outputsCmd := cli.Command{
		Name:      "outputs",
		ArgsUsage: "[stack-name]",
		Usage:     "Print the outputs of a deployed pipeline stack",
		Category:  "STACK",
		Action: middleware.Chain(middleware.LoadDirPrefs, middleware.LoadRcPrefs,
			outputs),
		Flags: []cli.Flag{
			regionFlag(),
			stackNameFlag(),
			profileFlag(),
		},
	}

	cmds = append(cmds, outputsCmd)
}

func outputs(cliCtx *cli.Context) error {
	ctx := context.Background()

	if err := maxOptionalArgsLength(cliCtx, 1); err != nil {
		return err
	}

	cfg := resolveConfig(cliCtx)

	name := cliCtx.Args().First()
	if name == "" {
		name = cfg.StackName
	}

	sess, err := clients.NewSession(cfg.Region, cfg.Profile)
	if err != nil {
		return errs.NewErrorExitError("Could not create provider session", err)
	}

	client := api.New(sess, api.CloudFormation)

	outs, err := stack.Outputs(ctx, client.CloudFormation, name)
	if err != nil {
		return errs.NewErrorExitError("Could not fetch stack outputs", err)
	}

	printOutputs(os.Stdout, name, outs)
	return nil
}

func printOutputs(out io.Writer, name string, outputs []stack.Output) {
	if len(outputs) == 0 {
		fmt.Fprintln(out, color.Faint("Stack "+name+" has no outputs to show"))
		return
	}

	w := ansiterm.NewTabWriter(out, 0, 0, 8, ' ', 0)

	w.SetStyle(ansiterm.Bold)
	fmt.Fprintf(w, "%s\n", name)
	w.ClearStyle(ansiterm.Bold)

	w.SetForeground(ansiterm.Gray)
	fmt.Fprintln(w, "Key\tValue\tDescription")
	w.Reset()

	for _, o := range outputs {
		fmt.Fprintf(w, "%s\t%s\t%s\n", o.Key, o.Value, o.Description)
	}

	w.Flush()
}
