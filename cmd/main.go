package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli"

	"github.com/stackship/stackship-cli/clients"
	"github.com/stackship/stackship-cli/errs"
)

var cmds []cli.Command

var version = "0.3.0"

func newApp() *cli.App {
	app := cli.NewApp()
	app.Name = "stackship"
	app.HelpName = "stackship"
	app.Usage = "Deploy and operate the stack hosting a continuous-delivery pipeline."
	app.Version = version
	app.Commands = cmds

	return app
}

func main() {
	clients.Version = version

	if err := newApp().Run(os.Args); err != nil {
		// Action errors carry their own exit codes and are handled inside
		// Run; anything surfacing here is an argument parse error.
		fmt.Fprintln(os.Stderr, err)
		os.Exit(errs.CodeUsage)
	}
}
