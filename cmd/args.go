package main

import (
	"github.com/urfave/cli"

	"github.com/stackship/stackship-cli/errs"
)

func maxOptionalArgsLength(cliCtx *cli.Context, max int) error {
	if len(cliCtx.Args()) > max {
		return errs.NewUsageExitError(cliCtx, errs.ErrTooManyArgs)
	}

	return nil
}
