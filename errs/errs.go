package errs

import (
	"fmt"

	"github.com/urfave/cli"
)

// Exit codes. Only config resolution and the precondition checks may abort
// the run; everything downstream is best effort and still exits zero.
const (
	CodePrereq = 1
	CodeUsage  = 2
)

// ErrTooManyArgs represents an error where a user has provided too many
// command line arguments
var ErrTooManyArgs = cli.NewExitError("You've provided too many command line arguments!", CodeUsage)

// NewPrereqExitError returns an error for a missing prerequisite. These abort
// the run before any provider call is made.
func NewPrereqExitError(message string) error {
	return cli.NewExitError(message, CodePrereq)
}

// NewFileNotFoundError returns a prerequisite error for a missing input file.
func NewFileNotFoundError(kind, path string) error {
	return cli.NewExitError(fmt.Sprintf("%s not found: %s", kind, path), CodePrereq)
}

// NewErrorExitError creates an ExitError with an appended error message
func NewErrorExitError(message string, err error) error {
	return cli.NewExitError(message+"\n"+err.Error(), CodePrereq)
}

// NewUsageExitError returns a new error that includes the usage string for
// the given command along with the message from the given error.
func NewUsageExitError(ctx *cli.Context, err error) error {
	fmt.Printf("Invalid usage: %s\n\n", err.Error())
	cli.ShowCommandHelpAndExit(ctx, ctx.Command.Name, CodeUsage)
	return nil
}
