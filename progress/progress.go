// Package progress prints human-readable progress lines and drives the
// spinner shown while waiting on slow provider operations.
package progress

import (
	"fmt"
	"time"

	"github.com/briandowns/spinner"

	"github.com/stackship/stackship-cli/color"
)

var globalSpinner = spinner.New(spinner.CharSets[11], 100*time.Millisecond)

// Step prints a progress line for the start of a pipeline step.
func Step(format string, args ...interface{}) {
	fmt.Printf(color.Bold("==> ")+format+"\n", args...)
}

// Warnf prints a non-fatal warning. Warnings never stop the run.
func Warnf(format string, args ...interface{}) {
	fmt.Printf(color.Warn("warning: ")+format+"\n", args...)
}

// SpinStart starts the spinning animation for the global spinner
func SpinStart(suffix string) {
	if suffix == "" {
		globalSpinner.Suffix = ""
	} else {
		globalSpinner.Suffix = " " + suffix
	}
	globalSpinner.Start()
}

// SpinStop stops the Spinner animation for the global spinner
func SpinStop() {
	globalSpinner.Stop()
}
