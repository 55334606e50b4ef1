// Package report collects per-step outcomes of a deploy run. Downstream
// steps degrade to warnings instead of aborting, so the final report is how
// an operator sees what actually happened.
package report

import (
	"fmt"
	"io"

	"github.com/juju/ansiterm"
)

// Status classifies a step outcome.
type Status string

// The step outcomes.
const (
	OK      Status = "ok"
	Warn    Status = "warn"
	Skipped Status = "skipped"
)

// Result is the outcome of a single pipeline step.
type Result struct {
	Step   string
	Status Status
	Detail string
}

// OKResult returns an ok outcome for a step.
func OKResult(step, detail string) Result {
	return Result{Step: step, Status: OK, Detail: detail}
}

// WarnResult returns a warn outcome for a step.
func WarnResult(step, detail string) Result {
	return Result{Step: step, Status: Warn, Detail: detail}
}

// SkippedResult returns a skipped outcome for a step.
func SkippedResult(step, detail string) Result {
	return Result{Step: step, Status: Skipped, Detail: detail}
}

// Report aggregates step outcomes in execution order.
type Report struct {
	results []Result
}

// Add appends a step outcome.
func (r *Report) Add(res Result) {
	r.results = append(r.results, res)
}

// Results returns the recorded outcomes in execution order.
func (r *Report) Results() []Result {
	return r.results
}

// Print writes the run report as a table.
func (r *Report) Print(out io.Writer) {
	w := ansiterm.NewTabWriter(out, 0, 0, 8, ' ', 0)

	w.SetForeground(ansiterm.Gray)
	fmt.Fprintln(w, "Step\tStatus\tDetail")
	w.Reset()

	for _, res := range r.results {
		switch res.Status {
		case Warn:
			w.SetForeground(ansiterm.Yellow)
		case Skipped:
			w.SetForeground(ansiterm.Gray)
		default:
			w.SetForeground(ansiterm.Green)
		}
		fmt.Fprintf(w, "%s\t%s\t%s\n", res.Step, res.Status, res.Detail)
		w.Reset()
	}

	w.Flush()
}
