package fit

import (
	"fmt"
	"io"
	"math"
)

// Plotter receives the visualization requests a fit call emits: the raw
// data, the initial-guess curve and the best-fit curve. Implementations
// render them however they like; the core never depends on one for
// correctness. Style strings follow the usual laboratory shorthand
// ("bo" blue circles, "r-" red line) and may be ignored.
type Plotter interface {
	Plot(x, y []float64, style, label string)
	Legend(on bool)
}

// Reporter receives human-readable fit diagnostics: one Report call per
// parameter plus free-form notes. Purely observational. stderr is NaN when
// no standard error is available for the parameter.
type Reporter interface {
	Report(name string, value, stderr float64)
	Note(msg string)
}

// NopPlotter discards all plot requests. It is the default sink.
type NopPlotter struct{}

// Plot implements Plotter.
func (NopPlotter) Plot(x, y []float64, style, label string) {}

// Legend implements Plotter.
func (NopPlotter) Legend(on bool) {}

// NopReporter discards all diagnostics. It is the default sink.
type NopReporter struct{}

// Report implements Reporter.
func (NopReporter) Report(name string, value, stderr float64) {}

// Note implements Reporter.
func (NopReporter) Note(msg string) {}

// WriterReporter prints diagnostics to an io.Writer, one
// "name : value +/- stderr" line per parameter. The stderr column is
// omitted when no standard error is available.
type WriterReporter struct {
	W io.Writer
}

// Report implements Reporter.
func (r WriterReporter) Report(name string, value, stderr float64) {
	if math.IsNaN(stderr) {
		fmt.Fprintf(r.W, "%s : %.6g\n", name, value)
		return
	}

	fmt.Fprintf(r.W, "%s : %.6g +/- %.6g\n", name, value, stderr)
}

// Note implements Reporter.
func (r WriterReporter) Note(msg string) {
	fmt.Fprintln(r.W, msg)
}
