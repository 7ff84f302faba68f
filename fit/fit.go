package fit

import (
	"errors"
	"fmt"
	"math"

	"github.com/cwbudde/algo-fit/dataset"
	"github.com/cwbudde/algo-fit/lineshape"
	"github.com/cwbudde/algo-fit/lsq"
)

// ErrMissingGuess is returned by wrappers whose lineshape family has no
// initial-guess heuristic when the caller supplies no parameters.
var ErrMissingGuess = errors.New("fit: must supply initial guesses")

// Result is the outcome of a fit call. Params holds the best-fit vector in
// the family's documented order and Curve the same values as a typed
// struct. Errors holds per-parameter standard errors when the wrapper
// computes them and the covariance was well defined; it is nil otherwise.
type Result struct {
	Curve     lineshape.Curve
	Params    []float64
	Errors    []float64
	Converged bool
	RSS       float64
}

// prepare resolves options and applies the optional domain restriction,
// returning the data the heuristics and the solver will see.
func prepare(x, y []float64, opts []Option) ([]float64, []float64, config, error) {
	cfg := applyOptions(opts)

	if len(x) != len(y) {
		return nil, nil, cfg, fmt.Errorf("fit: x/y length mismatch: %d vs %d", len(x), len(y))
	}

	if cfg.hasDomain {
		x, y = dataset.Select(x, y, cfg.lo, cfg.hi)
	}

	return x, y, cfg, nil
}

// canGuess reports whether the (domain-restricted) data carries enough
// points for a feature-based heuristic.
func canGuess(x []float64) error {
	if len(x) < 2 {
		return fmt.Errorf("fit: %d points are too few to derive initial guesses", len(x))
	}

	return nil
}

// run is the shared wrapper pipeline: solve with the curve's current
// parameters as the start, then emit plot and report requests. Data must
// already be domain-restricted.
func run(c lineshape.Curve, x, y []float64, cfg config, computeErrors bool) (Result, error) {
	start := c.Params()

	if cfg.showFit {
		if cfg.showData {
			cfg.plotter.Plot(x, y, cfg.markData, cfg.label+" data")
		}

		if cfg.showStart {
			cfg.plotter.Plot(x, c.EvalSlice(nil, x), "", cfg.label+" startfit")
		}
	}

	model := func(p []float64, xv float64) float64 {
		c.SetParams(p) //nolint:errcheck // length fixed by the start vector
		return c.Eval(xv)
	}

	res, err := lsq.Solve(model, x, y, start, lsq.Config{ComputeErrors: computeErrors})
	if err != nil && errors.Is(err, lsq.ErrCovariance) {
		// The fit itself is fine; only the error estimates are lost.
		cfg.reporter.Note("could not compute standard errors on fit parameters; " +
			"the parameter space may be very flat")

		err = nil
	}

	out := Result{
		Curve:     c,
		Params:    res.Params,
		Errors:    res.Errors,
		Converged: res.Converged,
		RSS:       res.RSS,
	}

	if err != nil {
		return out, err
	}

	if serr := c.SetParams(out.Params); serr != nil {
		return out, serr
	}

	if cfg.showFit {
		cfg.plotter.Plot(x, c.EvalSlice(nil, x), cfg.markFit, cfg.label+" fit")

		if cfg.label != "" {
			cfg.plotter.Legend(true)
		}
	}

	return out, nil
}

// report emits one Reporter line per parameter; the stderr column is NaN
// when no standard errors are available, never a fabricated zero.
func report(r Reporter, c lineshape.Curve, errs []float64) {
	names := c.ParamNames()
	params := c.Params()

	for i, name := range names {
		e := math.NaN()
		if i < len(errs) {
			e = errs[i]
		}

		r.Report(name, params[i], e)
	}
}
