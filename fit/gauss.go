package fit

import (
	"fmt"

	"github.com/cwbudde/algo-fit/guess"
	"github.com/cwbudde/algo-fit/lineshape"
)

// Gaussian fits a single Gaussian peak, by default on a constant offset.
// With the NoOffset option the three-parameter offset-free form is fitted
// instead; a four-parameter guess is then truncated by dropping its
// leading offset.
func Gaussian(x, y []float64, opts ...Option) (Result, error) {
	fx, fy, cfg, err := prepare(x, y, opts)
	if err != nil {
		return Result{}, err
	}

	c := &lineshape.Gaussian{NoOffset: cfg.noOffset}

	switch {
	case cfg.guess != nil:
		g := cfg.guess
		if cfg.noOffset && len(g) > 3 {
			g = g[1:]
		}

		if err := c.SetParams(g); err != nil {
			return Result{}, err
		}
	default:
		if err := canGuess(fx); err != nil {
			return Result{}, err
		}

		h := guess.Gaussian(fx, fy)
		c.Offset, c.Amp, c.Center, c.Sigma = h.Offset, h.Amp, h.Center, h.Sigma
	}

	res, err := run(c, fx, fy, cfg, false)
	if err != nil {
		return res, err
	}

	report(cfg.reporter, c, res.Errors)

	return res, nil
}

// NGaussian fits a sum of N Gaussian peaks, sharing one offset unless the
// NoOffset option is set. The component count is inferred from the guess
// length (3N+1, or 3N without offset); there is no heuristic for this
// family.
func NGaussian(x, y []float64, opts ...Option) (Result, error) {
	fx, fy, cfg, err := prepare(x, y, opts)
	if err != nil {
		return Result{}, err
	}

	if cfg.guess == nil {
		return Result{}, ErrMissingGuess
	}

	n := len(cfg.guess)
	if !cfg.noOffset {
		n--
	}

	if n <= 0 || n%3 != 0 {
		return Result{}, fmt.Errorf("fit: n-gaussian guess length %d does not map to whole peaks: %w",
			len(cfg.guess), lineshape.ErrParamCount)
	}

	c := &lineshape.NGaussian{
		Peaks:    make([]lineshape.GaussPeak, n/3),
		NoOffset: cfg.noOffset,
	}

	if err := c.SetParams(cfg.guess); err != nil {
		return Result{}, err
	}

	res, err := run(c, fx, fy, cfg, false)
	if err != nil {
		return res, err
	}

	report(cfg.reporter, c, res.Errors)

	return res, nil
}
