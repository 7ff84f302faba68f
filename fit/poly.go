package fit

import (
	"github.com/cwbudde/algo-fit/lineshape"
)

// Polynomial fits a polynomial of arbitrary order; the order is one less
// than the guess length, so a guess of [0, 0, 0] fits a quadratic. Callers
// must supply a guess. Standard errors are computed.
func Polynomial(x, y []float64, opts ...Option) (Result, error) {
	fx, fy, cfg, err := prepare(x, y, opts)
	if err != nil {
		return Result{}, err
	}

	if cfg.guess == nil {
		return Result{}, ErrMissingGuess
	}

	c := &lineshape.Polynomial{Coeffs: make([]float64, len(cfg.guess))}
	if err := c.SetParams(cfg.guess); err != nil {
		return Result{}, err
	}

	res, err := run(c, fx, fy, cfg, true)
	if err != nil {
		return res, err
	}

	report(cfg.reporter, c, res.Errors)

	return res, nil
}
