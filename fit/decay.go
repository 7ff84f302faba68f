package fit

import (
	"github.com/cwbudde/algo-fit/guess"
	"github.com/cwbudde/algo-fit/lineshape"
)

// Exponential fits an exponential decay on a constant offset. Without an
// explicit guess the endpoints seed the offset and amplitude, the first
// sample the decay origin, and a fifth of the span the time constant.
func Exponential(x, y []float64, opts ...Option) (Result, error) {
	fx, fy, cfg, err := prepare(x, y, opts)
	if err != nil {
		return Result{}, err
	}

	var c *lineshape.Exponential

	if cfg.guess != nil {
		c = &lineshape.Exponential{}
		if err := c.SetParams(cfg.guess); err != nil {
			return Result{}, err
		}
	} else {
		if err := canGuess(fx); err != nil {
			return Result{}, err
		}

		c = guess.Exponential(fx, fy)
	}

	res, err := run(c, fx, fy, cfg, false)
	if err != nil {
		return res, err
	}

	report(cfg.reporter, c, res.Errors)

	return res, nil
}

// PulseError fits the pulse-error decay offset + 0.5*(1-(1-err)^x) against
// pulse number. Without an explicit guess the endpoint levels seed both
// parameters.
func PulseError(x, y []float64, opts ...Option) (Result, error) {
	fx, fy, cfg, err := prepare(x, y, opts)
	if err != nil {
		return Result{}, err
	}

	var c *lineshape.PulseError

	if cfg.guess != nil {
		c = &lineshape.PulseError{}
		if err := c.SetParams(cfg.guess); err != nil {
			return Result{}, err
		}
	} else {
		if err := canGuess(fx); err != nil {
			return Result{}, err
		}

		c = guess.PulseError(fx, fy)
	}

	res, err := run(c, fx, fy, cfg, false)
	if err != nil {
		return res, err
	}

	report(cfg.reporter, c, res.Errors)

	return res, nil
}
