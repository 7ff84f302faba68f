package fit

import (
	"math"

	"github.com/cwbudde/algo-fit/guess"
	"github.com/cwbudde/algo-fit/lineshape"
)

// Lorentzian fits a single Lorentzian peak. Without an explicit guess the
// starting point is derived from the data extrema. Standard errors are
// computed; the returned half-width is normalized to its magnitude
// regardless of the sign the optimizer landed on.
//
// The resonator quality factor follows as center/(2*hwhm), see
// (*lineshape.Lorentzian).Q.
func Lorentzian(x, y []float64, opts ...Option) (Result, error) {
	fx, fy, cfg, err := prepare(x, y, opts)
	if err != nil {
		return Result{}, err
	}

	var c *lineshape.Lorentzian

	if cfg.guess != nil {
		c = &lineshape.Lorentzian{}
		if err := c.SetParams(cfg.guess); err != nil {
			return Result{}, err
		}
	} else {
		if err := canGuess(fx); err != nil {
			return Result{}, err
		}

		c = guess.Lorentzian(fx, fy)
	}

	res, err := run(c, fx, fy, cfg, true)
	if err != nil {
		return res, err
	}

	// A Lorentzian is even in its width, so the optimizer is free to land
	// on the negative branch.
	c.HWHM = math.Abs(c.HWHM)
	res.Params[3] = c.HWHM

	report(cfg.reporter, c, res.Errors)

	return res, nil
}

// DoubleLorentzian fits a sum of two Lorentzian peaks on a shared offset.
// There is no heuristic for this family; callers must supply a guess of
// [offset, amp1, center1, hwhm1, amp2, center2, hwhm2].
func DoubleLorentzian(x, y []float64, opts ...Option) (Result, error) {
	fx, fy, cfg, err := prepare(x, y, opts)
	if err != nil {
		return Result{}, err
	}

	if cfg.guess == nil {
		return Result{}, ErrMissingGuess
	}

	c := &lineshape.TwoLorentzian{}
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

// Parabola fits y = a0 + a1*(x-a2)^2. Callers must supply a guess of
// [a0, a1, a2]; standard errors are computed.
func Parabola(x, y []float64, opts ...Option) (Result, error) {
	fx, fy, cfg, err := prepare(x, y, opts)
	if err != nil {
		return Result{}, err
	}

	if cfg.guess == nil {
		return Result{}, ErrMissingGuess
	}

	c := &lineshape.Parabola{}
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
