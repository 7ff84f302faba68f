package fit

import (
	"github.com/cwbudde/algo-fit/guess"
	"github.com/cwbudde/algo-fit/lineshape"
)

// Fano fits a Fano resonance in power units. Without an explicit guess the
// peak position and data range seed the fit, with a fixed asymmetry seed.
// Standard errors are computed.
func Fano(x, y []float64, opts ...Option) (Result, error) {
	fx, fy, cfg, err := prepare(x, y, opts)
	if err != nil {
		return Result{}, err
	}

	var c *lineshape.Fano

	if cfg.guess != nil {
		c = &lineshape.Fano{}
		if err := c.SetParams(cfg.guess); err != nil {
			return Result{}, err
		}
	} else {
		if err := canGuess(fx); err != nil {
			return Result{}, err
		}

		c = guess.Fano(fx, fy)
	}

	res, err := run(c, fx, fy, cfg, true)
	if err != nil {
		return res, err
	}

	report(cfg.reporter, c, res.Errors)

	return res, nil
}

// AsymLorentzian fits the asymmetric Lorentzian power lineshape that
// arises from a capacitive background path in series with the resonator.
// Standard errors are computed. See also Fano.
func AsymLorentzian(x, y []float64, opts ...Option) (Result, error) {
	fx, fy, cfg, err := prepare(x, y, opts)
	if err != nil {
		return Result{}, err
	}

	var c *lineshape.AsymLorentzian

	if cfg.guess != nil {
		c = &lineshape.AsymLorentzian{}
		if err := c.SetParams(cfg.guess); err != nil {
			return Result{}, err
		}
	} else {
		if err := canGuess(fx); err != nil {
			return Result{}, err
		}

		c = guess.AsymLorentzian(fx, fy)
	}

	res, err := run(c, fx, fy, cfg, true)
	if err != nil {
		return res, err
	}

	report(cfg.reporter, c, res.Errors)

	return res, nil
}
