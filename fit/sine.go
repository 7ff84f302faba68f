package fit

import (
	"errors"

	"github.com/cwbudde/algo-fit/guess"
	"github.com/cwbudde/algo-fit/lineshape"
)

// Sine fits a plain sinusoid. Without an explicit guess the dominant FFT
// bin seeds frequency and phase, the data range the amplitude and the mean
// the offset.
func Sine(x, y []float64, opts ...Option) (Result, error) {
	fx, fy, cfg, err := prepare(x, y, opts)
	if err != nil {
		return Result{}, err
	}

	var c *lineshape.Sine

	if cfg.guess != nil {
		c = &lineshape.Sine{}
		if err := c.SetParams(cfg.guess); err != nil {
			return Result{}, err
		}
	} else {
		if err := canGuess(fx); err != nil {
			return Result{}, err
		}

		c = guess.Sine(fx, fy)
	}

	res, err := run(c, fx, fy, cfg, false)
	if err != nil {
		return res, err
	}

	report(cfg.reporter, c, res.Errors)

	return res, nil
}

// DecaySine fits an exponentially decaying sinusoid. The envelope anchor
// t0 is always pinned to the first (domain-restricted) sample and is not a
// fit parameter; guesses carry [amplitude, frequency, phase, tau, offset].
func DecaySine(x, y []float64, opts ...Option) (Result, error) {
	fx, fy, cfg, err := prepare(x, y, opts)
	if err != nil {
		return Result{}, err
	}

	var c *lineshape.DecaySine

	if cfg.guess != nil {
		c = &lineshape.DecaySine{}
		if err := c.SetParams(cfg.guess); err != nil {
			return Result{}, err
		}
	} else {
		if err := canGuess(fx); err != nil {
			return Result{}, err
		}

		c = guess.DecaySine(fx, fy)
	}

	// The envelope anchor still needs one sample to pin to.
	if len(fx) == 0 {
		return Result{}, errors.New("fit: no data points")
	}

	c.T0 = fx[0]

	res, err := run(c, fx, fy, cfg, false)
	if err != nil {
		return res, err
	}

	report(cfg.reporter, c, res.Errors)

	return res, nil
}
