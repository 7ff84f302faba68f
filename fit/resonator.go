package fit

import (
	"fmt"

	"github.com/cwbudde/algo-fit/guess"
	"github.com/cwbudde/algo-fit/lineshape"
)

// Hanger fits the asymmetric hanger-transmission lineshape in power units.
// Without an explicit guess the dip position seeds f0 and a crude combined
// quality factor seeds Qi and Qc.
func Hanger(x, y []float64, opts ...Option) (Result, error) {
	fx, fy, cfg, err := prepare(x, y, opts)
	if err != nil {
		return Result{}, err
	}

	var c *lineshape.Hanger

	if cfg.guess != nil {
		c = &lineshape.Hanger{}
		if err := c.SetParams(cfg.guess); err != nil {
			return Result{}, err
		}
	} else {
		if err := canGuess(fx); err != nil {
			return Result{}, err
		}

		c = guess.Hanger(fx, fy)
	}

	res, err := run(c, fx, fy, cfg, false)
	if err != nil {
		return res, err
	}

	report(cfg.reporter, c, res.Errors)

	return res, nil
}

// S11OnePort fits the asymmetric one-port reflection magnitude in voltage
// units (fit |S11|, not |S11|^2). Standard errors are computed. Qi and Qc
// follow from the fitted rates, see (*lineshape.S11OnePort).Qi and Qc.
func S11OnePort(x, y []float64, opts ...Option) (Result, error) {
	fx, fy, cfg, err := prepare(x, y, opts)
	if err != nil {
		return Result{}, err
	}

	var c *lineshape.S11OnePort

	if cfg.guess != nil {
		c = &lineshape.S11OnePort{}
		if err := c.SetParams(cfg.guess); err != nil {
			return Result{}, err
		}
	} else {
		if err := canGuess(fx); err != nil {
			return Result{}, err
		}

		c = guess.S11OnePort(fx, fy)
	}

	res, err := run(c, fx, fy, cfg, true)
	if err != nil {
		return res, err
	}

	report(cfg.reporter, c, res.Errors)

	return res, nil
}

// S11TwoPort fits the two-port reflection magnitude parameterized by
// quality factors, in voltage units. Standard errors are computed.
func S11TwoPort(x, y []float64, opts ...Option) (Result, error) {
	fx, fy, cfg, err := prepare(x, y, opts)
	if err != nil {
		return Result{}, err
	}

	var c *lineshape.S11TwoPort

	if cfg.guess != nil {
		c = &lineshape.S11TwoPort{}
		if err := c.SetParams(cfg.guess); err != nil {
			return Result{}, err
		}
	} else {
		if err := canGuess(fx); err != nil {
			return Result{}, err
		}

		c = guess.S11TwoPort(fx, fy)
	}

	res, err := run(c, fx, fy, cfg, true)
	if err != nil {
		return res, err
	}

	report(cfg.reporter, c, res.Errors)

	return res, nil
}

// KineticFraction fits resonance frequency versus temperature under the
// kinetic-inductance model. There is no heuristic; callers supply
// [f0, alpha, Tc] or [f0, alpha]. The two-parameter form holds the
// critical temperature fixed at lineshape.DefaultTc, and that assumption
// is reported as a note. The TcFixed option truncates a three-parameter
// guess to the fixed form.
func KineticFraction(x, y []float64, opts ...Option) (Result, error) {
	fx, fy, cfg, err := prepare(x, y, opts)
	if err != nil {
		return Result{}, err
	}

	if cfg.guess == nil {
		return Result{}, ErrMissingGuess
	}

	g := cfg.guess
	if cfg.tcFixed && len(g) > 2 {
		g = g[:2]
	}

	c := &lineshape.KineticFraction{FitTc: len(g) == 3}
	if err := c.SetParams(g); err != nil {
		return Result{}, err
	}

	if c.TcAssumed {
		cfg.reporter.Note(fmt.Sprintf("assuming Tc = %.2f", c.Tc))
	}

	res, err := run(c, fx, fy, cfg, false)
	if err != nil {
		return res, err
	}

	report(cfg.reporter, c, res.Errors)

	return res, nil
}
