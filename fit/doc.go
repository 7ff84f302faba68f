// Package fit provides one-call nonlinear least-squares fitting of the
// lineshapes common in laboratory spectroscopy and resonator
// characterization: Lorentzian and Gaussian peaks, exponential and
// pulse-error decays, sinusoids, hanger and S11 reflection responses,
// Fano resonances, polynomials and parabolas.
//
// Each wrapper restricts the data to an optional domain, derives a
// starting point from coarse data features when the caller supplies none,
// and runs the Levenberg-Marquardt engine from package lsq:
//
//	res, err := fit.Lorentzian(freq, power)
//	if err != nil {
//	    // ...
//	}
//	lor := res.Curve.(*lineshape.Lorentzian)
//	fmt.Println(lor.Center, lor.Q())
//
// Families without a feature heuristic (DoubleLorentzian, NGaussian,
// Parabola, Polynomial, KineticFraction) return ErrMissingGuess unless
// WithGuess is given.
//
// Visualization and console diagnostics are injected collaborators: pass
// WithPlotter (see package fitplot for a gonum/plot implementation) and
// WithReporter to receive them; the defaults discard everything, so fits
// run headless by default.
//
// Every call is independent and mutates no package state; concurrent fits
// are safe as long as shared sinks are serialized by the caller.
package fit
