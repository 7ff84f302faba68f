// Package lineshape provides the closed-form parametric curves fitted by
// this module: Lorentzian and Gaussian peaks, exponential and pulse-error
// decays, sinusoids, hanger and reflection (S11) resonator responses, Fano
// resonances, polynomials and parabolas.
//
// Each family is a plain struct with one field per physical quantity and a
// scalar Eval method. The optimizer in package lsq consumes curves through
// the Curve interface, flattening parameters to an ordered vector only at
// that boundary:
//
//	c := &lineshape.Lorentzian{Offset: 5, Amp: 3, Center: 4, HWHM: 0.5}
//	y := c.Eval(4.2)
//
// Parameter vector orders match the historical conventions of laboratory
// fitting code and are documented on each family's Params method.
//
// Complex-valued families (the S11 reflections and the asymmetric
// Lorentzian) are magnitude responses of complex transfer functions. Their
// EvalSlice path computes real and imaginary parts separately and reduces
// them with vecmath block operations.
package lineshape
