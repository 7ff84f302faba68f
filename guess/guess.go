// Package guess derives starting parameter vectors for the fit wrappers
// from coarse features of the data: extrema, endpoint levels, axis span and
// the dominant FFT bin. The estimates are deliberately rough; they only
// need to land inside the optimizer's basin of convergence. No heuristic
// validates physical plausibility of its output.
//
// All functions assume x sorted ascending and len(x) == len(y) > 1; the
// wrappers in package fit guarantee both.
package guess

import (
	"math"

	"github.com/cwbudde/algo-fit/dataset"
	"github.com/cwbudde/algo-fit/lineshape"
)

// Lorentzian seeds a single-peak Lorentzian fit: offset from the endpoint
// mean, amplitude from the data range, center at the maximum, width a
// tenth of the axis span.
func Lorentzian(x, y []float64) *lineshape.Lorentzian {
	s := dataset.Summarize(y)

	return &lineshape.Lorentzian{
		Offset: (y[0] + y[len(y)-1]) / 2,
		Amp:    s.Range,
		Center: x[s.MaxPos],
		HWHM:   dataset.Span(x) / 10,
	}
}

// Gaussian seeds a single-peak Gaussian fit. Same features as Lorentzian
// with a wider width seed, a third of the axis span.
func Gaussian(x, y []float64) *lineshape.Gaussian {
	s := dataset.Summarize(y)

	return &lineshape.Gaussian{
		Offset: (y[0] + y[len(y)-1]) / 2,
		Amp:    s.Range,
		Center: x[s.MaxPos],
		Sigma:  dataset.Span(x) / 3,
	}
}

// Exponential seeds a decay fit from the endpoints: the tail level is the
// offset, the drop is the amplitude, and tau a fifth of the axis span.
func Exponential(x, y []float64) *lineshape.Exponential {
	last := y[len(y)-1]

	return &lineshape.Exponential{
		Offset: last,
		Amp:    y[0] - last,
		T0:     x[0],
		Tau:    dataset.Span(x) / 5,
	}
}

// PulseError seeds a pulse-error decay fit from the endpoint levels.
func PulseError(x, y []float64) *lineshape.PulseError {
	last := y[len(y)-1]

	return &lineshape.PulseError{
		Offset: last,
		Err:    y[0] - last,
	}
}

// Hanger seeds a hanger-resonator fit. The dip position gives f0, a crude
// Q0 comes from the dip position and a third of the span, and Qi, Qc and
// the scale follow from Q0 and the baseline level.
func Hanger(x, y []float64) *lineshape.Hanger {
	s := dataset.Summarize(y)

	f0 := x[s.MinPos]
	ymax := (y[0] + y[len(y)-1]) / 2
	q0 := math.Abs(f0 / (dataset.Span(x) / 3))

	qi := q0 * (1 + ymax)
	qc := qi / ymax

	return &lineshape.Hanger{
		F0:    f0,
		Qi:    math.Abs(qi),
		Qc:    math.Abs(qc),
		Df:    0,
		Scale: ymax,
	}
}

// Fano seeds a Fano-resonance fit with a fixed asymmetry seed of 10.
func Fano(x, y []float64) *lineshape.Fano {
	s := dataset.Summarize(y)

	return &lineshape.Fano{
		W0:    x[s.MaxPos],
		FWHM:  dataset.Span(x) / 10,
		Q:     10,
		Scale: s.Range,
	}
}

// AsymLorentzian seeds an asymmetric-Lorentzian fit; the background
// coupling seed is a tenth of the center frequency.
func AsymLorentzian(x, y []float64) *lineshape.AsymLorentzian {
	s := dataset.Summarize(y)

	f0 := x[s.MaxPos]

	return &lineshape.AsymLorentzian{
		F0:    f0,
		FWHM:  dataset.Span(x) / 10,
		Gamma: f0 / 10,
		Scale: s.Range,
	}
}

// S11OnePort seeds a one-port reflection fit: f0 at the dip, rates a fifth
// of the span, scale at the off-resonance maximum.
func S11OnePort(x, y []float64) *lineshape.S11OnePort {
	s := dataset.Summarize(y)

	return &lineshape.S11OnePort{
		F0:    x[s.MinPos],
		Kr:    dataset.Span(x) / 5,
		Eps:   dataset.Span(x) / 5,
		Df:    0,
		Scale: s.Max,
	}
}

// S11TwoPort seeds a two-port reflection fit in quality-factor form.
func S11TwoPort(x, y []float64) *lineshape.S11TwoPort {
	s := dataset.Summarize(y)

	f0 := x[s.MinPos]
	rate := dataset.Span(x) / 5

	return &lineshape.S11TwoPort{
		F0:    f0,
		Qc:    f0 / rate,
		Qi:    f0 / rate,
		Df:    0,
		Scale: s.Max,
	}
}
