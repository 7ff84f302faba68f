package lineshape

import (
	"github.com/cwbudde/algo-vecmath"
)

// magnitudeInto evaluates |tf(x_i)| for every point of x. The complex
// response is unpacked into re/im blocks and reduced with a vectorized
// magnitude, the same layout the spectrum code paths use.
func magnitudeInto(dst, x []float64, tf func(float64) complex128) []float64 {
	if dst == nil {
		dst = make([]float64, len(x))
	}

	re := make([]float64, len(x))
	im := make([]float64, len(x))

	for i, v := range x {
		c := tf(v)
		re[i], im[i] = real(c), imag(c)
	}

	vecmath.Magnitude(dst, re, im)

	return dst
}

// powerInto evaluates |tf(x_i)|^2 for every point of x.
func powerInto(dst, x []float64, tf func(float64) complex128) []float64 {
	if dst == nil {
		dst = make([]float64, len(x))
	}

	re := make([]float64, len(x))
	im := make([]float64, len(x))

	for i, v := range x {
		c := tf(v)
		re[i], im[i] = real(c), imag(c)
	}

	vecmath.Power(dst, re, im)

	return dst
}
