package lineshape

import (
	"errors"
	"fmt"
	"math/cmplx"
)

// ErrParamCount is returned when a flat parameter vector does not match the
// length a curve expects.
var ErrParamCount = errors.New("lineshape: parameter count mismatch")

// Curve is the canonical model contract. Every lineshape family is a named
// struct with one field per physical quantity; the flat Params/SetParams
// view exists only for the optimizer boundary, which works on ordered
// vectors.
type Curve interface {
	// Eval returns the model value at x.
	Eval(x float64) float64

	// EvalSlice evaluates the model at every point of x into dst. When dst
	// is nil a new slice is allocated. Returns dst.
	EvalSlice(dst, x []float64) []float64

	// Params returns the fitted parameters as an ordered vector. The order
	// is documented per family.
	Params() []float64

	// SetParams assigns the ordered vector back onto the struct fields.
	// Length mismatches wrap ErrParamCount.
	SetParams(p []float64) error

	// ParamNames returns the documented name of each vector position.
	ParamNames() []string
}

func checkLen(family string, got, want int) error {
	if got != want {
		return fmt.Errorf("%s: got %d parameters, want %d: %w", family, got, want, ErrParamCount)
	}

	return nil
}

// Phases returns the phase angle, in radians, of every element of c.
func Phases(c []complex128) []float64 {
	out := make([]float64, len(c))
	for i, v := range c {
		out[i] = cmplx.Phase(v)
	}

	return out
}

// evalInto is the shared scalar-loop slice evaluation for real-valued
// families. Complex-valued families override EvalSlice with a vectorized
// magnitude path instead.
func evalInto(dst, x []float64, f func(float64) float64) []float64 {
	if dst == nil {
		dst = make([]float64, len(x))
	}

	for i, v := range x {
		dst[i] = f(v)
	}

	return dst
}
