package lineshape

import (
	"math"
	"strconv"
)

// Gaussian is a single Gaussian peak, optionally on a constant offset:
//
//	y = Offset + Amp * exp(-0.5 * ((x-Center)/Sigma)^2)
//
// With NoOffset set, Offset is pinned at zero and excluded from the
// parameter vector, matching the historical three-parameter form.
type Gaussian struct {
	Offset   float64
	Amp      float64
	Center   float64
	Sigma    float64
	NoOffset bool
}

// Eval returns the Gaussian value at x.
func (g *Gaussian) Eval(x float64) float64 {
	d := (x - g.Center) / g.Sigma
	v := g.Amp * math.Exp(-0.5*d*d)

	if g.NoOffset {
		return v
	}

	return g.Offset + v
}

// EvalSlice evaluates the curve at every point of x into dst.
func (g *Gaussian) EvalSlice(dst, x []float64) []float64 {
	return evalInto(dst, x, g.Eval)
}

// Params returns [offset, amplitude, center, sigma], or
// [amplitude, center, sigma] with NoOffset set.
func (g *Gaussian) Params() []float64 {
	if g.NoOffset {
		return []float64{g.Amp, g.Center, g.Sigma}
	}

	return []float64{g.Offset, g.Amp, g.Center, g.Sigma}
}

// SetParams assigns the vector returned by Params.
func (g *Gaussian) SetParams(p []float64) error {
	if g.NoOffset {
		if err := checkLen("gaussian (no offset)", len(p), 3); err != nil {
			return err
		}

		g.Amp, g.Center, g.Sigma = p[0], p[1], p[2]

		return nil
	}

	if err := checkLen("gaussian", len(p), 4); err != nil {
		return err
	}

	g.Offset, g.Amp, g.Center, g.Sigma = p[0], p[1], p[2], p[3]

	return nil
}

// ParamNames returns the documented vector-position names.
func (g *Gaussian) ParamNames() []string {
	if g.NoOffset {
		return []string{"amplitude", "center", "sigma"}
	}

	return []string{"offset", "amplitude", "center", "sigma"}
}

// GaussPeak is one component of an NGaussian sum.
type GaussPeak struct {
	Amp    float64
	Center float64
	Sigma  float64
}

// NGaussian is a sum of N Gaussian peaks, optionally on a shared offset:
//
//	y = Offset + sum_i Amp_i * exp(-0.5 * ((x-Center_i)/Sigma_i)^2)
//
// The component count is fixed by len(Peaks); SetParams requires a vector
// of matching length (3N+1, or 3N with NoOffset).
type NGaussian struct {
	Offset   float64
	Peaks    []GaussPeak
	NoOffset bool
}

// Eval returns the N-Gaussian value at x.
func (g *NGaussian) Eval(x float64) float64 {
	v := 0.0
	if !g.NoOffset {
		v = g.Offset
	}

	for i := range g.Peaks {
		d := (x - g.Peaks[i].Center) / g.Peaks[i].Sigma
		v += g.Peaks[i].Amp * math.Exp(-0.5*d*d)
	}

	return v
}

// EvalSlice evaluates the curve at every point of x into dst.
func (g *NGaussian) EvalSlice(dst, x []float64) []float64 {
	return evalInto(dst, x, g.Eval)
}

// Params returns [offset, amp1, center1, sigma1, ...], dropping the leading
// offset with NoOffset set.
func (g *NGaussian) Params() []float64 {
	p := make([]float64, 0, 3*len(g.Peaks)+1)
	if !g.NoOffset {
		p = append(p, g.Offset)
	}

	for i := range g.Peaks {
		p = append(p, g.Peaks[i].Amp, g.Peaks[i].Center, g.Peaks[i].Sigma)
	}

	return p
}

// SetParams assigns the vector returned by Params.
func (g *NGaussian) SetParams(p []float64) error {
	want := 3 * len(g.Peaks)
	if !g.NoOffset {
		want++
	}

	if err := checkLen("n-gaussian", len(p), want); err != nil {
		return err
	}

	if !g.NoOffset {
		g.Offset = p[0]
		p = p[1:]
	}

	for i := range g.Peaks {
		g.Peaks[i].Amp = p[3*i]
		g.Peaks[i].Center = p[3*i+1]
		g.Peaks[i].Sigma = p[3*i+2]
	}

	return nil
}

// ParamNames returns the documented vector-position names.
func (g *NGaussian) ParamNames() []string {
	names := make([]string, 0, 3*len(g.Peaks)+1)
	if !g.NoOffset {
		names = append(names, "offset")
	}

	for i := range g.Peaks {
		n := strconv.Itoa(i + 1)
		names = append(names, "amp"+n, "center"+n, "sigma"+n)
	}

	return names
}
