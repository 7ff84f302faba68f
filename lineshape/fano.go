package lineshape

import "math/cmplx"

// Fano is the Fano resonance lineshape in power units. Q is the Fano
// asymmetry factor:
//
//	y = Scale * (Q*FWHM/2 + (x-W0))^2 / ((FWHM/2)^2 + (x-W0)^2)
type Fano struct {
	W0    float64
	FWHM  float64
	Q     float64
	Scale float64
}

// Eval returns the Fano value at frequency x.
func (f *Fano) Eval(x float64) float64 {
	d := x - f.W0
	hw := f.FWHM / 2

	num := f.Q*hw + d

	return f.Scale * num * num / (hw*hw + d*d)
}

// EvalSlice evaluates the curve at every point of x into dst.
func (f *Fano) EvalSlice(dst, x []float64) []float64 {
	return evalInto(dst, x, f.Eval)
}

// Params returns [w0, fwhm, q, scale].
func (f *Fano) Params() []float64 {
	return []float64{f.W0, f.FWHM, f.Q, f.Scale}
}

// SetParams assigns [w0, fwhm, q, scale].
func (f *Fano) SetParams(p []float64) error {
	if err := checkLen("fano", len(p), 4); err != nil {
		return err
	}

	f.W0, f.FWHM, f.Q, f.Scale = p[0], p[1], p[2], p[3]

	return nil
}

// ParamNames returns the documented vector-position names.
func (f *Fano) ParamNames() []string {
	return []string{"w0", "fwhm", "fano-q", "scale"}
}

// AsymLorentzian is the power response of a resonant term interfering with
// a capacitive background path, which skews the Lorentzian profile:
//
//	y = |Scale/(1 + 2i(x-F0)/FWHM) + Scale*g/(i + g)|^2,  g = 2*x*Gamma/F0
type AsymLorentzian struct {
	F0    float64
	FWHM  float64
	Gamma float64
	Scale float64
}

func (a *AsymLorentzian) transfer(x float64) complex128 {
	res := complex(a.Scale, 0) / complex(1, 2*(x-a.F0)/a.FWHM)

	g := 2 * x * a.Gamma / a.F0
	bg := complex(a.Scale*g, 0) / complex(g, 1)

	return res + bg
}

// Eval returns the power value at frequency x.
func (a *AsymLorentzian) Eval(x float64) float64 {
	c := a.transfer(x)
	m := cmplx.Abs(c)

	return m * m
}

// EvalSlice evaluates the curve at every point of x into dst.
func (a *AsymLorentzian) EvalSlice(dst, x []float64) []float64 {
	return powerInto(dst, x, a.transfer)
}

// Params returns [f0, fwhm, gamma, scale].
func (a *AsymLorentzian) Params() []float64 {
	return []float64{a.F0, a.FWHM, a.Gamma, a.Scale}
}

// SetParams assigns [f0, fwhm, gamma, scale].
func (a *AsymLorentzian) SetParams(p []float64) error {
	if err := checkLen("asym-lorentzian", len(p), 4); err != nil {
		return err
	}

	a.F0, a.FWHM, a.Gamma, a.Scale = p[0], p[1], p[2], p[3]

	return nil
}

// ParamNames returns the documented vector-position names.
func (a *AsymLorentzian) ParamNames() []string {
	return []string{"f0", "fwhm", "gamma", "scale"}
}
