package lineshape

import "strconv"

// Polynomial is a polynomial of arbitrary order; the order is one less
// than len(Coeffs), which holds ascending powers:
//
//	y = Coeffs[0] + Coeffs[1]*x + Coeffs[2]*x^2 + ...
type Polynomial struct {
	Coeffs []float64
}

// Eval returns the polynomial value at x (Horner).
func (p *Polynomial) Eval(x float64) float64 {
	y := 0.0
	for i := len(p.Coeffs) - 1; i >= 0; i-- {
		y = y*x + p.Coeffs[i]
	}

	return y
}

// EvalSlice evaluates the curve at every point of x into dst.
func (p *Polynomial) EvalSlice(dst, x []float64) []float64 {
	return evalInto(dst, x, p.Eval)
}

// Params returns the ascending coefficients [a0, a1, a2, ...].
func (p *Polynomial) Params() []float64 {
	out := make([]float64, len(p.Coeffs))
	copy(out, p.Coeffs)

	return out
}

// SetParams assigns the ascending coefficients. The order is fixed by the
// current len(Coeffs).
func (p *Polynomial) SetParams(v []float64) error {
	if err := checkLen("polynomial", len(v), len(p.Coeffs)); err != nil {
		return err
	}

	copy(p.Coeffs, v)

	return nil
}

// ParamNames returns a0..aN.
func (p *Polynomial) ParamNames() []string {
	names := make([]string, len(p.Coeffs))
	for i := range names {
		names[i] = "a" + strconv.Itoa(i)
	}

	return names
}

// CenteredPoly9 is a ninth-order polynomial in (x - Center):
//
//	y = a0 + a1*(x-c) + a2*(x-c)^2 + ... + a9*(x-c)^9
type CenteredPoly9 struct {
	Coeffs [10]float64
	Center float64
}

// Eval returns the polynomial value at x (Horner in x-Center).
func (p *CenteredPoly9) Eval(x float64) float64 {
	d := x - p.Center

	y := 0.0
	for i := len(p.Coeffs) - 1; i >= 0; i-- {
		y = y*d + p.Coeffs[i]
	}

	return y
}

// EvalSlice evaluates the curve at every point of x into dst.
func (p *CenteredPoly9) EvalSlice(dst, x []float64) []float64 {
	return evalInto(dst, x, p.Eval)
}

// Params returns [a0, ..., a9, center].
func (p *CenteredPoly9) Params() []float64 {
	out := make([]float64, 0, 11)
	out = append(out, p.Coeffs[:]...)

	return append(out, p.Center)
}

// SetParams assigns [a0, ..., a9, center].
func (p *CenteredPoly9) SetParams(v []float64) error {
	if err := checkLen("centered-poly9", len(v), 11); err != nil {
		return err
	}

	copy(p.Coeffs[:], v[:10])
	p.Center = v[10]

	return nil
}

// ParamNames returns a0..a9 plus center.
func (p *CenteredPoly9) ParamNames() []string {
	names := make([]string, 0, 11)
	for i := range p.Coeffs {
		names = append(names, "a"+strconv.Itoa(i))
	}

	return append(names, "center")
}
