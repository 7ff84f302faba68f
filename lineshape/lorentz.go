package lineshape

// Lorentzian is a single Lorentzian peak on a constant offset:
//
//	y = Offset + Amp / (1 + ((x-Center)/HWHM)^2)
type Lorentzian struct {
	Offset float64
	Amp    float64
	Center float64
	HWHM   float64
}

// Eval returns the Lorentzian value at x.
func (l *Lorentzian) Eval(x float64) float64 {
	d := (x - l.Center) / l.HWHM
	return l.Offset + l.Amp/(1+d*d)
}

// EvalSlice evaluates the curve at every point of x into dst.
func (l *Lorentzian) EvalSlice(dst, x []float64) []float64 {
	return evalInto(dst, x, l.Eval)
}

// Params returns [offset, amplitude, center, hwhm].
func (l *Lorentzian) Params() []float64 {
	return []float64{l.Offset, l.Amp, l.Center, l.HWHM}
}

// SetParams assigns [offset, amplitude, center, hwhm].
func (l *Lorentzian) SetParams(p []float64) error {
	if err := checkLen("lorentzian", len(p), 4); err != nil {
		return err
	}

	l.Offset, l.Amp, l.Center, l.HWHM = p[0], p[1], p[2], p[3]

	return nil
}

// ParamNames returns the documented vector-position names.
func (l *Lorentzian) ParamNames() []string {
	return []string{"offset", "amplitude", "center", "hwhm"}
}

// Q returns the quality factor Center/(2*HWHM) = center/FWHM.
func (l *Lorentzian) Q() float64 {
	return l.Center / (2 * l.HWHM)
}

// TwoLorentzian is a sum of two Lorentzian peaks sharing one offset:
//
//	y = Offset + A1/(1+((x-C1)/W1)^2) + A2/(1+((x-C2)/W2)^2)
type TwoLorentzian struct {
	Offset float64
	A1     float64
	C1     float64
	W1     float64
	A2     float64
	C2     float64
	W2     float64
}

// Eval returns the double-Lorentzian value at x.
func (l *TwoLorentzian) Eval(x float64) float64 {
	d1 := (x - l.C1) / l.W1
	d2 := (x - l.C2) / l.W2

	return l.Offset + l.A1/(1+d1*d1) + l.A2/(1+d2*d2)
}

// EvalSlice evaluates the curve at every point of x into dst.
func (l *TwoLorentzian) EvalSlice(dst, x []float64) []float64 {
	return evalInto(dst, x, l.Eval)
}

// Params returns [offset, amp1, center1, hwhm1, amp2, center2, hwhm2].
func (l *TwoLorentzian) Params() []float64 {
	return []float64{l.Offset, l.A1, l.C1, l.W1, l.A2, l.C2, l.W2}
}

// SetParams assigns [offset, amp1, center1, hwhm1, amp2, center2, hwhm2].
func (l *TwoLorentzian) SetParams(p []float64) error {
	if err := checkLen("two-lorentzian", len(p), 7); err != nil {
		return err
	}

	l.Offset = p[0]
	l.A1, l.C1, l.W1 = p[1], p[2], p[3]
	l.A2, l.C2, l.W2 = p[4], p[5], p[6]

	return nil
}

// ParamNames returns the documented vector-position names.
func (l *TwoLorentzian) ParamNames() []string {
	return []string{"offset", "amp1", "center1", "hwhm1", "amp2", "center2", "hwhm2"}
}

// Parabola is y = A0 + A1*(x-A2)^2.
type Parabola struct {
	A0 float64
	A1 float64
	A2 float64
}

// Eval returns the parabola value at x.
func (p *Parabola) Eval(x float64) float64 {
	d := x - p.A2
	return p.A0 + p.A1*d*d
}

// EvalSlice evaluates the curve at every point of x into dst.
func (p *Parabola) EvalSlice(dst, x []float64) []float64 {
	return evalInto(dst, x, p.Eval)
}

// Params returns [a0, a1, a2].
func (p *Parabola) Params() []float64 {
	return []float64{p.A0, p.A1, p.A2}
}

// SetParams assigns [a0, a1, a2].
func (p *Parabola) SetParams(v []float64) error {
	if err := checkLen("parabola", len(v), 3); err != nil {
		return err
	}

	p.A0, p.A1, p.A2 = v[0], v[1], v[2]

	return nil
}

// ParamNames returns the documented vector-position names.
func (p *Parabola) ParamNames() []string {
	return []string{"a0", "a1", "a2"}
}
