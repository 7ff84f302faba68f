package lineshape

import "math/cmplx"

// Hanger is the asymmetric impedance-mismatch transmission lineshape of a
// hanger-coupled resonator, in power units. F0 is the resonance frequency,
// Qi and Qc the internal and coupling quality factors, Df the mismatch
// detuning and Scale the off-resonance level.
type Hanger struct {
	F0    float64
	Qi    float64
	Qc    float64
	Df    float64
	Scale float64
}

// Eval returns the transmitted power at frequency x.
func (h *Hanger) Eval(x float64) float64 {
	a := (x - (h.F0 + h.Df)) / (h.F0 + h.Df)
	b := 2 * h.Df / h.F0
	q0 := h.Q0()

	num := -2*q0*h.Qc + h.Qc*h.Qc + q0*q0*(1+h.Qc*h.Qc*(2*a+b)*(2*a+b))
	den := h.Qc * h.Qc * (1 + 4*q0*q0*a*a)

	return h.Scale * num / den
}

// EvalSlice evaluates the curve at every point of x into dst.
func (h *Hanger) EvalSlice(dst, x []float64) []float64 {
	return evalInto(dst, x, h.Eval)
}

// Params returns [f0, Qi, Qc, df, scale].
func (h *Hanger) Params() []float64 {
	return []float64{h.F0, h.Qi, h.Qc, h.Df, h.Scale}
}

// SetParams assigns [f0, Qi, Qc, df, scale].
func (h *Hanger) SetParams(p []float64) error {
	if err := checkLen("hanger", len(p), 5); err != nil {
		return err
	}

	h.F0, h.Qi, h.Qc, h.Df, h.Scale = p[0], p[1], p[2], p[3], p[4]

	return nil
}

// ParamNames returns the documented vector-position names.
func (h *Hanger) ParamNames() []string {
	return []string{"f0", "Qi", "Qc", "df", "scale"}
}

// Q0 returns the combined quality factor 1/(1/Qi + 1/Qc).
func (h *Hanger) Q0() float64 {
	return 1 / (1/h.Qi + 1/h.Qc)
}

// S11Symmetric is the symmetric one-port reflection coefficient
// parameterized directly by quality factors, in voltage units.
type S11Symmetric struct {
	W0 float64
	Qi float64
	Qc float64
}

func (s *S11Symmetric) transfer(x float64) complex128 {
	det := complex(0, 2*(x-s.W0)*s.Qi/s.W0)

	num := complex((s.Qc-s.Qi)/s.Qc, 0) + det
	den := complex((s.Qi+s.Qc)/s.Qc, 0) + det

	return num / den
}

// Eval returns |S11| at frequency x.
func (s *S11Symmetric) Eval(x float64) float64 {
	return cmplx.Abs(s.transfer(x))
}

// EvalSlice evaluates |S11| at every point of x into dst.
func (s *S11Symmetric) EvalSlice(dst, x []float64) []float64 {
	return magnitudeInto(dst, x, s.transfer)
}

// Phase returns arg(S11) at frequency x, in radians.
func (s *S11Symmetric) Phase(x float64) float64 {
	return cmplx.Phase(s.transfer(x))
}

// PhaseSlice evaluates arg(S11) at every point of x.
func (s *S11Symmetric) PhaseSlice(x []float64) []float64 {
	c := make([]complex128, len(x))
	for i, v := range x {
		c[i] = s.transfer(v)
	}

	return Phases(c)
}

// Params returns [w0, Qi, Qc].
func (s *S11Symmetric) Params() []float64 {
	return []float64{s.W0, s.Qi, s.Qc}
}

// SetParams assigns [w0, Qi, Qc].
func (s *S11Symmetric) SetParams(p []float64) error {
	if err := checkLen("s11-symmetric", len(p), 3); err != nil {
		return err
	}

	s.W0, s.Qi, s.Qc = p[0], p[1], p[2]

	return nil
}

// ParamNames returns the documented vector-position names.
func (s *S11Symmetric) ParamNames() []string {
	return []string{"w0", "Qi", "Qc"}
}

// S11OnePort is the asymmetric one-port reflection magnitude in voltage
// units. Kr is the coupling rate, Eps the loss rate and Df the mismatch
// detuning, all in frequency units.
type S11OnePort struct {
	F0    float64
	Kr    float64
	Eps   float64
	Df    float64
	Scale float64
}

func (s *S11OnePort) transfer(x float64) complex128 {
	num := complex(s.Eps-s.Kr/2, x-s.F0)
	den := complex(s.Eps+s.Kr/2, x-s.F0+s.Df)

	return num / den
}

// Eval returns Scale*|S11| at frequency x.
func (s *S11OnePort) Eval(x float64) float64 {
	return s.Scale * cmplx.Abs(s.transfer(x))
}

// EvalSlice evaluates the curve at every point of x into dst.
func (s *S11OnePort) EvalSlice(dst, x []float64) []float64 {
	dst = magnitudeInto(dst, x, s.transfer)
	for i := range dst {
		dst[i] *= s.Scale
	}

	return dst
}

// Phase returns arg(S11) at frequency x, in radians. Scale drops out.
func (s *S11OnePort) Phase(x float64) float64 {
	return cmplx.Phase(s.transfer(x))
}

// PhaseSlice evaluates arg(S11) at every point of x.
func (s *S11OnePort) PhaseSlice(x []float64) []float64 {
	c := make([]complex128, len(x))
	for i, v := range x {
		c[i] = s.transfer(v)
	}

	return Phases(c)
}

// Params returns [f0, kr, eps, df, scale].
func (s *S11OnePort) Params() []float64 {
	return []float64{s.F0, s.Kr, s.Eps, s.Df, s.Scale}
}

// SetParams assigns [f0, kr, eps, df, scale].
func (s *S11OnePort) SetParams(p []float64) error {
	if err := checkLen("s11-oneport", len(p), 5); err != nil {
		return err
	}

	s.F0, s.Kr, s.Eps, s.Df, s.Scale = p[0], p[1], p[2], p[3], p[4]

	return nil
}

// ParamNames returns the documented vector-position names.
func (s *S11OnePort) ParamNames() []string {
	return []string{"f0", "kr", "eps", "df", "scale"}
}

// Qi returns the internal quality factor f0/(2*eps).
func (s *S11OnePort) Qi() float64 { return s.F0 / (2 * s.Eps) }

// Qc returns the coupling quality factor f0/kr.
func (s *S11OnePort) Qc() float64 { return s.F0 / s.Kr }

// S11TwoPort is the reflection magnitude off a two-port resonator in
// voltage units, parameterized by quality factors.
type S11TwoPort struct {
	F0    float64
	Qc    float64
	Qi    float64
	Df    float64
	Scale float64
}

func (s *S11TwoPort) transfer(x float64) complex128 {
	dw := x - s.F0
	kr := s.F0 / s.Qc
	eps := s.F0 / s.Qi
	ki := s.Df

	num := complex(-eps, ki-dw)
	den := complex(kr+eps, dw)

	return num / den
}

// Eval returns Scale*|S11| at frequency x.
func (s *S11TwoPort) Eval(x float64) float64 {
	return s.Scale * cmplx.Abs(s.transfer(x))
}

// EvalSlice evaluates the curve at every point of x into dst.
func (s *S11TwoPort) EvalSlice(dst, x []float64) []float64 {
	dst = magnitudeInto(dst, x, s.transfer)
	for i := range dst {
		dst[i] *= s.Scale
	}

	return dst
}

// Phase returns arg(S11) at frequency x, in radians.
func (s *S11TwoPort) Phase(x float64) float64 {
	return cmplx.Phase(s.transfer(x))
}

// PhaseSlice evaluates arg(S11) at every point of x.
func (s *S11TwoPort) PhaseSlice(x []float64) []float64 {
	c := make([]complex128, len(x))
	for i, v := range x {
		c[i] = s.transfer(v)
	}

	return Phases(c)
}

// Params returns [f0, Qc, Qi, df, scale].
func (s *S11TwoPort) Params() []float64 {
	return []float64{s.F0, s.Qc, s.Qi, s.Df, s.Scale}
}

// SetParams assigns [f0, Qc, Qi, df, scale].
func (s *S11TwoPort) SetParams(p []float64) error {
	if err := checkLen("s11-twoport", len(p), 5); err != nil {
		return err
	}

	s.F0, s.Qc, s.Qi, s.Df, s.Scale = p[0], p[1], p[2], p[3], p[4]

	return nil
}

// ParamNames returns the documented vector-position names.
func (s *S11TwoPort) ParamNames() []string {
	return []string{"f0", "Qc", "Qi", "df", "scale"}
}
