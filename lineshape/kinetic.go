package lineshape

// DefaultTc is the critical temperature assumed by KineticFraction when
// the two-parameter form is used, in the caller's temperature unit.
const DefaultTc = 1.2

// KineticFraction models the temperature dependence of a superconducting
// resonator's frequency due to kinetic inductance:
//
//	f(T) = F0 * (1 - Alpha/2 * 1/(1 - (T/Tc)^4))
//
// Tc may be held fixed: with FitTc false the parameter vector is
// [f0, alpha] and Tc keeps its current value (DefaultTc when zero). With
// FitTc set the vector is [f0, alpha, Tc]. TcAssumed records that the
// default was substituted so callers can surface the assumption instead of
// hiding it.
type KineticFraction struct {
	F0    float64
	Alpha float64
	Tc    float64
	FitTc bool

	TcAssumed bool
}

// Eval returns the resonance frequency at temperature x.
func (k *KineticFraction) Eval(x float64) float64 {
	r := x / k.Tc
	r2 := r * r

	return k.F0 * (1 - k.Alpha/2*1/(1-r2*r2))
}

// EvalSlice evaluates the curve at every point of x into dst.
func (k *KineticFraction) EvalSlice(dst, x []float64) []float64 {
	return evalInto(dst, x, k.Eval)
}

// Params returns [f0, alpha] or, with FitTc, [f0, alpha, Tc].
func (k *KineticFraction) Params() []float64 {
	if k.FitTc {
		return []float64{k.F0, k.Alpha, k.Tc}
	}

	return []float64{k.F0, k.Alpha}
}

// SetParams assigns the vector returned by Params. In the two-parameter
// form an unset Tc falls back to DefaultTc and TcAssumed is raised.
func (k *KineticFraction) SetParams(p []float64) error {
	want := 2
	if k.FitTc {
		want = 3
	}

	if err := checkLen("kinetic-fraction", len(p), want); err != nil {
		return err
	}

	k.F0, k.Alpha = p[0], p[1]

	if k.FitTc {
		k.Tc = p[2]
		k.TcAssumed = false

		return nil
	}

	if k.Tc == 0 {
		k.Tc = DefaultTc
		k.TcAssumed = true
	}

	return nil
}

// ParamNames returns the documented vector-position names.
func (k *KineticFraction) ParamNames() []string {
	if k.FitTc {
		return []string{"f0", "alpha", "Tc"}
	}

	return []string{"f0", "alpha"}
}
