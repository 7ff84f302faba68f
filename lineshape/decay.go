package lineshape

import "math"

// Exponential is an exponential decay on a constant offset:
//
//	y = Offset + Amp * exp(-(x-T0)/Tau)
type Exponential struct {
	Offset float64
	Amp    float64
	T0     float64
	Tau    float64
}

// Eval returns the decay value at x.
func (e *Exponential) Eval(x float64) float64 {
	return e.Offset + e.Amp*math.Exp(-(x-e.T0)/e.Tau)
}

// EvalSlice evaluates the curve at every point of x into dst.
func (e *Exponential) EvalSlice(dst, x []float64) []float64 {
	return evalInto(dst, x, e.Eval)
}

// Params returns [offset, amplitude, t0, tau].
func (e *Exponential) Params() []float64 {
	return []float64{e.Offset, e.Amp, e.T0, e.Tau}
}

// SetParams assigns [offset, amplitude, t0, tau].
func (e *Exponential) SetParams(p []float64) error {
	if err := checkLen("exponential", len(p), 4); err != nil {
		return err
	}

	e.Offset, e.Amp, e.T0, e.Tau = p[0], p[1], p[2], p[3]

	return nil
}

// ParamNames returns the documented vector-position names.
func (e *Exponential) ParamNames() []string {
	return []string{"offset", "amplitude", "t0", "tau"}
}

// PulseError models the decay of sequence fidelity with pulse number x,
// where Err is the per-pulse error probability:
//
//	y = Offset + 0.5 * (1 - (1-Err)^x)
type PulseError struct {
	Offset float64
	Err    float64
}

// Eval returns the model value at pulse number x.
func (p *PulseError) Eval(x float64) float64 {
	return p.Offset + 0.5*(1-math.Pow(1-p.Err, x))
}

// EvalSlice evaluates the curve at every point of x into dst.
func (p *PulseError) EvalSlice(dst, x []float64) []float64 {
	return evalInto(dst, x, p.Eval)
}

// Params returns [offset, error].
func (p *PulseError) Params() []float64 {
	return []float64{p.Offset, p.Err}
}

// SetParams assigns [offset, error].
func (p *PulseError) SetParams(v []float64) error {
	if err := checkLen("pulse-error", len(v), 2); err != nil {
		return err
	}

	p.Offset, p.Err = v[0], v[1]

	return nil
}

// ParamNames returns the documented vector-position names.
func (p *PulseError) ParamNames() []string {
	return []string{"offset", "error"}
}
