package lineshape

import "math"

const degToRad = math.Pi / 180

// Sine is a plain sinusoid on a constant offset. Phase is in degrees,
// Freq in cycles per x-unit:
//
//	y = Amp * sin(2*pi*Freq*x + Phase*pi/180) + Offset
type Sine struct {
	Amp    float64
	Freq   float64
	Phase  float64
	Offset float64
}

// Eval returns the sinusoid value at x.
func (s *Sine) Eval(x float64) float64 {
	return s.Amp*math.Sin(2*math.Pi*s.Freq*x+s.Phase*degToRad) + s.Offset
}

// EvalSlice evaluates the curve at every point of x into dst.
func (s *Sine) EvalSlice(dst, x []float64) []float64 {
	return evalInto(dst, x, s.Eval)
}

// Params returns [amplitude, frequency, phase, offset].
func (s *Sine) Params() []float64 {
	return []float64{s.Amp, s.Freq, s.Phase, s.Offset}
}

// SetParams assigns [amplitude, frequency, phase, offset].
func (s *Sine) SetParams(p []float64) error {
	if err := checkLen("sine", len(p), 4); err != nil {
		return err
	}

	s.Amp, s.Freq, s.Phase, s.Offset = p[0], p[1], p[2], p[3]

	return nil
}

// ParamNames returns the documented vector-position names.
func (s *Sine) ParamNames() []string {
	return []string{"amplitude", "frequency", "phase", "offset"}
}

// DecaySine is an exponentially decaying sinusoid. Phase is in degrees.
// T0 anchors the decay envelope and is held fixed during fitting (it is
// set from the first x sample, not solved for):
//
//	y = Amp * sin(2*pi*Freq*x + Phase*pi/180) * exp(-(x-T0)/Tau) + Offset
type DecaySine struct {
	Amp    float64
	Freq   float64
	Phase  float64
	Tau    float64
	Offset float64
	T0     float64
}

// Eval returns the decaying-sinusoid value at x.
func (s *DecaySine) Eval(x float64) float64 {
	return s.Amp*math.Sin(2*math.Pi*s.Freq*x+s.Phase*degToRad)*
		math.Exp(-(x-s.T0)/s.Tau) + s.Offset
}

// EvalSlice evaluates the curve at every point of x into dst.
func (s *DecaySine) EvalSlice(dst, x []float64) []float64 {
	return evalInto(dst, x, s.Eval)
}

// Params returns [amplitude, frequency, phase, tau, offset]. T0 is fixed
// and intentionally excluded.
func (s *DecaySine) Params() []float64 {
	return []float64{s.Amp, s.Freq, s.Phase, s.Tau, s.Offset}
}

// SetParams assigns [amplitude, frequency, phase, tau, offset].
func (s *DecaySine) SetParams(p []float64) error {
	if err := checkLen("decay-sine", len(p), 5); err != nil {
		return err
	}

	s.Amp, s.Freq, s.Phase, s.Tau, s.Offset = p[0], p[1], p[2], p[3], p[4]

	return nil
}

// ParamNames returns the documented vector-position names.
func (s *DecaySine) ParamNames() []string {
	return []string{"amplitude", "frequency", "phase", "tau", "offset"}
}
