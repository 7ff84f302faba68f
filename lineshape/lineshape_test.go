package lineshape

import (
	"errors"
	"math"
	"testing"
)

func TestLorentzianEval(t *testing.T) {
	l := &Lorentzian{Offset: 5, Amp: 3, Center: 4, HWHM: 0.5}

	if got := l.Eval(4); math.Abs(got-8) > 1e-15 {
		t.Fatalf("peak value mismatch: got %v want 8", got)
	}

	// At one half-width from center the peak term halves.
	if got := l.Eval(4.5); math.Abs(got-6.5) > 1e-15 {
		t.Fatalf("half-max value mismatch: got %v want 6.5", got)
	}
}

func TestLorentzianQ(t *testing.T) {
	l := &Lorentzian{Center: 6e9, HWHM: 1e6}
	if got, want := l.Q(), 3000.0; math.Abs(got-want) > 1e-9 {
		t.Fatalf("Q mismatch: got %v want %v", got, want)
	}
}

func TestTwoLorentzianIsSumOfSingles(t *testing.T) {
	a := &Lorentzian{Amp: 2, Center: 1, HWHM: 0.3}
	b := &Lorentzian{Amp: 5, Center: 4, HWHM: 0.8}
	d := &TwoLorentzian{
		Offset: 1.5,
		A1:     2, C1: 1, W1: 0.3,
		A2: 5, C2: 4, W2: 0.8,
	}

	for _, x := range []float64{0, 0.5, 1, 2.2, 4, 6} {
		want := 1.5 + a.Eval(x) + b.Eval(x)
		if got := d.Eval(x); math.Abs(got-want) > 1e-12 {
			t.Fatalf("x=%v: got %v want %v", x, got, want)
		}
	}
}

func TestGaussianOffsetVariants(t *testing.T) {
	g := &Gaussian{Offset: 2, Amp: 3, Center: 1, Sigma: 0.5}

	if got := g.Eval(1); math.Abs(got-5) > 1e-15 {
		t.Fatalf("peak mismatch: got %v want 5", got)
	}

	want := 2 + 3*math.Exp(-0.5*4)
	if got := g.Eval(2); math.Abs(got-want) > 1e-15 {
		t.Fatalf("tail mismatch: got %v want %v", got, want)
	}

	g.NoOffset = true
	if got := len(g.Params()); got != 3 {
		t.Fatalf("no-offset param count: got %d want 3", got)
	}
	if got := g.Eval(1); math.Abs(got-3) > 1e-15 {
		t.Fatalf("no-offset peak mismatch: got %v want 3", got)
	}
}

func TestNGaussianRoundTrip(t *testing.T) {
	g := &NGaussian{Peaks: make([]GaussPeak, 2)}

	p := []float64{1, 2, 3, 0.4, 5, 6, 0.7}
	if err := g.SetParams(p); err != nil {
		t.Fatalf("SetParams: %v", err)
	}

	got := g.Params()
	for i := range p {
		if got[i] != p[i] {
			t.Fatalf("round-trip mismatch at %d: got %v want %v", i, got[i], p[i])
		}
	}

	if err := g.SetParams(p[:5]); !errors.Is(err, ErrParamCount) {
		t.Fatalf("short vector: got %v want ErrParamCount", err)
	}
}

func TestExponentialEval(t *testing.T) {
	e := &Exponential{Offset: 1, Amp: 4, T0: 2, Tau: 3}

	if got := e.Eval(2); math.Abs(got-5) > 1e-15 {
		t.Fatalf("t0 value mismatch: got %v want 5", got)
	}

	want := 1 + 4*math.Exp(-1)
	if got := e.Eval(5); math.Abs(got-want) > 1e-15 {
		t.Fatalf("one-tau value mismatch: got %v want %v", got, want)
	}
}

func TestPulseErrorEval(t *testing.T) {
	p := &PulseError{Offset: 0.5, Err: 0.01}

	if got := p.Eval(0); math.Abs(got-0.5) > 1e-15 {
		t.Fatalf("zero-pulse value mismatch: got %v want 0.5", got)
	}

	want := 0.5 + 0.5*(1-math.Pow(0.99, 10))
	if got := p.Eval(10); math.Abs(got-want) > 1e-15 {
		t.Fatalf("ten-pulse value mismatch: got %v want %v", got, want)
	}
}

func TestSinePhaseDegrees(t *testing.T) {
	s := &Sine{Amp: 2, Freq: 0, Phase: 90, Offset: 1}

	// Zero frequency leaves only the phase term: 2*sin(90 deg)+1 = 3.
	if got := s.Eval(12.3); math.Abs(got-3) > 1e-12 {
		t.Fatalf("phase conversion mismatch: got %v want 3", got)
	}
}

func TestDecaySineEnvelope(t *testing.T) {
	s := &DecaySine{Amp: 1, Freq: 0.25, Phase: 0, Tau: 2, Offset: 0, T0: 0}

	// At x=1 the sine term is sin(pi/2)=1, so y = exp(-1/2).
	want := math.Exp(-0.5)
	if got := s.Eval(1); math.Abs(got-want) > 1e-12 {
		t.Fatalf("envelope mismatch: got %v want %v", got, want)
	}

	if got := len(s.Params()); got != 5 {
		t.Fatalf("T0 must not be fitted: got %d params want 5", got)
	}
}

func TestHangerOffResonanceLevel(t *testing.T) {
	h := &Hanger{F0: 5e9, Qi: 1e5, Qc: 2e4, Df: 0, Scale: 1}

	// Far off resonance the transmission approaches Scale.
	if got := h.Eval(5e9 + 1e9); math.Abs(got-1) > 1e-2 {
		t.Fatalf("off-resonance level mismatch: got %v want ~1", got)
	}

	// On resonance the dip is below the baseline.
	if got := h.Eval(5e9); got >= 1 {
		t.Fatalf("no dip on resonance: got %v", got)
	}

	wantQ0 := 1 / (1/1e5 + 1/2e4)
	if got := h.Q0(); math.Abs(got-wantQ0) > 1e-9 {
		t.Fatalf("Q0 mismatch: got %v want %v", got, wantQ0)
	}
}

func TestS11OnePortDerivedQs(t *testing.T) {
	s := &S11OnePort{F0: 6e9, Kr: 3e6, Eps: 1e6, Scale: 1}

	if got, want := s.Qi(), 3000.0; math.Abs(got-want) > 1e-9 {
		t.Fatalf("Qi mismatch: got %v want %v", got, want)
	}
	if got, want := s.Qc(), 2000.0; math.Abs(got-want) > 1e-9 {
		t.Fatalf("Qc mismatch: got %v want %v", got, want)
	}

	// On resonance with df=0: |eps - kr/2| / (eps + kr/2) = 0.5/2.5.
	if got, want := s.Eval(6e9), 0.2; math.Abs(got-want) > 1e-12 {
		t.Fatalf("resonance dip mismatch: got %v want %v", got, want)
	}
}

func TestFanoReducesToLorentzianAtLargeQ(t *testing.T) {
	// For q -> inf the lineshape near w0 approaches scale*q^2 at center.
	f := &Fano{W0: 2, FWHM: 0.5, Q: 100, Scale: 1e-4}

	got := f.Eval(2)
	want := 1e-4 * 100 * 100

	if math.Abs(got-want)/want > 1e-9 {
		t.Fatalf("center value mismatch: got %v want %v", got, want)
	}
}

func TestAsymLorentzianReducesToSymmetric(t *testing.T) {
	// With Gamma=0 the background path vanishes and the power response is
	// a plain squared Lorentzian magnitude.
	a := &AsymLorentzian{F0: 4, FWHM: 1, Gamma: 0, Scale: 2}

	if got := a.Eval(4); math.Abs(got-4) > 1e-12 {
		t.Fatalf("center mismatch: got %v want 4", got)
	}

	// One half-width off center: |scale/(1+i)|^2 = scale^2/2.
	if got := a.Eval(4.5); math.Abs(got-2) > 1e-12 {
		t.Fatalf("half-width mismatch: got %v want 2", got)
	}
}

func TestPolynomialHorner(t *testing.T) {
	p := &Polynomial{Coeffs: []float64{2, 3, -1}}

	for _, x := range []float64{0, 1, 2, 3, 4} {
		want := 2 + 3*x - x*x
		if got := p.Eval(x); math.Abs(got-want) > 1e-12 {
			t.Fatalf("x=%v: got %v want %v", x, got, want)
		}
	}
}

func TestCenteredPoly9(t *testing.T) {
	p := &CenteredPoly9{Center: 1}
	p.Coeffs[0] = 2
	p.Coeffs[2] = 3

	// y = 2 + 3*(x-1)^2
	if got := p.Eval(3); math.Abs(got-14) > 1e-12 {
		t.Fatalf("got %v want 14", got)
	}

	if got := len(p.Params()); got != 11 {
		t.Fatalf("param count: got %d want 11", got)
	}
}

func TestParabolaEval(t *testing.T) {
	p := &Parabola{A0: 1, A1: 2, A2: 3}

	if got := p.Eval(5); math.Abs(got-9) > 1e-12 {
		t.Fatalf("got %v want 9", got)
	}
}

func TestKineticFractionTcDefault(t *testing.T) {
	k := &KineticFraction{}

	if err := k.SetParams([]float64{6e9, 0.05}); err != nil {
		t.Fatalf("SetParams: %v", err)
	}

	if !k.TcAssumed {
		t.Fatal("expected TcAssumed after two-parameter SetParams")
	}
	if k.Tc != DefaultTc {
		t.Fatalf("Tc mismatch: got %v want %v", k.Tc, DefaultTc)
	}

	// At T=0 the correction is alpha/2.
	want := 6e9 * (1 - 0.05/2)
	if got := k.Eval(0); math.Abs(got-want) > 1e-3 {
		t.Fatalf("zero-temperature value mismatch: got %v want %v", got, want)
	}
}

func TestKineticFractionFitTc(t *testing.T) {
	k := &KineticFraction{FitTc: true}

	if err := k.SetParams([]float64{6e9, 0.05, 1.4}); err != nil {
		t.Fatalf("SetParams: %v", err)
	}
	if k.TcAssumed {
		t.Fatal("TcAssumed must not be raised when Tc is fitted")
	}
	if k.Tc != 1.4 {
		t.Fatalf("Tc mismatch: got %v want 1.4", k.Tc)
	}

	if err := k.SetParams([]float64{6e9, 0.05}); !errors.Is(err, ErrParamCount) {
		t.Fatalf("short vector with FitTc: got %v want ErrParamCount", err)
	}
}

func TestSetParamsLengthChecked(t *testing.T) {
	curves := []Curve{
		&Lorentzian{}, &TwoLorentzian{}, &Gaussian{}, &Exponential{},
		&PulseError{}, &Sine{}, &DecaySine{}, &Hanger{}, &Fano{},
		&AsymLorentzian{}, &S11Symmetric{}, &S11OnePort{}, &S11TwoPort{},
		&Parabola{}, &CenteredPoly9{},
	}

	for _, c := range curves {
		bad := make([]float64, len(c.Params())+1)
		if err := c.SetParams(bad); !errors.Is(err, ErrParamCount) {
			t.Fatalf("%T: got %v want ErrParamCount", c, err)
		}
	}
}
