package lsq

import (
	"errors"
	"math"
	"testing"
)

func linspace(lo, hi float64, n int) []float64 {
	out := make([]float64, n)
	step := (hi - lo) / float64(n-1)
	for i := range out {
		out[i] = lo + float64(i)*step
	}

	return out
}

func TestSolveRecoversLorentzian(t *testing.T) {
	model := func(p []float64, x float64) float64 {
		d := (x - p[2]) / p[3]
		return p[0] + p[1]/(1+d*d)
	}

	truth := []float64{5, 3, 4, 0.5}
	x := linspace(0, 10, 200)
	y := make([]float64, len(x))
	for i, v := range x {
		y[i] = model(truth, v)
	}

	// Perturbed start.
	p0 := []float64{4.5, 3.5, 4.2, 0.7}

	res, err := Solve(model, x, y, p0, Config{})
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}
	if !res.Converged {
		t.Fatal("expected convergence on noiseless data")
	}

	for i, want := range truth {
		if rel := math.Abs(res.Params[i]-want) / want; rel > 1e-6 {
			t.Fatalf("param %d: got %v want %v (rel %v)", i, res.Params[i], want, rel)
		}
	}

	if res.RSS > 1e-10 {
		t.Fatalf("residual too large for noiseless fit: %v", res.RSS)
	}
}

func TestSolveExactlyDeterminedPolynomial(t *testing.T) {
	model := func(p []float64, x float64) float64 {
		return p[0] + p[1]*x + p[2]*x*x
	}

	x := []float64{0, 1, 2, 3, 4}
	y := make([]float64, len(x))
	for i, v := range x {
		y[i] = 2 + 3*v - v*v
	}

	res, err := Solve(model, x, y, []float64{0, 0, 0}, Config{})
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}

	want := []float64{2, 3, -1}
	for i := range want {
		if math.Abs(res.Params[i]-want[i]) > 1e-8 {
			t.Fatalf("param %d: got %v want %v", i, res.Params[i], want[i])
		}
	}
}

func TestSolveStandardErrorsSmallForCleanData(t *testing.T) {
	model := func(p []float64, x float64) float64 {
		return p[0] + p[1]*math.Exp(-x/p[2])
	}

	truth := []float64{1, 4, 2.5}
	x := linspace(0, 10, 100)
	y := make([]float64, len(x))
	for i, v := range x {
		y[i] = model(truth, v)
	}

	res, err := Solve(model, x, y, []float64{0.8, 3, 2}, Config{ComputeErrors: true})
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}
	if res.Errors == nil {
		t.Fatal("expected standard errors")
	}
	if len(res.Errors) != len(truth) {
		t.Fatalf("error vector length: got %d want %d", len(res.Errors), len(truth))
	}

	// Noiseless data: standard errors collapse toward zero.
	for i, e := range res.Errors {
		if e > 1e-4 {
			t.Fatalf("stderr %d too large for noiseless data: %v", i, e)
		}
	}
}

func TestSolveCovarianceSingular(t *testing.T) {
	// p[1] never enters the model, so the objective is flat along it and
	// J'J is singular.
	model := func(p []float64, x float64) float64 {
		return p[0]
	}

	x := linspace(0, 1, 10)
	y := make([]float64, len(x))
	for i := range y {
		y[i] = 2
	}

	res, err := Solve(model, x, y, []float64{1, 1}, Config{ComputeErrors: true})
	if !errors.Is(err, ErrCovariance) {
		t.Fatalf("got %v want ErrCovariance", err)
	}
	if res.Params == nil {
		t.Fatal("best-fit parameters must survive a covariance failure")
	}
	if res.Errors != nil {
		t.Fatal("errors must be nil when the covariance failed")
	}
}

func TestSolveTooFewPoints(t *testing.T) {
	model := func(p []float64, x float64) float64 { return p[0] + p[1]*x }

	x := []float64{0, 1}
	y := []float64{1, 2}

	_, err := Solve(model, x, y, []float64{0, 0}, Config{ComputeErrors: true})
	if !errors.Is(err, ErrCovariance) {
		t.Fatalf("n<=m must fail error computation: got %v", err)
	}
}

func TestSolveLengthMismatch(t *testing.T) {
	model := func(p []float64, x float64) float64 { return p[0] }

	if _, err := Solve(model, []float64{1, 2}, []float64{1}, []float64{0}, Config{}); err == nil {
		t.Fatal("expected length-mismatch error")
	}
}

func TestRSquareBounds(t *testing.T) {
	y := []float64{1, 2, 3, 4, 5}

	if got := RSquare(y, y); got != 1 {
		t.Fatalf("perfect fit: got %v want exactly 1", got)
	}

	mean := make([]float64, len(y))
	for i := range mean {
		mean[i] = 3
	}

	if got := RSquare(y, mean); got != 0 {
		t.Fatalf("mean fit: got %v want exactly 0", got)
	}
}
