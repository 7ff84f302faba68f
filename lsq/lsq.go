package lsq

import (
	"errors"
	"fmt"
	"math"

	"github.com/maorshutman/lm"
	"gonum.org/v1/gonum/mat"
)

// ErrCovariance is returned when the parameter covariance matrix cannot be
// computed, typically because the objective is flat in some parameter
// direction and J'J is singular. The fit itself is still valid; callers
// should treat this as a recoverable loss of the error estimates only.
var ErrCovariance = errors.New("lsq: covariance matrix could not be computed")

// Solver-default Levenberg-Marquardt settings. Not exposed to callers; the
// wrappers rely on these converging for reasonable initial guesses.
const (
	lmTau          = 1e-6
	lmEps1         = 1e-8
	lmEps2         = 1e-8
	lmIterations   = 100
	lmObjectiveTol = 1e-16
)

// ModelFunc evaluates a model with parameter vector p at a single point x.
type ModelFunc func(p []float64, x float64) float64

// Config controls a Solve call.
type Config struct {
	// ComputeErrors requests parameter standard errors from the covariance
	// matrix at the solution.
	ComputeErrors bool
}

// Result holds the outcome of a least-squares solve. Errors is nil unless
// standard errors were requested and the covariance computation succeeded.
type Result struct {
	Params    []float64
	Errors    []float64
	Converged bool
	RSS       float64
}

// Solve minimizes the sum of squared residuals f(p, x_i) - y_i over p,
// starting from p0, using Levenberg-Marquardt with a numeric Jacobian.
//
// Best-fit parameters are returned even when the optimizer stops without
// formally converging (Converged false). When cfg.ComputeErrors is set and
// the covariance matrix is singular, the returned error wraps
// ErrCovariance while Result still carries the fitted parameters.
func Solve(f ModelFunc, x, y, p0 []float64, cfg Config) (Result, error) {
	if len(x) != len(y) {
		return Result{}, fmt.Errorf("lsq: x/y length mismatch: %d vs %d", len(x), len(y))
	}

	if len(p0) == 0 {
		return Result{}, errors.New("lsq: empty initial parameter vector")
	}

	resid := func(dst, p []float64) {
		for i := range x {
			dst[i] = f(p, x[i]) - y[i]
		}
	}

	jac := lm.NumJac{Func: resid}

	prob := lm.LMProblem{
		Dim:        len(p0),
		Size:       len(x),
		Func:       resid,
		Jac:        jac.Jac,
		InitParams: append([]float64(nil), p0...),
		Tau:        lmTau,
		Eps1:       lmEps1,
		Eps2:       lmEps2,
	}

	lmRes, lmErr := lm.LM(prob, &lm.Settings{
		Iterations:   lmIterations,
		ObjectiveTol: lmObjectiveTol,
	})

	res := Result{Converged: lmErr == nil}

	if lmRes != nil && lmRes.X != nil {
		res.Params = lmRes.X
	} else {
		res.Params = append([]float64(nil), p0...)
	}

	res.RSS = rss(resid, res.Params, len(x))

	if lmErr != nil {
		return res, fmt.Errorf("lsq: optimizer did not converge: %w", lmErr)
	}

	if !cfg.ComputeErrors {
		return res, nil
	}

	stderrs, err := standardErrors(jac, res.Params, len(x), res.RSS)
	if err != nil {
		return res, err
	}

	res.Errors = stderrs

	return res, nil
}

func rss(resid func(dst, p []float64), p []float64, n int) float64 {
	r := make([]float64, n)
	resid(r, p)

	sum := 0.0
	for _, v := range r {
		sum += v * v
	}

	return sum
}

// standardErrors derives per-parameter standard errors from the diagonal
// of cov = s^2 (J'J)^-1, with s^2 the residual variance RSS/(n-m).
func standardErrors(jac lm.NumJac, p []float64, n int, rss float64) ([]float64, error) {
	m := len(p)
	if n <= m {
		return nil, fmt.Errorf("lsq: %d points for %d parameters: %w", n, m, ErrCovariance)
	}

	j := mat.NewDense(n, m, nil)
	jac.Jac(j, p)

	var jtj mat.Dense
	jtj.Mul(j.T(), j)

	var inv mat.Dense
	if err := inv.Inverse(&jtj); err != nil {
		return nil, fmt.Errorf("lsq: %v: %w", err, ErrCovariance)
	}

	s2 := rss / float64(n-m)

	out := make([]float64, m)
	for i := range out {
		v := s2 * inv.At(i, i)
		if v < 0 || math.IsNaN(v) {
			return nil, fmt.Errorf("lsq: negative variance on parameter %d: %w", i, ErrCovariance)
		}

		out[i] = math.Sqrt(v)
	}

	return out, nil
}
