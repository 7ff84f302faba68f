// Package lsq is the nonlinear least-squares engine behind the fit
// wrappers. It wraps a Levenberg-Marquardt solver with a numeric Jacobian,
// and optionally derives parameter standard errors from the covariance
// matrix at the solution.
//
// The engine is deliberately small: it accepts a model function, data and
// an initial parameter vector, and returns a Result. Convergence criteria
// are solver defaults and are not configurable; domain restriction and
// initial-guess heuristics live with the callers in package fit.
//
//	model := func(p []float64, x float64) float64 {
//	    return p[0] + p[1]*x
//	}
//	res, err := lsq.Solve(model, x, y, []float64{0, 1}, lsq.Config{ComputeErrors: true})
//
// A singular covariance matrix is reported as lsq.ErrCovariance while the
// fitted parameters remain valid; check with errors.Is and continue without
// standard errors when that is acceptable.
package lsq
