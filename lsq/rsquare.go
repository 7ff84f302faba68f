package lsq

import "gonum.org/v1/gonum/stat"

// RSquare returns the coefficient of determination
//
//	R^2 = 1 - sum((y - yfit)^2) / sum((y - mean(y))^2)
//
// of fitted values against observations. A perfect fit gives exactly 1;
// fitting the mean gives exactly 0. Zero total variance is not special-
// cased: the division propagates as NaN or infinity, which callers must
// treat as a degenerate-fit signal.
func RSquare(y, yfit []float64) float64 {
	return stat.RSquaredFrom(yfit, y, nil)
}
