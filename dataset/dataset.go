// Package dataset provides paired (x, y) sample utilities shared by the
// fitting packages: domain restriction via binary search over sorted x,
// co-sorting of unsorted acquisitions, and the single-pass summary
// statistics the initial-guess heuristics feed on.
package dataset

import (
	"math"
	"sort"
)

// Select returns the contiguous subsequence of x (and the matching indices
// of y) whose values fall within the half-open interval [lo, hi). The
// returned slices are views into the inputs, not copies.
//
// x must be sorted ascending; Select does not verify this, and unsorted
// input yields an incorrect slice. When no points fall inside the interval,
// including an inverted interval with hi < lo, both returned slices are
// empty.
func Select(x, y []float64, lo, hi float64) ([]float64, []float64) {
	i := sort.SearchFloat64s(x, lo)
	j := sort.SearchFloat64s(x, hi)

	if j < i {
		j = i
	}

	return x[i:j], y[i:j]
}

// zipView sorts x ascending while carrying y along.
type zipView struct {
	x, y []float64
}

func (v zipView) Len() int           { return len(v.x) }
func (v zipView) Less(i, j int) bool { return v.x[i] < v.x[j] }

func (v zipView) Swap(i, j int) {
	v.x[i], v.x[j] = v.x[j], v.x[i]
	v.y[i], v.y[j] = v.y[j], v.y[i]
}

// ZipSort co-sorts x and y in place, ascending by x. Acquisition order from
// swept instruments is not always monotonic; run this before Select when in
// doubt.
func ZipSort(x, y []float64) {
	sort.Sort(zipView{x: x, y: y})
}

// Summary holds single-pass statistics of a sample slice.
type Summary struct {
	Length int
	Min    float64
	Max    float64
	MinPos int
	MaxPos int
	Mean   float64
	Range  float64 // Max - Min
}

// Summarize computes Summary in one pass over y.
func Summarize(y []float64) Summary {
	n := len(y)
	if n == 0 {
		return Summary{
			Min: math.Inf(1),
			Max: math.Inf(-1),
		}
	}

	s := Summary{
		Length: n,
		Min:    y[0],
		Max:    y[0],
	}

	sum := 0.0

	for i, v := range y {
		sum += v

		if v > s.Max {
			s.Max = v
			s.MaxPos = i
		}

		if v < s.Min {
			s.Min = v
			s.MinPos = i
		}
	}

	s.Mean = sum / float64(n)
	s.Range = s.Max - s.Min

	return s
}

// Span returns x[len-1] - x[0], the width of a sorted ascending axis.
// Zero for empty or single-point input.
func Span(x []float64) float64 {
	if len(x) < 2 {
		return 0
	}

	return x[len(x)-1] - x[0]
}

// Mean returns the arithmetic mean of y, NaN for empty input.
func Mean(y []float64) float64 {
	if len(y) == 0 {
		return math.NaN()
	}

	sum := 0.0
	for _, v := range y {
		sum += v
	}

	return sum / float64(len(y))
}
