package guess

import (
	"math"
	"math/cmplx"

	algofft "github.com/cwbudde/algo-fft"

	"github.com/cwbudde/algo-fit/dataset"
	"github.com/cwbudde/algo-fit/lineshape"
)

// skipBins is the number of leading FFT bins excluded from the dominant-
// frequency search, to keep DC and low-frequency leakage from capturing
// the estimate.
const skipBins = 4

// sinusoidEstimate holds the spectral features a sinusoid fit starts from.
type sinusoidEstimate struct {
	amp    float64
	freq   float64
	phase  float64 // degrees
	offset float64
}

// estimateSinusoid locates the dominant FFT bin of y between skipBins and
// the Nyquist bin. The bin index gives the frequency seed, its complex
// coefficient the phase seed (shifted -90 degrees so it refers to a sine
// rather than a cosine). Amplitude comes from half the data range and the
// offset from the mean.
//
// The transform is zero-padded to a power of two; the padded bin spacing
// is accounted for in the frequency conversion.
func estimateSinusoid(x, y []float64) sinusoidEstimate {
	s := dataset.Summarize(y)

	est := sinusoidEstimate{
		amp:    s.Range / 2,
		offset: s.Mean,
	}

	n := len(y)
	if n < 2*skipBins {
		// Too short for a meaningful spectrum; leave the frequency seed at
		// one cycle per span.
		if span := dataset.Span(x); span > 0 {
			est.freq = 1 / span
		}

		return est
	}

	fftSize := nextPowerOf2(n)

	in := make([]complex128, fftSize)
	for i, v := range y {
		in[i] = complex(v, 0)
	}

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return est
	}

	out := make([]complex128, fftSize)
	if err := plan.Forward(out, in); err != nil {
		return est
	}

	dx := (x[len(x)-1] - x[0]) / float64(len(x)-1)

	maxIdx := skipBins
	maxMag := 0.0

	for i := skipBins; i < fftSize/2; i++ {
		if m := cmplx.Abs(out[i]); m > maxMag {
			maxMag = m
			maxIdx = i
		}
	}

	est.freq = float64(maxIdx) / (float64(fftSize) * dx)
	est.phase = (cmplx.Phase(out[maxIdx]) - math.Pi/2) * 180 / math.Pi

	return est
}

// Sine seeds a plain-sinusoid fit from the dominant FFT bin.
func Sine(x, y []float64) *lineshape.Sine {
	est := estimateSinusoid(x, y)

	return &lineshape.Sine{
		Amp:    est.amp,
		Freq:   est.freq,
		Phase:  est.phase,
		Offset: est.offset,
	}
}

// DecaySine seeds a decaying-sinusoid fit. The decay anchor T0 is pinned
// to the first sample and the tau seed is the full axis span.
func DecaySine(x, y []float64) *lineshape.DecaySine {
	est := estimateSinusoid(x, y)

	return &lineshape.DecaySine{
		Amp:    est.amp,
		Freq:   est.freq,
		Phase:  est.phase,
		Tau:    dataset.Span(x),
		Offset: est.offset,
		T0:     x[0],
	}
}

func nextPowerOf2(n int) int {
	if n <= 1 {
		return 1
	}

	p := 1
	for p < n {
		p <<= 1
	}

	return p
}
