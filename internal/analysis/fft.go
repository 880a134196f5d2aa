package analysis

import (
	"math"
	"math/cmplx"

	"github.com/mjibson/go-dsp/fft"

	"github.com/san-kum/escapetime/internal/orbit"
)

// Spectrum returns the magnitude of the first n/2 bins of the FFT of data
// after removing its mean.
func Spectrum(data []float64) ([]float64, error) {
	if len(data) < 2 {
		return nil, orbit.ErrNoRecords
	}

	mean := 0.0
	for _, v := range data {
		mean += v
	}
	mean /= float64(len(data))

	centered := make([]float64, len(data))
	for i, v := range data {
		centered[i] = v - mean
	}

	coeffs := fft.FFTReal(centered)
	ps := make([]float64, len(coeffs)/2+1)
	for i := range ps {
		ps[i] = cmplx.Abs(coeffs[i])
	}
	return ps, nil
}

// DominantPeriod is len(data)/k for the strongest non-DC bin k. It returns
// +Inf for a constant series.
func DominantPeriod(data []float64) (float64, error) {
	ps, err := Spectrum(data)
	if err != nil {
		return 0, err
	}

	best, bestPower := 0, 0.0
	for k := 1; k < len(ps); k++ {
		if ps[k] > bestPower {
			best, bestPower = k, ps[k]
		}
	}
	// numerical noise only
	if best == 0 || bestPower < 1e-9 {
		return math.Inf(1), nil
	}
	return float64(len(data)) / float64(best), nil
}
