package analysis

import (
	"math"

	"github.com/san-kum/escapetime/internal/orbit"
)

// DetectCycle returns the smallest p <= maxPeriod for which the last record
// lies within tol of the record p steps earlier, on both components. A tol
// of 0 asks for bit-exact repetition.
func DetectCycle(records []orbit.Record, tol float64, maxPeriod int) (int, bool) {
	n := len(records)
	if n < 2 {
		return 0, false
	}
	last := records[n-1]

	for p := 1; p <= maxPeriod && p < n; p++ {
		prev := records[n-1-p]
		if math.Abs(prev.Re-last.Re) <= tol && math.Abs(prev.Im-last.Im) <= tol {
			return p, true
		}
	}
	return 0, false
}

// Magnitudes returns |z|^2 for each record.
func Magnitudes(records []orbit.Record) []float64 {
	out := make([]float64, len(records))
	for i, r := range records {
		out[i] = r.Mag2()
	}
	return out
}

func Components(records []orbit.Record) (re, im []float64) {
	re = make([]float64, len(records))
	im = make([]float64, len(records))
	for i, r := range records {
		re[i], im[i] = r.Re, r.Im
	}
	return re, im
}
