package analysis

import (
	"math"

	"github.com/san-kum/escapetime/internal/orbit"
)

// LyapunovExponent estimates the exponent of z -> z^2 + c along a recorded
// orbit as the mean of ln|f'(z_n)| = ln(2|z_n|). Points at the origin and
// non-finite points are skipped. A negative value means nearby orbits are
// pulled together, which is what an attracting cycle looks like.
//
// Returns 0 when no record contributes.
func LyapunovExponent(records []orbit.Record) float64 {
	sumLog := 0.0
	count := 0

	for _, r := range records {
		if !r.IsFinite() {
			continue
		}
		d := 2 * math.Hypot(r.Re, r.Im)
		if d == 0 {
			continue
		}
		sumLog += math.Log(d)
		count++
	}

	if count == 0 {
		return 0
	}
	return sumLog / float64(count)
}
