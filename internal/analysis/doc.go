// Package analysis characterizes a recorded orbit after the run.
//
//   - [DetectCycle]: smallest period the tail of the orbit repeats with
//   - [LyapunovExponent]: mean log-derivative of the map along the orbit
//   - [Spectrum] and [DominantPeriod]: FFT view of a component series
//
// # Attracting cycles
//
// A bounded orbit that settles on a cycle has a negative exponent:
//
//	lambda := analysis.LyapunovExponent(records)
//	if lambda < 0 {
//	    period, ok := analysis.DetectCycle(records, 1e-12, 64)
//	}
package analysis
