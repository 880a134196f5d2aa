// Package orbit computes the escape-time orbit of a single point under the
// quadratic map z -> z^2 + c.
//
// The package defines the core types for a run:
//
//   - [Params]: the constant c, the iteration cap and the divergence radius
//   - [Record]: one computed iterate
//   - [Observer]: receives every record and the divergence notice
//   - [Metric]: accumulates a scalar over the records of a run
//   - [Iterator]: drives the loop
//
// # Example
//
//	it := orbit.New(trace.NewWriter(os.Stdout))
//	out := it.Run(orbit.Params{CRe: 0.25, CIm: 0.5, MaxIter: 100, Radius: 2})
//	if out.Escaped {
//	    // out.EscapeStep holds the first step with |z|^2 >= radius^2
//	}
//
// # Thread Safety
//
// Iterator instances are NOT thread-safe and never start goroutines.
package orbit
