// Package viz provides terminal presentation for computed orbits.
//
// The package renders with lipgloss and pages with Bubble Tea:
//
//   - [Summary]: styled block describing a finished run
//   - [SparklineChart]: one-line view of a series such as |z|^2
//   - [Pager]: read-only viewer stepping through the trace lines
//
// # Key Bindings
//
//	j/k, up/down - Move one record
//	pgup/pgdown  - Move one page
//	g/G          - First/last record
//	q            - Quit
package viz
