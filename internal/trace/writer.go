// Package trace renders an orbit as the line-per-iterate text trace.
package trace

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/san-kum/escapetime/internal/orbit"
)

// Writer is an orbit.Observer that prints one line per record and the
// divergence notice. The first write error is kept and later writes are
// skipped.
type Writer struct {
	w   io.Writer
	err error
}

func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

func (t *Writer) OnRecord(r orbit.Record) {
	t.printf("%s\n", Line(r))
}

func (t *Writer) OnEscape(step int) {
	t.printf("%s\n", EscapeLine(step))
}

func (t *Writer) Err() error { return t.err }

func (t *Writer) printf(format string, args ...any) {
	if t.err != nil {
		return
	}
	_, t.err = fmt.Fprintf(t.w, format, args...)
}

func Line(r orbit.Record) string {
	return fmt.Sprintf("it n° %d : z_real = %s (%s) // z_imag = %s (%s)",
		r.Step,
		FormatDecimal(r.Re), r.HexRe(),
		FormatDecimal(r.Im), r.HexIm(),
	)
}

func EscapeLine(step int) string {
	return fmt.Sprintf("after %d bigger than radius", step)
}

// FormatDecimal prints the shortest decimal that parses back to v. Fixed
// notation is used for 1e-4 <= |v| < 1e16, integral values keep a ".0".
func FormatDecimal(v float64) string {
	switch {
	case math.IsNaN(v):
		return "nan"
	case math.IsInf(v, 1):
		return "inf"
	case math.IsInf(v, -1):
		return "-inf"
	}

	a := math.Abs(v)
	if a != 0 && (a < 1e-4 || a >= 1e16) {
		return strconv.FormatFloat(v, 'e', -1, 64)
	}

	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}
