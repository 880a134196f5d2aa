package orbit

import (
	"math"
	"strconv"
	"strings"
)

// FormatHex returns the exact hexadecimal encoding of v: sign, mantissa and
// binary exponent, e.g. 0x1.4p+01. Non-finite values become inf, -inf, nan.
func FormatHex(v float64) string {
	switch {
	case math.IsNaN(v):
		return "nan"
	case math.IsInf(v, 1):
		return "inf"
	case math.IsInf(v, -1):
		return "-inf"
	}
	return strconv.FormatFloat(v, 'x', -1, 64)
}

// ParseHex is the inverse of FormatHex.
func ParseHex(s string) (float64, error) {
	return strconv.ParseFloat(strings.TrimSpace(s), 64)
}
