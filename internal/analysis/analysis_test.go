package analysis

import (
	"errors"
	"math"
	"testing"

	"github.com/san-kum/escapetime/internal/orbit"
)

func orbitOf(p orbit.Params) []orbit.Record {
	rec := orbit.NewRecorder()
	orbit.Iterate(p, rec)
	return rec.Records
}

func TestDetectCycle(t *testing.T) {
	tests := []struct {
		name   string
		p      orbit.Params
		period int
		found  bool
	}{
		{"fixed origin", orbit.Params{MaxIter: 10, Radius: 2}, 1, true},
		{"period two", orbit.Params{CRe: -1, MaxIter: 7, Radius: 2}, 2, true},
		{"escaping", orbit.Params{CRe: 1, CIm: 1, MaxIter: 10, Radius: 2}, 0, false},
		{"single record", orbit.Params{MaxIter: 1, Radius: 2}, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			period, found := DetectCycle(orbitOf(tt.p), 0, 16)
			if period != tt.period || found != tt.found {
				t.Errorf("DetectCycle() = (%d, %v), want (%d, %v)", period, found, tt.period, tt.found)
			}
		})
	}
}

func TestDetectCycleTolerance(t *testing.T) {
	// c = -0.1 converges to a fixed point but never bit-exactly in a few steps
	records := orbitOf(orbit.Params{CRe: -0.1, MaxIter: 200, Radius: 2})

	period, found := DetectCycle(records, 1e-12, 8)
	if !found || period != 1 {
		t.Errorf("expected fixed point within tolerance, got (%d, %v)", period, found)
	}
}

func TestLyapunovExponent(t *testing.T) {
	// c = -0.1 sits deep inside the main cardioid
	inside := LyapunovExponent(orbitOf(orbit.Params{CRe: -0.1, MaxIter: 200, Radius: 2}))
	if inside >= 0 {
		t.Errorf("expected negative exponent inside the cardioid, got %f", inside)
	}

	if got := LyapunovExponent(orbitOf(orbit.Params{MaxIter: 10, Radius: 2})); got != 0 {
		t.Errorf("expected 0 for an orbit stuck at the origin, got %f", got)
	}

	if got := LyapunovExponent(nil); got != 0 {
		t.Errorf("expected 0 for no records, got %f", got)
	}
}

func TestSpectrum(t *testing.T) {
	if _, err := Spectrum([]float64{1}); !errors.Is(err, orbit.ErrNoRecords) {
		t.Errorf("expected ErrNoRecords, got %v", err)
	}

	ps, err := Spectrum(make([]float64, 8))
	if err != nil {
		t.Fatalf("spectrum failed: %v", err)
	}
	if len(ps) != 5 {
		t.Errorf("expected 5 bins, got %d", len(ps))
	}
}

func TestDominantPeriod(t *testing.T) {
	re, _ := Components(orbitOf(orbit.Params{CRe: -1, MaxIter: 64, Radius: 2}))

	period, err := DominantPeriod(re)
	if err != nil {
		t.Fatalf("dominant period failed: %v", err)
	}
	if math.Abs(period-2) > 1e-9 {
		t.Errorf("expected period 2, got %f", period)
	}

	flat, err := DominantPeriod(make([]float64, 16))
	if err != nil {
		t.Fatalf("dominant period failed: %v", err)
	}
	if !math.IsInf(flat, 1) {
		t.Errorf("expected +Inf for a constant series, got %f", flat)
	}
}

func TestMagnitudes(t *testing.T) {
	m := Magnitudes([]orbit.Record{{Re: 3, Im: 4}, {Re: 1}})
	if m[0] != 25 || m[1] != 1 {
		t.Errorf("unexpected magnitudes %v", m)
	}
}
