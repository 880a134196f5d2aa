package metrics

import (
	"math"

	"github.com/san-kum/escapetime/internal/orbit"
)

// MaxMagnitude tracks the largest |z| seen during a run.
type MaxMagnitude struct {
	name string
	max2 float64
}

func NewMaxMagnitude() *MaxMagnitude {
	return &MaxMagnitude{name: "max_magnitude"}
}

func (m *MaxMagnitude) Name() string { return m.name }

func (m *MaxMagnitude) Observe(r orbit.Record) {
	if v := r.Mag2(); v > m.max2 || math.IsNaN(v) {
		m.max2 = v
	}
}

func (m *MaxMagnitude) Value() float64 {
	return math.Sqrt(m.max2)
}

func (m *MaxMagnitude) Reset() {
	m.max2 = 0
}

type FinalMagnitude struct {
	name string
	last float64
}

func NewFinalMagnitude() *FinalMagnitude {
	return &FinalMagnitude{name: "final_magnitude"}
}

func (f *FinalMagnitude) Name() string { return f.name }

func (f *FinalMagnitude) Observe(r orbit.Record) {
	f.last = math.Hypot(r.Re, r.Im)
}

func (f *FinalMagnitude) Value() float64 { return f.last }

func (f *FinalMagnitude) Reset() { f.last = 0 }

// StepLength is the mean distance between consecutive iterates, starting
// from z_0 = 0.
type StepLength struct {
	name    string
	prevRe  float64
	prevIm  float64
	sum     float64
	samples int
}

func NewStepLength() *StepLength {
	return &StepLength{name: "step_length"}
}

func (s *StepLength) Name() string {
	return s.name
}

func (s *StepLength) Observe(r orbit.Record) {
	s.sum += math.Hypot(r.Re-s.prevRe, r.Im-s.prevIm)
	s.prevRe, s.prevIm = r.Re, r.Im
	s.samples++
}

func (s *StepLength) Value() float64 {
	if s.samples == 0 {
		return 0
	}
	return s.sum / float64(s.samples)
}

func (s *StepLength) Reset() {
	s.prevRe, s.prevIm = 0, 0
	s.sum = 0
	s.samples = 0
}
