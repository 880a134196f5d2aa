package orbit

import (
	"math"
)

const (
	DefaultCRe     = 0.00390625
	DefaultCIm     = 0.31640625
	DefaultMaxIter = 100
	DefaultRadius  = 2.0
)

type Params struct {
	CRe     float64
	CIm     float64
	MaxIter int
	Radius  float64
}

func DefaultParams() Params {
	return Params{
		CRe:     DefaultCRe,
		CIm:     DefaultCIm,
		MaxIter: DefaultMaxIter,
		Radius:  DefaultRadius,
	}
}

// Validate rejects parameters a caller cannot sensibly ask for. Iterate
// itself accepts anything, so this is only used at the edges.
func (p Params) Validate() error {
	for _, f := range []struct {
		name string
		v    float64
	}{
		{"c_re", p.CRe},
		{"c_im", p.CIm},
		{"radius", p.Radius},
	} {
		if math.IsNaN(f.v) || math.IsInf(f.v, 0) {
			return &ParamError{Name: f.name, Value: f.v, Wrapped: ErrParameterBounds}
		}
	}
	if p.Radius < 0 {
		return &ParamError{Name: "radius", Value: p.Radius, Wrapped: ErrParameterBounds}
	}
	if p.MaxIter < 0 {
		return &ParamError{Name: "max_iter", Value: float64(p.MaxIter), Wrapped: ErrParameterBounds}
	}
	return nil
}

// Record is the iterate z_{Step+1}.
type Record struct {
	Step int
	Re   float64
	Im   float64
}

func (r Record) Mag2() float64 {
	return float64(r.Re*r.Re) + float64(r.Im*r.Im)
}

func (r Record) HexRe() string { return FormatHex(r.Re) }
func (r Record) HexIm() string { return FormatHex(r.Im) }

func (r Record) IsFinite() bool {
	for _, v := range [2]float64{r.Re, r.Im} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

type Observer interface {
	OnRecord(r Record)
	OnEscape(step int)
}

type Metric interface {
	Name() string
	Observe(r Record)
	Value() float64
	Reset()
}

type Outcome struct {
	Steps      int
	Escaped    bool
	EscapeStep int
	Last       Record
	Metrics    map[string]float64
}
