package orbit

type Iterator struct {
	observers []Observer
	metrics   []Metric
}

func New(observers ...Observer) *Iterator {
	return &Iterator{
		observers: observers,
		metrics:   make([]Metric, 0),
	}
}

func (it *Iterator) AddObserver(o Observer) { it.observers = append(it.observers, o) }
func (it *Iterator) AddMetric(m Metric)     { it.metrics = append(it.metrics, m) }

// Iterate runs p once with the given observers and no metrics.
func Iterate(p Params, observers ...Observer) Outcome {
	return New(observers...).Run(p)
}

// Run iterates z <- z^2 + c from z = 0 for at most p.MaxIter steps. Each
// iterate is handed to the observers as soon as it is computed. The loop
// stops after the first record with |z|^2 >= radius^2, which is reported
// through OnEscape with the same step index.
func (it *Iterator) Run(p Params) Outcome {
	out := Outcome{
		EscapeStep: -1,
		Metrics:    make(map[string]float64),
	}

	for _, m := range it.metrics {
		m.Reset()
	}

	radius2 := p.Radius * p.Radius
	var zr, zi float64

	for n := 0; n < p.MaxIter; n++ {
		// both components come from the same (zr, zi) snapshot;
		// float64() forces rounding of each product (no fused multiply-add)
		nr := float64(zr*zr) - float64(zi*zi) + p.CRe
		ni := float64(2*zi*zr) + p.CIm
		zr, zi = nr, ni

		rec := Record{Step: n, Re: zr, Im: zi}
		for _, o := range it.observers {
			o.OnRecord(rec)
		}
		for _, m := range it.metrics {
			m.Observe(rec)
		}
		out.Steps++
		out.Last = rec

		if float64(zr*zr)+float64(zi*zi) >= radius2 {
			out.Escaped = true
			out.EscapeStep = n
			for _, o := range it.observers {
				o.OnEscape(n)
			}
			break
		}
	}

	for _, m := range it.metrics {
		out.Metrics[m.Name()] = m.Value()
	}

	return out
}

// Recorder is an Observer that keeps every record. The iterator itself never
// retains records; callers that want the whole orbit attach one of these.
type Recorder struct {
	Records    []Record
	EscapeStep int
	escaped    bool
}

func NewRecorder() *Recorder {
	return &Recorder{EscapeStep: -1}
}

func (r *Recorder) OnRecord(rec Record) { r.Records = append(r.Records, rec) }

func (r *Recorder) OnEscape(step int) {
	r.escaped = true
	r.EscapeStep = step
}

func (r *Recorder) Escaped() bool { return r.escaped }
