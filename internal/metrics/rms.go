package metrics

import "math"

// RMS accumulates the root-mean-square amplitude of a series.
type RMS struct {
	name    string
	sumSq   float64
	samples int
}

func NewRMS() *RMS {
	return &RMS{name: "rms"}
}

func (r *RMS) Name() string { return r.name }

func (r *RMS) Observe(t, amplitude float64) {
	r.sumSq += amplitude * amplitude
	r.samples++
}

func (r *RMS) Value() float64 {
	if r.samples == 0 {
		return 0
	}
	return math.Sqrt(r.sumSq / float64(r.samples))
}

func (r *RMS) Reset() {
	r.sumSq = 0
	r.samples = 0
}
