package metrics

import "math"

// Peak tracks the largest absolute amplitude seen.
type Peak struct {
	name string
	max  float64
}

func NewPeak() *Peak {
	return &Peak{name: "peak"}
}

func (p *Peak) Name() string { return p.name }

func (p *Peak) Observe(t, amplitude float64) {
	if a := math.Abs(amplitude); a > p.max {
		p.max = a
	}
}

func (p *Peak) Value() float64 {
	return p.max
}

func (p *Peak) Reset() {
	p.max = 0
}
