package metrics

// Energy accumulates the mean energy density of a series: the average of
// resonance * amplitude^2, mirroring the oscillator's energy formula.
type Energy struct {
	name      string
	resonance float64
	total     float64
	samples   int
}

func NewEnergy(resonance float64) *Energy {
	return &Energy{
		name:      "energy",
		resonance: resonance,
	}
}

func (e *Energy) Name() string { return e.name }

func (e *Energy) Observe(t, amplitude float64) {
	e.total += e.resonance * amplitude * amplitude
	e.samples++
}

func (e *Energy) Value() float64 {
	if e.samples == 0 {
		return 0
	}
	return e.total / float64(e.samples)
}

func (e *Energy) Reset() {
	e.total = 0
	e.samples = 0
}
