package harmonic

import "math"

// DecayTau is the fixed decay constant of the field modulation envelope,
// in the same time units as the grid.
const DecayTau = 10.0

// DefaultResonanceFactor is the resonance used by emitters that do not
// override it.
const DefaultResonanceFactor = 1.0

// OscillatorParams holds the shared oscillator parameters. Immutable once
// constructed; each emitter owns its own copy.
type OscillatorParams struct {
	BaseFrequencyHz float64
	ResonanceFactor float64
}

// Oscillator computes a decaying sinusoidal modulation and the energy
// density derived from it. It holds no state beyond its parameters.
type Oscillator struct {
	Params OscillatorParams
}

// NewOscillator returns an oscillator with the given base frequency and
// the default resonance factor.
func NewOscillator(baseFrequencyHz float64) Oscillator {
	return Oscillator{Params: OscillatorParams{
		BaseFrequencyHz: baseFrequencyHz,
		ResonanceFactor: DefaultResonanceFactor,
	}}
}

// FieldModulation returns sin(2*pi*f*t) * exp(-t/DecayTau).
func (o Oscillator) FieldModulation(t float64) float64 {
	return SinPhase(o.Params.BaseFrequencyHz, t) * math.Exp(-t/DecayTau)
}

// EnergyDensity returns resonance * |FieldModulation(t)|^2, which is
// non-negative for any non-negative resonance factor.
func (o Oscillator) EnergyDensity(t float64) float64 {
	m := o.FieldModulation(t)
	return o.Params.ResonanceFactor * m * m
}

// FieldModulationSeries evaluates FieldModulation element-wise over a grid.
func (o Oscillator) FieldModulationSeries(grid TimeGrid) Series {
	out := make(Series, len(grid))
	for i, t := range grid {
		out[i] = o.FieldModulation(t)
	}
	return out
}

// EnergyDensitySeries evaluates EnergyDensity element-wise over a grid.
func (o Oscillator) EnergyDensitySeries(grid TimeGrid) Series {
	out := make(Series, len(grid))
	for i, t := range grid {
		out[i] = o.EnergyDensity(t)
	}
	return out
}
