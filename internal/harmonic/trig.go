package harmonic

import "math"

// SinPhase evaluates sin(2*pi*freq*t) with the phase reduced to one cycle
// before scaling by 2*pi. Reducing freq*t rather than the scaled argument
// keeps more mantissa bits when the product is large (GHz carriers over
// millisecond grids), limiting the silent precision loss of feeding huge
// arguments to math.Sin directly.
func SinPhase(freq, t float64) float64 {
	phase := math.Mod(freq*t, 1)
	if phase < 0 {
		phase++
	}
	return math.Sin(2 * math.Pi * phase)
}

// CosPhase is the cosine counterpart of SinPhase.
func CosPhase(freq, t float64) float64 {
	phase := math.Mod(freq*t, 1)
	if phase < 0 {
		phase++
	}
	return math.Cos(2 * math.Pi * phase)
}
