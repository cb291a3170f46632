// Package harmonic provides the core types for emitter waveform simulation.
//
// An [Oscillator] computes a decaying sinusoidal field modulation and its
// energy density. Emitter variants hold an Oscillator by value, add their
// own parameters, and expose one output formula through the [Waveform]
// interface:
//
//	grid, err := harmonic.NewTimeGrid(0.01, 1e-6)
//	if err != nil {
//	    return err
//	}
//	series := emitter.Evaluate(grid)
//
// All evaluation is pure: identical parameters and grid always produce
// identical output. Parameter problems are surfaced through Validate
// before any series is computed, never as NaN in the results.
package harmonic
