// Package emitters provides the five waveform emitter variants.
//
// Each emitter holds a [harmonic.Oscillator] by value, adds its own
// parameters with named defaults, and implements [harmonic.Waveform]:
//
//   - [LuxTherma]: photonic emitter, coherence-scaled squared modulation
//   - [PlasmaField]: Gaussian-confined plasma burst centered at t=5
//   - [MagnaPulse]: plain electromagnetic mains-frequency sinusoid
//   - [SonicArray]: acoustic pressure sinusoid
//   - [AetherWave]: vacuum field sinusoid attenuated by a distortion factor
//
// All emitters also implement [harmonic.Configurable] for runtime
// parameter adjustment in the live view and parameter sweeps.
package emitters
