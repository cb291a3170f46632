// Package analysis provides frequency-domain analysis of emitter series.
package analysis

import (
	"math/cmplx"

	"github.com/mjibson/go-dsp/fft"
)

// PowerSpectrum returns the magnitude spectrum of the series, one bin per
// frequency up to Nyquist. The input is zero-padded to the next power of
// two before the transform.
func PowerSpectrum(data []float64) []float64 {
	if len(data) == 0 {
		return nil
	}

	n := 1
	for n < len(data) {
		n *= 2
	}
	padded := make([]float64, n)
	copy(padded, data)

	spectrum := fft.FFTReal(padded)

	ps := make([]float64, len(spectrum)/2)
	for i := range ps {
		ps[i] = cmplx.Abs(spectrum[i])
	}
	return ps
}

// DominantFrequency estimates the strongest non-DC frequency in a series
// sampled at step resolution. Returns 0 for series too short to analyze.
func DominantFrequency(data []float64, resolution float64) float64 {
	if len(data) < 2 || resolution <= 0 {
		return 0
	}

	n := 1
	for n < len(data) {
		n *= 2
	}

	ps := PowerSpectrum(data)

	maxPower := 0.0
	maxIdx := 0
	for i := 1; i < len(ps); i++ {
		if ps[i] > maxPower {
			maxPower = ps[i]
			maxIdx = i
		}
	}

	if maxIdx == 0 {
		return 0
	}
	// Bin width is sampleRate/n with sampleRate = 1/resolution.
	return float64(maxIdx) / (float64(n) * resolution)
}
