package harmonic

import (
	"math"
	"testing"
)

func TestFieldModulationAtZero(t *testing.T) {
	for _, f := range []float64{1e-3, 60, 500, 1e6, 1e9} {
		osc := NewOscillator(f)
		if osc.FieldModulation(0) != 0 {
			t.Errorf("f=%g: expected zero modulation at t=0, got %g", f, osc.FieldModulation(0))
		}
	}
}

func TestFieldModulationDecay(t *testing.T) {
	osc := NewOscillator(1.0)

	// Peaks of sin occur at t = 1/4 + k; the envelope must shrink them.
	early := math.Abs(osc.FieldModulation(0.25))
	late := math.Abs(osc.FieldModulation(20.25))

	if late >= early {
		t.Errorf("expected decayed amplitude, early=%g late=%g", early, late)
	}

	wantRatio := math.Exp(-20.0 / DecayTau)
	if math.Abs(late/early-wantRatio) > 1e-9 {
		t.Errorf("expected envelope ratio %g, got %g", wantRatio, late/early)
	}
}

func TestEnergyDensityNonNegative(t *testing.T) {
	osc := Oscillator{Params: OscillatorParams{BaseFrequencyHz: 60, ResonanceFactor: 5.0}}

	for ti := 0; ti < 1000; ti++ {
		tv := float64(ti) * 0.0137
		if e := osc.EnergyDensity(tv); e < 0 {
			t.Fatalf("negative energy density %g at t=%g", e, tv)
		}
	}
}

func TestEnergyDensityScalesWithResonance(t *testing.T) {
	a := Oscillator{Params: OscillatorParams{BaseFrequencyHz: 60, ResonanceFactor: 1.0}}
	b := Oscillator{Params: OscillatorParams{BaseFrequencyHz: 60, ResonanceFactor: 5.0}}

	tv := 0.004
	if math.Abs(b.EnergyDensity(tv)-5*a.EnergyDensity(tv)) > 1e-15 {
		t.Errorf("expected 5x energy density, got %g vs %g", b.EnergyDensity(tv), a.EnergyDensity(tv))
	}
}

func TestVectorizedEvaluation(t *testing.T) {
	osc := NewOscillator(500)
	grid, err := NewTimeGrid(0.01, 1e-4)
	if err != nil {
		t.Fatalf("grid failed: %v", err)
	}

	mod := osc.FieldModulationSeries(grid)
	energy := osc.EnergyDensitySeries(grid)

	if len(mod) != len(grid) || len(energy) != len(grid) {
		t.Fatalf("expected series of length %d, got %d and %d", len(grid), len(mod), len(energy))
	}

	for i, tv := range grid {
		if mod[i] != osc.FieldModulation(tv) {
			t.Fatalf("vectorized modulation diverges from scalar at i=%d", i)
		}
		if energy[i] != osc.EnergyDensity(tv) {
			t.Fatalf("vectorized energy diverges from scalar at i=%d", i)
		}
	}
}

func TestSinPhaseMatchesSin(t *testing.T) {
	// For moderate arguments the reduced form must agree with the direct one.
	for _, tv := range []float64{0, 0.001, 0.25, 1.0 / 3, 2.7} {
		got := SinPhase(60, tv)
		want := math.Sin(2 * math.Pi * 60 * tv)
		if math.Abs(got-want) > 1e-9 {
			t.Errorf("t=%g: SinPhase=%g, direct=%g", tv, got, want)
		}
	}
}

func TestSinPhasePeriodicAtLargeProducts(t *testing.T) {
	// GHz carrier: freq*t products around 1e7. The reduced phase must keep
	// exact periodicity over whole cycles.
	freq := 1e9
	tv := 0.0100000005 // freq*tv lands on a whole cycle plus a half

	a := SinPhase(freq, tv)
	b := SinPhase(freq, tv+1/freq)
	if math.Abs(a-b) > 1e-6 {
		t.Errorf("expected one-period agreement, got %g vs %g", a, b)
	}
}

func TestSinPhaseNegativeTime(t *testing.T) {
	if got, want := SinPhase(1, -0.25), math.Sin(-2*math.Pi*0.25); math.Abs(got-want) > 1e-12 {
		t.Errorf("expected %g, got %g", want, got)
	}
}
