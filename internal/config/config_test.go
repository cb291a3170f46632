package config

import (
	"path/filepath"
	"testing"

	"github.com/san-kum/oscillab/internal/emitters"
	"github.com/san-kum/oscillab/internal/harmonic"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Duration != 0.01 {
		t.Errorf("expected duration 0.01, got %g", cfg.Duration)
	}
	if cfg.Resolution != 1e-6 {
		t.Errorf("expected resolution 1e-6, got %g", cfg.Resolution)
	}
	if cfg.Emitters.Coherence != emitters.LuxThermaCoherence {
		t.Errorf("expected default coherence, got %g", cfg.Emitters.Coherence)
	}
}

func TestLoadSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	cfg := DefaultConfig()
	cfg.Duration = 0.5
	cfg.Emitters.PressureGain = 3.5

	if err := Save(path, cfg); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if loaded.Duration != 0.5 {
		t.Errorf("expected duration 0.5, got %g", loaded.Duration)
	}
	if loaded.Emitters.PressureGain != 3.5 {
		t.Errorf("expected pressure gain 3.5, got %g", loaded.Emitters.PressureGain)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestGetPreset(t *testing.T) {
	cfg := GetPreset("standard")
	if cfg == nil {
		t.Fatal("expected preset, got nil")
	}
	if cfg.Duration != 0.01 || cfg.Resolution != 1e-6 {
		t.Errorf("unexpected standard preset: %+v", cfg)
	}

	if GetPreset("nonexistent") != nil {
		t.Error("expected nil for nonexistent preset")
	}
}

func TestListPresets(t *testing.T) {
	if len(ListPresets()) == 0 {
		t.Error("expected presets")
	}
}

func TestApplyOverrides(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Emitters.PressureGain = 4.0
	cfg.Emitters.PlasmaTemperature = 2e5

	sonic := emitters.NewSonicArray()
	plasma := emitters.NewPlasmaField()
	magna := emitters.NewMagnaPulse()

	cfg.Apply([]harmonic.Waveform{sonic, plasma, magna})

	if sonic.PressureGain != 4.0 {
		t.Errorf("expected pressure gain 4.0, got %g", sonic.PressureGain)
	}
	if plasma.PlasmaTemperature != 2e5 {
		t.Errorf("expected temperature 2e5, got %g", plasma.PlasmaTemperature)
	}
	if magna.FieldStrength != emitters.MagnaFieldStrength {
		t.Errorf("expected field strength untouched at default, got %g", magna.FieldStrength)
	}
}
