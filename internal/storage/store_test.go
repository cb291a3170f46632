package storage

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/san-kum/oscillab/internal/sim"
)

func runFixture(t *testing.T) (sim.Config, *sim.Result) {
	t.Helper()

	cfg := sim.Config{Duration: 0.001, Resolution: 1e-4}
	d := sim.New()
	for _, m := range sim.DefaultMetrics() {
		d.AddMetric(m)
	}
	result, err := d.Run(context.Background(), cfg)
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	return cfg, result
}

func TestSaveLoadRoundTrip(t *testing.T) {
	st := New(t.TempDir())
	if err := st.Init(); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	cfg, result := runFixture(t)

	runID, err := st.Save(cfg, result)
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}

	meta, err := st.Load(runID)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if meta.ID != runID {
		t.Errorf("expected id %s, got %s", runID, meta.ID)
	}
	if meta.Samples != len(result.Grid) {
		t.Errorf("expected %d samples, got %d", len(result.Grid), meta.Samples)
	}
	if len(meta.Labels) != 5 {
		t.Errorf("expected 5 labels, got %d", len(meta.Labels))
	}
	if len(meta.Metrics) != 5 {
		t.Errorf("expected metrics for 5 series, got %d", len(meta.Metrics))
	}
}

func TestLoadSeriesRoundTrip(t *testing.T) {
	st := New(t.TempDir())
	if err := st.Init(); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	cfg, result := runFixture(t)

	runID, err := st.Save(cfg, result)
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}

	grid, series, err := st.LoadSeries(runID)
	if err != nil {
		t.Fatalf("load series failed: %v", err)
	}

	if len(grid) != len(result.Grid) {
		t.Fatalf("expected %d samples, got %d", len(result.Grid), len(grid))
	}
	if len(series) != len(result.Series) {
		t.Fatalf("expected %d series, got %d", len(result.Series), len(series))
	}

	for i, sr := range series {
		if sr.Label != result.Series[i].Label {
			t.Errorf("series %d: expected label %s, got %s", i, result.Series[i].Label, sr.Label)
		}
		if len(sr.Amplitudes) != len(grid) {
			t.Errorf("series %s: expected %d amplitudes, got %d", sr.Label, len(grid), len(sr.Amplitudes))
		}
		for j := range sr.Amplitudes {
			if sr.Amplitudes[j] != result.Series[i].Amplitudes[j] {
				t.Fatalf("series %s: amplitude %d mismatch: %g vs %g",
					sr.Label, j, sr.Amplitudes[j], result.Series[i].Amplitudes[j])
			}
		}
	}
}

func TestListEmptyDir(t *testing.T) {
	st := New(t.TempDir() + "/does-not-exist")

	runs, err := st.List()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(runs) != 0 {
		t.Errorf("expected no runs, got %d", len(runs))
	}
}

func TestExportJSON(t *testing.T) {
	st := New(t.TempDir())
	if err := st.Init(); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	cfg, result := runFixture(t)
	runID, err := st.Save(cfg, result)
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}

	meta, err := st.Load(runID)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	grid, series, err := st.LoadSeries(runID)
	if err != nil {
		t.Fatalf("load series failed: %v", err)
	}

	var buf bytes.Buffer
	if err := ExportJSON(&buf, meta, grid, series); err != nil {
		t.Fatalf("export failed: %v", err)
	}

	var data ExportData
	if err := json.Unmarshal(buf.Bytes(), &data); err != nil {
		t.Fatalf("export is not valid JSON: %v", err)
	}
	if data.ID != runID || len(data.Series) != 5 || data.Samples != len(grid) {
		t.Errorf("unexpected export payload: id=%s series=%d samples=%d", data.ID, len(data.Series), data.Samples)
	}
}
