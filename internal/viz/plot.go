// Package viz renders emitter series as terminal plots. It consumes the
// driver's labeled series and the shared time grid; it never computes
// waveforms itself.
package viz

import (
	"fmt"
	"strings"

	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/oscillab/internal/harmonic"
)

var seriesColors = []asciigraph.AnsiColor{
	asciigraph.Yellow,
	asciigraph.Magenta,
	asciigraph.Cyan,
	asciigraph.Green,
	asciigraph.Blue,
}

// Overlay plots all series on one chart. With normalize set, each series
// is scaled to unit peak first; without it the photonic output would
// flatten the 1e-6 aether wave into the axis.
func Overlay(series []harmonic.SeriesResult, width, height int, normalize bool) string {
	if len(series) == 0 {
		return ""
	}

	data := make([][]float64, len(series))
	legends := make([]string, len(series))
	for i, sr := range series {
		legends[i] = sr.Label
		if normalize {
			data[i] = normalized(sr.Amplitudes)
		} else {
			data[i] = sr.Amplitudes
		}
	}

	caption := "amplitude vs time"
	if normalize {
		caption = "amplitude vs time (per-series normalized)"
	}

	return asciigraph.PlotMany(data,
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.Caption(caption),
		asciigraph.SeriesColors(seriesColors[:len(series)]...),
		asciigraph.SeriesLegends(legends...),
	)
}

// PlotSeries plots one series on its own chart with its label as caption.
func PlotSeries(sr harmonic.SeriesResult, width, height int) string {
	return asciigraph.Plot(sr.Amplitudes,
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.Caption(sr.Label),
	)
}

// Summary renders a compact per-series table with sparklines and peaks.
func Summary(series []harmonic.SeriesResult, width int) string {
	var b strings.Builder
	for _, sr := range series {
		b.WriteString(LabelStyle.Render(sr.Label))
		b.WriteString(" ")
		b.WriteString(Sparkline(sr.Amplitudes, width))
		b.WriteString(ValueStyle.Render(fmt.Sprintf("  peak %.3g", sr.Amplitudes.MaxAbs())))
		b.WriteString("\n")
	}
	return b.String()
}

func normalized(s harmonic.Series) []float64 {
	peak := s.MaxAbs()
	if peak == 0 {
		return s
	}
	out := make([]float64, len(s))
	for i, v := range s {
		out[i] = v / peak
	}
	return out
}
