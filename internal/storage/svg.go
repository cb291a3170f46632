package storage

import (
	"fmt"
	"strings"

	"github.com/san-kum/oscillab/internal/harmonic"
)

var svgPalette = []string{"#e5c07b", "#c678dd", "#56b6c2", "#98c379", "#61afef"}

// ExportSVG renders the sampled series as overlaid polylines in a single
// SVG document. Amplitudes are scaled to a shared vertical range so the
// relative magnitudes stay comparable across series.
func ExportSVG(grid harmonic.TimeGrid, series []harmonic.SeriesResult, width, height int) string {
	if len(grid) < 2 || len(series) == 0 {
		return ""
	}

	minY, maxY := series[0].Amplitudes[0], series[0].Amplitudes[0]
	for _, sr := range series {
		for _, a := range sr.Amplitudes {
			if a < minY {
				minY = a
			}
			if a > maxY {
				maxY = a
			}
		}
	}

	rangeY := maxY - minY
	if rangeY == 0 {
		rangeY = 1
	}
	minY -= rangeY * 0.1
	maxY += rangeY * 0.1
	rangeY = maxY - minY

	minX := grid[0]
	rangeX := grid[len(grid)-1] - grid[0]
	if rangeX == 0 {
		rangeX = 1
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
`, width, height, width, height))

	for si, sr := range series {
		color := svgPalette[si%len(svgPalette)]

		sb.WriteString(fmt.Sprintf(`<path fill="none" stroke="%s" stroke-width="1.5" d="M`, color))
		for i, t := range grid {
			x := (t - minX) / rangeX * float64(width)
			y := float64(height) - (sr.Amplitudes[i]-minY)/rangeY*float64(height)

			if i == 0 {
				sb.WriteString(fmt.Sprintf("%.1f,%.1f", x, y))
			} else {
				sb.WriteString(fmt.Sprintf(" L%.1f,%.1f", x, y))
			}
		}
		sb.WriteString("\"/>\n")

		sb.WriteString(fmt.Sprintf(`<text x="8" y="%d" font-family="monospace" font-size="12" fill="%s">%s</text>
`, 16+si*16, color, sr.Label))
	}

	sb.WriteString("</svg>")
	return sb.String()
}
