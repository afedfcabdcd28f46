package export

import (
	"fmt"
	"math"
	"strings"

	"github.com/jakujobi/Math374Project1/internal/diff"
)

// Curve is one line of a log-log chart. Non-positive samples are
// dropped; they have no log-scale position.
type Curve struct {
	Name  string
	Color string
	X     []float64
	Y     []float64
}

// ForwardChart renders the forward-difference chart: actual error,
// truncation bound h/2, rounding bound 2e/h, plus the optimal-h marker.
func ForwardChart(series diff.Series, opt diff.OptimalPoint, width, height int) string {
	return LogLogSVG("Forward Difference", []Curve{
		{Name: "actual error", Color: "#4dabf7", X: series.Hs(), Y: series.ErrForward()},
		{Name: "truncation bound", Color: "#ff6b6b", X: series.Hs(), Y: series.TruncForward()},
		{Name: "rounding bound", Color: "#51cf66", X: series.Hs(), Y: series.RoundForward()},
	}, opt.H, width, height)
}

// CentralChart renders the central-difference chart.
func CentralChart(series diff.Series, opt diff.OptimalPoint, width, height int) string {
	return LogLogSVG("Central Difference", []Curve{
		{Name: "actual error", Color: "#4dabf7", X: series.Hs(), Y: series.ErrCentral()},
		{Name: "truncation bound", Color: "#ff6b6b", X: series.Hs(), Y: series.TruncCentral()},
		{Name: "rounding bound", Color: "#51cf66", X: series.Hs(), Y: series.RoundCentral()},
	}, opt.H, width, height)
}

const margin = 50.0

// LogLogSVG draws curves on log10/log10 axes with decade gridlines and
// a vertical marker at markX (skipped when markX <= 0).
func LogLogSVG(title string, curves []Curve, markX float64, width, height int) string {
	minX, maxX := math.Inf(1), math.Inf(-1)
	minY, maxY := math.Inf(1), math.Inf(-1)
	for _, c := range curves {
		for i := range c.X {
			if c.X[i] <= 0 || c.Y[i] <= 0 {
				continue
			}
			minX = math.Min(minX, math.Log10(c.X[i]))
			maxX = math.Max(maxX, math.Log10(c.X[i]))
			minY = math.Min(minY, math.Log10(c.Y[i]))
			maxY = math.Max(maxY, math.Log10(c.Y[i]))
		}
	}
	if minX > maxX {
		return ""
	}
	if maxX == minX {
		maxX = minX + 1
	}
	if maxY == minY {
		maxY = minY + 1
	}

	plotW := float64(width) - 2*margin
	plotH := float64(height) - 2*margin
	px := func(lx float64) float64 { return margin + (lx-minX)/(maxX-minX)*plotW }
	py := func(ly float64) float64 { return margin + plotH - (ly-minY)/(maxY-minY)*plotH }

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
`, width, height, width, height))

	sb.WriteString(fmt.Sprintf(`<text x="%.0f" y="25" fill="#e0e0e0" font-family="monospace" font-size="14">%s</text>
`, margin, title))

	// Decade gridlines with exponent labels.
	for e := int(math.Ceil(minX)); e <= int(math.Floor(maxX)); e++ {
		x := px(float64(e))
		sb.WriteString(fmt.Sprintf(`<line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke="#2a2a2a" stroke-width="1"/>
<text x="%.1f" y="%.1f" fill="#808080" font-family="monospace" font-size="9" text-anchor="middle">1e%d</text>
`, x, margin, x, margin+plotH, x, margin+plotH+14, e))
	}
	for e := int(math.Ceil(minY)); e <= int(math.Floor(maxY)); e++ {
		y := py(float64(e))
		sb.WriteString(fmt.Sprintf(`<line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke="#2a2a2a" stroke-width="1"/>
<text x="%.1f" y="%.1f" fill="#808080" font-family="monospace" font-size="9" text-anchor="end">1e%d</text>
`, margin, y, margin+plotW, y, margin-5, y+3, e))
	}

	if markX > 0 {
		lx := math.Log10(markX)
		if lx >= minX && lx <= maxX {
			x := px(lx)
			sb.WriteString(fmt.Sprintf(`<line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke="#ffd43b" stroke-width="1" stroke-dasharray="4 3"/>
<text x="%.1f" y="%.1f" fill="#ffd43b" font-family="monospace" font-size="9" text-anchor="middle">h_opt</text>
`, x, margin, x, margin+plotH, x, margin-8))
		}
	}

	for ci, c := range curves {
		var path strings.Builder
		started := false
		for i := range c.X {
			if c.X[i] <= 0 || c.Y[i] <= 0 {
				continue
			}
			x := px(math.Log10(c.X[i]))
			y := py(math.Log10(c.Y[i]))
			if !started {
				path.WriteString(fmt.Sprintf("M%.1f,%.1f", x, y))
				started = true
			} else {
				path.WriteString(fmt.Sprintf(" L%.1f,%.1f", x, y))
			}
		}
		if !started {
			continue
		}
		sb.WriteString(fmt.Sprintf(`<path fill="none" stroke="%s" stroke-width="1.5" d="%s"/>
`, c.Color, path.String()))

		// Legend row.
		ly := margin + 12 + float64(ci)*14
		sb.WriteString(fmt.Sprintf(`<line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke="%s" stroke-width="1.5"/>
<text x="%.1f" y="%.1f" fill="#c0c0c0" font-family="monospace" font-size="10">%s</text>
`, margin+plotW-130, ly, margin+plotW-110, ly, c.Color, margin+plotW-104, ly+3, c.Name))
	}

	sb.WriteString("</svg>")
	return sb.String()
}
