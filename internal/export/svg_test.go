package export

import (
	"strings"
	"testing"

	"github.com/jakujobi/Math374Project1/internal/diff"
	"github.com/jakujobi/Math374Project1/internal/sweep"
)

func testSeries(t *testing.T) (diff.Series, diff.OptimalPoints) {
	t.Helper()

	hs, err := sweep.Logspace(1, 12, 20)
	if err != nil {
		t.Fatal(err)
	}
	series, err := diff.ComputeSeries(hs, sweep.DefaultEps)
	if err != nil {
		t.Fatal(err)
	}
	pts, err := diff.ComputeOptimalPoints(sweep.DefaultEps)
	if err != nil {
		t.Fatal(err)
	}
	return series, pts
}

func TestForwardChart(t *testing.T) {
	series, pts := testSeries(t)
	svg := ForwardChart(series, pts.Forward, 640, 480)

	if !strings.HasPrefix(svg, "<?xml") {
		t.Error("missing xml header")
	}
	if !strings.Contains(svg, "Forward Difference") {
		t.Error("missing title")
	}
	for _, label := range []string{"actual error", "truncation bound", "rounding bound", "h_opt"} {
		if !strings.Contains(svg, label) {
			t.Errorf("missing %q", label)
		}
	}
	if strings.Count(svg, "<path") != 3 {
		t.Errorf("expected 3 curves, got %d", strings.Count(svg, "<path"))
	}
	if !strings.HasSuffix(svg, "</svg>") {
		t.Error("unterminated svg")
	}
}

func TestCentralChart(t *testing.T) {
	series, pts := testSeries(t)
	svg := CentralChart(series, pts.Central, 640, 480)

	if !strings.Contains(svg, "Central Difference") {
		t.Error("missing title")
	}
	if strings.Count(svg, "<path") != 3 {
		t.Errorf("expected 3 curves, got %d", strings.Count(svg, "<path"))
	}
}

func TestLogLogSVG_Empty(t *testing.T) {
	if svg := LogLogSVG("empty", nil, 0, 640, 480); svg != "" {
		t.Error("expected empty string for no curves")
	}

	// Curves with no positive samples cannot be placed on a log scale.
	curves := []Curve{{Name: "flat", Color: "#fff", X: []float64{1, 2}, Y: []float64{0, -1}}}
	if svg := LogLogSVG("empty", curves, 0, 640, 480); svg != "" {
		t.Error("expected empty string for all-nonpositive data")
	}
}

func TestLogLogSVG_SkipsNonPositiveSamples(t *testing.T) {
	curves := []Curve{{
		Name:  "mixed",
		Color: "#fff",
		X:     []float64{1e-3, 1e-2, 1e-1},
		Y:     []float64{1e-6, 0, 1e-4},
	}}
	svg := LogLogSVG("mixed", curves, 0, 640, 480)
	if strings.Count(svg, "<path") != 1 {
		t.Fatalf("expected 1 path, got %d", strings.Count(svg, "<path"))
	}
	// Two positive samples survive: one M and one L command.
	if !strings.Contains(svg, "M") || strings.Count(svg, " L") != 1 {
		t.Error("expected path with exactly 2 points")
	}
}
