package plot

import (
	"math"
	"strings"
	"testing"
)

func TestSample(t *testing.T) {
	pts, err := Sample(func(x float64) float64 { return x * x }, 0, 2, 4)
	if err != nil {
		t.Fatalf("Sample: %v", err)
	}
	if len(pts) != 5 {
		t.Fatalf("len = %d, want 5", len(pts))
	}
	if pts[0].X != 0 || pts[len(pts)-1].X != 2 {
		t.Fatalf("endpoints = %v and %v, want 0 and 2", pts[0].X, pts[len(pts)-1].X)
	}
	if math.Abs(pts[2].Y-1) > 1e-12 {
		t.Fatalf("midpoint sample = %v, want 1", pts[2].Y)
	}
}

func TestSampleValidation(t *testing.T) {
	f := func(x float64) float64 { return x }
	if _, err := Sample(f, 0, 1, 0); err == nil {
		t.Fatal("zero steps should fail")
	}
	if _, err := Sample(f, 1, 1, 10); err == nil {
		t.Fatal("empty domain should fail")
	}
	if _, err := Sample(f, 2, 1, 10); err == nil {
		t.Fatal("reversed domain should fail")
	}
}

func TestRenderDimensions(t *testing.T) {
	pts, err := Sample(math.Sin, 0, 2*math.Pi, 100)
	if err != nil {
		t.Fatalf("Sample: %v", err)
	}
	out, err := Render(pts, 60, 20)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	lines := strings.Split(out, "\n")
	if len(lines) != 20 {
		t.Fatalf("height = %d, want 20", len(lines))
	}
	for i, line := range lines {
		if len(line) != 60 {
			t.Fatalf("line %d width = %d, want 60", i, len(line))
		}
	}
	if !strings.Contains(out, "*") {
		t.Fatal("render should mark samples")
	}
}

func TestRenderMarksAxes(t *testing.T) {
	pts, err := Sample(func(x float64) float64 { return x }, -1, 1, 50)
	if err != nil {
		t.Fatalf("Sample: %v", err)
	}
	out, err := Render(pts, 40, 16)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if !strings.Contains(out, "-") || !strings.Contains(out, "|") {
		t.Fatal("axes should be drawn when the origin is in view")
	}
}

func TestRenderFlatFunction(t *testing.T) {
	pts, err := Sample(func(float64) float64 { return 3 }, 0, 1, 10)
	if err != nil {
		t.Fatalf("Sample: %v", err)
	}
	out, err := Render(pts, 30, 10)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if !strings.Contains(out, "*") {
		t.Fatal("flat function should still render a row of samples")
	}
}

func TestRenderEmpty(t *testing.T) {
	if _, err := Render(nil, 40, 10); err == nil {
		t.Fatal("empty point set should fail")
	}
}

func TestRenderClampsTinyGrids(t *testing.T) {
	pts, err := Sample(func(x float64) float64 { return x }, 0, 1, 4)
	if err != nil {
		t.Fatalf("Sample: %v", err)
	}
	out, err := Render(pts, 1, 1)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	lines := strings.Split(out, "\n")
	if len(lines) != MinHeight {
		t.Fatalf("height = %d, want clamped to %d", len(lines), MinHeight)
	}
	if len(lines[0]) != MinWidth {
		t.Fatalf("width = %d, want clamped to %d", len(lines[0]), MinWidth)
	}
}
