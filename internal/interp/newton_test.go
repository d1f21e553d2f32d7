package interp

import (
	"errors"
	"math"
	"testing"

	"calcpad/internal/points"
)

const tol = 1e-12

func TestDividedDifference(t *testing.T) {
	cases := []struct {
		name   string
		points []points.Point
		want   float64
	}{
		{
			name:   "single point is its own value",
			points: []points.Point{{X: 0, Y: 1}},
			want:   1,
		},
		{
			name:   "two points give the slope",
			points: []points.Point{{X: 0, Y: 1}, {X: 4, Y: 3}},
			want:   0.5,
		},
		{
			name:   "three points",
			points: []points.Point{{X: 0, Y: 1}, {X: 4, Y: 3}, {X: 5, Y: 2}},
			want:   -0.3,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := DividedDifference(tc.points)
			if err != nil {
				t.Fatalf("DividedDifference: %v", err)
			}
			if math.Abs(got-tc.want) > tol {
				t.Fatalf("DividedDifference = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestDividedDifferenceEmpty(t *testing.T) {
	if _, err := DividedDifference(nil); !errors.Is(err, ErrNoPoints) {
		t.Fatalf("err = %v, want ErrNoPoints", err)
	}
}

func TestDividedDifferenceRepeatedX(t *testing.T) {
	if _, err := DividedDifference([]points.Point{{X: 1, Y: 2}, {X: 1, Y: 3}}); err == nil {
		t.Fatal("repeated x should fail")
	}
}

func TestInterpolateReproducesKnownPoints(t *testing.T) {
	pts := []points.Point{{X: 0, Y: 1}, {X: 4, Y: 3}, {X: 5, Y: 2}}
	for _, p := range pts {
		got, err := At(pts, p.X)
		if err != nil {
			t.Fatalf("At(%v): %v", p.X, err)
		}
		if math.Abs(got-p.Y) > tol {
			t.Fatalf("At(%v) = %v, want %v", p.X, got, p.Y)
		}
	}
}

func TestInterpolateExactOnQuadratic(t *testing.T) {
	// f(x) = x² - 2x + 3 is degree two, so three samples pin it exactly.
	f := func(x float64) float64 { return x*x - 2*x + 3 }
	pts := []points.Point{
		{X: -1, Y: f(-1)},
		{X: 1, Y: f(1)},
		{X: 4, Y: f(4)},
	}
	zs := []float64{-2, 0, 0.5, 2.5, 10}
	got, err := Interpolate(pts, zs)
	if err != nil {
		t.Fatalf("Interpolate: %v", err)
	}
	for i, z := range zs {
		if math.Abs(got[i]-f(z)) > 1e-9 {
			t.Fatalf("Interpolate at %v = %v, want %v", z, got[i], f(z))
		}
	}
}

func TestInterpolateHandlesLargeDataSets(t *testing.T) {
	// Forty samples of a cubic. The polynomial still passes through all
	// of them, and the table fill keeps this fast.
	f := func(x float64) float64 { return x*x*x - 4*x }
	pts := make([]points.Point, 40)
	for i := range pts {
		x := float64(i) / 4
		pts[i] = points.Point{X: x, Y: f(x)}
	}
	coefs, err := Coefficients(pts)
	if err != nil {
		t.Fatalf("Coefficients: %v", err)
	}
	if len(coefs) != len(pts) {
		t.Fatalf("got %d coefficients, want %d", len(coefs), len(pts))
	}
	for _, p := range pts[:10] {
		got, err := At(pts, p.X)
		if err != nil {
			t.Fatalf("At(%v): %v", p.X, err)
		}
		if math.Abs(got-p.Y) > 1e-6 {
			t.Fatalf("At(%v) = %v, want %v", p.X, got, p.Y)
		}
	}
}

func TestInterpolateApproximatesSqrt(t *testing.T) {
	pts := []points.Point{
		{X: 1, Y: 1},
		{X: 4, Y: 2},
		{X: 9, Y: 3},
		{X: 16, Y: 4},
	}
	got, err := At(pts, 7)
	if err != nil {
		t.Fatalf("At: %v", err)
	}
	if math.Abs(got-math.Sqrt(7)) > 0.1 {
		t.Fatalf("At(7) = %v, too far from sqrt(7) = %v", got, math.Sqrt(7))
	}
}
