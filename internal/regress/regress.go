// Package regress estimates linear trends through sampled data: pairwise
// slopes between successive points, and best-fit lines by the method of
// least squares.
package regress

import (
	"errors"
	"fmt"

	"calcpad/internal/matrix"
	"calcpad/internal/points"
	"calcpad/internal/vector"
)

// ErrVertical reports a slope through two points that share an x value.
var ErrVertical = errors.New("regress: points share an x value, slope is undefined")

// Line is y = Slope·x + Intercept.
type Line struct {
	Slope     float64
	Intercept float64
}

// At evaluates the line at x.
func (l Line) At(x float64) float64 {
	return l.Slope*x + l.Intercept
}

// SlopeBetween computes the slope of the line passing through a and b.
func SlopeBetween(a, b points.Point) (float64, error) {
	if a.X == b.X {
		return 0, ErrVertical
	}
	return (a.Y - b.Y) / (a.X - b.X), nil
}

// SuccessiveSlopes computes the pairwise slopes between adjacent points.
// Entry i is the slope between pts[i] and pts[i+1]. Points are taken in
// the order given; they are not sorted first.
func SuccessiveSlopes(pts []points.Point) ([]float64, error) {
	if len(pts) < 2 {
		return nil, fmt.Errorf("regress: need at least 2 points, got %d", len(pts))
	}
	out := make([]float64, len(pts)-1)
	for i := 0; i < len(pts)-1; i++ {
		s, err := SlopeBetween(pts[i], pts[i+1])
		if err != nil {
			return nil, fmt.Errorf("regress: between points %d and %d: %w", i, i+1, err)
		}
		out[i] = s
	}
	return out, nil
}

// Fit computes the least-squares regression line through pts using the
// closed-form estimates:
//
//	slope     = (n·Σxy - Σx·Σy) / (n·Σx² - (Σx)²)
//	intercept = (Σy - slope·Σx) / n
func Fit(pts []points.Point) (Line, error) {
	n := len(pts)
	if n < 2 {
		return Line{}, fmt.Errorf("regress: need at least 2 points, got %d", n)
	}
	var xSum, ySum, xySum, xSqSum float64
	for _, p := range pts {
		xSum += p.X
		ySum += p.Y
		xySum += p.X * p.Y
		xSqSum += p.X * p.X
	}
	denom := float64(n)*xSqSum - xSum*xSum
	if denom == 0 {
		return Line{}, ErrVertical
	}
	slope := (float64(n)*xySum - xSum*ySum) / denom
	intercept := (ySum - slope*xSum) / float64(n)
	return Line{Slope: slope, Intercept: intercept}, nil
}

// FitNormal computes the same regression line by building and solving the
// normal equation of the overdetermined system [x 1]·(slope, intercept) = y.
// Agrees with Fit up to rounding; exists to cross-check the matrix path.
func FitNormal(pts []points.Point) (Line, error) {
	n := len(pts)
	if n < 2 {
		return Line{}, fmt.Errorf("regress: need at least 2 points, got %d", n)
	}
	design := make(matrix.Matrix, n)
	rhs := make(vector.Vector, n)
	for i, p := range pts {
		design[i] = []float64{p.X, 1}
		rhs[i] = p.Y
	}
	aug, err := matrix.NormalEquation(design, rhs)
	if err != nil {
		return Line{}, err
	}
	solution, err := matrix.SolveAugmented(aug)
	if err != nil {
		return Line{}, fmt.Errorf("regress: solve normal equation: %w", err)
	}
	return Line{Slope: solution[0], Intercept: solution[1]}, nil
}
