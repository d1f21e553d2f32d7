// Package interp approximates a function at unknown points by building a
// Newton-form interpolating polynomial through its known values.
package interp

import (
	"errors"

	"calcpad/internal/points"
)

// ErrNoPoints reports an interpolation request without known values.
var ErrNoPoints = errors.New("interp: points must not be empty")

// DividedDifference computes the divided difference f[x0, x1, ..., xn]
// for the given points. It is the highest-order Newton coefficient.
func DividedDifference(pts []points.Point) (float64, error) {
	coefs, err := Coefficients(pts)
	if err != nil {
		return 0, err
	}
	return coefs[len(coefs)-1], nil
}

// Coefficients computes the Newton-form coefficients f[x0], f[x0,x1], ...
// by filling the divided-difference table one order at a time, reusing
// the previous order in place, so a batch of interpolations shares one
// quadratic pass.
func Coefficients(pts []points.Point) ([]float64, error) {
	if len(pts) == 0 {
		return nil, ErrNoPoints
	}
	n := len(pts)
	diffs := make([]float64, n)
	for i, p := range pts {
		diffs[i] = p.Y
	}
	coefs := make([]float64, n)
	coefs[0] = diffs[0]
	for order := 1; order < n; order++ {
		for i := 0; i < n-order; i++ {
			// Each quotient spans order+1 consecutive points.
			dx := pts[i+order].X - pts[i].X
			if dx == 0 {
				return nil, errors.New("interp: repeated x value in points")
			}
			diffs[i] = (diffs[i+1] - diffs[i]) / dx
		}
		coefs[order] = diffs[0]
	}
	return coefs, nil
}

// terms fills out the products (z-x0), (z-x0)(z-x1), ... that weight each
// Newton coefficient when evaluating at z.
func terms(pts []points.Point, z float64) []float64 {
	out := make([]float64, len(pts))
	out[0] = 1
	for i := 1; i < len(pts); i++ {
		out[i] = out[i-1] * (z - pts[i-1].X)
	}
	return out
}

// At evaluates the interpolating polynomial through pts at a single z.
func At(pts []points.Point, z float64) (float64, error) {
	coefs, err := Coefficients(pts)
	if err != nil {
		return 0, err
	}
	return evaluate(coefs, terms(pts, z)), nil
}

// Interpolate approximates f at every z in zs using the polynomial through
// the known points. Coefficients are computed once and shared across the
// batch.
func Interpolate(pts []points.Point, zs []float64) ([]float64, error) {
	coefs, err := Coefficients(pts)
	if err != nil {
		return nil, err
	}
	out := make([]float64, len(zs))
	for i, z := range zs {
		out[i] = evaluate(coefs, terms(pts, z))
	}
	return out, nil
}

func evaluate(coefs, weights []float64) float64 {
	var sum float64
	for i := range weights {
		sum += coefs[i] * weights[i]
	}
	return sum
}
