// Package vector implements the small amount of vector arithmetic the
// exercises need: norms, projections, the cross product in R3, and the
// Gram-Schmidt process.
package vector

import (
	"errors"
	"fmt"
	"math"
)

// ErrZeroVector reports an operation that requires a non-zero vector.
var ErrZeroVector = errors.New("vector: must be non-zero")

// Vector is an n-component column vector. Row and column vectors share the
// same representation.
type Vector []float64

// Clone returns an independent copy of v.
func (v Vector) Clone() Vector {
	if v == nil {
		return nil
	}
	out := make(Vector, len(v))
	copy(out, v)
	return out
}

func sameLength(op string, u, v Vector) error {
	if len(u) != len(v) {
		return fmt.Errorf("vector: %s: length mismatch %d vs %d", op, len(u), len(v))
	}
	return nil
}

// Dot computes the dot product u · v.
func Dot(u, v Vector) (float64, error) {
	if err := sameLength("dot", u, v); err != nil {
		return 0, err
	}
	var sum float64
	for i := range u {
		sum += u[i] * v[i]
	}
	return sum, nil
}

// Add returns u + v.
func Add(u, v Vector) (Vector, error) {
	if err := sameLength("add", u, v); err != nil {
		return nil, err
	}
	out := make(Vector, len(u))
	for i := range u {
		out[i] = u[i] + v[i]
	}
	return out, nil
}

// Sub returns u - v.
func Sub(u, v Vector) (Vector, error) {
	if err := sameLength("sub", u, v); err != nil {
		return nil, err
	}
	out := make(Vector, len(u))
	for i := range u {
		out[i] = u[i] - v[i]
	}
	return out, nil
}

// Scale returns u scaled by k.
func Scale(u Vector, k float64) Vector {
	out := make(Vector, len(u))
	for i, a := range u {
		out[i] = a * k
	}
	return out
}

// MagSquare computes the square of the magnitude of u. Cheaper than Norm
// when the square root is about to be cancelled anyway.
func MagSquare(u Vector) float64 {
	var sum float64
	for _, a := range u {
		sum += a * a
	}
	return sum
}

// Norm computes the magnitude ||u|| = sqrt(u1² + u2² + ... + un²).
func Norm(u Vector) float64 {
	return math.Sqrt(MagSquare(u))
}

// Normalize produces the unit vector pointing in the direction of u by
// scaling its components by the reciprocal of its magnitude.
func Normalize(u Vector) (Vector, error) {
	k := Norm(u)
	if k == 0 {
		return nil, ErrZeroVector
	}
	return Scale(u, 1/k), nil
}

// Project computes the orthogonal projection of u onto v:
//
//	proj_v(u) = <u, v>/||v||² · v
func Project(u, v Vector) (Vector, error) {
	dot, err := Dot(u, v)
	if err != nil {
		return nil, err
	}
	mag := MagSquare(v)
	if mag == 0 {
		return nil, ErrZeroVector
	}
	return Scale(v, dot/mag), nil
}

// Cross computes the cross product u × v. Both vectors must live in R3.
//
//	u × v = (u2v3 - u3v2, u3v1 - u1v3, u1v2 - u2v1)
func Cross(u, v Vector) (Vector, error) {
	if len(u) != 3 || len(v) != 3 {
		return nil, fmt.Errorf("vector: cross product requires R3 operands, got %d and %d components", len(u), len(v))
	}
	return Vector{
		u[1]*v[2] - u[2]*v[1],
		u[2]*v[0] - u[0]*v[2],
		u[0]*v[1] - u[1]*v[0],
	}, nil
}

// GramSchmidt converts basis into an orthogonal basis:
//
//	v_1 = u_1
//	v_i = u_i - sum over k < i of proj_{v_k}(u_i)
//
// The resulting basis is not normalized. Vectors must share a dimension
// and each must carry a component outside the span of its predecessors.
func GramSchmidt(basis []Vector) ([]Vector, error) {
	if len(basis) == 0 {
		return nil, errors.New("vector: basis must be nonempty")
	}
	ortho := make([]Vector, 0, len(basis))
	for _, u := range basis {
		w := u.Clone()
		for _, v := range ortho {
			p, err := Project(w, v)
			if err != nil {
				return nil, err
			}
			if w, err = Sub(w, p); err != nil {
				return nil, err
			}
		}
		ortho = append(ortho, w)
	}
	return ortho, nil
}
