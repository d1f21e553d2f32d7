// Package matrix performs the matrix arithmetic behind the linear-algebra
// exercises. Every operation checks its operands for dimensional validity
// and returns an error naming both shapes when the operation cannot be
// performed.
package matrix

import (
	"errors"
	"fmt"
	"strings"

	"calcpad/internal/vector"
)

// Matrix is an m×n matrix stored in row-major order.
type Matrix [][]float64

// Shape returns the row and column counts.
func (A Matrix) Shape() (rows, cols int) {
	if len(A) == 0 {
		return 0, 0
	}
	return len(A), len(A[0])
}

// Clone returns an independent copy of A.
func (A Matrix) Clone() Matrix {
	out := make(Matrix, len(A))
	for i, row := range A {
		out[i] = make([]float64, len(row))
		copy(out[i], row)
	}
	return out
}

// String renders rows as tab-separated lines, the way worked solutions are
// written out by hand.
func (A Matrix) String() string {
	var b strings.Builder
	for _, row := range A {
		parts := make([]string, len(row))
		for j, entry := range row {
			parts[j] = vector.FormatComponent(entry)
		}
		b.WriteString(strings.Join(parts, "\t"))
		b.WriteByte('\n')
	}
	return b.String()
}

// checkDim validates that A and B are both defined and that their shapes
// satisfy ok.
func checkDim(A, B Matrix, ok func(rowA, colA, rowB, colB int) bool) error {
	if len(A) == 0 || len(B) == 0 {
		return errors.New("matrix: both matrices must be defined")
	}
	rowA, colA := A.Shape()
	rowB, colB := B.Shape()
	if !ok(rowA, colA, rowB, colB) {
		return fmt.Errorf("matrix: invalid dimensions for A: %dx%d B: %dx%d", rowA, colA, rowB, colB)
	}
	return nil
}

// Scale multiplies each entry of A by c.
func Scale(A Matrix, c float64) Matrix {
	out := make(Matrix, len(A))
	for i, row := range A {
		out[i] = make([]float64, len(row))
		for j, entry := range row {
			out[i][j] = entry * c
		}
	}
	return out
}

// Add computes the entrywise sum A + B. The shapes must match.
func Add(A, B Matrix) (Matrix, error) {
	if err := checkDim(A, B, func(a, b, c, d int) bool { return a == c && b == d }); err != nil {
		return nil, err
	}
	out := make(Matrix, len(A))
	for i := range A {
		out[i] = make([]float64, len(A[i]))
		for j := range A[i] {
			out[i][j] = A[i][j] + B[i][j]
		}
	}
	return out, nil
}

// Sub computes the entrywise difference A - B. The shapes must match.
func Sub(A, B Matrix) (Matrix, error) {
	if err := checkDim(A, B, func(a, b, c, d int) bool { return a == c && b == d }); err != nil {
		return nil, err
	}
	out := make(Matrix, len(A))
	for i := range A {
		out[i] = make([]float64, len(A[i]))
		for j := range A[i] {
			out[i][j] = A[i][j] - B[i][j]
		}
	}
	return out, nil
}

// Transpose returns Aᵀ.
func Transpose(A Matrix) Matrix {
	rows, cols := A.Shape()
	out := make(Matrix, cols)
	for j := 0; j < cols; j++ {
		out[j] = make([]float64, rows)
		for i := 0; i < rows; i++ {
			out[j][i] = A[i][j]
		}
	}
	return out
}

// MatVec computes A·v for a column vector v with one component per column
// of A.
func MatVec(A Matrix, v vector.Vector) (vector.Vector, error) {
	if err := checkDim(A, Matrix{v}, func(_, b, _, d int) bool { return b == d }); err != nil {
		return nil, err
	}
	out := make(vector.Vector, len(A))
	for i, row := range A {
		dot, err := vector.Dot(row, v)
		if err != nil {
			return nil, err
		}
		out[i] = dot
	}
	return out, nil
}

// VecMat computes v·A for a row vector v with one component per row of A.
func VecMat(v vector.Vector, A Matrix) (vector.Vector, error) {
	if err := checkDim(Matrix{v}, A, func(_, b, c, _ int) bool { return b == c }); err != nil {
		return nil, err
	}
	return MatVec(Transpose(A), v)
}

// Mul performs the standard triple-loop matrix multiplication AB.
func Mul(A, B Matrix) (Matrix, error) {
	if err := checkDim(A, B, func(_, b, c, _ int) bool { return b == c }); err != nil {
		return nil, err
	}
	m, n := A.Shape()
	_, l := B.Shape()
	C := make(Matrix, m)
	for i := 0; i < m; i++ {
		C[i] = make([]float64, l)
		for k := 0; k < l; k++ {
			for j := 0; j < n; j++ {
				C[i][k] += A[i][j] * B[j][k]
			}
		}
	}
	return C, nil
}

// MulPartitioned performs the multiplication AB by row-column partitions:
// with A split into columns c_i and B into rows r_i, AB is the matrix sum
// c1r1 + c2r2 + ... + cnrn. Same result as Mul, different bookkeeping.
func MulPartitioned(A, B Matrix) (Matrix, error) {
	if err := checkDim(A, B, func(_, b, c, _ int) bool { return b == c }); err != nil {
		return nil, err
	}
	m, n := A.Shape()
	_, l := B.Shape()
	aT := Transpose(A)
	C := make(Matrix, m)
	for i := range C {
		C[i] = make([]float64, l)
	}
	for i := 0; i < n; i++ {
		// Outer product of column i of A with row i of B.
		for r := 0; r < m; r++ {
			for c := 0; c < l; c++ {
				C[r][c] += aT[i][r] * B[i][c]
			}
		}
	}
	return C, nil
}

// InnerProduct computes the inner product <u, v> induced by A:
//
//	<u, v> = Au · Av
func InnerProduct(A Matrix, u, v vector.Vector) (float64, error) {
	au, err := MatVec(A, u)
	if err != nil {
		return 0, err
	}
	av, err := MatVec(A, v)
	if err != nil {
		return 0, err
	}
	return vector.Dot(au, av)
}

// NormalEquation builds the augmented matrix [AᵀA | Aᵀb] encoding the
// normal equation of the system Ax = b. Reducing the result yields the
// least-squares solution of the original system.
func NormalEquation(A Matrix, b vector.Vector) (Matrix, error) {
	T := Transpose(A)
	square, err := Mul(T, A)
	if err != nil {
		return nil, err
	}
	rhs, err := MatVec(T, b)
	if err != nil {
		return nil, err
	}
	out := make(Matrix, len(square))
	for i, row := range square {
		out[i] = append(append([]float64{}, row...), rhs[i])
	}
	return out, nil
}
