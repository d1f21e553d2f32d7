package matrix

import (
	"errors"
	"fmt"
)

// Row operations follow the textbook convention: rows are indexed starting
// at 1, and the three elementary operations are swap, scale, and
// scale-and-add. The helpers mutate the receiver in place so an
// interactive session can narrate each step; Reduce works on a copy.

var (
	// ErrZeroScalar reports a row scaling by zero, which is not an
	// elementary operation.
	ErrZeroScalar = errors.New("matrix: scalar must not equal 0")
	// ErrSameRow reports an operation that names the same row twice.
	ErrSameRow = errors.New("matrix: cannot combine a row with itself")
)

func checkRow(i, maxRow int) error {
	if i < 1 || i > maxRow {
		return fmt.Errorf("matrix: invalid row %d: rows must be between 1 and %d", i, maxRow)
	}
	return nil
}

// Swap exchanges row i with row j.
func Swap(A Matrix, i, j int) error {
	if i == j {
		return ErrSameRow
	}
	if err := checkRow(i, len(A)); err != nil {
		return err
	}
	if err := checkRow(j, len(A)); err != nil {
		return err
	}
	A[i-1], A[j-1] = A[j-1], A[i-1]
	return nil
}

// ScaleRow multiplies row i by the nonzero scalar c.
func ScaleRow(A Matrix, i int, c float64) error {
	if c == 0 {
		return ErrZeroScalar
	}
	if err := checkRow(i, len(A)); err != nil {
		return err
	}
	for k := range A[i-1] {
		A[i-1][k] *= c
	}
	return nil
}

// Combine scales row i by c and adds the result to row j. Row i is left
// unchanged.
func Combine(A Matrix, i, j int, c float64) error {
	if c == 0 {
		return ErrZeroScalar
	}
	if i == j {
		return ErrSameRow
	}
	if err := checkRow(i, len(A)); err != nil {
		return err
	}
	if err := checkRow(j, len(A)); err != nil {
		return err
	}
	for k := range A[i-1] {
		A[j-1][k] += c * A[i-1][k]
	}
	return nil
}

// Reduce performs elementary row operations until A is in row-echelon
// form: pivots are normalized to 1, entries below each pivot are
// eliminated, and all-zero rows sink to the bottom. The input is not
// modified.
func Reduce(A Matrix) Matrix {
	B := A.Clone()
	rows, cols := B.Shape()
	r := 0
	for col := 0; col < cols && r < rows; col++ {
		// Locate the next pivot at or below row r.
		p := -1
		for j := r; j < rows; j++ {
			if B[j][col] != 0 {
				p = j
				break
			}
		}
		if p < 0 {
			continue
		}
		B[r], B[p] = B[p], B[r]
		pivot := B[r][col]
		for k := col; k < cols; k++ {
			B[r][k] /= pivot
		}
		for j := r + 1; j < rows; j++ {
			factor := B[j][col]
			if factor == 0 {
				continue
			}
			for k := col; k < cols; k++ {
				B[j][k] -= factor * B[r][k]
			}
		}
		r++
	}
	return B
}

// SolveAugmented reduces an augmented matrix [M | b] and back-substitutes
// to recover the unique solution of Mx = b.
func SolveAugmented(aug Matrix) ([]float64, error) {
	rows, cols := aug.Shape()
	if rows == 0 || cols < 2 {
		return nil, errors.New("matrix: augmented system must be defined")
	}
	unknowns := cols - 1
	R := Reduce(aug)
	x := make([]float64, unknowns)
	solved := make([]bool, unknowns)
	for i := rows - 1; i >= 0; i-- {
		lead := -1
		for k := 0; k < unknowns; k++ {
			if R[i][k] != 0 {
				lead = k
				break
			}
		}
		if lead < 0 {
			if R[i][unknowns] != 0 {
				return nil, errors.New("matrix: system is inconsistent")
			}
			continue
		}
		sum := R[i][unknowns]
		for k := lead + 1; k < unknowns; k++ {
			sum -= R[i][k] * x[k]
		}
		// Pivots come out of Reduce normalized to 1.
		x[lead] = sum
		solved[lead] = true
	}
	for k, ok := range solved {
		if !ok {
			return nil, fmt.Errorf("matrix: system is underdetermined (no pivot for x%d)", k+1)
		}
	}
	return x, nil
}
