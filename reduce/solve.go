// SPDX-License-Identifier: MIT
// Package reduce: direct linear solves through the shared elimination engine.

package reduce

import "github.com/katalvlaran/numkit/matrix"

// Solve computes the unique solution x of A·x = b via Gauss–Jordan
// elimination on the augmented matrix [A | b].
//
// Implementation:
//   - Stage 1: Validate A non-nil and square, len(b) == A.Rows().
//   - Stage 2: Reduce [A | b]; a unique solution exists iff every pivot
//     lands in the coefficient block (columns 0..n-1).
//   - Stage 3: The augmentation column of the reduced form is x.
//
// Inputs:
//   - a: square coefficient matrix (n×n).
//   - b: right-hand side, length n.
//   - opts: WithEpsilon to tune the pivot tolerance.
//
// Returns:
//   - []float64: the solution vector x.
//
// Errors:
//   - matrix.ErrNilMatrix, matrix.ErrNonSquare, matrix.ErrDimensionMismatch,
//     ErrSingular (rank-deficient system: no unique solution).
//
// Complexity:
//   - Time O(n^3), Space O(n^2).
func Solve(a matrix.Matrix, b []float64, opts ...Option) ([]float64, error) {
	if err := matrix.ValidateSquareNonNil(a); err != nil {
		return nil, reduceErrorf(opSolve, err)
	}
	if err := matrix.ValidateVecLen(b, a.Rows()); err != nil {
		return nil, reduceErrorf(opSolve, err)
	}

	// Build the augmented matrix [A | b].
	n := a.Rows()
	aug, err := matrix.NewDense(n, n+1)
	if err != nil {
		return nil, reduceErrorf(opSolve, err)
	}
	var v float64
	for i := 0; i < n; i++ {
		row, _ := aug.RowSlice(i)
		for j := 0; j < n; j++ {
			v, err = a.At(i, j)
			if err != nil {
				return nil, reduceErrorf(opSolve, err)
			}
			row[j] = v
		}
		row[n] = b[i] // right-hand side column
	}

	pivots, err := ReduceInPlace(aug, opts...)
	if err != nil {
		return nil, reduceErrorf(opSolve, err)
	}
	// Unique solution ⇔ full pivot set inside the coefficient block.
	if len(pivots) < n || pivots[n-1] != n-1 {
		return nil, reduceErrorf(opSolve, ErrSingular)
	}

	// Read x off the augmentation column.
	x := make([]float64, n)
	for i := 0; i < n; i++ {
		row, _ := aug.RowSlice(i)
		x[i] = row[n]
	}

	return x, nil
}
