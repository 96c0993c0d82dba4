// SPDX-License-Identifier: MIT
// Package reduce: determinant of a square matrix.
//
// Two strategies share the entry point: explicit cofactor expansion for
// n <= 3 (exact for integral data, no pivoting noise) and partial-pivoting
// elimination with sign tracking beyond that. The crossover is a constant,
// not an option, to keep the surface small.

package reduce

import (
	"math"

	"github.com/katalvlaran/numkit/matrix"
)

// detCofactorLimit is the largest dimension solved by explicit cofactor
// formulas; elimination takes over above it.
const detCofactorLimit = 3

// Det computes the determinant of a square matrix.
//
// Implementation:
//   - Stage 1: Validate m non-nil and square. A 0×0 matrix yields 1 (the
//     multiplicative identity — the empty product).
//   - Stage 2: n <= 3 → direct cofactor formulas. Otherwise run forward
//     elimination with partial pivoting on a working copy, without
//     normalizing pivot rows: negate the accumulated sign once per row swap
//     and return sign × product of pivots. A column with no pivot within
//     tolerance short-circuits to 0.
//
// Inputs:
//   - m: square matrix (n×n, n >= 0).
//   - opts: WithEpsilon to tune the singularity tolerance.
//
// Returns:
//   - float64: the determinant.
//
// Errors:
//   - matrix.ErrNilMatrix, matrix.ErrNonSquare.
//
// Determinism:
//   - Fixed column order and lowest-index pivot tie-break.
//
// Complexity:
//   - Time O(n^3), Space O(n^2) for the working copy (O(1) for n <= 3).
func Det(m matrix.Matrix, opts ...Option) (float64, error) {
	if err := matrix.ValidateNotNil(m); err != nil {
		return 0, reduceErrorf(opDet, err)
	}
	// Empty matrix: determinant is the multiplicative identity by convention.
	if m.Rows() == 0 && m.Cols() == 0 {
		return 1, nil
	}
	if err := matrix.ValidateSquare(m); err != nil {
		return 0, reduceErrorf(opDet, err)
	}

	n := m.Rows()
	if n <= detCofactorLimit {
		return detSmall(m, n)
	}

	return detEliminate(m, n, gatherOptions(opts...))
}

// detSmall evaluates the cofactor-expansion formulas for n in {1, 2, 3}.
// Exact for exact inputs: no division, no pivoting.
// Complexity: O(1).
func detSmall(m matrix.Matrix, n int) (float64, error) {
	// Read the block once; At errors are not expected after shape validation.
	var a [3][3]float64
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			a[i][j], _ = m.At(i, j)
		}
	}
	switch n {
	case 1:
		return a[0][0], nil
	case 2:
		return a[0][0]*a[1][1] - a[0][1]*a[1][0], nil
	default: // n == 3: expansion along the first row
		return a[0][0]*(a[1][1]*a[2][2]-a[1][2]*a[2][1]) -
			a[0][1]*(a[1][0]*a[2][2]-a[1][2]*a[2][0]) +
			a[0][2]*(a[1][0]*a[2][1]-a[1][1]*a[2][0]), nil
	}
}

// detEliminate runs LU-style forward elimination with partial pivoting on a
// working copy, tracking the swap sign, and returns the signed pivot product.
// Pivot rows are NOT normalized — the pivots themselves carry the magnitude.
// Complexity: Time O(n^3), Space O(n^2).
func detEliminate(m matrix.Matrix, n int, o Options) (float64, error) {
	work, err := matrix.ToDense(m)
	if err != nil {
		return 0, reduceErrorf(opDet, err)
	}

	var (
		sign           = 1.0 // flips on every row swap
		det            = 1.0 // running pivot product
		k, r, j, best  int
		bestAbs, cand  float64
		pivot, factor  float64
	)
	for k = 0; k < n; k++ {
		// Partial pivot scan in column k, rows k..n-1 (first wins ties).
		best, bestAbs = k, 0
		for r = k; r < n; r++ {
			row, _ := work.RowSlice(r)
			cand = math.Abs(row[k])
			if cand > bestAbs {
				best, bestAbs = r, cand
			}
		}
		// A pivotless column means a linearly dependent row set: det is 0.
		if bestAbs <= o.eps {
			return 0, nil
		}
		if best != k {
			_ = work.SwapRows(best, k)
			sign = -sign // one negation per swap
		}

		pivotRow, _ := work.RowSlice(k)
		pivot = pivotRow[k]
		det *= pivot

		// Eliminate below the pivot; no normalization of the pivot row.
		for r = k + 1; r < n; r++ {
			row, _ := work.RowSlice(r)
			factor = row[k] / pivot
			if factor == 0 {
				continue
			}
			for j = k; j < n; j++ {
				row[j] -= factor * pivotRow[j]
			}
			row[k] = 0
		}
	}

	return sign * det, nil
}
