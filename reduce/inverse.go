// SPDX-License-Identifier: MIT
// Package reduce: matrix inversion and invertibility testing via the shared
// elimination engine (Gauss–Jordan over an identity-augmented working matrix).

package reduce

import (
	"math"

	"github.com/katalvlaran/numkit/matrix"
)

// Inverse computes A⁻¹ for a square matrix A, or reports ErrSingular.
//
// Implementation:
//   - Stage 1: Validate m non-nil and square. Build the augmented working
//     matrix [A | I] (n×2n).
//   - Stage 2: Run ReduceInPlace to full reduced row-echelon form. A is
//     invertible iff every pivot lands in the left block, i.e. the pivot
//     columns are exactly 0..n-1; otherwise some pivot escaped into the
//     augmentation and A is singular.
//   - Stage 3: Extract the right block (a zero-copy Submatrix) and clone it
//     into an owned compact result.
//
// Behavior highlights:
//   - Singularity is data, not failure: callers branch on errors.Is(err,
//     ErrSingular). The input is never mutated.
//
// Inputs:
//   - m: square matrix (n×n).
//   - opts: WithEpsilon to tune the pivot tolerance.
//
// Returns:
//   - *matrix.Dense: a fresh n×n inverse.
//
// Errors:
//   - matrix.ErrNilMatrix, matrix.ErrNonSquare, ErrSingular.
//
// Determinism:
//   - Inherited from ReduceInPlace (fixed orders, lowest-index tie-break).
//
// Complexity:
//   - Time O(n^3), Space O(n^2) for the augmented working matrix.
func Inverse(m matrix.Matrix, opts ...Option) (*matrix.Dense, error) {
	if err := matrix.ValidateSquareNonNil(m); err != nil {
		return nil, reduceErrorf(opInverse, err)
	}

	n := m.Rows()
	aug, err := augmentIdentity(m, n)
	if err != nil {
		return nil, reduceErrorf(opInverse, err)
	}

	pivots, err := ReduceInPlace(aug, opts...)
	if err != nil {
		return nil, reduceErrorf(opInverse, err)
	}
	// Invertible ⇔ pivots fill the left block exactly (columns 0..n-1).
	if len(pivots) < n || pivots[n-1] != n-1 {
		return nil, reduceErrorf(opInverse, ErrSingular)
	}

	// The right augmentation block now holds A⁻¹; detach it from the
	// augmented buffer with a compact clone.
	right, err := aug.Submatrix(0, n, n, n)
	if err != nil {
		return nil, reduceErrorf(opInverse, err)
	}

	return right.Clone().(*matrix.Dense), nil
}

// IsInvertible reports whether m has an inverse, using a forward-only
// pivoting pass that short-circuits at the first pivotless column. Cheaper
// than Inverse when only the yes/no answer matters.
// Errors: matrix.ErrNilMatrix, matrix.ErrNonSquare.
// Complexity: Time O(n^3) worst case, Space O(n^2); exits early on the first
// missing pivot.
func IsInvertible(m matrix.Matrix, opts ...Option) (bool, error) {
	if err := matrix.ValidateSquareNonNil(m); err != nil {
		return false, reduceErrorf(opInverse, err)
	}
	o := gatherOptions(opts...)

	work, err := matrix.ToDense(m)
	if err != nil {
		return false, reduceErrorf(opInverse, err)
	}

	n := work.Rows()
	var (
		k, r, j, best int
		bestAbs, cand float64
		pivot, factor float64
	)
	for k = 0; k < n; k++ {
		// Partial pivot scan in column k (first wins ties).
		best, bestAbs = k, 0
		for r = k; r < n; r++ {
			row, _ := work.RowSlice(r)
			cand = math.Abs(row[k])
			if cand > bestAbs {
				best, bestAbs = r, cand
			}
		}
		if bestAbs <= o.eps {
			return false, nil // missing pivot: singular, stop immediately
		}
		_ = work.SwapRows(best, k)

		pivotRow, _ := work.RowSlice(k)
		pivot = pivotRow[k]
		// Eliminate below only; upper entries are irrelevant to the verdict.
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

	return true, nil
}

// augmentIdentity builds the n×2n working matrix [A | I].
// Complexity: O(n^2).
func augmentIdentity(m matrix.Matrix, n int) (*matrix.Dense, error) {
	aug, err := matrix.NewDense(n, 2*n)
	if err != nil {
		return nil, err
	}
	var v float64
	for i := 0; i < n; i++ {
		row, _ := aug.RowSlice(i)
		for j := 0; j < n; j++ {
			v, err = m.At(i, j)
			if err != nil {
				return nil, err
			}
			row[j] = v
		}
		row[n+i] = 1 // identity block
	}

	return aug, nil
}
