// SPDX-License-Identifier: MIT
// Package reduce: the shared elimination primitive. ReduceInPlace is the one
// mutating kernel; RREF, Rank, Inverse and Solve are combinators over it (or
// over its forward-only sibling), so pivoting policy lives in exactly one
// place.

package reduce

import (
	"fmt"
	"math"

	"github.com/katalvlaran/numkit/matrix"
)

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opRREF    = "RREF"
	opRank    = "Rank"
	opDet     = "Det"
	opInverse = "Inverse"
	opSolve   = "Solve"
)

// reduceErrorf wraps err with an operation tag, preserving the original error
// via %w so errors.Is/As still match. Call only when err != nil.
func reduceErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ReduceInPlace reduces d to reduced row-echelon form in place and returns
// the pivot columns in ascending order. Non-square input is valid.
//
// Implementation:
//   - Stage 1: Validate d non-nil.
//   - Stage 2: For each column c while pivot rows remain:
//     scan rows p..m-1 for the entry with largest |value| (partial pivoting;
//     the first row encountered wins ties — lowest index, deterministic);
//     if that magnitude is <= eps the column has no pivot — snap the
//     scanned entries to exactly 0 and advance to the next column without
//     consuming a pivot row; otherwise swap the winning row into position p
//     (direct O(cols) buffer exchange), scale it so the pivot becomes
//     exactly 1, and eliminate column c from every other row.
//
// Behavior highlights:
//   - Pivot count == rank; a fully zero column is rank deficiency, not an error.
//   - Pivot cells are written as exact 1, eliminated cells as exact 0, so the
//     reduced form is clean for downstream equality checks.
//
// Inputs:
//   - d: the matrix to reduce; mutated in place through its row slices.
//   - opts: WithEpsilon to tune the zero tolerance.
//
// Returns:
//   - []int: pivot column indices, strictly increasing.
//
// Errors:
//   - matrix.ErrNilMatrix (nil input).
//
// Determinism:
//   - Fixed column order, fixed scan order, lowest-index tie-break.
//
// Complexity:
//   - Time O(m·n·min(m,n)), Space O(1) beyond the pivot list.
func ReduceInPlace(d *matrix.Dense, opts ...Option) ([]int, error) {
	if d == nil {
		return nil, reduceErrorf(opRREF, matrix.ErrNilMatrix)
	}
	o := gatherOptions(opts...)

	rows, cols := d.Rows(), d.Cols()
	pivots := make([]int, 0, minInt(rows, cols))

	var (
		p        int       // next pivot row to fill
		col, r   int       // column / row iterators
		best     int       // winning row of the partial-pivot scan
		bestAbs  float64   // |d[best, col]|
		cand     float64   // scan temporary
		pivotRow []float64 // row slice aliases (write-through)
		otherRow []float64
		pivot, factor float64
		j             int
	)
	for col = 0; col < cols && p < rows; col++ {
		// Partial pivot scan: largest magnitude in column col, rows p..rows-1.
		best, bestAbs = p, 0
		for r = p; r < rows; r++ {
			row, _ := d.RowSlice(r) // r validated by the loop bounds
			cand = math.Abs(row[col])
			if cand > bestAbs { // strict '>' keeps the lowest index on ties
				best, bestAbs = r, cand
			}
		}

		// No pivot: the column is zero within tolerance. Snap the residue to
		// exact zeros and move on without consuming a pivot row.
		if bestAbs <= o.eps {
			for r = p; r < rows; r++ {
				row, _ := d.RowSlice(r)
				row[col] = 0
			}

			continue
		}

		// Swap the winning row into pivot position (direct buffer exchange).
		_ = d.SwapRows(best, p) // indices already validated

		// Scale the pivot row so the pivot entry becomes exactly 1.
		pivotRow, _ = d.RowSlice(p)
		pivot = pivotRow[col]
		for j = col; j < cols; j++ {
			pivotRow[j] /= pivot
		}
		pivotRow[col] = 1 // exact unit pivot, no rounding residue

		// Eliminate column col from every other row.
		for r = 0; r < rows; r++ {
			if r == p {
				continue
			}
			otherRow, _ = d.RowSlice(r)
			factor = otherRow[col]
			if factor == 0 {
				continue // already eliminated
			}
			for j = col; j < cols; j++ {
				otherRow[j] -= factor * pivotRow[j]
			}
			otherRow[col] = 0 // exact zero in the pivot column
		}

		pivots = append(pivots, col)
		p++
	}

	return pivots, nil
}

// RREF returns the reduced row-echelon form of m as a fresh matrix together
// with its pivot columns; m itself is never mutated. This is the
// apply-to-copy combinator over ReduceInPlace.
// Errors: matrix.ErrNilMatrix.
// Complexity: Time O(m·n·min(m,n)), Space O(m·n) for the working copy.
func RREF(m matrix.Matrix, opts ...Option) (*matrix.Dense, []int, error) {
	work, err := matrix.ToDense(m) // compact deep copy, never aliases m
	if err != nil {
		return nil, nil, reduceErrorf(opRREF, err)
	}
	pivots, err := ReduceInPlace(work, opts...)
	if err != nil {
		return nil, nil, err // already wrapped by the primitive
	}

	return work, pivots, nil
}

// Rank returns the number of pivots of the reduced row-echelon form of m.
// The zero matrix has rank 0; rank never exceeds min(rows, cols).
// Errors: matrix.ErrNilMatrix.
// Complexity: Time O(m·n·min(m,n)), Space O(m·n).
func Rank(m matrix.Matrix, opts ...Option) (int, error) {
	_, pivots, err := RREF(m, opts...)
	if err != nil {
		return 0, reduceErrorf(opRank, err)
	}

	return len(pivots), nil
}

// minInt is a tiny helper kept local to avoid pulling in generics for one use.
func minInt(a, b int) int {
	if a < b {
		return a
	}

	return b
}
