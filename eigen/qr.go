// SPDX-License-Identifier: MIT
// Package eigen: QR decomposition — the primitive every spectrum solver in
// this package is built on.

package eigen

import (
	"fmt"
	"math"

	"github.com/katalvlaran/numkit/matrix"
)

// Operation tags for error wrapping (keep wording stable for tests/logs).
const (
	opQR             = "QR"
	opAnalytic2x2    = "Analytic2x2"
	opPower          = "Power"
	opEigen          = "Eigen"
	opEigenSymmetric = "EigenSymmetric"
)

// eigenErrorf wraps an underlying error with the operation context exactly
// once, preserving errors.Is matching on sentinels.
func eigenErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}

// rowsOf exposes the rows of d as flat slices for kernel-style loops.
// The slices alias d: writes go straight through.
func rowsOf(d *matrix.Dense) [][]float64 {
	rows := make([][]float64, d.Rows())
	for i := 0; i < d.Rows(); i++ {
		rows[i], _ = d.RowSlice(i) // index is in range by construction
	}

	return rows
}

// QR factors a square matrix A into an orthogonal Q and an upper-triangular R
// with A = Q·R.
//
// Implementation:
//   - Default flavor: Householder reflections. For each column k a reflector
//     H_k annihilates the sub-diagonal entries; R accumulates H_{n-2}···H_0·A
//     and Q accumulates the product H_0···H_{n-2}, so Q·R reproduces A.
//   - WithGramSchmidt: modified Gram–Schmidt. Each column of A is
//     orthogonalized against the previous Q columns; the projection
//     coefficients populate R.
//
// Behavior highlights:
//   - Rank deficiency is not an error. A column whose residual norm falls at
//     or below the tolerance yields R[k][k] = 0 and (for Gram–Schmidt) a zero
//     column in Q — never NaN from a division by zero.
//   - R's sub-diagonal entries are stored as exact zeros.
//
// Inputs:
//   - m: square matrix (any Matrix implementation; densified internally).
//   - opts: WithTolerance, WithGramSchmidt / WithHouseholder.
//
// Returns:
//   - q: n×n orthogonal factor.
//   - r: n×n upper-triangular factor.
//
// Errors:
//   - matrix.ErrNilMatrix, matrix.ErrNonSquare.
//
// Determinism:
//   - Fixed column-major elimination order; no randomness.
//
// Complexity:
//   - Time O(n^3), Space O(n^2).
func QR(m matrix.Matrix, opts ...Option) (q, r *matrix.Dense, err error) {
	o := gatherOptions(opts...)
	if err = matrix.ValidateSquareNonNil(m); err != nil {
		return nil, nil, eigenErrorf(opQR, err)
	}
	a, err := matrix.ToDense(m)
	if err != nil {
		return nil, nil, eigenErrorf(opQR, err)
	}
	if o.gramSchmidt {
		return qrGramSchmidt(a, o.tol)
	}

	return qrHouseholder(a, o.tol)
}

// qrHouseholder runs the reflector elimination in place on a (the working
// copy owned by QR) and accumulates Q alongside.
func qrHouseholder(a *matrix.Dense, tol float64) (*matrix.Dense, *matrix.Dense, error) {
	n := a.Rows()
	q, err := matrix.NewIdentity(n)
	if err != nil {
		return nil, nil, eigenErrorf(opQR, err)
	}
	rRows := rowsOf(a)
	qRows := rowsOf(q)

	v := make([]float64, n) // reflector storage, reused across columns
	for k := 0; k < n-1; k++ {
		// Column norm below the diagonal-inclusive window.
		var normSq float64
		for i := k; i < n; i++ {
			normSq += rRows[i][k] * rRows[i][k]
		}
		norm := math.Sqrt(normSq)
		if norm <= tol {
			continue // column already (numerically) zero: nothing to reflect
		}

		// v = x - alpha·e1, alpha chosen opposite in sign to x[0] for stability.
		alpha := -norm
		if rRows[k][k] < 0 {
			alpha = norm
		}
		for i := k; i < n; i++ {
			v[i] = rRows[i][k]
		}
		v[k] -= alpha
		var vNormSq float64
		for i := k; i < n; i++ {
			vNormSq += v[i] * v[i]
		}
		if vNormSq <= tol*tol {
			continue // x is already alpha·e1: reflector degenerates to identity
		}
		scale := 2.0 / vNormSq

		// R ← H·R: update columns k..n-1 (earlier columns are already zero below k).
		for j := k; j < n; j++ {
			var s float64
			for i := k; i < n; i++ {
				s += v[i] * rRows[i][j]
			}
			s *= scale
			for i := k; i < n; i++ {
				rRows[i][j] -= s * v[i]
			}
		}
		// Q ← Q·H: keeps the invariant Q·R = A after every step.
		for i := 0; i < n; i++ {
			var s float64
			for t := k; t < n; t++ {
				s += qRows[i][t] * v[t]
			}
			s *= scale
			for t := k; t < n; t++ {
				qRows[i][t] -= s * v[t]
			}
		}
	}

	// The reflectors annihilate the sub-diagonal analytically; store the
	// residual rounding noise as exact zeros.
	for i := 1; i < n; i++ {
		for j := 0; j < i; j++ {
			rRows[i][j] = 0
		}
	}

	return q, a, nil
}

// qrGramSchmidt orthogonalizes the columns of a (modified Gram–Schmidt).
func qrGramSchmidt(a *matrix.Dense, tol float64) (*matrix.Dense, *matrix.Dense, error) {
	n := a.Rows()
	q, err := matrix.NewZeros(n, n)
	if err != nil {
		return nil, nil, eigenErrorf(opQR, err)
	}
	r, err := matrix.NewZeros(n, n)
	if err != nil {
		return nil, nil, eigenErrorf(opQR, err)
	}
	aRows := rowsOf(a)
	qRows := rowsOf(q)
	rRows := rowsOf(r)

	w := make([]float64, n) // working column, reused
	for j := 0; j < n; j++ {
		for i := 0; i < n; i++ {
			w[i] = aRows[i][j]
		}
		// Subtract projections onto the already-built orthonormal columns,
		// using the running residual (modified, not classical, Gram–Schmidt).
		for i := 0; i < j; i++ {
			var proj float64
			for t := 0; t < n; t++ {
				proj += qRows[t][i] * w[t]
			}
			rRows[i][j] = proj
			for t := 0; t < n; t++ {
				w[t] -= proj * qRows[t][i]
			}
		}
		var normSq float64
		for t := 0; t < n; t++ {
			normSq += w[t] * w[t]
		}
		norm := math.Sqrt(normSq)
		if norm <= tol {
			// Linearly dependent column: R[j][j]=0 and Q keeps a zero column.
			rRows[j][j] = 0
			continue
		}
		rRows[j][j] = norm
		inv := 1.0 / norm
		for t := 0; t < n; t++ {
			qRows[t][j] = w[t] * inv
		}
	}

	return q, r, nil
}
