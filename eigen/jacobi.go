// SPDX-License-Identifier: MIT
// Package eigen: Jacobi rotations — the symmetric-matrix specialist.

package eigen

import (
	"math"

	"github.com/katalvlaran/numkit/matrix"
)

// EigenSymmetric computes the full eigendecomposition of a symmetric matrix
// by cyclic Jacobi rotations: each step zeroes the largest off-diagonal entry
// with a plane rotation, and the rotations accumulate into the eigenvector
// basis.
//
// Implementation:
//   - Stage 1: Validate shape and symmetry (|a_ij − a_ji| <= tol everywhere).
//   - Stage 2: Per iteration locate the dominant off-diagonal |a_pq|, build
//     the annihilating rotation (c, s) from θ = (a_qq − a_pp) / (2·a_pq),
//     apply it symmetrically to A and accumulate it into V.
//   - Stage 3: Converged when the dominant off-diagonal entry is <= tol.
//
// Behavior highlights:
//   - Unlike the general QR algorithm, the columns of Vectors are always
//     genuine orthonormal eigenvectors on convergence: A·v_i ≈ λ_i·v_i.
//   - The iteration cap returns the best estimate with Converged = false.
//
// Inputs:
//   - m: square symmetric matrix.
//   - opts: WithTolerance, WithMaxIterations.
//
// Returns:
//   - Decomposition: Values (diagonal after rotation), Vectors, Iterations,
//     Converged.
//
// Errors:
//   - matrix.ErrNilMatrix, matrix.ErrNonSquare, ErrNotSymmetric.
//
// Determinism:
//   - Dominant-entry selection scans the upper triangle in fixed row-major
//     order; strict > comparison keeps the earliest maximum.
//
// Complexity:
//   - Time O(iters · n^2), Space O(n^2).
func EigenSymmetric(m matrix.Matrix, opts ...Option) (Decomposition, error) {
	o := gatherOptions(opts...)
	if err := matrix.ValidateSquareNonNil(m); err != nil {
		return Decomposition{}, eigenErrorf(opEigenSymmetric, err)
	}
	a, err := matrix.ToDense(m)
	if err != nil {
		return Decomposition{}, eigenErrorf(opEigenSymmetric, err)
	}
	n := a.Rows()
	aRows := rowsOf(a)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if math.Abs(aRows[i][j]-aRows[j][i]) > o.tol {
				return Decomposition{}, eigenErrorf(opEigenSymmetric, ErrNotSymmetric)
			}
		}
	}

	v, err := matrix.NewIdentity(n)
	if err != nil {
		return Decomposition{}, eigenErrorf(opEigenSymmetric, err)
	}
	vRows := rowsOf(v)

	var (
		iters int
		conv  bool
	)
	for iters = 0; iters < o.maxIter; iters++ {
		// Locate the dominant off-diagonal entry in the upper triangle.
		p, q := 0, 1
		var off float64
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if abs := math.Abs(aRows[i][j]); abs > off {
					off, p, q = abs, i, j
				}
			}
		}
		if off <= o.tol {
			conv = true
			break // off-diagonal mass exhausted: A is diagonal
		}

		// Rotation angle annihilating a_pq (Rutishauser's stable form).
		theta := (aRows[q][q] - aRows[p][p]) / (2 * aRows[p][q])
		t := 1 / (math.Abs(theta) + math.Sqrt(theta*theta+1))
		if theta < 0 {
			t = -t
		}
		c := 1 / math.Sqrt(t*t+1)
		s := t * c

		// A ← Jᵀ·A·J applied to rows/columns p and q only.
		app, aqq, apq := aRows[p][p], aRows[q][q], aRows[p][q]
		aRows[p][p] = c*c*app - 2*s*c*apq + s*s*aqq
		aRows[q][q] = s*s*app + 2*s*c*apq + c*c*aqq
		aRows[p][q] = 0
		aRows[q][p] = 0
		for k := 0; k < n; k++ {
			if k == p || k == q {
				continue
			}
			akp, akq := aRows[k][p], aRows[k][q]
			aRows[k][p] = c*akp - s*akq
			aRows[p][k] = aRows[k][p]
			aRows[k][q] = s*akp + c*akq
			aRows[q][k] = aRows[k][q]
		}
		// V ← V·J accumulates the eigenvector basis.
		for k := 0; k < n; k++ {
			vkp, vkq := vRows[k][p], vRows[k][q]
			vRows[k][p] = c*vkp - s*vkq
			vRows[k][q] = s*vkp + c*vkq
		}
	}

	values := make([]float64, n)
	for i := 0; i < n; i++ {
		values[i] = aRows[i][i]
	}

	return Decomposition{Values: values, Vectors: v, Iterations: iters, Converged: conv}, nil
}
