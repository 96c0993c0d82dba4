// SPDX-License-Identifier: MIT
// Package eigen: the QR algorithm — full-spectrum solver for general square
// matrices.

package eigen

import (
	"math"

	"github.com/katalvlaran/numkit/matrix"
)

// Eigen estimates the full spectrum of a square matrix with the unshifted QR
// algorithm:
//
//	A_0 = A;  A_k = Q_k·R_k;  A_{k+1} = R_k·Q_k
//
// Every step is an orthogonal similarity transform, so the A_k share A's
// eigenvalues; for matrices with a real spectrum the iteration drives the
// sub-diagonal toward zero and the eigenvalues appear on the diagonal.
//
// Implementation:
//   - Stage 1: Validate shape; densify; V ← I.
//   - Stage 2: Per iteration factor A_k (Householder by default, Gram–Schmidt
//     via WithGramSchmidt), recombine A_{k+1} = R·Q and accumulate V ← V·Q.
//   - Stage 3: Converged when every sub-diagonal entry satisfies |a_ij| <= tol.
//
// Behavior highlights:
//   - Vectors holds the accumulated orthogonal basis V with A ≈ V·T·Vᵀ for
//     the converged T. When T is diagonal (symmetric input, or any input
//     with distinct real eigenvalues) the columns of V are eigenvectors;
//     for a defective or complex spectrum they are only a Schur-style basis.
//   - A complex-conjugate pair keeps a 2×2 bump alive on the sub-diagonal:
//     the cap is then hit and Converged = false, with the best estimate
//     still returned.
//
// Inputs:
//   - m: square matrix.
//   - opts: WithTolerance, WithMaxIterations, WithGramSchmidt.
//
// Returns:
//   - Decomposition: Values (diagonal of T), Vectors (V), Iterations,
//     Converged.
//
// Errors:
//   - matrix.ErrNilMatrix, matrix.ErrNonSquare.
//
// Determinism:
//   - Fixed factorization and recombination order; no shifts, no randomness.
//
// Complexity:
//   - Time O(iters · n^3), Space O(n^2).
func Eigen(m matrix.Matrix, opts ...Option) (Decomposition, error) {
	o := gatherOptions(opts...)
	if err := matrix.ValidateSquareNonNil(m); err != nil {
		return Decomposition{}, eigenErrorf(opEigen, err)
	}
	a, err := matrix.ToDense(m)
	if err != nil {
		return Decomposition{}, eigenErrorf(opEigen, err)
	}
	n := a.Rows()
	v, err := matrix.NewIdentity(n)
	if err != nil {
		return Decomposition{}, eigenErrorf(opEigen, err)
	}

	var (
		iters int
		conv  bool
	)
	if subDiagonalMax(a) <= o.tol {
		conv = true // already (upper) triangular, e.g. n == 1
	}
	for !conv && iters < o.maxIter {
		iters++
		var q, r *matrix.Dense
		if o.gramSchmidt {
			q, r, err = qrGramSchmidt(a, o.tol)
		} else {
			// qrHouseholder reduces its argument to R in place, which is fine:
			// a is recomputed from R·Q immediately below.
			q, r, err = qrHouseholder(a, o.tol)
		}
		if err != nil {
			return Decomposition{}, err // already op-tagged by the QR kernel
		}
		a, err = matrix.Mul(r, q)
		if err != nil {
			return Decomposition{}, eigenErrorf(opEigen, err)
		}
		v, err = matrix.Mul(v, q)
		if err != nil {
			return Decomposition{}, eigenErrorf(opEigen, err)
		}
		if subDiagonalMax(a) <= o.tol {
			conv = true
		}
	}

	// Eigenvalue estimates live on the diagonal of the (near-)triangular A.
	values := make([]float64, n)
	aRows := rowsOf(a)
	for i := 0; i < n; i++ {
		values[i] = aRows[i][i]
	}

	return Decomposition{Values: values, Vectors: v, Iterations: iters, Converged: conv}, nil
}

// subDiagonalMax returns the largest |entry| strictly below the diagonal.
func subDiagonalMax(d *matrix.Dense) float64 {
	rows := rowsOf(d)
	var maxAbs float64
	for i := 1; i < d.Rows(); i++ {
		for j := 0; j < i; j++ {
			if abs := math.Abs(rows[i][j]); abs > maxAbs {
				maxAbs = abs
			}
		}
	}

	return maxAbs
}
