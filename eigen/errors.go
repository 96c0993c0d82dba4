// SPDX-License-Identifier: MIT
// Package eigen: sentinel error set. Shape and nil violations reuse the
// matrix package sentinels; this file adds only the conditions the eigen
// strategies themselves own. Non-convergence is deliberately NOT an error —
// it is reported through the Converged flag on results.

package eigen

import "errors"

var (
	// ErrNot2x2 is returned by Analytic2x2 for any input that is not exactly
	// 2×2; the closed-form quadratic is meaningless elsewhere.
	ErrNot2x2 = errors.New("eigen: analytic solver requires a 2x2 matrix")

	// ErrComplexPair signals that the characteristic quadratic has a negative
	// discriminant: the eigenvalues form a complex-conjugate pair that real
	// scalar storage cannot carry.
	ErrComplexPair = errors.New("eigen: complex-conjugate eigenvalue pair")

	// ErrZeroVector is returned when a supplied start vector is (numerically)
	// zero; power iteration cannot start from the origin.
	ErrZeroVector = errors.New("eigen: start vector is zero")

	// ErrNotSymmetric is returned by EigenSymmetric when the input violates
	// symmetry beyond the configured tolerance.
	ErrNotSymmetric = errors.New("eigen: matrix is not symmetric within tolerance")
)
