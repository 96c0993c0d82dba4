// SPDX-License-Identifier: MIT
// Package eigen: power iteration for the dominant eigenpair.

package eigen

import (
	"math"

	"github.com/katalvlaran/numkit/matrix"
)

// Power estimates the dominant eigenpair of a square matrix by repeated
// application of A to a normalized vector.
//
// Implementation:
//   - Stage 1: Validate shape; resolve the start vector (WithStartVector or
//     the all-ones default) and normalize it.
//   - Stage 2: Iterate w = A·v, λ = vᵀw (Rayleigh quotient), v = w/‖w‖.
//     Converged when the residual ‖A·v − λ·v‖ <= tol. The residual test is
//     deliberate: a plain |λ_k − λ_{k-1}| delta settles on matrices whose
//     Rayleigh quotient is stationary without the vector converging at all
//     (rotations are the canonical case).
//   - Stage 3: A start vector in the null space makes w vanish: then λ = 0
//     exactly and the residual test reports immediate convergence.
//
// Behavior highlights:
//   - Hitting the iteration cap is not an error: the result carries the best
//     estimate with Converged = false. This is the expected outcome when the
//     dominant eigenvalue is a complex-conjugate pair or shares its magnitude
//     with another eigenvalue.
//
// Inputs:
//   - m: square matrix.
//   - opts: WithTolerance, WithMaxIterations, WithStartVector.
//
// Returns:
//   - PowerResult: Value, unit-norm Vector, Iterations, Converged.
//
// Errors:
//   - matrix.ErrNilMatrix, matrix.ErrNonSquare,
//     matrix.ErrDimensionMismatch (start vector length),
//     ErrZeroVector (start vector numerically zero).
//
// Determinism:
//   - Deterministic start (all ones unless overridden); fixed accumulation
//     order in every product.
//
// Complexity:
//   - Time O(iters · n^2) for dense input, Space O(n).
func Power(m matrix.Matrix, opts ...Option) (PowerResult, error) {
	o := gatherOptions(opts...)
	if err := matrix.ValidateSquareNonNil(m); err != nil {
		return PowerResult{}, eigenErrorf(opPower, err)
	}
	n := m.Rows()

	// Resolve and sanitize the start vector.
	v := make([]float64, n)
	if o.start != nil {
		if err := matrix.ValidateVecLen(o.start, n); err != nil {
			return PowerResult{}, eigenErrorf(opPower, err)
		}
		copy(v, o.start)
	} else {
		for i := range v {
			v[i] = 1 // deterministic default with no zero components
		}
	}
	if !normalizeSlice(v, o.tol) {
		return PowerResult{}, eigenErrorf(opPower, ErrZeroVector)
	}

	var (
		lambda float64
		iters  int
		conv   bool
	)
	for iters = 1; iters <= o.maxIter; iters++ {
		w, err := matrix.MatVec(m, v)
		if err != nil {
			return PowerResult{}, eigenErrorf(opPower, err)
		}
		// Rayleigh quotient with the unit-norm v: λ = vᵀ·A·v.
		lambda = 0
		for i := 0; i < n; i++ {
			lambda += v[i] * w[i]
		}
		// Residual ‖A·v − λ·v‖: zero exactly when (λ, v) is an eigenpair.
		// Covers the null-space edge too: w ≈ 0 forces λ ≈ 0 and a tiny
		// residual, so the loop stops with the exact eigenvalue 0.
		var resSq float64
		for i := 0; i < n; i++ {
			d := w[i] - lambda*v[i]
			resSq += d * d
		}
		if math.Sqrt(resSq) <= o.tol {
			conv = true
			break
		}
		if !normalizeSlice(w, o.tol) {
			break // w vanished without an eigenpair: keep the last estimate
		}
		copy(v, w)
	}
	if iters > o.maxIter {
		iters = o.maxIter // cap exhausted without convergence
	}

	vec, err := matrix.VectorFromSlice(v)
	if err != nil {
		return PowerResult{}, eigenErrorf(opPower, err)
	}

	return PowerResult{Value: lambda, Vector: vec, Iterations: iters, Converged: conv}, nil
}

// normalizeSlice scales x to unit Euclidean norm in place. Returns false
// (leaving x untouched) when ‖x‖ <= tol.
func normalizeSlice(x []float64, tol float64) bool {
	var sum float64
	for _, e := range x {
		sum += e * e
	}
	norm := math.Sqrt(sum)
	if norm <= tol {
		return false
	}
	inv := 1.0 / norm
	for i := range x {
		x[i] *= inv
	}

	return true
}
