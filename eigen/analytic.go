// SPDX-License-Identifier: MIT
// Package eigen: closed-form 2×2 eigenvalue solver.

package eigen

import (
	"math"

	"github.com/katalvlaran/numkit/matrix"
)

// Analytic2x2 solves the characteristic quadratic of a 2×2 matrix exactly:
//
//	λ² − tr(A)·λ + det(A) = 0
//
// Behavior highlights:
//   - Roots are returned in ascending order (λ1 <= λ2).
//   - A negative discriminant means a complex-conjugate pair, which real
//     scalars cannot represent: ErrComplexPair. A tiny negative discriminant
//     within the tolerance is treated as a repeated real root instead of
//     failing on rounding noise.
//
// Inputs:
//   - m: exactly 2×2 (any Matrix implementation).
//   - opts: WithTolerance for the discriminant snap.
//
// Returns:
//   - λ1, λ2: the two real eigenvalues, λ1 <= λ2.
//
// Errors:
//   - matrix.ErrNilMatrix, ErrNot2x2, ErrComplexPair.
//
// Complexity:
//   - Time O(1), Space O(1).
func Analytic2x2(m matrix.Matrix, opts ...Option) (float64, float64, error) {
	o := gatherOptions(opts...)
	if err := matrix.ValidateNotNil(m); err != nil {
		return 0, 0, eigenErrorf(opAnalytic2x2, err)
	}
	if m.Rows() != 2 || m.Cols() != 2 {
		return 0, 0, eigenErrorf(opAnalytic2x2, ErrNot2x2)
	}

	// Read the four entries through the interface (shape already verified).
	a, _ := m.At(0, 0)
	b, _ := m.At(0, 1)
	c, _ := m.At(1, 0)
	d, _ := m.At(1, 1)

	tr := a + d
	det := a*d - b*c
	disc := tr*tr - 4*det
	if disc < 0 {
		if -disc <= o.tol {
			disc = 0 // repeated root obscured by rounding
		} else {
			return 0, 0, eigenErrorf(opAnalytic2x2, ErrComplexPair)
		}
	}

	root := math.Sqrt(disc)
	l1 := (tr - root) / 2
	l2 := (tr + root) / 2

	return l1, l2, nil
}
