// Package reduce implements the row-reduction engine of numkit and the
// classical quantities derived from it.
//
// The reduce package provides:
//
//   - ReduceInPlace / RREF: partial-pivoting Gauss–Jordan elimination to
//     reduced row-echelon form, tracking pivot columns.
//   - Rank: pivot count of the reduced form.
//   - Det: determinant via cofactor expansion (small matrices) or pivoted
//     elimination with sign tracking.
//   - Inverse / IsInvertible: Gauss–Jordan on an identity-augmented working
//     matrix; singular input is reported as the recoverable ErrSingular, not
//     a hard failure.
//   - Solve: A·x = b through the same elimination pass.
//
// Every zero and singularity test is tolerance-based (WithEpsilon), never an
// exact comparison against zero. Pivot selection is deterministic: the
// largest-magnitude candidate wins, ties broken by the lowest row index.
package reduce
