// SPDX-License-Identifier: MIT

// Package eigen: result types shared by the solver strategies. Errors and
// options live in dedicated files (errors.go, options.go) per the global
// conventions.
package eigen

import "github.com/katalvlaran/numkit/matrix"

// Decomposition is the result of a full-spectrum solver (Eigen,
// EigenSymmetric): eigenvalues paired column-wise with their basis.
//
// Values[i] corresponds to column i of Vectors. For symmetric input the
// columns are eigenvectors; for non-symmetric input the QR algorithm returns
// the accumulated orthogonal similarity basis (Schur basis), which coincides
// with eigenvectors only when the converged matrix is truly diagonal.
//
// Converged=false means the iteration cap was hit before the convergence
// criterion: Values/Vectors still hold the best estimate, and callers who
// need guarantees must check the residual ‖A·v − λ·v‖ themselves.
type Decomposition struct {
	Values     []float64     // diagonal of the converged matrix, index-aligned with Vectors columns
	Vectors    *matrix.Dense // accumulated orthogonal basis, eigenvectors as columns
	Iterations int           // iterations actually spent
	Converged  bool          // true iff the tolerance criterion was met before the cap
}

// PowerResult is the outcome of power iteration: the dominant eigenpair
// estimate plus convergence bookkeeping (same policy as Decomposition).
type PowerResult struct {
	Value      float64        // dominant eigenvalue estimate (Rayleigh quotient)
	Vector     *matrix.Vector // unit-norm eigenvector estimate
	Iterations int            // iterations actually spent
	Converged  bool           // true iff successive estimates settled within tolerance
}
