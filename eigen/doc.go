// Package eigen implements the decomposition and eigen-solving engine of
// numkit: a QR decomposition primitive and four cooperating solver
// strategies selected by matrix shape and need, not by a single unified path.
//
// The eigen package provides:
//
//   - QR: A = Q·R via Householder reflections (default, numerically
//     preferred) or modified Gram–Schmidt (WithGramSchmidt). Rank-deficient
//     columns yield zero columns in Q — never NaN.
//   - Analytic2x2: the closed-form solution of the characteristic quadratic
//     λ² − tr·λ + det = 0, valid only for 2×2 input.
//   - Power: power iteration for the dominant eigenpair with a
//     Rayleigh-quotient convergence test.
//   - Eigen: the QR algorithm (A_k = Q_k·R_k, A_{k+1} = R_k·Q_k) for the
//     full spectrum of a general square matrix, accumulating the Q product
//     as the eigenvector basis.
//   - EigenSymmetric: Jacobi rotation sweeps for symmetric input.
//
// Non-convergence is data, not failure: iterative solvers return their best
// estimate with Converged=false after the iteration cap, and callers who
// need guaranteed accuracy must check the residual themselves. Known
// limitation, by the same policy: power iteration does not converge when the
// dominant eigenvalue is a complex-conjugate pair or is not unique in
// magnitude.
package eigen
