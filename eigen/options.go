// SPDX-License-Identifier: MIT

// Package eigen: functional configuration for the iterative solvers.
// Convergence tolerance and iteration caps are explicit per-call parameters
// (threaded through every operation), never ambient global state.
package eigen

import "math"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultTolerance is the convergence/zero threshold used when the caller
	// supplies no override. Appropriate for float64 data of modest size.
	DefaultTolerance = 1e-9

	// DefaultMaxIterations caps every iterative solver (power iteration, QR
	// algorithm, Jacobi sweeps) so termination is guaranteed even without
	// numerical convergence.
	DefaultMaxIterations = 500
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicToleranceInvalid  = "eigen: WithTolerance: tol must be finite, non-negative"
	panicIterationsInvalid = "eigen: WithMaxIterations: cap must be > 0"
)

// Option mutates internal options. Safe to apply repeatedly (idempotent).
// Constructors MUST panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept ...Option and resolve
// them via gatherOptions.
type Options struct {
	tol         float64   // >= 0; DefaultTolerance
	maxIter     int       // > 0; DefaultMaxIterations
	gramSchmidt bool      // QR flavor: false ⇒ Householder (default)
	start       []float64 // optional power-iteration start vector (nil ⇒ all ones)
}

// WithTolerance sets the convergence/zero threshold for every tolerance-based
// test (convergence deltas, sub-diagonal decay, zero-column detection).
// Panics with a stable message when tol is non-finite or negative.
// Complexity: O(1).
func WithTolerance(tol float64) Option {
	if math.IsNaN(tol) || math.IsInf(tol, 0) || tol < 0 {
		panic(panicToleranceInvalid)
	}

	return func(o *Options) { o.tol = tol }
}

// WithMaxIterations caps the iterative solvers. The cap is the only
// termination override: when it is hit, results carry Converged=false.
// Panics when cap <= 0.
// Complexity: O(1).
func WithMaxIterations(cap int) Option {
	if cap <= 0 {
		panic(panicIterationsInvalid)
	}

	return func(o *Options) { o.maxIter = cap }
}

// WithGramSchmidt selects the modified Gram–Schmidt QR flavor. Cheaper per
// column but less robust on ill-conditioned input than Householder.
// Complexity: O(1).
func WithGramSchmidt() Option {
	return func(o *Options) { o.gramSchmidt = true }
}

// WithHouseholder selects Householder reflections for QR (the default;
// numerically preferred).
// Complexity: O(1).
func WithHouseholder() Option {
	return func(o *Options) { o.gramSchmidt = false }
}

// WithStartVector supplies the initial vector for power iteration. The
// vector is used as-is (normalized internally) and must be nonzero and match
// the matrix dimension; violations surface as ErrZeroVector or
// matrix.ErrDimensionMismatch at call time, not here.
// Complexity: O(1).
func WithStartVector(v []float64) Option {
	return func(o *Options) { o.start = v }
}

// gatherOptions applies user-provided setters on top of the documented
// defaults (last-writer-wins).
// Complexity: O(k) for k=len(user).
func gatherOptions(user ...Option) Options {
	o := Options{
		tol:     DefaultTolerance,
		maxIter: DefaultMaxIterations,
	}
	for _, set := range user {
		set(&o)
	}

	return o
}
