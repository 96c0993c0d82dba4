// SPDX-License-Identifier: MIT

// Package reduce: functional configuration for the elimination engine.
// Tolerance is an explicit per-call parameter (threaded through every
// operation), never ambient global state.
package reduce

import "math"

// DefaultEpsilon is the pivot/zero tolerance used when the caller supplies no
// override. A column whose best pivot candidate has magnitude <= eps is
// treated as having no pivot.
const DefaultEpsilon = 1e-9

// panicEpsilonInvalid keeps the constructor's panic message stable.
const panicEpsilonInvalid = "reduce: WithEpsilon: eps must be finite, non-negative"

// Option mutates internal options. Safe to apply repeatedly (idempotent).
// Constructors MUST panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept ...Option and resolve
// them via gatherOptions.
type Options struct {
	eps float64 // >= 0; DefaultEpsilon
}

// WithEpsilon sets the pivot/zero tolerance for every elimination pass.
// Panics with a stable message when eps is non-finite or negative.
// Complexity: O(1).
func WithEpsilon(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) { o.eps = eps }
}

// gatherOptions applies user-provided setters on top of the documented
// defaults (last-writer-wins).
// Complexity: O(k) for k=len(user).
func gatherOptions(user ...Option) Options {
	o := Options{eps: DefaultEpsilon}
	for _, set := range user {
		set(&o)
	}

	return o
}
