// SPDX-License-Identifier: MIT
// Package reduce: sentinel error set. Shape and nil violations reuse the
// matrix package sentinels (matrix.ErrNonSquare, matrix.ErrNilMatrix, …);
// this file adds only the conditions the elimination engine itself owns.

package reduce

import "errors"

// ErrSingular is returned when a matrix has no inverse (or a linear system
// has no unique solution). Singular matrices are common, valid input, so this
// is the one recoverable condition of the package: callers branch on it via
// errors.Is rather than treating it as a failure.
var ErrSingular = errors.New("reduce: singular matrix")
