// SPDX-License-Identifier: MIT

// Package matrix: Transpose is the O(1) logical layout transform. It wraps a
// Dense and swaps the row/column interpretation of element addressing; no
// element moves until Materialize is called.
package matrix

// Transpose is a logical re-indexing wrapper around a Dense. It implements
// Matrix with swapped addressing: (i, j) reads the base's (j, i). The wrapper
// holds a non-owning reference to the base; writes through the wrapper are
// writes into the base's buffer.
//
// Invariant: t.Transpose() returns the identical base value (same buffer),
// not a copy — double transposition is free.
type Transpose struct {
	base *Dense // the wrapped matrix; addressing is delegated with swapped indices
}

// T returns the O(1) logical transpose of m. No data is copied; the result
// aliases m's buffer and must not outlive it.
// Complexity: O(1).
func T(m *Dense) *Transpose {
	return &Transpose{base: m}
}

// Transpose undoes the logical swap, returning the identical base matrix
// (reference identity of the underlying buffer, not a new copy).
// Complexity: O(1).
func (t *Transpose) Transpose() *Dense {
	return t.base
}

// Rows returns the transposed row count, i.e. the base's Cols.
// Complexity: O(1).
func (t *Transpose) Rows() int { return t.base.cols }

// Cols returns the transposed column count, i.e. the base's Rows.
// Complexity: O(1).
func (t *Transpose) Cols() int { return t.base.rows }

// At reads element (i, j) of the logical transpose, i.e. base (j, i).
// Errors: ErrOutOfRange (reported against the transposed shape).
// Complexity: O(1).
func (t *Transpose) At(i, j int) (float64, error) {
	// Delegate with swapped indices; base performs the strided bounds check.
	return t.base.At(j, i)
}

// Set writes element (i, j) of the logical transpose; the base observes the
// write at (j, i).
// Errors: ErrOutOfRange.
// Complexity: O(1).
func (t *Transpose) Set(i, j int, v float64) error {
	return t.base.Set(j, i, v)
}

// Clone materializes an independent physically-transposed Dense.
// Declared on Matrix, so a *Transpose can flow through every kernel.
// Complexity: O(r*c).
func (t *Transpose) Clone() Matrix {
	out, _ := t.Materialize() // base is always non-nil for a constructed Transpose

	return out
}

// Materialize produces an owned, physically-transposed Dense: the result has
// rows == base.Cols, cols == base.Rows, a compact stride and a fresh buffer.
// Errors: ErrNilMatrix on a zero-value wrapper.
// Complexity: O(r*c).
func (t *Transpose) Materialize() (*Dense, error) {
	if t == nil || t.base == nil {
		return nil, ErrNilMatrix
	}
	b := t.base
	out := &Dense{rows: b.cols, cols: b.rows, stride: b.rows, data: make([]float64, b.cols*b.rows)}
	var i, j int
	for i = 0; i < b.rows; i++ { // fixed i→j order; source walked row-major
		base := i * b.stride
		for j = 0; j < b.cols; j++ {
			out.data[j*out.stride+i] = b.data[base+j]
		}
	}

	return out, nil
}
