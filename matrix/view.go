// SPDX-License-Identifier: MIT

// Package matrix: parametrized zero-copy views over a Dense buffer.
//
// A View is a tagged (offset, step, length) descriptor into the owner's flat
// storage: rows step by 1, columns by stride, diagonals by stride+1. Views
// carry no independent storage — every Set writes through to the owner — and
// must never outlive it. All index/range validation happens at construction
// time, so At/Set only need a 1-D bounds check.
package matrix

import "fmt"

// ViewKind tags the traversal a View performs over its owner.
type ViewKind uint8

const (
	// RowView traverses one logical row, left to right.
	RowView ViewKind = iota
	// ColView traverses one logical column, top to bottom.
	ColView
	// DiagView traverses the main diagonal; length min(rows, cols).
	DiagView
	// SubDiagView traverses the first sub-diagonal (elements (i+1, i));
	// length min(rows, cols) - 1.
	SubDiagView
	// SuperDiagView traverses the first super-diagonal (elements (i, i+1));
	// length min(rows, cols) - 1.
	SuperDiagView
	// SubRowView traverses a bounded range [start, start+len) of one row.
	SubRowView
	// SubColView traverses a bounded range [start, start+len) of one column.
	SubColView
)

// viewName maps kinds to stable names for error context (no magic strings).
var viewName = map[ViewKind]string{
	RowView:       "Row",
	ColView:       "Col",
	DiagView:      "Diag",
	SubDiagView:   "SubDiag",
	SuperDiagView: "SuperDiag",
	SubRowView:    "SubRow",
	SubColView:    "SubCol",
}

// viewErrorf wraps an underlying error with view construction/access context.
func viewErrorf(kind ViewKind, idx int, err error) error {
	return fmt.Errorf("View.%s(%d): %w", viewName[kind], idx, err)
}

// View is a bounds-checked accessor over a slice of the owner's buffer.
// It holds a non-owning reference: the owner's lifetime must cover the
// view's. Mutation through the view is mutation of the owner.
type View struct {
	owner  *Dense   // back-reference; nil only for the zero value
	kind   ViewKind // traversal tag
	index  int      // row/column index the view was derived from (0 for diagonals)
	offset int      // flat index of element 0
	step   int      // flat distance between consecutive elements
	length int      // number of addressable elements
}

// newView is the single internal constructor; public helpers validate
// against owner dimensions and then delegate here.
func newView(owner *Dense, kind ViewKind, index, offset, step, length int) *View {
	return &View{owner: owner, kind: kind, index: index, offset: offset, step: step, length: length}
}

// Row returns a view of row i.
// Errors: ErrNilMatrix, ErrOutOfRange.
// Complexity: O(1).
func Row(m *Dense, i int) (*View, error) {
	if m == nil {
		return nil, viewErrorf(RowView, i, ErrNilMatrix)
	}
	if i < 0 || i >= m.rows {
		return nil, viewErrorf(RowView, i, ErrOutOfRange)
	}

	return newView(m, RowView, i, i*m.stride, 1, m.cols), nil
}

// Col returns a view of column j.
// Errors: ErrNilMatrix, ErrOutOfRange.
// Complexity: O(1).
func Col(m *Dense, j int) (*View, error) {
	if m == nil {
		return nil, viewErrorf(ColView, j, ErrNilMatrix)
	}
	if j < 0 || j >= m.cols {
		return nil, viewErrorf(ColView, j, ErrOutOfRange)
	}

	return newView(m, ColView, j, j, m.stride, m.rows), nil
}

// Diag returns a view of the main diagonal, length min(rows, cols).
// Errors: ErrNilMatrix.
// Complexity: O(1).
func Diag(m *Dense) (*View, error) {
	if m == nil {
		return nil, viewErrorf(DiagView, 0, ErrNilMatrix)
	}

	return newView(m, DiagView, 0, 0, m.stride+1, minInt(m.rows, m.cols)), nil
}

// SubDiag returns a view of the first sub-diagonal (below the main one),
// length min(rows, cols) - 1.
// Errors: ErrNilMatrix, ErrOutOfRange when the matrix is too small to have one.
// Complexity: O(1).
func SubDiag(m *Dense) (*View, error) {
	if m == nil {
		return nil, viewErrorf(SubDiagView, 0, ErrNilMatrix)
	}
	n := minInt(m.rows, m.cols) - 1
	if n < 1 {
		return nil, viewErrorf(SubDiagView, 0, ErrOutOfRange)
	}

	// Element 0 is (1,0): one full row down from the origin.
	return newView(m, SubDiagView, 0, m.stride, m.stride+1, n), nil
}

// SuperDiag returns a view of the first super-diagonal (above the main one),
// length min(rows, cols) - 1.
// Errors: ErrNilMatrix, ErrOutOfRange when the matrix is too small to have one.
// Complexity: O(1).
func SuperDiag(m *Dense) (*View, error) {
	if m == nil {
		return nil, viewErrorf(SuperDiagView, 0, ErrNilMatrix)
	}
	n := minInt(m.rows, m.cols) - 1
	if n < 1 {
		return nil, viewErrorf(SuperDiagView, 0, ErrOutOfRange)
	}

	// Element 0 is (0,1): one column right of the origin.
	return newView(m, SuperDiagView, 0, 1, m.stride+1, n), nil
}

// SubRow returns a view of columns [start, start+length) of row i.
// Errors: ErrNilMatrix, ErrInvalidDimensions (length <= 0), ErrOutOfRange.
// Complexity: O(1).
func SubRow(m *Dense, i, start, length int) (*View, error) {
	if m == nil {
		return nil, viewErrorf(SubRowView, i, ErrNilMatrix)
	}
	if length <= 0 {
		return nil, viewErrorf(SubRowView, i, ErrInvalidDimensions)
	}
	if i < 0 || i >= m.rows || start < 0 || start+length > m.cols {
		return nil, viewErrorf(SubRowView, i, ErrOutOfRange)
	}

	return newView(m, SubRowView, i, i*m.stride+start, 1, length), nil
}

// SubCol returns a view of rows [start, start+length) of column j.
// Errors: ErrNilMatrix, ErrInvalidDimensions (length <= 0), ErrOutOfRange.
// Complexity: O(1).
func SubCol(m *Dense, j, start, length int) (*View, error) {
	if m == nil {
		return nil, viewErrorf(SubColView, j, ErrNilMatrix)
	}
	if length <= 0 {
		return nil, viewErrorf(SubColView, j, ErrInvalidDimensions)
	}
	if j < 0 || j >= m.cols || start < 0 || start+length > m.rows {
		return nil, viewErrorf(SubColView, j, ErrOutOfRange)
	}

	return newView(m, SubColView, j, start*m.stride+j, m.stride, length), nil
}

// Kind returns the traversal tag of the view.
// Complexity: O(1).
func (v *View) Kind() ViewKind { return v.kind }

// Index returns the row/column index the view was derived from
// (always 0 for diagonal kinds).
// Complexity: O(1).
func (v *View) Index() int { return v.index }

// Len returns the number of elements addressable through the view.
// Complexity: O(1).
func (v *View) Len() int { return v.length }

// At reads element k through the view.
// Errors: ErrOutOfRange.
// Complexity: O(1).
func (v *View) At(k int) (float64, error) {
	if k < 0 || k >= v.length {
		return 0, viewErrorf(v.kind, k, ErrOutOfRange)
	}

	return v.owner.data[v.offset+k*v.step], nil
}

// Set writes element k through the view; the owner observes the write.
// Errors: ErrOutOfRange.
// Complexity: O(1).
func (v *View) Set(k int, x float64) error {
	if k < 0 || k >= v.length {
		return viewErrorf(v.kind, k, ErrOutOfRange)
	}
	v.owner.data[v.offset+k*v.step] = x

	return nil
}

// AsVector exposes the same descriptor as a strided Vector sharing the
// owner's buffer (still zero-copy, still write-through).
// Complexity: O(1).
func (v *View) AsVector() *Vector {
	return &Vector{n: v.length, stride: v.step, data: v.owner.data[v.offset:]}
}

// minInt is a tiny helper kept local to avoid pulling in generics for one use.
func minInt(a, b int) int {
	if a < b {
		return a
	}

	return b
}
