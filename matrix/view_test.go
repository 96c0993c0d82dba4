// Package matrix_test: unit tests for the zero-copy View descriptors,
// Vector aliasing and the lazy Transpose adapter.
package matrix_test

import (
	"testing"

	"github.com/katalvlaran/numkit/matrix"
	"github.com/stretchr/testify/require"
)

// TestRowColViews verifies element order and write-through of row/column views.
func TestRowColViews(t *testing.T) {
	m := mustFromRows(t, [][]float64{
		{1, 2, 3},
		{4, 5, 6},
	})

	row, err := matrix.Row(m, 1) // view over the second row
	require.NoError(t, err)
	require.Equal(t, matrix.RowView, row.Kind()) // descriptor remembers its kind
	require.Equal(t, 3, row.Len())               // row length equals Cols
	v, err := row.At(2)                          // last element of the row
	require.NoError(t, err)
	require.Equal(t, 6.0, v)

	col, err := matrix.Col(m, 0) // view over the first column
	require.NoError(t, err)
	require.Equal(t, 2, col.Len())  // column length equals Rows
	require.NoError(t, col.Set(0, 10)) // write through the view
	v, err = m.At(0, 0)             // observe through the owner
	require.NoError(t, err)
	require.Equal(t, 10.0, v) // views never copy

	_, err = matrix.Row(m, 2)                     // row index past the end
	require.ErrorIs(t, err, matrix.ErrOutOfRange) // rejected at construction
}

// TestDiagonalViews checks main, sub and super diagonal extraction on a
// non-square matrix (lengths clamp to the shorter dimension).
func TestDiagonalViews(t *testing.T) {
	m := mustFromRows(t, [][]float64{
		{1, 2, 3},
		{4, 5, 6},
		{7, 8, 9},
		{10, 11, 12},
	})

	d, err := matrix.Diag(m) // main diagonal of a 4x3 matrix
	require.NoError(t, err)
	require.Equal(t, 3, d.Len()) // min(rows, cols) elements
	for k, want := range []float64{1, 5, 9} {
		v, err := d.At(k) // walk the diagonal in order
		require.NoError(t, err)
		require.Equal(t, want, v)
	}

	sub, err := matrix.SubDiag(m) // first diagonal below the main
	require.NoError(t, err)
	v, err := sub.At(0) // starts at m(1,0)
	require.NoError(t, err)
	require.Equal(t, 4.0, v)

	sup, err := matrix.SuperDiag(m) // first diagonal above the main
	require.NoError(t, err)
	v, err = sup.At(1) // second element sits at m(1,2)
	require.NoError(t, err)
	require.Equal(t, 6.0, v)
}

// TestSubRowWindow verifies the bounded row window and its validation.
func TestSubRowWindow(t *testing.T) {
	m := mustFromRows(t, [][]float64{{1, 2, 3, 4}})

	w, err := matrix.SubRow(m, 0, 1, 2) // elements m(0,1) and m(0,2)
	require.NoError(t, err)
	require.Equal(t, 2, w.Len())
	v, err := w.At(1)
	require.NoError(t, err)
	require.Equal(t, 3.0, v)

	_, err = matrix.SubRow(m, 0, 3, 2)            // window escapes the row
	require.ErrorIs(t, err, matrix.ErrOutOfRange) // rejected at construction
}

// TestViewAsVector ensures AsVector shares storage with the owner.
func TestViewAsVector(t *testing.T) {
	m := mustFromRows(t, [][]float64{
		{1, 2},
		{3, 4},
	})

	col, err := matrix.Col(m, 1) // second column as a view
	require.NoError(t, err)
	vec := col.AsVector() // promote to the Vector API, still zero-copy

	require.Equal(t, 2, vec.Len())     // same logical length
	require.NoError(t, vec.Set(1, 40)) // write through the vector
	v, err := m.At(1, 1)               // observe through the matrix
	require.NoError(t, err)
	require.Equal(t, 40.0, v) // shared storage end to end
}

// TestVectorBasics covers construction, SubVector aliasing and Dot/Norm.
func TestVectorBasics(t *testing.T) {
	vec, err := matrix.VectorFromSlice([]float64{3, 4}) // adopt a slice, no copy
	require.NoError(t, err)
	require.Equal(t, 5.0, vec.Norm()) // 3-4-5 triangle

	other, err := matrix.VectorFromSlice([]float64{1, 2})
	require.NoError(t, err)
	dot, err := matrix.Dot(vec, other) // 3*1 + 4*2
	require.NoError(t, err)
	require.Equal(t, 11.0, dot)

	sub, err := vec.SubVector(1, 1) // window over the last element
	require.NoError(t, err)
	require.NoError(t, sub.Set(0, 0)) // write through the window
	v, err := vec.At(1)               // observe through the parent
	require.NoError(t, err)
	require.Equal(t, 0.0, v) // SubVector aliases the parent buffer
}

// TestVectorNormalizeZero ensures a zero vector survives Normalize unchanged.
func TestVectorNormalizeZero(t *testing.T) {
	vec, err := matrix.NewVector(3) // all zeros
	require.NoError(t, err)

	require.False(t, vec.Normalize()) // nothing to scale, flag says so
	v, err := vec.At(0)               // still exactly zero, never NaN
	require.NoError(t, err)
	require.Equal(t, 0.0, v)
}

// TestTransposeLazy verifies the O(1) transpose adapter semantics.
func TestTransposeLazy(t *testing.T) {
	m := mustFromRows(t, [][]float64{
		{1, 2, 3},
		{4, 5, 6},
	})

	tr := matrix.T(m)             // lazy index-swapping adapter
	require.Equal(t, 3, tr.Rows()) // shape is swapped
	require.Equal(t, 2, tr.Cols())
	v, err := tr.At(2, 1) // reads m(1,2) under the hood
	require.NoError(t, err)
	require.Equal(t, 6.0, v)

	require.NoError(t, tr.Set(0, 1, 40)) // writes through to m(1,0)
	v, err = m.At(1, 0)
	require.NoError(t, err)
	require.Equal(t, 40.0, v)

	require.Same(t, m, tr.Transpose()) // double transpose is the identity, by reference

	mat, err := tr.Materialize() // physical compact copy
	require.NoError(t, err)
	v, err = mat.At(2, 0) // materialized m(0,2)
	require.NoError(t, err)
	require.Equal(t, 3.0, v)
	require.NoError(t, m.Set(0, 2, -9)) // mutate the base afterwards
	v, err = mat.At(2, 0)               // the materialized copy is detached
	require.NoError(t, err)
	require.Equal(t, 3.0, v)
}
