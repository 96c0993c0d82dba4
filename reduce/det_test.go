// Package reduce_test: unit tests for the determinant (cofactor fast path
// and elimination fallback).
package reduce_test

import (
	"testing"

	"github.com/katalvlaran/numkit/matrix"
	"github.com/katalvlaran/numkit/reduce"
	"github.com/stretchr/testify/require"
)

// emptyMatrix is a 0x0 stand-in: Dense storage cannot be empty, but the
// Matrix interface can, and det of the empty matrix is 1 by convention.
type emptyMatrix struct{}

func (emptyMatrix) Rows() int                      { return 0 }
func (emptyMatrix) Cols() int                      { return 0 }
func (emptyMatrix) At(int, int) (float64, error)   { return 0, matrix.ErrOutOfRange }
func (emptyMatrix) Set(int, int, float64) error    { return matrix.ErrOutOfRange }
func (m emptyMatrix) Clone() matrix.Matrix         { return m }

// TestDetSmallSizes pins the closed-form 1x1, 2x2 and 3x3 paths.
func TestDetSmallSizes(t *testing.T) {
	one := mustFromRows(t, [][]float64{{-7}})
	d, err := reduce.Det(one)
	require.NoError(t, err)
	require.Equal(t, -7.0, d) // det of 1x1 is the entry itself

	two := mustFromRows(t, [][]float64{
		{4, 3},
		{6, 3},
	})
	d, err = reduce.Det(two)
	require.NoError(t, err)
	require.Equal(t, -6.0, d) // 4*3 - 3*6

	three := mustFromRows(t, [][]float64{
		{1, 2, 3},
		{4, 5, 6},
		{7, 8, 10},
	})
	d, err = reduce.Det(three)
	require.NoError(t, err)
	require.InDelta(t, -3.0, d, 1e-12) // Sarrus expansion
}

// TestDetElimination checks the pivoted-elimination path on a 4x4 and that
// row swaps flip the sign correctly.
func TestDetElimination(t *testing.T) {
	m := mustFromRows(t, [][]float64{
		{2, 0, 0, 0},
		{0, 3, 0, 0},
		{0, 0, 4, 0},
		{0, 0, 0, 5},
	})
	d, err := reduce.Det(m)
	require.NoError(t, err)
	require.InDelta(t, 120.0, d, 1e-9) // product of the diagonal

	// Permuted identity: one row exchange away, so det is -1 at 4x4.
	p := mustFromRows(t, [][]float64{
		{0, 1, 0, 0},
		{1, 0, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	})
	d, err = reduce.Det(p)
	require.NoError(t, err)
	require.InDelta(t, -1.0, d, 1e-12) // odd permutation
}

// TestDetSingular ensures a missing pivot yields exactly zero, not an error.
func TestDetSingular(t *testing.T) {
	m := mustFromRows(t, [][]float64{
		{1, 2, 3, 4},
		{2, 4, 6, 8},
		{0, 1, 0, 1},
		{1, 0, 1, 0},
	})

	d, err := reduce.Det(m) // second row is 2x the first
	require.NoError(t, err) // singularity is a value, not a failure
	require.Equal(t, 0.0, d)
}

// TestDetEmpty pins det(0x0) == 1, the empty-product convention.
func TestDetEmpty(t *testing.T) {
	d, err := reduce.Det(emptyMatrix{})
	require.NoError(t, err)
	require.Equal(t, 1.0, d)
}

// TestDetTransposeInvariant pins det(A) == det(Aᵀ) on both strategy paths.
func TestDetTransposeInvariant(t *testing.T) {
	small := mustFromRows(t, [][]float64{
		{1, 5, 2},
		{0, 3, 7},
		{4, 1, 6},
	}) // cofactor path
	d1, err := reduce.Det(small)
	require.NoError(t, err)
	d2, err := reduce.Det(matrix.T(small)) // lazy transpose through the interface
	require.NoError(t, err)
	require.InDelta(t, d1, d2, 1e-12)

	big := mustFromRows(t, [][]float64{
		{4, 1, 0, 2},
		{3, 5, 1, 0},
		{0, 2, 6, 1},
		{1, 0, 2, 7},
	}) // elimination path, deliberately non-symmetric
	d1, err = reduce.Det(big)
	require.NoError(t, err)
	d2, err = reduce.Det(matrix.T(big))
	require.NoError(t, err)
	require.InDelta(t, d1, d2, 1e-9)
}

// TestDetShapeErrors covers nil and non-square rejection.
func TestDetShapeErrors(t *testing.T) {
	_, err := reduce.Det(nil)                    // nil interface
	require.ErrorIs(t, err, matrix.ErrNilMatrix) // expect the nil sentinel

	rect := mustFromRows(t, [][]float64{{1, 2, 3}})
	_, err = reduce.Det(rect)                    // 1x3 is not square
	require.ErrorIs(t, err, matrix.ErrNonSquare) // expect the shape sentinel
}
