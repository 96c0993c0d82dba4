// Package reduce_test: unit tests for the direct linear solver.
package reduce_test

import (
	"testing"

	"github.com/katalvlaran/numkit/matrix"
	"github.com/katalvlaran/numkit/reduce"
	"github.com/stretchr/testify/require"
)

// TestSolveUnique checks a 3x3 system with a known unique solution.
func TestSolveUnique(t *testing.T) {
	a := mustFromRows(t, [][]float64{
		{1, 2, 3},
		{1, 1, 1},
		{2, 3, 3},
	})
	b := []float64{7, 2, 5}

	x, err := reduce.Solve(a, b)
	require.NoError(t, err)
	require.InDeltaSlice(t, []float64{1, -3, 4}, x, 1e-9) // hand-solved system

	// Residual check: A·x must reproduce b.
	back, err := matrix.MatVec(a, x)
	require.NoError(t, err)
	require.InDeltaSlice(t, b, back, 1e-9)
}

// TestSolveSingular ensures a rank-deficient system surfaces ErrSingular.
func TestSolveSingular(t *testing.T) {
	a := mustFromRows(t, [][]float64{
		{1, 2},
		{2, 4},
	})

	_, err := reduce.Solve(a, []float64{1, 2})  // infinitely many solutions
	require.ErrorIs(t, err, reduce.ErrSingular) // no unique x to return
}

// TestSolveShapeErrors covers dimension validation.
func TestSolveShapeErrors(t *testing.T) {
	a := mustFromRows(t, [][]float64{{1, 2}, {3, 4}})

	_, err := reduce.Solve(a, []float64{1})              // wrong RHS length
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch) // expect the shape sentinel

	rect := mustFromRows(t, [][]float64{{1, 2, 3}})
	_, err = reduce.Solve(rect, []float64{1})    // coefficient block must be square
	require.ErrorIs(t, err, matrix.ErrNonSquare) // expect the shape sentinel
}
