// Package eigen_test: unit tests for power iteration.
package eigen_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/numkit/eigen"
	"github.com/katalvlaran/numkit/matrix"
	"github.com/stretchr/testify/require"
)

// TestPowerDominantEigenpair verifies convergence to the larger eigenvalue
// and that the returned vector satisfies A·v ≈ λ·v.
func TestPowerDominantEigenpair(t *testing.T) {
	a := mustFromRows(t, [][]float64{
		{6, -2},
		{-2, 9},
	}) // spectrum {5, 10}; the dominant pair is λ=10, v ∝ (1, -2)

	res, err := eigen.Power(a)
	require.NoError(t, err)
	require.True(t, res.Converged)             // well-separated spectrum converges
	require.Greater(t, res.Iterations, 0)      // bookkeeping is populated
	require.InDelta(t, 10.0, res.Value, 1e-6)  // dominant eigenvalue

	// Residual check: A·v ≈ λ·v componentwise.
	v := res.Vector.Raw()
	av, err := matrix.MatVec(a, v)
	require.NoError(t, err)
	for i := range av {
		require.InDelta(t, res.Value*v[i], av[i], 1e-6)
	}
	require.InDelta(t, 1.0, res.Vector.Norm(), 1e-9) // unit-norm estimate
}

// TestPowerStartVector checks the WithStartVector override and its
// validation sentinels.
func TestPowerStartVector(t *testing.T) {
	a := mustFromRows(t, [][]float64{
		{6, -2},
		{-2, 9},
	})

	res, err := eigen.Power(a, eigen.WithStartVector([]float64{1, 0}))
	require.NoError(t, err)
	require.True(t, res.Converged)
	require.InDelta(t, 10.0, res.Value, 1e-6) // same fixed point from another start

	_, err = eigen.Power(a, eigen.WithStartVector([]float64{0, 0}))
	require.ErrorIs(t, err, eigen.ErrZeroVector) // the origin cannot be iterated

	_, err = eigen.Power(a, eigen.WithStartVector([]float64{1, 2, 3}))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch) // length must match n
}

// TestPowerNonConvergence pins the cap policy: a rotation matrix has no
// dominant real eigenvalue, so the cap is hit and Converged stays false.
func TestPowerNonConvergence(t *testing.T) {
	rot := mustFromRows(t, [][]float64{
		{0, -1},
		{1, 0},
	}) // eigenvalues ±i: the iteration orbits forever

	res, err := eigen.Power(rot, eigen.WithMaxIterations(50))
	require.NoError(t, err)               // non-convergence is data, not failure
	require.False(t, res.Converged)       // the flag reports it
	require.Equal(t, 50, res.Iterations)  // the cap was exhausted
	require.False(t, math.IsNaN(res.Value)) // the estimate stays finite
}

// TestPowerNullSpaceStart pins the zero-image edge: when A·v vanishes, the
// eigenvalue estimate is exactly 0 and the result converges immediately.
func TestPowerNullSpaceStart(t *testing.T) {
	a := mustFromRows(t, [][]float64{
		{1, 0},
		{0, 0},
	}) // e2 spans the null space

	res, err := eigen.Power(a, eigen.WithStartVector([]float64{0, 1}))
	require.NoError(t, err)
	require.True(t, res.Converged)
	require.Equal(t, 0.0, res.Value) // exact zero for a null-space vector
}

// TestPowerShapeErrors covers nil and non-square rejection.
func TestPowerShapeErrors(t *testing.T) {
	_, err := eigen.Power(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	rect := mustFromRows(t, [][]float64{{1, 2, 3}})
	_, err = eigen.Power(rect)
	require.ErrorIs(t, err, matrix.ErrNonSquare)
}
