// Package eigen_test: unit tests for the full-spectrum solvers (QR algorithm
// and Jacobi).
package eigen_test

import (
	"math"
	"sort"
	"testing"

	"github.com/katalvlaran/numkit/eigen"
	"github.com/katalvlaran/numkit/matrix"
	"github.com/stretchr/testify/require"
)

// sortedValues returns a copy of the eigenvalue estimates in ascending order
// (the solvers report them in diagonal order, which is not sorted).
func sortedValues(d eigen.Decomposition) []float64 {
	out := append([]float64(nil), d.Values...)
	sort.Float64s(out)

	return out
}

// requireEigenpairs asserts A·v_i ≈ λ_i·v_i for every column of the basis.
func requireEigenpairs(t *testing.T, a *matrix.Dense, d eigen.Decomposition, tol float64) {
	t.Helper()
	n := a.Rows()
	for c := 0; c < n; c++ {
		v := make([]float64, n) // extract column c of the basis
		for i := 0; i < n; i++ {
			x, err := d.Vectors.At(i, c)
			require.NoError(t, err)
			v[i] = x
		}
		av, err := matrix.MatVec(a, v)
		require.NoError(t, err)
		for i := 0; i < n; i++ { // componentwise residual
			require.InDelta(t, d.Values[c]*v[i], av[i], tol)
		}
	}
}

// TestEigenSymmetricInput runs the QR algorithm on a symmetric 2x2 with a
// known spectrum and checks values and eigenpairs.
func TestEigenSymmetricInput(t *testing.T) {
	a := mustFromRows(t, [][]float64{
		{6, -2},
		{-2, 9},
	})

	d, err := eigen.Eigen(a)
	require.NoError(t, err)
	require.True(t, d.Converged) // real well-separated spectrum converges

	require.InDeltaSlice(t, []float64{5, 10}, sortedValues(d), 1e-6)
	requireEigenpairs(t, a, d, 1e-6) // symmetric input: columns are eigenvectors
}

// TestEigenUpperTriangular checks that a triangular matrix converges
// immediately: its eigenvalues already sit on the diagonal.
func TestEigenUpperTriangular(t *testing.T) {
	a := mustFromRows(t, [][]float64{
		{3, 1, 2},
		{0, -1, 4},
		{0, 0, 7},
	})

	d, err := eigen.Eigen(a)
	require.NoError(t, err)
	require.True(t, d.Converged)
	require.Equal(t, 0, d.Iterations) // no sub-diagonal mass to chase

	require.InDeltaSlice(t, []float64{-1, 3, 7}, sortedValues(d), 1e-9)
}

// TestEigenGramSchmidtFlavor cross-checks the two QR flavors on one input.
func TestEigenGramSchmidtFlavor(t *testing.T) {
	a := mustFromRows(t, [][]float64{
		{2, 1},
		{1, 2},
	}) // spectrum {1, 3}

	d, err := eigen.Eigen(a, eigen.WithGramSchmidt())
	require.NoError(t, err)
	require.True(t, d.Converged)
	require.InDeltaSlice(t, []float64{1, 3}, sortedValues(d), 1e-6)
}

// TestEigenComplexSpectrumCap pins the cap policy on a rotation matrix: the
// 2x2 bump never decays, so the solver reports Converged=false.
func TestEigenComplexSpectrumCap(t *testing.T) {
	rot := mustFromRows(t, [][]float64{
		{0, -1},
		{1, 0},
	})

	d, err := eigen.Eigen(rot, eigen.WithMaxIterations(40))
	require.NoError(t, err)             // non-convergence is data, not failure
	require.False(t, d.Converged)       // the flag reports it
	require.Equal(t, 40, d.Iterations)  // the cap was exhausted
	for _, v := range d.Values {        // estimates stay finite
		require.False(t, math.IsNaN(v))
	}
}

// TestEigenSymmetricJacobi validates the Jacobi specialist on a 3x3 with a
// known integer spectrum.
func TestEigenSymmetricJacobi(t *testing.T) {
	a := mustFromRows(t, [][]float64{
		{2, 0, 0},
		{0, 3, 4},
		{0, 4, 9},
	}) // block spectrum: {2} ∪ eig([[3,4],[4,9]]) = {2, 1, 11}

	d, err := eigen.EigenSymmetric(a)
	require.NoError(t, err)
	require.True(t, d.Converged)

	require.InDeltaSlice(t, []float64{1, 2, 11}, sortedValues(d), 1e-9)
	requireEigenpairs(t, a, d, 1e-6) // Jacobi always yields true eigenvectors
}

// TestEigenSymmetricRejectsAsymmetry ensures the symmetry precondition is
// enforced up front.
func TestEigenSymmetricRejectsAsymmetry(t *testing.T) {
	a := mustFromRows(t, [][]float64{
		{1, 2},
		{3, 4},
	})

	_, err := eigen.EigenSymmetric(a)
	require.ErrorIs(t, err, eigen.ErrNotSymmetric)
}

// TestEigenShapeErrors covers nil and non-square rejection for both solvers.
func TestEigenShapeErrors(t *testing.T) {
	_, err := eigen.Eigen(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	rect := mustFromRows(t, [][]float64{{1, 2, 3}})
	_, err = eigen.Eigen(rect)
	require.ErrorIs(t, err, matrix.ErrNonSquare)

	_, err = eigen.EigenSymmetric(rect)
	require.ErrorIs(t, err, matrix.ErrNonSquare)
}
