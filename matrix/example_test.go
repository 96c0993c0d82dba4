// Package matrix_test: runnable documentation examples.
package matrix_test

import (
	"fmt"

	"github.com/katalvlaran/numkit/matrix"
)

// ExampleFromRows builds a matrix from row literals and reads one cell.
func ExampleFromRows() {
	m, _ := matrix.FromRows([][]float64{
		{1, 2},
		{3, 4},
	})
	v, _ := m.At(1, 0)
	fmt.Println(v)
	// Output: 3
}

// ExampleDense_Submatrix shows that windows write through to the owner.
func ExampleDense_Submatrix() {
	m, _ := matrix.FromRows([][]float64{
		{1, 2, 3},
		{4, 5, 6},
		{7, 8, 9},
	})
	sub, _ := m.Submatrix(1, 1, 2, 2)
	_ = sub.Set(0, 0, 50) // lands in m(1,1)

	v, _ := m.At(1, 1)
	fmt.Println(v)
	// Output: 50
}

// ExampleMul multiplies two small matrices.
func ExampleMul() {
	a, _ := matrix.FromRows([][]float64{{1, 2}, {3, 4}})
	b, _ := matrix.FromRows([][]float64{{0, 1}, {1, 0}})
	p, _ := matrix.Mul(a, b)
	fmt.Print(p)
	// Output:
	// [2, 1]
	// [4, 3]
}

// ExampleT demonstrates the zero-copy transpose adapter.
func ExampleT() {
	m, _ := matrix.FromRows([][]float64{
		{1, 2, 3},
		{4, 5, 6},
	})
	tr := matrix.T(m)
	v, _ := tr.At(2, 1) // reads m(1,2)
	fmt.Println(tr.Rows(), tr.Cols(), v)
	// Output: 3 2 6
}
