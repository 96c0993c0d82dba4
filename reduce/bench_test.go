// Package reduce_test: micro-benchmarks for the elimination engine.
package reduce_test

import (
	"testing"

	"github.com/katalvlaran/numkit/matrix"
	"github.com/katalvlaran/numkit/reduce"
)

// benchMatrix builds a deterministic diagonally dominant n×n matrix so every
// benchmark iteration follows the full-rank path.
func benchMatrix(n int) *matrix.Dense {
	m, err := matrix.Generate(n, n, func(i, j int) float64 {
		if i == j {
			return float64(n) // dominance keeps the matrix invertible
		}

		return float64((i*13+j*7)%11-5) / 11.0
	})
	if err != nil {
		panic(err)
	}

	return m
}

// BenchmarkRREF measures full Gauss–Jordan reduction.
func BenchmarkRREF(b *testing.B) {
	m := benchMatrix(64)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, _, err := reduce.RREF(m); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkDet measures the elimination determinant path.
func BenchmarkDet(b *testing.B) {
	m := benchMatrix(64)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := reduce.Det(m); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkInverse measures augmented-elimination inversion.
func BenchmarkInverse(b *testing.B) {
	m := benchMatrix(32)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := reduce.Inverse(m); err != nil {
			b.Fatal(err)
		}
	}
}
