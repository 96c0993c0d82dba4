// Package numkit is an in-memory toolkit for dense linear algebra —
// from strided storage primitives to classical decomposition and
// eigen-solving algorithms.
//
// 🚀 What is numkit?
//
//	A small, deterministic, pure-Go library that brings together:
//		• Storage primitives: row-major strided matrices & vectors, zero-copy views
//		• Layout transforms: O(1) logical transpose + explicit materialization
//		• Row reduction: partial-pivoting Gauss–Jordan to reduced row-echelon form
//		• Derived quantities: rank, determinant, inverse, linear solves
//		• Eigen solving: analytic 2×2, power iteration, QR algorithm, Jacobi sweeps
//		• QR decomposition: Householder reflections or modified Gram–Schmidt
//
// ✨ Why choose numkit?
//
//   - Deterministic – fixed loop orders, lowest-index tie-breaks, reproducible output
//   - Explicit numeric policy – tolerances and iteration caps are per-call options
//   - Rock-solid error surface – sentinel errors, errors.Is everywhere, no panics on data
//   - Pure Go – no cgo, no hidden deps
//
// Under the hood, everything is organized under three subpackages:
//
//	matrix/ — strided Dense & Vector storage, views, transpose, element-wise kernels
//	reduce/ — row-reduction engine: RREF, rank, determinant, inverse, solve
//	eigen/  — QR decomposition and the eigen strategies (2×2, power, QR algorithm, Jacobi)
//
// Quick ASCII example:
//
//	    ⎡ 6 −2 ⎤
//	    ⎣−2  9 ⎦
//
//	has eigenvalues {5, 10}; power iteration converges to the dominant 10.
//
// Dive into the package docs and examples/ for full usage patterns.
//
//	go get github.com/katalvlaran/numkit
package numkit
