// Package matrix provides the strided storage layer and element-wise kernels
// that the rest of numkit operates on.
//
// The matrix package provides:
//
//   - Dense: a row-major float64 matrix with an explicit stride (row pitch),
//     enabling zero-copy sub-matrix aliasing and padded layouts.
//   - Vector: the one-dimensional strided counterpart with zero-copy
//     sub-vector extraction.
//   - View: bounds-checked row / column / diagonal / sub-range accessors that
//     write through to the owning Dense without allocating.
//   - Transpose: an O(1) logical row/column swap plus explicit Materialize.
//   - Element-wise kernels (Add, Sub, Scale, Mul, Hadamard, MatVec) with
//     *Dense fast-paths and a generic interface fallback.
//
// All kernels are deterministic (fixed loop orders), never mutate their
// operands, and report failures through package sentinel errors matched via
// errors.Is. See reduce/ and eigen/ for the algorithms built on this layer.
package matrix
