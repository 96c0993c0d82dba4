// Package matrix: Vector is the one-dimensional strided counterpart of
// Dense. The same (offset, stride, length) descriptor idea applies: a Vector
// either owns a compact buffer (stride == 1) or aliases another buffer — a
// matrix row, column or diagonal — without copying.
package matrix

import (
	"fmt"
	"math"
)

// vectorErrorf wraps an underlying error with Vector method context.
func vectorErrorf(method string, i int, err error) error {
	return fmt.Errorf("Vector.%s(%d): %w", method, i, err)
}

// Vector is a strided view over float64 storage.
// Element k lives at data[k*stride]. Invariant: stride >= 1 and
// len(data) >= (n-1)*stride + 1.
type Vector struct {
	n      int       // logical length
	stride int       // distance between consecutive elements, >= 1
	data   []float64 // flat backing storage, possibly shared
}

// NewVector creates an owned zero-initialized vector of length n.
// Errors: ErrInvalidDimensions when n <= 0.
// Complexity: O(n).
func NewVector(n int) (*Vector, error) {
	if n <= 0 {
		return nil, ErrInvalidDimensions
	}

	return &Vector{n: n, stride: 1, data: make([]float64, n)}, nil
}

// VectorFromSlice adopts data as a stride-1 vector (no copy).
// The numeric policy applies: NaN/±Inf are rejected unless relaxed.
// Errors: ErrInvalidDimensions (empty), ErrNaNInf.
// Complexity: O(n) policy scan, O(1) memory.
func VectorFromSlice(data []float64, opts ...Option) (*Vector, error) {
	o := gatherOptions(opts...)
	if len(data) == 0 {
		return nil, ErrInvalidDimensions
	}
	if o.validateNaNInf {
		for i := 0; i < len(data); i++ {
			if isNonFinite(data[i]) {
				return nil, ErrNaNInf
			}
		}
	}

	return &Vector{n: len(data), stride: 1, data: data}, nil
}

// Len returns the logical length of the vector.
// Complexity: O(1).
func (v *Vector) Len() int { return v.n }

// Stride returns the element pitch of the backing buffer.
// Complexity: O(1).
func (v *Vector) Stride() int { return v.stride }

// At retrieves element k.
// Errors: ErrOutOfRange.
// Complexity: O(1).
func (v *Vector) At(k int) (float64, error) {
	if k < 0 || k >= v.n {
		return 0, vectorErrorf("At", k, ErrOutOfRange)
	}

	return v.data[k*v.stride], nil
}

// Set assigns element k. Writes through to the owner when the vector is an
// alias (sub-vector, matrix row/column/diagonal).
// Errors: ErrOutOfRange.
// Complexity: O(1).
func (v *Vector) Set(k int, x float64) error {
	if k < 0 || k >= v.n {
		return vectorErrorf("Set", k, ErrOutOfRange)
	}
	v.data[k*v.stride] = x

	return nil
}

// SubVector returns a zero-copy view of n elements starting at position
// start. The result shares the receiver's buffer and inherits its stride.
// Errors: ErrInvalidDimensions (n <= 0), ErrOutOfRange (window escapes).
// Complexity: O(1).
func (v *Vector) SubVector(start, n int) (*Vector, error) {
	if n <= 0 {
		return nil, ErrInvalidDimensions
	}
	if start < 0 || start+n > v.n {
		return nil, vectorErrorf("SubVector", start, ErrOutOfRange)
	}

	return &Vector{n: n, stride: v.stride, data: v.data[start*v.stride:]}, nil
}

// Clone returns an independent compact (stride-1) copy of the vector.
// Complexity: O(n).
func (v *Vector) Clone() *Vector {
	out := &Vector{n: v.n, stride: 1, data: make([]float64, v.n)}
	for k := 0; k < v.n; k++ {
		out.data[k] = v.data[k*v.stride]
	}

	return out
}

// Raw returns the logical elements as a fresh compact slice.
// Handy for interop with MatVec and the eigen solvers.
// Complexity: O(n).
func (v *Vector) Raw() []float64 {
	out := make([]float64, v.n)
	for k := 0; k < v.n; k++ {
		out[k] = v.data[k*v.stride]
	}

	return out
}

// Dot computes the inner product aᵀb.
// Errors: ErrNilMatrix (nil operand), ErrDimensionMismatch (length mismatch).
// Determinism: fixed k-order accumulation.
// Complexity: O(n).
func Dot(a, b *Vector) (float64, error) {
	if a == nil || b == nil {
		return 0, vectorErrorf("Dot", 0, ErrNilMatrix)
	}
	if a.n != b.n {
		return 0, vectorErrorf("Dot", a.n, ErrDimensionMismatch)
	}
	var sum float64
	for k := 0; k < a.n; k++ { // deterministic accumulation order
		sum += a.data[k*a.stride] * b.data[k*b.stride]
	}

	return sum, nil
}

// Norm returns the Euclidean norm ‖v‖₂.
// Complexity: O(n).
func (v *Vector) Norm() float64 {
	var sum float64
	for k := 0; k < v.n; k++ {
		x := v.data[k*v.stride]
		sum += x * x
	}

	return math.Sqrt(sum)
}

// Normalize scales the vector in place to unit Euclidean norm.
// A zero vector (‖v‖ <= eps from the package numeric policy) is left
// untouched and reported via the returned flag, never turned into NaN.
// Complexity: O(n).
func (v *Vector) Normalize(opts ...Option) bool {
	o := gatherOptions(opts...)
	norm := v.Norm()
	if norm <= o.eps {
		return false // zero vector; nothing to scale
	}
	inv := 1.0 / norm
	for k := 0; k < v.n; k++ {
		v.data[k*v.stride] *= inv
	}

	return true
}

// String implements fmt.Stringer for easy debugging.
// Complexity: O(n).
func (v *Vector) String() string {
	s := "["
	for k := 0; k < v.n; k++ {
		s += fmt.Sprintf("%g", v.data[k*v.stride])
		if k < v.n-1 {
			s += ", "
		}
	}

	return s + "]"
}
