// Package matrix: Dense is the concrete row-major implementation of the
// Matrix interface. Elements live in a flat slice addressed through an
// explicit stride (row pitch), so a Dense can either own a compact buffer
// (stride == cols) or alias a window of another Dense without copying.
package matrix

import (
	"fmt"
	"math"
)

// denseErrorf wraps an underlying error with Dense method context.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a row-major matrix of float64 values.
// rows×cols is the logical shape; stride is the distance (in elements)
// between the starts of consecutive rows, with stride >= cols. Element (i,j)
// lives at data[i*stride+j]. Invariant: len(data) >= (rows-1)*stride + cols.
//
// Ownership: a Dense built by a constructor owns its buffer exclusively; a
// Dense produced by Submatrix aliases the parent's buffer and must not
// outlive it. Mutations through an alias write through to the owner.
type Dense struct {
	rows, cols int       // logical shape
	stride     int       // row pitch, >= cols; buffer addressing NEVER uses cols
	data       []float64 // flat backing storage, possibly shared with a parent
}

// NewDense creates a rows×cols Dense matrix initialized to zeros.
// Stage 1 (Validate): ensure rows and cols > 0.
// Stage 2 (Prepare): allocate a compact flat slice (stride == cols).
// Stage 3 (Finalize): return new Dense or ErrInvalidDimensions.
// Complexity: O(r*c) time and memory.
func NewDense(rows, cols int) (*Dense, error) {
	// Validate dimensions
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}

	// Allocate compact flat slice and return
	return &Dense{rows: rows, cols: cols, stride: cols, data: make([]float64, rows*cols)}, nil
}

// FromRows builds an owned Dense from a nested slice.
// Stage 1 (Validate): non-empty input, equal row lengths, finite values under
// the numeric policy (WithNoValidateNaNInf relaxes the finiteness check).
// Stage 2 (Execute): copy rows into a compact buffer.
// Errors: ErrInvalidDimensions (empty), ErrRagged (unequal rows), ErrNaNInf.
// Complexity: O(r*c).
func FromRows(rows [][]float64, opts ...Option) (*Dense, error) {
	o := gatherOptions(opts...)
	// Validate outer shape
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrInvalidDimensions
	}
	r, c := len(rows), len(rows[0])
	d := &Dense{rows: r, cols: c, stride: c, data: make([]float64, r*c)}
	var i, j int
	for i = 0; i < r; i++ {
		// Reject ragged input before touching the buffer.
		if len(rows[i]) != c {
			return nil, ErrRagged
		}
		for j = 0; j < c; j++ {
			// Ingestion-time numeric policy: reject NaN/±Inf unless relaxed.
			if o.validateNaNInf && isNonFinite(rows[i][j]) {
				return nil, ErrNaNInf
			}
			d.data[i*c+j] = rows[i][j]
		}
	}

	return d, nil
}

// FromSlice adopts an existing flat row-major buffer as a rows×cols Dense.
// The buffer is adopted, not copied: the returned Dense owns it from the
// caller's perspective and later mutations write into the same slice.
// Stage 1 (Validate): positive shape, rows*cols == len(data), finite values
// under the numeric policy.
// Errors: ErrInvalidDimensions, ErrBadBuffer, ErrNaNInf.
// Complexity: O(r*c) for the policy scan, O(1) memory.
func FromSlice(rows, cols int, data []float64, opts ...Option) (*Dense, error) {
	o := gatherOptions(opts...)
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}
	// The core must validate rows*cols == buffer length on ingestion.
	if len(data) != rows*cols {
		return nil, ErrBadBuffer
	}
	if o.validateNaNInf {
		for idx := 0; idx < len(data); idx++ {
			if isNonFinite(data[idx]) {
				return nil, ErrNaNInf
			}
		}
	}

	return &Dense{rows: rows, cols: cols, stride: cols, data: data}, nil
}

// FromStridedSlice adopts a flat buffer with an explicit row pitch, for
// interop with storage that carries padding between rows (or an alias into a
// larger matrix). The buffer is adopted, not copied.
// Stage 1 (Validate): positive shape, stride >= cols, buffer long enough for
// the last addressable cell, finite values under the numeric policy (only the
// logical cells are scanned — padding is ignored).
// Errors: ErrInvalidDimensions, ErrBadStride, ErrBadBuffer, ErrNaNInf.
// Complexity: O(r*c) for the policy scan, O(1) memory.
func FromStridedSlice(rows, cols, stride int, data []float64, opts ...Option) (*Dense, error) {
	o := gatherOptions(opts...)
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}
	if stride < cols {
		return nil, ErrBadStride
	}
	if len(data) < (rows-1)*stride+cols {
		return nil, ErrBadBuffer
	}
	if o.validateNaNInf {
		for i := 0; i < rows; i++ {
			base := i * stride
			for j := 0; j < cols; j++ {
				if isNonFinite(data[base+j]) {
					return nil, ErrNaNInf
				}
			}
		}
	}

	return &Dense{rows: rows, cols: cols, stride: stride, data: data}, nil
}

// Generate builds a rows×cols Dense by evaluating f(i, j) for every cell in
// deterministic i→j order. The generator's output is subject to the same
// numeric policy as FromRows.
// Errors: ErrInvalidDimensions, ErrNaNInf.
// Complexity: O(r*c) plus the cost of f.
func Generate(rows, cols int, f func(i, j int) float64, opts ...Option) (*Dense, error) {
	o := gatherOptions(opts...)
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}
	d := &Dense{rows: rows, cols: cols, stride: cols, data: make([]float64, rows*cols)}
	var i, j int
	var v float64
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			v = f(i, j)
			if o.validateNaNInf && isNonFinite(v) {
				return nil, ErrNaNInf
			}
			d.data[i*cols+j] = v
		}
	}

	return d, nil
}

// Rows returns the number of rows in the matrix.
// Complexity: O(1).
func (m *Dense) Rows() int {
	return m.rows
}

// Cols returns the number of columns in the matrix.
// Complexity: O(1).
func (m *Dense) Cols() int {
	return m.cols
}

// Stride returns the row pitch of the backing buffer (>= Cols).
// Complexity: O(1).
func (m *Dense) Stride() int {
	return m.stride
}

// indexOf computes the flat index for (row, col) or returns ErrOutOfRange.
// Stage 1 (Validate): check 0 ≤ row < rows and 0 ≤ col < cols.
// Stage 2 (Execute): compute the strided linear index.
// Complexity: O(1).
func (m *Dense) indexOf(method string, row, col int) (int, error) {
	// Validate row index
	if row < 0 || row >= m.rows {
		return 0, denseErrorf(method, row, col, ErrOutOfRange)
	}
	// Validate column index
	if col < 0 || col >= m.cols {
		return 0, denseErrorf(method, row, col, ErrOutOfRange)
	}

	// Strided offset; cols is a logical bound only, never an addressing term.
	return row*m.stride + col, nil
}

// At retrieves the element at (row, col).
// Complexity: O(1).
func (m *Dense) At(row, col int) (float64, error) {
	idx, err := m.indexOf("At", row, col)
	if err != nil {
		return 0, err
	}

	return m.data[idx], nil
}

// Set assigns value v at (row, col).
// Complexity: O(1).
func (m *Dense) Set(row, col int, v float64) error {
	idx, err := m.indexOf("Set", row, col)
	if err != nil {
		return err
	}
	m.data[idx] = v

	return nil
}

// Clone returns a deep, compact copy of the Dense matrix.
// The copy always has stride == cols, regardless of the receiver's layout,
// so cloning a sub-matrix alias yields an independent owned buffer.
// Complexity: O(r*c) time and memory.
func (m *Dense) Clone() Matrix {
	out := &Dense{rows: m.rows, cols: m.cols, stride: m.cols, data: make([]float64, m.rows*m.cols)}
	for i := 0; i < m.rows; i++ {
		// Per-row copy honours the source stride and compacts the target.
		copy(out.data[i*m.cols:(i+1)*m.cols], m.data[i*m.stride:i*m.stride+m.cols])
	}

	return out
}

// Submatrix returns a zero-copy view of the r×c window whose top-left corner
// is (i0, j0). The result shares the receiver's buffer (same stride) and must
// not outlive it; writes through the view are visible to the parent.
// Stage 1 (Validate): positive window shape fully inside the receiver.
// Errors: ErrInvalidDimensions (non-positive window), ErrOutOfRange.
// Complexity: O(1) — no element is copied.
func (m *Dense) Submatrix(i0, j0, r, c int) (*Dense, error) {
	if r <= 0 || c <= 0 {
		return nil, ErrInvalidDimensions
	}
	if i0 < 0 || j0 < 0 || i0+r > m.rows || j0+c > m.cols {
		return nil, denseErrorf("Submatrix", i0, j0, ErrOutOfRange)
	}

	// Re-slice from the window origin; stride is inherited from the parent.
	return &Dense{rows: r, cols: c, stride: m.stride, data: m.data[i0*m.stride+j0:]}, nil
}

// RowSlice returns the i-th logical row as a slice aliasing the backing
// buffer (length Cols). Mutating the slice writes through to the matrix.
// This is the package's bounded per-row accessor; the elimination engine in
// reduce/ is built on it.
// Errors: ErrOutOfRange.
// Complexity: O(1).
func (m *Dense) RowSlice(i int) ([]float64, error) {
	if i < 0 || i >= m.rows {
		return nil, denseErrorf("RowSlice", i, 0, ErrOutOfRange)
	}

	return m.data[i*m.stride : i*m.stride+m.cols], nil
}

// SwapRows exchanges rows i and k by direct buffer exchange.
// Complexity: O(cols) — the rest of the matrix is untouched.
func (m *Dense) SwapRows(i, k int) error {
	if i < 0 || i >= m.rows || k < 0 || k >= m.rows {
		return denseErrorf("SwapRows", i, k, ErrOutOfRange)
	}
	if i == k {
		return nil // nothing to exchange
	}
	bi, bk := i*m.stride, k*m.stride
	for j := 0; j < m.cols; j++ { // fixed j order; element-wise exchange
		m.data[bi+j], m.data[bk+j] = m.data[bk+j], m.data[bi+j]
	}

	return nil
}

// SwapCols exchanges columns j and k by direct buffer exchange.
// Complexity: O(rows).
func (m *Dense) SwapCols(j, k int) error {
	if j < 0 || j >= m.cols || k < 0 || k >= m.cols {
		return denseErrorf("SwapCols", j, k, ErrOutOfRange)
	}
	if j == k {
		return nil
	}
	for i := 0; i < m.rows; i++ {
		base := i * m.stride
		m.data[base+j], m.data[base+k] = m.data[base+k], m.data[base+j]
	}

	return nil
}

// Fill assigns v to every logical element of the matrix in place.
// Padding cells beyond cols (when stride > cols) are left untouched.
// Complexity: O(r*c).
func (m *Dense) Fill(v float64) {
	for i := 0; i < m.rows; i++ {
		base := i * m.stride
		for j := 0; j < m.cols; j++ {
			m.data[base+j] = v
		}
	}
}

// ApplyInPlace replaces every element with f(i, j, v) in deterministic i→j
// order. This is the single mutating transform primitive; Apply is the
// copying combinator built on top of it.
// Complexity: O(r*c) plus the cost of f.
func (m *Dense) ApplyInPlace(f func(i, j int, v float64) float64) {
	for i := 0; i < m.rows; i++ {
		base := i * m.stride
		for j := 0; j < m.cols; j++ {
			m.data[base+j] = f(i, j, m.data[base+j])
		}
	}
}

// Apply returns a fresh compact Dense with f applied to every element of m.
// The receiver is never mutated: Apply = Clone + ApplyInPlace.
// Complexity: O(r*c).
func (m *Dense) Apply(f func(i, j int, v float64) float64) *Dense {
	out := m.Clone().(*Dense) // Clone always returns a compact *Dense
	out.ApplyInPlace(f)

	return out
}

// Equal reports whether a and b have identical shape and all elements agree
// within eps (|a[i,j]-b[i,j]| <= eps). Shape mismatch is false, not an error.
// Complexity: O(r*c).
func Equal(a, b Matrix, eps float64) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if a.Rows() != b.Rows() || a.Cols() != b.Cols() {
		return false
	}
	var av, bv float64
	for i := 0; i < a.Rows(); i++ {
		for j := 0; j < a.Cols(); j++ {
			av, _ = a.At(i, j) // shape already validated; errors not expected
			bv, _ = b.At(i, j)
			if math.Abs(av-bv) > eps {
				return false
			}
		}
	}

	return true
}

// String implements fmt.Stringer for easy debugging.
// Complexity: O(r*c) for string construction.
func (m *Dense) String() string {
	var s string
	var i, j int
	for i = 0; i < m.rows; i++ { // iterate over rows
		s += "[" // open row
		for j = 0; j < m.cols; j++ {
			s += fmt.Sprintf("%g", m.data[i*m.stride+j])
			if j < m.cols-1 {
				s += ", " // separate values with comma
			}
		}
		s += "]\n" // close row
	}

	return s
}

// isNonFinite reports NaN or ±Inf.
func isNonFinite(v float64) bool {
	return math.IsNaN(v) || math.IsInf(v, 0)
}
