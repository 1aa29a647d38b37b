// Package matrix implements the dense float64 matrix used by the network core.
//
// Matrices are row-major: element (i, j) lives at data[i*cols+j]. Every
// arithmetic operator returns a freshly allocated result and leaves its
// operands untouched; only Randomize and Set write into an existing matrix.
//
// Shape mismatches between operands panic with an error wrapping
// ErrDimensionMismatch. Constructors fed with external data return errors
// instead.
package matrix

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Matrix is a dense rows x cols matrix of float64 values.
type Matrix struct {
	rows int
	cols int
	data []float64 // len(data) == rows*cols
}

// New returns a zero-filled matrix of the given shape.
//
// Negative dimensions panic.
func New(rows, cols int) *Matrix {
	if rows < 0 || cols < 0 {
		panic(fmt.Sprintf("matrix: negative shape [%d,%d]", rows, cols))
	}
	return &Matrix{
		rows: rows,
		cols: cols,
		data: make([]float64, rows*cols),
	}
}

// FromSlice creates a matrix holding a copy of data in row-major order.
//
// Returns ErrBadShape if a dimension is negative or len(data) != rows*cols.
func FromSlice(rows, cols int, data []float64) (*Matrix, error) {
	if rows < 0 || cols < 0 {
		return nil, fmt.Errorf("%w: negative shape [%d,%d]", ErrBadShape, rows, cols)
	}
	if len(data) != rows*cols {
		return nil, fmt.Errorf("%w: %d values for shape [%d,%d]", ErrBadShape, len(data), rows, cols)
	}
	m := New(rows, cols)
	copy(m.data, data)
	return m, nil
}

// Rows returns the number of rows.
func (m *Matrix) Rows() int {
	return m.rows
}

// Cols returns the number of columns.
func (m *Matrix) Cols() int {
	return m.cols
}

// Len returns the number of elements.
func (m *Matrix) Len() int {
	return len(m.data)
}

// At returns the element at row i, column j.
func (m *Matrix) At(i, j int) float64 {
	m.checkIndex(i, j)
	return m.data[i*m.cols+j]
}

// Set stores v at row i, column j.
func (m *Matrix) Set(i, j int, v float64) {
	m.checkIndex(i, j)
	m.data[i*m.cols+j] = v
}

func (m *Matrix) checkIndex(i, j int) {
	if i < 0 || i >= m.rows || j < 0 || j >= m.cols {
		panic(fmt.Sprintf("matrix: index (%d,%d) out of range for shape [%d,%d]", i, j, m.rows, m.cols))
	}
}

// Data returns a copy of the elements in row-major order.
func (m *Matrix) Data() []float64 {
	out := make([]float64, len(m.data))
	copy(out, m.data)
	return out
}

// Clone returns a deep copy of m.
func (m *Matrix) Clone() *Matrix {
	c := New(m.rows, m.cols)
	copy(c.data, m.data)
	return c
}

// SameShape reports whether m and other have equal dimensions.
func (m *Matrix) SameShape(other *Matrix) bool {
	return m.rows == other.rows && m.cols == other.cols
}

// Equal reports whether m and other have the same shape and bit-identical
// elements.
func (m *Matrix) Equal(other *Matrix) bool {
	return m.SameShape(other) && floats.Equal(m.data, other.data)
}

// EqualApprox reports whether m and other have the same shape and all
// elements agree within tol (absolute or relative).
func (m *Matrix) EqualApprox(other *Matrix, tol float64) bool {
	return m.SameShape(other) && floats.EqualApprox(m.data, other.data, tol)
}

// empty reports whether the matrix has no elements. gonum refuses to build
// zero-sized Dense values, so callers short-circuit on it.
func (m *Matrix) empty() bool {
	return m.rows == 0 || m.cols == 0
}

// dense returns a gonum view sharing m's backing slice.
func (m *Matrix) dense() *mat.Dense {
	return mat.NewDense(m.rows, m.cols, m.data)
}

// String renders the matrix one row per line.
func (m *Matrix) String() string {
	if m.empty() {
		return fmt.Sprintf("[](%dx%d)", m.rows, m.cols)
	}
	return fmt.Sprintf("%v", mat.Formatted(m.dense(), mat.Squeeze()))
}
