package matrix

import (
	"gonum.org/v1/gonum/floats"
)

// Add returns the element-wise sum m + other.
//
// Panics if the shapes differ.
func (m *Matrix) Add(other *Matrix) *Matrix {
	if !m.SameShape(other) {
		mismatch("add", m, other)
	}
	result := New(m.rows, m.cols)
	floats.AddTo(result.data, m.data, other.data)
	return result
}

// Subtract returns the element-wise difference m - other.
//
// Panics if the shapes differ.
func (m *Matrix) Subtract(other *Matrix) *Matrix {
	if !m.SameShape(other) {
		mismatch("subtract", m, other)
	}
	result := New(m.rows, m.cols)
	floats.SubTo(result.data, m.data, other.data)
	return result
}

// Hadamard returns the element-wise product of m and other.
//
// Panics if the shapes differ.
func (m *Matrix) Hadamard(other *Matrix) *Matrix {
	if !m.SameShape(other) {
		mismatch("hadamard", m, other)
	}
	result := New(m.rows, m.cols)
	floats.MulTo(result.data, m.data, other.data)
	return result
}

// Multiply returns the matrix product m @ other.
// (M, K) @ (K, N) -> (M, N).
//
// Panics if m.Cols() != other.Rows().
func (m *Matrix) Multiply(other *Matrix) *Matrix {
	if m.cols != other.rows {
		mismatch("multiply", m, other)
	}
	result := New(m.rows, other.cols)
	// An empty inner dimension leaves every sum at zero.
	if result.empty() || m.cols == 0 {
		return result
	}
	result.dense().Mul(m.dense(), other.dense())
	return result
}

// Scale returns m with every element multiplied by s.
// A zero scalar yields a zero matrix without reading m.
func (m *Matrix) Scale(s float64) *Matrix {
	result := New(m.rows, m.cols)
	if s == 0 {
		return result
	}
	floats.ScaleTo(result.data, s, m.data)
	return result
}

// Transpose returns the (cols, rows) transpose of m.
func (m *Matrix) Transpose() *Matrix {
	result := New(m.cols, m.rows)
	if m.empty() {
		return result
	}
	result.dense().Copy(m.dense().T())
	return result
}

// Apply returns a new matrix with fn applied to every element.
func (m *Matrix) Apply(fn func(float64) float64) *Matrix {
	result := New(m.rows, m.cols)
	for i, v := range m.data {
		result.data[i] = fn(v)
	}
	return result
}

// Sum returns the sum of all elements.
func (m *Matrix) Sum() float64 {
	return floats.Sum(m.data)
}

// Normalize returns m with every element divided by the sum of all elements.
// A zero sum follows IEEE-754 and produces Inf or NaN entries.
func (m *Matrix) Normalize() *Matrix {
	sum := m.Sum()
	return m.Apply(func(v float64) float64 {
		return v / sum
	})
}
