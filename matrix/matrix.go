// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package matrix provides the public API for the dense float64 matrix.
//
// Matrices are row-major and value-like: Add, Subtract, Multiply, Scale and
// friends return new matrices and never modify their operands. Shape
// mismatches between operands panic with an error wrapping
// ErrDimensionMismatch.
//
// Example:
//
//	a := matrix.New(2, 3)
//	a.Randomize(matrix.NewRand(1), -1, 1)
//	b := matrix.New(3, 4)
//	c := a.Multiply(b) // [2, 4]
package matrix

import (
	"math/rand/v2"

	"github.com/born-ml/mlp/internal/matrix"
)

// Matrix is a dense row-major matrix of float64 values.
type Matrix = matrix.Matrix

// New returns a zero-filled matrix of the given shape.
func New(rows, cols int) *Matrix {
	return matrix.New(rows, cols)
}

// FromSlice creates a matrix holding a copy of data in row-major order.
func FromSlice(rows, cols int, data []float64) (*Matrix, error) {
	return matrix.FromSlice(rows, cols, data)
}

// NewRand returns a deterministic generator for Matrix.Randomize.
func NewRand(seed uint64) *rand.Rand {
	return matrix.NewRand(seed)
}

// Errors
var (
	ErrBadShape          = matrix.ErrBadShape
	ErrDimensionMismatch = matrix.ErrDimensionMismatch
)
