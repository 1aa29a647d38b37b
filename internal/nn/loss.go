package nn

import (
	"github.com/born-ml/mlp/internal/matrix"
)

// SquaredError returns (output - target)² element-wise.
//
// Panics if the shapes differ.
func SquaredError(target, output *matrix.Matrix) *matrix.Matrix {
	diff := output.Subtract(target)
	return diff.Hadamard(diff)
}

// MeanSquaredError returns the mean of SquaredError over all elements, or 0
// for empty matrices.
func MeanSquaredError(target, output *matrix.Matrix) float64 {
	se := SquaredError(target, output)
	if se.Len() == 0 {
		return 0
	}
	return se.Sum() / float64(se.Len())
}
