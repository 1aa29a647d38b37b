package nn

import (
	"fmt"
	"math/rand/v2"

	"github.com/born-ml/mlp/internal/matrix"
)

// Layer implements a fully connected (dense) transformation of a row vector.
//
// Performs: y = activation(x @ W + b)
// where:
//   - x is the input row vector with shape [1, in_features]
//   - W is the weight matrix with shape [in_features, out_features]
//   - b is the bias row vector with shape [1, out_features]
//   - y is the output row vector with shape [1, out_features]
//
// Weights and bias start at zero; call Randomize before use.
type Layer struct {
	inFeatures  int
	outFeatures int
	weights     *matrix.Matrix // [in_features, out_features]
	bias        *matrix.Matrix // [1, out_features]
}

// NewLayer creates a zeroed layer mapping inputWidth features to
// outputWidth features.
func NewLayer(outputWidth, inputWidth int) *Layer {
	return &Layer{
		inFeatures:  inputWidth,
		outFeatures: outputWidth,
		weights:     matrix.New(inputWidth, outputWidth),
		bias:        matrix.New(1, outputWidth),
	}
}

// Forward computes activation(input @ W + b).
//
// Panics if input does not have InFeatures columns or has more than one row.
func (l *Layer) Forward(input *matrix.Matrix, activation Activation) *matrix.Matrix {
	return input.Multiply(l.weights).Add(l.bias).Apply(activation)
}

// Randomize fills weights over [WeightMin, WeightMax] and bias over
// [BiasMin, BiasMax].
func (l *Layer) Randomize(rng *rand.Rand) {
	l.weights.Randomize(rng, WeightMin, WeightMax)
	l.bias.Randomize(rng, BiasMin, BiasMax)
}

// Weights returns the weight matrix. The layer keeps ownership; use
// SetWeights to replace it.
func (l *Layer) Weights() *matrix.Matrix {
	return l.weights
}

// Bias returns the bias row vector.
func (l *Layer) Bias() *matrix.Matrix {
	return l.bias
}

// SetWeights replaces the weights with a copy of w.
func (l *Layer) SetWeights(w *matrix.Matrix) error {
	if w.Rows() != l.inFeatures || w.Cols() != l.outFeatures {
		return fmt.Errorf("%w: weight expected [%d,%d], got [%d,%d]",
			ErrLayerShapeMismatch, l.inFeatures, l.outFeatures, w.Rows(), w.Cols())
	}
	l.weights = w.Clone()
	return nil
}

// SetBias replaces the bias with a copy of b.
func (l *Layer) SetBias(b *matrix.Matrix) error {
	if b.Rows() != 1 || b.Cols() != l.outFeatures {
		return fmt.Errorf("%w: bias expected [1,%d], got [%d,%d]",
			ErrLayerShapeMismatch, l.outFeatures, b.Rows(), b.Cols())
	}
	l.bias = b.Clone()
	return nil
}

// InFeatures returns the number of input features.
func (l *Layer) InFeatures() int {
	return l.inFeatures
}

// OutFeatures returns the number of output features.
func (l *Layer) OutFeatures() int {
	return l.outFeatures
}

// NumParameters returns the number of weights plus biases.
func (l *Layer) NumParameters() int {
	return l.weights.Len() + l.bias.Len()
}
