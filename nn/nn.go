// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package nn

import (
	"github.com/born-ml/mlp/internal/nn"
	"github.com/born-ml/mlp/matrix"
)

// Layer represents a fully connected (dense) layer.
type Layer = nn.Layer

// NewLayer creates a zeroed layer mapping inputWidth features to outputWidth
// features.
func NewLayer(outputWidth, inputWidth int) *Layer {
	return nn.NewLayer(outputWidth, inputWidth)
}

// Network is an ordered stack of fully connected layers.
type Network = nn.Network

// NewNetwork builds a network with the given input width, hidden layer
// widths and output width.
//
// Example:
//
//	net, err := nn.NewNetwork(2, []int{3}, 1)
func NewNetwork(inputSize int, hiddenSizes []int, outputSize int) (*Network, error) {
	return nn.NewNetwork(inputSize, hiddenSizes, outputSize)
}

// NewNetworkFromConfig builds a network from a Config.
func NewNetworkFromConfig(cfg Config) (*Network, error) {
	return nn.NewNetworkFromConfig(cfg)
}

// Config describes a network topology.
type Config = nn.Config

// DefaultConfig returns the 784-[16,16]-10 image classifier topology.
func DefaultConfig() Config {
	return nn.DefaultConfig()
}

// NetworkState holds the activations captured by Network.ForwardPropagate.
type NetworkState = nn.NetworkState

// Gradients holds per-layer weight and bias gradients.
type Gradients = nn.Gradients

// Randomization bounds.
const (
	WeightMin = nn.WeightMin
	WeightMax = nn.WeightMax
	BiasMin   = nn.BiasMin
	BiasMax   = nn.BiasMax
)

// Activations

// Activation is an element-wise function applied after each layer.
type Activation = nn.Activation

// ReLU returns max(x, 0).
func ReLU(x float64) float64 { return nn.ReLU(x) }

// ReLUDerivative is the derivative of ReLU in terms of its output.
func ReLUDerivative(a float64) float64 { return nn.ReLUDerivative(a) }

// Sigmoid returns 1 / (1 + exp(-x)).
func Sigmoid(x float64) float64 { return nn.Sigmoid(x) }

// SigmoidDerivative is the derivative of Sigmoid in terms of its output.
func SigmoidDerivative(a float64) float64 { return nn.SigmoidDerivative(a) }

// Tanh returns the hyperbolic tangent of x.
func Tanh(x float64) float64 { return nn.Tanh(x) }

// TanhDerivative is the derivative of Tanh in terms of its output.
func TanhDerivative(a float64) float64 { return nn.TanhDerivative(a) }

// Identity returns x unchanged.
func Identity(x float64) float64 { return nn.Identity(x) }

// IdentityDerivative always returns 1.
func IdentityDerivative(a float64) float64 { return nn.IdentityDerivative(a) }

// ActivationByName returns an activation and its derivative by name.
func ActivationByName(name string) (fn, derivative Activation, err error) {
	return nn.ActivationByName(name)
}

// Loss functions

// SquaredError returns (output - target)² element-wise.
func SquaredError(target, output *matrix.Matrix) *matrix.Matrix {
	return nn.SquaredError(target, output)
}

// MeanSquaredError returns the mean of SquaredError.
func MeanSquaredError(target, output *matrix.Matrix) float64 {
	return nn.MeanSquaredError(target, output)
}

// Errors
var (
	ErrEmptyHidden        = nn.ErrEmptyHidden
	ErrInvalidLayerSize   = nn.ErrInvalidLayerSize
	ErrInputSizeMismatch  = nn.ErrInputSizeMismatch
	ErrTargetSizeMismatch = nn.ErrTargetSizeMismatch
	ErrStateMismatch      = nn.ErrStateMismatch
	ErrLayerShapeMismatch = nn.ErrLayerShapeMismatch
	ErrNilActivation      = nn.ErrNilActivation
	ErrUnknownActivation  = nn.ErrUnknownActivation
)
