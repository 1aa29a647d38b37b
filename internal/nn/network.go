// Package nn implements the feed-forward network core.
//
// This package provides:
//   - Layer: fully connected weights + bias
//   - Network: input -> hidden layers -> output stack with forward propagation
//   - NetworkState: activations captured during a forward pass
//   - Activations: ReLU, Sigmoid, Tanh, Identity
//   - Loss: squared error
//
// Neurons travel as row vectors: a layer computes activation(x @ W + b) with
// W shaped [in_features, out_features].
package nn

import (
	"fmt"
	"math/rand/v2"

	"github.com/born-ml/mlp/internal/matrix"
)

// Network is an ordered stack of fully connected layers.
//
// The topology is fixed at construction; only Randomize (or
// Layer.SetWeights/SetBias) changes the parameters afterward.
//
// Example:
//
//	net, err := nn.NewNetwork(784, []int{16, 16}, 10)
//	if err != nil {
//	    return err
//	}
//	net.Randomize(matrix.NewRand(1))
//	output, err := net.Propagate(input, nn.ReLU)
type Network struct {
	inputSize int
	hidden    []*Layer
	output    *Layer
}

// NewNetwork builds a network whose first hidden layer reads inputSize
// features, each following hidden layer reads the previous layer's output and
// the output layer reads the last hidden layer's output.
//
// Returns ErrEmptyHidden if hiddenSizes is empty and ErrInvalidLayerSize if
// any size is not positive.
func NewNetwork(inputSize int, hiddenSizes []int, outputSize int) (*Network, error) {
	return NewNetworkFromConfig(Config{
		InputSize:   inputSize,
		HiddenSizes: hiddenSizes,
		OutputSize:  outputSize,
	})
}

// NewNetworkFromConfig builds a network from a validated Config.
func NewNetworkFromConfig(cfg Config) (*Network, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	hidden := make([]*Layer, len(cfg.HiddenSizes))
	width := cfg.InputSize
	for i, size := range cfg.HiddenSizes {
		hidden[i] = NewLayer(size, width)
		width = size
	}

	return &Network{
		inputSize: cfg.InputSize,
		hidden:    hidden,
		output:    NewLayer(cfg.OutputSize, width),
	}, nil
}

// Randomize refills every layer, hidden layers first, then the output layer.
// A generator with a fixed seed reproduces the same parameters.
func (n *Network) Randomize(rng *rand.Rand) {
	for _, layer := range n.hidden {
		layer.Randomize(rng)
	}
	n.output.Randomize(rng)
}

// Propagate runs inference and returns the activated output row vector.
//
// Returns an error wrapping ErrInputSizeMismatch if input is not shaped
// [1, InputSize()].
func (n *Network) Propagate(input *matrix.Matrix, activation Activation) (*matrix.Matrix, error) {
	if err := n.checkInput(input, activation); err != nil {
		return nil, err
	}

	values := input
	for _, layer := range n.hidden {
		values = layer.Forward(values, activation)
	}
	return n.output.Forward(values, activation), nil
}

// ForwardPropagate runs inference and captures every activation for a
// later gradient step.
//
// Returns an error wrapping ErrInputSizeMismatch if input is not shaped
// [1, InputSize()].
func (n *Network) ForwardPropagate(input *matrix.Matrix, activation Activation) (*NetworkState, error) {
	if err := n.checkInput(input, activation); err != nil {
		return nil, err
	}

	state := &NetworkState{
		Input:  input.Clone(),
		Hidden: make([]*matrix.Matrix, 0, len(n.hidden)),
	}
	values := state.Input
	for _, layer := range n.hidden {
		values = layer.Forward(values, activation)
		state.Hidden = append(state.Hidden, values)
	}
	state.Output = n.output.Forward(values, activation)

	return state, nil
}

func (n *Network) checkInput(input *matrix.Matrix, activation Activation) error {
	if activation == nil {
		return ErrNilActivation
	}
	if input == nil {
		return fmt.Errorf("%w: input is nil", ErrInputSizeMismatch)
	}
	if input.Rows() != 1 || input.Cols() != n.inputSize {
		return fmt.Errorf("%w: expected [1,%d], got [%d,%d]",
			ErrInputSizeMismatch, n.inputSize, input.Rows(), input.Cols())
	}
	return nil
}

// InputSize returns the number of input features.
func (n *Network) InputSize() int {
	return n.inputSize
}

// OutputSize returns the number of output features.
func (n *Network) OutputSize() int {
	return n.output.OutFeatures()
}

// HiddenLayers returns the hidden layers in order.
func (n *Network) HiddenLayers() []*Layer {
	return append([]*Layer(nil), n.hidden...)
}

// OutputLayer returns the output layer.
func (n *Network) OutputLayer() *Layer {
	return n.output
}

// Layers returns the hidden layers followed by the output layer.
func (n *Network) Layers() []*Layer {
	return append(n.HiddenLayers(), n.output)
}

// NumParameters returns the total number of weights and biases.
func (n *Network) NumParameters() int {
	total := n.output.NumParameters()
	for _, layer := range n.hidden {
		total += layer.NumParameters()
	}
	return total
}
