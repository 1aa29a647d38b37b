package nn

import (
	"fmt"

	"github.com/born-ml/mlp/internal/matrix"
)

// NetworkState holds the activations of one forward pass.
//
// Produced by Network.ForwardPropagate and treated as read-only afterward.
type NetworkState struct {
	Input  *matrix.Matrix   // The input row vector as passed in.
	Hidden []*matrix.Matrix // Post-activation output of each hidden layer.
	Output *matrix.Matrix   // Post-activation output of the output layer.
}

// Gradients holds per-layer gradients, hidden layers first, then the output
// layer. Weights[i] has the shape of layer i's weights; Biases[i] the shape
// of its bias.
type Gradients struct {
	Weights []*matrix.Matrix
	Biases  []*matrix.Matrix
}

// Backpropagate returns the gradient of the squared error
// sum((output - target)²) with respect to each layer's weights.
//
// See BackpropagateFull for the error conditions.
func (s *NetworkState) Backpropagate(net *Network, target *matrix.Matrix, derivative Activation) ([]*matrix.Matrix, error) {
	grads, err := s.BackpropagateFull(net, target, derivative)
	if err != nil {
		return nil, err
	}
	return grads.Weights, nil
}

// BackpropagateFull computes weight and bias gradients of the squared error
// by reverse-mode accumulation through the captured activations.
//
// derivative must be the derivative of the activation used for the forward
// pass, expressed in terms of the activated output (see ReLUDerivative).
//
// Returns ErrTargetSizeMismatch if target is not shaped like the output, and
// ErrStateMismatch if s was not produced by a network with net's topology.
func (s *NetworkState) BackpropagateFull(net *Network, target *matrix.Matrix, derivative Activation) (*Gradients, error) {
	if derivative == nil {
		return nil, ErrNilActivation
	}
	if err := s.check(net); err != nil {
		return nil, err
	}
	if target == nil || !target.SameShape(s.Output) {
		return nil, fmt.Errorf("%w: expected [1,%d]", ErrTargetSizeMismatch, net.OutputSize())
	}

	layers := net.Layers()
	// activations[i] is the input of layers[i]; the last entry is the output.
	activations := make([]*matrix.Matrix, 0, len(layers)+1)
	activations = append(activations, s.Input)
	activations = append(activations, s.Hidden...)
	activations = append(activations, s.Output)

	grads := &Gradients{
		Weights: make([]*matrix.Matrix, len(layers)),
		Biases:  make([]*matrix.Matrix, len(layers)),
	}

	// dL/da for L = sum((a - y)²) is 2(a - y).
	delta := s.Output.Subtract(target).Scale(2).Hadamard(s.Output.Apply(derivative))
	for i := len(layers) - 1; i >= 0; i-- {
		grads.Weights[i] = activations[i].Transpose().Multiply(delta)
		grads.Biases[i] = delta

		if i > 0 {
			delta = delta.Multiply(layers[i].Weights().Transpose()).
				Hadamard(activations[i].Apply(derivative))
		}
	}

	return grads, nil
}

func (s *NetworkState) check(net *Network) error {
	if s.Input == nil || s.Output == nil {
		return fmt.Errorf("%w: incomplete state", ErrStateMismatch)
	}
	if len(s.Hidden) != len(net.hidden) {
		return fmt.Errorf("%w: %d hidden activations for %d hidden layers",
			ErrStateMismatch, len(s.Hidden), len(net.hidden))
	}
	if s.Input.Rows() != 1 || s.Input.Cols() != net.inputSize {
		return fmt.Errorf("%w: input [%d,%d]", ErrStateMismatch, s.Input.Rows(), s.Input.Cols())
	}
	for i, h := range s.Hidden {
		if h == nil || h.Rows() != 1 || h.Cols() != net.hidden[i].OutFeatures() {
			return fmt.Errorf("%w: hidden activation %d", ErrStateMismatch, i)
		}
	}
	if s.Output.Rows() != 1 || s.Output.Cols() != net.OutputSize() {
		return fmt.Errorf("%w: output [%d,%d]", ErrStateMismatch, s.Output.Rows(), s.Output.Cols())
	}
	return nil
}
