// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package nn provides a feed-forward neural network built from fully
// connected layers.
//
// # Overview
//
// This package contains:
//   - Layer: weights + bias, y = activation(x @ W + b)
//   - Network: input -> hidden layers -> output, fixed topology
//   - NetworkState: activations captured during a forward pass
//   - Activations: ReLU, Sigmoid, Tanh, Identity and their derivatives
//   - Loss: SquaredError, MeanSquaredError
//
// # Basic Usage
//
//	import (
//	    "github.com/born-ml/mlp/matrix"
//	    "github.com/born-ml/mlp/nn"
//	)
//
//	func main() {
//	    net, err := nn.NewNetwork(784, []int{16, 16}, 10)
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    net.Randomize(matrix.NewRand(42))
//
//	    input := matrix.New(1, 784)
//	    output, err := net.Propagate(input, nn.ReLU)
//	}
//
// # Orientation
//
// Neurons are row vectors. A layer reading n features and producing m has
// weights shaped [n, m] and a bias shaped [1, m]. Network inputs must be
// shaped [1, InputSize()]; anything else returns ErrInputSizeMismatch.
//
// # Gradients
//
// ForwardPropagate returns a NetworkState. Its Backpropagate method computes
// the gradient of the summed squared error with respect to every layer's
// weights:
//
//	state, err := net.ForwardPropagate(input, nn.ReLU)
//	grads, err := state.Backpropagate(net, target, nn.ReLUDerivative)
package nn
