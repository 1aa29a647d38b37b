package nn

import (
	"fmt"
	"math"
	"strings"
)

// Activation is an element-wise function applied after each layer.
type Activation func(float64) float64

// Derivatives below take the activated output a = f(z) rather than z. For
// every activation here f'(z) is a function of f(z), so NetworkState only
// needs to keep post-activation values.

// ReLU returns max(x, 0).
func ReLU(x float64) float64 {
	if x > 0 {
		return x
	}
	return 0
}

// ReLUDerivative returns 1 where the activated output is positive, 0 otherwise.
func ReLUDerivative(a float64) float64 {
	if a > 0 {
		return 1
	}
	return 0
}

// Sigmoid returns 1 / (1 + exp(-x)).
func Sigmoid(x float64) float64 {
	return 1 / (1 + math.Exp(-x))
}

// SigmoidDerivative returns a * (1 - a).
func SigmoidDerivative(a float64) float64 {
	return a * (1 - a)
}

// Tanh returns the hyperbolic tangent of x.
func Tanh(x float64) float64 {
	return math.Tanh(x)
}

// TanhDerivative returns 1 - a².
func TanhDerivative(a float64) float64 {
	return 1 - a*a
}

// Identity returns x unchanged.
func Identity(x float64) float64 {
	return x
}

// IdentityDerivative always returns 1.
func IdentityDerivative(float64) float64 {
	return 1
}

type activationPair struct {
	fn, derivative Activation
}

var activationsByName = map[string]activationPair{
	"relu":     {ReLU, ReLUDerivative},
	"sigmoid":  {Sigmoid, SigmoidDerivative},
	"tanh":     {Tanh, TanhDerivative},
	"identity": {Identity, IdentityDerivative},
}

// ActivationByName returns an activation and its derivative by
// case-insensitive name ("relu", "sigmoid", "tanh", "identity").
func ActivationByName(name string) (fn, derivative Activation, err error) {
	pair, ok := activationsByName[strings.ToLower(name)]
	if !ok {
		return nil, nil, fmt.Errorf("%w: %q", ErrUnknownActivation, name)
	}
	return pair.fn, pair.derivative, nil
}
