package nn

import "fmt"

// Config describes the topology of a Network.
type Config struct {
	InputSize   int   // Width of the input row vector.
	HiddenSizes []int // Output width of each hidden layer, in order. Must be non-empty.
	OutputSize  int   // Width of the output row vector.
}

// DefaultConfig returns the topology of a flattened 28x28 image classifier:
// 784 inputs, two hidden layers of 16 units and 10 output classes.
func DefaultConfig() Config {
	return Config{
		InputSize:   28 * 28,
		HiddenSizes: []int{16, 16},
		OutputSize:  10,
	}
}

// Validate checks that the topology can be built.
func (c Config) Validate() error {
	if c.InputSize <= 0 {
		return fmt.Errorf("%w: input size %d", ErrInvalidLayerSize, c.InputSize)
	}
	if len(c.HiddenSizes) == 0 {
		return ErrEmptyHidden
	}
	for i, size := range c.HiddenSizes {
		if size <= 0 {
			return fmt.Errorf("%w: hidden layer %d has size %d", ErrInvalidLayerSize, i, size)
		}
	}
	if c.OutputSize <= 0 {
		return fmt.Errorf("%w: output size %d", ErrInvalidLayerSize, c.OutputSize)
	}
	return nil
}
