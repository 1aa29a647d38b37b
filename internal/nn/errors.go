package nn

import "errors"

// Common errors.
var (
	ErrEmptyHidden        = errors.New("nn: at least one hidden layer is required")
	ErrInvalidLayerSize   = errors.New("nn: layer size must be > 0")
	ErrInputSizeMismatch  = errors.New("nn: input size mismatch")
	ErrTargetSizeMismatch = errors.New("nn: target size mismatch")
	ErrStateMismatch      = errors.New("nn: state does not match network")
	ErrLayerShapeMismatch = errors.New("nn: layer parameter shape mismatch")
	ErrNilActivation      = errors.New("nn: activation function is nil")
	ErrUnknownActivation  = errors.New("nn: unknown activation")
)
