package matrix

import (
	"errors"
	"fmt"
)

// Common errors.
var (
	ErrBadShape          = errors.New("matrix: invalid shape")
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")
)

// mismatch panics with ErrDimensionMismatch wrapped in the operands' shapes.
// Shape mismatches between operands are programming errors: the caller built
// the operands and had every chance to check them.
func mismatch(op string, a, b *Matrix) {
	panic(fmt.Errorf("matrix: %s [%d,%d] vs [%d,%d]: %w", op, a.rows, a.cols, b.rows, b.cols, ErrDimensionMismatch))
}
