package shapes

import (
	"errors"
	"fmt"
)

// ErrDimensionMismatch signals that operand shapes are not compatible with
// the requested operation.
var ErrDimensionMismatch = errors.New("dimension mismatch")

// ErrTooManyEntries signals that a shape spans more entries than int can
// address, e.g. when asked to densify a huge sparse matrix.
var ErrTooManyEntries = errors.New("too many entries")

// NegativeDimError signals a negative axis size.
type NegativeDimError struct {
	// Dim is the offending axis size.
	Dim int
}

func (e NegativeDimError) Error() string {
	return fmt.Sprintf("negative dimension %d not allowed", e.Dim)
}
