package scoring

import (
	"errors"
)

// Sentinel error kinds for this package. These allow errors.Is/As from callers.
var (
	// ErrInvalidInput covers inputs the scorer cannot work with: no usable
	// steps after filtering, or a non-positive absolute-mode reference.
	ErrInvalidInput = errors.New("invalid input")
)
