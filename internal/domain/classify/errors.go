package classify

import (
	"errors"
)

// Sentinel error kinds for this package. These allow errors.Is/As from callers.
var (
	ErrNoScoredSteps = errors.New("no scored steps")
	ErrUnknownLayer  = errors.New("unknown layer")
)
