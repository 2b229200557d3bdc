package t2048

import "errors"

// Sentinel errors for the t2048 package.
var (
	ErrInvalidDirection = errors.New("t2048: invalid direction")
	ErrInvalidRules     = errors.New("t2048: invalid rules")
)
