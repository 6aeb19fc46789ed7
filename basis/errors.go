package basis

import "errors"

var (
	// ErrInvalidParameter reports malformed construction arguments or a
	// non-positive grid scale. All wrapped instances name the offending value.
	ErrInvalidParameter = errors.New("basis: invalid parameter")

	// ErrValidation reports sub-bases whose intervals do not tile a
	// contiguous domain. Wrapped instances name the offending pair of
	// indices and their boundary values.
	ErrValidation = errors.New("basis: validation failed")
)
