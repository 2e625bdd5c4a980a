package buffer

import "errors"

// Errors returned by buffer operations.
var (
	// ErrPositionOutOfRange indicates a position outside [0, Length()].
	ErrPositionOutOfRange = errors.New("position out of range")

	// ErrLengthNegative indicates a negative length was supplied.
	ErrLengthNegative = errors.New("negative length")
)
