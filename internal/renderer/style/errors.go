package style

import "errors"

var (
	// ErrRepresentationTooLong is returned when an invisible representation
	// exceeds MaxRepresentationBytes.
	ErrRepresentationTooLong = errors.New("invisible representation too long")

	// ErrUnknownCase is returned when a case-force name is not recognised.
	ErrUnknownCase = errors.New("unknown case force")
)
