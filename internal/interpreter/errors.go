package interpreter

import "errors"

// Errors returned while loading and walking a route. Check them with errors.Is.
var (
	// ErrMalformedInstruction is returned when a token does not start with L or R.
	ErrMalformedInstruction = errors.New("malformed instruction")

	// ErrInvalidStepCount is returned when the part after the turn letter is
	// not a non-negative decimal integer.
	ErrInvalidStepCount = errors.New("invalid step count")

	// ErrInvalidHeading is returned for a heading outside North..West.
	ErrInvalidHeading = errors.New("invalid heading")
)
