package model

import "errors"

// Sentinel errors shared by the model, the collection store and the
// command dispatcher. Callers classify failures with errors.Is.
var (
	// ErrInvalidArgument is returned for out-of-range ratings and for
	// malformed input such as an unparsable date.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrNotFound is returned when an operation targets an album that is
	// not in the collection.
	ErrNotFound = errors.New("not found")
)
