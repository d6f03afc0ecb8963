package payload

import "errors"

// Sentinel errors for the closed set of failure kinds builders report.
// Callers match them with errors.Is; the wrapped message names the offending
// parameter and the constraint it violated.
var (
	// ErrInvalidParameter reports a parameter outside its documented range.
	ErrInvalidParameter = errors.New("invalid parameter")

	// ErrInvalidSelector reports a dunder target outside the catalog.
	ErrInvalidSelector = errors.New("invalid dunder target")

	// ErrUnknownMode reports a malformation mode outside the catalog.
	ErrUnknownMode = errors.New("unknown malformation mode")

	// ErrIO wraps filesystem failures while writing artifacts.
	ErrIO = errors.New("io failure")
)
