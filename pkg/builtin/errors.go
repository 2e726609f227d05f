package builtin

import "errors"

var (
	// ErrNilInput is returned by casters that cannot convert nil.
	ErrNilInput = errors.New("nil input")

	// ErrUnsupported is returned when an input has no conversion.
	ErrUnsupported = errors.New("unsupported input")

	// ErrNotFinite is returned for NaN or infinite floats where a number is required.
	ErrNotFinite = errors.New("number is not finite")

	// ErrUnhashable is returned when a value cannot be a map key or set member.
	ErrUnhashable = errors.New("value is not hashable")
)
