package schema

import (
	"errors"
	"fmt"
)

var (
	// ErrCast matches every *CastError via errors.Is.
	ErrCast = errors.New("cast failed")

	// ErrNotIterable is the cause when a collection receives a non-iterable input.
	ErrNotIterable = errors.New("input is not iterable")

	// ErrNotTuple is returned when a multi-constraint collection meets an element
	// that is not a sequence.
	ErrNotTuple = errors.New("element is not a tuple")

	// ErrArityMismatch is returned when a tuple has more components than constraints.
	ErrArityMismatch = errors.New("tuple has more components than constraints")

	// ErrKeyCollision is returned when two map keys cast to the same key.
	ErrKeyCollision = errors.New("cast keys collide")

	// ErrPanic wraps a panic recovered from a caster.
	ErrPanic = errors.New("caster panicked")
)

// CastError is the only error returned by Definition.Cast.
// Cause holds the caster failure or the *ValidationError of the cast result.
type CastError struct {
	Input      any
	Definition Definition
	Cause      error
}

func (e *CastError) Error() string {
	msg := fmt.Sprintf("could not cast %#v with %s", e.Input, e.Definition)
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

func (e *CastError) Unwrap() error { return e.Cause }

func (e *CastError) Is(target error) bool { return target == ErrCast }

// ValidationError reports a cast result that its own definition rejects.
type ValidationError struct {
	Input      any
	Definition Definition
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%#v is not valid %s", e.Input, e.Definition)
}

// ElementError locates a failure inside a collection. Position is the index
// for sequences, the key for maps and the component index inside tuples.
type ElementError struct {
	Position any
	Err      error
}

func (e *ElementError) Error() string {
	return fmt.Sprintf("element %#v: %v", e.Position, e.Err)
}

func (e *ElementError) Unwrap() error { return e.Err }

// CastErrors returns the chain of *CastError values in err, outermost first.
// The last entry is the innermost definition that rejected its input.
func CastErrors(err error) []*CastError {
	var chain []*CastError
	for err != nil {
		if ce, ok := err.(*CastError); ok {
			chain = append(chain, ce)
		}
		err = errors.Unwrap(err)
	}
	return chain
}
