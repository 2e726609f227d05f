package schema

import "reflect"

// Nilable accepts nil as-is and delegates everything else to the wrapped definition.
type Nilable struct {
	of Definition
}

// NewNilable wraps d. Wrapping a definition that is already nilable returns it unchanged.
func NewNilable(d Definition) Definition {
	if d.IsNilable() {
		return d
	}
	return &Nilable{of: d}
}

// IsAbsent reports whether input is nil or a nil pointer.
func IsAbsent(input any) bool {
	if input == nil {
		return true
	}
	rv := reflect.ValueOf(input)
	return rv.Kind() == reflect.Pointer && rv.IsNil()
}

func (n *Nilable) Name() string { return "" }

func (n *Nilable) String() string { return n.of.String() + "?" }

func (n *Nilable) Valid(input any) bool {
	return IsAbsent(input) || n.of.Valid(input)
}

// Cast passes absent input through and delegates the rest to the wrapped
// definition. Failures are reported against n, with the wrapped definition's
// error as the cause.
func (n *Nilable) Cast(input any) (any, error) {
	if IsAbsent(input) {
		return input, nil
	}
	out, err := n.of.Cast(input)
	if err != nil {
		return nil, &CastError{Input: input, Definition: n, Cause: err}
	}
	return out, nil
}

func (n *Nilable) Nilable() Definition { return n }

func (n *Nilable) IsNilable() bool { return true }

// Refine refines the wrapped definition and keeps the result nilable.
func (n *Nilable) Refine(name string, configure func(*Rules)) Definition {
	return NewNilable(n.of.Refine(name, configure))
}

// Wrapped returns the non-nilable definition.
func (n *Nilable) Wrapped() Definition { return n.of }
