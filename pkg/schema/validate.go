package schema

import "fmt"

// valid runs every validator. A panicking validator counts as a failure.
func (r Rules) valid(input any) (ok bool) {
	defer func() {
		if recover() != nil {
			ok = false
		}
	}()

	for _, fn := range r.validators {
		if !fn(input) {
			return false
		}
	}
	return true
}

// apply folds input through every caster, left to right.
func (r Rules) apply(input any) (out any, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			out, err = nil, fmt.Errorf("%w: %v", ErrPanic, rec)
		}
	}()

	out = input
	for _, fn := range r.casters {
		if out, err = fn(out); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// castWith applies chain to input and re-validates the result against def.
func castWith(def Definition, chain Rules, input any) (any, error) {
	out, err := chain.apply(input)
	if err != nil {
		return nil, &CastError{Input: input, Definition: def, Cause: err}
	}
	if !def.Valid(out) {
		return nil, &CastError{
			Input:      input,
			Definition: def,
			Cause:      &ValidationError{Input: out, Definition: def},
		}
	}
	return out, nil
}

// MustCast is like def.Cast but panics on failure.
// It is meant for package initialization with known-good literals.
func MustCast(def Definition, input any) any {
	out, err := def.Cast(input)
	if err != nil {
		panic(err)
	}
	return out
}

// AsFunc adapts d.Cast to a Caster, so a definition can sit in another chain.
func AsFunc(d Definition) Caster {
	return d.Cast
}
