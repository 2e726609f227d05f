package schema

import (
	"fmt"
	"reflect"
	"slices"
	"strings"
)

// Constrained is a collection whose elements must satisfy element definitions.
//
// With one constraint every element is validated and cast by it. With N
// constraints every element is an N-tuple and component k is handled by
// constraint k; map entries are (key, value) pairs, so a two-constraint Hash
// constrains keys and values. Shorter tuples are padded with nil components,
// longer ones are rejected. Casting a map fails when two distinct keys cast
// to the same key.
//
// The element rules run before the base collection's own rules.
type Constrained struct {
	name        string
	base        Definition
	constraints []Definition
	chain       Rules
}

func constrain(base Definition, inherited Rules, constraints []Definition) *Constrained {
	if len(constraints) == 0 {
		panic("schema: a constrained collection needs at least one constraint")
	}

	c := &Constrained{
		base:        base,
		constraints: slices.Clone(constraints),
	}
	var own Rules
	own.Validate(c.validEach)
	own.Cast(c.castEach)
	c.chain = build(own, inherited, nil)
	c.name = constrainedName(base, c.constraints)
	return c
}

func constrainedName(base Definition, constraints []Definition) string {
	names := make([]string, len(constraints))
	for i, d := range constraints {
		names[i] = d.String()
	}
	return fmt.Sprintf("%s(%s)", base, strings.Join(names, "=>"))
}

func (c *Constrained) Name() string { return c.name }

func (c *Constrained) String() string { return c.name }

func (c *Constrained) Valid(input any) bool { return validIterable(c.chain, input) }

func (c *Constrained) Cast(input any) (any, error) { return castIterable(c, c.chain, input) }

func (c *Constrained) Nilable() Definition { return NewNilable(c) }

func (c *Constrained) IsNilable() bool { return false }

// Refine returns a plain collection that inherits the element rules.
func (c *Constrained) Refine(name string, configure func(*Rules)) Definition {
	return &Collection{name: name, chain: build(Rules{}, c.chain, configure)}
}

// Of constrains the collection again; both sets of constraints apply.
func (c *Constrained) Of(constraints ...Definition) *Constrained {
	return constrain(c, c.chain, constraints)
}

// Base returns the collection that was constrained.
func (c *Constrained) Base() Definition { return c.base }

// Constraints returns the element definitions in positional order.
func (c *Constrained) Constraints() []Definition { return slices.Clone(c.constraints) }

// Arity returns the number of components each element is split into.
func (c *Constrained) Arity() int { return len(c.constraints) }

// --- validation ---

func (c *Constrained) validEach(input any) bool {
	items, ok := Elements(input)
	if !ok {
		return false
	}
	for _, item := range items {
		if !c.validElement(item) {
			return false
		}
	}
	return true
}

func (c *Constrained) validElement(item any) bool {
	if len(c.constraints) == 1 {
		return c.constraints[0].Valid(item)
	}
	parts, err := c.components(item)
	if err != nil {
		return false
	}
	for i, d := range c.constraints {
		if !d.Valid(parts[i]) {
			return false
		}
	}
	return true
}

// components splits a tuple-shaped element into exactly Arity parts.
func (c *Constrained) components(item any) ([]any, error) {
	if reflect.ValueOf(item).Kind() == reflect.Map {
		return nil, ErrNotTuple
	}
	parts, ok := Elements(item)
	if !ok {
		return nil, ErrNotTuple
	}
	if len(parts) > len(c.constraints) {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrArityMismatch, len(parts), len(c.constraints))
	}
	for len(parts) < len(c.constraints) {
		parts = append(parts, nil)
	}
	return parts, nil
}

// --- casting ---

func (c *Constrained) castEach(input any) (any, error) {
	if _, ok := input.(Iterable); !ok {
		rv := reflect.ValueOf(input)
		switch rv.Kind() {
		case reflect.Map:
			return c.castMap(rv)
		case reflect.Slice, reflect.Array:
			return c.castSequence(rv)
		}
	}

	items, ok := Elements(input)
	if !ok {
		return nil, ErrNotIterable
	}
	out := make([]any, len(items))
	for i, item := range items {
		v, err := c.castElement(item)
		if err != nil {
			return nil, &ElementError{Position: i, Err: err}
		}
		out[i] = v
	}
	return out, nil
}

func (c *Constrained) castElement(item any) (any, error) {
	if len(c.constraints) == 1 {
		return c.constraints[0].Cast(item)
	}
	parts, err := c.components(item)
	if err != nil {
		return nil, err
	}
	out := make([]any, len(parts))
	for i, d := range c.constraints {
		v, err := d.Cast(parts[i])
		if err != nil {
			return nil, &ElementError{Position: i, Err: err}
		}
		out[i] = v
	}
	return out, nil
}

// castSequence casts a slice or array. The result keeps the input's type when
// every cast element still fits it, otherwise it is a []any.
func (c *Constrained) castSequence(rv reflect.Value) (any, error) {
	if rv.Kind() == reflect.Slice && rv.IsNil() {
		return rv.Interface(), nil
	}

	out := make([]any, rv.Len())
	for i := range out {
		v, err := c.castElement(rv.Index(i).Interface())
		if err != nil {
			return nil, &ElementError{Position: i, Err: err}
		}
		out[i] = v
	}

	typ := rv.Type()
	for _, v := range out {
		if !fits(v, typ.Elem()) {
			return out, nil
		}
	}
	var dst reflect.Value
	if typ.Kind() == reflect.Array {
		dst = reflect.New(typ).Elem()
	} else {
		dst = reflect.MakeSlice(typ, len(out), len(out))
	}
	for i, v := range out {
		dst.Index(i).Set(valueFor(v, typ.Elem()))
	}
	return dst.Interface(), nil
}

// castMap casts a map. Two constraints cast keys and values and produce a map,
// of the input's type when the results fit it and map[any]any otherwise. Two
// keys that cast to the same key fail with ErrKeyCollision. Any other arity
// treats entries as pairs and produces a []any.
func (c *Constrained) castMap(rv reflect.Value) (any, error) {
	keys := sortedKeys(rv)

	if len(c.constraints) != 2 {
		out := make([]any, len(keys))
		for i, k := range keys {
			v, err := c.castElement([]any{k.Interface(), rv.MapIndex(k).Interface()})
			if err != nil {
				return nil, &ElementError{Position: k.Interface(), Err: err}
			}
			out[i] = v
		}
		return out, nil
	}

	if rv.IsNil() {
		return rv.Interface(), nil
	}

	type entry struct{ from, key, value any }
	entries := make([]entry, len(keys))
	typ := rv.Type()
	keep := true
	for i, k := range keys {
		key, err := c.constraints[0].Cast(k.Interface())
		if err != nil {
			return nil, &ElementError{Position: k.Interface(), Err: &ElementError{Position: 0, Err: err}}
		}
		value, err := c.constraints[1].Cast(rv.MapIndex(k).Interface())
		if err != nil {
			return nil, &ElementError{Position: k.Interface(), Err: &ElementError{Position: 1, Err: err}}
		}
		entries[i] = entry{k.Interface(), key, value}
		keep = keep && fits(key, typ.Key()) && fits(value, typ.Elem())
	}

	if !keep {
		typ = reflect.TypeFor[map[any]any]()
	}
	dst := reflect.MakeMapWithSize(typ, len(entries))
	for _, e := range entries {
		key := valueFor(e.key, typ.Key())
		if dst.MapIndex(key).IsValid() {
			return nil, &ElementError{Position: e.from, Err: fmt.Errorf("%w: %#v", ErrKeyCollision, e.key)}
		}
		dst.SetMapIndex(key, valueFor(e.value, typ.Elem()))
	}
	return dst.Interface(), nil
}

func fits(v any, typ reflect.Type) bool {
	if v == nil {
		switch typ.Kind() {
		case reflect.Interface, reflect.Pointer, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func:
			return true
		default:
			return false
		}
	}
	return reflect.TypeOf(v).AssignableTo(typ)
}

func valueFor(v any, typ reflect.Type) reflect.Value {
	if v == nil {
		return reflect.Zero(typ)
	}
	return reflect.ValueOf(v)
}
