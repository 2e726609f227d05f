package schema

import (
	"cmp"
	"fmt"
	"reflect"
	"slices"
)

// Iterable is implemented by containers that are not Go slices, arrays or maps.
type Iterable interface {
	Elements() []any
}

// IsIterable reports whether input can be walked element by element:
// slices, arrays, maps and Iterable values. Strings are not iterable.
func IsIterable(input any) bool {
	if _, ok := input.(Iterable); ok {
		return true
	}
	switch reflect.ValueOf(input).Kind() {
	case reflect.Slice, reflect.Array, reflect.Map:
		return true
	default:
		return false
	}
}

// Elements returns the elements of an iterable input. Map entries are
// returned as []any{key, value} pairs, ordered by key.
func Elements(input any) ([]any, bool) {
	if it, ok := input.(Iterable); ok {
		return it.Elements(), true
	}

	rv := reflect.ValueOf(input)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		items := make([]any, rv.Len())
		for i := range items {
			items[i] = rv.Index(i).Interface()
		}
		return items, true
	case reflect.Map:
		keys := sortedKeys(rv)
		items := make([]any, len(keys))
		for i, k := range keys {
			items[i] = []any{k.Interface(), rv.MapIndex(k).Interface()}
		}
		return items, true
	default:
		return nil, false
	}
}

func sortedKeys(m reflect.Value) []reflect.Value {
	keys := m.MapKeys()
	slices.SortFunc(keys, compareKeys)
	return keys
}

func compareKeys(a, b reflect.Value) int {
	if a.Kind() == reflect.Interface {
		a = a.Elem()
	}
	if b.Kind() == reflect.Interface {
		b = b.Elem()
	}
	switch {
	case a.Kind() == reflect.String && b.Kind() == reflect.String:
		return cmp.Compare(a.String(), b.String())
	case a.CanInt() && b.CanInt():
		return cmp.Compare(a.Int(), b.Int())
	case a.CanUint() && b.CanUint():
		return cmp.Compare(a.Uint(), b.Uint())
	case a.CanFloat() && b.CanFloat():
		return cmp.Compare(a.Float(), b.Float())
	}
	return cmp.Compare(keyString(a), keyString(b))
}

func keyString(v reflect.Value) string {
	if !v.IsValid() {
		return ""
	}
	return fmt.Sprintf("%s:%v", v.Type(), v.Interface())
}

// --- Collection ---

// Collection is a definition for iterable containers. Inputs that are not
// iterable are rejected before the rule chain is consulted.
type Collection struct {
	name  string
	chain Rules
}

// NewCollection creates a collection definition; see NewScalar.
func NewCollection(name string, configure func(*Rules)) *Collection {
	return &Collection{name: name, chain: build(Rules{}, Rules{}, configure)}
}

func (c *Collection) Name() string { return c.name }

func (c *Collection) String() string { return displayName(c.name, "collection") }

func (c *Collection) Valid(input any) bool { return validIterable(c.chain, input) }

func (c *Collection) Cast(input any) (any, error) { return castIterable(c, c.chain, input) }

func (c *Collection) Nilable() Definition { return NewNilable(c) }

func (c *Collection) IsNilable() bool { return false }

func (c *Collection) Refine(name string, configure func(*Rules)) Definition {
	return c.Extend(name, configure)
}

// Extend is Refine with a concrete result, so the child can still be constrained.
func (c *Collection) Extend(name string, configure func(*Rules)) *Collection {
	return &Collection{name: name, chain: build(Rules{}, c.chain, configure)}
}

// Of constrains the elements of the collection; see Constrained.
func (c *Collection) Of(constraints ...Definition) *Constrained {
	return constrain(c, c.chain, constraints)
}

// Constrain is an alias for Of.
func (c *Collection) Constrain(constraints ...Definition) *Constrained {
	return c.Of(constraints...)
}

// Rules returns a copy of the effective chain.
func (c *Collection) Rules() Rules { return c.chain.clone() }

func validIterable(chain Rules, input any) bool {
	return IsIterable(input) && chain.valid(input)
}

func castIterable(def Definition, chain Rules, input any) (any, error) {
	if !IsIterable(input) {
		return nil, &CastError{Input: input, Definition: def, Cause: ErrNotIterable}
	}
	return castWith(def, chain, input)
}
