package builtin

import (
	"encoding/json"
	"fmt"
	"reflect"
	"slices"
	"strings"
)

// HashSet is an immutable, unordered collection of distinct comparable values.
// It implements schema.Iterable.
type HashSet struct {
	items map[any]struct{}
}

// NewSet builds a set from items, dropping duplicates.
func NewSet(items ...any) (HashSet, error) {
	s := HashSet{items: make(map[any]struct{}, len(items))}
	for _, item := range items {
		if !hashable(item) {
			return HashSet{}, fmt.Errorf("%w: %T", ErrUnhashable, item)
		}
		s.items[item] = struct{}{}
	}
	return s, nil
}

// MustSet is like NewSet but panics on unhashable items.
func MustSet(items ...any) HashSet {
	s, err := NewSet(items...)
	if err != nil {
		panic(err)
	}
	return s
}

// Len returns the number of members.
func (s HashSet) Len() int { return len(s.items) }

// Has reports whether v is a member.
func (s HashSet) Has(v any) bool {
	if !hashable(v) {
		return false
	}
	_, ok := s.items[v]
	return ok
}

// Elements returns the members in no particular order.
func (s HashSet) Elements() []any {
	out := make([]any, 0, len(s.items))
	for item := range s.items {
		out = append(out, item)
	}
	return out
}

// Equal reports whether both sets hold the same members.
func (s HashSet) Equal(other HashSet) bool {
	if s.Len() != other.Len() {
		return false
	}
	for item := range s.items {
		if _, ok := other.items[item]; !ok {
			return false
		}
	}
	return true
}

// sorted returns the members ordered by their formatted form, for stable output.
func (s HashSet) sorted() []any {
	out := s.Elements()
	slices.SortFunc(out, func(a, b any) int {
		return strings.Compare(fmt.Sprint(a), fmt.Sprint(b))
	})
	return out
}

func (s HashSet) String() string {
	parts := make([]string, 0, s.Len())
	for _, item := range s.sorted() {
		parts = append(parts, fmt.Sprintf("%#v", item))
	}
	return "Set{" + strings.Join(parts, ", ") + "}"
}

// MarshalJSON encodes the set as an array.
func (s HashSet) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.sorted())
}

// MarshalYAML encodes the set as a sequence.
func (s HashSet) MarshalYAML() (any, error) {
	return s.sorted(), nil
}

// hashable reports whether v can be used as a map key without panicking.
// Comparable types may still hold slices, maps or funcs behind interfaces.
func hashable(v any) bool {
	return hashableValue(reflect.ValueOf(v))
}

func hashableValue(rv reflect.Value) bool {
	switch rv.Kind() {
	case reflect.Invalid:
		return true
	case reflect.Interface:
		return rv.IsNil() || hashableValue(rv.Elem())
	case reflect.Slice, reflect.Map, reflect.Func:
		return false
	case reflect.Array:
		for i := range rv.Len() {
			if !hashableValue(rv.Index(i)) {
				return false
			}
		}
	case reflect.Struct:
		for i := range rv.NumField() {
			if !hashableValue(rv.Field(i)) {
				return false
			}
		}
	}
	return true
}
