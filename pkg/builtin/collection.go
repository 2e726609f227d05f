package builtin

import (
	"fmt"
	"reflect"

	"github.com/aretw0/typedef/pkg/schema"
)

// Array accepts any slice or array. Other iterables cast to []any; maps
// become []any{key, value} pairs.
var Array = schema.NewCollection("Array", func(r *schema.Rules) {
	r.Validate(isSequence)
	r.Cast(func(v any) (any, error) {
		if isSequence(v) {
			return v, nil
		}
		items, _ := schema.Elements(v)
		return items, nil
	})
})

// Hash accepts any map. Iterables of two-element pairs cast to map[any]any.
var Hash = schema.NewCollection("Hash", func(r *schema.Rules) {
	r.Validate(isMap)
	r.Cast(func(v any) (any, error) {
		if isMap(v) {
			return v, nil
		}
		return pairsToMap(v)
	})
})

// Set accepts HashSet values. Other iterables cast to a HashSet of their elements.
var Set = schema.NewCollection("Set", func(r *schema.Rules) {
	r.Validate(func(v any) bool {
		_, ok := v.(HashSet)
		return ok
	})
	r.Cast(func(v any) (any, error) {
		if s, ok := v.(HashSet); ok {
			return s, nil
		}
		items, _ := schema.Elements(v)
		return NewSet(items...)
	})
})

func isSequence(v any) bool {
	k := reflect.ValueOf(v).Kind()
	return k == reflect.Slice || k == reflect.Array
}

func isMap(v any) bool {
	return reflect.ValueOf(v).Kind() == reflect.Map
}

func pairsToMap(v any) (map[any]any, error) {
	items, ok := schema.Elements(v)
	if !ok {
		return nil, schema.ErrNotIterable
	}

	out := make(map[any]any, len(items))
	for i, item := range items {
		if isMap(item) {
			return nil, &schema.ElementError{Position: i, Err: schema.ErrNotTuple}
		}
		pair, ok := schema.Elements(item)
		if !ok || len(pair) != 2 {
			return nil, &schema.ElementError{Position: i, Err: fmt.Errorf("%w: want a key/value pair", schema.ErrNotTuple)}
		}
		if !hashable(pair[0]) {
			return nil, &schema.ElementError{Position: i, Err: fmt.Errorf("%w: %T", ErrUnhashable, pair[0])}
		}
		out[pair[0]] = pair[1]
	}
	return out, nil
}
