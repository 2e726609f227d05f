package schema_test

import (
	"fmt"
	"reflect"
	"strconv"

	"github.com/aretw0/typedef/pkg/schema"
)

// Minimal definitions so these tests do not depend on the builtin catalogue.

var integer = schema.NewScalar("Integer", func(r *schema.Rules) {
	r.Validate(func(v any) bool {
		_, ok := v.(int)
		return ok
	})
	r.Cast(func(v any) (any, error) {
		switch x := v.(type) {
		case int:
			return x, nil
		case string:
			return strconv.Atoi(x)
		default:
			return nil, fmt.Errorf("cannot convert %T to int", v)
		}
	})
})

var str = schema.NewScalar("String", func(r *schema.Rules) {
	r.Validate(func(v any) bool {
		_, ok := v.(string)
		return ok
	})
	r.Cast(func(v any) (any, error) {
		if v == nil {
			return nil, fmt.Errorf("cannot convert nil to string")
		}
		return fmt.Sprint(v), nil
	})
})

var array = schema.NewCollection("Array", func(r *schema.Rules) {
	r.Validate(func(v any) bool {
		k := reflect.ValueOf(v).Kind()
		return k == reflect.Slice || k == reflect.Array
	})
	r.Cast(func(v any) (any, error) {
		k := reflect.ValueOf(v).Kind()
		if k == reflect.Slice || k == reflect.Array {
			return v, nil
		}
		items, _ := schema.Elements(v)
		return items, nil
	})
})

var hash = schema.NewCollection("Hash", func(r *schema.Rules) {
	r.Validate(func(v any) bool {
		return reflect.ValueOf(v).Kind() == reflect.Map
	})
	r.Cast(func(v any) (any, error) {
		if reflect.ValueOf(v).Kind() == reflect.Map {
			return v, nil
		}
		items, _ := schema.Elements(v)
		out := make(map[any]any, len(items))
		for _, item := range items {
			pair, ok := item.([]any)
			if !ok || len(pair) != 2 {
				return nil, fmt.Errorf("%#v is not a pair", item)
			}
			out[pair[0]] = pair[1]
		}
		return out, nil
	})
})

// bag is a non-slice container used to exercise schema.Iterable.
type bag struct{ items []any }

func (b bag) Elements() []any { return append([]any(nil), b.items...) }
