package builtin

import (
	"fmt"
	"math/big"

	"github.com/spf13/cast"

	"github.com/aretw0/typedef/pkg/schema"
)

// Integer accepts every Go integer kind and *big.Int.
var Integer = schema.NewScalar("Integer", func(r *schema.Rules) {
	r.Validate(isInteger)
	r.Cast(castInteger)
})

var (
	Int32  = Integer.Refine("Int32", bounded(pow2(31, true), pow2(31, false)))
	Int64  = Integer.Refine("Int64", bounded(pow2(63, true), pow2(63, false)))
	UInt32 = Integer.Refine("UInt32", bounded(new(big.Int), pow2(32, false)))
	UInt64 = Integer.Refine("UInt64", bounded(new(big.Int), pow2(64, false)))
)

func bounded(lo, hi *big.Int) func(*schema.Rules) {
	return func(r *schema.Rules) {
		r.Validate(within(lo, hi))
	}
}

// Float accepts float32 and float64, including NaN and infinities.
var Float = schema.NewScalar("Float", func(r *schema.Rules) {
	r.Validate(isFloat)
	r.Cast(castFloat)
})

var (
	Float32 = Float.Refine("Float32", func(r *schema.Rules) {
		r.Validate(finite, fitsFloat32)
	})
	Float64 = Float.Refine("Float64", func(r *schema.Rules) {
		r.Validate(finite)
	})
)

// Boolean accepts bool. Casting follows truthiness: nil and false are
// false, every other value is true.
var Boolean = schema.NewScalar("Boolean", func(r *schema.Rules) {
	r.Validate(func(v any) bool {
		_, ok := v.(bool)
		return ok
	})
	r.Cast(func(v any) (any, error) {
		if b, ok := v.(bool); ok {
			return b, nil
		}
		return !schema.IsAbsent(v), nil
	})
})

// String accepts string. Anything but nil casts to its formatted form.
var String = schema.NewScalar("String", func(r *schema.Rules) {
	r.Validate(func(v any) bool {
		_, ok := v.(string)
		return ok
	})
	r.Cast(castString)
})

func castString(v any) (any, error) {
	if schema.IsAbsent(v) {
		return nil, ErrNilInput
	}
	if s, err := cast.ToStringE(v); err == nil {
		return s, nil
	}
	return fmt.Sprint(v), nil
}
