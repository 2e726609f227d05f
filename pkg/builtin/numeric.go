package builtin

import (
	"encoding/json"
	"fmt"
	"math"
	"math/big"
	"reflect"
	"strconv"
	"strings"

	"github.com/spf13/cast"

	"github.com/aretw0/typedef/pkg/schema"
)

func isInteger(v any) bool {
	if n, ok := v.(*big.Int); ok {
		return n != nil
	}
	rv := reflect.ValueOf(v)
	return rv.CanInt() || rv.CanUint()
}

func isFloat(v any) bool {
	return reflect.ValueOf(v).CanFloat()
}

// bigInt converts any integer kind to a *big.Int, or returns nil.
func bigInt(v any) *big.Int {
	if n, ok := v.(*big.Int); ok {
		return n
	}
	rv := reflect.ValueOf(v)
	switch {
	case rv.CanInt():
		return big.NewInt(rv.Int())
	case rv.CanUint():
		return new(big.Int).SetUint64(rv.Uint())
	default:
		return nil
	}
}

// smallest returns n as int64 or uint64 when it fits, else n itself.
func smallest(n *big.Int) any {
	switch {
	case n.IsInt64():
		return n.Int64()
	case n.IsUint64():
		return n.Uint64()
	default:
		return n
	}
}

// within validates integers in the half-open range [lo, hi).
func within(lo, hi *big.Int) schema.Validator {
	return func(v any) bool {
		n := bigInt(v)
		return n != nil && n.Cmp(lo) >= 0 && n.Cmp(hi) < 0
	}
}

// pow2 returns 2^exp, negated when neg is set.
func pow2(exp uint, neg bool) *big.Int {
	n := new(big.Int).Lsh(big.NewInt(1), exp)
	if neg {
		n.Neg(n)
	}
	return n
}

func castInteger(v any) (any, error) {
	switch x := v.(type) {
	case nil:
		return nil, ErrNilInput
	case bool:
		return nil, fmt.Errorf("%w: %T", ErrUnsupported, v)
	case *big.Int:
		if x == nil {
			return nil, ErrNilInput
		}
		return x, nil
	case string:
		return parseInteger(strings.TrimSpace(x))
	case json.Number:
		return parseInteger(x.String())
	}

	rv := reflect.ValueOf(v)
	switch {
	case rv.CanInt(), rv.CanUint():
		return v, nil
	case rv.CanFloat():
		return truncate(rv.Float())
	}

	n, err := cast.ToInt64E(v)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnsupported, err)
	}
	return n, nil
}

// parseInteger accepts Go integer literals only; "1.0" and "1e3" are rejected.
func parseInteger(s string) (any, error) {
	if n, err := strconv.ParseInt(s, 0, 64); err == nil {
		return n, nil
	}
	if u, err := strconv.ParseUint(s, 0, 64); err == nil {
		return u, nil
	}
	if n, ok := new(big.Int).SetString(s, 0); ok {
		return smallest(n), nil
	}
	return nil, fmt.Errorf("%w: %q is not an integer", ErrUnsupported, s)
}

func truncate(f float64) (any, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return nil, ErrNotFinite
	}
	n, _ := big.NewFloat(math.Trunc(f)).Int(nil)
	return smallest(n), nil
}

func castFloat(v any) (any, error) {
	switch x := v.(type) {
	case nil:
		return nil, ErrNilInput
	case bool:
		return nil, fmt.Errorf("%w: %T", ErrUnsupported, v)
	case *big.Int:
		if x == nil {
			return nil, ErrNilInput
		}
		f, _ := new(big.Float).SetInt(x).Float64()
		return f, nil
	case string:
		v = strings.TrimSpace(x)
	}

	rv := reflect.ValueOf(v)
	switch {
	case rv.CanFloat():
		return v, nil
	case rv.CanInt():
		return float64(rv.Int()), nil
	case rv.CanUint():
		return float64(rv.Uint()), nil
	}

	f, err := cast.ToFloat64E(v)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnsupported, err)
	}
	return f, nil
}

func finite(v any) bool {
	f := reflect.ValueOf(v).Float()
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

func fitsFloat32(v any) bool {
	return math.Abs(reflect.ValueOf(v).Float()) <= math.MaxFloat32
}
