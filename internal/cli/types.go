package cli

import (
	"fmt"
	"math/big"
	"regexp"
	"slices"
	"unicode/utf8"

	"github.com/spf13/cast"

	"github.com/aretw0/typedef"
	"github.com/aretw0/typedef/internal/config"
	"github.com/aretw0/typedef/pkg/schema"
)

// DefineTypes registers the refinements declared in the configuration, in order,
// so later entries may refine earlier ones.
func DefineTypes(cat *typedef.Catalog, specs []config.TypeSpec) error {
	for _, spec := range specs {
		configure, err := rulesFor(spec)
		if err != nil {
			return fmt.Errorf("type %s: %w", spec.Name, err)
		}
		if _, err := cat.Refine(spec.From, spec.Name, configure); err != nil {
			return fmt.Errorf("type %s: %w", spec.Name, err)
		}
	}
	return nil
}

func rulesFor(spec config.TypeSpec) (func(*schema.Rules), error) {
	var validators []schema.Validator

	if spec.Min != nil || spec.Max != nil {
		validators = append(validators, between(spec.Min, spec.Max))
	}
	if len(spec.OneOf) > 0 {
		allowed := slices.Clone(spec.OneOf)
		validators = append(validators, func(v any) bool {
			return slices.Contains(allowed, fmt.Sprint(v))
		})
	}
	if spec.Pattern != "" {
		re, err := regexp.Compile(spec.Pattern)
		if err != nil {
			return nil, fmt.Errorf("pattern: %w", err)
		}
		validators = append(validators, func(v any) bool {
			s, ok := v.(string)
			return ok && re.MatchString(s)
		})
	}

	return func(r *schema.Rules) {
		r.Validate(validators...)
	}, nil
}

// between bounds numbers by value and strings and collections by length.
func between(lo, hi *float64) schema.Validator {
	return func(v any) bool {
		n, ok := measure(v)
		if !ok {
			return false
		}
		return (lo == nil || n >= *lo) && (hi == nil || n <= *hi)
	}
}

func measure(v any) (float64, bool) {
	switch x := v.(type) {
	case nil, bool:
		return 0, false
	case string:
		return float64(utf8.RuneCountInString(x)), true
	case *big.Int:
		f, _ := new(big.Float).SetInt(x).Float64()
		return f, true
	}
	if items, ok := schema.Elements(v); ok {
		return float64(len(items)), true
	}
	f, err := cast.ToFloat64E(v)
	return f, err == nil
}
