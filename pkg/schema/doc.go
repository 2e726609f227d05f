// Package schema is a composable type-definition engine.
//
// A Definition validates arbitrary values and casts convertible values into
// valid ones. Behavior lives in an ordered rule chain of validators and
// casters, declared once when the definition is built:
//
//	integer := schema.NewScalar("Integer", func(r *schema.Rules) {
//	    r.Validate(func(v any) bool { _, ok := v.(int); return ok })
//	    r.Cast(func(v any) (any, error) { return strconv.Atoi(fmt.Sprint(v)) })
//	})
//
// Refine derives a child definition whose chain is a snapshot of the
// parent's chain followed by the child's own rules:
//
//	port := integer.Refine("Port", func(r *schema.Rules) {
//	    r.Validate(func(v any) bool { p := v.(int); return p > 0 && p < 1<<16 })
//	})
//
// Cast folds the input through every caster and re-validates the result, so
// a successful cast is always valid. Validators that panic simply fail;
// casters that fail or panic surface as a *CastError carrying the input, the
// definition and the cause.
//
// Four variants implement Definition:
//
//   - Scalar: the plain rule chain.
//   - Nilable: accepts nil untouched, delegates everything else.
//   - Collection: requires an iterable input (slice, array, map or Iterable).
//   - Constrained: a collection whose elements, or the components of tuple
//     elements such as map entries, satisfy element definitions.
//
//	tags := array.Of(str)               // Array(String)
//	env := hash.Of(str, integer.Nilable()) // Hash(String=>Integer?)
//
// Definitions are immutable once built and safe for concurrent use. The
// package has no dependencies beyond the Go standard library; the builtin
// catalogue and the name registry live in sibling packages.
package schema
