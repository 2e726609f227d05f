/*
Package typedef is a composable type-definition engine.

A type definition validates whether an arbitrary value conforms to it and
casts convertible values into conforming ones. Definitions are built from an
ordered chain of validators and casters, refined into children that inherit
that chain, made nilable, and composed into collections whose elements are
themselves constrained by definitions.

# Concept

The core lives in package schema. Package builtin provides a catalogue of
ready-made definitions (Integer, Int32, Float, String, Array, Hash, Set and
friends), and package registry maps names to definitions and resolves type
expressions:

	Integer
	String?
	Array(Integer)
	Hash(String=>Array(Float)?)

Catalog bundles a registry with logging and optional Prometheus metrics.

# Usage

	cat, err := typedef.New()
	if err != nil {
		log.Fatal(err)
	}

	ok, _ := cat.Valid("Hash(String=>Integer)", map[string]any{"a": 1}) // true

	out, err := cat.Cast("Array(Int32)", []string{"1", "2"})
	// out == []any{int64(1), int64(2)}

	_, err = cat.Cast("Int32", "2147483648")
	var ce *schema.CastError
	errors.As(err, &ce) // ce.Input == "2147483648", ce.Definition is Int32

Casting failures are always *schema.CastError values; errors.Is(err,
schema.ErrCast) matches all of them and schema.CastErrors walks the chain from
a collection down to the element definition that rejected its input.
*/
package typedef
