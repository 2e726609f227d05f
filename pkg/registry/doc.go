// Package registry maps names to type definitions and resolves type expressions.
//
// A registry is an explicit value; nothing is registered globally. Expressions
// name registered definitions, constrain collections with parentheses and mark
// nilable definitions with a trailing question mark:
//
//	reg := builtin.Registry()
//	env, _ := reg.Find("Hash(String=>Integer?)")
//	env.Valid(map[string]any{"retries": 3, "timeout": nil}) // true
package registry
