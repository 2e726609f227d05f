package schema

import (
	"slices"
)

// Validator reports whether input satisfies a single rule.
type Validator func(input any) bool

// Caster moves input one step closer to a valid value.
type Caster func(input any) (any, error)

// Definition defines the contract shared by every type definition.
// Implementations must be safe for concurrent use once constructed.
type Definition interface {
	// Name returns the declared name, or "" for anonymous definitions.
	Name() string
	// String returns the human-readable name used in diagnostics.
	String() string
	// Valid reports whether input conforms to the definition. It never panics.
	Valid(input any) bool
	// Cast converts input into a conforming value. Failures are *CastError.
	Cast(input any) (any, error)
	// Nilable returns a definition that also accepts nil.
	Nilable() Definition
	// IsNilable reports whether nil is accepted as-is.
	IsNilable() bool
	// Refine derives a child whose rules run after this definition's rules.
	Refine(name string, configure func(*Rules)) Definition
}

// Rules is an ordered chain of validators and casters.
// It is only mutable inside the configure function passed to a constructor.
type Rules struct {
	validators []Validator
	casters    []Caster
}

// Validate appends validators to the chain.
func (r *Rules) Validate(fns ...Validator) {
	r.validators = append(r.validators, fns...)
}

// Cast appends casters to the chain.
func (r *Rules) Cast(fns ...Caster) {
	r.casters = append(r.casters, fns...)
}

// Len returns the number of validators and casters in the chain.
func (r Rules) Len() (validators, casters int) {
	return len(r.validators), len(r.casters)
}

// build assembles an effective chain: own rules, then a snapshot of the
// inherited chain, then whatever configure declares.
func build(own, inherited Rules, configure func(*Rules)) Rules {
	chain := Rules{
		validators: slices.Concat(own.validators, inherited.validators),
		casters:    slices.Concat(own.casters, inherited.casters),
	}
	if configure == nil {
		return chain
	}

	// configure works on its own Rules so a retained pointer cannot mutate us later.
	declared := &Rules{}
	configure(declared)
	chain.validators = append(chain.validators, declared.validators...)
	chain.casters = append(chain.casters, declared.casters...)
	return chain
}

// --- Scalar ---

// Scalar is the plain definition: its behavior is entirely its rule chain.
type Scalar struct {
	name  string
	chain Rules
}

// NewScalar creates a scalar definition. configure runs exactly once, before
// NewScalar returns, and declares the definition's validators and casters.
func NewScalar(name string, configure func(*Rules)) *Scalar {
	return &Scalar{name: name, chain: build(Rules{}, Rules{}, configure)}
}

// Derive creates a definition from an optional parent. Without a parent it
// is a scalar; with one it is parent.Refine(name, configure).
func Derive(name string, parent Definition, configure func(*Rules)) Definition {
	if parent == nil {
		return NewScalar(name, configure)
	}
	return parent.Refine(name, configure)
}

func (s *Scalar) Name() string { return s.name }

func (s *Scalar) String() string { return displayName(s.name, "scalar") }

func (s *Scalar) Valid(input any) bool { return s.chain.valid(input) }

func (s *Scalar) Cast(input any) (any, error) { return castWith(s, s.chain, input) }

func (s *Scalar) Nilable() Definition { return NewNilable(s) }

func (s *Scalar) IsNilable() bool { return false }

func (s *Scalar) Refine(name string, configure func(*Rules)) Definition {
	return &Scalar{name: name, chain: build(Rules{}, s.chain, configure)}
}

// Rules returns a copy of the effective chain.
func (s *Scalar) Rules() Rules { return s.chain.clone() }

func (r Rules) clone() Rules {
	return Rules{
		validators: slices.Clone(r.validators),
		casters:    slices.Clone(r.casters),
	}
}

func displayName(name, kind string) string {
	if name == "" {
		return "<anonymous " + kind + ">"
	}
	return name
}
