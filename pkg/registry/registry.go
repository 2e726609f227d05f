package registry

import (
	"fmt"
	"slices"
	"sync"

	"github.com/aretw0/typedef/pkg/schema"
)

// Registry maps names to type definitions.
// It is safe for concurrent use.
type Registry struct {
	mu   sync.RWMutex
	defs map[string]schema.Definition
}

// New creates a new empty registry.
func New() *Registry {
	return &Registry{
		defs: make(map[string]schema.Definition),
	}
}

// Register adds a named definition to the registry.
// Unnamed definitions and names already taken are rejected.
func (r *Registry) Register(def schema.Definition) error {
	name := def.Name()
	if name == "" {
		return fmt.Errorf("%w: %s", ErrUnnamed, def)
	}
	if !isIdent(name) {
		return &SyntaxError{Expr: name, Msg: "name is not an identifier"}
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.defs[name]; ok {
		return fmt.Errorf("%w: %s", ErrAlreadyRegistered, name)
	}
	r.defs[name] = def
	return nil
}

// Lookup returns the definition registered under name. It does not parse
// expressions; see Find.
func (r *Registry) Lookup(name string) (schema.Definition, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	def, ok := r.defs[name]
	return def, ok
}

// Names returns the registered names in lexical order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	names := make([]string, 0, len(r.defs))
	for name := range r.defs {
		names = append(names, name)
	}
	r.mu.RUnlock()

	slices.Sort(names)
	return names
}

// Len returns the number of registered definitions.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.defs)
}

// Find resolves a type expression such as "Integer", "String?" or
// "Hash(String=>Array(Integer)?)".
func (r *Registry) Find(expr string) (schema.Definition, error) {
	n, err := parse(expr)
	if err != nil {
		return nil, err
	}
	return r.resolve(n)
}

// MustFind is like Find but panics on error.
func (r *Registry) MustFind(expr string) schema.Definition {
	def, err := r.Find(expr)
	if err != nil {
		panic(err)
	}
	return def
}

// Valid resolves expr and validates input against it.
func (r *Registry) Valid(expr string, input any) (bool, error) {
	def, err := r.Find(expr)
	if err != nil {
		return false, err
	}
	return def.Valid(input), nil
}

// Cast resolves expr and casts input with it.
func (r *Registry) Cast(expr string, input any) (any, error) {
	def, err := r.Find(expr)
	if err != nil {
		return nil, err
	}
	return def.Cast(input)
}

// Define registers a new scalar definition built from configure.
func (r *Registry) Define(name string, configure func(*schema.Rules)) (schema.Definition, error) {
	def := schema.NewScalar(name, configure)
	if err := r.Register(def); err != nil {
		return nil, err
	}
	return def, nil
}

// Refine derives a definition named name from the definition parentExpr
// resolves to, and registers it.
func (r *Registry) Refine(parentExpr, name string, configure func(*schema.Rules)) (schema.Definition, error) {
	parent, err := r.Find(parentExpr)
	if err != nil {
		return nil, err
	}
	def := parent.Refine(name, configure)
	if err := r.Register(def); err != nil {
		return nil, err
	}
	return def, nil
}

// Of constrains the collection collectionExpr resolves to with the definitions
// the constraint expressions resolve to. The result is not registered.
func (r *Registry) Of(collectionExpr string, constraintExprs ...string) (*schema.Constrained, error) {
	if len(constraintExprs) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNoConstraints, collectionExpr)
	}
	base, err := r.Find(collectionExpr)
	if err != nil {
		return nil, err
	}
	constraints := make([]schema.Definition, len(constraintExprs))
	for i, expr := range constraintExprs {
		if constraints[i], err = r.Find(expr); err != nil {
			return nil, err
		}
	}
	return constrainable(base, constraints)
}

type ofer interface {
	Of(constraints ...schema.Definition) *schema.Constrained
}

func constrainable(base schema.Definition, constraints []schema.Definition) (*schema.Constrained, error) {
	c, ok := base.(ofer)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotCollection, base)
	}
	return c.Of(constraints...), nil
}

func (r *Registry) resolve(n *node) (schema.Definition, error) {
	def, ok := r.Lookup(n.name)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, n.name)
	}

	if len(n.args) > 0 {
		constraints := make([]schema.Definition, len(n.args))
		for i, arg := range n.args {
			c, err := r.resolve(arg)
			if err != nil {
				return nil, err
			}
			constraints[i] = c
		}
		c, err := constrainable(def, constraints)
		if err != nil {
			return nil, err
		}
		def = c
	}

	if n.nilable {
		def = def.Nilable()
	}
	return def, nil
}
