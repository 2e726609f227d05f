package typedef

import (
	"fmt"
	"log/slog"

	"github.com/aretw0/typedef/internal/logging"
	"github.com/aretw0/typedef/pkg/builtin"
	"github.com/aretw0/typedef/pkg/observability"
	"github.com/aretw0/typedef/pkg/registry"
	"github.com/aretw0/typedef/pkg/schema"
)

// Catalog is the high-level entry point for the library.
// It owns a registry seeded with the builtin definitions and resolves type
// expressions against it.
type Catalog struct {
	registry *registry.Registry
	logger   *slog.Logger
	metrics  *observability.Metrics
	defs     []schema.Definition
}

// Option defines a functional option for configuring the Catalog.
type Option func(*Catalog)

// WithLogger sets a custom structured logger for the catalog.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Catalog) {
		c.logger = logger
	}
}

// WithMetrics instruments every definition the catalog resolves.
func WithMetrics(m *observability.Metrics) Option {
	return func(c *Catalog) {
		c.metrics = m
	}
}

// WithDefinitions registers additional named definitions.
func WithDefinitions(defs ...schema.Definition) Option {
	return func(c *Catalog) {
		c.defs = append(c.defs, defs...)
	}
}

// WithRegistry uses reg instead of a fresh builtin registry.
// reg is used as-is; builtins are not installed into it.
func WithRegistry(reg *registry.Registry) Option {
	return func(c *Catalog) {
		c.registry = reg
	}
}

// New initializes a new Catalog.
func New(opts ...Option) (*Catalog, error) {
	c := &Catalog{}
	for _, opt := range opts {
		opt(c)
	}

	if c.logger == nil {
		c.logger = logging.NewNop()
	}
	if c.registry == nil {
		c.registry = builtin.Registry()
	}
	for _, d := range c.defs {
		if err := c.registry.Register(d); err != nil {
			return nil, fmt.Errorf("register %s: %w", d, err)
		}
	}
	return c, nil
}

// Registry returns the underlying registry.
func (c *Catalog) Registry() *registry.Registry { return c.registry }

// Names returns the registered names in lexical order.
func (c *Catalog) Names() []string { return c.registry.Names() }

// Find resolves a type expression such as "Hash(String=>Integer?)".
func (c *Catalog) Find(expr string) (schema.Definition, error) {
	def, err := c.registry.Find(expr)
	if err != nil {
		return nil, err
	}
	if c.metrics != nil {
		def = observability.Instrument(def, c.metrics)
	}
	return def, nil
}

// Valid reports whether input conforms to the type expr names.
func (c *Catalog) Valid(expr string, input any) (bool, error) {
	def, err := c.Find(expr)
	if err != nil {
		return false, err
	}
	ok := def.Valid(input)
	c.logger.Debug("validated", "type", def.String(), "valid", ok)
	return ok, nil
}

// Cast converts input with the type expr names.
func (c *Catalog) Cast(expr string, input any) (any, error) {
	def, err := c.Find(expr)
	if err != nil {
		return nil, err
	}
	out, err := def.Cast(input)
	if err != nil {
		c.logger.Debug("cast failed", "type", def.String(), "error", err)
		return nil, err
	}
	return out, nil
}

// Define registers a new scalar definition.
func (c *Catalog) Define(name string, configure func(*schema.Rules)) (schema.Definition, error) {
	def, err := c.registry.Define(name, configure)
	if err != nil {
		return nil, err
	}
	c.logger.Debug("defined type", "type", name)
	return def, nil
}

// Refine registers a definition derived from the type parentExpr names.
func (c *Catalog) Refine(parentExpr, name string, configure func(*schema.Rules)) (schema.Definition, error) {
	def, err := c.registry.Refine(parentExpr, name, configure)
	if err != nil {
		return nil, err
	}
	c.logger.Debug("defined type", "type", name, "from", parentExpr)
	return def, nil
}
