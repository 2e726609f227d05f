package builtin

import (
	"fmt"

	"github.com/aretw0/typedef/pkg/registry"
	"github.com/aretw0/typedef/pkg/schema"
)

// All returns every builtin definition, scalars first.
func All() []schema.Definition {
	return []schema.Definition{
		Integer, Int32, Int64, UInt32, UInt64,
		Float, Float32, Float64,
		Boolean, String,
		Array, Hash, Set,
	}
}

// Install registers every builtin definition in reg.
func Install(reg *registry.Registry) error {
	for _, d := range All() {
		if err := reg.Register(d); err != nil {
			return fmt.Errorf("install builtin %s: %w", d, err)
		}
	}
	return nil
}

// Registry returns a new registry holding the builtin definitions.
func Registry() *registry.Registry {
	reg := registry.New()
	if err := Install(reg); err != nil {
		// The catalogue is static; a failure here is a programming error.
		panic(err)
	}
	return reg
}
