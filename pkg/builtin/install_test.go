package builtin_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/typedef/pkg/builtin"
	"github.com/aretw0/typedef/pkg/registry"
)

func TestInstall(t *testing.T) {
	reg := registry.New()
	require.NoError(t, builtin.Install(reg))
	assert.Equal(t, len(builtin.All()), reg.Len())

	for _, def := range builtin.All() {
		found, err := reg.Find(def.Name())
		require.NoError(t, err)
		assert.Same(t, def, found)
	}

	err := builtin.Install(reg)
	assert.ErrorIs(t, err, registry.ErrAlreadyRegistered)
}

func TestRegistry_IsFresh(t *testing.T) {
	a, b := builtin.Registry(), builtin.Registry()

	_, err := a.Define("Extra", nil)
	require.NoError(t, err)

	_, ok := b.Lookup("Extra")
	assert.False(t, ok)
}
