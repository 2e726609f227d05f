package builtin_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/aretw0/typedef/pkg/builtin"
)

func TestHashSet(t *testing.T) {
	s, err := builtin.NewSet(2, 1, 2, "a")
	require.NoError(t, err)

	assert.Equal(t, 3, s.Len())
	assert.True(t, s.Has("a"))
	assert.False(t, s.Has(3))
	assert.False(t, s.Has([]int{1}))
	assert.ElementsMatch(t, []any{1, 2, "a"}, s.Elements())
	assert.Equal(t, `Set{1, 2, "a"}`, s.String())

	assert.True(t, s.Equal(builtin.MustSet("a", 1, 2)))
	assert.False(t, s.Equal(builtin.MustSet("a", 1)))
	assert.False(t, s.Equal(builtin.MustSet("a", 1, 3)))

	_, err = builtin.NewSet(map[string]int{})
	assert.ErrorIs(t, err, builtin.ErrUnhashable)
	assert.Panics(t, func() { builtin.MustSet([]int{}) })

	var nested [1]any
	nested[0] = []int{1}
	assert.NotPanics(t, func() { assert.False(t, s.Has(nested)) })
	_, err = builtin.NewSet([1]any{1}, nested)
	assert.ErrorIs(t, err, builtin.ErrUnhashable)
	_, err = builtin.NewSet(struct{ V any }{V: map[string]int{}})
	assert.ErrorIs(t, err, builtin.ErrUnhashable)

	mixed, err := builtin.NewSet([1]any{1}, struct{ V any }{V: "x"}, nil)
	require.NoError(t, err)
	assert.True(t, mixed.Has([1]any{1}))
	assert.True(t, mixed.Has(nil))

	var zero builtin.HashSet
	assert.Zero(t, zero.Len())
	assert.False(t, zero.Has(1))
}

func TestHashSet_Marshal(t *testing.T) {
	s := builtin.MustSet(3, 1, 2)

	data, err := json.Marshal(s)
	require.NoError(t, err)
	assert.JSONEq(t, `[1, 2, 3]`, string(data))

	data, err = yaml.Marshal(builtin.MustSet("b", "a"))
	require.NoError(t, err)
	assert.Equal(t, "- a\n- b\n", string(data))
}
