package schema_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/typedef/pkg/schema"
)

func TestNilable_Absorption(t *testing.T) {
	defs := []schema.Definition{integer, str, array, hash.Of(str, integer)}

	for _, d := range defs {
		n := d.Nilable()
		assert.True(t, n.IsNilable())
		assert.True(t, n.Valid(nil), "%s.Valid(nil)", n)

		out, err := n.Cast(nil)
		require.NoError(t, err)
		assert.Nil(t, out)

		for _, v := range []any{1, "1", []any{1}, map[string]any{"a": 1}} {
			assert.Equal(t, d.Valid(v), n.Valid(v), "%s.Valid(%#v)", n, v)
		}
	}
}

func TestNilable_Idempotent(t *testing.T) {
	n := integer.Nilable()
	assert.Same(t, n, n.Nilable())
	assert.Same(t, n, schema.NewNilable(n))
	assert.False(t, integer.IsNilable())
}

func TestNilable_DelegatesCast(t *testing.T) {
	n := integer.Nilable()

	out, err := n.Cast("12")
	require.NoError(t, err)
	assert.Equal(t, 12, out)

	_, err = n.Cast("twelve")
	var castErr *schema.CastError
	require.ErrorAs(t, err, &castErr)
	assert.Same(t, n, castErr.Definition)
	assert.Contains(t, err.Error(), `could not cast "twelve" with Integer?: could not cast "twelve" with Integer:`)

	chain := schema.CastErrors(err)
	require.Len(t, chain, 2)
	assert.Same(t, n, chain[0].Definition)
	assert.Same(t, integer, chain[1].Definition)
}

func TestNilable_CastErrorInsideCollection(t *testing.T) {
	_, err := array.Of(integer.Nilable()).Cast([]any{nil, "x"})
	require.Error(t, err)

	chain := schema.CastErrors(err)
	require.Len(t, chain, 3)
	assert.Equal(t, "Array(Integer?)", chain[0].Definition.String())
	assert.Equal(t, "Integer?", chain[1].Definition.String())
	assert.Same(t, integer, chain[2].Definition)
}

func TestNilable_TypedNilPointer(t *testing.T) {
	var p *int
	n := integer.Nilable()

	assert.True(t, schema.IsAbsent(p))
	assert.True(t, n.Valid(p))

	out, err := n.Cast(p)
	require.NoError(t, err)
	assert.Equal(t, p, out)
}

func TestNilable_Display(t *testing.T) {
	assert.Equal(t, "Integer?", integer.Nilable().String())
	assert.Equal(t, "Array(Integer)?", array.Of(integer).Nilable().String())
	assert.Empty(t, integer.Nilable().Name())
}

func TestNilable_Refine(t *testing.T) {
	positive := integer.Nilable().Refine("Positive", func(r *schema.Rules) {
		r.Validate(func(v any) bool { return v.(int) > 0 })
	})

	assert.True(t, positive.IsNilable())
	assert.True(t, positive.Valid(nil))
	assert.True(t, positive.Valid(3))
	assert.False(t, positive.Valid(-3))
	assert.Equal(t, "Positive?", positive.String())
}

func TestNilable_DoesNotMutateWrapped(t *testing.T) {
	_ = integer.Nilable()
	assert.False(t, integer.Valid(nil))

	_, err := integer.Cast(nil)
	assert.Error(t, err)
}

func TestNilable_Wrapped(t *testing.T) {
	n, ok := integer.Nilable().(*schema.Nilable)
	require.True(t, ok)
	assert.Same(t, integer, n.Wrapped())
}
