package typedef_test

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/typedef"
	"github.com/aretw0/typedef/internal/logging"
	"github.com/aretw0/typedef/pkg/builtin"
	"github.com/aretw0/typedef/pkg/observability"
	"github.com/aretw0/typedef/pkg/registry"
	"github.com/aretw0/typedef/pkg/schema"
)

func TestNew_Defaults(t *testing.T) {
	cat, err := typedef.New()
	require.NoError(t, err)

	assert.Equal(t, builtin.Registry().Names(), cat.Names())

	ok, err := cat.Valid("Int32", 2147483647)
	require.NoError(t, err)
	assert.True(t, ok)

	_, err = cat.Valid("Nope", 1)
	assert.ErrorIs(t, err, registry.ErrNotFound)

	_, err = cat.Cast("Nope", 1)
	assert.ErrorIs(t, err, registry.ErrNotFound)
}

func TestWithDefinitions(t *testing.T) {
	even := schema.NewScalar("Even", func(r *schema.Rules) {
		r.Validate(func(v any) bool {
			n, ok := v.(int)
			return ok && n%2 == 0
		})
	})

	cat, err := typedef.New(typedef.WithDefinitions(even))
	require.NoError(t, err)

	ok, err := cat.Valid("Array(Even)", []int{2, 4})
	require.NoError(t, err)
	assert.True(t, ok)

	_, err = typedef.New(typedef.WithDefinitions(builtin.Integer))
	assert.ErrorIs(t, err, registry.ErrAlreadyRegistered)
}

func TestWithRegistry(t *testing.T) {
	reg := registry.New()
	require.NoError(t, reg.Register(builtin.String))

	cat, err := typedef.New(typedef.WithRegistry(reg))
	require.NoError(t, err)
	assert.Same(t, reg, cat.Registry())
	assert.Equal(t, []string{"String"}, cat.Names())

	_, err = cat.Find("Integer")
	assert.ErrorIs(t, err, registry.ErrNotFound)
}

func TestWithLogger_LogsCastFailures(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.NewWriter(&buf, slog.LevelDebug, logging.FormatText)
	require.NoError(t, err)

	cat, err := typedef.New(typedef.WithLogger(logger))
	require.NoError(t, err)

	_, err = cat.Cast("Integer", "x")
	require.Error(t, err)

	out := buf.String()
	assert.Contains(t, out, "cast failed")
	assert.Contains(t, out, "type=Integer")
	assert.Contains(t, out, "err=")
}

func TestWithMetrics(t *testing.T) {
	m := observability.NewMetrics(prometheus.NewRegistry())
	cat, err := typedef.New(typedef.WithMetrics(m))
	require.NoError(t, err)

	_, err = cat.Valid("String?", nil)
	require.NoError(t, err)
	_, err = cat.Cast("Array(Integer)", []string{"1"})
	require.NoError(t, err)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.Validations.WithLabelValues("String?", observability.ResultValid)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Casts.WithLabelValues("Array(Integer)", observability.ResultOK)))
}

func TestDefineAndRefine(t *testing.T) {
	cat, err := typedef.New()
	require.NoError(t, err)

	_, err = cat.Define("Upper", func(r *schema.Rules) {
		r.Validate(func(v any) bool {
			s, ok := v.(string)
			return ok && s == strings.ToUpper(s)
		})
		r.Cast(func(v any) (any, error) { return strings.ToUpper(v.(string)), nil })
	})
	require.NoError(t, err)

	out, err := cat.Cast("Upper", "abc")
	require.NoError(t, err)
	assert.Equal(t, "ABC", out)

	_, err = cat.Refine("Upper", "Code", func(r *schema.Rules) {
		r.Validate(func(v any) bool { return len(v.(string)) == 3 })
	})
	require.NoError(t, err)

	ok, err := cat.Valid("Code", "ABCD")
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = cat.Refine("Nope", "X", nil)
	assert.ErrorIs(t, err, registry.ErrNotFound)
}

func TestVersion(t *testing.T) {
	assert.NotEmpty(t, strings.TrimSpace(typedef.Version))
}
