package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/typedef/internal/cli"
)

// run executes the root command with fresh flag values.
func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	reset := func(fs *pflag.FlagSet) {
		fs.VisitAll(func(f *pflag.Flag) {
			_ = f.Value.Set(f.DefValue)
			f.Changed = false
		})
	}
	reset(rootCmd.PersistentFlags())
	for _, c := range rootCmd.Commands() {
		reset(c.Flags())
	}

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetArgs(args)
	_, err := rootCmd.ExecuteC()
	return out.String(), err
}

func TestCheckCommand(t *testing.T) {
	out, err := run(t, "", "check", "Int32", "2147483647")
	require.NoError(t, err)
	assert.Equal(t, "valid\n", out)

	out, err = run(t, "", "check", "Int32", "2147483648")
	assert.ErrorIs(t, err, cli.ErrInvalid)
	assert.Equal(t, "invalid\n", out)

	out, err = run(t, "[1]\n---\n[x]\n---\n[]\n", "check", "Array(Integer)")
	assert.ErrorIs(t, err, cli.ErrInvalid)
	assert.Equal(t, "valid\ninvalid\nvalid\n", out)

	_, err = run(t, "", "check")
	assert.Error(t, err)
}

func TestCastCommand(t *testing.T) {
	out, err := run(t, "", "cast", "Array(Integer)", `["1", "2"]`)
	require.NoError(t, err)
	assert.Equal(t, "[\n  1,\n  2\n]\n", out)

	out, err = run(t, "", "cast", "-o", "yaml", "Hash(String=>Float)", `[["pi", "3.5"]]`)
	require.NoError(t, err)
	assert.Equal(t, "pi: 3.5\n", out)

	out, err = run(t, "", "cast", "Integer", "x")
	assert.ErrorIs(t, err, cli.ErrInvalid)
	assert.Contains(t, out, `could not cast "x" with Integer`)

	_, err = run(t, "", "cast", "-o", "toml", "Integer", "1")
	assert.ErrorContains(t, err, "output")
}

func TestConfigTypes(t *testing.T) {
	path := filepath.Join(t.TempDir(), "typedef.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
types:
  - name: Port
    from: Integer
    min: 1
    max: 65535
`), 0o644))

	out, err := run(t, "", "--config", path, "check", "Array(Port)", "[80, 443]")
	require.NoError(t, err)
	assert.Equal(t, "valid\n", out)

	_, err = run(t, "", "--config", path, "check", "Port", "0")
	assert.ErrorIs(t, err, cli.ErrInvalid)

	_, err = run(t, "", "check", "Port", "80")
	assert.Error(t, err, "types from a previous config do not leak")
}

func TestMetricsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "typedef.prom")

	_, err := run(t, "", "--metrics-file", path, "check", "Boolean", "true")
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `typedef_validations_total{result="valid",type="Boolean"} 1`)
}

func TestListDescribeVersion(t *testing.T) {
	out, err := run(t, "", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "| Integer | scalar |")

	out, err = run(t, "", "describe", "Array(String)?")
	require.NoError(t, err)
	assert.Contains(t, out, "**Kind:** constrained collection")

	out, err = run(t, "", "describe", "--graph", "--value", `[1, "x"]`, "Array(Integer)")
	require.NoError(t, err)
	assert.Contains(t, out, `n0{{"Array(Integer)"}}`)
	assert.Contains(t, out, "class n0 rejected;")
	assert.Contains(t, out, "class n2 rejected;")

	out, err = run(t, "", "version")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "typedef version "), out)
}

func TestCommandsAreRegistered(t *testing.T) {
	var names []string
	for _, c := range rootCmd.Commands() {
		names = append(names, c.Name())
	}
	for _, want := range []string{"check", "cast", "list", "describe", "version"} {
		assert.Contains(t, names, want)
	}
}
