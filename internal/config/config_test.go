package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/typedef/internal/config"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "typedef.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load("")
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func TestLoad_File(t *testing.T) {
	path := writeFile(t, `
log_level: debug
output: yaml
types:
  - name: Port
    from: Integer
    min: 1
    max: "65535"
  - name: Color
    from: String
    one_of: [red, green]
`)

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat, "defaults survive")
	assert.Equal(t, "yaml", cfg.Output)
	require.Len(t, cfg.Types, 2)

	port := cfg.Types[0]
	assert.Equal(t, "Port", port.Name)
	require.NotNil(t, port.Min)
	require.NotNil(t, port.Max)
	assert.Equal(t, 1.0, *port.Min)
	assert.Equal(t, 65535.0, *port.Max)
	assert.Equal(t, []string{"red", "green"}, cfg.Types[1].OneOf)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := writeFile(t, "log_format: json\n")
	t.Setenv("TYPEDEF_LOG_FORMAT", "text")
	t.Setenv("TYPEDEF_COLOR", "never")

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.Equal(t, "never", cfg.Color)
}

func TestLoad_Errors(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = config.Load(writeFile(t, "verbose: true\n"))
	assert.ErrorContains(t, err, "verbose")

	_, err = config.Load(writeFile(t, "output: xml\n"))
	assert.ErrorContains(t, err, "output")

	_, err = config.Load(writeFile(t, "types:\n  - name: Port\n"))
	assert.ErrorContains(t, err, "types[0]")

	_, err = config.Load(writeFile(t, "types:\n  - {name: Port, from: Integer, min: 10, max: 1}\n"))
	assert.ErrorContains(t, err, "exceeds max")

	_, err = config.Load(writeFile(t, "output: [\n"))
	assert.Error(t, err)
}

func TestDecode_Empty(t *testing.T) {
	cfg := config.Default()
	require.NoError(t, config.Decode([]byte("# nothing\n"), &cfg))
	assert.Equal(t, config.Default(), cfg)
}
