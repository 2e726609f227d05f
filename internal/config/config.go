// Package config loads the command line configuration from an optional YAML
// file and TYPEDEF_* environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// EnvPrefix prefixes every environment override.
const EnvPrefix = "TYPEDEF_"

// Config is the command line configuration. Flags override it.
type Config struct {
	LogLevel    string     `mapstructure:"log_level"`
	LogFormat   string     `mapstructure:"log_format"`
	MetricsFile string     `mapstructure:"metrics_file"`
	Output      string     `mapstructure:"output"`
	Color       string     `mapstructure:"color"`
	Types       []TypeSpec `mapstructure:"types"`
}

// TypeSpec declares a named refinement of a registered type.
type TypeSpec struct {
	Name    string   `mapstructure:"name"`
	From    string   `mapstructure:"from"`
	Min     *float64 `mapstructure:"min"`
	Max     *float64 `mapstructure:"max"`
	OneOf   []string `mapstructure:"one_of"`
	Pattern string   `mapstructure:"pattern"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		LogLevel:  "warn",
		LogFormat: "text",
		Output:    "json",
		Color:     "auto",
	}
}

// Load reads path (when not empty) over the defaults, then applies
// environment overrides.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
		if err := Decode(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("config %s: %w", path, err)
		}
	}
	cfg.applyEnv(os.LookupEnv)
	return cfg, cfg.Validate()
}

// Decode merges a YAML document into cfg. Unknown keys are rejected and
// scalar values are converted weakly ("3" decodes into a number).
func Decode(data []byte, cfg *Config) error {
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw == nil {
		return nil
	}

	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           cfg,
		WeaklyTypedInput: true,
		ErrorUnused:      true,
	})
	if err != nil {
		return err
	}
	return dec.Decode(raw)
}

func (c *Config) applyEnv(lookup func(string) (string, bool)) {
	for key, field := range map[string]*string{
		"LOG_LEVEL":    &c.LogLevel,
		"LOG_FORMAT":   &c.LogFormat,
		"METRICS_FILE": &c.MetricsFile,
		"OUTPUT":       &c.Output,
		"COLOR":        &c.Color,
	} {
		if v, ok := lookup(EnvPrefix + key); ok {
			*field = v
		}
	}
}

// Validate reports settings that cannot be used.
func (c Config) Validate() error {
	var errs []error
	switch strings.ToLower(c.Output) {
	case "json", "yaml":
	default:
		errs = append(errs, fmt.Errorf("output must be json or yaml, got %q", c.Output))
	}
	switch strings.ToLower(c.Color) {
	case "auto", "always", "never":
	default:
		errs = append(errs, fmt.Errorf("color must be auto, always or never, got %q", c.Color))
	}
	for i, t := range c.Types {
		if t.Name == "" || t.From == "" {
			errs = append(errs, fmt.Errorf("types[%d]: name and from are required", i))
		}
		if t.Min != nil && t.Max != nil && *t.Min > *t.Max {
			errs = append(errs, fmt.Errorf("types[%d]: min %v exceeds max %v", i, *t.Min, *t.Max))
		}
	}
	return errors.Join(errs...)
}
