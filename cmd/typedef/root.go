package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/muesli/termenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/aretw0/typedef"
	"github.com/aretw0/typedef/internal/cli"
	"github.com/aretw0/typedef/internal/config"
	"github.com/aretw0/typedef/internal/logging"
	"github.com/aretw0/typedef/internal/presentation/tui"
	"github.com/aretw0/typedef/pkg/observability"
)

// app is the state shared by the commands, set up before any of them runs.
type app struct {
	cfg     config.Config
	logger  *slog.Logger
	catalog *typedef.Catalog
	metrics *prometheus.Registry
	tty     bool
}

var state app

var rootCmd = &cobra.Command{
	Use:   "typedef",
	Short: "typedef validates and casts values against composable type definitions",
	Long: `typedef checks YAML or JSON values against type expressions such as
"Array(Integer)" or "Hash(String=>Float?)" and casts convertible values into
conforming ones. Custom types can be declared in a configuration file.`,
	SilenceUsage:       true,
	SilenceErrors:      true,
	PersistentPreRunE:  setup,
	PersistentPostRunE: teardown,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().String("config", "", "YAML configuration file")
	rootCmd.PersistentFlags().String("log-level", "", "Log level: debug, info, warn or error")
	rootCmd.PersistentFlags().String("log-format", "", "Log format: text or json")
	rootCmd.PersistentFlags().String("metrics-file", "", "Write Prometheus metrics to this file on exit")
	rootCmd.PersistentFlags().String("color", "", "Colored output: auto, always or never")
}

func setup(cmd *cobra.Command, args []string) error {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return err
	}
	overrideFromFlags(cmd, &cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}

	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		return err
	}
	logger, err := logging.New(level, cfg.LogFormat)
	if err != nil {
		return err
	}

	opts := []typedef.Option{typedef.WithLogger(logger)}
	var reg *prometheus.Registry
	if cfg.MetricsFile != "" {
		reg = prometheus.NewRegistry()
		opts = append(opts, typedef.WithMetrics(observability.NewMetrics(reg)))
	}
	cat, err := typedef.New(opts...)
	if err != nil {
		return err
	}
	if err := cli.DefineTypes(cat, cfg.Types); err != nil {
		return err
	}

	state = app{
		cfg:     cfg,
		logger:  logger,
		catalog: cat,
		metrics: reg,
		tty:     term.IsTerminal(int(os.Stdout.Fd())),
	}
	logger.Debug("configured", "config", path, "types", len(cfg.Types))
	return nil
}

func overrideFromFlags(cmd *cobra.Command, cfg *config.Config) {
	for flag, field := range map[string]*string{
		"log-level":    &cfg.LogLevel,
		"log-format":   &cfg.LogFormat,
		"metrics-file": &cfg.MetricsFile,
		"color":        &cfg.Color,
	} {
		if cmd.Flags().Changed(flag) {
			*field, _ = cmd.Flags().GetString(flag)
		}
	}
}

func teardown(cmd *cobra.Command, args []string) error {
	if state.metrics == nil {
		return nil
	}
	if err := observability.WriteTextfile(state.cfg.MetricsFile, state.metrics); err != nil {
		return fmt.Errorf("write metrics: %w", err)
	}
	state.logger.Debug("metrics written", "path", state.cfg.MetricsFile)
	return nil
}

// painter colors output according to the color setting.
func painter() tui.Painter {
	switch state.cfg.Color {
	case "always":
		profile := termenv.EnvColorProfile()
		if profile == termenv.Ascii {
			profile = termenv.ANSI
		}
		return tui.NewPainter(profile)
	case "never":
		return tui.NewPainter(termenv.Ascii)
	}
	if !state.tty {
		return tui.NewPainter(termenv.Ascii)
	}
	return tui.NewPainter(termenv.ColorProfile())
}

// renderer renders markdown with glamour on a terminal and leaves it as-is otherwise.
func renderer() (func(string) (string, error), error) {
	if !state.tty && state.cfg.Color != "always" {
		return tui.Plain, nil
	}
	width := 0
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
	}
	return tui.NewRenderer(width)
}

// values returns the value given as the argument at index i, or every
// document read from stdin when there is no such argument.
func values(in io.Reader, args []string, i int) ([]any, error) {
	if len(args) > i {
		v, err := cli.DecodeValue(args[i])
		if err != nil {
			return nil, err
		}
		return []any{v}, nil
	}

	var out []any
	err := cli.DecodeStream(in, func(v any) error {
		out = append(out, v)
		return nil
	})
	return out, err
}
