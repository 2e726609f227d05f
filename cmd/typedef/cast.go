package main

import (
	"github.com/spf13/cobra"

	"github.com/aretw0/typedef/internal/cli"
)

var castCmd = &cobra.Command{
	Use:   "cast <type> [value]",
	Short: "Cast values into a type",
	Long: `Casts the value (YAML or JSON) with the type expression and prints the
result. Without a value, every document read from stdin is cast. On failure the
chain of rejecting types is printed and the exit status is 1.`,
	Example: `  typedef cast 'Array(Int32)' '["1", "2"]'
  typedef cast -o yaml 'Hash(String=>Float)' '[["pi", "3.14"]]'`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Flags().Changed("output") {
			state.cfg.Output, _ = cmd.Flags().GetString("output")
			if err := state.cfg.Validate(); err != nil {
				return err
			}
		}
		vals, err := values(cmd.InOrStdin(), args, 1)
		if err != nil {
			return err
		}
		return cli.Cast(state.catalog, args[0], vals, cli.Options{
			Out:     cmd.OutOrStdout(),
			Painter: painter(),
			Format:  state.cfg.Output,
		})
	},
}

func init() {
	rootCmd.AddCommand(castCmd)

	castCmd.Flags().StringP("output", "o", "", "Output format: json or yaml")
}
