package main

import (
	"github.com/spf13/cobra"

	"github.com/aretw0/typedef/internal/cli"
)

var checkCmd = &cobra.Command{
	Use:   "check <type> [value]",
	Short: "Check whether values conform to a type",
	Long: `Validates the value (YAML or JSON) against the type expression and prints
"valid" or "invalid". Without a value, every document read from stdin is
checked. Exits with status 1 when any value is invalid.`,
	Example: `  typedef check 'Array(Integer)' '[1, 2, 3]'
  echo '{"a": 1}' | typedef check 'Hash(String=>Integer)'`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		vals, err := values(cmd.InOrStdin(), args, 1)
		if err != nil {
			return err
		}
		return cli.Check(state.catalog, args[0], vals, cli.Options{
			Out:     cmd.OutOrStdout(),
			Painter: painter(),
		})
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
