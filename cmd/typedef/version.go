package main

import (
	"fmt"
	"strings"

	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"github.com/aretw0/typedef"
	"github.com/aretw0/typedef/internal/presentation/tui"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of typedef",
	Run: func(cmd *cobra.Command, args []string) {
		if state.tty {
			fmt.Fprint(cmd.OutOrStdout(), tui.Banner(termenv.ColorProfile()))
		}
		fmt.Fprintf(cmd.OutOrStdout(), "typedef version %s\n", strings.TrimSpace(typedef.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
