package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aretw0/typedef/internal/cli"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the registered types",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		md, err := cli.ListMarkdown(state.catalog)
		if err != nil {
			return err
		}
		return render(cmd, md)
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}

func render(cmd *cobra.Command, md string) error {
	r, err := renderer()
	if err != nil {
		return err
	}
	out, err := r(md)
	if err != nil {
		return err
	}
	_, err = fmt.Fprint(cmd.OutOrStdout(), out)
	return err
}
