package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aretw0/typedef/internal/cli"
	"github.com/aretw0/typedef/internal/presentation/graph"
	"github.com/aretw0/typedef/pkg/schema"
)

var describeCmd = &cobra.Command{
	Use:   "describe <type>",
	Short: "Describe the shape of a type expression",
	Long: `Prints the kind, nilability and constraints of a type expression.
With --graph the composition is printed as a Mermaid flowchart instead; adding
--value casts the value and highlights the types that rejected it.`,
	Example: `  typedef describe 'Hash(String=>Array(Integer)?)'
  typedef describe --graph --value '[1, "x"]' 'Array(Integer)'`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		asGraph, _ := cmd.Flags().GetBool("graph")
		if !asGraph {
			md, err := cli.DescribeMarkdown(state.catalog, args[0])
			if err != nil {
				return err
			}
			return render(cmd, md)
		}

		def, err := state.catalog.Find(args[0])
		if err != nil {
			return err
		}
		var overlay *graph.Overlay
		if cmd.Flags().Changed("value") {
			raw, _ := cmd.Flags().GetString("value")
			v, err := cli.DecodeValue(raw)
			if err != nil {
				return err
			}
			overlay = &graph.Overlay{}
			if _, err := def.Cast(v); err != nil {
				for _, ce := range schema.CastErrors(err) {
					overlay.Rejected = append(overlay.Rejected, ce.Definition.String())
				}
			}
		}
		_, err = fmt.Fprint(cmd.OutOrStdout(), graph.GenerateMermaid(def, overlay))
		return err
	},
}

func init() {
	rootCmd.AddCommand(describeCmd)

	describeCmd.Flags().Bool("graph", false, "Print a Mermaid flowchart of the type")
	describeCmd.Flags().String("value", "", "Value to cast and highlight on the graph")
}
