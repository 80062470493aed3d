package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/maxmatch/graphio"
	"github.com/katalvlaran/maxmatch/matching"
)

// newSolveCommand solves one graph file with the selected engine and
// prints the matching.
func newSolveCommand() *cobra.Command {
	var method string

	cmd := &cobra.Command{
		Use:   "solve <graph.json>",
		Short: "Compute a maximum-weight matching for one graph file.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := graphio.LoadFile(args[0])
			if err != nil {
				return err
			}

			res, err := matching.Compute(g, matching.Options{Method: method})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "method:  %s\n", method)
			fmt.Fprintf(out, "weight:  %.2f\n", res.Weight)
			fmt.Fprintf(out, "edges:   %d\n", len(res.Edges))
			for _, e := range res.Edges {
				fmt.Fprintf(out, "  %s-%s  %.2f\n", e.U, e.V, e.Weight)
			}

			return nil
		},
	}

	cmd.Flags().StringVarP(&method, "method", "m", matching.MethodGreedy,
		"matching engine: exhaustive or greedy")

	return cmd
}
