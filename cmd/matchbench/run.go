package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/maxmatch/experiment"
)

// newRunCommand runs the comparison over a suite file or a directory of
// graph JSON files and writes the fixed-width report.
func newRunCommand() *cobra.Command {
	var (
		suitePath string
		ceiling   int
		outPath   string
	)

	cmd := &cobra.Command{
		Use:   "run [graphs-dir]",
		Short: "Run exhaustive vs greedy over a suite or a directory of graphs.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			var suite experiment.Suite
			switch {
			case suitePath != "":
				var err error
				if suite, err = experiment.LoadSuiteFile(suitePath); err != nil {
					return err
				}
			case len(args) == 1:
				suite = experiment.Suite{Graphs: []string{filepath.Join(args[0], "*.json")}}
			default:
				return fmt.Errorf("either --suite or a graphs directory is required")
			}

			var opts []experiment.Option
			if ceiling >= 0 {
				opts = append(opts, experiment.WithMaxExhaustiveEdges(ceiling))
			}

			records, err := experiment.RunSuite(suite, opts...)
			if err != nil {
				return err
			}
			summary := experiment.Summarize(records)

			out := os.Stdout
			if outPath != "" {
				f, err := os.Create(outPath)
				if err != nil {
					return fmt.Errorf("create %s: %w", outPath, err)
				}
				defer f.Close()
				out = f
			}

			return experiment.WriteReport(out, records, summary)
		},
	}

	cmd.Flags().StringVarP(&suitePath, "suite", "s", "", "YAML suite file")
	cmd.Flags().IntVar(&ceiling, "max-exhaustive-edges", -1, "edge ceiling for exhaustive search (-1 = suite/default)")
	cmd.Flags().StringVarP(&outPath, "out", "o", "", "report file (default stdout)")

	return cmd
}
