// Command matchbench generates matching benchmark graphs, runs the
// exhaustive-vs-greedy comparison over them, and solves single instances.
package main

import (
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var verbose bool

func main() {
	rootCmd := &cobra.Command{
		Use:          "matchbench",
		Short:        "Benchmark exhaustive vs greedy maximum-weight matching on generated graphs.",
		SilenceUsage: true,
		PersistentPreRun: func(*cobra.Command, []string) {
			if verbose {
				log.SetLevel(log.DebugLevel)
			}
		},
	}
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")

	rootCmd.AddCommand(newGenerateCommand())
	rootCmd.AddCommand(newRunCommand())
	rootCmd.AddCommand(newSolveCommand())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
