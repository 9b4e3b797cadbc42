// Package cmd wires the borderline CLI: path search and the guessing game.
package cmd

import (
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	datasetPath string
	verbose     bool
)

// RootCmd is the base command when called without any subcommands.
var RootCmd = &cobra.Command{
	Use:   "borderline",
	Short: "All shortest paths between two nodes of an adjacency graph, plus a guessing game",
	Long: `borderline enumerates every shortest path between two nodes of an
undirected adjacency graph (for example, countries linked by land borders)
and can turn the answer into an interactive guessing game.`,
}

// Execute runs the root command; main.main calls it exactly once.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	RootCmd.PersistentFlags().StringVarP(&datasetPath, "dataset", "d", "countries.csv",
		"comma-separated adjacency file: label,neighbor1,neighbor2,...")
	RootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false,
		"enable debug logging")

	RootCmd.AddCommand(searchCmd, gameCmd)
}

// newLogger builds the process logger; debug level when --verbose is set.
func newLogger() (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}

	return zap.NewProduction()
}
