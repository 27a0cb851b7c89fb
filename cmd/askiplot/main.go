// Package main provides the askiplot command line plotter.
package main

import (
	"log/slog"
	"os"

	"github.com/askiplot/askiplot"
	"github.com/spf13/cobra"
)

func main() {
	var verbose bool

	rootCmd := &cobra.Command{
		Use:   "askiplot",
		Short: "Lightweight ASCII plotter",
		Long: `askiplot renders bar charts, histograms and images as ASCII art,
sized to the current terminal unless --width and --height say otherwise.`,
		Version:       askiplot.Version,
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				askiplot.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
					Level: slog.LevelDebug,
				})))
			}
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging to stderr")

	rootCmd.AddCommand(newBarsCommand())
	rootCmd.AddCommand(newImageCommand())
	rootCmd.AddCommand(newDemoCommand())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
