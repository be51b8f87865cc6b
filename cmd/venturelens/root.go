package main

import (
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/venturelens/venturelens/internal/webapi"
)

var version = "dev"

func newRootCommand() *cobra.Command {
	webapi.Version = version
	cmd := &cobra.Command{
		Use:   "venturelens",
		Short: "VentureLens - startup success prediction from venture metrics",
		Long: `VentureLens scores startups against trained pillar classifiers
(capital, advantage, market, people), combines the pillar probabilities with
a meta model, and applies a configurable decision policy.

It can run one-off predictions, generate improvement recommendations, render
reports, and serve the same engine over HTTP.`,
		Version:      version,
		SilenceUsage: true,
	}

	debugLogging := cmd.PersistentFlags().Bool("debug", false, "Enable debug logging")
	cmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		if *debugLogging {
			slog.SetLogLoggerLevel(slog.LevelDebug)
		}
	}

	// Add subcommands
	cmd.AddCommand(newPredictCommand())
	cmd.AddCommand(newRecommendCommand())
	cmd.AddCommand(newReportCommand())
	cmd.AddCommand(newInfoCommand())
	cmd.AddCommand(newValidateCommand())
	cmd.AddCommand(newServeCommand())
	cmd.AddCommand(newWizardCommand())
	cmd.AddCommand(newFetchCommand())

	return cmd
}

func execute() error {
	rootCmd := newRootCommand()
	return rootCmd.Execute()
}
