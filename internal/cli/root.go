// Package cli provides the command-line interface for the trading journal.
package cli

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"wolf-journal/internal/config"
	"wolf-journal/internal/store"
)

// Version information
const (
	Version = "0.1.0"
)

// App holds the application dependencies.
type App struct {
	Config *config.Config
	Logger zerolog.Logger
	Store  store.TradeStore
}

// NewRootCmd creates the root command for the CLI.
func NewRootCmd(cfg *config.Config, logger zerolog.Logger) *cobra.Command {
	app := &App{
		Config: cfg,
		Logger: logger,
	}

	if cfg.Storage.DBPath != "" {
		s, err := store.NewSQLiteStore(cfg.Storage.DBPath)
		if err != nil {
			logger.Warn().Err(err).Msg("Failed to open journal store")
		} else {
			app.Store = s
		}
	}

	rootCmd := &cobra.Command{
		Use:   "wolf",
		Short: "Wolf Journal - personal trading journal and analytics",
		Long: "Wolf Journal records your trades and derives risk-adjusted " +
			"performance analytics: metrics, the Wolf Score, and a drillable " +
			"setup breakdown.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if app.Store != nil {
				app.Store.Close()
			}
		},
	}

	rootCmd.PersistentFlags().Bool("json", false, "Output in JSON format")

	addJournalCommands(rootCmd, app)
	addStatsCommand(rootCmd, app)
	addBreakdownCommands(rootCmd, app)
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "wolf-journal %s\n", Version)
		},
	}
}
