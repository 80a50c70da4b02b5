package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/osa911/portfolio/internal/app"
	"github.com/osa911/portfolio/internal/config"
	"github.com/osa911/portfolio/internal/logging"

	"github.com/spf13/cobra"
)

var (
	cfg     *config.Config
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "portfolio",
	Short: "Portfolio admin CLI",
	Long: `Portfolio admin CLI manages the portfolio API's store and mail relay:
schema migration, project seeding, reading stored contact messages and
checking the mail configuration.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := config.Load()
		if err != nil {
			return err
		}
		cfg = loaded

		level := "warn"
		if verbose {
			level = "debug"
		}
		return logging.InitLogger(&logging.LogConfig{
			Level:      level,
			File:       cfg.LogFile,
			MaxSize:    10,
			MaxBackups: 1,
			MaxAge:     7,
		})
	},
}

// withApp opens the store and services for the duration of fn
func withApp(ctx context.Context, fn func(ctx context.Context, a *app.App) error) error {
	a, err := app.New(ctx, cfg)
	if err != nil {
		return err
	}
	defer a.Close(context.Background())
	return fn(ctx, a)
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(projectsCmd)
	rootCmd.AddCommand(contactsCmd)
	rootCmd.AddCommand(mailCmd)
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
