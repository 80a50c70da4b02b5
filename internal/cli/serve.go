package cli

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/osa911/portfolio/internal/app"
	"github.com/osa911/portfolio/internal/logging"

	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the portfolio API server",
	PreRunE: func(cmd *cobra.Command, args []string) error {
		// The server logs at the configured level, not the CLI's quiet default
		level := cfg.LogLevel
		if verbose {
			level = "debug"
		}
		return logging.InitLogger(&logging.LogConfig{
			Level:      level,
			File:       cfg.LogFile,
			MaxSize:    100,
			MaxBackups: 3,
			MaxAge:     7,
		})
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		return app.Run(ctx, cfg)
	},
}
