package cli

import (
	"context"
	"fmt"

	"github.com/osa911/portfolio/internal/app"

	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create missing tables, collections and indexes",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(cmd.Context(), func(ctx context.Context, a *app.App) error {
			if err := a.DB.Migrate(ctx); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "✓ %s schema is up to date\n", a.DB.Backend())
			return nil
		})
	},
}
