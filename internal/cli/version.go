package cli

import (
	"fmt"

	"github.com/osa911/portfolio/internal/version"

	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Run: func(cmd *cobra.Command, args []string) {
		info := version.GetBuildInfo()
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "portfolio %s\n", version.GetVersionString())
		fmt.Fprintf(out, "Go: %s (%s)\n", info.GoVersion, info.Platform)
	},
}
