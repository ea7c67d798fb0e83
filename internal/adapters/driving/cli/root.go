// Package cli implements the tubescribe command-line interface using cobra.
package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/tubescribe-cli/internal/logger"
)

// version is set at build time via -ldflags.
var version = "dev"

var verboseFlag bool

var rootCmd = &cobra.Command{
	Use:   "tubescribe",
	Short: "YouTube transcript, search and summary tools over MCP",
	Long: `Tubescribe exposes YouTube transcript fetching, video search and a
local summary store as Model Context Protocol (MCP) tools.

Run 'tubescribe serve' to start the MCP server, 'tubescribe config set-key'
to store your YouTube API key.`,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verboseFlag)
	},
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "enable verbose logging on stderr")
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
