package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/tubescribe-cli/internal/adapters/driven/storage/sqlite"
	"github.com/custodia-labs/tubescribe-cli/internal/adapters/driven/youtube"
	"github.com/custodia-labs/tubescribe-cli/internal/adapters/driving/mcp"
	"github.com/custodia-labs/tubescribe-cli/internal/core/services"
	"github.com/custodia-labs/tubescribe-cli/internal/logger"
)

var (
	servePort    int
	serveDataDir string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the MCP server",
	Long: `Start the Model Context Protocol server for AI assistant integration.

By default, the server communicates over stdio using JSON-RPC and can be
used with Claude Desktop and other MCP-compatible AI assistants.

Use --port to start an HTTP server instead, which enables:
  - Testing with MCP Inspector web UI
  - Remote access via HTTP

Examples:
  # Stdio mode (default, for Claude Desktop)
  tubescribe serve

  # HTTP mode (for MCP Inspector, remote access)
  tubescribe serve --port 8080

Claude Desktop configuration (claude_desktop_config.json):
  {
    "mcpServers": {
      "tubescribe": {
        "command": "/path/to/tubescribe",
        "args": ["serve"]
      }
    }
  }`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().IntVarP(&servePort, "port", "p", 0, "HTTP port (0 = use stdio)")
	serveCmd.Flags().StringVar(&serveDataDir, "data-dir", "", "summary database directory (default ~/.tubescribe/data)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	configStore, err := newConfigStore()
	if err != nil {
		return fmt.Errorf("opening config: %w", err)
	}

	cfg := configStore.Resolve()
	if serveDataDir != "" {
		cfg.DataDir = serveDataDir
	}

	if cfg.APIKey == "" {
		logger.Warn("no YouTube API key configured; transcript and search tools will fail until one is set")
	}

	store, err := sqlite.NewStore(cfg.DataDir)
	if err != nil {
		return fmt.Errorf("opening summary store: %w", err)
	}
	defer store.Close() //nolint:errcheck // Best-effort close on shutdown

	logger.Info("summary store ready at %s", store.Path())

	ports := &mcp.Ports{
		Transcript: services.NewTranscriptService(youtube.NewTranscriptClient(cfg.APIKey), cfg.Language),
		Summary:    services.NewSummaryService(store),
		Search:     services.NewSearchService(youtube.NewSearchClient(cfg.APIKey)),
	}

	server, err := mcp.NewServer(ports)
	if err != nil {
		return err
	}

	if servePort > 0 {
		addr := fmt.Sprintf(":%d", servePort)
		fmt.Fprintf(cmd.OutOrStdout(), "MCP server listening on http://localhost%s\n", addr)
		return server.RunHTTP(cmd.Context(), addr)
	}

	return server.Run(cmd.Context())
}
