package cmd

import (
	"fmt"
	"os"

	"github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"

	"sevdesk-mcp/internal/config"
	"sevdesk-mcp/internal/logger"
	"sevdesk-mcp/internal/sevdesk"
	"sevdesk-mcp/internal/tools"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the MCP server on stdio",
	Long: `Start the sevDesk MCP server. The server reads MCP requests from stdin
and writes responses to stdout, so it is meant to be launched by an MCP
client (Claude Desktop, an IDE integration, etc.), not used interactively.

The sevDesk API token is validated before the server starts; no network
call is made until the first tool invocation.`,
	Example: `  # Start the server (token from environment or .env)
  SEVDESK_API_TOKEN=your-token sevdesk-mcp serve`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	log := logger.WithComponent("serve")

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading configuration: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, "Set the SEVDESK_API_TOKEN environment variable (or put it in a .env file) and try again.")
		return err
	}

	client, err := sevdesk.NewClient(sevdesk.Config{
		Token:   cfg.APIToken,
		BaseURL: cfg.BaseURL,
	})
	if err != nil {
		return fmt.Errorf("creating sevDesk client: %w", err)
	}

	s := server.NewMCPServer("sevdesk-mcp", version,
		server.WithToolCapabilities(true),
		server.WithRecovery(),
	)
	tools.New(client).Register(s)

	log.Info().
		Str("version", version).
		Str("base_url", cfg.BaseURL).
		Msg("Starting MCP server on stdio")

	if err := server.ServeStdio(s); err != nil {
		return fmt.Errorf("serving MCP: %w", err)
	}

	log.Info().Msg("MCP server stopped")
	return nil
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
