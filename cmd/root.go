package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"sevdesk-mcp/internal/logger"
)

var version = "1.0.0"

var rootCmd = &cobra.Command{
	Use:   "sevdesk-mcp",
	Short: "MCP server exposing the sevDesk accounting API as tools",
	Long: `sevdesk-mcp is a Model Context Protocol (MCP) server that exposes the
sevDesk accounting API as a set of tools for AI assistants.

It covers contacts, invoices, credit notes, orders, vouchers, bank
transactions, parts and basic system lookups. The server speaks MCP
over stdio; all logging goes to stderr.

Required environment variables:
  SEVDESK_API_TOKEN - Your sevDesk API token

Optional environment variables:
  SEVDESK_BASE_URL  - API base URL (default: https://my.sevdesk.de/api/v1)
  LOG_LEVEL         - debug, info, warn, error (default: info)
  LOG_FORMAT        - json or console (default: console)`,
	Version: version,
	Run: func(cmd *cobra.Command, args []string) {
		log := logger.WithComponent("root")
		log.Info().
			Str("version", version).
			Msg("sevdesk-mcp executed without subcommand")

		fmt.Fprintln(os.Stderr, "Use 'sevdesk-mcp serve' to start the MCP server, or --help for all commands.")
	},
}

func Execute() {
	log := logger.WithComponent("cmd")

	if err := rootCmd.Execute(); err != nil {
		log.Error().
			Err(err).
			Msg("Command execution failed")
		fmt.Fprintf(os.Stderr, "Error executing command: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().BoolP("version", "v", false, "Print version information")
}
