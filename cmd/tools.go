package cmd

import (
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"

	"sevdesk-mcp/internal/tools"
)

var toolsCmd = &cobra.Command{
	Use:   "tools",
	Short: "List the tools this server exposes",
	Long: `Print the name and description of every tool the MCP server registers.
No sevDesk credentials are needed; nothing is contacted.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		c := &toolCollector{}
		tools.New(nil).Register(c)
		for _, tool := range c.tools {
			fmt.Printf("%-28s %s\n", tool.Name, tool.Description)
		}
		fmt.Printf("\n%d tools\n", len(c.tools))
	},
}

// toolCollector records registrations instead of serving them.
type toolCollector struct {
	tools []mcp.Tool
}

func (c *toolCollector) AddTool(tool mcp.Tool, _ server.ToolHandlerFunc) {
	c.tools = append(c.tools, tool)
}

func init() {
	rootCmd.AddCommand(toolsCmd)
}
