package tools

import (
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/rs/zerolog"

	"sevdesk-mcp/internal/logger"
	"sevdesk-mcp/internal/sevdesk"
)

// ToolServer is the subset of server.MCPServer that registration needs.
// Satisfied by *server.MCPServer and by the listing collector in cmd.
type ToolServer interface {
	AddTool(tool mcp.Tool, handler server.ToolHandlerFunc)
}

// Tools binds every tool handler to one shared sevDesk client. The client
// is constructed once in bootstrap and injected here; handlers hold no
// other state, so concurrent invocations are independent.
type Tools struct {
	client *sevdesk.Client
	log    zerolog.Logger
}

// New creates the tool set around an existing client.
func New(client *sevdesk.Client) *Tools {
	return &Tools{
		client: client,
		log:    logger.WithComponent("tools"),
	}
}

// Register wires every family's tools into the MCP server.
func (t *Tools) Register(s ToolServer) {
	t.registerContacts(s)
	t.registerInvoices(s)
	t.registerCreditNotes(s)
	t.registerOrders(s)
	t.registerVouchers(s)
	t.registerTransactions(s)
	t.registerParts(s)
	t.registerBasics(s)
	t.registerUsers(s)
}
