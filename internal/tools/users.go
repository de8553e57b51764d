package tools

import (
	"context"
	"net/url"

	"github.com/mark3labs/mcp-go/mcp"
)

func (t *Tools) registerUsers(s ToolServer) {
	s.AddTool(mcp.NewTool("list_users",
		mcp.WithDescription("List all sevDesk users (SevUser). Useful for getting user IDs to use as contactPerson in invoices, orders, and credit notes."),
		mcp.WithNumber("limit", mcp.Description("Maximum number of results (default: 50)")),
		mcp.WithNumber("offset", mcp.Description("Number of results to skip for pagination")),
	), t.listUsers)

	s.AddTool(mcp.NewTool("get_user",
		mcp.WithDescription("Get detailed information about a specific sevDesk user by ID."),
		mcp.WithString("userId", mcp.Required(), mcp.Description("The ID of the user to retrieve")),
	), t.getUser)
}

func (t *Tools) listUsers(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var args struct {
		Limit  *int `json:"limit"`
		Offset *int `json:"offset"`
	}
	if err := bindArguments(req, &args); err != nil {
		return errorResult(err)
	}
	q := url.Values{}
	addPagination(q, args.Limit, args.Offset)
	raw, err := t.client.ListUsers(ctx, q)
	if err != nil {
		return errorResult(err)
	}
	return rawResult(raw)
}

func (t *Tools) getUser(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	userID, err := req.RequireString("userId")
	if err != nil {
		return errorResult(err)
	}
	raw, err := t.client.GetUser(ctx, userID)
	if err != nil {
		return errorResult(err)
	}
	return rawResult(raw)
}
