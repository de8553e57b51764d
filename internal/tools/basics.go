package tools

import (
	"context"
	"net/url"

	"github.com/mark3labs/mcp-go/mcp"
)

func (t *Tools) registerBasics(s ToolServer) {
	s.AddTool(mcp.NewTool("get_system_version",
		mcp.WithDescription("Get the current sevDesk system version."),
	), t.getSystemVersion)

	s.AddTool(mcp.NewTool("get_next_sequence_number",
		mcp.WithDescription("Get the next sequence number for a specific document type."),
		mcp.WithString("objectType", mcp.Required(), mcp.Description("Object type (e.g., Invoice, CreditNote, Order, Voucher)")),
	), t.getNextSequenceNumber)

	s.AddTool(mcp.NewTool("export_data",
		mcp.WithDescription("Export data of a specific object type. Returns a list of objects."),
		mcp.WithString("objectType", mcp.Required(), mcp.Description("Type of objects to export"),
			mcp.Enum("Contact", "Invoice", "CreditNote", "Order", "Voucher", "Part", "CheckAccount", "CheckAccountTransaction")),
		mcp.WithString("startDate", mcp.Description("Filter by start date (YYYY-MM-DD)")),
		mcp.WithString("endDate", mcp.Description("Filter by end date (YYYY-MM-DD)")),
	), t.exportData)
}

func (t *Tools) getSystemVersion(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	raw, err := t.client.GetSystemVersion(ctx)
	if err != nil {
		return errorResult(err)
	}
	return rawResult(raw)
}

func (t *Tools) getNextSequenceNumber(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	objectType, err := req.RequireString("objectType")
	if err != nil {
		return errorResult(err)
	}
	raw, err := t.client.GetNextSequenceNumber(ctx, objectType)
	if err != nil {
		return errorResult(err)
	}
	return rawResult(raw)
}

func (t *Tools) exportData(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var args struct {
		ObjectType string  `json:"objectType"`
		StartDate  *string `json:"startDate"`
		EndDate    *string `json:"endDate"`
	}
	if err := bindArguments(req, &args); err != nil {
		return errorResult(err)
	}
	q := url.Values{}
	addString(q, "startDate", args.StartDate)
	addString(q, "endDate", args.EndDate)
	raw, err := t.client.ExportData(ctx, args.ObjectType, q)
	if err != nil {
		return errorResult(err)
	}
	return rawResult(raw)
}
