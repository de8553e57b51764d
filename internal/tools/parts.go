package tools

import (
	"context"
	"net/url"

	"github.com/mark3labs/mcp-go/mcp"
)

type listPartsArgs struct {
	Limit      *int    `json:"limit"`
	Offset     *int    `json:"offset"`
	PartNumber *string `json:"partNumber"`
	Name       *string `json:"name"`
}

func buildListPartsQuery(args listPartsArgs) url.Values {
	q := url.Values{}
	addPagination(q, args.Limit, args.Offset)
	addString(q, "partNumber", args.PartNumber)
	addString(q, "name", args.Name)
	return q
}

type createPartArgs struct {
	Name            string   `json:"name"`
	PartNumber      string   `json:"partNumber"`
	UnityID         int      `json:"unityId"`
	TaxRate         float64  `json:"taxRate"`
	Text            *string  `json:"text"`
	CategoryID      *int     `json:"categoryId"`
	Stock           *float64 `json:"stock"`
	StockEnabled    *bool    `json:"stockEnabled"`
	Price           *float64 `json:"price"`
	PriceNet        *float64 `json:"priceNet"`
	PriceGross      *float64 `json:"priceGross"`
	PricePurchase   *float64 `json:"pricePurchase"`
	Status          *int     `json:"status"`
	InternalComment *string  `json:"internalComment"`
}

func buildCreatePartBody(args createPartArgs) Payload {
	p := Payload{
		"name":       args.Name,
		"partNumber": args.PartNumber,
		"unity":      Ref(args.UnityID, ObjectUnity),
		"taxRate":    args.TaxRate,
	}
	setOpt(p, "text", args.Text)
	setOptRef(p, "category", args.CategoryID, ObjectCategory)
	setOpt(p, "stock", args.Stock)
	setOpt(p, "stockEnabled", args.StockEnabled)
	setOpt(p, "price", args.Price)
	setOpt(p, "priceNet", args.PriceNet)
	setOpt(p, "priceGross", args.PriceGross)
	setOpt(p, "pricePurchase", args.PricePurchase)
	setOpt(p, "status", args.Status)
	setOpt(p, "internalComment", args.InternalComment)
	return p
}

type updatePartArgs struct {
	PartID          string   `json:"partId"`
	Name            *string  `json:"name"`
	PartNumber      *string  `json:"partNumber"`
	Text            *string  `json:"text"`
	Stock           *float64 `json:"stock"`
	StockEnabled    *bool    `json:"stockEnabled"`
	Price           *float64 `json:"price"`
	PriceNet        *float64 `json:"priceNet"`
	PriceGross      *float64 `json:"priceGross"`
	PricePurchase   *float64 `json:"pricePurchase"`
	TaxRate         *float64 `json:"taxRate"`
	Status          *int     `json:"status"`
	InternalComment *string  `json:"internalComment"`
}

func buildUpdatePartBody(args updatePartArgs) Payload {
	p := Payload{}
	setOpt(p, "name", args.Name)
	setOpt(p, "partNumber", args.PartNumber)
	setOpt(p, "text", args.Text)
	setOpt(p, "stock", args.Stock)
	setOpt(p, "stockEnabled", args.StockEnabled)
	setOpt(p, "price", args.Price)
	setOpt(p, "priceNet", args.PriceNet)
	setOpt(p, "priceGross", args.PriceGross)
	setOpt(p, "pricePurchase", args.PricePurchase)
	setOpt(p, "taxRate", args.TaxRate)
	setOpt(p, "status", args.Status)
	setOpt(p, "internalComment", args.InternalComment)
	return p
}

func (t *Tools) registerParts(s ToolServer) {
	s.AddTool(mcp.NewTool("list_parts",
		mcp.WithDescription("List parts/articles with optional filters."),
		mcp.WithNumber("limit", mcp.Description("Maximum number of results (default: 50)")),
		mcp.WithNumber("offset", mcp.Description("Number of results to skip for pagination")),
		mcp.WithString("partNumber", mcp.Description("Filter by part number")),
		mcp.WithString("name", mcp.Description("Filter by name (partial match)")),
	), t.listParts)

	s.AddTool(mcp.NewTool("get_part",
		mcp.WithDescription("Get detailed information about a specific part/article."),
		mcp.WithString("partId", mcp.Required(), mcp.Description("The ID of the part to retrieve")),
		mcp.WithArray("embed", mcp.Description("Related objects to embed"),
			mcp.Items(map[string]any{"type": "string"})),
	), t.getPart)

	s.AddTool(mcp.NewTool("create_part",
		mcp.WithDescription("Create a new part/article."),
		mcp.WithString("name", mcp.Required(), mcp.Description("Part name")),
		mcp.WithString("partNumber", mcp.Required(), mcp.Description("Part number (SKU)")),
		mcp.WithNumber("unityId", mcp.Required(), mcp.Description("Unity ID (1=piece, 2=hour, etc.)")),
		mcp.WithNumber("taxRate", mcp.Required(), mcp.Description("Tax rate in percent (e.g., 19)")),
		mcp.WithString("text", mcp.Description("Part description")),
		mcp.WithNumber("categoryId", mcp.Description("Category ID")),
		mcp.WithNumber("stock", mcp.Description("Current stock quantity")),
		mcp.WithBoolean("stockEnabled", mcp.Description("Enable stock tracking")),
		mcp.WithNumber("price", mcp.Description("Price (default: net)")),
		mcp.WithNumber("priceNet", mcp.Description("Net price")),
		mcp.WithNumber("priceGross", mcp.Description("Gross price")),
		mcp.WithNumber("pricePurchase", mcp.Description("Purchase price")),
		mcp.WithNumber("status", mcp.Description("Status (0=Inactive, 100=Active)")),
		mcp.WithString("internalComment", mcp.Description("Internal comment")),
	), t.createPart)

	s.AddTool(mcp.NewTool("update_part",
		mcp.WithDescription("Update an existing part/article."),
		mcp.WithString("partId", mcp.Required(), mcp.Description("The ID of the part to update")),
		mcp.WithString("name", mcp.Description("Part name")),
		mcp.WithString("partNumber", mcp.Description("Part number (SKU)")),
		mcp.WithString("text", mcp.Description("Part description")),
		mcp.WithNumber("stock", mcp.Description("Current stock quantity")),
		mcp.WithBoolean("stockEnabled", mcp.Description("Enable stock tracking")),
		mcp.WithNumber("price", mcp.Description("Price (default: net)")),
		mcp.WithNumber("priceNet", mcp.Description("Net price")),
		mcp.WithNumber("priceGross", mcp.Description("Gross price")),
		mcp.WithNumber("pricePurchase", mcp.Description("Purchase price")),
		mcp.WithNumber("taxRate", mcp.Description("Tax rate in percent")),
		mcp.WithNumber("status", mcp.Description("Status (0=Inactive, 100=Active)")),
		mcp.WithString("internalComment", mcp.Description("Internal comment")),
	), t.updatePart)
}

func (t *Tools) listParts(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var args listPartsArgs
	if err := bindArguments(req, &args); err != nil {
		return errorResult(err)
	}
	raw, err := t.client.ListParts(ctx, buildListPartsQuery(args))
	if err != nil {
		return errorResult(err)
	}
	return rawResult(raw)
}

func (t *Tools) getPart(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var args struct {
		PartID string   `json:"partId"`
		Embed  []string `json:"embed"`
	}
	if err := bindArguments(req, &args); err != nil {
		return errorResult(err)
	}
	q := url.Values{}
	addEmbed(q, args.Embed)
	raw, err := t.client.GetPart(ctx, args.PartID, q)
	if err != nil {
		return errorResult(err)
	}
	return rawResult(raw)
}

func (t *Tools) createPart(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var args createPartArgs
	if err := bindArguments(req, &args); err != nil {
		return errorResult(err)
	}
	raw, err := t.client.CreatePart(ctx, buildCreatePartBody(args))
	if err != nil {
		return errorResult(err)
	}
	return rawResult(raw)
}

func (t *Tools) updatePart(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var args updatePartArgs
	if err := bindArguments(req, &args); err != nil {
		return errorResult(err)
	}
	raw, err := t.client.UpdatePart(ctx, args.PartID, buildUpdatePartBody(args))
	if err != nil {
		return errorResult(err)
	}
	return rawResult(raw)
}
