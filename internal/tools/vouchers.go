package tools

import (
	"context"
	"net/url"

	"github.com/mark3labs/mcp-go/mcp"
)

// VoucherPosition is one line item of a voucher. Unlike document positions
// it books against an accounting type instead of a unity/part.
type VoucherPosition struct {
	AccountingTypeID int     `json:"accountingTypeId"`
	TaxRate          float64 `json:"taxRate"`
	SumNet           float64 `json:"sumNet"`
	SumGross         float64 `json:"sumGross"`
	Net              bool    `json:"net"`
	IsAsset          *bool   `json:"isAsset"`
	Comment          *string `json:"comment"`
}

func buildVoucherPositions(positions []VoucherPosition) []Payload {
	out := make([]Payload, 0, len(positions))
	for _, pos := range positions {
		p := Payload{
			"objectName":     ObjectVoucherPos,
			"accountingType": Ref(pos.AccountingTypeID, ObjectAccountingType),
			"taxRate":        pos.TaxRate,
			"sumNet":         pos.SumNet,
			"sumGross":       pos.SumGross,
			"net":            pos.Net,
			"mapAll":         true,
		}
		setOpt(p, "isAsset", pos.IsAsset)
		setOpt(p, "comment", pos.Comment)
		out = append(out, p)
	}
	return out
}

type listVouchersArgs struct {
	Limit       *int    `json:"limit"`
	Offset      *int    `json:"offset"`
	Status      *int    `json:"status"`
	VoucherType *string `json:"voucherType"`
	StartDate   *string `json:"startDate"`
	EndDate     *string `json:"endDate"`
}

func buildListVouchersQuery(args listVouchersArgs) url.Values {
	q := url.Values{}
	addPagination(q, args.Limit, args.Offset)
	addInt(q, "status", args.Status)
	addString(q, "voucherType", args.VoucherType)
	addString(q, "startDate", args.StartDate)
	addString(q, "endDate", args.EndDate)
	return q
}

type createVoucherArgs struct {
	VoucherDate       string            `json:"voucherDate"`
	Positions         []VoucherPosition `json:"positions"`
	SupplierID        *int              `json:"supplierId"`
	SupplierName      *string           `json:"supplierName"`
	Description       *string           `json:"description"`
	Status            *int              `json:"status"`
	CreditDebit       string            `json:"creditDebit"`
	TaxType           string            `json:"taxType"`
	VoucherType       *string           `json:"voucherType"`
	Currency          *string           `json:"currency"`
	TaxSetID          *int              `json:"taxSetId"`
	PaymentDeadline   *string           `json:"paymentDeadline"`
	DeliveryDate      *string           `json:"deliveryDate"`
	DeliveryDateUntil *string           `json:"deliveryDateUntil"`
}

func buildCreateVoucherBody(args createVoucherArgs) Payload {
	voucher := Payload{
		"objectName":  ObjectVoucher,
		"voucherDate": args.VoucherDate,
		"creditDebit": args.CreditDebit,
		"taxType":     args.TaxType,
		"mapAll":      true,
	}
	setOptRef(voucher, "supplier", args.SupplierID, ObjectContact)
	setOpt(voucher, "supplierName", args.SupplierName)
	setOpt(voucher, "description", args.Description)
	setOpt(voucher, "status", args.Status)
	setOpt(voucher, "voucherType", args.VoucherType)
	setOpt(voucher, "currency", args.Currency)
	setOptRef(voucher, "taxSet", args.TaxSetID, ObjectTaxSet)
	setOpt(voucher, "paymentDeadline", args.PaymentDeadline)
	setOpt(voucher, "deliveryDate", args.DeliveryDate)
	setOpt(voucher, "deliveryDateUntil", args.DeliveryDateUntil)

	return Payload{
		"voucher":        voucher,
		"voucherPosSave": buildVoucherPositions(args.Positions),
	}
}

type updateVoucherArgs struct {
	VoucherID       string  `json:"voucherId"`
	Description     *string `json:"description"`
	Status          *int    `json:"status"`
	PaymentDeadline *string `json:"paymentDeadline"`
}

func buildUpdateVoucherBody(args updateVoucherArgs) Payload {
	p := Payload{}
	setOpt(p, "description", args.Description)
	setOpt(p, "status", args.Status)
	setOpt(p, "paymentDeadline", args.PaymentDeadline)
	return p
}

func voucherPositionItemSchema() map[string]any {
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"accountingTypeId": map[string]any{"type": "number", "description": "Accounting type ID (expense account)"},
			"taxRate":          map[string]any{"type": "number", "description": "Tax rate in percent (e.g., 19)"},
			"sumNet":           map[string]any{"type": "number", "description": "Net amount"},
			"sumGross":         map[string]any{"type": "number", "description": "Gross amount"},
			"net":              map[string]any{"type": "boolean", "description": "Whether the amount is net (true) or gross (false)"},
			"isAsset":          map[string]any{"type": "boolean", "description": "Whether this is an asset"},
			"comment":          map[string]any{"type": "string", "description": "Comment for this position"},
		},
		"required": []string{"accountingTypeId", "taxRate", "sumNet", "sumGross", "net"},
	}
}

func (t *Tools) registerVouchers(s ToolServer) {
	s.AddTool(mcp.NewTool("list_vouchers",
		mcp.WithDescription("List vouchers (receipts/expense documents) with optional filters."),
		mcp.WithNumber("limit", mcp.Description("Maximum number of results (default: 50)")),
		mcp.WithNumber("offset", mcp.Description("Number of results to skip for pagination")),
		mcp.WithNumber("status", mcp.Description("Filter by status (50=Draft, 100=Unpaid, 1000=Paid)")),
		mcp.WithString("voucherType", mcp.Description("Filter by voucher type (VOU=Voucher, RV=Recurring voucher)")),
		mcp.WithString("startDate", mcp.Description("Filter by start date (YYYY-MM-DD)")),
		mcp.WithString("endDate", mcp.Description("Filter by end date (YYYY-MM-DD)")),
	), t.listVouchers)

	s.AddTool(mcp.NewTool("get_voucher",
		mcp.WithDescription("Get detailed information about a specific voucher."),
		mcp.WithString("voucherId", mcp.Required(), mcp.Description("The ID of the voucher to retrieve")),
		mcp.WithArray("embed", mcp.Description("Related objects to embed (e.g., positions, supplier)"),
			mcp.Items(map[string]any{"type": "string"})),
	), t.getVoucher)

	s.AddTool(mcp.NewTool("create_voucher",
		mcp.WithDescription("Create a new voucher (expense document) with positions."),
		mcp.WithString("voucherDate", mcp.Required(), mcp.Description("Voucher date (YYYY-MM-DD)")),
		mcp.WithArray("positions", mcp.Required(), mcp.Description("Voucher line items"),
			mcp.Items(voucherPositionItemSchema())),
		mcp.WithNumber("supplierId", mcp.Description("The ID of the supplier contact")),
		mcp.WithString("supplierName", mcp.Description("Supplier name (if no supplier contact)")),
		mcp.WithString("description", mcp.Description("Voucher description")),
		mcp.WithNumber("status", mcp.Description("Status (50=Draft, 100=Unpaid, 1000=Paid)")),
		mcp.WithString("creditDebit", mcp.Required(), mcp.Description("Credit (C) or Debit (D)"), mcp.Enum("C", "D")),
		mcp.WithString("taxType", mcp.Required(), mcp.Description("Tax type (default, eu, noteu, custom, ss)")),
		mcp.WithString("voucherType", mcp.Description("Voucher type (VOU=Voucher, RV=Recurring)"), mcp.Enum("VOU", "RV")),
		mcp.WithString("currency", mcp.Description("Currency code (default: EUR)")),
		mcp.WithNumber("taxSetId", mcp.Description("Tax set ID")),
		mcp.WithString("paymentDeadline", mcp.Description("Payment deadline (YYYY-MM-DD)")),
		mcp.WithString("deliveryDate", mcp.Description("Delivery date (YYYY-MM-DD)")),
		mcp.WithString("deliveryDateUntil", mcp.Description("Delivery end date (YYYY-MM-DD)")),
	), t.createVoucher)

	s.AddTool(mcp.NewTool("update_voucher",
		mcp.WithDescription("Update an existing voucher. Only works for draft vouchers (status 50)."),
		mcp.WithString("voucherId", mcp.Required(), mcp.Description("The ID of the voucher to update")),
		mcp.WithString("description", mcp.Description("Voucher description")),
		mcp.WithNumber("status", mcp.Description("Status (50=Draft, 100=Unpaid, 1000=Paid)")),
		mcp.WithString("paymentDeadline", mcp.Description("Payment deadline (YYYY-MM-DD)")),
	), t.updateVoucher)

	s.AddTool(mcp.NewTool("book_voucher",
		mcp.WithDescription("Book a payment for a voucher."),
		mcp.WithString("voucherId", mcp.Required(), mcp.Description("The ID of the voucher")),
		mcp.WithNumber("amount", mcp.Required(), mcp.Description("Payment amount")),
		mcp.WithString("date", mcp.Required(), mcp.Description("Payment date (YYYY-MM-DD)")),
		mcp.WithString("type", mcp.Required(), mcp.Description("Payment type (e.g., \"N\" for normal)")),
		mcp.WithNumber("checkAccountId", mcp.Description("ID of the check account")),
		mcp.WithBoolean("createFeed", mcp.Description("Create a feed entry")),
	), t.bookVoucher)
}

func (t *Tools) listVouchers(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var args listVouchersArgs
	if err := bindArguments(req, &args); err != nil {
		return errorResult(err)
	}
	raw, err := t.client.ListVouchers(ctx, buildListVouchersQuery(args))
	if err != nil {
		return errorResult(err)
	}
	return rawResult(raw)
}

func (t *Tools) getVoucher(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var args struct {
		VoucherID string   `json:"voucherId"`
		Embed     []string `json:"embed"`
	}
	if err := bindArguments(req, &args); err != nil {
		return errorResult(err)
	}
	q := url.Values{}
	addEmbed(q, args.Embed)
	raw, err := t.client.GetVoucher(ctx, args.VoucherID, q)
	if err != nil {
		return errorResult(err)
	}
	return rawResult(raw)
}

func (t *Tools) createVoucher(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var args createVoucherArgs
	if err := bindArguments(req, &args); err != nil {
		return errorResult(err)
	}
	raw, err := t.client.CreateVoucher(ctx, buildCreateVoucherBody(args))
	if err != nil {
		return errorResult(err)
	}
	return rawResult(raw)
}

func (t *Tools) updateVoucher(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var args updateVoucherArgs
	if err := bindArguments(req, &args); err != nil {
		return errorResult(err)
	}
	raw, err := t.client.UpdateVoucher(ctx, args.VoucherID, buildUpdateVoucherBody(args))
	if err != nil {
		return errorResult(err)
	}
	return rawResult(raw)
}

func (t *Tools) bookVoucher(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var args struct {
		VoucherID string `json:"voucherId"`
		PaymentArgs
	}
	if err := bindArguments(req, &args); err != nil {
		return errorResult(err)
	}
	raw, err := t.client.BookVoucher(ctx, args.VoucherID, buildPaymentBody(args.PaymentArgs))
	if err != nil {
		return errorResult(err)
	}
	return rawResult(raw)
}
