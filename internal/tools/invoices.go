package tools

import (
	"context"
	"fmt"
	"net/url"

	"github.com/mark3labs/mcp-go/mcp"
)

type listInvoicesArgs struct {
	Limit         *int    `json:"limit"`
	Offset        *int    `json:"offset"`
	Status        *int    `json:"status"`
	InvoiceNumber *string `json:"invoiceNumber"`
	StartDate     *string `json:"startDate"`
	EndDate       *string `json:"endDate"`
	ContactID     *string `json:"contactId"`
}

func buildListInvoicesQuery(args listInvoicesArgs) url.Values {
	q := url.Values{}
	addPagination(q, args.Limit, args.Offset)
	addInt(q, "status", args.Status)
	addString(q, "invoiceNumber", args.InvoiceNumber)
	addString(q, "startDate", args.StartDate)
	addString(q, "endDate", args.EndDate)
	addEntityFilter(q, "contact", args.ContactID, ObjectContact)
	return q
}

type createInvoiceArgs struct {
	ContactID         int                `json:"contactId"`
	InvoiceDate       string             `json:"invoiceDate"`
	Positions         []DocumentPosition `json:"positions"`
	Header            *string            `json:"header"`
	HeadText          *string            `json:"headText"`
	FootText          *string            `json:"footText"`
	TimeToPay         *int               `json:"timeToPay"`
	Discount          *float64           `json:"discount"`
	DiscountTime      *int               `json:"discountTime"`
	DeliveryDate      *string            `json:"deliveryDate"`
	DeliveryDateUntil *string            `json:"deliveryDateUntil"`
	Status            *int               `json:"status"`
	InvoiceType       *string            `json:"invoiceType"`
	Currency          *string            `json:"currency"`
	ShowNet           *bool              `json:"showNet"`
	AddressName       *string            `json:"addressName"`
	AddressStreet     *string            `json:"addressStreet"`
	AddressZip        *string            `json:"addressZip"`
	AddressCity       *string            `json:"addressCity"`
	AddressCountryID  *int               `json:"addressCountryId"`
	TaxRate           *float64           `json:"taxRate"`
	TaxType           *string            `json:"taxType"`
	TaxSetID          *int               `json:"taxSetId"`
	PaymentMethodID   *int               `json:"paymentMethodId"`
	SmallSettlement   *bool              `json:"smallSettlement"`
}

// buildCreateInvoiceBody shapes the invoice header and its positions as
// siblings in one request body; sevDesk models document + positions as one
// transactional write.
func buildCreateInvoiceBody(args createInvoiceArgs) Payload {
	invoice := Payload{
		"objectName":  ObjectInvoice,
		"contact":     Ref(args.ContactID, ObjectContact),
		"invoiceDate": args.InvoiceDate,
		"mapAll":      true,
	}
	setOpt(invoice, "header", args.Header)
	setOpt(invoice, "headText", args.HeadText)
	setOpt(invoice, "footText", args.FootText)
	setOpt(invoice, "timeToPay", args.TimeToPay)
	setOpt(invoice, "discount", args.Discount)
	setOpt(invoice, "discountTime", args.DiscountTime)
	setOpt(invoice, "deliveryDate", args.DeliveryDate)
	setOpt(invoice, "deliveryDateUntil", args.DeliveryDateUntil)
	setOpt(invoice, "status", args.Status)
	setOpt(invoice, "invoiceType", args.InvoiceType)
	setOpt(invoice, "currency", args.Currency)
	setOpt(invoice, "showNet", args.ShowNet)
	setOpt(invoice, "addressName", args.AddressName)
	setOpt(invoice, "addressStreet", args.AddressStreet)
	setOpt(invoice, "addressZip", args.AddressZip)
	setOpt(invoice, "addressCity", args.AddressCity)
	setOptRef(invoice, "addressCountry", args.AddressCountryID, ObjectStaticCountry)
	setOpt(invoice, "taxRate", args.TaxRate)
	setOpt(invoice, "taxType", args.TaxType)
	setOptRef(invoice, "taxSet", args.TaxSetID, ObjectTaxSet)
	setOptRef(invoice, "paymentMethod", args.PaymentMethodID, ObjectPaymentMethod)
	setOpt(invoice, "smallSettlement", args.SmallSettlement)

	return Payload{
		"invoice":        invoice,
		"invoicePosSave": buildPositions(ObjectInvoicePos, args.Positions),
	}
}

type updateInvoiceArgs struct {
	InvoiceID         string   `json:"invoiceId"`
	Header            *string  `json:"header"`
	HeadText          *string  `json:"headText"`
	FootText          *string  `json:"footText"`
	TimeToPay         *int     `json:"timeToPay"`
	Discount          *float64 `json:"discount"`
	DeliveryDate      *string  `json:"deliveryDate"`
	DeliveryDateUntil *string  `json:"deliveryDateUntil"`
	Status            *int     `json:"status"`
}

func buildUpdateInvoiceBody(args updateInvoiceArgs) Payload {
	p := Payload{}
	setOpt(p, "header", args.Header)
	setOpt(p, "headText", args.HeadText)
	setOpt(p, "footText", args.FootText)
	setOpt(p, "timeToPay", args.TimeToPay)
	setOpt(p, "discount", args.Discount)
	setOpt(p, "deliveryDate", args.DeliveryDate)
	setOpt(p, "deliveryDateUntil", args.DeliveryDateUntil)
	setOpt(p, "status", args.Status)
	return p
}

func (t *Tools) registerInvoices(s ToolServer) {
	s.AddTool(mcp.NewTool("list_invoices",
		mcp.WithDescription("List invoices with optional filters."),
		mcp.WithNumber("limit", mcp.Description("Maximum number of results (default: 50)")),
		mcp.WithNumber("offset", mcp.Description("Number of results to skip for pagination")),
		mcp.WithNumber("status", mcp.Description("Filter by status (100=Draft, 200=Open, 1000=Paid)")),
		mcp.WithString("invoiceNumber", mcp.Description("Filter by invoice number")),
		mcp.WithString("startDate", mcp.Description("Filter by start date (YYYY-MM-DD)")),
		mcp.WithString("endDate", mcp.Description("Filter by end date (YYYY-MM-DD)")),
		mcp.WithString("contactId", mcp.Description("Filter by contact ID")),
	), t.listInvoices)

	s.AddTool(mcp.NewTool("get_invoice",
		mcp.WithDescription("Get detailed information about a specific invoice."),
		mcp.WithString("invoiceId", mcp.Required(), mcp.Description("The ID of the invoice to retrieve")),
		mcp.WithArray("embed", mcp.Description("Related objects to embed (e.g., positions, contact)"),
			mcp.Items(map[string]any{"type": "string"})),
	), t.getInvoice)

	s.AddTool(mcp.NewTool("create_invoice",
		mcp.WithDescription("Create a new invoice with positions."),
		mcp.WithNumber("contactId", mcp.Required(), mcp.Description("The ID of the contact/customer")),
		mcp.WithString("invoiceDate", mcp.Required(), mcp.Description("Invoice date (YYYY-MM-DD)")),
		mcp.WithArray("positions", mcp.Required(), mcp.Description("Invoice line items"),
			mcp.Items(positionItemSchema(false))),
		mcp.WithString("header", mcp.Description("Invoice header/subject")),
		mcp.WithString("headText", mcp.Description("Text before positions")),
		mcp.WithString("footText", mcp.Description("Text after positions")),
		mcp.WithNumber("timeToPay", mcp.Description("Payment terms in days")),
		mcp.WithNumber("discount", mcp.Description("Discount in percent")),
		mcp.WithNumber("discountTime", mcp.Description("Early payment discount time in days")),
		mcp.WithString("deliveryDate", mcp.Description("Delivery date (YYYY-MM-DD)")),
		mcp.WithString("deliveryDateUntil", mcp.Description("Delivery end date (YYYY-MM-DD)")),
		mcp.WithNumber("status", mcp.Description("Status (100=Draft, 200=Open)")),
		mcp.WithString("invoiceType", mcp.Description("Invoice type"), mcp.Enum("RE", "WKR", "SR", "MA", "TR", "ER")),
		mcp.WithString("currency", mcp.Description("Currency code (default: EUR)")),
		mcp.WithBoolean("showNet", mcp.Description("Show net prices")),
		mcp.WithString("addressName", mcp.Description("Custom address name")),
		mcp.WithString("addressStreet", mcp.Description("Custom address street")),
		mcp.WithString("addressZip", mcp.Description("Custom address ZIP")),
		mcp.WithString("addressCity", mcp.Description("Custom address city")),
		mcp.WithNumber("addressCountryId", mcp.Description("Custom address country ID")),
		mcp.WithNumber("taxRate", mcp.Description("Default tax rate")),
		mcp.WithString("taxType", mcp.Description("Tax type (default, eu, noteu, custom)")),
		mcp.WithNumber("taxSetId", mcp.Description("Tax set ID")),
		mcp.WithNumber("paymentMethodId", mcp.Description("Payment method ID")),
		mcp.WithBoolean("smallSettlement", mcp.Description("Small business regulation (Kleinunternehmer)")),
	), t.createInvoice)

	s.AddTool(mcp.NewTool("update_invoice",
		mcp.WithDescription("Update an existing invoice. Only works for draft invoices (status 100)."),
		mcp.WithString("invoiceId", mcp.Required(), mcp.Description("The ID of the invoice to update")),
		mcp.WithString("header", mcp.Description("Invoice header/subject")),
		mcp.WithString("headText", mcp.Description("Text before positions")),
		mcp.WithString("footText", mcp.Description("Text after positions")),
		mcp.WithNumber("timeToPay", mcp.Description("Payment terms in days")),
		mcp.WithNumber("discount", mcp.Description("Discount in percent")),
		mcp.WithString("deliveryDate", mcp.Description("Delivery date (YYYY-MM-DD)")),
		mcp.WithString("deliveryDateUntil", mcp.Description("Delivery end date (YYYY-MM-DD)")),
		mcp.WithNumber("status", mcp.Description("Status (100=Draft, 200=Open)")),
	), t.updateInvoice)

	s.AddTool(mcp.NewTool("delete_invoice",
		mcp.WithDescription("Delete an invoice. Only works for draft invoices (status 100)."),
		mcp.WithString("invoiceId", mcp.Required(), mcp.Description("The ID of the invoice to delete")),
	), t.deleteInvoice)

	s.AddTool(mcp.NewTool("send_invoice_email",
		mcp.WithDescription("Send an invoice via email."),
		mcp.WithString("invoiceId", mcp.Required(), mcp.Description("The ID of the invoice to send")),
		mcp.WithString("toEmail", mcp.Required(), mcp.Description("Recipient email address")),
		mcp.WithString("subject", mcp.Required(), mcp.Description("Email subject")),
		mcp.WithString("text", mcp.Required(), mcp.Description("Email body text")),
		mcp.WithBoolean("copy", mcp.Description("Send a copy to yourself")),
		mcp.WithString("ccEmail", mcp.Description("CC email address")),
		mcp.WithString("bccEmail", mcp.Description("BCC email address")),
	), t.sendInvoiceEmail)

	s.AddTool(mcp.NewTool("book_invoice_payment",
		mcp.WithDescription("Book a payment for an invoice."),
		mcp.WithString("invoiceId", mcp.Required(), mcp.Description("The ID of the invoice")),
		mcp.WithNumber("amount", mcp.Required(), mcp.Description("Payment amount")),
		mcp.WithString("date", mcp.Required(), mcp.Description("Payment date (YYYY-MM-DD)")),
		mcp.WithString("type", mcp.Required(), mcp.Description("Payment type (e.g., \"N\" for normal)")),
		mcp.WithNumber("checkAccountId", mcp.Description("ID of the check account")),
		mcp.WithBoolean("createFeed", mcp.Description("Create a feed entry")),
	), t.bookInvoicePayment)

	s.AddTool(mcp.NewTool("enshrine_invoice",
		mcp.WithDescription("Lock/enshrine an invoice. Once enshrined, it cannot be modified."),
		mcp.WithString("invoiceId", mcp.Required(), mcp.Description("The ID of the invoice to enshrine")),
	), t.enshrineInvoice)

	s.AddTool(mcp.NewTool("reset_invoice_to_draft",
		mcp.WithDescription("Reset an invoice back to draft status. Only possible if no payments have been booked."),
		mcp.WithString("invoiceId", mcp.Required(), mcp.Description("The ID of the invoice to reset")),
	), t.resetInvoiceToDraft)

	s.AddTool(mcp.NewTool("get_invoice_pdf",
		mcp.WithDescription("Get the PDF download information for an invoice."),
		mcp.WithString("invoiceId", mcp.Required(), mcp.Description("The ID of the invoice")),
	), t.getInvoicePdf)

	s.AddTool(mcp.NewTool("export_invoice_xml",
		mcp.WithDescription("Export an invoice as XRechnung XML format."),
		mcp.WithString("invoiceId", mcp.Required(), mcp.Description("The ID of the invoice to export")),
	), t.exportInvoiceXml)

	s.AddTool(mcp.NewTool("create_invoice_from_order",
		mcp.WithDescription("Create an invoice from an existing order."),
		mcp.WithString("orderId", mcp.Required(), mcp.Description("The ID of the order to convert")),
	), t.createInvoiceFromOrder)
}

func (t *Tools) listInvoices(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var args listInvoicesArgs
	if err := bindArguments(req, &args); err != nil {
		return errorResult(err)
	}
	raw, err := t.client.ListInvoices(ctx, buildListInvoicesQuery(args))
	if err != nil {
		return errorResult(err)
	}
	return rawResult(raw)
}

func (t *Tools) getInvoice(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var args struct {
		InvoiceID string   `json:"invoiceId"`
		Embed     []string `json:"embed"`
	}
	if err := bindArguments(req, &args); err != nil {
		return errorResult(err)
	}
	q := url.Values{}
	addEmbed(q, args.Embed)
	raw, err := t.client.GetInvoice(ctx, args.InvoiceID, q)
	if err != nil {
		return errorResult(err)
	}
	return rawResult(raw)
}

func (t *Tools) createInvoice(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var args createInvoiceArgs
	if err := bindArguments(req, &args); err != nil {
		return errorResult(err)
	}
	raw, err := t.client.CreateInvoice(ctx, buildCreateInvoiceBody(args))
	if err != nil {
		return errorResult(err)
	}
	return rawResult(raw)
}

func (t *Tools) updateInvoice(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var args updateInvoiceArgs
	if err := bindArguments(req, &args); err != nil {
		return errorResult(err)
	}
	raw, err := t.client.UpdateInvoice(ctx, args.InvoiceID, buildUpdateInvoiceBody(args))
	if err != nil {
		return errorResult(err)
	}
	return rawResult(raw)
}

func (t *Tools) deleteInvoice(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	invoiceID, err := req.RequireString("invoiceId")
	if err != nil {
		return errorResult(err)
	}
	if err := t.client.DeleteInvoice(ctx, invoiceID); err != nil {
		return errorResult(err)
	}
	return mcp.NewToolResultText(fmt.Sprintf("Invoice %s deleted successfully.", invoiceID)), nil
}

func (t *Tools) sendInvoiceEmail(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var args struct {
		InvoiceID string `json:"invoiceId"`
		EmailArgs
	}
	if err := bindArguments(req, &args); err != nil {
		return errorResult(err)
	}
	raw, err := t.client.SendInvoiceEmail(ctx, args.InvoiceID, buildEmailBody(args.EmailArgs))
	if err != nil {
		return errorResult(err)
	}
	return rawResult(raw)
}

func (t *Tools) bookInvoicePayment(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var args struct {
		InvoiceID string `json:"invoiceId"`
		PaymentArgs
	}
	if err := bindArguments(req, &args); err != nil {
		return errorResult(err)
	}
	raw, err := t.client.BookInvoicePayment(ctx, args.InvoiceID, buildPaymentBody(args.PaymentArgs))
	if err != nil {
		return errorResult(err)
	}
	return rawResult(raw)
}

func (t *Tools) enshrineInvoice(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	invoiceID, err := req.RequireString("invoiceId")
	if err != nil {
		return errorResult(err)
	}
	raw, err := t.client.EnshrineInvoice(ctx, invoiceID)
	if err != nil {
		return errorResult(err)
	}
	return rawResult(raw)
}

func (t *Tools) resetInvoiceToDraft(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	invoiceID, err := req.RequireString("invoiceId")
	if err != nil {
		return errorResult(err)
	}
	raw, err := t.client.ResetInvoiceToDraft(ctx, invoiceID)
	if err != nil {
		return errorResult(err)
	}
	return rawResult(raw)
}

func (t *Tools) getInvoicePdf(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	invoiceID, err := req.RequireString("invoiceId")
	if err != nil {
		return errorResult(err)
	}
	raw, err := t.client.GetInvoicePdf(ctx, invoiceID)
	if err != nil {
		return errorResult(err)
	}
	return rawResult(raw)
}

func (t *Tools) exportInvoiceXml(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	invoiceID, err := req.RequireString("invoiceId")
	if err != nil {
		return errorResult(err)
	}
	raw, err := t.client.ExportInvoiceXml(ctx, invoiceID)
	if err != nil {
		return errorResult(err)
	}
	return rawResult(raw)
}

func (t *Tools) createInvoiceFromOrder(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	orderID, err := req.RequireString("orderId")
	if err != nil {
		return errorResult(err)
	}
	body := Payload{"order": map[string]any{"id": orderID, "objectName": ObjectOrder}}
	raw, err := t.client.CreateInvoiceFromOrder(ctx, body)
	if err != nil {
		return errorResult(err)
	}
	return rawResult(raw)
}
