package tools

import (
	"context"
	"fmt"
	"net/url"

	"github.com/mark3labs/mcp-go/mcp"
)

type listCreditNotesArgs struct {
	Limit            *int    `json:"limit"`
	Offset           *int    `json:"offset"`
	Status           *int    `json:"status"`
	CreditNoteNumber *string `json:"creditNoteNumber"`
	StartDate        *string `json:"startDate"`
	EndDate          *string `json:"endDate"`
	ContactID        *string `json:"contactId"`
}

func buildListCreditNotesQuery(args listCreditNotesArgs) url.Values {
	q := url.Values{}
	addPagination(q, args.Limit, args.Offset)
	addInt(q, "status", args.Status)
	addString(q, "creditNoteNumber", args.CreditNoteNumber)
	addString(q, "startDate", args.StartDate)
	addString(q, "endDate", args.EndDate)
	addEntityFilter(q, "contact", args.ContactID, ObjectContact)
	return q
}

type createCreditNoteArgs struct {
	ContactID        int                `json:"contactId"`
	CreditNoteDate   string             `json:"creditNoteDate"`
	Positions        []DocumentPosition `json:"positions"`
	Header           *string            `json:"header"`
	HeadText         *string            `json:"headText"`
	FootText         *string            `json:"footText"`
	Status           *int               `json:"status"`
	Currency         *string            `json:"currency"`
	ShowNet          *bool              `json:"showNet"`
	AddressName      *string            `json:"addressName"`
	AddressStreet    *string            `json:"addressStreet"`
	AddressZip       *string            `json:"addressZip"`
	AddressCity      *string            `json:"addressCity"`
	AddressCountryID *int               `json:"addressCountryId"`
	TaxRate          *float64           `json:"taxRate"`
	TaxType          *string            `json:"taxType"`
	TaxSetID         *int               `json:"taxSetId"`
	ContactPersonID  *int               `json:"contactPersonId"`
}

func buildCreateCreditNoteBody(args createCreditNoteArgs) Payload {
	creditNote := Payload{
		"objectName":     ObjectCreditNote,
		"contact":        Ref(args.ContactID, ObjectContact),
		"creditNoteDate": args.CreditNoteDate,
		"mapAll":         true,
	}
	setOpt(creditNote, "header", args.Header)
	setOpt(creditNote, "headText", args.HeadText)
	setOpt(creditNote, "footText", args.FootText)
	setOpt(creditNote, "status", args.Status)
	setOpt(creditNote, "currency", args.Currency)
	setOpt(creditNote, "showNet", args.ShowNet)
	setOpt(creditNote, "addressName", args.AddressName)
	setOpt(creditNote, "addressStreet", args.AddressStreet)
	setOpt(creditNote, "addressZip", args.AddressZip)
	setOpt(creditNote, "addressCity", args.AddressCity)
	setOptRef(creditNote, "addressCountry", args.AddressCountryID, ObjectStaticCountry)
	setOpt(creditNote, "taxRate", args.TaxRate)
	setOpt(creditNote, "taxType", args.TaxType)
	setOptRef(creditNote, "taxSet", args.TaxSetID, ObjectTaxSet)
	setOptRef(creditNote, "contactPerson", args.ContactPersonID, ObjectSevUser)

	return Payload{
		"creditNote":        creditNote,
		"creditNotePosSave": buildPositions(ObjectCreditNotePos, args.Positions),
	}
}

type updateCreditNoteArgs struct {
	CreditNoteID string  `json:"creditNoteId"`
	Header       *string `json:"header"`
	HeadText     *string `json:"headText"`
	FootText     *string `json:"footText"`
	Status       *int    `json:"status"`
}

func buildUpdateCreditNoteBody(args updateCreditNoteArgs) Payload {
	p := Payload{}
	setOpt(p, "header", args.Header)
	setOpt(p, "headText", args.HeadText)
	setOpt(p, "footText", args.FootText)
	setOpt(p, "status", args.Status)
	return p
}

func (t *Tools) registerCreditNotes(s ToolServer) {
	s.AddTool(mcp.NewTool("list_credit_notes",
		mcp.WithDescription("List credit notes with optional filters."),
		mcp.WithNumber("limit", mcp.Description("Maximum number of results (default: 50)")),
		mcp.WithNumber("offset", mcp.Description("Number of results to skip for pagination")),
		mcp.WithNumber("status", mcp.Description("Filter by status (100=Draft, 200=Open, 1000=Paid)")),
		mcp.WithString("creditNoteNumber", mcp.Description("Filter by credit note number")),
		mcp.WithString("startDate", mcp.Description("Filter by start date (YYYY-MM-DD)")),
		mcp.WithString("endDate", mcp.Description("Filter by end date (YYYY-MM-DD)")),
		mcp.WithString("contactId", mcp.Description("Filter by contact ID")),
	), t.listCreditNotes)

	s.AddTool(mcp.NewTool("get_credit_note",
		mcp.WithDescription("Get detailed information about a specific credit note."),
		mcp.WithString("creditNoteId", mcp.Required(), mcp.Description("The ID of the credit note to retrieve")),
		mcp.WithArray("embed", mcp.Description("Related objects to embed (e.g., positions, contact)"),
			mcp.Items(map[string]any{"type": "string"})),
	), t.getCreditNote)

	s.AddTool(mcp.NewTool("create_credit_note",
		mcp.WithDescription("Create a new credit note with positions."),
		mcp.WithNumber("contactId", mcp.Required(), mcp.Description("The ID of the contact/customer")),
		mcp.WithString("creditNoteDate", mcp.Required(), mcp.Description("Credit note date (YYYY-MM-DD)")),
		mcp.WithArray("positions", mcp.Required(), mcp.Description("Credit note line items"),
			mcp.Items(positionItemSchema(false))),
		mcp.WithString("header", mcp.Description("Credit note header/subject")),
		mcp.WithString("headText", mcp.Description("Text before positions")),
		mcp.WithString("footText", mcp.Description("Text after positions")),
		mcp.WithNumber("status", mcp.Description("Status (100=Draft, 200=Open)")),
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
		mcp.WithNumber("contactPersonId", mcp.Description("ID of the sevDesk user to set as contact person")),
	), t.createCreditNote)

	s.AddTool(mcp.NewTool("update_credit_note",
		mcp.WithDescription("Update an existing credit note. Only works for draft credit notes (status 100)."),
		mcp.WithString("creditNoteId", mcp.Required(), mcp.Description("The ID of the credit note to update")),
		mcp.WithString("header", mcp.Description("Credit note header/subject")),
		mcp.WithString("headText", mcp.Description("Text before positions")),
		mcp.WithString("footText", mcp.Description("Text after positions")),
		mcp.WithNumber("status", mcp.Description("Status (100=Draft, 200=Open)")),
	), t.updateCreditNote)

	s.AddTool(mcp.NewTool("delete_credit_note",
		mcp.WithDescription("Delete a credit note. Only works for draft credit notes (status 100)."),
		mcp.WithString("creditNoteId", mcp.Required(), mcp.Description("The ID of the credit note to delete")),
	), t.deleteCreditNote)

	s.AddTool(mcp.NewTool("send_credit_note_email",
		mcp.WithDescription("Send a credit note via email."),
		mcp.WithString("creditNoteId", mcp.Required(), mcp.Description("The ID of the credit note to send")),
		mcp.WithString("toEmail", mcp.Required(), mcp.Description("Recipient email address")),
		mcp.WithString("subject", mcp.Required(), mcp.Description("Email subject")),
		mcp.WithString("text", mcp.Required(), mcp.Description("Email body text")),
		mcp.WithBoolean("copy", mcp.Description("Send a copy to yourself")),
		mcp.WithString("ccEmail", mcp.Description("CC email address")),
		mcp.WithString("bccEmail", mcp.Description("BCC email address")),
	), t.sendCreditNoteEmail)

	s.AddTool(mcp.NewTool("book_credit_note_payment",
		mcp.WithDescription("Book a payment for a credit note."),
		mcp.WithString("creditNoteId", mcp.Required(), mcp.Description("The ID of the credit note")),
		mcp.WithNumber("amount", mcp.Required(), mcp.Description("Payment amount")),
		mcp.WithString("date", mcp.Required(), mcp.Description("Payment date (YYYY-MM-DD)")),
		mcp.WithString("type", mcp.Required(), mcp.Description("Payment type (e.g., \"N\" for normal)")),
		mcp.WithNumber("checkAccountId", mcp.Description("ID of the check account")),
		mcp.WithBoolean("createFeed", mcp.Description("Create a feed entry")),
	), t.bookCreditNotePayment)

	s.AddTool(mcp.NewTool("enshrine_credit_note",
		mcp.WithDescription("Lock/enshrine a credit note. Once enshrined, it cannot be modified."),
		mcp.WithString("creditNoteId", mcp.Required(), mcp.Description("The ID of the credit note to enshrine")),
	), t.enshrineCreditNote)

	s.AddTool(mcp.NewTool("create_credit_note_from_invoice",
		mcp.WithDescription("Create a credit note from an existing invoice."),
		mcp.WithString("invoiceId", mcp.Required(), mcp.Description("The ID of the invoice to convert")),
	), t.createCreditNoteFromInvoice)
}

func (t *Tools) listCreditNotes(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var args listCreditNotesArgs
	if err := bindArguments(req, &args); err != nil {
		return errorResult(err)
	}
	raw, err := t.client.ListCreditNotes(ctx, buildListCreditNotesQuery(args))
	if err != nil {
		return errorResult(err)
	}
	return rawResult(raw)
}

func (t *Tools) getCreditNote(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var args struct {
		CreditNoteID string   `json:"creditNoteId"`
		Embed        []string `json:"embed"`
	}
	if err := bindArguments(req, &args); err != nil {
		return errorResult(err)
	}
	q := url.Values{}
	addEmbed(q, args.Embed)
	raw, err := t.client.GetCreditNote(ctx, args.CreditNoteID, q)
	if err != nil {
		return errorResult(err)
	}
	return rawResult(raw)
}

func (t *Tools) createCreditNote(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var args createCreditNoteArgs
	if err := bindArguments(req, &args); err != nil {
		return errorResult(err)
	}
	raw, err := t.client.CreateCreditNote(ctx, buildCreateCreditNoteBody(args))
	if err != nil {
		return errorResult(err)
	}
	return rawResult(raw)
}

func (t *Tools) updateCreditNote(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var args updateCreditNoteArgs
	if err := bindArguments(req, &args); err != nil {
		return errorResult(err)
	}
	raw, err := t.client.UpdateCreditNote(ctx, args.CreditNoteID, buildUpdateCreditNoteBody(args))
	if err != nil {
		return errorResult(err)
	}
	return rawResult(raw)
}

func (t *Tools) deleteCreditNote(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	creditNoteID, err := req.RequireString("creditNoteId")
	if err != nil {
		return errorResult(err)
	}
	if err := t.client.DeleteCreditNote(ctx, creditNoteID); err != nil {
		return errorResult(err)
	}
	return mcp.NewToolResultText(fmt.Sprintf("Credit note %s deleted successfully.", creditNoteID)), nil
}

func (t *Tools) sendCreditNoteEmail(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var args struct {
		CreditNoteID string `json:"creditNoteId"`
		EmailArgs
	}
	if err := bindArguments(req, &args); err != nil {
		return errorResult(err)
	}
	raw, err := t.client.SendCreditNoteEmail(ctx, args.CreditNoteID, buildEmailBody(args.EmailArgs))
	if err != nil {
		return errorResult(err)
	}
	return rawResult(raw)
}

func (t *Tools) bookCreditNotePayment(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var args struct {
		CreditNoteID string `json:"creditNoteId"`
		PaymentArgs
	}
	if err := bindArguments(req, &args); err != nil {
		return errorResult(err)
	}
	raw, err := t.client.BookCreditNotePayment(ctx, args.CreditNoteID, buildPaymentBody(args.PaymentArgs))
	if err != nil {
		return errorResult(err)
	}
	return rawResult(raw)
}

func (t *Tools) enshrineCreditNote(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	creditNoteID, err := req.RequireString("creditNoteId")
	if err != nil {
		return errorResult(err)
	}
	raw, err := t.client.EnshrineCreditNote(ctx, creditNoteID)
	if err != nil {
		return errorResult(err)
	}
	return rawResult(raw)
}

func (t *Tools) createCreditNoteFromInvoice(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	invoiceID, err := req.RequireString("invoiceId")
	if err != nil {
		return errorResult(err)
	}
	body := Payload{"invoice": map[string]any{"id": invoiceID, "objectName": ObjectInvoice}}
	raw, err := t.client.CreateCreditNoteFromInvoice(ctx, body)
	if err != nil {
		return errorResult(err)
	}
	return rawResult(raw)
}
