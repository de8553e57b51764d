package tools

import (
	"context"
	"fmt"
	"net/url"

	"github.com/mark3labs/mcp-go/mcp"
)

type listContactsArgs struct {
	Limit          *int    `json:"limit"`
	Offset         *int    `json:"offset"`
	Depth          *int    `json:"depth"`
	CustomerNumber *string `json:"customerNumber"`
	Name           *string `json:"name"`
}

func buildListContactsQuery(args listContactsArgs) url.Values {
	q := url.Values{}
	addPagination(q, args.Limit, args.Offset)
	addInt(q, "depth", args.Depth)
	addString(q, "customerNumber", args.CustomerNumber)
	addString(q, "name", args.Name)
	return q
}

type createContactArgs struct {
	Name             string  `json:"name"`
	Name2            *string `json:"name2"`
	Surename         *string `json:"surename"`
	Familyname       *string `json:"familyname"`
	CategoryID       int     `json:"categoryId"`
	CustomerNumber   *string `json:"customerNumber"`
	Description      *string `json:"description"`
	VatNumber        *string `json:"vatNumber"`
	TaxNumber        *string `json:"taxNumber"`
	BankAccount      *string `json:"bankAccount"`
	BankNumber       *string `json:"bankNumber"`
	DefaultTimeToPay *int    `json:"defaultTimeToPay"`
	Gender           *string `json:"gender"`
	AcademicTitle    *string `json:"academicTitle"`
	Titel            *string `json:"titel"`
	Birthday         *string `json:"birthday"`
	ExemptVat        *bool   `json:"exemptVat"`
}

func buildCreateContactBody(args createContactArgs) Payload {
	p := Payload{"name": args.Name}
	p.SetRef("category", args.CategoryID, ObjectCategory)
	setOpt(p, "name2", args.Name2)
	setOpt(p, "surename", args.Surename)
	setOpt(p, "familyname", args.Familyname)
	setOpt(p, "customerNumber", args.CustomerNumber)
	setOpt(p, "description", args.Description)
	setOpt(p, "vatNumber", args.VatNumber)
	setOpt(p, "taxNumber", args.TaxNumber)
	setOpt(p, "bankAccount", args.BankAccount)
	setOpt(p, "bankNumber", args.BankNumber)
	setOpt(p, "defaultTimeToPay", args.DefaultTimeToPay)
	setOpt(p, "gender", args.Gender)
	setOpt(p, "academicTitle", args.AcademicTitle)
	setOpt(p, "titel", args.Titel)
	setOpt(p, "birthday", args.Birthday)
	setOpt(p, "exemptVat", args.ExemptVat)
	return p
}

type updateContactArgs struct {
	ContactID        string  `json:"contactId"`
	Name             *string `json:"name"`
	Name2            *string `json:"name2"`
	Surename         *string `json:"surename"`
	Familyname       *string `json:"familyname"`
	CustomerNumber   *string `json:"customerNumber"`
	Description      *string `json:"description"`
	VatNumber        *string `json:"vatNumber"`
	TaxNumber        *string `json:"taxNumber"`
	BankAccount      *string `json:"bankAccount"`
	BankNumber       *string `json:"bankNumber"`
	DefaultTimeToPay *int    `json:"defaultTimeToPay"`
	ExemptVat        *bool   `json:"exemptVat"`
}

func buildUpdateContactBody(args updateContactArgs) Payload {
	p := Payload{}
	setOpt(p, "name", args.Name)
	setOpt(p, "name2", args.Name2)
	setOpt(p, "surename", args.Surename)
	setOpt(p, "familyname", args.Familyname)
	setOpt(p, "customerNumber", args.CustomerNumber)
	setOpt(p, "description", args.Description)
	setOpt(p, "vatNumber", args.VatNumber)
	setOpt(p, "taxNumber", args.TaxNumber)
	setOpt(p, "bankAccount", args.BankAccount)
	setOpt(p, "bankNumber", args.BankNumber)
	setOpt(p, "defaultTimeToPay", args.DefaultTimeToPay)
	setOpt(p, "exemptVat", args.ExemptVat)
	return p
}

type createContactAddressArgs struct {
	ContactID  int     `json:"contactId"`
	Street     *string `json:"street"`
	Zip        *string `json:"zip"`
	City       *string `json:"city"`
	CountryID  int     `json:"countryId"`
	Name       *string `json:"name"`
	Name2      *string `json:"name2"`
	Name3      *string `json:"name3"`
	Name4      *string `json:"name4"`
	CategoryID *int    `json:"categoryId"`
}

func buildCreateContactAddressBody(args createContactAddressArgs) Payload {
	p := Payload{}
	p.SetRef("contact", args.ContactID, ObjectContact)
	p.SetRef("country", args.CountryID, ObjectStaticCountry)
	setOpt(p, "street", args.Street)
	setOpt(p, "zip", args.Zip)
	setOpt(p, "city", args.City)
	setOpt(p, "name", args.Name)
	setOpt(p, "name2", args.Name2)
	setOpt(p, "name3", args.Name3)
	setOpt(p, "name4", args.Name4)
	setOptRef(p, "category", args.CategoryID, ObjectCategory)
	return p
}

func (t *Tools) registerContacts(s ToolServer) {
	s.AddTool(mcp.NewTool("list_contacts",
		mcp.WithDescription("List contacts with optional filters. Returns customers, suppliers, and other contacts."),
		mcp.WithNumber("limit", mcp.Description("Maximum number of results (default: 50)")),
		mcp.WithNumber("offset", mcp.Description("Number of results to skip for pagination")),
		mcp.WithNumber("depth", mcp.Description("Depth of nested objects (0-3)")),
		mcp.WithString("customerNumber", mcp.Description("Filter by customer number")),
		mcp.WithString("name", mcp.Description("Filter by name (partial match)")),
	), t.listContacts)

	s.AddTool(mcp.NewTool("get_contact",
		mcp.WithDescription("Get detailed information about a specific contact by ID."),
		mcp.WithString("contactId", mcp.Required(), mcp.Description("The ID of the contact to retrieve")),
		mcp.WithArray("embed", mcp.Description("Related objects to embed (e.g., communicationWays, addresses)"),
			mcp.Items(map[string]any{"type": "string"})),
	), t.getContact)

	s.AddTool(mcp.NewTool("create_contact",
		mcp.WithDescription("Create a new contact (customer, supplier, or partner)."),
		mcp.WithString("name", mcp.Required(), mcp.Description("Company name or display name")),
		mcp.WithString("name2", mcp.Description("Additional name field")),
		mcp.WithString("surename", mcp.Description("First name (for persons)")),
		mcp.WithString("familyname", mcp.Description("Last name (for persons)")),
		mcp.WithNumber("categoryId", mcp.Required(), mcp.Description("Category ID (3=Customer, 4=Supplier, 28=Partner)")),
		mcp.WithString("customerNumber", mcp.Description("Custom customer number")),
		mcp.WithString("description", mcp.Description("Description or notes")),
		mcp.WithString("vatNumber", mcp.Description("VAT number")),
		mcp.WithString("taxNumber", mcp.Description("Tax number")),
		mcp.WithString("bankAccount", mcp.Description("Bank account number (IBAN)")),
		mcp.WithString("bankNumber", mcp.Description("Bank code (BIC)")),
		mcp.WithNumber("defaultTimeToPay", mcp.Description("Default payment terms in days")),
		mcp.WithString("gender", mcp.Description("Gender (m/f)")),
		mcp.WithString("academicTitle", mcp.Description("Academic title")),
		mcp.WithString("titel", mcp.Description("Title (e.g., Dr.)")),
		mcp.WithString("birthday", mcp.Description("Birthday (YYYY-MM-DD)")),
		mcp.WithBoolean("exemptVat", mcp.Description("Exempt from VAT")),
	), t.createContact)

	s.AddTool(mcp.NewTool("update_contact",
		mcp.WithDescription("Update an existing contact."),
		mcp.WithString("contactId", mcp.Required(), mcp.Description("The ID of the contact to update")),
		mcp.WithString("name", mcp.Description("Company name or display name")),
		mcp.WithString("name2", mcp.Description("Additional name field")),
		mcp.WithString("surename", mcp.Description("First name")),
		mcp.WithString("familyname", mcp.Description("Last name")),
		mcp.WithString("customerNumber", mcp.Description("Customer number")),
		mcp.WithString("description", mcp.Description("Description or notes")),
		mcp.WithString("vatNumber", mcp.Description("VAT number")),
		mcp.WithString("taxNumber", mcp.Description("Tax number")),
		mcp.WithString("bankAccount", mcp.Description("Bank account number (IBAN)")),
		mcp.WithString("bankNumber", mcp.Description("Bank code (BIC)")),
		mcp.WithNumber("defaultTimeToPay", mcp.Description("Default payment terms in days")),
		mcp.WithBoolean("exemptVat", mcp.Description("Exempt from VAT")),
	), t.updateContact)

	s.AddTool(mcp.NewTool("delete_contact",
		mcp.WithDescription("Delete a contact. Note: This may fail if the contact has associated documents."),
		mcp.WithString("contactId", mcp.Required(), mcp.Description("The ID of the contact to delete")),
	), t.deleteContact)

	s.AddTool(mcp.NewTool("get_next_customer_number",
		mcp.WithDescription("Generate the next available customer number."),
	), t.getNextCustomerNumber)

	s.AddTool(mcp.NewTool("list_contact_addresses",
		mcp.WithDescription("List all addresses for a specific contact."),
		mcp.WithString("contactId", mcp.Required(), mcp.Description("The ID of the contact")),
	), t.listContactAddresses)

	s.AddTool(mcp.NewTool("create_contact_address",
		mcp.WithDescription("Create a new address for a contact."),
		mcp.WithNumber("contactId", mcp.Required(), mcp.Description("The ID of the contact")),
		mcp.WithString("street", mcp.Description("Street and house number")),
		mcp.WithString("zip", mcp.Description("ZIP/Postal code")),
		mcp.WithString("city", mcp.Description("City")),
		mcp.WithNumber("countryId", mcp.Required(), mcp.Description("Country ID (1=Germany, see sevDesk documentation for others)")),
		mcp.WithString("name", mcp.Description("Name line 1")),
		mcp.WithString("name2", mcp.Description("Name line 2")),
		mcp.WithString("name3", mcp.Description("Name line 3")),
		mcp.WithString("name4", mcp.Description("Name line 4")),
		mcp.WithNumber("categoryId", mcp.Description("Address category ID")),
	), t.createContactAddress)
}

func (t *Tools) listContacts(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var args listContactsArgs
	if err := bindArguments(req, &args); err != nil {
		return errorResult(err)
	}
	raw, err := t.client.ListContacts(ctx, buildListContactsQuery(args))
	if err != nil {
		return errorResult(err)
	}
	return rawResult(raw)
}

func (t *Tools) getContact(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var args struct {
		ContactID string   `json:"contactId"`
		Embed     []string `json:"embed"`
	}
	if err := bindArguments(req, &args); err != nil {
		return errorResult(err)
	}
	q := url.Values{}
	addEmbed(q, args.Embed)
	raw, err := t.client.GetContact(ctx, args.ContactID, q)
	if err != nil {
		return errorResult(err)
	}
	return rawResult(raw)
}

func (t *Tools) createContact(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var args createContactArgs
	if err := bindArguments(req, &args); err != nil {
		return errorResult(err)
	}
	raw, err := t.client.CreateContact(ctx, buildCreateContactBody(args))
	if err != nil {
		return errorResult(err)
	}
	return rawResult(raw)
}

func (t *Tools) updateContact(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var args updateContactArgs
	if err := bindArguments(req, &args); err != nil {
		return errorResult(err)
	}
	raw, err := t.client.UpdateContact(ctx, args.ContactID, buildUpdateContactBody(args))
	if err != nil {
		return errorResult(err)
	}
	return rawResult(raw)
}

func (t *Tools) deleteContact(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	contactID, err := req.RequireString("contactId")
	if err != nil {
		return errorResult(err)
	}
	if err := t.client.DeleteContact(ctx, contactID); err != nil {
		return errorResult(err)
	}
	return mcp.NewToolResultText(fmt.Sprintf("Contact %s deleted successfully.", contactID)), nil
}

func (t *Tools) getNextCustomerNumber(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	raw, err := t.client.GetNextCustomerNumber(ctx)
	if err != nil {
		return errorResult(err)
	}
	return rawResult(raw)
}

func (t *Tools) listContactAddresses(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	contactID, err := req.RequireString("contactId")
	if err != nil {
		return errorResult(err)
	}
	q := url.Values{}
	addEntityFilter(q, "contact", &contactID, ObjectContact)
	raw, err := t.client.ListContactAddresses(ctx, q)
	if err != nil {
		return errorResult(err)
	}
	return rawResult(raw)
}

func (t *Tools) createContactAddress(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var args createContactAddressArgs
	if err := bindArguments(req, &args); err != nil {
		return errorResult(err)
	}
	raw, err := t.client.CreateContactAddress(ctx, buildCreateContactAddressBody(args))
	if err != nil {
		return errorResult(err)
	}
	return rawResult(raw)
}
