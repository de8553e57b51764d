package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"

	"github.com/mark3labs/mcp-go/mcp"
)

type listOrdersArgs struct {
	Limit       *int    `json:"limit"`
	Offset      *int    `json:"offset"`
	Status      *int    `json:"status"`
	OrderNumber *string `json:"orderNumber"`
	OrderType   *string `json:"orderType"`
	StartDate   *string `json:"startDate"`
	EndDate     *string `json:"endDate"`
	ContactID   *string `json:"contactId"`
}

func buildListOrdersQuery(args listOrdersArgs) url.Values {
	q := url.Values{}
	addPagination(q, args.Limit, args.Offset)
	addInt(q, "status", args.Status)
	addString(q, "orderNumber", args.OrderNumber)
	addString(q, "orderType", args.OrderType)
	addString(q, "startDate", args.StartDate)
	addString(q, "endDate", args.EndDate)
	addEntityFilter(q, "contact", args.ContactID, ObjectContact)
	return q
}

type createOrderArgs struct {
	ContactID         int                `json:"contactId"`
	OrderDate         string             `json:"orderDate"`
	OrderType         string             `json:"orderType"`
	Positions         []DocumentPosition `json:"positions"`
	Header            *string            `json:"header"`
	HeadText          *string            `json:"headText"`
	FootText          *string            `json:"footText"`
	DeliveryDate      *string            `json:"deliveryDate"`
	DeliveryDateUntil *string            `json:"deliveryDateUntil"`
	Status            *int               `json:"status"`
	Currency          *string            `json:"currency"`
	ShowNet           *bool              `json:"showNet"`
	AddressName       *string            `json:"addressName"`
	AddressStreet     *string            `json:"addressStreet"`
	AddressZip        *string            `json:"addressZip"`
	AddressCity       *string            `json:"addressCity"`
	AddressCountryID  *int               `json:"addressCountryId"`
	TaxRate           *float64           `json:"taxRate"`
	TaxType           *string            `json:"taxType"`
	TaxText           *string            `json:"taxText"`
	TaxSetID          *int               `json:"taxSetId"`
	TaxRuleID         *int               `json:"taxRuleId"`
	SmallSettlement   *bool              `json:"smallSettlement"`
	ContactPersonID   *int               `json:"contactPersonId"`
}

// buildCreateOrderBody shapes the order header and its positions. The
// orderNumber and contactPerson come from the remote lookups that precede
// the write; contactPerson may be nil, in which case sevDesk applies its
// own default.
func buildCreateOrderBody(args createOrderArgs, orderNumber string, contactPerson *ObjectRef) Payload {
	order := Payload{
		"objectName":  ObjectOrder,
		"orderNumber": orderNumber,
		"contact":     Ref(args.ContactID, ObjectContact),
		"orderDate":   args.OrderDate,
		"orderType":   args.OrderType,
		"mapAll":      true,
		"version":     0,
	}

	// Required-by-sevDesk header fields get defaults when omitted.
	order["status"] = 100
	setOpt(order, "status", args.Status)
	order["header"] = fmt.Sprintf("%s-%s", args.OrderType, orderNumber)
	setOpt(order, "header", args.Header)
	order["currency"] = "EUR"
	setOpt(order, "currency", args.Currency)
	order["taxRate"] = float64(0)
	setOpt(order, "taxRate", args.TaxRate)
	order["taxType"] = "default"
	setOpt(order, "taxType", args.TaxType)
	order["taxText"] = "Umsatzsteuer"
	setOpt(order, "taxText", args.TaxText)
	if args.TaxRuleID != nil {
		order["taxRule"] = Ref(*args.TaxRuleID, ObjectTaxRule)
	} else {
		order["taxRule"] = Ref(1, ObjectTaxRule)
	}

	setOpt(order, "headText", args.HeadText)
	setOpt(order, "footText", args.FootText)
	setOpt(order, "deliveryDate", args.DeliveryDate)
	setOpt(order, "deliveryDateUntil", args.DeliveryDateUntil)
	setOpt(order, "showNet", args.ShowNet)
	setOpt(order, "addressName", args.AddressName)
	setOpt(order, "addressStreet", args.AddressStreet)
	setOpt(order, "addressZip", args.AddressZip)
	setOpt(order, "addressCity", args.AddressCity)
	setOptRef(order, "addressCountry", args.AddressCountryID, ObjectStaticCountry)
	setOptRef(order, "taxSet", args.TaxSetID, ObjectTaxSet)
	setOpt(order, "smallSettlement", args.SmallSettlement)
	if contactPerson != nil {
		order["contactPerson"] = *contactPerson
	}

	return Payload{
		"order":        order,
		"orderPosSave": buildPositions(ObjectOrderPos, args.Positions),
	}
}

// resolveContactPerson picks the explicit contact person when given,
// otherwise looks up the first listed sevDesk user. Returns nil when no
// user can be resolved; the field is then omitted entirely.
func (t *Tools) resolveContactPerson(ctx context.Context, contactPersonID *int) *ObjectRef {
	if contactPersonID != nil {
		ref := Ref(*contactPersonID, ObjectSevUser)
		return &ref
	}
	q := url.Values{}
	q.Set("limit", strconv.Itoa(1))
	raw, err := t.client.ListUsers(ctx, q)
	if err != nil {
		t.log.Debug().Err(err).Msg("default contact person lookup failed")
		return nil
	}
	var users []struct {
		ID int `json:"id,string"`
	}
	if err := json.Unmarshal(raw, &users); err != nil || len(users) == 0 {
		return nil
	}
	ref := Ref(users[0].ID, ObjectSevUser)
	return &ref
}

type updateOrderArgs struct {
	OrderID           string  `json:"orderId"`
	Header            *string `json:"header"`
	HeadText          *string `json:"headText"`
	FootText          *string `json:"footText"`
	DeliveryDate      *string `json:"deliveryDate"`
	DeliveryDateUntil *string `json:"deliveryDateUntil"`
	Status            *int    `json:"status"`
}

func buildUpdateOrderBody(args updateOrderArgs) Payload {
	p := Payload{}
	setOpt(p, "header", args.Header)
	setOpt(p, "headText", args.HeadText)
	setOpt(p, "footText", args.FootText)
	setOpt(p, "deliveryDate", args.DeliveryDate)
	setOpt(p, "deliveryDateUntil", args.DeliveryDateUntil)
	setOpt(p, "status", args.Status)
	return p
}

func (t *Tools) registerOrders(s ToolServer) {
	s.AddTool(mcp.NewTool("list_orders",
		mcp.WithDescription("List orders/quotes with optional filters."),
		mcp.WithNumber("limit", mcp.Description("Maximum number of results (default: 50)")),
		mcp.WithNumber("offset", mcp.Description("Number of results to skip for pagination")),
		mcp.WithNumber("status", mcp.Description("Filter by status (100=Draft, 200=Delivered, 300=Accepted, 500=Partially invoiced, 750=Invoiced, 1000=Cancelled)")),
		mcp.WithString("orderNumber", mcp.Description("Filter by order number")),
		mcp.WithString("orderType", mcp.Description("Filter by order type (AN=Quote, AB=Order confirmation, LI=Delivery note)")),
		mcp.WithString("startDate", mcp.Description("Filter by start date (YYYY-MM-DD)")),
		mcp.WithString("endDate", mcp.Description("Filter by end date (YYYY-MM-DD)")),
		mcp.WithString("contactId", mcp.Description("Filter by contact ID")),
	), t.listOrders)

	s.AddTool(mcp.NewTool("get_order",
		mcp.WithDescription("Get detailed information about a specific order/quote."),
		mcp.WithString("orderId", mcp.Required(), mcp.Description("The ID of the order to retrieve")),
		mcp.WithArray("embed", mcp.Description("Related objects to embed (e.g., positions, contact)"),
			mcp.Items(map[string]any{"type": "string"})),
	), t.getOrder)

	s.AddTool(mcp.NewTool("create_order",
		mcp.WithDescription("Create a new order/quote with positions."),
		mcp.WithNumber("contactId", mcp.Required(), mcp.Description("The ID of the contact/customer")),
		mcp.WithString("orderDate", mcp.Required(), mcp.Description("Order date (YYYY-MM-DD)")),
		mcp.WithString("orderType", mcp.Required(), mcp.Description("Order type (AN=Quote, AB=Order confirmation, LI=Delivery note)"),
			mcp.Enum("AN", "AB", "LI")),
		mcp.WithArray("positions", mcp.Required(), mcp.Description("Order line items"),
			mcp.Items(positionItemSchema(true))),
		mcp.WithString("header", mcp.Description("Order header/subject")),
		mcp.WithString("headText", mcp.Description("Text before positions")),
		mcp.WithString("footText", mcp.Description("Text after positions")),
		mcp.WithString("deliveryDate", mcp.Description("Delivery date (YYYY-MM-DD)")),
		mcp.WithString("deliveryDateUntil", mcp.Description("Delivery end date (YYYY-MM-DD)")),
		mcp.WithNumber("status", mcp.Description("Status (100=Draft, 200=Delivered, etc.)")),
		mcp.WithString("currency", mcp.Description("Currency code (default: EUR)")),
		mcp.WithBoolean("showNet", mcp.Description("Show net prices")),
		mcp.WithString("addressName", mcp.Description("Custom address name")),
		mcp.WithString("addressStreet", mcp.Description("Custom address street")),
		mcp.WithString("addressZip", mcp.Description("Custom address ZIP")),
		mcp.WithString("addressCity", mcp.Description("Custom address city")),
		mcp.WithNumber("addressCountryId", mcp.Description("Custom address country ID")),
		mcp.WithNumber("taxRate", mcp.Description("Default tax rate")),
		mcp.WithString("taxType", mcp.Description("Tax type (default, eu, noteu, custom)")),
		mcp.WithString("taxText", mcp.Description("Tax description text (e.g. \"Umsatzsteuer 20%\")")),
		mcp.WithNumber("taxSetId", mcp.Description("Tax set ID")),
		mcp.WithNumber("taxRuleId", mcp.Description("Tax rule ID (default: 1)")),
		mcp.WithBoolean("smallSettlement", mcp.Description("Small business regulation (Kleinunternehmer)")),
		mcp.WithNumber("contactPersonId", mcp.Description("ID of the sevDesk user to set as contact person")),
	), t.createOrder)

	s.AddTool(mcp.NewTool("update_order",
		mcp.WithDescription("Update an existing order. Only works for draft orders (status 100)."),
		mcp.WithString("orderId", mcp.Required(), mcp.Description("The ID of the order to update")),
		mcp.WithString("header", mcp.Description("Order header/subject")),
		mcp.WithString("headText", mcp.Description("Text before positions")),
		mcp.WithString("footText", mcp.Description("Text after positions")),
		mcp.WithString("deliveryDate", mcp.Description("Delivery date (YYYY-MM-DD)")),
		mcp.WithString("deliveryDateUntil", mcp.Description("Delivery end date (YYYY-MM-DD)")),
		mcp.WithNumber("status", mcp.Description("Status (100=Draft, 200=Delivered, etc.)")),
	), t.updateOrder)

	s.AddTool(mcp.NewTool("delete_order",
		mcp.WithDescription("Delete an order. Only works for draft orders (status 100)."),
		mcp.WithString("orderId", mcp.Required(), mcp.Description("The ID of the order to delete")),
	), t.deleteOrder)

	s.AddTool(mcp.NewTool("send_order_email",
		mcp.WithDescription("Send an order/quote via email."),
		mcp.WithString("orderId", mcp.Required(), mcp.Description("The ID of the order to send")),
		mcp.WithString("toEmail", mcp.Required(), mcp.Description("Recipient email address")),
		mcp.WithString("subject", mcp.Required(), mcp.Description("Email subject")),
		mcp.WithString("text", mcp.Required(), mcp.Description("Email body text")),
		mcp.WithBoolean("copy", mcp.Description("Send a copy to yourself")),
		mcp.WithString("ccEmail", mcp.Description("CC email address")),
		mcp.WithString("bccEmail", mcp.Description("BCC email address")),
	), t.sendOrderEmail)
}

func (t *Tools) listOrders(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var args listOrdersArgs
	if err := bindArguments(req, &args); err != nil {
		return errorResult(err)
	}
	raw, err := t.client.ListOrders(ctx, buildListOrdersQuery(args))
	if err != nil {
		return errorResult(err)
	}
	return rawResult(raw)
}

func (t *Tools) getOrder(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var args struct {
		OrderID string   `json:"orderId"`
		Embed   []string `json:"embed"`
	}
	if err := bindArguments(req, &args); err != nil {
		return errorResult(err)
	}
	q := url.Values{}
	addEmbed(q, args.Embed)
	raw, err := t.client.GetOrder(ctx, args.OrderID, q)
	if err != nil {
		return errorResult(err)
	}
	return rawResult(raw)
}

// createOrder is the only two-phase builder: the next order number (and,
// when absent, a default contact person) is resolved remotely before the
// single write call.
func (t *Tools) createOrder(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var args createOrderArgs
	if err := bindArguments(req, &args); err != nil {
		return errorResult(err)
	}

	orderNumber, err := t.client.GetNextOrderNumber(ctx, args.OrderType)
	if err != nil {
		return errorResult(err)
	}
	contactPerson := t.resolveContactPerson(ctx, args.ContactPersonID)

	raw, err := t.client.CreateOrder(ctx, buildCreateOrderBody(args, orderNumber, contactPerson))
	if err != nil {
		return errorResult(err)
	}
	return rawResult(raw)
}

func (t *Tools) updateOrder(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var args updateOrderArgs
	if err := bindArguments(req, &args); err != nil {
		return errorResult(err)
	}
	raw, err := t.client.UpdateOrder(ctx, args.OrderID, buildUpdateOrderBody(args))
	if err != nil {
		return errorResult(err)
	}
	return rawResult(raw)
}

func (t *Tools) deleteOrder(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	orderID, err := req.RequireString("orderId")
	if err != nil {
		return errorResult(err)
	}
	if err := t.client.DeleteOrder(ctx, orderID); err != nil {
		return errorResult(err)
	}
	return mcp.NewToolResultText(fmt.Sprintf("Order %s deleted successfully.", orderID)), nil
}

func (t *Tools) sendOrderEmail(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var args struct {
		OrderID string `json:"orderId"`
		EmailArgs
	}
	if err := bindArguments(req, &args); err != nil {
		return errorResult(err)
	}
	raw, err := t.client.SendOrderEmail(ctx, args.OrderID, buildEmailBody(args.EmailArgs))
	if err != nil {
		return errorResult(err)
	}
	return rawResult(raw)
}
