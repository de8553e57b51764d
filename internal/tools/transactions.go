package tools

import (
	"context"
	"net/url"

	"github.com/mark3labs/mcp-go/mcp"
)

type listTransactionsArgs struct {
	Limit          *int    `json:"limit"`
	Offset         *int    `json:"offset"`
	CheckAccountID *string `json:"checkAccountId"`
	Status         *int    `json:"status"`
	StartDate      *string `json:"startDate"`
	EndDate        *string `json:"endDate"`
	IsBooked       *bool   `json:"isBooked"`
}

func buildListTransactionsQuery(args listTransactionsArgs) url.Values {
	q := url.Values{}
	addPagination(q, args.Limit, args.Offset)
	addEntityFilter(q, "checkAccount", args.CheckAccountID, ObjectCheckAccount)
	addInt(q, "status", args.Status)
	addString(q, "startDate", args.StartDate)
	addString(q, "endDate", args.EndDate)
	addBool(q, "isBooked", args.IsBooked)
	return q
}

type createTransactionArgs struct {
	CheckAccountID     int     `json:"checkAccountId"`
	ValueDate          string  `json:"valueDate"`
	Amount             float64 `json:"amount"`
	Status             *int    `json:"status"`
	EntryDate          *string `json:"entryDate"`
	PaymtPurpose       *string `json:"paymtPurpose"`
	PayeePayerName     *string `json:"payeePayerName"`
	PayeePayerAcctNo   *string `json:"payeePayerAcctNo"`
	PayeePayerBankCode *string `json:"payeePayerBankCode"`
}

func buildCreateTransactionBody(args createTransactionArgs) Payload {
	p := Payload{
		"checkAccount": Ref(args.CheckAccountID, ObjectCheckAccount),
		"valueDate":    args.ValueDate,
		"amount":       args.Amount,
	}
	setOpt(p, "status", args.Status)
	setOpt(p, "entryDate", args.EntryDate)
	setOpt(p, "paymtPurpose", args.PaymtPurpose)
	setOpt(p, "payeePayerName", args.PayeePayerName)
	setOpt(p, "payeePayerAcctNo", args.PayeePayerAcctNo)
	setOpt(p, "payeePayerBankCode", args.PayeePayerBankCode)
	return p
}

type updateTransactionArgs struct {
	TransactionID      string  `json:"transactionId"`
	Status             *int    `json:"status"`
	PaymtPurpose       *string `json:"paymtPurpose"`
	PayeePayerName     *string `json:"payeePayerName"`
	PayeePayerAcctNo   *string `json:"payeePayerAcctNo"`
	PayeePayerBankCode *string `json:"payeePayerBankCode"`
}

func buildUpdateTransactionBody(args updateTransactionArgs) Payload {
	p := Payload{}
	setOpt(p, "status", args.Status)
	setOpt(p, "paymtPurpose", args.PaymtPurpose)
	setOpt(p, "payeePayerName", args.PayeePayerName)
	setOpt(p, "payeePayerAcctNo", args.PayeePayerAcctNo)
	setOpt(p, "payeePayerBankCode", args.PayeePayerBankCode)
	return p
}

func (t *Tools) registerTransactions(s ToolServer) {
	s.AddTool(mcp.NewTool("list_check_accounts",
		mcp.WithDescription("List check accounts (bank accounts) in sevDesk."),
		mcp.WithNumber("limit", mcp.Description("Maximum number of results (default: 50)")),
		mcp.WithNumber("offset", mcp.Description("Number of results to skip for pagination")),
	), t.listCheckAccounts)

	s.AddTool(mcp.NewTool("list_transactions",
		mcp.WithDescription("List bank transactions with optional filters."),
		mcp.WithNumber("limit", mcp.Description("Maximum number of results (default: 50)")),
		mcp.WithNumber("offset", mcp.Description("Number of results to skip for pagination")),
		mcp.WithString("checkAccountId", mcp.Description("Filter by check account ID")),
		mcp.WithNumber("status", mcp.Description("Filter by status (100=Created, 200=Linked, 300=Private, 400=Booked)")),
		mcp.WithString("startDate", mcp.Description("Filter by start date (YYYY-MM-DD)")),
		mcp.WithString("endDate", mcp.Description("Filter by end date (YYYY-MM-DD)")),
		mcp.WithBoolean("isBooked", mcp.Description("Filter by booking status")),
	), t.listTransactions)

	s.AddTool(mcp.NewTool("get_transaction",
		mcp.WithDescription("Get detailed information about a specific transaction."),
		mcp.WithString("transactionId", mcp.Required(), mcp.Description("The ID of the transaction to retrieve")),
		mcp.WithArray("embed", mcp.Description("Related objects to embed"),
			mcp.Items(map[string]any{"type": "string"})),
	), t.getTransaction)

	s.AddTool(mcp.NewTool("create_transaction",
		mcp.WithDescription("Create a new bank transaction on a check account."),
		mcp.WithNumber("checkAccountId", mcp.Required(), mcp.Description("The ID of the check account")),
		mcp.WithString("valueDate", mcp.Required(), mcp.Description("Value date of the transaction (YYYY-MM-DD)")),
		mcp.WithNumber("amount", mcp.Required(), mcp.Description("Transaction amount (positive for income, negative for expense)")),
		mcp.WithNumber("status", mcp.Description("Status (100=Created, 200=Linked, 300=Private, 400=Booked)")),
		mcp.WithString("entryDate", mcp.Description("Entry date (YYYY-MM-DD)")),
		mcp.WithString("paymtPurpose", mcp.Description("Payment purpose / reference text")),
		mcp.WithString("payeePayerName", mcp.Description("Name of the payee or payer")),
		mcp.WithString("payeePayerAcctNo", mcp.Description("Account number of the payee or payer (IBAN)")),
		mcp.WithString("payeePayerBankCode", mcp.Description("Bank code of the payee or payer (BIC)")),
	), t.createTransaction)

	s.AddTool(mcp.NewTool("update_transaction",
		mcp.WithDescription("Update an existing transaction."),
		mcp.WithString("transactionId", mcp.Required(), mcp.Description("The ID of the transaction to update")),
		mcp.WithNumber("status", mcp.Description("Status (100=Created, 200=Linked, 300=Private, 400=Booked)")),
		mcp.WithString("paymtPurpose", mcp.Description("Payment purpose / reference text")),
		mcp.WithString("payeePayerName", mcp.Description("Name of the payee or payer")),
		mcp.WithString("payeePayerAcctNo", mcp.Description("Account number of the payee or payer (IBAN)")),
		mcp.WithString("payeePayerBankCode", mcp.Description("Bank code of the payee or payer (BIC)")),
	), t.updateTransaction)
}

func (t *Tools) listCheckAccounts(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var args struct {
		Limit  *int `json:"limit"`
		Offset *int `json:"offset"`
	}
	if err := bindArguments(req, &args); err != nil {
		return errorResult(err)
	}
	q := url.Values{}
	addPagination(q, args.Limit, args.Offset)
	raw, err := t.client.ListCheckAccounts(ctx, q)
	if err != nil {
		return errorResult(err)
	}
	return rawResult(raw)
}

func (t *Tools) listTransactions(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var args listTransactionsArgs
	if err := bindArguments(req, &args); err != nil {
		return errorResult(err)
	}
	raw, err := t.client.ListTransactions(ctx, buildListTransactionsQuery(args))
	if err != nil {
		return errorResult(err)
	}
	return rawResult(raw)
}

func (t *Tools) getTransaction(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var args struct {
		TransactionID string   `json:"transactionId"`
		Embed         []string `json:"embed"`
	}
	if err := bindArguments(req, &args); err != nil {
		return errorResult(err)
	}
	q := url.Values{}
	addEmbed(q, args.Embed)
	raw, err := t.client.GetTransaction(ctx, args.TransactionID, q)
	if err != nil {
		return errorResult(err)
	}
	return rawResult(raw)
}

func (t *Tools) createTransaction(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var args createTransactionArgs
	if err := bindArguments(req, &args); err != nil {
		return errorResult(err)
	}
	raw, err := t.client.CreateTransaction(ctx, buildCreateTransactionBody(args))
	if err != nil {
		return errorResult(err)
	}
	return rawResult(raw)
}

func (t *Tools) updateTransaction(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var args updateTransactionArgs
	if err := bindArguments(req, &args); err != nil {
		return errorResult(err)
	}
	raw, err := t.client.UpdateTransaction(ctx, args.TransactionID, buildUpdateTransactionBody(args))
	if err != nil {
		return errorResult(err)
	}
	return rawResult(raw)
}
