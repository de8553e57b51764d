package sevdesk

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
)

// Typed endpoint methods, one per remote endpoint family. These are thin
// path bindings over the generic verbs; all request shaping (reference
// pairs, filter remapping) happens in the tool layer before calls arrive
// here.

// ==================== CONTACTS ====================

func (c *Client) ListContacts(ctx context.Context, query url.Values) (json.RawMessage, error) {
	return c.FetchList(ctx, "/Contact", query)
}

func (c *Client) GetContact(ctx context.Context, contactID string, query url.Values) (json.RawMessage, error) {
	return c.FetchOne(ctx, "/Contact/"+contactID, query)
}

func (c *Client) CreateContact(ctx context.Context, body any) (json.RawMessage, error) {
	return c.Create(ctx, "/Contact", body)
}

func (c *Client) UpdateContact(ctx context.Context, contactID string, body any) (json.RawMessage, error) {
	return c.Replace(ctx, "/Contact/"+contactID, body)
}

func (c *Client) DeleteContact(ctx context.Context, contactID string) error {
	return c.Remove(ctx, "/Contact/"+contactID)
}

func (c *Client) GetNextCustomerNumber(ctx context.Context) (json.RawMessage, error) {
	return c.FetchOne(ctx, "/Contact/Factory/getNextCustomerNumber", nil)
}

func (c *Client) ListContactAddresses(ctx context.Context, query url.Values) (json.RawMessage, error) {
	return c.FetchList(ctx, "/ContactAddress", query)
}

func (c *Client) CreateContactAddress(ctx context.Context, body any) (json.RawMessage, error) {
	return c.Create(ctx, "/ContactAddress", body)
}

// ==================== INVOICES ====================

func (c *Client) ListInvoices(ctx context.Context, query url.Values) (json.RawMessage, error) {
	return c.FetchList(ctx, "/Invoice", query)
}

func (c *Client) GetInvoice(ctx context.Context, invoiceID string, query url.Values) (json.RawMessage, error) {
	return c.FetchOne(ctx, "/Invoice/"+invoiceID, query)
}

// CreateInvoice submits the invoice header and its positions as one
// transactional write via the saveInvoice factory endpoint.
func (c *Client) CreateInvoice(ctx context.Context, body any) (json.RawMessage, error) {
	return c.Create(ctx, "/Invoice/Factory/saveInvoice", body)
}

func (c *Client) UpdateInvoice(ctx context.Context, invoiceID string, body any) (json.RawMessage, error) {
	return c.Replace(ctx, "/Invoice/"+invoiceID, body)
}

func (c *Client) DeleteInvoice(ctx context.Context, invoiceID string) error {
	return c.Remove(ctx, "/Invoice/"+invoiceID)
}

func (c *Client) SendInvoiceEmail(ctx context.Context, invoiceID string, body any) (json.RawMessage, error) {
	return c.Create(ctx, "/Invoice/"+invoiceID+"/sendViaEmail", body)
}

func (c *Client) BookInvoicePayment(ctx context.Context, invoiceID string, body any) (json.RawMessage, error) {
	return c.Replace(ctx, "/Invoice/"+invoiceID+"/bookAmount", body)
}

// EnshrineInvoice irrevocably locks an invoice against further edits.
func (c *Client) EnshrineInvoice(ctx context.Context, invoiceID string) (json.RawMessage, error) {
	return c.Replace(ctx, "/Invoice/"+invoiceID+"/enshrine", map[string]any{})
}

func (c *Client) ResetInvoiceToDraft(ctx context.Context, invoiceID string) (json.RawMessage, error) {
	return c.Replace(ctx, "/Invoice/"+invoiceID+"/resetToDraft", map[string]any{})
}

// GetInvoicePdf returns the PDF download descriptor for an invoice.
func (c *Client) GetInvoicePdf(ctx context.Context, invoiceID string) (json.RawMessage, error) {
	q := url.Values{}
	q.Set("download", "true")
	return c.FetchOne(ctx, "/Invoice/"+invoiceID+"/getPdf", q)
}

// ExportInvoiceXml exports an invoice in the XRechnung e-invoicing format.
func (c *Client) ExportInvoiceXml(ctx context.Context, invoiceID string) (json.RawMessage, error) {
	return c.FetchOne(ctx, "/Invoice/"+invoiceID+"/getXml", nil)
}

func (c *Client) CreateInvoiceFromOrder(ctx context.Context, body any) (json.RawMessage, error) {
	return c.Create(ctx, "/Invoice/Factory/createInvoiceFromOrder", body)
}

// ==================== CREDIT NOTES ====================

func (c *Client) ListCreditNotes(ctx context.Context, query url.Values) (json.RawMessage, error) {
	return c.FetchList(ctx, "/CreditNote", query)
}

func (c *Client) GetCreditNote(ctx context.Context, creditNoteID string, query url.Values) (json.RawMessage, error) {
	return c.FetchOne(ctx, "/CreditNote/"+creditNoteID, query)
}

func (c *Client) CreateCreditNote(ctx context.Context, body any) (json.RawMessage, error) {
	return c.Create(ctx, "/CreditNote/Factory/saveCreditNote", body)
}

func (c *Client) UpdateCreditNote(ctx context.Context, creditNoteID string, body any) (json.RawMessage, error) {
	return c.Replace(ctx, "/CreditNote/"+creditNoteID, body)
}

func (c *Client) DeleteCreditNote(ctx context.Context, creditNoteID string) error {
	return c.Remove(ctx, "/CreditNote/"+creditNoteID)
}

func (c *Client) SendCreditNoteEmail(ctx context.Context, creditNoteID string, body any) (json.RawMessage, error) {
	return c.Create(ctx, "/CreditNote/"+creditNoteID+"/sendViaEmail", body)
}

func (c *Client) BookCreditNotePayment(ctx context.Context, creditNoteID string, body any) (json.RawMessage, error) {
	return c.Replace(ctx, "/CreditNote/"+creditNoteID+"/bookAmount", body)
}

func (c *Client) EnshrineCreditNote(ctx context.Context, creditNoteID string) (json.RawMessage, error) {
	return c.Replace(ctx, "/CreditNote/"+creditNoteID+"/enshrine", map[string]any{})
}

func (c *Client) CreateCreditNoteFromInvoice(ctx context.Context, body any) (json.RawMessage, error) {
	return c.Create(ctx, "/CreditNote/Factory/createFromInvoice", body)
}

// ==================== ORDERS ====================

func (c *Client) ListOrders(ctx context.Context, query url.Values) (json.RawMessage, error) {
	return c.FetchList(ctx, "/Order", query)
}

func (c *Client) GetOrder(ctx context.Context, orderID string, query url.Values) (json.RawMessage, error) {
	return c.FetchOne(ctx, "/Order/"+orderID, query)
}

func (c *Client) CreateOrder(ctx context.Context, body any) (json.RawMessage, error) {
	return c.Create(ctx, "/Order/Factory/saveOrder", body)
}

// GetNextOrderNumber resolves the next sequential document number for the
// given order type (AN, AB, LI).
func (c *Client) GetNextOrderNumber(ctx context.Context, orderType string) (string, error) {
	q := url.Values{}
	q.Set("orderType", orderType)
	q.Set("useNextNumber", "true")
	raw, err := c.FetchOne(ctx, "/Order/Factory/getNextOrderNumber", q)
	if err != nil {
		return "", err
	}
	var number string
	if err := json.Unmarshal(raw, &number); err != nil {
		return "", &RequestError{Op: "GetNextOrderNumber", Path: "/Order/Factory/getNextOrderNumber", Err: err}
	}
	return number, nil
}

func (c *Client) UpdateOrder(ctx context.Context, orderID string, body any) (json.RawMessage, error) {
	return c.Replace(ctx, "/Order/"+orderID, body)
}

func (c *Client) DeleteOrder(ctx context.Context, orderID string) error {
	return c.Remove(ctx, "/Order/"+orderID)
}

func (c *Client) SendOrderEmail(ctx context.Context, orderID string, body any) (json.RawMessage, error) {
	return c.Create(ctx, "/Order/"+orderID+"/sendViaEmail", body)
}

// ==================== VOUCHERS ====================

func (c *Client) ListVouchers(ctx context.Context, query url.Values) (json.RawMessage, error) {
	return c.FetchList(ctx, "/Voucher", query)
}

func (c *Client) GetVoucher(ctx context.Context, voucherID string, query url.Values) (json.RawMessage, error) {
	return c.FetchOne(ctx, "/Voucher/"+voucherID, query)
}

func (c *Client) CreateVoucher(ctx context.Context, body any) (json.RawMessage, error) {
	return c.Create(ctx, "/Voucher/Factory/saveVoucher", body)
}

func (c *Client) UpdateVoucher(ctx context.Context, voucherID string, body any) (json.RawMessage, error) {
	return c.Replace(ctx, "/Voucher/"+voucherID, body)
}

func (c *Client) BookVoucher(ctx context.Context, voucherID string, body any) (json.RawMessage, error) {
	return c.Replace(ctx, "/Voucher/"+voucherID+"/bookAmount", body)
}

// ==================== TRANSACTIONS ====================

func (c *Client) ListCheckAccounts(ctx context.Context, query url.Values) (json.RawMessage, error) {
	return c.FetchList(ctx, "/CheckAccount", query)
}

func (c *Client) ListTransactions(ctx context.Context, query url.Values) (json.RawMessage, error) {
	return c.FetchList(ctx, "/CheckAccountTransaction", query)
}

func (c *Client) GetTransaction(ctx context.Context, transactionID string, query url.Values) (json.RawMessage, error) {
	return c.FetchOne(ctx, "/CheckAccountTransaction/"+transactionID, query)
}

func (c *Client) CreateTransaction(ctx context.Context, body any) (json.RawMessage, error) {
	return c.Create(ctx, "/CheckAccountTransaction", body)
}

func (c *Client) UpdateTransaction(ctx context.Context, transactionID string, body any) (json.RawMessage, error) {
	return c.Replace(ctx, "/CheckAccountTransaction/"+transactionID, body)
}

// ==================== PARTS ====================

func (c *Client) ListParts(ctx context.Context, query url.Values) (json.RawMessage, error) {
	return c.FetchList(ctx, "/Part", query)
}

func (c *Client) GetPart(ctx context.Context, partID string, query url.Values) (json.RawMessage, error) {
	return c.FetchOne(ctx, "/Part/"+partID, query)
}

func (c *Client) CreatePart(ctx context.Context, body any) (json.RawMessage, error) {
	return c.Create(ctx, "/Part", body)
}

func (c *Client) UpdatePart(ctx context.Context, partID string, body any) (json.RawMessage, error) {
	return c.Replace(ctx, "/Part/"+partID, body)
}

// ==================== BASICS ====================

// GetSystemVersion returns the sevDesk system version. This endpoint does
// not use the objects envelope; the body passes through unchanged.
func (c *Client) GetSystemVersion(ctx context.Context) (json.RawMessage, error) {
	data, err := c.do(ctx, "GetSystemVersion", http.MethodGet, "/Tools/getVersion", nil, nil)
	if err != nil {
		return nil, err
	}
	return data, nil
}

func (c *Client) GetNextSequenceNumber(ctx context.Context, objectType string) (json.RawMessage, error) {
	q := url.Values{}
	q.Set("objectType", objectType)
	return c.FetchOne(ctx, "/Tools/getNextSequenceNumber", q)
}

// ExportData lists objects of the given type, optionally bounded by date.
func (c *Client) ExportData(ctx context.Context, objectType string, query url.Values) (json.RawMessage, error) {
	return c.FetchList(ctx, "/"+objectType, query)
}

// ==================== USERS ====================

func (c *Client) ListUsers(ctx context.Context, query url.Values) (json.RawMessage, error) {
	return c.FetchList(ctx, "/SevUser", query)
}

func (c *Client) GetUser(ctx context.Context, userID string) (json.RawMessage, error) {
	return c.FetchOne(ctx, "/SevUser/"+userID, nil)
}
