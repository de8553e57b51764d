package tools

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildCreateInvoiceBodyMinimal(t *testing.T) {
	body := buildCreateInvoiceBody(createInvoiceArgs{
		ContactID:   12,
		InvoiceDate: "2026-08-15",
		Positions: []DocumentPosition{
			{Name: "Beratung", Quantity: 1, Price: 100, TaxRate: 19, UnityID: 2},
		},
	})

	invoice, ok := body["invoice"].(Payload)
	require.True(t, ok)
	assert.Equal(t, ObjectInvoice, invoice["objectName"])
	assert.Equal(t, Ref(12, ObjectContact), invoice["contact"])
	assert.Equal(t, "2026-08-15", invoice["invoiceDate"])
	assert.Equal(t, true, invoice["mapAll"])

	// No optional was provided, so none may appear.
	for _, key := range []string{"header", "status", "currency", "taxSet", "paymentMethod", "addressCountry", "discount"} {
		assert.NotContains(t, invoice, key)
	}

	positions, ok := body["invoicePosSave"].([]Payload)
	require.True(t, ok)
	require.Len(t, positions, 1)
	assert.Equal(t, ObjectInvoicePos, positions[0]["objectName"])
}

func TestBuildCreateInvoiceBodyWrapsEntityIDs(t *testing.T) {
	body := buildCreateInvoiceBody(createInvoiceArgs{
		ContactID:        12,
		InvoiceDate:      "2026-08-15",
		AddressCountryID: intPtr(1),
		TaxSetID:         intPtr(4),
		PaymentMethodID:  intPtr(21),
	})

	invoice := body["invoice"].(Payload)
	assert.Equal(t, Ref(1, ObjectStaticCountry), invoice["addressCountry"])
	assert.Equal(t, Ref(4, ObjectTaxSet), invoice["taxSet"])
	assert.Equal(t, Ref(21, ObjectPaymentMethod), invoice["paymentMethod"])
	assert.NotContains(t, invoice, "addressCountryId")
	assert.NotContains(t, invoice, "taxSetId")
	assert.NotContains(t, invoice, "paymentMethodId")
}

func TestBuildListInvoicesQueryContactFilter(t *testing.T) {
	q := buildListInvoicesQuery(listInvoicesArgs{
		ContactID: strPtr("77"),
		Status:    intPtr(200),
	})

	assert.Equal(t, "77", q.Get("contact[id]"))
	assert.Equal(t, "Contact", q.Get("contact[objectName]"))
	assert.Equal(t, "200", q.Get("status"))
	assert.Equal(t, "50", q.Get("limit"))
	assert.False(t, q.Has("contactId"))
}

func TestBuildUpdateInvoiceBodyEmptyWhenNoFields(t *testing.T) {
	body := buildUpdateInvoiceBody(updateInvoiceArgs{InvoiceID: "55"})
	assert.Empty(t, body)
}

func TestBuildUpdateInvoiceBodyOnlyProvidedFields(t *testing.T) {
	body := buildUpdateInvoiceBody(updateInvoiceArgs{
		InvoiceID: "55",
		Header:    strPtr("Rechnung 2026-001"),
		Status:    intPtr(200),
	})

	assert.Equal(t, Payload{"header": "Rechnung 2026-001", "status": 200}, body)
}
