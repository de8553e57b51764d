package tools

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildCreateTransactionBodyMinimal(t *testing.T) {
	body := buildCreateTransactionBody(createTransactionArgs{
		CheckAccountID: 3,
		ValueDate:      "2026-08-01",
		Amount:         -49.90,
	})

	assert.Equal(t, Ref(3, ObjectCheckAccount), body["checkAccount"])
	assert.Equal(t, "2026-08-01", body["valueDate"])
	assert.Equal(t, -49.90, body["amount"])
	assert.NotContains(t, body, "checkAccountId")

	// No optional was provided, so none may appear.
	for _, key := range []string{"status", "entryDate", "paymtPurpose", "payeePayerName", "payeePayerAcctNo", "payeePayerBankCode"} {
		assert.NotContains(t, body, key)
	}
}

func TestBuildCreateTransactionBodyCounterpartyFields(t *testing.T) {
	body := buildCreateTransactionBody(createTransactionArgs{
		CheckAccountID:     3,
		ValueDate:          "2026-08-01",
		Amount:             250,
		Status:             intPtr(200),
		PayeePayerName:     strPtr("Acme GmbH"),
		PayeePayerAcctNo:   strPtr("DE89370400440532013000"),
		PayeePayerBankCode: strPtr("COBADEFFXXX"),
	})

	assert.Equal(t, 200, body["status"])
	assert.Equal(t, "Acme GmbH", body["payeePayerName"])
	assert.Equal(t, "DE89370400440532013000", body["payeePayerAcctNo"])
	assert.Equal(t, "COBADEFFXXX", body["payeePayerBankCode"])
}

func TestBuildUpdateTransactionBodyEmptyWhenNoFields(t *testing.T) {
	body := buildUpdateTransactionBody(updateTransactionArgs{TransactionID: "12"})
	assert.Empty(t, body)
}

func TestBuildUpdateTransactionBodyCounterpartyFields(t *testing.T) {
	body := buildUpdateTransactionBody(updateTransactionArgs{
		TransactionID:      "12",
		PaymtPurpose:       strPtr("Rechnung 2026-001"),
		PayeePayerAcctNo:   strPtr("DE89370400440532013000"),
		PayeePayerBankCode: strPtr("COBADEFFXXX"),
	})

	assert.Equal(t, Payload{
		"paymtPurpose":       "Rechnung 2026-001",
		"payeePayerAcctNo":   "DE89370400440532013000",
		"payeePayerBankCode": "COBADEFFXXX",
	}, body)
}

func TestBuildListTransactionsQueryCheckAccountFilter(t *testing.T) {
	q := buildListTransactionsQuery(listTransactionsArgs{
		CheckAccountID: strPtr("3"),
		IsBooked:       boolPtr(true),
	})

	assert.Equal(t, "3", q.Get("checkAccount[id]"))
	assert.Equal(t, "CheckAccount", q.Get("checkAccount[objectName]"))
	assert.Equal(t, "true", q.Get("isBooked"))
	assert.False(t, q.Has("checkAccountId"))
}
