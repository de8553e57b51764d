package tools

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildPositionsDefaultsPositionNumberToIndex(t *testing.T) {
	positions := []DocumentPosition{
		{Name: "Beratung", Quantity: 2, Price: 120, TaxRate: 19, UnityID: 2},
		{Name: "Lizenz", Quantity: 1, Price: 49.90, TaxRate: 19, UnityID: 1},
	}

	out := buildPositions(ObjectInvoicePos, positions)
	require.Len(t, out, 2)
	assert.Equal(t, 0, out[0]["positionNumber"])
	assert.Equal(t, 1, out[1]["positionNumber"])
}

func TestBuildPositionsKeepsExplicitPositionNumber(t *testing.T) {
	positions := []DocumentPosition{
		{Name: "Beratung", Quantity: 1, Price: 100, TaxRate: 19, UnityID: 2, PositionNumber: intPtr(7)},
	}

	out := buildPositions(ObjectOrderPos, positions)
	require.Len(t, out, 1)
	assert.Equal(t, 7, out[0]["positionNumber"])
}

func TestBuildPositionsShape(t *testing.T) {
	positions := []DocumentPosition{
		{
			Name:     "Hardware",
			Quantity: 3,
			Price:    250,
			TaxRate:  19,
			UnityID:  1,
			PartID:   intPtr(15),
			Discount: floatPtr(5),
			Text:     strPtr("inkl. Versand"),
		},
	}

	out := buildPositions(ObjectCreditNotePos, positions)
	require.Len(t, out, 1)
	p := out[0]

	assert.Equal(t, ObjectCreditNotePos, p["objectName"])
	assert.Equal(t, true, p["mapAll"])
	assert.Equal(t, Ref(1, ObjectUnity), p["unity"])
	assert.Equal(t, Ref(15, ObjectPart), p["part"])
	assert.Equal(t, float64(5), p["discount"])
	assert.Equal(t, "inkl. Versand", p["text"])
	assert.NotContains(t, p, "optional")
	assert.NotContains(t, p, "unityId", "raw id must be replaced by the reference pair")
	assert.NotContains(t, p, "partId")
}

func TestBuildPositionsIsPure(t *testing.T) {
	positions := []DocumentPosition{
		{Name: "A", Quantity: 1, Price: 10, TaxRate: 19, UnityID: 1},
	}

	first := buildPositions(ObjectInvoicePos, positions)
	second := buildPositions(ObjectInvoicePos, positions)
	assert.Equal(t, first, second)
}

func TestBuildEmailBody(t *testing.T) {
	p := buildEmailBody(EmailArgs{
		ToEmail: "kunde@example.com",
		Subject: "Ihre Rechnung",
		Text:    "Anbei die Rechnung.",
		CcEmail: strPtr("buchhaltung@example.com"),
	})

	assert.Equal(t, "kunde@example.com", p["toEmail"])
	assert.Equal(t, "buchhaltung@example.com", p["ccEmail"])
	assert.NotContains(t, p, "bccEmail")
	assert.NotContains(t, p, "copy")
}

func TestBuildPaymentBodyWrapsCheckAccount(t *testing.T) {
	p := buildPaymentBody(PaymentArgs{
		Amount:         119,
		Date:           "2026-08-01",
		Type:           "N",
		CheckAccountID: intPtr(9),
	})

	assert.Equal(t, float64(119), p["amount"])
	assert.Equal(t, Ref(9, ObjectCheckAccount), p["checkAccount"])
	assert.NotContains(t, p, "checkAccountId")

	p = buildPaymentBody(PaymentArgs{Amount: 50, Date: "2026-08-01", Type: "N"})
	assert.NotContains(t, p, "checkAccount")
}
