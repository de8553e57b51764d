package tools

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildCreateOrderBodyDefaults(t *testing.T) {
	body := buildCreateOrderBody(createOrderArgs{
		ContactID: 5,
		OrderDate: "2026-08-20",
		OrderType: "AN",
	}, "AN-1001", nil)

	order, ok := body["order"].(Payload)
	require.True(t, ok)
	assert.Equal(t, "AN-1001", order["orderNumber"])
	assert.Equal(t, 100, order["status"])
	assert.Equal(t, "AN-AN-1001", order["header"])
	assert.Equal(t, "EUR", order["currency"])
	assert.Equal(t, float64(0), order["taxRate"])
	assert.Equal(t, "default", order["taxType"])
	assert.Equal(t, "Umsatzsteuer", order["taxText"])
	assert.Equal(t, Ref(1, ObjectTaxRule), order["taxRule"])
	assert.Equal(t, 0, order["version"])
	assert.NotContains(t, order, "contactPerson")
}

func TestBuildCreateOrderBodyExplicitValuesWin(t *testing.T) {
	person := Ref(3, ObjectSevUser)
	body := buildCreateOrderBody(createOrderArgs{
		ContactID: 5,
		OrderDate: "2026-08-20",
		OrderType: "AB",
		Header:    strPtr("Auftragsbestätigung Projekt X"),
		Status:    intPtr(200),
		Currency:  strPtr("CHF"),
		TaxRuleID: intPtr(17),
	}, "AB-2002", &person)

	order := body["order"].(Payload)
	assert.Equal(t, "Auftragsbestätigung Projekt X", order["header"])
	assert.Equal(t, 200, order["status"])
	assert.Equal(t, "CHF", order["currency"])
	assert.Equal(t, Ref(17, ObjectTaxRule), order["taxRule"])
	assert.Equal(t, person, order["contactPerson"])
}

func TestBuildListOrdersQuery(t *testing.T) {
	q := buildListOrdersQuery(listOrdersArgs{
		ContactID: strPtr("9"),
		OrderType: strPtr("AN"),
	})

	assert.Equal(t, "9", q.Get("contact[id]"))
	assert.Equal(t, "Contact", q.Get("contact[objectName]"))
	assert.Equal(t, "AN", q.Get("orderType"))
}
