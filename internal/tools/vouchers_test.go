package tools

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildVoucherPositions(t *testing.T) {
	out := buildVoucherPositions([]VoucherPosition{
		{AccountingTypeID: 26, TaxRate: 19, SumNet: 100, SumGross: 119, Net: true},
		{AccountingTypeID: 27, TaxRate: 7, SumNet: 50, SumGross: 53.50, Net: false, Comment: strPtr("Bewirtung")},
	})

	require.Len(t, out, 2)
	assert.Equal(t, ObjectVoucherPos, out[0]["objectName"])
	assert.Equal(t, Ref(26, ObjectAccountingType), out[0]["accountingType"])
	assert.Equal(t, true, out[0]["mapAll"])
	assert.NotContains(t, out[0], "comment")
	assert.NotContains(t, out[0], "positionNumber", "voucher positions carry no ordering field")

	assert.Equal(t, "Bewirtung", out[1]["comment"])
	assert.Equal(t, false, out[1]["net"])
}

func TestBuildCreateVoucherBody(t *testing.T) {
	body := buildCreateVoucherBody(createVoucherArgs{
		VoucherDate: "2026-08-10",
		CreditDebit: "D",
		TaxType:     "default",
		SupplierID:  intPtr(31),
		Positions: []VoucherPosition{
			{AccountingTypeID: 26, TaxRate: 19, SumNet: 100, SumGross: 119, Net: true},
		},
	})

	voucher, ok := body["voucher"].(Payload)
	require.True(t, ok)
	assert.Equal(t, ObjectVoucher, voucher["objectName"])
	assert.Equal(t, "D", voucher["creditDebit"])
	assert.Equal(t, Ref(31, ObjectContact), voucher["supplier"])
	assert.NotContains(t, voucher, "supplierName")
	assert.NotContains(t, voucher, "status")

	positions, ok := body["voucherPosSave"].([]Payload)
	require.True(t, ok)
	require.Len(t, positions, 1)
}

func TestBuildUpdateVoucherBodyEmptyWhenNoFields(t *testing.T) {
	body := buildUpdateVoucherBody(updateVoucherArgs{VoucherID: "88"})
	assert.Empty(t, body)
}

func TestBuildListVouchersQuery(t *testing.T) {
	q := buildListVouchersQuery(listVouchersArgs{
		Status:      intPtr(100),
		VoucherType: strPtr("VOU"),
	})

	assert.Equal(t, "100", q.Get("status"))
	assert.Equal(t, "VOU", q.Get("voucherType"))
	assert.Equal(t, "50", q.Get("limit"))
}
