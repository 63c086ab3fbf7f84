package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAllowedStatusTransition(t *testing.T) {
	cases := []struct {
		name string
		from InvoiceStatus
		to   InvoiceStatus
		want bool
	}{
		{"unpaid to paid", InvoiceStatusUnpaid, InvoiceStatusPaid, true},
		{"unpaid to overdue", InvoiceStatusUnpaid, InvoiceStatusOverdue, true},
		{"unpaid to canceled", InvoiceStatusUnpaid, InvoiceStatusCanceled, true},
		{"overdue stays payable", InvoiceStatusOverdue, InvoiceStatusPaid, true},
		{"overdue to canceled", InvoiceStatusOverdue, InvoiceStatusCanceled, true},
		{"overdue cannot go back to unpaid", InvoiceStatusOverdue, InvoiceStatusUnpaid, false},
		{"paid is terminal", InvoiceStatusPaid, InvoiceStatusCanceled, false},
		{"canceled is terminal", InvoiceStatusCanceled, InvoiceStatusPaid, false},
		{"no self transition", InvoiceStatusUnpaid, InvoiceStatusUnpaid, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, AllowedStatusTransition(tc.from, tc.to))
		})
	}
}

func TestInvoiceStatusValid(t *testing.T) {
	for _, s := range []InvoiceStatus{InvoiceStatusUnpaid, InvoiceStatusPaid, InvoiceStatusOverdue, InvoiceStatusCanceled} {
		assert.True(t, s.Valid(), "status %s", s)
	}
	assert.False(t, InvoiceStatus("EXPIRED").Valid())
}

func TestInvoiceTypeValid(t *testing.T) {
	assert.True(t, InvoiceTypeRoomFee.Valid())
	assert.True(t, InvoiceTypeUtilityFee.Valid())
	assert.False(t, InvoiceType("LAUNDRY_FEE").Valid())
}
