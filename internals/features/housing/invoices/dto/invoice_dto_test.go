package dto

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"ktx_backend/internals/features/housing/invoices/model"
)

func TestApplyInvoiceUpdate(t *testing.T) {
	base := func() model.Invoice {
		return model.Invoice{
			InvoiceAmount:      3_000_000,
			InvoiceDescription: "Room fee A-101",
			InvoiceDueDate:     time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
		}
	}

	t.Run("empty request changes nothing", func(t *testing.T) {
		m := base()
		ApplyInvoiceUpdate(&m, InvoiceUpdateRequest{})
		assert.Equal(t, base(), m)
	})

	t.Run("partial update touches only the given fields", func(t *testing.T) {
		m := base()
		amount := int64(3_500_000)
		ApplyInvoiceUpdate(&m, InvoiceUpdateRequest{InvoiceAmount: &amount})
		assert.Equal(t, amount, m.InvoiceAmount)
		assert.Equal(t, base().InvoiceDescription, m.InvoiceDescription)
		assert.Equal(t, base().InvoiceDueDate, m.InvoiceDueDate)
	})

	t.Run("full update", func(t *testing.T) {
		m := base()
		amount := int64(100_000)
		desc := "Water bill August"
		due := time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC)
		ApplyInvoiceUpdate(&m, InvoiceUpdateRequest{
			InvoiceAmount:      &amount,
			InvoiceDescription: &desc,
			InvoiceDueDate:     &due,
		})
		assert.Equal(t, amount, m.InvoiceAmount)
		assert.Equal(t, desc, m.InvoiceDescription)
		assert.Equal(t, due, m.InvoiceDueDate)
	})
}
