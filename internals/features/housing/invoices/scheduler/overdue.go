package scheduler

import (
	"log"
	"time"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"

	"ktx_backend/internals/features/housing/invoices/model"
)

// StartOverdueSweep flips UNPAID invoices past their due date to OVERDUE.
// Runs hourly. The invoice stays payable after the flip; nothing here
// touches registrations.
func StartOverdueSweep(db *gorm.DB) {
	c := cron.New()
	_, err := c.AddFunc("@hourly", func() {
		sweep(db)
	})
	if err != nil {
		log.Printf("[CLEANUP] cron schedule error: %v", err)
		return
	}
	c.Start()
}

func sweep(db *gorm.DB) {
	res := db.Model(&model.Invoice{}).
		Where("invoice_status = ? AND invoice_due_date < ?", model.InvoiceStatusUnpaid, time.Now()).
		Updates(map[string]interface{}{
			"invoice_status":     model.InvoiceStatusOverdue,
			"invoice_updated_at": time.Now(),
		})
	if res.Error != nil {
		log.Printf("[CLEANUP ERROR] overdue sweep failed: %v", res.Error)
		return
	}
	if res.RowsAffected > 0 {
		log.Printf("[CLEANUP] %d invoices marked overdue", res.RowsAffected)
	}
}
