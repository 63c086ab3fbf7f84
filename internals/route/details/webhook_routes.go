// file: internals/route/details/webhook_routes.go
package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	invoiceController "ktx_backend/internals/features/housing/invoices/controller"
)

// WebhookRoutes mounts gateway callbacks. No JWT here: midtrans signs its
// notifications, the controller verifies the signature.
func WebhookRoutes(app *fiber.App, db *gorm.DB) {
	invoices := &invoiceController.InvoiceController{DB: db}
	app.Post("/api/payments/midtrans/webhook", invoices.Webhook)
}
