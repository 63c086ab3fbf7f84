// file: internals/route/details/student_routes.go
package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	roomController "ktx_backend/internals/features/campus/rooms/controller"
	semesterController "ktx_backend/internals/features/campus/semesters/controller"
	notificationController "ktx_backend/internals/features/home/notifications/controller"
	supportController "ktx_backend/internals/features/home/support_requests/controller"
	invoiceController "ktx_backend/internals/features/housing/invoices/controller"
	registrationController "ktx_backend/internals/features/housing/registrations/controller"
	studentController "ktx_backend/internals/features/users/students/controller"
	"ktx_backend/internals/helpers/mailer"
)

// StudentRoutes mounts everything a signed-in student may call. The group
// already carries AuthJWT + the student role check.
func StudentRoutes(r fiber.Router, db *gorm.DB) {
	students := &studentController.StudentController{DB: db}
	rooms := &roomController.RoomController{DB: db}
	semesters := &semesterController.SemesterController{DB: db}
	registrations := registrationController.NewRegistrationController(db)
	invoices := &invoiceController.InvoiceController{DB: db}
	notifications := &notificationController.NotificationController{DB: db}
	support := &supportController.SupportRequestController{DB: db, Mailer: mailer.New()}

	r.Get("/students/me", students.Me)

	r.Get("/rooms", rooms.List)
	r.Get("/rooms/:id", rooms.GetByID)
	r.Get("/semesters/active", semesters.Active)

	r.Post("/registrations", registrations.Create)
	r.Get("/registrations", registrations.MyRegistrations)

	r.Get("/invoices", invoices.MyInvoices)
	r.Post("/invoices/:id/pay", invoices.Pay)

	r.Get("/notifications", notifications.MyFeed)
	r.Get("/notifications/unread-count", notifications.UnreadCount)
	r.Put("/notifications/:id/read", notifications.MarkRead)

	r.Post("/support-requests", support.Create)
	r.Get("/support-requests", support.MyRequests)
}
