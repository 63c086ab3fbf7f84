// file: internals/route/details/manager_routes.go
package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"ktx_backend/internals/constants"
	buildingController "ktx_backend/internals/features/campus/buildings/controller"
	roomController "ktx_backend/internals/features/campus/rooms/controller"
	semesterController "ktx_backend/internals/features/campus/semesters/controller"
	notificationController "ktx_backend/internals/features/home/notifications/controller"
	supportController "ktx_backend/internals/features/home/support_requests/controller"
	invoiceController "ktx_backend/internals/features/housing/invoices/controller"
	registrationController "ktx_backend/internals/features/housing/registrations/controller"
	managerController "ktx_backend/internals/features/users/managers/controller"
	studentController "ktx_backend/internals/features/users/students/controller"
	"ktx_backend/internals/helpers/mailer"
	"ktx_backend/internals/middlewares"
)

// ManagerRoutes mounts the manager/admin surface. The group already carries
// AuthJWT + the manager-or-admin role check.
func ManagerRoutes(r fiber.Router, db *gorm.DB) {
	mail := mailer.New()

	students := &studentController.StudentController{DB: db}
	managers := &managerController.ManagerController{DB: db, Mailer: mail}
	buildings := &buildingController.BuildingController{DB: db}
	rooms := &roomController.RoomController{DB: db}
	semesters := &semesterController.SemesterController{DB: db}
	registrations := registrationController.NewRegistrationController(db)
	invoices := &invoiceController.InvoiceController{DB: db}
	notifications := &notificationController.NotificationController{DB: db}
	support := &supportController.SupportRequestController{DB: db, Mailer: mail}

	r.Get("/students", students.List)
	r.Post("/students", students.Create)
	r.Get("/students/:id", students.GetByID)
	r.Patch("/students/:id", students.Update)
	r.Delete("/students/:id", students.Delete)
	r.Put("/students/:id/check-in", students.CheckIn)
	r.Put("/students/:id/check-out", students.CheckOut)

	// creating and removing manager accounts is reserved to admins
	adminOnly := middlewares.RequireRoles("manager administration", constants.AdminOnly...)
	r.Get("/managers", managers.List)
	r.Post("/managers", adminOnly, managers.Create)
	r.Get("/managers/:id", managers.GetByID)
	r.Patch("/managers/:id", managers.Update)
	r.Delete("/managers/:id", adminOnly, managers.Delete)

	r.Get("/buildings", buildings.List)
	r.Post("/buildings", buildings.Create)
	r.Get("/buildings/:id", buildings.GetByID)
	r.Patch("/buildings/:id", buildings.Update)
	r.Delete("/buildings/:id", buildings.Delete)

	r.Get("/rooms", rooms.List)
	r.Post("/rooms", rooms.Create)
	r.Get("/rooms/:id", rooms.GetByID)
	r.Get("/rooms/:id/occupants", rooms.Occupants)
	r.Patch("/rooms/:id", rooms.Update)
	r.Delete("/rooms/:id", rooms.Delete)

	r.Get("/semesters", semesters.List)
	r.Post("/semesters", semesters.Create)
	r.Put("/semesters/:id", semesters.Update)
	r.Put("/semesters/:id/activate", semesters.Activate)
	r.Delete("/semesters/:id", semesters.Delete)

	r.Get("/registrations", registrations.List)
	r.Get("/registrations/:id", registrations.GetByID)
	r.Put("/registrations/:id/status", registrations.UpdateStatus)
	r.Put("/registrations/:id/room", registrations.AssignRoom)

	r.Get("/invoices", invoices.List)
	r.Post("/invoices", invoices.Create)
	r.Get("/invoices/:id", invoices.GetByID)
	r.Put("/invoices/:id", invoices.Update)
	r.Put("/invoices/:code/status", invoices.UpdateStatus)
	r.Delete("/invoices/:id", invoices.Delete)

	r.Get("/notifications", notifications.Sent)
	r.Post("/notifications", notifications.Create)
	r.Delete("/notifications/:id", notifications.Delete)

	r.Get("/support-requests", support.List)
	r.Get("/support-requests/:id", support.GetByID)
	r.Put("/support-requests/:id", support.Handle)
}
