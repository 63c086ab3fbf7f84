// file: internals/route/index.go
package routes

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"ktx_backend/internals/configs"
	"ktx_backend/internals/constants"
	authController "ktx_backend/internals/features/users/auth/controller"
	"ktx_backend/internals/middlewares"
	authMiddleware "ktx_backend/internals/middlewares/auth"
	routeDetails "ktx_backend/internals/route/details"
)

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	// ===================== PUBLIC =====================
	log.Println("[INFO] Setting up AuthRoutes...")
	routeDetails.AuthRoutes(app, db)

	log.Println("[INFO] Setting up WebhookRoutes...")
	routeDetails.WebhookRoutes(app, db)

	authJWT := authMiddleware.AuthJWT(authMiddleware.AuthJWTOpts{
		Secret:              configs.JWTSecret,
		BlacklistChecker:    authController.IsBlacklisted(db),
		AllowCookieFallback: true,
	})

	// ===================== STUDENT (/api/s) =====================
	log.Println("[INFO] Setting up STUDENT group...")
	student := app.Group("/api/s",
		authJWT,
		middlewares.RequireRoles("student area", constants.StudentOnly...),
	)
	routeDetails.StudentRoutes(student, db)

	// ===================== MANAGER (/api/m) =====================
	log.Println("[INFO] Setting up MANAGER group...")
	manager := app.Group("/api/m",
		authJWT,
		middlewares.RequireRoles("manager area", constants.ManagerAndUp...),
	)
	routeDetails.ManagerRoutes(manager, db)
}
