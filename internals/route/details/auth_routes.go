// file: internals/route/details/auth_routes.go
package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"ktx_backend/internals/configs"
	authController "ktx_backend/internals/features/users/auth/controller"
	"ktx_backend/internals/middlewares"
	authMiddleware "ktx_backend/internals/middlewares/auth"
)

func AuthRoutes(app *fiber.App, db *gorm.DB) {
	ctrl := &authController.AuthController{DB: db}

	grp := app.Group("/api/auth")
	grp.Post("/login", middlewares.LoginRateLimiter(), ctrl.Login)
	grp.Post("/refresh", ctrl.Refresh)

	// logout and /me need a verified token
	authed := grp.Group("",
		authMiddleware.AuthJWT(authMiddleware.AuthJWTOpts{
			Secret:              configs.JWTSecret,
			BlacklistChecker:    authController.IsBlacklisted(db),
			AllowCookieFallback: true,
		}),
	)
	authed.Post("/logout", ctrl.Logout)
	authed.Get("/me", ctrl.Me)
}
