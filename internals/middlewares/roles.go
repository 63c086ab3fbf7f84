package middlewares

import (
	"github.com/gofiber/fiber/v2"

	helper "ktx_backend/internals/helpers"
)

// RequireRoles rejects tokens whose role claim is outside the allow-list.
func RequireRoles(feature string, allowed ...string) fiber.Handler {
	allowSet := make(map[string]struct{}, len(allowed))
	for _, r := range allowed {
		allowSet[r] = struct{}{}
	}
	return func(c *fiber.Ctx) error {
		role := helper.GetRole(c)
		if _, ok := allowSet[role]; !ok {
			return helper.JsonError(c, fiber.StatusForbidden, "You are not allowed to access "+feature+".")
		}
		return c.Next()
	}
}
