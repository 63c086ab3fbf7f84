// file: internals/middlewares/auth/auth_middleware.go
package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"

	helper "ktx_backend/internals/helpers"
)

type AuthJWTOpts struct {
	Secret              string
	BlacklistChecker    func(rawToken string) (bool, error) // return true if revoked
	AllowCookieFallback bool                                // use access_token cookie when no Bearer header
}

// AuthJWT verifies the bearer token and hydrates c.Locals with
// user_id/role/student_id/manager_id for the helpers to read.
func AuthJWT(o AuthJWTOpts) fiber.Handler {
	secret := strings.TrimSpace(o.Secret)
	if secret == "" {
		panic("AuthJWT: Secret is required")
	}

	return func(c *fiber.Ctx) error {
		raw := ""
		if authz := strings.TrimSpace(c.Get(fiber.HeaderAuthorization)); strings.HasPrefix(strings.ToLower(authz), "bearer ") {
			raw = strings.TrimSpace(authz[7:])
		} else if o.AllowCookieFallback {
			raw = strings.TrimSpace(c.Cookies("access_token"))
		}
		if raw == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized")
		}

		if o.BlacklistChecker != nil {
			if revoked, err := o.BlacklistChecker(raw); err == nil && revoked {
				return fiber.NewError(fiber.StatusUnauthorized, "Token revoked")
			}
		}

		tok, err := jwt.Parse(raw, func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fiber.NewError(fiber.StatusUnauthorized, "Invalid signing method")
			}
			return []byte(secret), nil
		})
		if err != nil || !tok.Valid {
			return fiber.NewError(fiber.StatusUnauthorized, "Invalid token")
		}

		claims, ok := tok.Claims.(jwt.MapClaims)
		if !ok {
			return fiber.NewError(fiber.StatusUnauthorized, "Invalid token claims")
		}
		c.Locals("jwt_claims", claims)
		c.Locals("raw_token", raw)

		userID := strClaim(claims, "id")
		if userID == "" {
			userID = strClaim(claims, "sub")
		}
		if _, err := uuid.Parse(userID); err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "Invalid user id in token")
		}
		c.Locals(helper.LocUserID, userID)

		if role := strClaim(claims, "role"); role != "" {
			c.Locals(helper.LocRole, role)
		}
		if sid := strClaim(claims, "student_id"); sid != "" {
			c.Locals(helper.LocStudentID, sid)
		}
		if mid := strClaim(claims, "manager_id"); mid != "" {
			c.Locals(helper.LocManagerID, mid)
		}

		return c.Next()
	}
}

func strClaim(claims jwt.MapClaims, key string) string {
	if v, ok := claims[key].(string); ok {
		return strings.TrimSpace(v)
	}
	return ""
}
