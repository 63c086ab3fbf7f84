// file: internals/helpers/locals.go
package helper

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// Keys hydrated into c.Locals by the auth middleware.
const (
	LocUserID    = "user_id"
	LocRole      = "role"
	LocStudentID = "student_id"
	LocManagerID = "manager_id"
)

var ErrNoUserInContext = errors.New("no authenticated user in request context")

func GetUserID(c *fiber.Ctx) (uuid.UUID, error) {
	return localUUID(c, LocUserID)
}

// GetStudentID returns the student profile id bound to the token.
// Only present for role=student tokens.
func GetStudentID(c *fiber.Ctx) (uuid.UUID, error) {
	return localUUID(c, LocStudentID)
}

func GetManagerID(c *fiber.Ctx) (uuid.UUID, error) {
	return localUUID(c, LocManagerID)
}

func GetRole(c *fiber.Ctx) string {
	if v, ok := c.Locals(LocRole).(string); ok {
		return strings.TrimSpace(v)
	}
	return ""
}

func localUUID(c *fiber.Ctx, key string) (uuid.UUID, error) {
	v, ok := c.Locals(key).(string)
	if !ok || strings.TrimSpace(v) == "" {
		return uuid.Nil, ErrNoUserInContext
	}
	id, err := uuid.Parse(strings.TrimSpace(v))
	if err != nil {
		return uuid.Nil, ErrNoUserInContext
	}
	return id, nil
}
