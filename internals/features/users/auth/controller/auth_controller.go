// file: internals/features/users/auth/controller/auth_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"ktx_backend/internals/features/users/auth/dto"
	"ktx_backend/internals/features/users/auth/model"
	"ktx_backend/internals/features/users/auth/service"
	helper "ktx_backend/internals/helpers"
)

type AuthController struct {
	DB *gorm.DB
}

// -----------------------------------------
// Login (POST /api/auth/login)
// -----------------------------------------
func (h *AuthController) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid json")
	}
	if err := helper.Validate.Struct(in); err != nil {
		return helper.ValidationError(c, err)
	}

	var u model.User
	if err := h.DB.First(&u, "user_name = ?", strings.TrimSpace(in.Username)).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Wrong username or password")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	if !u.UserIsActive {
		return helper.JsonError(c, fiber.StatusForbidden, "Your account has been deactivated")
	}
	if !service.CheckPassword(u.UserPasswordHash, in.Password) {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Wrong username or password")
	}
	// the clients send the portal they logged in from; reject mismatches early
	if in.Role != "" && in.Role != u.UserRole {
		return helper.JsonError(c, fiber.StatusForbidden, "Account role does not match this portal")
	}

	access, err := service.GenerateAccessToken(&u)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	refresh, err := service.GenerateRefreshToken(&u)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonOK(c, "login successful", dto.LoginResponse{
		Token:        access,
		RefreshToken: refresh,
		User:         dto.ToUserResponse(&u),
	})
}

// -----------------------------------------
// Refresh (POST /api/auth/refresh)
// -----------------------------------------
func (h *AuthController) Refresh(c *fiber.Ctx) error {
	var in dto.RefreshRequest
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid json")
	}
	if err := helper.Validate.Struct(in); err != nil {
		return helper.ValidationError(c, err)
	}

	userID, err := service.ParseRefreshToken(in.RefreshToken)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	var u model.User
	if err := h.DB.First(&u, "user_id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusUnauthorized, "User no longer exists")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	if !u.UserIsActive {
		return helper.JsonError(c, fiber.StatusForbidden, "Your account has been deactivated")
	}

	access, err := service.GenerateAccessToken(&u)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonOK(c, "token refreshed", fiber.Map{"token": access})
}

// -----------------------------------------
// Logout (POST /api/auth/logout) — blacklists the presented token
// -----------------------------------------
func (h *AuthController) Logout(c *fiber.Ctx) error {
	raw, _ := c.Locals("raw_token").(string)
	if raw == "" {
		return helper.JsonError(c, fiber.StatusUnauthorized, "No token presented")
	}

	entry := model.TokenBlacklist{
		TokenBlacklistToken:     raw,
		TokenBlacklistExpiredAt: service.TokenExpiry(raw),
	}
	if err := h.DB.Create(&entry).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonOK(c, "logged out", nil)
}

// -----------------------------------------
// Me (GET /api/auth/me)
// -----------------------------------------
func (h *AuthController) Me(c *fiber.Ctx) error {
	userID, err := helper.GetUserID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var u model.User
	if err := h.DB.First(&u, "user_id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "user not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonOK(c, "ok", dto.ToUserResponse(&u))
}

// IsBlacklisted is plugged into the auth middleware.
func IsBlacklisted(db *gorm.DB) func(string) (bool, error) {
	return func(raw string) (bool, error) {
		var count int64
		err := db.Model(&model.TokenBlacklist{}).
			Where("token_blacklist_token = ?", raw).
			Count(&count).Error
		return count > 0, err
	}
}
