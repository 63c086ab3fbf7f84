// file: internals/features/users/managers/controller/manager_controller.go
package controller

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"ktx_backend/internals/constants"
	authModel "ktx_backend/internals/features/users/auth/model"
	authService "ktx_backend/internals/features/users/auth/service"
	"ktx_backend/internals/features/users/managers/dto"
	"ktx_backend/internals/features/users/managers/model"
	helper "ktx_backend/internals/helpers"
	"ktx_backend/internals/helpers/mailer"
)

type ManagerController struct {
	DB     *gorm.DB
	Mailer mailer.Mailer
}

// -----------------------------------------
// List (GET /api/m/managers)
// -----------------------------------------
func (h *ManagerController) List(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 20, 100)

	q := h.DB.Model(&model.Manager{})
	if v := strings.TrimSpace(c.Query("search")); v != "" {
		like := "%" + v + "%"
		q = q.Where("manager_full_name ILIKE ? OR manager_staff_no ILIKE ?", like, like)
	}
	if v := c.Query("building_id"); v != "" {
		if id, err := uuid.Parse(v); err == nil {
			q = q.Where("manager_building_id = ?", id)
		}
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var list []model.Manager
	if err := q.Order("manager_created_at DESC").Limit(p.Limit).Offset(p.Offset).Find(&list).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonList(c, dto.ToManagerResponses(list), helper.BuildPagination(total, p))
}

// -----------------------------------------
// Create (POST /api/m/managers) — admin only
// Creates the profile plus a portal account with a generated password, then
// mails the credentials. A failed mail does not roll anything back; it comes
// back as a warning on the response.
// -----------------------------------------
func (h *ManagerController) Create(c *fiber.Ctx) error {
	var in dto.ManagerCreateRequest
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid json")
	}
	if err := helper.Validate.Struct(in); err != nil {
		return helper.ValidationError(c, err)
	}

	initialPassword := authService.GenerateInitialPassword(12)
	hash, err := authService.HashPassword(initialPassword)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	m := in.ToModel()
	txErr := h.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(m).Error; err != nil {
			return err
		}
		account := authModel.User{
			UserName:         in.Username,
			UserEmail:        in.ManagerEmail,
			UserPasswordHash: hash,
			UserRole:         constants.RoleManager,
			UserManagerID:    &m.ManagerID,
		}
		return tx.Create(&account).Error
	})
	if txErr != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, txErr.Error())
	}

	body := fmt.Sprintf(
		"Hello %s,\n\nYour dormitory manager account has been created.\n\nUsername: %s\nPassword: %s\n\nPlease change the password after your first login.",
		m.ManagerFullName, in.Username, initialPassword,
	)
	if err := h.Mailer.Send(m.ManagerFullName, m.ManagerEmail, "Your manager account", body); err != nil {
		return helper.JsonOKWithWarning(c, "manager created",
			"credential email could not be sent: "+err.Error(),
			dto.ToManagerResponse(m))
	}

	return helper.JsonCreated(c, "manager created", dto.ToManagerResponse(m))
}

// -----------------------------------------
// GetByID (GET /api/m/managers/:id)
// -----------------------------------------
func (h *ManagerController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid id")
	}

	var m model.Manager
	if err := h.DB.First(&m, "manager_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "manager not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "ok", dto.ToManagerResponse(&m))
}

// -----------------------------------------
// Update (PATCH /api/m/managers/:id)
// -----------------------------------------
func (h *ManagerController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid id")
	}

	var in dto.ManagerUpdateRequest
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid json")
	}
	if err := helper.Validate.Struct(in); err != nil {
		return helper.ValidationError(c, err)
	}

	var m model.Manager
	if err := h.DB.First(&m, "manager_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "manager not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	dto.ApplyManagerUpdate(&m, in)
	if err := h.DB.Save(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonUpdated(c, "manager updated", dto.ToManagerResponse(&m))
}

// -----------------------------------------
// Delete (DELETE /api/m/managers/:id) — admin only; soft delete, deactivates
// the account
// -----------------------------------------
func (h *ManagerController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid id")
	}

	var m model.Manager
	if err := h.DB.First(&m, "manager_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "manager not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	txErr := h.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&m).Error; err != nil {
			return err
		}
		return tx.Model(&authModel.User{}).
			Where("user_manager_id = ?", m.ManagerID).
			Update("user_is_active", false).Error
	})
	if txErr != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, txErr.Error())
	}
	return helper.JsonDeleted(c, "manager deleted", dto.ToManagerResponse(&m))
}
