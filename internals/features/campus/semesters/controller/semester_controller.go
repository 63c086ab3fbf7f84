// file: internals/features/campus/semesters/controller/semester_controller.go
package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"ktx_backend/internals/features/campus/semesters/dto"
	"ktx_backend/internals/features/campus/semesters/model"
	helper "ktx_backend/internals/helpers"
)

type SemesterController struct {
	DB *gorm.DB
}

func (h *SemesterController) List(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 20, 100)

	q := h.DB.Model(&model.Semester{})
	if v := c.Query("academic_year"); v != "" {
		q = q.Where("semester_academic_year = ?", v)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var list []model.Semester
	if err := q.Order("semester_start_date DESC").Limit(p.Limit).Offset(p.Offset).Find(&list).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonList(c, dto.ToSemesterResponses(list), helper.BuildPagination(total, p))
}

// Active (GET /api/s/semesters/active) — the semester registrations run in
func (h *SemesterController) Active(c *fiber.Ctx) error {
	var m model.Semester
	if err := h.DB.Where("semester_is_active = ?", true).Limit(1).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "no active semester")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "ok", dto.ToSemesterResponse(&m))
}

func (h *SemesterController) Create(c *fiber.Ctx) error {
	var in dto.SemesterCreateRequest
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid json")
	}
	if err := helper.Validate.Struct(in); err != nil {
		return helper.ValidationError(c, err)
	}

	m := in.ToModel()
	if err := h.DB.Create(m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonCreated(c, "semester created", dto.ToSemesterResponse(m))
}

func (h *SemesterController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid id")
	}

	var in dto.SemesterUpdateRequest
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid json")
	}
	if err := helper.Validate.Struct(in); err != nil {
		return helper.ValidationError(c, err)
	}

	var m model.Semester
	if err := h.DB.First(&m, "semester_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "semester not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	dto.ApplySemesterUpdate(&m, in)
	if err := h.DB.Save(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonUpdated(c, "semester updated", dto.ToSemesterResponse(&m))
}

// -----------------------------------------
// Activate (PUT /api/m/semesters/:id/activate)
// Deactivates every other semester in the same transaction, so the
// "single active semester" assumption the reads make actually holds.
// -----------------------------------------
func (h *SemesterController) Activate(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid id")
	}

	var m model.Semester
	txErr := h.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&m, "semester_id = ?", id).Error; err != nil {
			return err
		}
		if err := tx.Model(&model.Semester{}).
			Where("semester_is_active = ? AND semester_id <> ?", true, id).
			Update("semester_is_active", false).Error; err != nil {
			return err
		}
		m.SemesterIsActive = true
		return tx.Save(&m).Error
	})

	switch {
	case txErr == nil:
		return helper.JsonUpdated(c, "semester activated", dto.ToSemesterResponse(&m))
	case errors.Is(txErr, gorm.ErrRecordNotFound):
		return helper.JsonError(c, fiber.StatusNotFound, "semester not found")
	default:
		return helper.JsonError(c, fiber.StatusInternalServerError, txErr.Error())
	}
}

func (h *SemesterController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid id")
	}

	var m model.Semester
	if err := h.DB.First(&m, "semester_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "semester not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	if m.SemesterIsActive {
		return helper.JsonError(c, fiber.StatusConflict, "cannot delete the active semester")
	}
	if err := h.DB.Delete(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonDeleted(c, "semester deleted", dto.ToSemesterResponse(&m))
}
