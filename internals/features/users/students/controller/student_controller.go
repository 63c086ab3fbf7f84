// file: internals/features/users/students/controller/student_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	roomModel "ktx_backend/internals/features/campus/rooms/model"
	"ktx_backend/internals/features/users/students/dto"
	"ktx_backend/internals/features/users/students/model"
	helper "ktx_backend/internals/helpers"
)

type StudentController struct {
	DB *gorm.DB
}

// -----------------------------------------
// List (GET /api/m/students)
// Query filters: search (name or student code), status, stay_status,
// building_id (via current room), page, per_page
// -----------------------------------------
func (h *StudentController) List(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 20, 100)

	q := h.DB.Model(&model.Student{})

	if v := strings.TrimSpace(c.Query("search")); v != "" {
		like := "%" + v + "%"
		q = q.Where("student_full_name ILIKE ? OR student_code ILIKE ?", like, like)
	}
	if v := c.Query("status"); v != "" {
		q = q.Where("student_status = ?", v)
	}
	if v := c.Query("stay_status"); v != "" {
		q = q.Where("student_stay_status = ?", v)
	}
	if v := c.Query("building_id"); v != "" {
		if id, err := uuid.Parse(v); err == nil {
			q = q.Where("student_current_room_id IN (?)",
				h.DB.Model(&roomModel.Room{}).Select("room_id").Where("room_building_id = ?", id))
		}
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var list []model.Student
	if err := q.Order("student_created_at DESC").Limit(p.Limit).Offset(p.Offset).Find(&list).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonList(c, dto.ToStudentResponses(list), helper.BuildPagination(total, p))
}

// -----------------------------------------
// GetByID (GET /api/m/students/:id)
// -----------------------------------------
func (h *StudentController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid id")
	}

	var m model.Student
	if err := h.DB.First(&m, "student_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "student not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "ok", dto.ToStudentResponse(&m))
}

// -----------------------------------------
// Me (GET /api/s/students/me) — profile for the signed-in student
// -----------------------------------------
func (h *StudentController) Me(c *fiber.Ctx) error {
	studentID, err := helper.GetStudentID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "No student profile bound to this token")
	}

	var m model.Student
	if err := h.DB.First(&m, "student_id = ?", studentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "student not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "ok", dto.ToStudentResponse(&m))
}

// -----------------------------------------
// Create (POST /api/m/students)
// -----------------------------------------
func (h *StudentController) Create(c *fiber.Ctx) error {
	var in dto.StudentCreateRequest
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
	return helper.JsonCreated(c, "student created", dto.ToStudentResponse(m))
}

// -----------------------------------------
// Update (PATCH /api/m/students/:id)
// -----------------------------------------
func (h *StudentController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid id")
	}

	var in dto.StudentUpdateRequest
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid json")
	}
	if err := helper.Validate.Struct(in); err != nil {
		return helper.ValidationError(c, err)
	}

	var m model.Student
	if err := h.DB.First(&m, "student_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "student not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	dto.ApplyStudentUpdate(&m, in)
	if err := h.DB.Save(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonUpdated(c, "student updated", dto.ToStudentResponse(&m))
}

// -----------------------------------------
// Delete (DELETE /api/m/students/:id) — soft delete
// -----------------------------------------
func (h *StudentController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid id")
	}

	var m model.Student
	if err := h.DB.First(&m, "student_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "student not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	if err := h.DB.Delete(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonDeleted(c, "student deleted", dto.ToStudentResponse(&m))
}

// -----------------------------------------
// CheckIn (PUT /api/m/students/:id/check-in)
// The one flow that mutates current_room_id; capacity is checked inside the
// same transaction so a full room cannot be oversubscribed by two managers.
// -----------------------------------------
func (h *StudentController) CheckIn(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid id")
	}

	var in dto.CheckInRequest
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid json")
	}
	if err := helper.Validate.Struct(in); err != nil {
		return helper.ValidationError(c, err)
	}

	var m model.Student
	txErr := h.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&m, "student_id = ?", id).Error; err != nil {
			return err
		}
		if m.StudentCurrentRoomID != nil {
			return errAlreadyStaying
		}

		var room roomModel.Room
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&room, "room_id = ?", in.RoomID).Error; err != nil {
			return err
		}

		var occupants int64
		if err := tx.Model(&model.Student{}).Where("student_current_room_id = ?", room.RoomID).Count(&occupants).Error; err != nil {
			return err
		}
		if occupants >= int64(room.RoomMaxCapacity) {
			return errRoomFull
		}

		m.StudentCurrentRoomID = &room.RoomID
		m.StudentStayStatus = model.StayStatusStaying
		if err := tx.Save(&m).Error; err != nil {
			return err
		}

		// flip the room status once the last bed is taken
		if occupants+1 >= int64(room.RoomMaxCapacity) {
			return tx.Model(&room).Update("room_status", roomModel.RoomStatusFull).Error
		}
		return nil
	})

	switch {
	case txErr == nil:
		return helper.JsonUpdated(c, "student checked in", dto.ToStudentResponse(&m))
	case errors.Is(txErr, gorm.ErrRecordNotFound):
		return helper.JsonError(c, fiber.StatusNotFound, "student or room not found")
	case errors.Is(txErr, errAlreadyStaying):
		return helper.JsonError(c, fiber.StatusConflict, "student is already assigned to a room")
	case errors.Is(txErr, errRoomFull):
		return helper.JsonError(c, fiber.StatusConflict, "room is already at max capacity")
	default:
		return helper.JsonError(c, fiber.StatusInternalServerError, txErr.Error())
	}
}

// -----------------------------------------
// CheckOut (PUT /api/m/students/:id/check-out)
// -----------------------------------------
func (h *StudentController) CheckOut(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid id")
	}

	var m model.Student
	txErr := h.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&m, "student_id = ?", id).Error; err != nil {
			return err
		}
		if m.StudentCurrentRoomID == nil {
			return errNotStaying
		}
		roomID := *m.StudentCurrentRoomID

		m.StudentCurrentRoomID = nil
		m.StudentStayStatus = model.StayStatusCheckedOut
		if err := tx.Save(&m).Error; err != nil {
			return err
		}

		// a bed freed up; reopen the room unless it is under maintenance
		return tx.Model(&roomModel.Room{}).
			Where("room_id = ? AND room_status = ?", roomID, roomModel.RoomStatusFull).
			Update("room_status", roomModel.RoomStatusAvailable).Error
	})

	switch {
	case txErr == nil:
		return helper.JsonUpdated(c, "student checked out", dto.ToStudentResponse(&m))
	case errors.Is(txErr, gorm.ErrRecordNotFound):
		return helper.JsonError(c, fiber.StatusNotFound, "student not found")
	case errors.Is(txErr, errNotStaying):
		return helper.JsonError(c, fiber.StatusConflict, "student is not assigned to any room")
	default:
		return helper.JsonError(c, fiber.StatusInternalServerError, txErr.Error())
	}
}

var (
	errAlreadyStaying = errors.New("student already staying")
	errRoomFull       = errors.New("room full")
	errNotStaying     = errors.New("student not staying")
)
