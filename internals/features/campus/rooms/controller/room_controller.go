// file: internals/features/campus/rooms/controller/room_controller.go
package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"ktx_backend/internals/features/campus/rooms/dto"
	"ktx_backend/internals/features/campus/rooms/model"
	studentModel "ktx_backend/internals/features/users/students/model"
	helper "ktx_backend/internals/helpers"
)

type RoomController struct {
	DB *gorm.DB
}

// -----------------------------------------
// List (GET /api/s/rooms, GET /api/m/rooms)
// Query filters: building_id, floor, status, price_min, price_max,
// available=true (status AVAILABLE and occupants < capacity)
// -----------------------------------------
func (h *RoomController) List(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 20, 200)

	q := h.DB.Model(&model.Room{})

	if v := c.Query("building_id"); v != "" {
		if id, err := uuid.Parse(v); err == nil {
			q = q.Where("room_building_id = ?", id)
		}
	}
	if v := c.QueryInt("floor"); v > 0 {
		q = q.Where("room_floor = ?", v)
	}
	if v := c.Query("status"); v != "" {
		q = q.Where("room_status = ?", v)
	}
	if v := c.QueryInt("price_min"); v > 0 {
		q = q.Where("room_price_per_semester >= ?", v)
	}
	if v := c.QueryInt("price_max"); v > 0 {
		q = q.Where("room_price_per_semester <= ?", v)
	}
	if c.Query("available") == "true" {
		q = q.Where("room_status = ?", model.RoomStatusAvailable).
			Where("room_max_capacity > (?)",
				h.DB.Model(&studentModel.Student{}).
					Select("COUNT(*)").
					Where("student_current_room_id = rooms.room_id"))
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var list []model.Room
	if err := q.Order("room_building_id, room_number ASC").Limit(p.Limit).Offset(p.Offset).Find(&list).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	resp := make([]dto.RoomResponse, 0, len(list))
	for i := range list {
		resp = append(resp, dto.ToRoomResponse(&list[i], h.countOccupants(list[i].RoomID)))
	}
	return helper.JsonList(c, resp, helper.BuildPagination(total, p))
}

// -----------------------------------------
// GetByID (GET /api/s/rooms/:id)
// -----------------------------------------
func (h *RoomController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid id")
	}

	var m model.Room
	if err := h.DB.First(&m, "room_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "room not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "ok", dto.ToRoomResponse(&m, h.countOccupants(m.RoomID)))
}

// -----------------------------------------
// Occupants (GET /api/m/rooms/:id/occupants)
// -----------------------------------------
func (h *RoomController) Occupants(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid id")
	}

	var occupants []studentModel.Student
	if err := h.DB.Where("student_current_room_id = ?", id).Find(&occupants).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "ok", occupants)
}

// -----------------------------------------
// Create (POST /api/m/rooms)
// -----------------------------------------
func (h *RoomController) Create(c *fiber.Ctx) error {
	var in dto.RoomCreateRequest
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
	return helper.JsonCreated(c, "room created", dto.ToRoomResponse(m, 0))
}

// -----------------------------------------
// Update (PATCH /api/m/rooms/:id)
// -----------------------------------------
func (h *RoomController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid id")
	}

	var in dto.RoomUpdateRequest
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid json")
	}
	if err := helper.Validate.Struct(in); err != nil {
		return helper.ValidationError(c, err)
	}

	var m model.Room
	if err := h.DB.First(&m, "room_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "room not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	dto.ApplyRoomUpdate(&m, in)
	if err := h.DB.Save(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonUpdated(c, "room updated", dto.ToRoomResponse(&m, h.countOccupants(m.RoomID)))
}

// -----------------------------------------
// Delete (DELETE /api/m/rooms/:id) — refuses while occupied
// -----------------------------------------
func (h *RoomController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid id")
	}

	var m model.Room
	if err := h.DB.First(&m, "room_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "room not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	if n := h.countOccupants(m.RoomID); n > 0 {
		return helper.JsonError(c, fiber.StatusConflict, "room still has occupants")
	}
	if err := h.DB.Delete(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonDeleted(c, "room deleted", dto.ToRoomResponse(&m, 0))
}

func (h *RoomController) countOccupants(roomID uuid.UUID) int64 {
	var n int64
	h.DB.Model(&studentModel.Student{}).Where("student_current_room_id = ?", roomID).Count(&n)
	return n
}
