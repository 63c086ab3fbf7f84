// file: internals/features/home/support_requests/controller/support_request_controller.go
package controller

import (
	"errors"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"ktx_backend/internals/features/home/support_requests/dto"
	"ktx_backend/internals/features/home/support_requests/model"
	studentModel "ktx_backend/internals/features/users/students/model"
	helper "ktx_backend/internals/helpers"
	"ktx_backend/internals/helpers/mailer"
)

type SupportRequestController struct {
	DB     *gorm.DB
	Mailer mailer.Mailer
}

// -----------------------------------------
// Create (POST /api/s/support-requests)
// Defaults the room to the student's current room when none is given.
// -----------------------------------------
func (h *SupportRequestController) Create(c *fiber.Ctx) error {
	studentID, err := helper.GetStudentID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "student account required")
	}

	var in dto.SupportRequestCreateRequest
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid json")
	}
	if err := helper.Validate.Struct(in); err != nil {
		return helper.ValidationError(c, err)
	}

	roomID := in.RoomID
	if roomID == nil {
		var st studentModel.Student
		if err := h.DB.First(&st, "student_id = ?", studentID).Error; err == nil {
			roomID = st.StudentCurrentRoomID
		}
	}

	m := model.SupportRequest{
		SupportRequestStudentID:   studentID,
		SupportRequestRoomID:      roomID,
		SupportRequestCategory:    in.Category,
		SupportRequestTitle:       in.Title,
		SupportRequestDescription: in.Description,
		SupportRequestDeviceMeta:  in.DeviceMeta,
		SupportRequestStatus:      model.SupportStatusOpen,
	}
	if err := h.DB.Create(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonCreated(c, "support request created", dto.ToSupportRequestResponse(&m))
}

// -----------------------------------------
// MyRequests (GET /api/s/support-requests)
// -----------------------------------------
func (h *SupportRequestController) MyRequests(c *fiber.Ctx) error {
	studentID, err := helper.GetStudentID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "student account required")
	}

	q := h.DB.Model(&model.SupportRequest{}).Where("support_request_student_id = ?", studentID)
	if v := c.Query("status"); v != "" {
		q = q.Where("support_request_status = ?", v)
	}

	var list []model.SupportRequest
	if err := q.Order("support_request_created_at DESC").Find(&list).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "ok", dto.ToSupportRequestResponses(list))
}

// -----------------------------------------
// List (GET /api/m/support-requests)
// Query filters: status, category, room_id
// -----------------------------------------
func (h *SupportRequestController) List(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 20, 200)

	q := h.DB.Model(&model.SupportRequest{})
	if v := c.Query("status"); v != "" {
		q = q.Where("support_request_status = ?", v)
	}
	if v := c.Query("category"); v != "" {
		q = q.Where("support_request_category = ?", v)
	}
	if v := c.Query("room_id"); v != "" {
		if id, err := uuid.Parse(v); err == nil {
			q = q.Where("support_request_room_id = ?", id)
		}
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var list []model.SupportRequest
	if err := q.Order("support_request_created_at DESC").Limit(p.Limit).Offset(p.Offset).Find(&list).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonList(c, dto.ToSupportRequestResponses(list), helper.BuildPagination(total, p))
}

// -----------------------------------------
// GetByID (GET /api/m/support-requests/:id)
// -----------------------------------------
func (h *SupportRequestController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid id")
	}

	var m model.SupportRequest
	if err := h.DB.First(&m, "support_request_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "support request not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "ok", dto.ToSupportRequestResponse(&m))
}

// -----------------------------------------
// Handle (PUT /api/m/support-requests/:id)
// Status change plus optional reply; the student is notified by mail.
// A failed mail does not roll the update back, it becomes a warning.
// -----------------------------------------
func (h *SupportRequestController) Handle(c *fiber.Ctx) error {
	managerID, err := helper.GetManagerID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "manager account required")
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid id")
	}

	var in dto.SupportRequestHandleRequest
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid json")
	}
	if err := helper.Validate.Struct(in); err != nil {
		return helper.ValidationError(c, err)
	}
	target := model.SupportRequestStatus(in.Status)
	if !target.Valid() {
		return helper.JsonError(c, fiber.StatusBadRequest, "unknown status value")
	}

	var m model.SupportRequest
	if err := h.DB.First(&m, "support_request_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "support request not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	m.SupportRequestStatus = target
	m.SupportRequestHandledByManager = &managerID
	if in.Reply != "" {
		m.SupportRequestReply = in.Reply
	}
	if target == model.SupportStatusResolved && m.SupportRequestResolvedAt == nil {
		now := time.Now()
		m.SupportRequestResolvedAt = &now
	}
	if err := h.DB.Save(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var st studentModel.Student
	if err := h.DB.First(&st, "student_id = ?", m.SupportRequestStudentID).Error; err == nil && st.StudentEmail != "" {
		body := fmt.Sprintf("Your support request %q is now %s.", m.SupportRequestTitle, m.SupportRequestStatus)
		if m.SupportRequestReply != "" {
			body += "\n\nReply from the dormitory office:\n" + m.SupportRequestReply
		}
		if err := h.Mailer.Send(st.StudentFullName, st.StudentEmail, "Support request update", body); err != nil {
			return helper.JsonOKWithWarning(c, "support request updated",
				"notification mail could not be sent", dto.ToSupportRequestResponse(&m))
		}
	}
	return helper.JsonUpdated(c, "support request updated", dto.ToSupportRequestResponse(&m))
}
