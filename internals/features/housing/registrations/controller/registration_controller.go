// file: internals/features/housing/registrations/controller/registration_controller.go
package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	roomModel "ktx_backend/internals/features/campus/rooms/model"
	invoiceModel "ktx_backend/internals/features/housing/invoices/model"
	"ktx_backend/internals/features/housing/registrations/dto"
	"ktx_backend/internals/features/housing/registrations/model"
	"ktx_backend/internals/features/housing/registrations/service"
	studentModel "ktx_backend/internals/features/users/students/model"
	helper "ktx_backend/internals/helpers"
)

type RegistrationController struct {
	DB     *gorm.DB
	Intake *service.IntakeService
}

func NewRegistrationController(db *gorm.DB) *RegistrationController {
	return &RegistrationController{DB: db, Intake: &service.IntakeService{DB: db}}
}

// -----------------------------------------
// Create (POST /api/s/registrations) — multipart
// Fields: registration_type, desired_room_id, desired_building_id,
// priority_category, priority_description; optional file field "evidence".
// -----------------------------------------
func (h *RegistrationController) Create(c *fiber.Ctx) error {
	studentID, err := helper.GetStudentID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "student account required")
	}

	in := dto.RegistrationCreateRequest{
		RegistrationType:    c.FormValue("registration_type"),
		PriorityCategory:    c.FormValue("priority_category"),
		PriorityDescription: c.FormValue("priority_description"),
	}
	if v := c.FormValue("desired_room_id"); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "invalid desired_room_id")
		}
		in.DesiredRoomID = &id
	}
	if v := c.FormValue("desired_building_id"); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "invalid desired_building_id")
		}
		in.DesiredBuildingID = &id
	}
	if err := helper.Validate.Struct(in); err != nil {
		return helper.ValidationError(c, err)
	}

	evidencePath := ""
	if fh, err := c.FormFile("evidence"); err == nil && fh != nil {
		evidencePath, err = helper.SaveUpload("registrations", fh)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "could not store evidence file")
		}
	}

	res, err := h.Intake.Register(service.IntakeInput{
		StudentID:           studentID,
		Type:                model.RegistrationType(in.RegistrationType),
		DesiredRoomID:       in.DesiredRoomID,
		DesiredBuildingID:   in.DesiredBuildingID,
		PriorityCategory:    in.PriorityCategory,
		PriorityDescription: in.PriorityDescription,
		EvidencePath:        evidencePath,
	})
	if err != nil {
		return h.intakeError(c, err)
	}

	out := dto.IntakeResponse{
		RegistrationID: res.Registration.RegistrationID,
		Message:        "registration submitted",
	}
	if res.Invoice != nil {
		out.InvoiceID = &res.Invoice.InvoiceID
		out.Amount = &res.Invoice.InvoiceAmount
		out.DueDate = &res.Invoice.InvoiceDueDate
		out.Message = "registration submitted, pay the room fee before the due date"
	}
	return helper.JsonCreated(c, "registration created", out)
}

func (h *RegistrationController) intakeError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, service.ErrNoActiveSemester),
		errors.Is(err, service.ErrWindowClosed):
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, service.ErrAlreadyRegistered):
		return helper.JsonError(c, fiber.StatusConflict, err.Error())
	case errors.Is(err, service.ErrRoomRequired):
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrRoomNotFound):
		return helper.JsonError(c, fiber.StatusNotFound, err.Error())
	default:
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
}

// -----------------------------------------
// MyRegistrations (GET /api/s/registrations)
// -----------------------------------------
func (h *RegistrationController) MyRegistrations(c *fiber.Ctx) error {
	studentID, err := helper.GetStudentID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "student account required")
	}

	q := h.DB.Model(&model.Registration{}).Where("registration_student_id = ?", studentID)
	if v := c.Query("semester_id"); v != "" {
		if id, err := uuid.Parse(v); err == nil {
			q = q.Where("registration_semester_id = ?", id)
		}
	}

	var list []model.Registration
	if err := q.Order("registration_created_at DESC").Find(&list).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "ok", dto.ToRegistrationResponses(list))
}

// -----------------------------------------
// List (GET /api/m/registrations)
// Query filters: type, status, semester_id, search (student name / code)
// -----------------------------------------
func (h *RegistrationController) List(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 20, 200)

	q := h.DB.Model(&model.Registration{})
	if v := c.Query("type"); v != "" {
		q = q.Where("registration_type = ?", v)
	}
	if v := c.Query("status"); v != "" {
		q = q.Where("registration_status = ?", v)
	}
	if v := c.Query("semester_id"); v != "" {
		if id, err := uuid.Parse(v); err == nil {
			q = q.Where("registration_semester_id = ?", id)
		}
	}
	if v := c.Query("search"); v != "" {
		sub := h.DB.Model(&studentModel.Student{}).
			Select("student_id").
			Where("student_full_name ILIKE ? OR student_code ILIKE ?", "%"+v+"%", "%"+v+"%")
		q = q.Where("registration_student_id IN (?)", sub)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var list []model.Registration
	if err := q.Order("registration_created_at DESC").Limit(p.Limit).Offset(p.Offset).Find(&list).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonList(c, dto.ToRegistrationResponses(list), helper.BuildPagination(total, p))
}

// -----------------------------------------
// GetByID (GET /api/m/registrations/:id)
// -----------------------------------------
func (h *RegistrationController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid id")
	}

	var m model.Registration
	if err := h.DB.First(&m, "registration_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "registration not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "ok", dto.ToRegistrationResponse(&m))
}

// -----------------------------------------
// UpdateStatus (PUT /api/m/registrations/:id/status)
// Bad status value → 400, unknown registration → 404, transition not in the
// table → 422. Completing a room-fee registration additionally requires its
// invoice to be PAID; completing a priority one requires an assigned room.
// -----------------------------------------
func (h *RegistrationController) UpdateStatus(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid id")
	}

	var in dto.StatusUpdateRequest
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid json")
	}
	if err := helper.Validate.Struct(in); err != nil {
		return helper.ValidationError(c, err)
	}
	target := model.RegistrationStatus(in.Status)
	if !target.Valid() {
		return helper.JsonError(c, fiber.StatusBadRequest, "unknown status value")
	}

	var m model.Registration
	txErr := h.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&m, "registration_id = ?", id).Error; err != nil {
			return err
		}
		if !model.AllowedTransition(m.RegistrationStatus, target) {
			return errTransition
		}
		if target == model.RegistrationStatusCompleted {
			if err := h.completionGuard(tx, &m); err != nil {
				return err
			}
		}

		m.RegistrationStatus = target
		if in.AdminNote != "" {
			m.RegistrationAdminNote = in.AdminNote
		}
		return tx.Save(&m).Error
	})

	switch {
	case txErr == nil:
		return helper.JsonUpdated(c, "registration status updated", dto.ToRegistrationResponse(&m))
	case errors.Is(txErr, gorm.ErrRecordNotFound):
		return helper.JsonError(c, fiber.StatusNotFound, "registration not found")
	case errors.Is(txErr, errTransition):
		return helper.JsonError(c, fiber.StatusUnprocessableEntity,
			"cannot change status from "+string(m.RegistrationStatus)+" to "+string(target))
	case errors.Is(txErr, errInvoiceUnpaid):
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, "room fee invoice is not paid")
	case errors.Is(txErr, errNoRoomAssigned):
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, "no room assigned to this registration")
	default:
		return helper.JsonError(c, fiber.StatusInternalServerError, txErr.Error())
	}
}

var (
	errTransition     = errors.New("transition not allowed")
	errInvoiceUnpaid  = errors.New("invoice not paid")
	errNoRoomAssigned = errors.New("no room assigned")
)

func (h *RegistrationController) completionGuard(tx *gorm.DB, m *model.Registration) error {
	if m.RegistrationType == model.RegistrationTypePriority {
		if m.RegistrationDesiredRoomID == nil {
			return errNoRoomAssigned
		}
		return nil
	}
	if m.RegistrationInvoiceID == nil {
		return errInvoiceUnpaid
	}
	var inv invoiceModel.Invoice
	if err := tx.First(&inv, "invoice_id = ?", *m.RegistrationInvoiceID).Error; err != nil {
		return err
	}
	if inv.InvoiceStatus != invoiceModel.InvoiceStatusPaid {
		return errInvoiceUnpaid
	}
	return nil
}

// -----------------------------------------
// AssignRoom (PUT /api/m/registrations/:id/room)
// Priority registrations only; checks room existence and free capacity,
// then records the assignment on the registration. The student's actual
// room link is written at check-in, not here.
// -----------------------------------------
func (h *RegistrationController) AssignRoom(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid id")
	}

	var in dto.AssignRoomRequest
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid json")
	}
	if err := helper.Validate.Struct(in); err != nil {
		return helper.ValidationError(c, err)
	}

	var m model.Registration
	if err := h.DB.First(&m, "registration_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "registration not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	if m.RegistrationType != model.RegistrationTypePriority {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, "room assignment applies to priority registrations only")
	}
	if m.RegistrationStatus.Terminal() {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, "registration is already closed")
	}

	var room roomModel.Room
	if err := h.DB.First(&room, "room_id = ?", in.RoomID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "room not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var occupants int64
	h.DB.Model(&studentModel.Student{}).Where("student_current_room_id = ?", room.RoomID).Count(&occupants)
	if occupants >= int64(room.RoomMaxCapacity) {
		return helper.JsonError(c, fiber.StatusConflict, "room is at capacity")
	}

	m.RegistrationDesiredRoomID = &room.RoomID
	if err := h.DB.Save(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonUpdated(c, "room assigned", dto.ToRegistrationResponse(&m))
}
