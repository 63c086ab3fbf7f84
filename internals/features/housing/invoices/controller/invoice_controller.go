// file: internals/features/housing/invoices/controller/invoice_controller.go
package controller

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	roomModel "ktx_backend/internals/features/campus/rooms/model"
	"ktx_backend/internals/features/housing/invoices/dto"
	"ktx_backend/internals/features/housing/invoices/model"
	"ktx_backend/internals/features/housing/invoices/service"
	studentModel "ktx_backend/internals/features/users/students/model"
	helper "ktx_backend/internals/helpers"
)

type InvoiceController struct {
	DB *gorm.DB
}

// -----------------------------------------
// Create (POST /api/m/invoices)
// Manager-issued invoices; room-wide when invoice_student_id is empty.
// -----------------------------------------
func (h *InvoiceController) Create(c *fiber.Ctx) error {
	managerID, err := helper.GetManagerID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "manager account required")
	}

	var in dto.InvoiceCreateRequest
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid json")
	}
	if err := helper.Validate.Struct(in); err != nil {
		return helper.ValidationError(c, err)
	}

	var room roomModel.Room
	if err := h.DB.First(&room, "room_id = ?", in.InvoiceRoomID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "room not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	prefix := "UTIL"
	if model.InvoiceType(in.InvoiceType) == model.InvoiceTypeRoomFee {
		prefix = "ROOM"
	}
	m := model.Invoice{
		InvoiceCode:               helper.GenerateInvoiceCode(prefix, time.Now()),
		InvoiceType:               model.InvoiceType(in.InvoiceType),
		InvoiceSemesterID:         in.InvoiceSemesterID,
		InvoiceRoomID:             in.InvoiceRoomID,
		InvoiceStudentID:          in.InvoiceStudentID,
		InvoiceAmount:             in.InvoiceAmount,
		InvoiceDescription:        in.InvoiceDescription,
		InvoiceStatus:             model.InvoiceStatusUnpaid,
		InvoiceDueDate:            in.InvoiceDueDate,
		InvoiceCreatedByManagerID: &managerID,
	}
	if err := h.DB.Create(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonCreated(c, "invoice created", dto.ToInvoiceResponse(&m))
}

// -----------------------------------------
// List (GET /api/m/invoices)
// Query filters: building_id (joins rooms), room_id, student_id, semester_id,
// type, status
// -----------------------------------------
func (h *InvoiceController) List(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 20, 200)

	q := h.DB.Model(&model.Invoice{})
	if v := c.Query("building_id"); v != "" {
		if id, err := uuid.Parse(v); err == nil {
			q = q.Joins("JOIN rooms ON rooms.room_id = invoices.invoice_room_id").
				Where("rooms.room_building_id = ?", id)
		}
	}
	if v := c.Query("room_id"); v != "" {
		if id, err := uuid.Parse(v); err == nil {
			q = q.Where("invoice_room_id = ?", id)
		}
	}
	if v := c.Query("student_id"); v != "" {
		if id, err := uuid.Parse(v); err == nil {
			q = q.Where("invoice_student_id = ?", id)
		}
	}
	if v := c.Query("semester_id"); v != "" {
		if id, err := uuid.Parse(v); err == nil {
			q = q.Where("invoice_semester_id = ?", id)
		}
	}
	if v := c.Query("type"); v != "" {
		q = q.Where("invoice_type = ?", v)
	}
	if v := c.Query("status"); v != "" {
		q = q.Where("invoice_status = ?", v)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var list []model.Invoice
	if err := q.Order("invoice_created_at DESC").Limit(p.Limit).Offset(p.Offset).Find(&list).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonList(c, dto.ToInvoiceResponses(list), helper.BuildPagination(total, p))
}

// -----------------------------------------
// GetByID (GET /api/m/invoices/:id)
// -----------------------------------------
func (h *InvoiceController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid id")
	}

	var m model.Invoice
	if err := h.DB.First(&m, "invoice_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "invoice not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "ok", dto.ToInvoiceResponse(&m))
}

// -----------------------------------------
// MyInvoices (GET /api/s/invoices)
// Direct invoices plus room-wide invoices for the student's current room.
// -----------------------------------------
func (h *InvoiceController) MyInvoices(c *fiber.Ctx) error {
	studentID, err := helper.GetStudentID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "student account required")
	}

	var st studentModel.Student
	if err := h.DB.First(&st, "student_id = ?", studentID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	q := h.DB.Model(&model.Invoice{})
	if st.StudentCurrentRoomID != nil {
		q = q.Where("invoice_student_id = ? OR (invoice_student_id IS NULL AND invoice_room_id = ?)",
			studentID, *st.StudentCurrentRoomID)
	} else {
		q = q.Where("invoice_student_id = ?", studentID)
	}
	if v := c.Query("status"); v != "" {
		q = q.Where("invoice_status = ?", v)
	}

	var list []model.Invoice
	if err := q.Order("invoice_due_date ASC").Find(&list).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "ok", dto.ToInvoiceResponses(list))
}

// -----------------------------------------
// Pay (POST /api/s/invoices/:id/pay)
// Returns a midtrans snap token; the actual status flip happens when the
// gateway webhook reports settlement.
// -----------------------------------------
func (h *InvoiceController) Pay(c *fiber.Ctx) error {
	studentID, err := helper.GetStudentID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "student account required")
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid id")
	}

	var m model.Invoice
	if err := h.DB.First(&m, "invoice_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "invoice not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var st studentModel.Student
	if err := h.DB.First(&st, "student_id = ?", studentID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	// direct invoices are payable by their student, room-wide ones by any
	// current occupant of the room
	allowed := (m.InvoiceStudentID != nil && *m.InvoiceStudentID == studentID) ||
		(m.InvoiceStudentID == nil && st.StudentCurrentRoomID != nil && *st.StudentCurrentRoomID == m.InvoiceRoomID)
	if !allowed {
		return helper.JsonError(c, fiber.StatusForbidden, "this invoice is not yours to pay")
	}

	token, redirect, err := service.GenerateSnapToken(&m, service.CustomerInput{
		Name:  st.StudentFullName,
		Email: st.StudentEmail,
		Phone: st.StudentPhone,
	})
	if err != nil {
		if errors.Is(err, service.ErrInvoiceNotPayable) {
			return helper.JsonError(c, fiber.StatusUnprocessableEntity, "invoice is not payable in its current status")
		}
		return helper.JsonError(c, fiber.StatusBadGateway, "payment gateway error: "+err.Error())
	}

	// remember who initiated the payment; settlement confirms it
	_ = h.DB.Model(&m).Update("invoice_paid_by_student_id", studentID).Error

	return helper.JsonOK(c, "snap token created", dto.SnapTokenResponse{
		InvoiceCode: m.InvoiceCode,
		SnapToken:   token,
		RedirectURL: redirect,
	})
}

// midtransNotification is the subset of the webhook payload we act on.
type midtransNotification struct {
	OrderID           string `json:"order_id"`
	TransactionStatus string `json:"transaction_status"` // capture, settlement, pending, deny, cancel, expire
	StatusCode        string `json:"status_code"`
	GrossAmount       string `json:"gross_amount"`
	SignatureKey      string `json:"signature_key"`
	FraudStatus       string `json:"fraud_status"`
	SettlementTime    string `json:"settlement_time"`
}

// -----------------------------------------
// Webhook (POST /api/payments/midtrans/webhook) — public, signature-checked
// -----------------------------------------
func (h *InvoiceController) Webhook(c *fiber.Ctx) error {
	var notif midtransNotification
	if err := c.BodyParser(&notif); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid json")
	}
	if !service.VerifyWebhookSignature(notif.OrderID, notif.StatusCode, notif.GrossAmount, notif.SignatureKey) {
		return helper.JsonError(c, fiber.StatusUnauthorized, "invalid signature")
	}

	switch notif.TransactionStatus {
	case "settlement", "capture":
		if notif.TransactionStatus == "capture" && notif.FraudStatus == "challenge" {
			return helper.JsonOK(c, "challenge acknowledged", nil)
		}
		paidAt := time.Now()
		if t, err := time.ParseInLocation("2006-01-02 15:04:05", notif.SettlementTime, time.Local); err == nil {
			paidAt = t
		}
		inv, err := service.SettleInvoice(h.DB, notif.OrderID, paidAt)
		if err != nil {
			if errors.Is(err, service.ErrInvoiceNotFound) {
				return helper.JsonError(c, fiber.StatusNotFound, "unknown order id")
			}
			return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
		}
		return helper.JsonOK(c, "settlement recorded", dto.ToInvoiceResponse(inv))
	default:
		// pending / deny / cancel / expire: nothing to change, the overdue
		// sweep and manual cancellation handle the rest
		return helper.JsonOK(c, "notification acknowledged", nil)
	}
}

// -----------------------------------------
// Update (PUT /api/m/invoices/:id)
// Edits amount/description/due date while the invoice is still open.
// Settled and canceled invoices are immutable.
// -----------------------------------------
func (h *InvoiceController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid id")
	}

	var in dto.InvoiceUpdateRequest
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid json")
	}
	if err := helper.Validate.Struct(in); err != nil {
		return helper.ValidationError(c, err)
	}

	var m model.Invoice
	if err := h.DB.First(&m, "invoice_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "invoice not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	if m.InvoiceStatus == model.InvoiceStatusPaid || m.InvoiceStatus == model.InvoiceStatusCanceled {
		return helper.JsonError(c, fiber.StatusConflict, "closed invoices cannot be edited")
	}

	dto.ApplyInvoiceUpdate(&m, in)
	if err := h.DB.Save(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonUpdated(c, "invoice updated", dto.ToInvoiceResponse(&m))
}

// -----------------------------------------
// UpdateStatus (PUT /api/m/invoices/:code/status)
// Manual override (cash payment, cancellation), keyed by the display code
// managers actually have in hand. Transitions go through the same table as
// the automatic paths.
// -----------------------------------------
func (h *InvoiceController) UpdateStatus(c *fiber.Ctx) error {
	code := c.Params("code")
	if code == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid invoice code")
	}

	var in dto.InvoiceStatusUpdateRequest
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid json")
	}
	if err := helper.Validate.Struct(in); err != nil {
		return helper.ValidationError(c, err)
	}
	target := model.InvoiceStatus(in.Status)
	if !target.Valid() {
		return helper.JsonError(c, fiber.StatusBadRequest, "unknown status value")
	}

	var m model.Invoice
	if err := h.DB.First(&m, "invoice_code = ?", code).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "invoice not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	if !model.AllowedStatusTransition(m.InvoiceStatus, target) {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity,
			"cannot change status from "+string(m.InvoiceStatus)+" to "+string(target))
	}

	m.InvoiceStatus = target
	if target == model.InvoiceStatusPaid && m.InvoicePaidAt == nil {
		now := time.Now()
		m.InvoicePaidAt = &now
	}
	if err := h.DB.Save(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonUpdated(c, "invoice status updated", dto.ToInvoiceResponse(&m))
}

// -----------------------------------------
// Delete (DELETE /api/m/invoices/:id) — unpaid invoices only
// -----------------------------------------
func (h *InvoiceController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid id")
	}

	var m model.Invoice
	if err := h.DB.First(&m, "invoice_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "invoice not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	if m.InvoiceStatus == model.InvoiceStatusPaid {
		return helper.JsonError(c, fiber.StatusConflict, "paid invoices cannot be deleted")
	}
	if err := h.DB.Delete(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonDeleted(c, "invoice deleted", dto.ToInvoiceResponse(&m))
}
