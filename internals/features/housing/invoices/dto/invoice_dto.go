package dto

import (
	"time"

	"github.com/google/uuid"

	"ktx_backend/internals/features/housing/invoices/model"
)

// ================== REQUEST ==================

// InvoiceCreateRequest covers manager-issued invoices (utility fees and the
// occasional manual room fee). Student is optional: a room-wide utility
// invoice leaves it empty and every current occupant sees it.
type InvoiceCreateRequest struct {
	InvoiceType        string     `json:"invoice_type" validate:"required,oneof=ROOM_FEE UTILITY_FEE"`
	InvoiceSemesterID  uuid.UUID  `json:"invoice_semester_id" validate:"required"`
	InvoiceRoomID      uuid.UUID  `json:"invoice_room_id" validate:"required"`
	InvoiceStudentID   *uuid.UUID `json:"invoice_student_id,omitempty"`
	InvoiceAmount      int64      `json:"invoice_amount" validate:"required,min=0"`
	InvoiceDescription string     `json:"invoice_description,omitempty"`
	InvoiceDueDate     time.Time  `json:"invoice_due_date" validate:"required"`
}

// InvoiceUpdateRequest edits the billable fields of a still-open invoice.
// Status changes go through the status endpoint, never through here.
type InvoiceUpdateRequest struct {
	InvoiceAmount      *int64     `json:"invoice_amount,omitempty" validate:"omitempty,min=0"`
	InvoiceDescription *string    `json:"invoice_description,omitempty"`
	InvoiceDueDate     *time.Time `json:"invoice_due_date,omitempty"`
}

type InvoiceStatusUpdateRequest struct {
	Status string `json:"status" validate:"required,oneof=UNPAID PAID OVERDUE CANCELED"`
}

// ================== RESPONSE ==================

type InvoiceResponse struct {
	InvoiceID          uuid.UUID  `json:"invoice_id"`
	InvoiceCode        string     `json:"invoice_code"`
	InvoiceType        string     `json:"invoice_type"`
	InvoiceSemesterID  uuid.UUID  `json:"invoice_semester_id"`
	InvoiceRoomID      uuid.UUID  `json:"invoice_room_id"`
	InvoiceStudentID   *uuid.UUID `json:"invoice_student_id,omitempty"`
	InvoiceAmount      int64      `json:"invoice_amount"`
	InvoiceDescription string     `json:"invoice_description,omitempty"`
	InvoiceStatus      string     `json:"invoice_status"`
	InvoiceDueDate     time.Time  `json:"invoice_due_date"`
	InvoicePaidAt      *time.Time `json:"invoice_paid_at,omitempty"`
	InvoiceCreatedAt   time.Time  `json:"invoice_created_at"`
}

// SnapTokenResponse is returned by the pay endpoint; the frontend opens the
// midtrans snap popup with the token.
type SnapTokenResponse struct {
	InvoiceCode string `json:"invoice_code"`
	SnapToken   string `json:"snap_token"`
	RedirectURL string `json:"redirect_url"`
}

// ================ CONVERSION =================

func ApplyInvoiceUpdate(m *model.Invoice, r InvoiceUpdateRequest) {
	if r.InvoiceAmount != nil {
		m.InvoiceAmount = *r.InvoiceAmount
	}
	if r.InvoiceDescription != nil {
		m.InvoiceDescription = *r.InvoiceDescription
	}
	if r.InvoiceDueDate != nil {
		m.InvoiceDueDate = *r.InvoiceDueDate
	}
}

func ToInvoiceResponse(m *model.Invoice) InvoiceResponse {
	return InvoiceResponse{
		InvoiceID:          m.InvoiceID,
		InvoiceCode:        m.InvoiceCode,
		InvoiceType:        string(m.InvoiceType),
		InvoiceSemesterID:  m.InvoiceSemesterID,
		InvoiceRoomID:      m.InvoiceRoomID,
		InvoiceStudentID:   m.InvoiceStudentID,
		InvoiceAmount:      m.InvoiceAmount,
		InvoiceDescription: m.InvoiceDescription,
		InvoiceStatus:      string(m.InvoiceStatus),
		InvoiceDueDate:     m.InvoiceDueDate,
		InvoicePaidAt:      m.InvoicePaidAt,
		InvoiceCreatedAt:   m.InvoiceCreatedAt,
	}
}

func ToInvoiceResponses(list []model.Invoice) []InvoiceResponse {
	out := make([]InvoiceResponse, 0, len(list))
	for i := range list {
		out = append(out, ToInvoiceResponse(&list[i]))
	}
	return out
}
