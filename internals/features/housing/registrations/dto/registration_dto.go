package dto

import (
	"time"

	"github.com/google/uuid"

	"ktx_backend/internals/features/housing/registrations/model"
)

// ================== REQUEST ==================

// RegistrationCreateRequest arrives as multipart form fields (the evidence
// file rides in the same request); the controller maps form values here.
type RegistrationCreateRequest struct {
	RegistrationType    string     `json:"registration_type" validate:"required,oneof=NORMAL PRIORITY RENEWAL"`
	DesiredRoomID       *uuid.UUID `json:"desired_room_id,omitempty"`
	DesiredBuildingID   *uuid.UUID `json:"desired_building_id,omitempty"`
	PriorityCategory    string     `json:"priority_category,omitempty" validate:"omitempty,max=30"`
	PriorityDescription string     `json:"priority_description,omitempty"`
}

// StatusUpdateRequest is the manager-facing status change. AWAITING_PAYMENT
// is deliberately absent from the allow-list: it is an internal payment-flow
// status, not one a manager sets by hand.
type StatusUpdateRequest struct {
	Status    string `json:"status" validate:"required,oneof=APPROVED REJECTED PENDING RETURN COMPLETED"`
	AdminNote string `json:"admin_note,omitempty"`
}

type AssignRoomRequest struct {
	RoomID uuid.UUID `json:"room_id" validate:"required"`
}

// ================== RESPONSE ==================

type RegistrationResponse struct {
	RegistrationID      uuid.UUID  `json:"registration_id"`
	StudentID           uuid.UUID  `json:"student_id"`
	SemesterID          uuid.UUID  `json:"semester_id"`
	RegistrationType    string     `json:"registration_type"`
	DesiredRoomID       *uuid.UUID `json:"desired_room_id,omitempty"`
	DesiredBuildingID   *uuid.UUID `json:"desired_building_id,omitempty"`
	PriorityCategory    string     `json:"priority_category"`
	PriorityDescription string     `json:"priority_description,omitempty"`
	EvidencePath        string     `json:"evidence_path,omitempty"`
	Status              string     `json:"status"`
	AdminNote           string     `json:"admin_note,omitempty"`
	InvoiceID           *uuid.UUID `json:"invoice_id,omitempty"`
	CreatedAt           time.Time  `json:"created_at"`
}

// IntakeResponse is the creation reply: invoice fields are present only for
// registrations that got a room-fee invoice.
type IntakeResponse struct {
	RegistrationID uuid.UUID  `json:"registration_id"`
	InvoiceID      *uuid.UUID `json:"invoice_id,omitempty"`
	Amount         *int64     `json:"amount,omitempty"`
	DueDate        *time.Time `json:"due_date,omitempty"`
	Message        string     `json:"message"`
}

// ================ CONVERSION =================

func ToRegistrationResponse(m *model.Registration) RegistrationResponse {
	return RegistrationResponse{
		RegistrationID:      m.RegistrationID,
		StudentID:           m.RegistrationStudentID,
		SemesterID:          m.RegistrationSemesterID,
		RegistrationType:    string(m.RegistrationType),
		DesiredRoomID:       m.RegistrationDesiredRoomID,
		DesiredBuildingID:   m.RegistrationDesiredBuildingID,
		PriorityCategory:    m.RegistrationPriorityCategory,
		PriorityDescription: m.RegistrationPriorityDescription,
		EvidencePath:        m.RegistrationEvidencePath,
		Status:              string(m.RegistrationStatus),
		AdminNote:           m.RegistrationAdminNote,
		InvoiceID:           m.RegistrationInvoiceID,
		CreatedAt:           m.RegistrationCreatedAt,
	}
}

func ToRegistrationResponses(list []model.Registration) []RegistrationResponse {
	out := make([]RegistrationResponse, 0, len(list))
	for i := range list {
		out = append(out, ToRegistrationResponse(&list[i]))
	}
	return out
}
