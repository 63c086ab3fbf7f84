package dto

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"ktx_backend/internals/features/home/support_requests/model"
)

// ================== REQUEST ==================

type SupportRequestCreateRequest struct {
	Category    string         `json:"category" validate:"required,oneof=ELECTRICITY WATER FURNITURE INTERNET OTHER"`
	Title       string         `json:"title" validate:"required,max=255"`
	Description string         `json:"description" validate:"required"`
	RoomID      *uuid.UUID     `json:"room_id,omitempty"`
	DeviceMeta  datatypes.JSON `json:"device_meta,omitempty"`
}

type SupportRequestHandleRequest struct {
	Status string `json:"status" validate:"required,oneof=OPEN IN_PROGRESS RESOLVED REJECTED"`
	Reply  string `json:"reply,omitempty"`
}

// ================== RESPONSE ==================

type SupportRequestResponse struct {
	SupportRequestID uuid.UUID  `json:"support_request_id"`
	StudentID        uuid.UUID  `json:"student_id"`
	RoomID           *uuid.UUID `json:"room_id,omitempty"`
	Category         string     `json:"category"`
	Title            string     `json:"title"`
	Description      string     `json:"description"`
	Status           string     `json:"status"`
	Reply            string     `json:"reply,omitempty"`
	HandledByManager *uuid.UUID `json:"handled_by_manager,omitempty"`
	ResolvedAt       *time.Time `json:"resolved_at,omitempty"`
	CreatedAt        time.Time  `json:"created_at"`
}

// ================ CONVERSION =================

func ToSupportRequestResponse(m *model.SupportRequest) SupportRequestResponse {
	return SupportRequestResponse{
		SupportRequestID: m.SupportRequestID,
		StudentID:        m.SupportRequestStudentID,
		RoomID:           m.SupportRequestRoomID,
		Category:         m.SupportRequestCategory,
		Title:            m.SupportRequestTitle,
		Description:      m.SupportRequestDescription,
		Status:           string(m.SupportRequestStatus),
		Reply:            m.SupportRequestReply,
		HandledByManager: m.SupportRequestHandledByManager,
		ResolvedAt:       m.SupportRequestResolvedAt,
		CreatedAt:        m.SupportRequestCreatedAt,
	}
}

func ToSupportRequestResponses(list []model.SupportRequest) []SupportRequestResponse {
	out := make([]SupportRequestResponse, 0, len(list))
	for i := range list {
		out = append(out, ToSupportRequestResponse(&list[i]))
	}
	return out
}
