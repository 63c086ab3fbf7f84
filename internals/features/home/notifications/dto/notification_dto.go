package dto

import (
	"time"

	"github.com/google/uuid"

	"ktx_backend/internals/features/home/notifications/model"
)

// ================== REQUEST ==================

// NotificationCreateRequest arrives as multipart form fields; target_ids
// accepts a JSON array, a CSV string or repeated values — the controller
// normalizes the shape before it gets here.
type NotificationCreateRequest struct {
	Title       string      `json:"title" validate:"required,max=255"`
	Content     string      `json:"content" validate:"required"`
	TargetScope string      `json:"target_scope" validate:"required,oneof=ALL BUILDING ROOM INDIVIDUAL"`
	TargetIDs   []uuid.UUID `json:"target_ids,omitempty"`
	Type        string      `json:"type,omitempty" validate:"omitempty,max=30"`
	Tags        []string    `json:"tags,omitempty"`
}

// ================== RESPONSE ==================

type NotificationResponse struct {
	NotificationID uuid.UUID `json:"notification_id"`
	Title          string    `json:"title"`
	Content        string    `json:"content"`
	AttachmentPath string    `json:"attachment_path,omitempty"`
	SenderRole     string    `json:"sender_role"`
	TargetScope    string    `json:"target_scope"`
	Type           string    `json:"type"`
	Tags           []string  `json:"tags"`
	CreatedAt      time.Time `json:"created_at"`
}

// FeedItem is a notification as one student sees it: the notification plus
// that student's read state.
type FeedItem struct {
	NotificationResponse
	IsRead bool       `json:"is_read"`
	ReadAt *time.Time `json:"read_at,omitempty"`
}

// ================ CONVERSION =================

func ToNotificationResponse(m *model.Notification) NotificationResponse {
	return NotificationResponse{
		NotificationID: m.NotificationID,
		Title:          m.NotificationTitle,
		Content:        m.NotificationContent,
		AttachmentPath: m.NotificationAttachmentPath,
		SenderRole:     m.NotificationSenderRole,
		TargetScope:    string(m.NotificationTargetScope),
		Type:           m.NotificationType,
		Tags:           m.NotificationTags,
		CreatedAt:      m.NotificationCreatedAt,
	}
}

func ToNotificationResponses(list []model.Notification) []NotificationResponse {
	out := make([]NotificationResponse, 0, len(list))
	for i := range list {
		out = append(out, ToNotificationResponse(&list[i]))
	}
	return out
}
