package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type SupportRequestStatus string

const (
	SupportStatusOpen       SupportRequestStatus = "OPEN"
	SupportStatusInProgress SupportRequestStatus = "IN_PROGRESS"
	SupportStatusResolved   SupportRequestStatus = "RESOLVED"
	SupportStatusRejected   SupportRequestStatus = "REJECTED"
)

func (s SupportRequestStatus) Valid() bool {
	switch s {
	case SupportStatusOpen, SupportStatusInProgress, SupportStatusResolved, SupportStatusRejected:
		return true
	}
	return false
}

type SupportRequest struct {
	SupportRequestID        uuid.UUID `gorm:"column:support_request_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"support_request_id"`
	SupportRequestStudentID uuid.UUID `gorm:"column:support_request_student_id;type:uuid;not null;index" json:"support_request_student_id"`

	// FK → rooms(room_id); where the problem is, usually the student's room
	SupportRequestRoomID *uuid.UUID `gorm:"column:support_request_room_id;type:uuid;index" json:"support_request_room_id,omitempty"`

	SupportRequestCategory    string `gorm:"column:support_request_category;type:varchar(30);not null;default:'OTHER'" json:"support_request_category"` // ELECTRICITY|WATER|FURNITURE|INTERNET|OTHER
	SupportRequestTitle       string `gorm:"column:support_request_title;type:varchar(255);not null" json:"support_request_title"`
	SupportRequestDescription string `gorm:"column:support_request_description;type:text;not null" json:"support_request_description"`

	// client device/app info as submitted, kept verbatim for triage
	SupportRequestDeviceMeta datatypes.JSON `gorm:"column:support_request_device_meta;type:jsonb" json:"support_request_device_meta,omitempty"`

	SupportRequestStatus SupportRequestStatus `gorm:"column:support_request_status;type:varchar(15);not null;default:'OPEN';index" json:"support_request_status"`

	SupportRequestReply            string     `gorm:"column:support_request_reply;type:text" json:"support_request_reply"`
	SupportRequestHandledByManager *uuid.UUID `gorm:"column:support_request_handled_by_manager;type:uuid" json:"support_request_handled_by_manager,omitempty"`
	SupportRequestResolvedAt       *time.Time `gorm:"column:support_request_resolved_at" json:"support_request_resolved_at,omitempty"`

	SupportRequestCreatedAt time.Time      `gorm:"column:support_request_created_at;not null;default:now();index" json:"support_request_created_at"`
	SupportRequestUpdatedAt time.Time      `gorm:"column:support_request_updated_at;not null;default:now()" json:"support_request_updated_at"`
	SupportRequestDeletedAt gorm.DeletedAt `gorm:"column:support_request_deleted_at;index" json:"-"`
}

func (SupportRequest) TableName() string {
	return "support_requests"
}

func (m *SupportRequest) BeforeCreate(tx *gorm.DB) error {
	now := time.Now()
	if m.SupportRequestCreatedAt.IsZero() {
		m.SupportRequestCreatedAt = now
	}
	m.SupportRequestUpdatedAt = now
	return nil
}

func (m *SupportRequest) BeforeUpdate(tx *gorm.DB) error {
	m.SupportRequestUpdatedAt = time.Now()
	return nil
}
