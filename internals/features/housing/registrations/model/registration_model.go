package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// =========================================================
// ENUM — registration type
// =========================================================

type RegistrationType string

const (
	RegistrationTypeNormal   RegistrationType = "NORMAL"
	RegistrationTypePriority RegistrationType = "PRIORITY"
	RegistrationTypeRenewal  RegistrationType = "RENEWAL"
)

func (t RegistrationType) Valid() bool {
	switch t {
	case RegistrationTypeNormal, RegistrationTypePriority, RegistrationTypeRenewal:
		return true
	}
	return false
}

// NeedsInvoice reports whether intake creates a companion room-fee invoice.
// Priority registrations are reviewed manually first and get no invoice.
func (t RegistrationType) NeedsInvoice() bool {
	return t != RegistrationTypePriority
}

// =========================================================
// MODEL
// =========================================================

type Registration struct {
	RegistrationID uuid.UUID `gorm:"column:registration_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"registration_id"`

	// FK → students(student_id), semesters(semester_id). Together with the
	// partial unique index (see databases.migrate) at most one live
	// registration per student per semester.
	RegistrationStudentID  uuid.UUID `gorm:"column:registration_student_id;type:uuid;not null;index" json:"registration_student_id"`
	RegistrationSemesterID uuid.UUID `gorm:"column:registration_semester_id;type:uuid;not null;index" json:"registration_semester_id"`

	RegistrationType RegistrationType `gorm:"column:registration_type;type:varchar(10);not null;index" json:"registration_type"`

	// null for PRIORITY at creation; set by manager assignment after approval
	RegistrationDesiredRoomID     *uuid.UUID `gorm:"column:registration_desired_room_id;type:uuid;index" json:"registration_desired_room_id,omitempty"`
	RegistrationDesiredBuildingID *uuid.UUID `gorm:"column:registration_desired_building_id;type:uuid" json:"registration_desired_building_id,omitempty"`

	RegistrationPriorityCategory    string `gorm:"column:registration_priority_category;type:varchar(30);not null;default:'NONE'" json:"registration_priority_category"`
	RegistrationPriorityDescription string `gorm:"column:registration_priority_description;type:text" json:"registration_priority_description"`
	RegistrationEvidencePath        string `gorm:"column:registration_evidence_path;type:text" json:"registration_evidence_path"`

	RegistrationStatus    RegistrationStatus `gorm:"column:registration_status;type:varchar(20);not null;default:'PENDING';index" json:"registration_status"`
	RegistrationAdminNote string             `gorm:"column:registration_admin_note;type:text" json:"registration_admin_note"`

	// FK → invoices(invoice_id); linked after invoice creation in the same tx
	RegistrationInvoiceID *uuid.UUID `gorm:"column:registration_invoice_id;type:uuid;index" json:"registration_invoice_id,omitempty"`

	RegistrationCreatedAt time.Time      `gorm:"column:registration_created_at;not null;default:now();index" json:"registration_created_at"`
	RegistrationUpdatedAt time.Time      `gorm:"column:registration_updated_at;not null;default:now()" json:"registration_updated_at"`
	RegistrationDeletedAt gorm.DeletedAt `gorm:"column:registration_deleted_at;index" json:"-"`
}

func (Registration) TableName() string {
	return "registrations"
}

func (m *Registration) BeforeCreate(tx *gorm.DB) error {
	now := time.Now()
	if m.RegistrationCreatedAt.IsZero() {
		m.RegistrationCreatedAt = now
	}
	m.RegistrationUpdatedAt = now
	return nil
}

func (m *Registration) BeforeUpdate(tx *gorm.DB) error {
	m.RegistrationUpdatedAt = time.Now()
	return nil
}
