package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Semester scopes registration eligibility. The activation endpoint keeps at
// most one row active; reads still use the is_active flag with LIMIT 1.
type Semester struct {
	SemesterID           uuid.UUID `gorm:"column:semester_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"semester_id"`
	SemesterName         string    `gorm:"column:semester_name;type:varchar(60);not null" json:"semester_name"`
	SemesterTerm         int       `gorm:"column:semester_term;not null;check:semester_term BETWEEN 1 AND 3" json:"semester_term"`
	SemesterAcademicYear string    `gorm:"column:semester_academic_year;type:varchar(9);not null;index" json:"semester_academic_year"` // e.g. 2025-2026

	SemesterStartDate time.Time `gorm:"column:semester_start_date;type:date;not null" json:"semester_start_date"`
	SemesterEndDate   time.Time `gorm:"column:semester_end_date;type:date;not null" json:"semester_end_date"`

	// registration window for new registrations
	SemesterRegistrationOpenAt  time.Time `gorm:"column:semester_registration_open_at;not null" json:"semester_registration_open_at"`
	SemesterRegistrationCloseAt time.Time `gorm:"column:semester_registration_close_at;not null" json:"semester_registration_close_at"`

	// renewal window for students already staying
	SemesterRenewalOpenAt  *time.Time `gorm:"column:semester_renewal_open_at" json:"semester_renewal_open_at,omitempty"`
	SemesterRenewalCloseAt *time.Time `gorm:"column:semester_renewal_close_at" json:"semester_renewal_close_at,omitempty"`

	SemesterIsActive bool `gorm:"column:semester_is_active;not null;default:false;index" json:"semester_is_active"`

	SemesterCreatedAt time.Time      `gorm:"column:semester_created_at;not null;default:now()" json:"semester_created_at"`
	SemesterUpdatedAt time.Time      `gorm:"column:semester_updated_at;not null;default:now()" json:"semester_updated_at"`
	SemesterDeletedAt gorm.DeletedAt `gorm:"column:semester_deleted_at;index" json:"-"`
}

func (Semester) TableName() string {
	return "semesters"
}

func (m *Semester) BeforeCreate(tx *gorm.DB) error {
	now := time.Now()
	if m.SemesterCreatedAt.IsZero() {
		m.SemesterCreatedAt = now
	}
	m.SemesterUpdatedAt = now
	return nil
}

func (m *Semester) BeforeUpdate(tx *gorm.DB) error {
	m.SemesterUpdatedAt = time.Now()
	return nil
}

// RegistrationWindowOpen reports whether new registrations are being
// accepted at the given instant.
func (m *Semester) RegistrationWindowOpen(at time.Time) bool {
	return !at.Before(m.SemesterRegistrationOpenAt) && at.Before(m.SemesterRegistrationCloseAt)
}

// RenewalWindowOpen reports whether renewals are accepted at the given
// instant; semesters without a renewal window never accept renewals.
func (m *Semester) RenewalWindowOpen(at time.Time) bool {
	if m.SemesterRenewalOpenAt == nil || m.SemesterRenewalCloseAt == nil {
		return false
	}
	return !at.Before(*m.SemesterRenewalOpenAt) && at.Before(*m.SemesterRenewalCloseAt)
}
