package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// =========================================================
// ENUMS — student lifecycle
// =========================================================

type StudentStatus string

const (
	StudentStatusStudying  StudentStatus = "STUDYING"
	StudentStatusSuspended StudentStatus = "SUSPENDED"
	StudentStatusGraduated StudentStatus = "GRADUATED"
)

type StayStatus string

const (
	StayStatusStaying    StayStatus = "STAYING"
	StayStatusNotStaying StayStatus = "NOT_STAYING"
	StayStatusCheckedOut StayStatus = "CHECKED_OUT"
)

// =========================================================
// MODEL
// =========================================================

type Student struct {
	StudentID   uuid.UUID `gorm:"column:student_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"student_id"`
	StudentCode string    `gorm:"column:student_code;type:varchar(20);not null;uniqueIndex" json:"student_code"` // external id (mssv)

	StudentFullName    string     `gorm:"column:student_full_name;type:varchar(120);not null;index" json:"student_full_name"`
	StudentEmail       string     `gorm:"column:student_email;type:varchar(120)" json:"student_email"`
	StudentPhone       string     `gorm:"column:student_phone;type:varchar(20)" json:"student_phone"`
	StudentDateOfBirth *time.Time `gorm:"column:student_date_of_birth;type:date" json:"student_date_of_birth,omitempty"`
	StudentGender      string     `gorm:"column:student_gender;type:varchar(10)" json:"student_gender"`
	StudentHomeAddress string     `gorm:"column:student_home_address;type:text" json:"student_home_address"`
	StudentFaculty     string     `gorm:"column:student_faculty;type:varchar(120)" json:"student_faculty"`
	StudentCohort      string     `gorm:"column:student_cohort;type:varchar(20)" json:"student_cohort"`

	// FK → rooms(room_id); set by check-in, cleared by check-out
	StudentCurrentRoomID *uuid.UUID `gorm:"column:student_current_room_id;type:uuid;index" json:"student_current_room_id,omitempty"`

	StudentStatus     StudentStatus `gorm:"column:student_status;type:varchar(20);not null;default:'STUDYING'" json:"student_status"`
	StudentStayStatus StayStatus    `gorm:"column:student_stay_status;type:varchar(20);not null;default:'NOT_STAYING'" json:"student_stay_status"`

	StudentCreatedAt time.Time      `gorm:"column:student_created_at;not null;default:now()" json:"student_created_at"`
	StudentUpdatedAt time.Time      `gorm:"column:student_updated_at;not null;default:now()" json:"student_updated_at"`
	StudentDeletedAt gorm.DeletedAt `gorm:"column:student_deleted_at;index" json:"-"`
}

func (Student) TableName() string {
	return "students"
}

func (m *Student) BeforeCreate(tx *gorm.DB) error {
	now := time.Now()
	if m.StudentCreatedAt.IsZero() {
		m.StudentCreatedAt = now
	}
	m.StudentUpdatedAt = now
	return nil
}

func (m *Student) BeforeUpdate(tx *gorm.DB) error {
	m.StudentUpdatedAt = time.Now()
	return nil
}
