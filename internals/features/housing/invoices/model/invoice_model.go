package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// =========================================================
// ENUMS
// =========================================================

type InvoiceType string

const (
	InvoiceTypeRoomFee    InvoiceType = "ROOM_FEE"
	InvoiceTypeUtilityFee InvoiceType = "UTILITY_FEE"
)

func (t InvoiceType) Valid() bool {
	return t == InvoiceTypeRoomFee || t == InvoiceTypeUtilityFee
}

type InvoiceStatus string

const (
	InvoiceStatusUnpaid   InvoiceStatus = "UNPAID"
	InvoiceStatusPaid     InvoiceStatus = "PAID"
	InvoiceStatusOverdue  InvoiceStatus = "OVERDUE"
	InvoiceStatusCanceled InvoiceStatus = "CANCELED"
)

func (s InvoiceStatus) Valid() bool {
	_, ok := invoiceTransitions[s]
	return ok
}

var invoiceTransitions = map[InvoiceStatus][]InvoiceStatus{
	InvoiceStatusUnpaid:   {InvoiceStatusPaid, InvoiceStatusOverdue, InvoiceStatusCanceled},
	InvoiceStatusOverdue:  {InvoiceStatusPaid, InvoiceStatusCanceled},
	InvoiceStatusPaid:     {},
	InvoiceStatusCanceled: {},
}

func AllowedStatusTransition(from, to InvoiceStatus) bool {
	for _, next := range invoiceTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// =========================================================
// MODEL
// =========================================================

type Invoice struct {
	InvoiceID uuid.UUID `gorm:"column:invoice_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"invoice_id"`

	// Display identifier; also the midtrans order id for payment confirmation
	InvoiceCode string `gorm:"column:invoice_code;type:varchar(30);not null;uniqueIndex" json:"invoice_code"`

	InvoiceType InvoiceType `gorm:"column:invoice_type;type:varchar(15);not null;index" json:"invoice_type"`

	// FK → semesters, rooms; student nullable for room-wide utility invoices
	InvoiceSemesterID uuid.UUID  `gorm:"column:invoice_semester_id;type:uuid;not null;index" json:"invoice_semester_id"`
	InvoiceRoomID     uuid.UUID  `gorm:"column:invoice_room_id;type:uuid;not null;index" json:"invoice_room_id"`
	InvoiceStudentID  *uuid.UUID `gorm:"column:invoice_student_id;type:uuid;index" json:"invoice_student_id,omitempty"`

	InvoiceAmount      int64  `gorm:"column:invoice_amount;not null;check:invoice_amount>=0" json:"invoice_amount"`
	InvoiceDescription string `gorm:"column:invoice_description;type:text" json:"invoice_description"`

	InvoiceStatus  InvoiceStatus `gorm:"column:invoice_status;type:varchar(15);not null;default:'UNPAID';index" json:"invoice_status"`
	InvoiceDueDate time.Time     `gorm:"column:invoice_due_date;not null;index" json:"invoice_due_date"`

	InvoicePaidAt          *time.Time `gorm:"column:invoice_paid_at" json:"invoice_paid_at,omitempty"`
	InvoicePaidByStudentID *uuid.UUID `gorm:"column:invoice_paid_by_student_id;type:uuid" json:"invoice_paid_by_student_id,omitempty"`

	InvoiceCreatedByManagerID *uuid.UUID `gorm:"column:invoice_created_by_manager_id;type:uuid" json:"invoice_created_by_manager_id,omitempty"`

	InvoiceCreatedAt time.Time      `gorm:"column:invoice_created_at;not null;default:now();index" json:"invoice_created_at"`
	InvoiceUpdatedAt time.Time      `gorm:"column:invoice_updated_at;not null;default:now()" json:"invoice_updated_at"`
	InvoiceDeletedAt gorm.DeletedAt `gorm:"column:invoice_deleted_at;index" json:"-"`
}

func (Invoice) TableName() string {
	return "invoices"
}

func (m *Invoice) BeforeCreate(tx *gorm.DB) error {
	now := time.Now()
	if m.InvoiceCreatedAt.IsZero() {
		m.InvoiceCreatedAt = now
	}
	m.InvoiceUpdatedAt = now
	return nil
}

func (m *Invoice) BeforeUpdate(tx *gorm.DB) error {
	m.InvoiceUpdatedAt = time.Now()
	return nil
}
