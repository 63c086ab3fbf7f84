// file: internals/features/housing/registrations/service/intake_service.go
package service

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	roomModel "ktx_backend/internals/features/campus/rooms/model"
	semesterModel "ktx_backend/internals/features/campus/semesters/model"
	invoiceModel "ktx_backend/internals/features/housing/invoices/model"
	"ktx_backend/internals/features/housing/registrations/model"
	helper "ktx_backend/internals/helpers"
)

// Domain errors; the controller maps these to HTTP statuses.
var (
	ErrNoActiveSemester  = errors.New("no active semester")
	ErrWindowClosed      = errors.New("registration window is closed")
	ErrAlreadyRegistered = errors.New("student already has a live registration this semester")
	ErrRoomRequired      = errors.New("desired room is required")
	ErrRoomNotFound      = errors.New("desired room not found")
)

// InvoiceDueAfter is how long a fresh room-fee invoice stays payable.
const InvoiceDueAfter = 24 * time.Hour

type IntakeInput struct {
	StudentID           uuid.UUID
	Type                model.RegistrationType
	DesiredRoomID       *uuid.UUID
	DesiredBuildingID   *uuid.UUID
	PriorityCategory    string
	PriorityDescription string
	EvidencePath        string
}

type IntakeResult struct {
	Registration *model.Registration
	Invoice      *invoiceModel.Invoice // nil for PRIORITY intake
}

type IntakeService struct {
	DB *gorm.DB
}

// NormalizePriorityInput strips the fields a priority registration must not
// carry: the room is assigned by a manager later, never requested up front.
func NormalizePriorityInput(in *IntakeInput) {
	if in.Type != model.RegistrationTypePriority {
		return
	}
	in.DesiredRoomID = nil
	if in.PriorityCategory == "" {
		in.PriorityCategory = "NONE"
	}
}

// BuildRoomFeeInvoice assembles the UNPAID room-fee invoice that accompanies
// a normal or renewal registration. Amount is the room's per-semester price;
// the due date is a fixed window from now.
func BuildRoomFeeInvoice(reg *model.Registration, room *roomModel.Room, now time.Time) invoiceModel.Invoice {
	return invoiceModel.Invoice{
		InvoiceCode:        helper.GenerateInvoiceCode("ROOM", now),
		InvoiceType:        invoiceModel.InvoiceTypeRoomFee,
		InvoiceSemesterID:  reg.RegistrationSemesterID,
		InvoiceRoomID:      room.RoomID,
		InvoiceStudentID:   &reg.RegistrationStudentID,
		InvoiceAmount:      room.RoomPricePerSemester,
		InvoiceDescription: "Room fee " + room.RoomNumber,
		InvoiceStatus:      invoiceModel.InvoiceStatusUnpaid,
		InvoiceDueDate:     now.Add(InvoiceDueAfter),
	}
}

// windowOpen picks the window matching the registration type.
func windowOpen(sem *semesterModel.Semester, t model.RegistrationType, at time.Time) bool {
	if t == model.RegistrationTypeRenewal {
		return sem.RenewalWindowOpen(at)
	}
	return sem.RegistrationWindowOpen(at)
}

// Register runs the whole intake inside one transaction: window check,
// duplicate guard under FOR UPDATE, registration insert, and (for room-fee
// types) invoice insert plus back-link. The partial unique index on
// (student, semester) backs up the duplicate guard against races.
func (s *IntakeService) Register(in IntakeInput) (*IntakeResult, error) {
	if !in.Type.Valid() {
		return nil, errors.New("invalid registration type")
	}
	NormalizePriorityInput(&in)

	now := time.Now()
	var res IntakeResult

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var sem semesterModel.Semester
		if err := tx.Where("semester_is_active = ?", true).Limit(1).First(&sem).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNoActiveSemester
			}
			return err
		}
		if !windowOpen(&sem, in.Type, now) {
			return ErrWindowClosed
		}

		var existing model.Registration
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("registration_student_id = ? AND registration_semester_id = ? AND registration_status <> ?",
				in.StudentID, sem.SemesterID, model.RegistrationStatusRejected).
			Limit(1).First(&existing).Error
		if err == nil {
			return ErrAlreadyRegistered
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		reg := model.Registration{
			RegistrationStudentID:           in.StudentID,
			RegistrationSemesterID:          sem.SemesterID,
			RegistrationType:                in.Type,
			RegistrationDesiredRoomID:       in.DesiredRoomID,
			RegistrationDesiredBuildingID:   in.DesiredBuildingID,
			RegistrationPriorityCategory:    in.PriorityCategory,
			RegistrationPriorityDescription: in.PriorityDescription,
			RegistrationEvidencePath:        in.EvidencePath,
			RegistrationStatus:              model.RegistrationStatusPending,
		}
		if reg.RegistrationPriorityCategory == "" {
			reg.RegistrationPriorityCategory = "NONE"
		}

		if !in.Type.NeedsInvoice() {
			if err := tx.Create(&reg).Error; err != nil {
				return err
			}
			res.Registration = &reg
			return nil
		}

		// NORMAL / RENEWAL: a concrete room choice is mandatory
		if in.DesiredRoomID == nil {
			return ErrRoomRequired
		}
		var room roomModel.Room
		if err := tx.First(&room, "room_id = ?", *in.DesiredRoomID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrRoomNotFound
			}
			return err
		}

		if err := tx.Create(&reg).Error; err != nil {
			return err
		}

		inv := BuildRoomFeeInvoice(&reg, &room, now)
		if err := tx.Create(&inv).Error; err != nil {
			return err
		}
		if err := tx.Model(&reg).Update("registration_invoice_id", inv.InvoiceID).Error; err != nil {
			return err
		}
		reg.RegistrationInvoiceID = &inv.InvoiceID

		res.Registration = &reg
		res.Invoice = &inv
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &res, nil
}
