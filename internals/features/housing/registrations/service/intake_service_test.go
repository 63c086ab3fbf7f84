package service

import (
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	roomModel "ktx_backend/internals/features/campus/rooms/model"
	invoiceModel "ktx_backend/internals/features/housing/invoices/model"
	"ktx_backend/internals/features/housing/registrations/model"
)

func TestNormalizePriorityInput(t *testing.T) {
	roomID := uuid.New()

	t.Run("priority drops the room and defaults the category", func(t *testing.T) {
		in := IntakeInput{
			Type:          model.RegistrationTypePriority,
			DesiredRoomID: &roomID,
		}
		NormalizePriorityInput(&in)
		assert.Nil(t, in.DesiredRoomID)
		assert.Equal(t, "NONE", in.PriorityCategory)
	})

	t.Run("priority keeps an explicit category", func(t *testing.T) {
		in := IntakeInput{
			Type:             model.RegistrationTypePriority,
			PriorityCategory: "DISABILITY",
		}
		NormalizePriorityInput(&in)
		assert.Equal(t, "DISABILITY", in.PriorityCategory)
	})

	t.Run("normal input is untouched", func(t *testing.T) {
		in := IntakeInput{
			Type:          model.RegistrationTypeNormal,
			DesiredRoomID: &roomID,
		}
		NormalizePriorityInput(&in)
		require.NotNil(t, in.DesiredRoomID)
		assert.Equal(t, roomID, *in.DesiredRoomID)
		assert.Empty(t, in.PriorityCategory)
	})
}

func TestBuildRoomFeeInvoice(t *testing.T) {
	now := time.Date(2026, 3, 2, 10, 30, 0, 0, time.UTC)
	studentID := uuid.New()
	semesterID := uuid.New()
	room := roomModel.Room{
		RoomID:               uuid.New(),
		RoomNumber:           "A-101",
		RoomPricePerSemester: 4_500_000,
	}
	reg := model.Registration{
		RegistrationStudentID:  studentID,
		RegistrationSemesterID: semesterID,
	}

	inv := BuildRoomFeeInvoice(&reg, &room, now)

	assert.Equal(t, invoiceModel.InvoiceTypeRoomFee, inv.InvoiceType)
	assert.Equal(t, invoiceModel.InvoiceStatusUnpaid, inv.InvoiceStatus)
	assert.Equal(t, room.RoomPricePerSemester, inv.InvoiceAmount)
	assert.Equal(t, semesterID, inv.InvoiceSemesterID)
	assert.Equal(t, room.RoomID, inv.InvoiceRoomID)
	require.NotNil(t, inv.InvoiceStudentID)
	assert.Equal(t, studentID, *inv.InvoiceStudentID)

	// payable for exactly 24 hours from intake
	assert.Equal(t, now.Add(24*time.Hour), inv.InvoiceDueDate)

	assert.True(t, strings.HasPrefix(inv.InvoiceCode, "ROOM-260302-"),
		"unexpected code %q", inv.InvoiceCode)
	assert.Contains(t, inv.InvoiceDescription, room.RoomNumber)
}
