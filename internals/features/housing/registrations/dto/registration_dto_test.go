package dto

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	helper "ktx_backend/internals/helpers"
)

func TestRegistrationCreateRequestValidation(t *testing.T) {
	roomID := uuid.New()

	t.Run("valid normal request", func(t *testing.T) {
		in := RegistrationCreateRequest{
			RegistrationType: "NORMAL",
			DesiredRoomID:    &roomID,
		}
		assert.NoError(t, helper.Validate.Struct(in))
	})

	t.Run("valid priority request", func(t *testing.T) {
		in := RegistrationCreateRequest{
			RegistrationType: "PRIORITY",
			PriorityCategory: "DISABILITY",
		}
		assert.NoError(t, helper.Validate.Struct(in))
	})

	t.Run("type is mandatory", func(t *testing.T) {
		assert.Error(t, helper.Validate.Struct(RegistrationCreateRequest{}))
	})

	t.Run("type outside the enum", func(t *testing.T) {
		in := RegistrationCreateRequest{RegistrationType: "WALK_IN"}
		assert.Error(t, helper.Validate.Struct(in))
	})
}

func TestStatusUpdateRequestValidation(t *testing.T) {
	for _, s := range []string{"APPROVED", "REJECTED", "PENDING", "RETURN", "COMPLETED"} {
		assert.NoError(t, helper.Validate.Struct(StatusUpdateRequest{Status: s}), "status %s", s)
	}

	// internal payment-flow status, managers must not set it by hand
	assert.Error(t, helper.Validate.Struct(StatusUpdateRequest{Status: "AWAITING_PAYMENT"}))

	assert.Error(t, helper.Validate.Struct(StatusUpdateRequest{Status: "EXPIRED"}))
	assert.Error(t, helper.Validate.Struct(StatusUpdateRequest{}))
}
