package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAllowedTransition(t *testing.T) {
	cases := []struct {
		name string
		from RegistrationStatus
		to   RegistrationStatus
		want bool
	}{
		{"pending to awaiting payment", RegistrationStatusPending, RegistrationStatusAwaitingPayment, true},
		{"pending to approved", RegistrationStatusPending, RegistrationStatusApproved, true},
		{"pending to rejected", RegistrationStatusPending, RegistrationStatusRejected, true},
		{"pending to completed skips approval", RegistrationStatusPending, RegistrationStatusCompleted, false},
		{"awaiting payment back to pending", RegistrationStatusAwaitingPayment, RegistrationStatusPending, true},
		{"approved to completed", RegistrationStatusApproved, RegistrationStatusCompleted, true},
		{"approved to return", RegistrationStatusApproved, RegistrationStatusReturn, true},
		{"return resubmits to pending", RegistrationStatusReturn, RegistrationStatusPending, true},
		{"completed is terminal", RegistrationStatusCompleted, RegistrationStatusPending, false},
		{"rejected is terminal", RegistrationStatusRejected, RegistrationStatusPending, false},
		{"no self transition", RegistrationStatusPending, RegistrationStatusPending, false},
		{"unknown source", RegistrationStatus("BOGUS"), RegistrationStatusPending, false},
		{"unknown target", RegistrationStatusPending, RegistrationStatus("BOGUS"), false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, AllowedTransition(tc.from, tc.to))
		})
	}
}

func TestStatusTerminal(t *testing.T) {
	assert.True(t, RegistrationStatusRejected.Terminal())
	assert.True(t, RegistrationStatusCompleted.Terminal())
	assert.False(t, RegistrationStatusPending.Terminal())
	assert.False(t, RegistrationStatusApproved.Terminal())
	assert.False(t, RegistrationStatus("BOGUS").Terminal())
}

func TestBlocksNewRegistration(t *testing.T) {
	// only a rejected registration frees the student to register again
	assert.False(t, RegistrationStatusRejected.BlocksNewRegistration())

	for _, s := range []RegistrationStatus{
		RegistrationStatusPending,
		RegistrationStatusAwaitingPayment,
		RegistrationStatusApproved,
		RegistrationStatusReturn,
		RegistrationStatusCompleted,
	} {
		assert.True(t, s.BlocksNewRegistration(), "status %s should block", s)
	}
}

func TestRegistrationTypeNeedsInvoice(t *testing.T) {
	assert.True(t, RegistrationTypeNormal.NeedsInvoice())
	assert.True(t, RegistrationTypeRenewal.NeedsInvoice())
	assert.False(t, RegistrationTypePriority.NeedsInvoice())
}
