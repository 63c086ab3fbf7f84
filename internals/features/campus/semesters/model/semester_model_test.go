package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRegistrationWindowOpen(t *testing.T) {
	open := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	close := time.Date(2026, 8, 15, 0, 0, 0, 0, time.UTC)
	sem := Semester{
		SemesterRegistrationOpenAt:  open,
		SemesterRegistrationCloseAt: close,
	}

	assert.False(t, sem.RegistrationWindowOpen(open.Add(-time.Minute)))
	assert.True(t, sem.RegistrationWindowOpen(open), "open boundary is inclusive")
	assert.True(t, sem.RegistrationWindowOpen(open.AddDate(0, 0, 7)))
	assert.False(t, sem.RegistrationWindowOpen(close), "close boundary is exclusive")
	assert.False(t, sem.RegistrationWindowOpen(close.Add(time.Hour)))
}

func TestRenewalWindowOpen(t *testing.T) {
	t.Run("no renewal window configured", func(t *testing.T) {
		sem := Semester{}
		assert.False(t, sem.RenewalWindowOpen(time.Now()))
	})

	t.Run("within window", func(t *testing.T) {
		open := time.Date(2026, 7, 20, 0, 0, 0, 0, time.UTC)
		close := time.Date(2026, 7, 31, 0, 0, 0, 0, time.UTC)
		sem := Semester{
			SemesterRenewalOpenAt:  &open,
			SemesterRenewalCloseAt: &close,
		}
		assert.True(t, sem.RenewalWindowOpen(open.AddDate(0, 0, 3)))
		assert.False(t, sem.RenewalWindowOpen(close))
	})
}
