package controller

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	helper "ktx_backend/internals/helpers"
)

func TestTargetListShape(t *testing.T) {
	a := uuid.New()
	b := uuid.New()

	t.Run("repeated form fields come through as every value", func(t *testing.T) {
		got, err := helper.ParseUUIDList(targetListShape([]string{a.String(), b.String()}, a.String()))
		require.NoError(t, err)
		assert.Equal(t, []uuid.UUID{a, b}, got)
	})

	t.Run("single field keeps the string shape for csv payloads", func(t *testing.T) {
		csv := a.String() + "," + b.String()
		got, err := helper.ParseUUIDList(targetListShape([]string{csv}, csv))
		require.NoError(t, err)
		assert.Equal(t, []uuid.UUID{a, b}, got)
	})

	t.Run("single field keeps the string shape for json payloads", func(t *testing.T) {
		payload := `["` + a.String() + `"]`
		got, err := helper.ParseUUIDList(targetListShape([]string{payload}, payload))
		require.NoError(t, err)
		assert.Equal(t, []uuid.UUID{a}, got)
	})

	t.Run("no field at all", func(t *testing.T) {
		got, err := helper.ParseUUIDList(targetListShape(nil, ""))
		require.NoError(t, err)
		assert.Empty(t, got)
	})
}

func TestSplitTags(t *testing.T) {
	assert.Nil(t, splitTags(""))
	assert.Equal(t, []string{"urgent", "water"}, splitTags("urgent, water"))
	assert.Equal(t, []string{"solo"}, splitTags("solo"))
	assert.Equal(t, []string{"a"}, splitTags(",a,,"))
}
