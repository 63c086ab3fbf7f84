package helper

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseUUIDList(t *testing.T) {
	a := uuid.New()
	b := uuid.New()

	t.Run("nil", func(t *testing.T) {
		got, err := ParseUUIDList(nil)
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("uuid slice passes through", func(t *testing.T) {
		got, err := ParseUUIDList([]uuid.UUID{a, b})
		require.NoError(t, err)
		assert.Equal(t, []uuid.UUID{a, b}, got)
	})

	t.Run("string slice", func(t *testing.T) {
		got, err := ParseUUIDList([]string{a.String(), b.String()})
		require.NoError(t, err)
		assert.Equal(t, []uuid.UUID{a, b}, got)
	})

	t.Run("interface slice from json decoding", func(t *testing.T) {
		got, err := ParseUUIDList([]interface{}{a.String(), b.String()})
		require.NoError(t, err)
		assert.Equal(t, []uuid.UUID{a, b}, got)
	})

	t.Run("json array string", func(t *testing.T) {
		got, err := ParseUUIDList(`["` + a.String() + `","` + b.String() + `"]`)
		require.NoError(t, err)
		assert.Equal(t, []uuid.UUID{a, b}, got)
	})

	t.Run("csv string with spaces", func(t *testing.T) {
		got, err := ParseUUIDList(a.String() + " , " + b.String())
		require.NoError(t, err)
		assert.Equal(t, []uuid.UUID{a, b}, got)
	})

	t.Run("single scalar string", func(t *testing.T) {
		got, err := ParseUUIDList(a.String())
		require.NoError(t, err)
		assert.Equal(t, []uuid.UUID{a}, got)
	})

	t.Run("empty string", func(t *testing.T) {
		got, err := ParseUUIDList("")
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("invalid id inside list", func(t *testing.T) {
		_, err := ParseUUIDList(a.String() + ",not-a-uuid")
		assert.Error(t, err)
	})

	t.Run("broken json array", func(t *testing.T) {
		_, err := ParseUUIDList(`["` + a.String())
		assert.Error(t, err)
	})

	t.Run("unsupported shape", func(t *testing.T) {
		_, err := ParseUUIDList(42)
		assert.Error(t, err)
	})
}
