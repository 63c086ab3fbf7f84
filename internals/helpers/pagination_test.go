package helper

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildPagination(t *testing.T) {
	t.Run("middle page", func(t *testing.T) {
		p := BuildPagination(95, Paging{Page: 2, PerPage: 20})
		assert.Equal(t, 2, p.Page)
		assert.Equal(t, int64(95), p.Total)
		assert.Equal(t, 5, p.TotalPages)
		assert.True(t, p.HasNext)
		assert.True(t, p.HasPrev)
	})

	t.Run("last page", func(t *testing.T) {
		p := BuildPagination(95, Paging{Page: 5, PerPage: 20})
		assert.False(t, p.HasNext)
		assert.True(t, p.HasPrev)
	})

	t.Run("empty result still reports one page", func(t *testing.T) {
		p := BuildPagination(0, Paging{Page: 1, PerPage: 20})
		assert.Equal(t, 1, p.TotalPages)
		assert.False(t, p.HasNext)
		assert.False(t, p.HasPrev)
	})

	t.Run("zero paging falls back to defaults", func(t *testing.T) {
		p := BuildPagination(10, Paging{})
		assert.Equal(t, 1, p.Page)
		assert.Equal(t, 20, p.PerPage)
	})
}
