package helpers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalculateOffsetLimit(t *testing.T) {
	t.Run("first page", func(t *testing.T) {
		offset, limit := CalculateOffsetLimit(1, 10)
		assert.Equal(t, uint64(0), offset)
		assert.Equal(t, 10, limit)
	})

	t.Run("third page", func(t *testing.T) {
		offset, limit := CalculateOffsetLimit(3, 20)
		assert.Equal(t, uint64(40), offset)
		assert.Equal(t, 20, limit)
	})

	t.Run("invalid page falls back to first", func(t *testing.T) {
		offset, _ := CalculateOffsetLimit(0, 10)
		assert.Equal(t, uint64(0), offset)
	})

	t.Run("oversized page size is capped", func(t *testing.T) {
		_, limit := CalculateOffsetLimit(1, MaxPageSize+1)
		assert.Equal(t, DefaultPageSize, limit)
	})
}

func TestNewPaginationInfo(t *testing.T) {
	t.Run("rounds total pages up", func(t *testing.T) {
		info := NewPaginationInfo(25, 1, 10)
		assert.Equal(t, 3, info.TotalPages)
		assert.Equal(t, int64(25), info.TotalItems)
	})

	t.Run("empty result still reports one page", func(t *testing.T) {
		info := NewPaginationInfo(0, 1, 10)
		assert.Equal(t, 1, info.TotalPages)
		assert.Equal(t, 1, info.CurrentPage)
	})

	t.Run("current page clamped to total pages", func(t *testing.T) {
		info := NewPaginationInfo(5, 9, 10)
		assert.Equal(t, 1, info.CurrentPage)
	})
}
