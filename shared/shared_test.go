package shared_test

import (
	"kasaglow/shared"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalculateTotalPage(t *testing.T) {
	tests := []struct {
		name     string
		total    int
		limit    int
		expected int
	}{
		{"no data", 0, 10, 1},
		{"zero limit", 5, 0, 1},
		{"exact pages", 20, 10, 2},
		{"partial page", 21, 10, 3},
		{"single item", 1, 10, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, shared.CalculateTotalPage(tt.total, tt.limit))
		})
	}
}

func TestBuildCacheKey(t *testing.T) {
	assert.Equal(t, "limiter", shared.BuildCacheKey("limiter"))
	assert.Equal(t, "limiter:10.0.0.1:curl", shared.BuildCacheKey("limiter", "10.0.0.1", "curl"))
}

func TestPageBounds(t *testing.T) {
	tests := []struct {
		name       string
		total      int
		page       int
		limit      int
		start, end int
	}{
		{"first page", 25, 1, 10, 0, 10},
		{"last partial page", 25, 3, 10, 20, 25},
		{"page past the end", 25, 4, 10, 25, 25},
		{"zero page treated as first", 25, 0, 10, 0, 10},
		{"no limit returns all", 25, 2, 0, 0, 25},
		{"empty", 0, 1, 10, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end := shared.PageBounds(tt.total, tt.page, tt.limit)

			assert.Equal(t, tt.start, start)
			assert.Equal(t, tt.end, end)
		})
	}
}
