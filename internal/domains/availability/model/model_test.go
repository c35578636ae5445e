package model_test

import (
	"kasaglow/internal/domains/availability/model"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBusinessHours_Valid(t *testing.T) {
	tests := []struct {
		name  string
		hours model.BusinessHours
		want  bool
	}{
		{name: "regular day", hours: model.BusinessHours{Start: 8, End: 18}, want: true},
		{name: "whole day", hours: model.BusinessHours{Start: 0, End: 24}, want: true},
		{name: "empty window", hours: model.BusinessHours{Start: 9, End: 9}},
		{name: "inverted", hours: model.BusinessHours{Start: 18, End: 8}},
		{name: "past midnight", hours: model.BusinessHours{Start: 8, End: 25}},
		{name: "negative start", hours: model.BusinessHours{Start: -1, End: 8}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.hours.Valid())
		})
	}
}

func TestBusinessHours_CloseAtMidnight(t *testing.T) {
	day := time.Date(2024, time.June, 10, 15, 45, 0, 0, time.UTC)
	hours := model.BusinessHours{Start: 20, End: 24}

	assert.Equal(t, time.Date(2024, time.June, 10, 20, 0, 0, 0, time.UTC), hours.Open(day))
	assert.Equal(t, time.Date(2024, time.June, 11, 0, 0, 0, 0, time.UTC), hours.Close(day))
}

func TestSlotKey(t *testing.T) {
	start := time.Date(2024, time.June, 10, 9, 30, 0, 0, time.UTC)

	assert.Equal(t, model.SlotKey("2024-06-10-09"), model.KeyOf(start))
	assert.Equal(t, model.SlotKey("2024-06-10-09"), model.NewSlotKey("2024-06-10", 9))

	key, err := model.ParseSlotKey("2024-06-10-14", time.UTC)
	require.NoError(t, err)
	assert.Equal(t, model.SlotKey("2024-06-10-14"), key)

	_, err = model.ParseSlotKey("2024-06-10 14:00", time.UTC)
	assert.Error(t, err)
}

func TestHourSet_IsBooked(t *testing.T) {
	set := model.NewHourSet(model.NewSlotKey("2024-06-10", 10))

	assert.True(t, set.IsBooked(time.Date(2024, time.June, 10, 10, 0, 0, 0, time.UTC)))
	assert.False(t, set.IsBooked(time.Date(2024, time.June, 10, 10, 30, 0, 0, time.UTC)))
	assert.False(t, set.IsBooked(time.Date(2024, time.June, 11, 10, 0, 0, 0, time.UTC)))
}
