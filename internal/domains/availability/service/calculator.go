package service

import (
	"kasaglow/internal/domains/availability/model"
	"time"
)

// ComputeSlots lists the bookable start times on date for a service lasting
// durationMinutes. Candidates run every StepMinutes from opening and must end,
// buffer included, by closing time. Candidates at or before now are dropped.
// The result is ordered by start and is empty for a non-positive duration or
// an invalid window.
func ComputeSlots(date time.Time, durationMinutes int, hours model.BusinessHours, booked model.BookedSet, now time.Time) []model.TimeSlot {
	slots := []model.TimeSlot{}

	if durationMinutes <= 0 || !hours.Valid() {
		return slots
	}

	total := time.Duration(durationMinutes+model.BufferMinutes) * time.Minute
	step := time.Duration(model.StepMinutes) * time.Minute
	closing := hours.Close(date)

	for start := hours.Open(date); start.Before(closing); start = start.Add(step) {
		if start.Add(total).After(closing) {
			break
		}

		if !start.After(now) {
			continue
		}

		slots = append(slots, model.TimeSlot{
			Start:    start,
			IsBooked: booked != nil && booked.IsBooked(start),
		})
	}

	return slots
}
