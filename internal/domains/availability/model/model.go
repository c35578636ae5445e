package model

import (
	"fmt"
	"kasaglow/shared/constant"
	"time"
)

const (
	// BufferMinutes pads every service before the next booking may start.
	BufferMinutes = 30
	// StepMinutes is the spacing between candidate start times.
	StepMinutes = 30
)

// TimeSlot is a candidate start time for a service on a given day.
type TimeSlot struct {
	Start    time.Time
	IsBooked bool
}

// BusinessHours is the daily window, in whole hours, inside which a service must start and finish.
type BusinessHours struct {
	Start int
	End   int
}

func (h BusinessHours) Valid() bool {
	return h.Start >= 0 && h.End <= constant.HoursPerDay && h.Start < h.End
}

// Open and Close return the window bounds on day, in day's location.
func (h BusinessHours) Open(day time.Time) time.Time {
	return atHour(day, h.Start)
}

func (h BusinessHours) Close(day time.Time) time.Time {
	return atHour(day, h.End)
}

func atHour(day time.Time, hour int) time.Time {
	year, month, date := day.Date()

	return time.Date(year, month, date, hour, 0, 0, 0, day.Location())
}

// SlotKey identifies a booked (calendar day, hour) pair, formatted YYYY-MM-DD-HH.
type SlotKey string

func KeyOf(t time.Time) SlotKey {
	return SlotKey(t.Format(constant.SlotKeyFormat))
}

func NewSlotKey(day string, hour int) SlotKey {
	return SlotKey(fmt.Sprintf("%s-%02d", day, hour))
}

// ParseSlotKey validates a YYYY-MM-DD-HH key.
func ParseSlotKey(value string, loc *time.Location) (SlotKey, error) {
	t, err := time.ParseInLocation(constant.SlotKeyFormat, value, loc)
	if err != nil {
		return "", fmt.Errorf("invalid slot key %q: %w", value, err)
	}

	return KeyOf(t), nil
}

// BookedSet answers whether a candidate start is already taken.
type BookedSet interface {
	IsBooked(start time.Time) bool
}

// HourSet is a BookedSet keyed by (day, hour). Only the top-of-hour candidate
// matches a key; the half-past candidate of the same hour stays free.
type HourSet map[SlotKey]struct{}

func NewHourSet(keys ...SlotKey) HourSet {
	set := make(HourSet, len(keys))
	for _, key := range keys {
		set[key] = struct{}{}
	}

	return set
}

func (s HourSet) Add(key SlotKey) {
	s[key] = struct{}{}
}

func (s HourSet) Has(key SlotKey) bool {
	_, ok := s[key]

	return ok
}

func (s HourSet) IsBooked(start time.Time) bool {
	if start.Minute() != 0 {
		return false
	}

	return s.Has(KeyOf(start))
}
