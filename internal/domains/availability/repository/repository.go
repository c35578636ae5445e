package repository

import (
	"context"
	"kasaglow/config"
	"kasaglow/internal/domains/availability/model"
	"kasaglow/shared/constant"
	"kasaglow/shared/failure"
	"kasaglow/shared/timezone"
	"sort"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
)

// demoBlocks are (days from today, hour) pairs blocked out of the box.
var demoBlocks = []struct {
	days int
	hour int
}{
	{days: 2, hour: 10},
	{days: 2, hour: 11},
	{days: 3, hour: 14},
	{days: 5, hour: 9},
}

type Reservations interface {
	model.BookedSet
	Block(ctx context.Context, key model.SlotKey) error
	Reserve(ctx context.Context, start time.Time) error
	Blocked(ctx context.Context) ([]model.SlotKey, error)
}

type repositoryImpl struct {
	mu       sync.RWMutex
	blocked  model.HourSet
	reserved map[int64]struct{}
}

// New seeds the registry from BOOKING_BLOCKED_SLOTS and, when enabled, the demo
// blocks relative to today.
func New(config *config.Config, today time.Time) Reservations {
	repo := NewEmpty().(*repositoryImpl)

	for _, raw := range config.Booking.BlockedSlots {
		key, err := model.ParseSlotKey(raw, today.Location())
		if err != nil {
			log.Warn().Err(err).Str("slot", raw).Msg("Skipping malformed blocked slot")

			continue
		}

		repo.blocked.Add(key)
	}

	if config.Booking.DemoBlockedSlots {
		for _, block := range demoBlocks {
			day := today.AddDate(0, 0, block.days).Format(constant.DayFormat)
			repo.blocked.Add(model.NewSlotKey(day, block.hour))
		}
	}

	log.Info().Int("blocked", len(repo.blocked)).Msg("Reservation registry seeded")

	return repo
}

// NewToday seeds the registry relative to the current day in the app timezone.
func NewToday(config *config.Config) Reservations {
	return New(config, timezone.Now())
}

func NewEmpty() Reservations {
	return &repositoryImpl{
		blocked:  model.NewHourSet(),
		reserved: make(map[int64]struct{}),
	}
}

// IsBooked matches either a blocked hour or an exact confirmed start.
func (r *repositoryImpl) IsBooked(start time.Time) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if _, ok := r.reserved[start.Unix()]; ok {
		return true
	}

	return r.blocked.IsBooked(start)
}

func (r *repositoryImpl) Block(_ context.Context, key model.SlotKey) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.blocked.Add(key)

	return nil
}

func (r *repositoryImpl) Reserve(_ context.Context, start time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.reserved[start.Unix()]; ok || r.blocked.IsBooked(start) {
		return failure.Conflict("time slot is already booked") // nolint:wrapcheck
	}

	r.reserved[start.Unix()] = struct{}{}

	return nil
}

func (r *repositoryImpl) Blocked(_ context.Context) ([]model.SlotKey, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	keys := make([]model.SlotKey, 0, len(r.blocked))
	for key := range r.blocked {
		keys = append(keys, key)
	}

	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })

	return keys, nil
}
