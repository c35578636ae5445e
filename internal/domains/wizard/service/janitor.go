package service

import (
	"context"
	"kasaglow/config"
	"kasaglow/shared/timezone"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
)

// Janitor periodically evicts sessions idle for longer than
// BOOKING_SESSION_IDLE_MINUTES. A non-positive idle time disables it.
type Janitor struct {
	wizard   Wizard
	idle     time.Duration
	interval time.Duration
	now      func() time.Time

	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
}

func NewJanitor(cfg *config.Config, wizard Wizard) *Janitor {
	return NewJanitorWithClock(cfg, wizard, timezone.Now)
}

func NewJanitorWithClock(cfg *config.Config, wizard Wizard, now func() time.Time) *Janitor {
	return &Janitor{
		wizard:   wizard,
		idle:     time.Duration(cfg.Booking.Session.IdleMinutes) * time.Minute,
		interval: time.Duration(cfg.Booking.Session.SweepIntervalSeconds) * time.Second,
		now:      now,
	}
}

// SweepOnce evicts every session idle since now minus the idle time.
func (j *Janitor) SweepOnce(ctx context.Context) (int, error) {
	if j.idle <= 0 {
		return 0, nil
	}

	return j.wizard.Sweep(ctx, j.now().Add(-j.idle)) // nolint:wrapcheck
}

// Start runs the sweep loop in the background until Stop. Calling it again
// while running does nothing.
func (j *Janitor) Start() {
	if j == nil {
		return
	}

	j.mu.Lock()
	defer j.mu.Unlock()

	if j.cancel != nil || j.idle <= 0 || j.interval <= 0 {
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	j.cancel = cancel
	j.done = make(chan struct{})

	go j.run(ctx, j.done)

	log.Info().Dur("idle", j.idle).Dur("interval", j.interval).Msg("Session janitor started")
}

func (j *Janitor) Stop() {
	if j == nil {
		return
	}

	j.mu.Lock()
	cancel, done := j.cancel, j.done
	j.cancel, j.done = nil, nil
	j.mu.Unlock()

	if cancel == nil {
		return
	}

	cancel()
	<-done
}

func (j *Janitor) run(ctx context.Context, done chan struct{}) {
	defer close(done)

	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if _, err := j.SweepOnce(ctx); err != nil {
				log.Warn().Err(err).Msg("session sweep failed")
			}
		}
	}
}
