package service

import (
	"fmt"
	"kasaglow/config"
	"kasaglow/shared/timezone"
	"sync"
	"time"
)

// Issuer hands out confirmation ids of the form "<prefix>-<unix millis>".
type Issuer interface {
	Next() string
}

type confirmationIssuer struct {
	mu     sync.Mutex
	prefix string
	last   int64
	now    func() time.Time
}

func NewIssuer(config *config.Config) Issuer {
	return NewIssuerWithClock(config.Booking.ConfirmationPrefix, timezone.Now)
}

func NewIssuerWithClock(prefix string, now func() time.Time) Issuer {
	return &confirmationIssuer{
		prefix: prefix,
		now:    now,
	}
}

// Next never repeats an id, even when called twice in the same millisecond
// or when the clock steps backwards.
func (i *confirmationIssuer) Next() string {
	i.mu.Lock()
	defer i.mu.Unlock()

	stamp := i.now().UnixMilli()
	if stamp <= i.last {
		stamp = i.last + 1
	}

	i.last = stamp

	return fmt.Sprintf("%s-%d", i.prefix, stamp)
}
