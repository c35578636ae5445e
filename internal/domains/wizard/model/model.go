package model

import (
	"kasaglow/internal/domains/wizard/machine"
	"sync"
	"time"
)

const (
	EntityName = "session"
)

// Session is one customer's wizard. Lock it around every use of Machine.
type Session struct {
	sync.Mutex

	ID           string
	Machine      *machine.Machine
	PaymentError string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
