package model

import (
	"fmt"
	"time"
)

const (
	EntityName = "service"
)

// Amount is a currency amount in minor units (cents).
type Amount int64

// Dollars builds an Amount from whole currency units.
func Dollars(units int64) Amount {
	return Amount(units * 100)
}

// String renders the amount as a fixed-point string with two decimals, e.g. "25.00".
func (a Amount) String() string {
	sign := ""
	if a < 0 {
		sign = "-"
		a = -a
	}

	return fmt.Sprintf("%s%d.%02d", sign, a/100, a%100)
}

// Service is an immutable catalog entry.
type Service struct {
	ID              int
	Name            string
	Description     string
	DurationMinutes int
	ReservationFee  Amount
}

func (s Service) Duration() time.Duration {
	return time.Duration(s.DurationMinutes) * time.Minute
}

func (s Service) IsZero() bool {
	return s.ID == 0
}
