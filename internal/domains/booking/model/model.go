package model

import (
	catalogModel "kasaglow/internal/domains/catalog/model"
	"time"
)

const (
	EntityName = "booking"
)

// Customer holds the contact details collected in the details step.
type Customer struct {
	Name    string
	Email   string
	Phone   string
	Address string
	Notes   string
}

func (c Customer) IsZero() bool {
	return c == Customer{}
}

// Pending is a draft with every field needed to take payment.
type Pending struct {
	Service  catalogModel.Service
	DateTime time.Time
	Customer Customer
}

// Complete reports whether service, date-time and customer are all present.
func (p Pending) Complete() bool {
	return !p.Service.IsZero() && !p.DateTime.IsZero() && !p.Customer.IsZero()
}

// Description is the payment order description, e.g. "Deep Cleaning - Reservation Fee".
func (p Pending) Description() string {
	return p.Service.Name + " - Reservation Fee"
}

// Record is a finalized booking. It is never modified once appended to the log.
type Record struct {
	ConfirmationID string
	Service        catalogModel.Service
	DateTime       time.Time
	Customer       Customer
	PaymentMethod  string
	CreatedAt      time.Time
}
