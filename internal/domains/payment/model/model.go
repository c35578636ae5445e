package model

import (
	catalogModel "kasaglow/internal/domains/catalog/model"
	"time"
)

const (
	EntityName = "payment"

	MethodCard   = "card"
	MethodWallet = "wallet"
)

type OrderStatus string

const (
	OrderStatusCreated  OrderStatus = "CREATED"
	OrderStatusCaptured OrderStatus = "CAPTURED"
	OrderStatusFailed   OrderStatus = "FAILED"
)

// Card is the simulated card form. It never leaves the process.
type Card struct {
	HolderName string
	Number     string
	Expiry     string
	CVC        string
}

// OrderRequest is what the wallet provider needs to open a checkout.
type OrderRequest struct {
	Reference   string
	Description string
	Amount      catalogModel.Amount
	Currency    string
}

type Order struct {
	ID          string
	Reference   string
	Description string
	Amount      catalogModel.Amount
	Currency    string
	Status      OrderStatus
	CreatedAt   time.Time
}

// Receipt is the proof of a successful charge.
type Receipt struct {
	ID         string
	Method     string
	Reference  string
	Amount     catalogModel.Amount
	Currency   string
	CapturedAt time.Time
}
