package gateway

//go:generate go run go.uber.org/mock/mockgen -source=./gateway.go -destination=../mocks/gateway_mock.go -package=mocks

import (
	"context"
	catalogModel "kasaglow/internal/domains/catalog/model"
	"kasaglow/internal/domains/payment/model"
)

// Wallet is a third-party checkout: an order is opened, approved by the
// customer on the provider side, then captured.
type Wallet interface {
	CreateOrder(ctx context.Context, req model.OrderRequest) (model.Order, error)
	GetOrder(ctx context.Context, orderID string) (model.Order, error)
	Capture(ctx context.Context, orderID string) (model.Receipt, error)
}

// Card charges a card directly.
type Card interface {
	Charge(ctx context.Context, card model.Card, amount catalogModel.Amount, currency, reference string) (model.Receipt, error)
}
