package gateway

import (
	"context"
	"kasaglow/infras/otel"
	"kasaglow/internal/domains/payment/model"
	"kasaglow/shared/constant"
	"kasaglow/shared/failure"
	"kasaglow/shared/timezone"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

type sandboxWallet struct {
	mu     sync.Mutex
	orders map[string]model.Order
	otel   otel.Otel
}

// NewSandboxWallet keeps orders in memory and captures any order it created.
func NewSandboxWallet(otel otel.Otel) Wallet {
	return &sandboxWallet{
		orders: make(map[string]model.Order),
		otel:   otel,
	}
}

func (w *sandboxWallet) CreateOrder(ctx context.Context, req model.OrderRequest) (res model.Order, err error) {
	_, scope := w.otel.NewScope(ctx, constant.OtelExternalScopeName, constant.OtelExternalScopeName+".Wallet.CreateOrder")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if req.Amount <= 0 {
		return res, failure.BadRequestFromString("order amount must be positive") // nolint:wrapcheck
	}

	res = model.Order{
		ID:          uuid.NewString(),
		Reference:   req.Reference,
		Description: req.Description,
		Amount:      req.Amount,
		Currency:    req.Currency,
		Status:      model.OrderStatusCreated,
		CreatedAt:   timezone.Now(),
	}

	w.mu.Lock()
	w.orders[res.ID] = res
	w.mu.Unlock()

	log.Info().Str("order_id", res.ID).Str("description", res.Description).Str("amount", res.Amount.String()).Msg("wallet order created")

	return res, nil
}

func (w *sandboxWallet) GetOrder(_ context.Context, orderID string) (model.Order, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	order, ok := w.orders[orderID]
	if !ok {
		return model.Order{}, failure.NotFound("order not found") // nolint:wrapcheck
	}

	return order, nil
}

func (w *sandboxWallet) Capture(ctx context.Context, orderID string) (res model.Receipt, err error) {
	_, scope := w.otel.NewScope(ctx, constant.OtelExternalScopeName, constant.OtelExternalScopeName+".Wallet.Capture")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	w.mu.Lock()
	defer w.mu.Unlock()

	order, ok := w.orders[orderID]
	if !ok {
		return res, failure.NotFound("order not found") // nolint:wrapcheck
	}

	if order.Status != model.OrderStatusCreated {
		return res, failure.Conflict("order already " + string(order.Status)) // nolint:wrapcheck
	}

	order.Status = model.OrderStatusCaptured
	w.orders[orderID] = order

	return model.Receipt{
		ID:         uuid.NewString(),
		Method:     model.MethodWallet,
		Reference:  order.Reference,
		Amount:     order.Amount,
		Currency:   order.Currency,
		CapturedAt: timezone.Now(),
	}, nil
}
