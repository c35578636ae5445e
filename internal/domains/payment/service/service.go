package service

import (
	"context"
	"fmt"
	"kasaglow/config"
	"kasaglow/infras/metrics"
	"kasaglow/infras/otel"
	"kasaglow/internal/domains/payment/gateway"
	"kasaglow/internal/domains/payment/model"
	"kasaglow/internal/domains/payment/model/dto"
	wizardDto "kasaglow/internal/domains/wizard/model/dto"
	wizardService "kasaglow/internal/domains/wizard/service"
	"kasaglow/shared/constant"
	"kasaglow/shared/failure"
	"sync"

	"github.com/rs/zerolog/log"
)

type Payment interface {
	PayByCard(ctx context.Context, sessionID string, req dto.CardPaymentRequest) (wizardDto.SessionResponse, error)
	CreateWalletOrder(ctx context.Context, sessionID string) (dto.OrderResponse, error)
	ApproveWalletOrder(ctx context.Context, sessionID, orderID string) (wizardDto.SessionResponse, error)
	ReportWalletError(ctx context.Context, sessionID string, req dto.WalletErrorRequest) (wizardDto.SessionResponse, error)
	OpenOrders() int
}

type serviceImpl struct {
	wizard  wizardService.Wizard
	card    gateway.Card
	wallet  gateway.Wallet
	cfg     *config.Config
	metrics *metrics.Booking
	otel    otel.Otel

	mu          sync.Mutex
	settlements map[string]orderSettlement
}

// orderSettlement ties an open wallet order to the session that created it.
type orderSettlement struct {
	sessionID  string
	settlement *Settlement
}

func New(
	wizard wizardService.Wizard,
	card gateway.Card,
	wallet gateway.Wallet,
	cfg *config.Config,
	metrics *metrics.Booking,
	otel otel.Otel,
) Payment {
	s := &serviceImpl{
		wizard:      wizard,
		card:        card,
		wallet:      wallet,
		cfg:         cfg,
		metrics:     metrics,
		otel:        otel,
		settlements: make(map[string]orderSettlement),
	}

	wizard.OnEvict(s.forgetSession)

	return s
}

// PayByCard charges the reservation fee and confirms the booking. A failed
// charge leaves the session on the payment step with the error recorded.
func (s *serviceImpl) PayByCard(ctx context.Context, sessionID string, req dto.CardPaymentRequest) (res wizardDto.SessionResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Payment.PayByCard")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	pending, err := s.wizard.Pending(ctx, sessionID)
	if err != nil {
		return res, err // nolint:wrapcheck
	}

	settlement := s.newSettlement(sessionID, model.MethodCard)

	receipt, err := s.card.Charge(ctx, req.ToModel(), pending.Service.ReservationFee, s.cfg.Booking.Currency, sessionID)
	if err != nil {
		log.Error().Err(err).Str("session_id", sessionID).Msg("card charge failed")

		res, err = settlement.Fail(context.WithoutCancel(ctx), err)
		if err == nil {
			err = failure.PaymentFailed(res.PaymentError)
		}

		s.metrics.ObservePayment(model.MethodCard, err)

		return res, err
	}

	res, err = settlement.Approve(ctx, receipt)
	s.metrics.ObservePayment(model.MethodCard, err)

	return res, err
}

// CreateWalletOrder opens a checkout for the session's reservation fee.
func (s *serviceImpl) CreateWalletOrder(ctx context.Context, sessionID string) (res dto.OrderResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Payment.CreateWalletOrder")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = s.walletEnabled(); err != nil {
		return res, err
	}

	pending, err := s.wizard.Pending(ctx, sessionID)
	if err != nil {
		return res, err // nolint:wrapcheck
	}

	order, err := s.wallet.CreateOrder(ctx, model.OrderRequest{
		Reference:   sessionID,
		Description: pending.Description(),
		Amount:      pending.Service.ReservationFee,
		Currency:    s.cfg.Booking.Currency,
	})
	if err != nil {
		log.Error().Err(err).Str("session_id", sessionID).Msg("failed to create wallet order")

		return res, fmt.Errorf("failed to create wallet order: %w", err)
	}

	settlement := s.newSettlement(sessionID, model.MethodWallet)

	s.mu.Lock()
	s.settlements[order.ID] = orderSettlement{sessionID: sessionID, settlement: settlement}
	s.mu.Unlock()

	res.FromModel(order)

	return res, nil
}

// ApproveWalletOrder captures an order the customer approved with the provider.
func (s *serviceImpl) ApproveWalletOrder(ctx context.Context, sessionID, orderID string) (res wizardDto.SessionResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Payment.ApproveWalletOrder")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = s.walletEnabled(); err != nil {
		return res, err
	}

	if _, err = s.wizard.Pending(ctx, sessionID); err != nil {
		return res, err // nolint:wrapcheck
	}

	settlement, err := s.findSettlement(ctx, sessionID, orderID)
	if err != nil {
		return res, err
	}

	defer s.forgetOrder(orderID)

	receipt, err := s.wallet.Capture(ctx, orderID)
	if err != nil {
		log.Error().Err(err).Str("order_id", orderID).Msg("wallet capture failed")

		res, err = settlement.Fail(context.WithoutCancel(ctx), err)
		if err == nil {
			err = failure.PaymentFailed(res.PaymentError)
		}

		s.metrics.ObservePayment(model.MethodWallet, err)

		return res, err
	}

	res, err = settlement.Approve(ctx, receipt)
	s.metrics.ObservePayment(model.MethodWallet, err)

	return res, err
}

// ReportWalletError records an error raised by the wallet checkout so the
// customer sees it and can retry. With an order id the order is settled as
// failed and can no longer be approved.
func (s *serviceImpl) ReportWalletError(ctx context.Context, sessionID string, req dto.WalletErrorRequest) (res wizardDto.SessionResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Payment.ReportWalletError")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if _, err = s.wizard.Pending(ctx, sessionID); err != nil {
		return res, err // nolint:wrapcheck
	}

	cause := fmt.Errorf("wallet payment failed: %s", req.Message)
	log.Error().Err(cause).Str("session_id", sessionID).Str("order_id", req.OrderID).Msg("wallet checkout reported an error")

	s.metrics.ObservePayment(model.MethodWallet, cause)

	if req.OrderID == constant.Empty {
		return s.wizard.RecordPaymentError(ctx, sessionID, cause) // nolint:wrapcheck
	}

	settlement, err := s.findSettlement(ctx, sessionID, req.OrderID)
	if err != nil {
		return res, err
	}

	defer s.forgetOrder(req.OrderID)

	return settlement.Fail(ctx, cause)
}

func (s *serviceImpl) newSettlement(sessionID, method string) *Settlement {
	return NewSettlement(
		func(ctx context.Context, receipt model.Receipt) (wizardDto.SessionResponse, error) {
			log.Info().
				Str("session_id", sessionID).
				Str("receipt_id", receipt.ID).
				Str("method", method).
				Msg("payment approved")

			return s.wizard.ConfirmPayment(ctx, sessionID, method) // nolint:wrapcheck
		},
		func(ctx context.Context, cause error) (wizardDto.SessionResponse, error) {
			return s.wizard.RecordPaymentError(ctx, sessionID, cause) // nolint:wrapcheck
		},
	)
}

func (s *serviceImpl) findSettlement(ctx context.Context, sessionID, orderID string) (*Settlement, error) {
	order, err := s.wallet.GetOrder(ctx, orderID)
	if err != nil {
		return nil, err // nolint:wrapcheck
	}

	if order.Reference != sessionID {
		return nil, failure.NotFound("order not found") // nolint:wrapcheck
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	open, ok := s.settlements[orderID]
	if !ok {
		return nil, ErrAlreadySettled
	}

	if open.sessionID != sessionID {
		return nil, failure.NotFound("order not found") // nolint:wrapcheck
	}

	return open.settlement, nil
}

// OpenOrders counts wallet orders still waiting to be approved or failed.
func (s *serviceImpl) OpenOrders() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.settlements)
}

func (s *serviceImpl) forgetOrder(orderID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.settlements, orderID)
}

func (s *serviceImpl) forgetSession(_ context.Context, sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for orderID, open := range s.settlements {
		if open.sessionID == sessionID {
			delete(s.settlements, orderID)
		}
	}
}

func (s *serviceImpl) walletEnabled() error {
	if !s.cfg.Payment.WalletEnable {
		return failure.Unavailable("wallet payments are disabled") // nolint:wrapcheck
	}

	return nil
}
