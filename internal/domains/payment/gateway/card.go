package gateway

import (
	"context"
	"fmt"
	"kasaglow/config"
	"kasaglow/infras/otel"
	catalogModel "kasaglow/internal/domains/catalog/model"
	"kasaglow/internal/domains/payment/model"
	"kasaglow/shared/constant"
	"kasaglow/shared/timezone"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

type simulatedCard struct {
	delay time.Duration
	otel  otel.Otel
}

// NewSimulatedCard approves every charge after PAYMENT_CARD_DELAY_MILLIS.
func NewSimulatedCard(config *config.Config, otel otel.Otel) Card {
	return &simulatedCard{
		delay: time.Duration(config.Payment.CardDelayMillis) * time.Millisecond,
		otel:  otel,
	}
}

func (c *simulatedCard) Charge(
	ctx context.Context,
	card model.Card,
	amount catalogModel.Amount,
	currency, reference string,
) (res model.Receipt, err error) {
	ctx, scope := c.otel.NewScope(ctx, constant.OtelExternalScopeName, constant.OtelExternalScopeName+".Card.Charge")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	timer := time.NewTimer(c.delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return res, fmt.Errorf("card charge interrupted: %w", ctx.Err())
	case <-timer.C:
	}

	res = model.Receipt{
		ID:         uuid.NewString(),
		Method:     model.MethodCard,
		Reference:  reference,
		Amount:     amount,
		Currency:   currency,
		CapturedAt: timezone.Now(),
	}

	log.Info().
		Str("receipt_id", res.ID).
		Str("reference", reference).
		Str("amount", amount.String()).
		Str("card", maskNumber(card.Number)).
		Msg("card charge approved")

	return res, nil
}

func maskNumber(number string) string {
	const visible = 4
	if len(number) <= visible {
		return number
	}

	return "****" + number[len(number)-visible:]
}
