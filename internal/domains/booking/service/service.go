package service

import (
	"context"
	"fmt"
	"kasaglow/config"
	"kasaglow/infras/metrics"
	"kasaglow/infras/otel"
	availabilityService "kasaglow/internal/domains/availability/service"
	"kasaglow/internal/domains/booking/model"
	"kasaglow/internal/domains/booking/model/dto"
	"kasaglow/internal/domains/booking/repository"
	"kasaglow/shared"
	"kasaglow/shared/constant"
	gDto "kasaglow/shared/dto"
	"kasaglow/shared/failure"
	"kasaglow/shared/timezone"
	"slices"

	"github.com/rs/zerolog/log"
)

type Booking interface {
	Finalize(ctx context.Context, pending model.Pending, method string) (model.Record, error)
	GetAll(ctx context.Context, req gDto.QueryParams) (dto.GetBookingsResponse, error)
	Get(ctx context.Context, confirmationID string) (dto.BookingResponse, error)
}

type serviceImpl struct {
	repo         repository.Log
	availability availabilityService.Availability
	issuer       Issuer
	cfg          *config.Config
	metrics      *metrics.Booking
	otel         otel.Otel
}

func New(
	repo repository.Log,
	availability availabilityService.Availability,
	issuer Issuer,
	cfg *config.Config,
	metrics *metrics.Booking,
	otel otel.Otel,
) Booking {
	return &serviceImpl{
		repo:         repo,
		availability: availability,
		issuer:       issuer,
		cfg:          cfg,
		metrics:      metrics,
		otel:         otel,
	}
}

// Finalize turns a paid draft into a Record and appends it to the log.
func (s *serviceImpl) Finalize(ctx context.Context, pending model.Pending, method string) (res model.Record, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Booking.Finalize")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if !pending.Complete() {
		return res, failure.PreconditionViolation("booking is missing service, date or customer details") // nolint:wrapcheck
	}

	if s.cfg.Booking.ReserveConfirmed {
		if err = s.availability.Reserve(ctx, pending.DateTime); err != nil {
			return res, err // nolint:wrapcheck
		}
	}

	res = model.Record{
		ConfirmationID: s.issuer.Next(),
		Service:        pending.Service,
		DateTime:       pending.DateTime,
		Customer:       pending.Customer,
		PaymentMethod:  method,
		CreatedAt:      timezone.Now(),
	}

	if err = s.repo.Append(ctx, res); err != nil {
		log.Error().Err(err).Str("confirmation_id", res.ConfirmationID).Msg("failed to append booking")

		return model.Record{}, fmt.Errorf("failed to append booking: %w", err)
	}

	scope.SetAttribute("booking.confirmation_id", res.ConfirmationID)
	s.metrics.ObserveConfirmed(pending.Service.Name)

	log.Info().
		Str("confirmation_id", res.ConfirmationID).
		Str("service", pending.Service.Name).
		Time("date_time", pending.DateTime).
		Msg("booking confirmed")

	return res, nil
}

// GetAll lists bookings most recent first unless sort_dir is ASC.
func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams) (res dto.GetBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Booking.GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	records, err := s.repo.GetAll(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings")

		return res, fmt.Errorf("failed to get bookings: %w", err)
	}

	if req.SortDir != gDto.SortDirAsc {
		slices.Reverse(records)
	}

	start, end := shared.PageBounds(len(records), req.Page, req.Limit)
	res.FromModels(records[start:end], len(records), req.Page, req.Limit)

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, confirmationID string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Booking.Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	record, err := s.repo.Get(ctx, confirmationID)
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return res, fmt.Errorf("failed to get booking: %w", err)
	}

	if record.ConfirmationID == constant.Empty {
		return res, failure.NotFound("booking not found") // nolint:wrapcheck
	}

	res.FromModel(record)

	return res, nil
}
