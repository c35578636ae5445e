package service

import (
	"context"
	"fmt"
	"kasaglow/config"
	"kasaglow/infras/metrics"
	"kasaglow/infras/otel"
	"kasaglow/internal/domains/availability/model"
	"kasaglow/internal/domains/availability/model/dto"
	"kasaglow/internal/domains/availability/repository"
	catalogModel "kasaglow/internal/domains/catalog/model"
	catalogService "kasaglow/internal/domains/catalog/service"
	"kasaglow/shared/constant"
	"kasaglow/shared/failure"
	"kasaglow/shared/timezone"
	"time"

	"github.com/rs/zerolog/log"
)

type Availability interface {
	Slots(ctx context.Context, serviceID int, day string) (dto.SlotsResponse, error)
	SlotsFor(ctx context.Context, svc catalogModel.Service, day time.Time) ([]model.TimeSlot, error)
	Check(ctx context.Context, svc catalogModel.Service, start time.Time) (model.TimeSlot, error)
	Reserve(ctx context.Context, start time.Time) error
	Blocked(ctx context.Context) (dto.BlockedSlotsResponse, error)
	Block(ctx context.Context, req dto.BlockSlotRequest) (dto.BlockedSlotsResponse, error)
}

type serviceImpl struct {
	catalog catalogService.Catalog
	repo    repository.Reservations
	hours   model.BusinessHours
	metrics *metrics.Booking
	otel    otel.Otel
	now     func() time.Time
}

func New(
	catalog catalogService.Catalog,
	repo repository.Reservations,
	config *config.Config,
	metrics *metrics.Booking,
	otel otel.Otel,
) Availability {
	return NewWithClock(catalog, repo, config, metrics, otel, timezone.Now)
}

func NewWithClock(
	catalog catalogService.Catalog,
	repo repository.Reservations,
	config *config.Config,
	metrics *metrics.Booking,
	otel otel.Otel,
	now func() time.Time,
) Availability {
	return &serviceImpl{
		catalog: catalog,
		repo:    repo,
		hours: model.BusinessHours{
			Start: config.Booking.BusinessHours.Start,
			End:   config.Booking.BusinessHours.End,
		},
		metrics: metrics,
		otel:    otel,
		now:     now,
	}
}

func (s *serviceImpl) Slots(ctx context.Context, serviceID int, day string) (res dto.SlotsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Availability.Slots")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	date, err := timezone.ParseDay(day)
	if err != nil {
		return res, failure.InvalidDateParam
	}

	svc, err := s.catalog.Lookup(ctx, serviceID)
	if err != nil {
		return res, err // nolint:wrapcheck
	}

	slots, err := s.SlotsFor(ctx, svc, date)
	if err != nil {
		return res, err
	}

	res.FromModels(date, svc.ID, svc.DurationMinutes, slots)

	return res, nil
}

func (s *serviceImpl) SlotsFor(ctx context.Context, svc catalogModel.Service, day time.Time) ([]model.TimeSlot, error) {
	_, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Availability.SlotsFor")
	defer scope.End()

	if !s.hours.Valid() {
		log.Error().Int("start", s.hours.Start).Int("end", s.hours.End).Msg("invalid business hours, no slots offered")
	}

	slots := ComputeSlots(timezone.ToAppTime(day), svc.DurationMinutes, s.hours, s.repo, s.now())

	scope.SetAttributes(map[string]any{
		"service.id":  svc.ID,
		"slots.count": len(slots),
	})
	s.metrics.ObserveSlotsOffered(len(slots))

	return slots, nil
}

// Check returns the offered slot starting exactly at start.
func (s *serviceImpl) Check(ctx context.Context, svc catalogModel.Service, start time.Time) (model.TimeSlot, error) {
	start = timezone.ToAppTime(start)

	slots, err := s.SlotsFor(ctx, svc, start)
	if err != nil {
		return model.TimeSlot{}, err
	}

	for _, slot := range slots {
		if slot.Start.Equal(start) {
			return slot, nil
		}
	}

	return model.TimeSlot{}, failure.BadRequestFromString("time slot is not offered for this service") // nolint:wrapcheck
}

func (s *serviceImpl) Reserve(ctx context.Context, start time.Time) error {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Availability.Reserve")
	defer scope.End()

	err := s.repo.Reserve(ctx, start)
	if err != nil {
		scope.TraceError(err)
		log.Warn().Err(err).Time("start", start).Msg("failed to reserve slot")

		return fmt.Errorf("failed to reserve slot: %w", err)
	}

	return nil
}

// Blocked lists the hours taken out of sale, in calendar order.
func (s *serviceImpl) Blocked(ctx context.Context) (res dto.BlockedSlotsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Availability.Blocked")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	keys, err := s.repo.Blocked(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to list blocked slots")

		return res, fmt.Errorf("failed to list blocked slots: %w", err)
	}

	res.FromModels(keys)

	return res, nil
}

// Block takes one (day, hour) out of sale and returns the updated list.
// Blocking an hour twice is a no-op.
func (s *serviceImpl) Block(ctx context.Context, req dto.BlockSlotRequest) (res dto.BlockedSlotsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Availability.Block")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if req.Hour == nil {
		return res, failure.BadRequestFromString("hour is required") // nolint:wrapcheck
	}

	key := req.ToModel()
	if _, err = model.ParseSlotKey(string(key), timezone.GetLocation()); err != nil {
		return res, failure.BadRequest(err) // nolint:wrapcheck
	}

	if err = s.repo.Block(ctx, key); err != nil {
		log.Error().Err(err).Str("slot", string(key)).Msg("failed to block slot")

		return res, fmt.Errorf("failed to block slot: %w", err)
	}

	log.Info().Str("slot", string(key)).Msg("slot blocked")
	scope.SetAttribute("slot.key", string(key))

	return s.Blocked(ctx)
}
