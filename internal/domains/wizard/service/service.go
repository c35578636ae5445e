package service

import (
	"context"
	"fmt"
	"kasaglow/infras/metrics"
	"kasaglow/infras/otel"
	availabilityDto "kasaglow/internal/domains/availability/model/dto"
	availabilityService "kasaglow/internal/domains/availability/service"
	bookingModel "kasaglow/internal/domains/booking/model"
	bookingService "kasaglow/internal/domains/booking/service"
	catalogService "kasaglow/internal/domains/catalog/service"
	"kasaglow/internal/domains/wizard/machine"
	"kasaglow/internal/domains/wizard/model"
	"kasaglow/internal/domains/wizard/model/dto"
	"kasaglow/internal/domains/wizard/repository"
	"kasaglow/shared/constant"
	"kasaglow/shared/failure"
	"kasaglow/shared/timezone"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const (
	transitionSelectService  = "select_service"
	transitionSelectDateTime = "select_date_time"
	transitionSubmitDetails  = "submit_details"
	transitionConfirmPayment = "confirm_payment"
	transitionPaymentError   = "payment_error"
	transitionBack           = "back"
	transitionReset          = "reset"
	transitionAdminView      = "toggle_admin_view"
)

type Wizard interface {
	Create(ctx context.Context) (dto.SessionResponse, error)
	Get(ctx context.Context, id string) (dto.SessionResponse, error)
	Delete(ctx context.Context, id string) error
	SelectService(ctx context.Context, id string, req dto.SelectServiceRequest) (dto.SessionResponse, error)
	Slots(ctx context.Context, id string, day string) (availabilityDto.SlotsResponse, error)
	SelectDateTime(ctx context.Context, id string, req dto.SelectDateTimeRequest) (dto.SessionResponse, error)
	SubmitDetails(ctx context.Context, id string, req dto.SubmitDetailsRequest) (dto.SessionResponse, error)
	Back(ctx context.Context, id string) (dto.SessionResponse, error)
	Reset(ctx context.Context, id string) (dto.SessionResponse, error)
	ToggleAdminView(ctx context.Context, id string) (dto.SessionResponse, error)
	Pending(ctx context.Context, id string) (bookingModel.Pending, error)
	ConfirmPayment(ctx context.Context, id string, method string) (dto.SessionResponse, error)
	RecordPaymentError(ctx context.Context, id string, cause error) (dto.SessionResponse, error)
	Sweep(ctx context.Context, idleSince time.Time) (int, error)
	OnEvict(fn EvictFunc)
}

// EvictFunc is told about every session removed by Delete or Sweep.
type EvictFunc func(ctx context.Context, sessionID string)

type serviceImpl struct {
	repo         repository.Sessions
	catalog      catalogService.Catalog
	availability availabilityService.Availability
	booking      bookingService.Booking
	metrics      *metrics.Booking
	otel         otel.Otel

	mu        sync.RWMutex
	listeners []EvictFunc
}

func New(
	repo repository.Sessions,
	catalog catalogService.Catalog,
	availability availabilityService.Availability,
	booking bookingService.Booking,
	metrics *metrics.Booking,
	otel otel.Otel,
) Wizard {
	return &serviceImpl{
		repo:         repo,
		catalog:      catalog,
		availability: availability,
		booking:      booking,
		metrics:      metrics,
		otel:         otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context) (res dto.SessionResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Wizard.Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	now := timezone.Now()
	session := &model.Session{
		ID:        uuid.NewString(),
		Machine:   machine.New(s.booking),
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err = s.repo.Insert(ctx, session); err != nil {
		log.Error().Err(err).Msg("failed to create session")

		return res, fmt.Errorf("failed to create session: %w", err)
	}

	s.refreshActiveSessions(ctx)

	session.Lock()
	defer session.Unlock()

	res.FromModel(session)

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.SessionResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Wizard.Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	session, err := s.find(ctx, id)
	if err != nil {
		return res, err
	}

	session.Lock()
	defer session.Unlock()

	res.FromModel(session)

	return res, nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Wizard.Delete")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if _, err = s.find(ctx, id); err != nil {
		return err
	}

	if err = s.evict(ctx, id); err != nil {
		return err
	}

	s.refreshActiveSessions(ctx)

	return nil
}

// Sweep removes sessions untouched since idleSince and returns how many went.
func (s *serviceImpl) Sweep(ctx context.Context, idleSince time.Time) (evicted int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Wizard.Sweep")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	sessions, err := s.repo.List(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to list sessions")

		return 0, fmt.Errorf("failed to list sessions: %w", err)
	}

	for _, session := range sessions {
		session.Lock()
		idle := session.UpdatedAt.Before(idleSince)
		session.Unlock()

		if !idle {
			continue
		}

		if err = s.evict(ctx, session.ID); err != nil {
			return evicted, err
		}

		evicted++
	}

	if evicted > 0 {
		log.Info().Int("evicted", evicted).Time("idle_since", idleSince).Msg("idle sessions swept")
		s.refreshActiveSessions(ctx)
	}

	scope.SetAttribute("sessions.evicted", evicted)

	return evicted, nil
}

func (s *serviceImpl) OnEvict(fn EvictFunc) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.listeners = append(s.listeners, fn)
}

func (s *serviceImpl) evict(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		log.Error().Err(err).Str("session_id", id).Msg("failed to delete session")

		return fmt.Errorf("failed to delete session: %w", err)
	}

	s.mu.RLock()
	listeners := append([]EvictFunc(nil), s.listeners...)
	s.mu.RUnlock()

	for _, fn := range listeners {
		fn(ctx, id)
	}

	return nil
}

func (s *serviceImpl) SelectService(ctx context.Context, id string, req dto.SelectServiceRequest) (dto.SessionResponse, error) {
	return s.transition(ctx, id, transitionSelectService, func(ctx context.Context, session *model.Session) error {
		if session.Machine.Step() != machine.StepSelectService {
			return failure.PreconditionViolation("a service can only be chosen on the first step") // nolint:wrapcheck
		}

		svc, err := s.catalog.Lookup(ctx, req.ServiceID)
		if err != nil {
			return err // nolint:wrapcheck
		}

		return session.Machine.SelectService(svc) // nolint:wrapcheck
	})
}

// Slots lists the candidate times for the session's chosen service on day.
func (s *serviceImpl) Slots(ctx context.Context, id string, day string) (res availabilityDto.SlotsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Wizard.Slots")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	session, err := s.find(ctx, id)
	if err != nil {
		return res, err
	}

	session.Lock()
	svc := session.Machine.Draft().Service
	session.Unlock()

	if svc == nil {
		return res, failure.PreconditionViolation("choose a service before listing time slots") // nolint:wrapcheck
	}

	return s.availability.Slots(ctx, svc.ID, day) // nolint:wrapcheck
}

func (s *serviceImpl) SelectDateTime(ctx context.Context, id string, req dto.SelectDateTimeRequest) (dto.SessionResponse, error) {
	return s.transition(ctx, id, transitionSelectDateTime, func(ctx context.Context, session *model.Session) error {
		start, err := req.Parse()
		if err != nil {
			return failure.BadRequest(err) // nolint:wrapcheck
		}

		svc := session.Machine.Draft().Service
		if session.Machine.Step() != machine.StepPickDateTime || svc == nil {
			return failure.PreconditionViolation("choose a service before picking a date and time") // nolint:wrapcheck
		}

		slot, err := s.availability.Check(ctx, *svc, start)
		if err != nil {
			return err // nolint:wrapcheck
		}

		return session.Machine.SelectDateTime(slot) // nolint:wrapcheck
	})
}

func (s *serviceImpl) SubmitDetails(ctx context.Context, id string, req dto.SubmitDetailsRequest) (dto.SessionResponse, error) {
	return s.transition(ctx, id, transitionSubmitDetails, func(_ context.Context, session *model.Session) error {
		return session.Machine.SubmitDetails(req.ToModel()) // nolint:wrapcheck
	})
}

func (s *serviceImpl) Back(ctx context.Context, id string) (dto.SessionResponse, error) {
	return s.transition(ctx, id, transitionBack, func(_ context.Context, session *model.Session) error {
		return session.Machine.Back() // nolint:wrapcheck
	})
}

func (s *serviceImpl) Reset(ctx context.Context, id string) (dto.SessionResponse, error) {
	return s.transition(ctx, id, transitionReset, func(_ context.Context, session *model.Session) error {
		session.Machine.Reset()
		session.PaymentError = constant.Empty

		return nil
	})
}

func (s *serviceImpl) ToggleAdminView(ctx context.Context, id string) (dto.SessionResponse, error) {
	return s.transition(ctx, id, transitionAdminView, func(_ context.Context, session *model.Session) error {
		session.Machine.ToggleAdminView()

		return nil
	})
}

// Pending returns the payable draft of a session waiting on the payment step.
func (s *serviceImpl) Pending(ctx context.Context, id string) (bookingModel.Pending, error) {
	session, err := s.find(ctx, id)
	if err != nil {
		return bookingModel.Pending{}, err
	}

	session.Lock()
	defer session.Unlock()

	pending, ok := session.Machine.Draft().Pending()
	if session.Machine.Step() != machine.StepPay || !ok {
		return bookingModel.Pending{}, failure.PreconditionViolation("booking is not awaiting payment") // nolint:wrapcheck
	}

	return pending, nil
}

func (s *serviceImpl) ConfirmPayment(ctx context.Context, id string, method string) (dto.SessionResponse, error) {
	return s.transition(ctx, id, transitionConfirmPayment, func(ctx context.Context, session *model.Session) error {
		if _, err := session.Machine.ConfirmPayment(ctx, method); err != nil {
			if session.Machine.Step() == machine.StepPay {
				session.PaymentError = err.Error()
			}

			return err // nolint:wrapcheck
		}

		session.PaymentError = constant.Empty

		return nil
	})
}

// RecordPaymentError keeps the session on the payment step and exposes the
// failure so the customer can retry. Sessions on any other step reject it.
func (s *serviceImpl) RecordPaymentError(ctx context.Context, id string, cause error) (dto.SessionResponse, error) {
	return s.transition(ctx, id, transitionPaymentError, func(_ context.Context, session *model.Session) error {
		if session.Machine.Step() != machine.StepPay {
			return failure.PreconditionViolation("booking is not awaiting payment") // nolint:wrapcheck
		}

		session.PaymentError = cause.Error()

		log.Warn().Err(cause).Str("session_id", id).Int("step", int(session.Machine.Step())).Msg("payment failed")

		return nil
	})
}

// transition runs fn with the session locked and returns the resulting view.
// The view is returned alongside a transition error so callers can still
// render the unchanged step.
func (s *serviceImpl) transition(
	ctx context.Context,
	id string,
	name string,
	fn func(ctx context.Context, session *model.Session) error,
) (res dto.SessionResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Wizard."+name)
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	session, err := s.find(ctx, id)
	if err != nil {
		return res, err
	}

	session.Lock()
	defer session.Unlock()

	from := session.Machine.Step()
	err = fn(ctx, session)
	s.metrics.ObserveTransition(name, err)

	session.UpdatedAt = timezone.Now()
	res.FromModel(session)

	scope.SetAttributes(map[string]any{
		"session.id":        id,
		"wizard.transition": name,
		"wizard.from":       int(from),
		"wizard.to":         res.Step,
	})

	if err != nil {
		log.Debug().Err(err).Str("session_id", id).Str("transition", name).Msg("transition rejected")

		return res, err
	}

	return res, nil
}

func (s *serviceImpl) find(ctx context.Context, id string) (*model.Session, error) {
	session, err := s.repo.Get(ctx, id)
	if err != nil {
		log.Error().Err(err).Str("session_id", id).Msg("failed to get session")

		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	if session == nil {
		return nil, failure.NotFound("session not found") // nolint:wrapcheck
	}

	return session, nil
}

func (s *serviceImpl) refreshActiveSessions(ctx context.Context) {
	count, err := s.repo.Count(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("failed to count sessions")

		return
	}

	s.metrics.SetActiveSessions(count)
}
