package machine

//go:generate go run go.uber.org/mock/mockgen -source=./machine.go -destination=../mocks/finalizer_mock.go -package=mocks

import (
	"context"
	availabilityModel "kasaglow/internal/domains/availability/model"
	bookingModel "kasaglow/internal/domains/booking/model"
	catalogModel "kasaglow/internal/domains/catalog/model"
	"kasaglow/shared/failure"
	"time"
)

// Draft accumulates the booking as the wizard advances. A nil field has not
// been entered yet.
type Draft struct {
	Service  *catalogModel.Service
	DateTime *time.Time
	Customer *bookingModel.Customer
	Record   *bookingModel.Record
}

// Pending returns the payable part of the draft once service, date-time and
// customer are all present.
func (d Draft) Pending() (bookingModel.Pending, bool) {
	if d.Service == nil || d.DateTime == nil || d.Customer == nil {
		return bookingModel.Pending{}, false
	}

	return bookingModel.Pending{
		Service:  *d.Service,
		DateTime: *d.DateTime,
		Customer: *d.Customer,
	}, true
}

// Finalizer turns a paid draft into a logged record.
type Finalizer interface {
	Finalize(ctx context.Context, pending bookingModel.Pending, method string) (bookingModel.Record, error)
}

// Machine sequences SelectService → PickDateTime → EnterDetails → Pay →
// Confirmed. Every transition checks its preconditions, so step N always has
// the fields of steps 1..N-1. A Machine is not safe for concurrent use.
type Machine struct {
	step      Step
	draft     Draft
	adminView bool
	finalizer Finalizer
}

func New(finalizer Finalizer) *Machine {
	return &Machine{
		step:      StepSelectService,
		finalizer: finalizer,
	}
}

func (m *Machine) Step() Step {
	return m.step
}

func (m *Machine) Draft() Draft {
	return m.draft
}

func (m *Machine) AdminView() bool {
	return m.adminView
}

// SelectService starts a fresh draft. Only allowed on the first step.
func (m *Machine) SelectService(svc catalogModel.Service) error {
	if m.step != StepSelectService {
		return failure.PreconditionViolation("a service can only be chosen on the first step") // nolint:wrapcheck
	}

	if svc.IsZero() {
		return failure.BadRequestFromString("service is required") // nolint:wrapcheck
	}

	m.draft = Draft{Service: &svc}
	m.step = StepPickDateTime

	return nil
}

// SelectDateTime takes a slot returned by the availability calculator.
func (m *Machine) SelectDateTime(slot availabilityModel.TimeSlot) error {
	if m.step != StepPickDateTime || m.draft.Service == nil {
		return failure.PreconditionViolation("choose a service before picking a date and time") // nolint:wrapcheck
	}

	if slot.IsBooked {
		return failure.Conflict("time slot is already booked") // nolint:wrapcheck
	}

	if slot.Start.IsZero() {
		return failure.BadRequestFromString("date_time is required") // nolint:wrapcheck
	}

	start := slot.Start
	m.draft.DateTime = &start
	m.step = StepEnterDetails

	return nil
}

func (m *Machine) SubmitDetails(customer bookingModel.Customer) error {
	if m.step != StepEnterDetails || m.draft.Service == nil || m.draft.DateTime == nil {
		return failure.PreconditionViolation("pick a date and time before entering details") // nolint:wrapcheck
	}

	if customer.Name == "" || customer.Email == "" || customer.Phone == "" || customer.Address == "" {
		return failure.BadRequestFromString("name, email, phone and address are required") // nolint:wrapcheck
	}

	m.draft.Customer = &customer
	m.step = StepPay

	return nil
}

// ConfirmPayment finalizes the draft after a successful payment. On error the
// machine stays on the payment step so the payment can be retried.
func (m *Machine) ConfirmPayment(ctx context.Context, method string) (bookingModel.Record, error) {
	pending, ok := m.draft.Pending()
	if m.step != StepPay || !ok {
		return bookingModel.Record{}, failure.PreconditionViolation("booking is not awaiting payment") // nolint:wrapcheck
	}

	record, err := m.finalizer.Finalize(ctx, pending, method)
	if err != nil {
		return bookingModel.Record{}, err // nolint:wrapcheck
	}

	m.draft.Record = &record
	m.step = StepConfirmed

	return record, nil
}

// Back moves one step back and keeps every entered field. It is a no-op on
// the first step. A confirmed booking can only be left through Reset.
func (m *Machine) Back() error {
	switch m.step {
	case StepSelectService:
		return nil
	case StepConfirmed:
		return failure.PreconditionViolation("a confirmed booking can only be reset") // nolint:wrapcheck
	default:
		m.step--

		return nil
	}
}

// Reset discards the draft and returns to the first step.
func (m *Machine) Reset() {
	m.draft = Draft{}
	m.step = StepSelectService
}

// ToggleAdminView flips the admin view and returns the new state. The step
// and draft are left untouched.
func (m *Machine) ToggleAdminView() bool {
	m.adminView = !m.adminView

	return m.adminView
}
