package dto

import (
	"fmt"
	bookingModel "kasaglow/internal/domains/booking/model"
	bookingDto "kasaglow/internal/domains/booking/model/dto"
	catalogDto "kasaglow/internal/domains/catalog/model/dto"
	"kasaglow/internal/domains/wizard/machine"
	"kasaglow/internal/domains/wizard/model"
	"kasaglow/shared/constant"
	"kasaglow/shared/timezone"
	"strings"
	"time"
)

type SelectServiceRequest struct {
	ServiceID int `json:"service_id" validate:"required,gte=1"`
}

type SelectDateTimeRequest struct {
	DateTime string `json:"date_time" validate:"required"`
}

// Parse reads an RFC 3339 instant and moves it to the application timezone.
func (r *SelectDateTimeRequest) Parse() (time.Time, error) {
	t, err := time.Parse(constant.DateFormat, r.DateTime)
	if err != nil {
		return time.Time{}, fmt.Errorf("date_time must be RFC 3339: %w", err)
	}

	return timezone.ToAppTime(t), nil
}

type SubmitDetailsRequest struct {
	Name    string `json:"name"    validate:"required,notblank,max=100"`
	Email   string `json:"email"   validate:"required,email,max=254"`
	Phone   string `json:"phone"   validate:"required,notblank,max=30"`
	Address string `json:"address" validate:"required,notblank,max=255"`
	Notes   string `json:"notes"   validate:"omitempty,max=1000"`
}

func (r *SubmitDetailsRequest) ToModel() bookingModel.Customer {
	return bookingModel.Customer{
		Name:    strings.TrimSpace(r.Name),
		Email:   strings.TrimSpace(r.Email),
		Phone:   strings.TrimSpace(r.Phone),
		Address: strings.TrimSpace(r.Address),
		Notes:   strings.TrimSpace(r.Notes),
	}
}

type DraftResponse struct {
	Service        *catalogDto.ServiceResponse  `json:"service,omitempty"`
	DateTime       string                       `json:"date_time,omitempty"`
	Customer       *bookingDto.CustomerResponse `json:"customer,omitempty"`
	ConfirmationID string                       `json:"confirmation_id,omitempty"`
	Booking        *bookingDto.BookingResponse  `json:"booking,omitempty"`
}

func (r *DraftResponse) FromModel(draft machine.Draft) {
	if draft.Service != nil {
		r.Service = &catalogDto.ServiceResponse{}
		r.Service.FromModel(*draft.Service)
	}

	if draft.DateTime != nil {
		r.DateTime = draft.DateTime.Format(constant.DateFormat)
	}

	if draft.Customer != nil {
		r.Customer = &bookingDto.CustomerResponse{}
		r.Customer.FromModel(*draft.Customer)
	}

	if draft.Record != nil {
		r.ConfirmationID = draft.Record.ConfirmationID
		r.Booking = &bookingDto.BookingResponse{}
		r.Booking.FromModel(*draft.Record)
	}
}

type SessionResponse struct {
	ID           string        `json:"id"`
	Step         int           `json:"step"`
	StepLabel    string        `json:"step_label"`
	Steps        []string      `json:"steps"`
	AdminView    bool          `json:"admin_view"`
	Draft        DraftResponse `json:"draft"`
	PaymentError string        `json:"payment_error,omitempty"`
	CreatedAt    string        `json:"created_at"`
	UpdatedAt    string        `json:"updated_at"`
}

// FromModel must be called with the session locked.
func (r *SessionResponse) FromModel(model *model.Session) {
	r.ID = model.ID
	r.Step = int(model.Machine.Step())
	r.StepLabel = model.Machine.Step().Label()
	r.Steps = machine.Labels()
	r.AdminView = model.Machine.AdminView()
	r.Draft.FromModel(model.Machine.Draft())
	r.PaymentError = model.PaymentError
	r.CreatedAt = model.CreatedAt.Format(constant.DateFormat)
	r.UpdatedAt = model.UpdatedAt.Format(constant.DateFormat)
}
