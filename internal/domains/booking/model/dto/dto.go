package dto

import (
	"kasaglow/internal/domains/booking/model"
	"kasaglow/shared"
	"kasaglow/shared/constant"
)

type CustomerResponse struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
	Notes   string `json:"notes,omitempty"`
}

func (r *CustomerResponse) FromModel(model model.Customer) {
	r.Name = model.Name
	r.Email = model.Email
	r.Phone = model.Phone
	r.Address = model.Address
	r.Notes = model.Notes
}

type BookingResponse struct {
	ConfirmationID  string           `json:"confirmation_id"`
	ServiceID       int              `json:"service_id"`
	ServiceName     string           `json:"service_name"`
	DurationMinutes int              `json:"duration_minutes"`
	DateTime        string           `json:"date_time"`
	ReservationFee  string           `json:"reservation_fee"`
	PaymentMethod   string           `json:"payment_method,omitempty"`
	Customer        CustomerResponse `json:"customer"`
	CreatedAt       string           `json:"created_at"`
}

func (r *BookingResponse) FromModel(model model.Record) {
	r.ConfirmationID = model.ConfirmationID
	r.ServiceID = model.Service.ID
	r.ServiceName = model.Service.Name
	r.DurationMinutes = model.Service.DurationMinutes
	r.DateTime = model.DateTime.Format(constant.DateFormat)
	r.ReservationFee = model.Service.ReservationFee.String()
	r.PaymentMethod = model.PaymentMethod
	r.Customer.FromModel(model.Customer)
	r.CreatedAt = model.CreatedAt.Format(constant.DateFormat)
}

type GetBookingsResponse struct {
	Bookings  []BookingResponse `json:"bookings"`
	Page      int               `json:"page"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetBookingsResponse) FromModels(models []model.Record, totalData, page, limit int) {
	r.TotalData = totalData
	r.Page = page
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Bookings = make([]BookingResponse, len(models))
	for i, mod := range models {
		r.Bookings[i].FromModel(mod)
	}
}
