package dto

import (
	"kasaglow/internal/domains/catalog/model"
)

type ServiceResponse struct {
	ID                  int    `json:"id"`
	Name                string `json:"name"`
	Description         string `json:"description"`
	DurationMinutes     int    `json:"duration_minutes"`
	ReservationFee      string `json:"reservation_fee"`
	ReservationFeeCents int64  `json:"reservation_fee_cents"`
}

func (r *ServiceResponse) FromModel(model model.Service) {
	r.ID = model.ID
	r.Name = model.Name
	r.Description = model.Description
	r.DurationMinutes = model.DurationMinutes
	r.ReservationFee = model.ReservationFee.String()
	r.ReservationFeeCents = int64(model.ReservationFee)
}

type GetServicesResponse struct {
	Services  []ServiceResponse `json:"services"`
	TotalData int               `json:"total_data"`
}

func (r *GetServicesResponse) FromModels(models []model.Service) {
	r.TotalData = len(models)

	r.Services = make([]ServiceResponse, len(models))
	for i, mod := range models {
		r.Services[i].FromModel(mod)
	}
}
