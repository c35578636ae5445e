package dto

import (
	"kasaglow/internal/domains/availability/model"
	"kasaglow/shared/constant"
	"time"
)

type SlotResponse struct {
	Start    string `json:"start"`
	Time     string `json:"time"`
	IsBooked bool   `json:"is_booked"`
}

func (r *SlotResponse) FromModel(model model.TimeSlot) {
	r.Start = model.Start.Format(constant.DateFormat)
	r.Time = model.Start.Format(constant.ClockFormat)
	r.IsBooked = model.IsBooked
}

type SlotsResponse struct {
	Date            string         `json:"date"`
	ServiceID       int            `json:"service_id"`
	DurationMinutes int            `json:"duration_minutes"`
	Slots           []SlotResponse `json:"slots"`
	TotalData       int            `json:"total_data"`
	TotalAvailable  int            `json:"total_available"`
}

func (r *SlotsResponse) FromModels(day time.Time, serviceID, duration int, models []model.TimeSlot) {
	r.Date = day.Format(constant.DayFormat)
	r.ServiceID = serviceID
	r.DurationMinutes = duration
	r.TotalData = len(models)

	r.Slots = make([]SlotResponse, len(models))
	for i, mod := range models {
		r.Slots[i].FromModel(mod)

		if !mod.IsBooked {
			r.TotalAvailable++
		}
	}
}

// BlockSlotRequest takes an hour out of sale. Hour is a pointer so midnight
// still satisfies required.
type BlockSlotRequest struct {
	Date string `json:"date" validate:"required,datetime=2006-01-02"`
	Hour *int   `json:"hour" validate:"required,min=0,max=23"`
}

func (r *BlockSlotRequest) ToModel() model.SlotKey {
	return model.NewSlotKey(r.Date, *r.Hour)
}

type BlockedSlotsResponse struct {
	Slots     []string `json:"slots"`
	TotalData int      `json:"total_data"`
}

func (r *BlockedSlotsResponse) FromModels(keys []model.SlotKey) {
	r.Slots = make([]string, len(keys))
	for i, key := range keys {
		r.Slots[i] = string(key)
	}

	r.TotalData = len(keys)
}
