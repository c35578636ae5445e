package repository

import (
	"context"
	"kasaglow/internal/domains/catalog/model"
)

type Catalog interface {
	GetAll(ctx context.Context) ([]model.Service, error)
	Get(ctx context.Context, id int) (model.Service, error)
}

type repositoryImpl struct {
	services []model.Service
}

// New returns the fixed service catalog offered by the business.
func New() Catalog {
	return NewWithServices(DefaultServices())
}

func NewWithServices(services []model.Service) Catalog {
	return &repositoryImpl{services: append([]model.Service(nil), services...)}
}

func DefaultServices() []model.Service {
	return []model.Service{
		{
			ID:              1,
			Name:            "Standard House Cleaning",
			Description:     "A thorough cleaning of all standard living areas, kitchens, and bathrooms.",
			DurationMinutes: 120,
			ReservationFee:  model.Dollars(25),
		},
		{
			ID:              2,
			Name:            "Deep Cleaning",
			Description:     "An intensive, detailed cleaning perfect for spring cleaning or special occasions.",
			DurationMinutes: 240,
			ReservationFee:  model.Dollars(50),
		},
		{
			ID:              3,
			Name:            "Office Cleaning",
			Description:     "Keep your workspace productive and professional with our tailored office cleaning services.",
			DurationMinutes: 180,
			ReservationFee:  model.Dollars(40),
		},
		{
			ID:              4,
			Name:            "Move-In/Move-Out Cleaning",
			Description:     "Ensure a spotless transition for your new or old home. Ready for inspection.",
			DurationMinutes: 300,
			ReservationFee:  model.Dollars(60),
		},
		{
			ID:              5,
			Name:            "Apartment Cleaning",
			Description:     "Specialized cleaning for apartments and condos, focusing on maximizing smaller spaces.",
			DurationMinutes: 90,
			ReservationFee:  model.Dollars(20),
		},
		{
			ID:              6,
			Name:            "Post-Construction Cleaning",
			Description:     "We handle the dust and debris after construction, leaving your new space immaculate.",
			DurationMinutes: 360,
			ReservationFee:  model.Dollars(75),
		},
	}
}

func (r *repositoryImpl) GetAll(_ context.Context) ([]model.Service, error) {
	return append([]model.Service(nil), r.services...), nil
}

// Get returns the zero Service when id is unknown.
func (r *repositoryImpl) Get(_ context.Context, id int) (model.Service, error) {
	for _, svc := range r.services {
		if svc.ID == id {
			return svc, nil
		}
	}

	return model.Service{}, nil
}
