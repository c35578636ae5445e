package service_test

import (
	"context"
	"kasaglow/infras/otel/mocks"
	"kasaglow/internal/domains/catalog/model"
	"kasaglow/internal/domains/catalog/repository"
	"kasaglow/internal/domains/catalog/service"
	"kasaglow/shared/failure"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogService_GetAll(t *testing.T) {
	svc := service.New(repository.New(), mocks.NewOtel())

	res, err := svc.GetAll(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 6, res.TotalData)
	require.Len(t, res.Services, 6)
	assert.Equal(t, "Standard House Cleaning", res.Services[0].Name)
	assert.Equal(t, "25.00", res.Services[0].ReservationFee)
	assert.Equal(t, int64(2500), res.Services[0].ReservationFeeCents)
	assert.Equal(t, "Post-Construction Cleaning", res.Services[5].Name)
	assert.Equal(t, 360, res.Services[5].DurationMinutes)
}

func TestCatalogService_Get(t *testing.T) {
	svc := service.New(repository.New(), mocks.NewOtel())

	tests := []struct {
		name     string
		id       int
		wantName string
		wantCode int
	}{
		{name: "known service", id: 5, wantName: "Apartment Cleaning"},
		{name: "unknown service", id: 42, wantCode: http.StatusNotFound},
		{name: "zero id", id: 0, wantCode: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := svc.Get(context.Background(), tt.id)

			if tt.wantCode != 0 {
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantName, res.Name)
		})
	}
}

func TestCatalogService_LookupCustomCatalog(t *testing.T) {
	repo := repository.NewWithServices([]model.Service{
		{ID: 9, Name: "Window Washing", DurationMinutes: 45, ReservationFee: model.Amount(1250)},
	})
	svc := service.New(repo, mocks.NewOtel())

	got, err := svc.Lookup(context.Background(), 9)
	require.NoError(t, err)
	assert.Equal(t, "12.50", got.ReservationFee.String())
}
