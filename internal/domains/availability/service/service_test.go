package service_test

import (
	"context"
	"kasaglow/config"
	"kasaglow/infras/metrics"
	"kasaglow/infras/otel/mocks"
	"kasaglow/internal/domains/availability/model"
	"kasaglow/internal/domains/availability/model/dto"
	"kasaglow/internal/domains/availability/repository"
	"kasaglow/internal/domains/availability/service"
	catalogRepository "kasaglow/internal/domains/catalog/repository"
	catalogService "kasaglow/internal/domains/catalog/service"
	"kasaglow/shared/failure"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAvailability(t *testing.T, start, end int, now time.Time) (service.Availability, repository.Reservations) {
	t.Helper()

	cfg := &config.Config{}
	cfg.Booking.BusinessHours.Start = start
	cfg.Booking.BusinessHours.End = end

	ot := mocks.NewOtel()
	repo := repository.NewEmpty()
	catalog := catalogService.New(catalogRepository.New(), ot)

	return service.NewWithClock(catalog, repo, cfg, metrics.New(), ot, func() time.Time { return now }), repo
}

func TestAvailabilityService_Slots(t *testing.T) {
	ctx := context.Background()
	svc, repo := newAvailability(t, 8, 18, lastWeek)
	require.NoError(t, repo.Block(ctx, model.NewSlotKey("2024-06-10", 10)))

	tests := []struct {
		name      string
		serviceID int
		day       string
		wantCode  int
		wantTotal int
		wantFree  int
	}{
		{name: "standard cleaning", serviceID: 1, day: "2024-06-10", wantTotal: 16, wantFree: 15},
		{name: "post construction", serviceID: 6, day: "2024-06-10", wantTotal: 8, wantFree: 7},
		{name: "unknown service", serviceID: 99, day: "2024-06-10", wantCode: http.StatusNotFound},
		{name: "malformed date", serviceID: 1, day: "10/06/2024", wantCode: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := svc.Slots(ctx, tt.serviceID, tt.day)

			if tt.wantCode != 0 {
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.day, res.Date)
			assert.Equal(t, tt.wantTotal, res.TotalData)
			assert.Equal(t, tt.wantFree, res.TotalAvailable)
			assert.Equal(t, "08:00", res.Slots[0].Time)
		})
	}
}

func TestAvailabilityService_InvalidBusinessHours(t *testing.T) {
	tests := []struct {
		name  string
		start int
		end   int
	}{
		{name: "start after end", start: 18, end: 8},
		{name: "empty day", start: 9, end: 9},
		{name: "past midnight", start: 8, end: 25},
		{name: "negative start", start: -1, end: 18},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _ := newAvailability(t, tt.start, tt.end, lastWeek)

			res, err := svc.Slots(context.Background(), 1, "2024-06-10")
			require.NoError(t, err)
			assert.NotNil(t, res.Slots)
			assert.Empty(t, res.Slots)
			assert.Zero(t, res.TotalData)
			assert.Zero(t, res.TotalAvailable)
		})
	}
}

func TestAvailabilityService_CheckAndReserve(t *testing.T) {
	ctx := context.Background()
	svc, _ := newAvailability(t, 8, 18, lastWeek)

	catalog := catalogService.New(catalogRepository.New(), mocks.NewOtel())
	standard, err := catalog.Lookup(ctx, 1)
	require.NoError(t, err)

	slot, err := svc.Check(ctx, standard, at(june10, 10, 30))
	require.NoError(t, err)
	assert.False(t, slot.IsBooked)

	_, err = svc.Check(ctx, standard, at(june10, 10, 15))
	assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))

	_, err = svc.Check(ctx, standard, at(june10, 17, 0))
	assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))

	require.NoError(t, svc.Reserve(ctx, slot.Start))

	slot, err = svc.Check(ctx, standard, at(june10, 10, 30))
	require.NoError(t, err)
	assert.True(t, slot.IsBooked)

	err = svc.Reserve(ctx, slot.Start)
	assert.Equal(t, http.StatusConflict, failure.GetCode(err))
}

func TestAvailabilityService_BlockSlots(t *testing.T) {
	ctx := context.Background()
	svc, repo := newAvailability(t, 8, 18, lastWeek)

	hour := func(h int) *int { return &h }

	res, err := svc.Blocked(ctx)
	require.NoError(t, err)
	assert.Empty(t, res.Slots)

	res, err = svc.Block(ctx, dto.BlockSlotRequest{Date: "2024-06-10", Hour: hour(14)})
	require.NoError(t, err)
	assert.Equal(t, []string{"2024-06-10-14"}, res.Slots)

	res, err = svc.Block(ctx, dto.BlockSlotRequest{Date: "2024-06-10", Hour: hour(9)})
	require.NoError(t, err)
	assert.Equal(t, []string{"2024-06-10-09", "2024-06-10-14"}, res.Slots)
	assert.Equal(t, 2, res.TotalData)

	res, err = svc.Block(ctx, dto.BlockSlotRequest{Date: "2024-06-10", Hour: hour(9)})
	require.NoError(t, err)
	assert.Equal(t, 2, res.TotalData)

	assert.True(t, repo.IsBooked(time.Date(2024, time.June, 10, 14, 0, 0, 0, time.UTC)))

	slots, err := svc.Slots(ctx, 1, "2024-06-10")
	require.NoError(t, err)
	assert.Equal(t, 14, slots.TotalAvailable)

	tests := []struct {
		name string
		req  dto.BlockSlotRequest
	}{
		{name: "missing hour", req: dto.BlockSlotRequest{Date: "2024-06-10"}},
		{name: "impossible date", req: dto.BlockSlotRequest{Date: "2024-02-30", Hour: hour(9)}},
		{name: "hour past midnight", req: dto.BlockSlotRequest{Date: "2024-06-10", Hour: hour(24)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Block(ctx, tt.req)
			assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
		})
	}
}
