package service_test

import (
	"context"
	"errors"
	"kasaglow/config"
	"kasaglow/infras/metrics"
	"kasaglow/infras/otel/mocks"
	availabilityRepository "kasaglow/internal/domains/availability/repository"
	availabilityService "kasaglow/internal/domains/availability/service"
	bookingMocks "kasaglow/internal/domains/booking/mocks"
	"kasaglow/internal/domains/booking/model"
	"kasaglow/internal/domains/booking/repository"
	"kasaglow/internal/domains/booking/service"
	catalogModel "kasaglow/internal/domains/catalog/model"
	catalogRepository "kasaglow/internal/domains/catalog/repository"
	catalogService "kasaglow/internal/domains/catalog/service"
	gDto "kasaglow/shared/dto"
	"kasaglow/shared/failure"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var (
	deep = catalogModel.Service{ID: 2, Name: "Deep Cleaning", DurationMinutes: 240, ReservationFee: catalogModel.Dollars(50)}
	jane = model.Customer{Name: "Jane Doe", Email: "jane@example.com", Phone: "555-0100", Address: "1 Main St"}
)

func pendingAt(hour int) model.Pending {
	return model.Pending{
		Service:  deep,
		DateTime: time.Date(2030, time.June, 10, hour, 0, 0, 0, time.UTC),
		Customer: jane,
	}
}

func newBooking(t *testing.T, repo repository.Log, reserve bool) service.Booking {
	t.Helper()

	cfg := &config.Config{}
	cfg.Booking.BusinessHours.Start = 8
	cfg.Booking.BusinessHours.End = 18
	cfg.Booking.ReserveConfirmed = reserve

	ot := mocks.NewOtel()
	catalog := catalogService.New(catalogRepository.New(), ot)
	availability := availabilityService.New(catalog, availabilityRepository.NewEmpty(), cfg, metrics.New(), ot)
	issuer := service.NewIssuerWithClock("KSG", time.Now)

	return service.New(repo, availability, issuer, cfg, metrics.New(), ot)
}

func TestBookingService_Finalize(t *testing.T) {
	ctx := context.Background()
	repo := repository.New()
	svc := newBooking(t, repo, true)

	first, err := svc.Finalize(ctx, pendingAt(9), "card")
	require.NoError(t, err)
	assert.NotEmpty(t, first.ConfirmationID)
	assert.Equal(t, "card", first.PaymentMethod)
	assert.Equal(t, deep, first.Service)

	second, err := svc.Finalize(ctx, pendingAt(11), "wallet")
	require.NoError(t, err)
	assert.NotEqual(t, first.ConfirmationID, second.ConfirmationID)

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	_, err = svc.Finalize(ctx, pendingAt(9), "card")
	assert.Equal(t, http.StatusConflict, failure.GetCode(err))

	count, err = repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestBookingService_FinalizeWithoutReservation(t *testing.T) {
	ctx := context.Background()
	svc := newBooking(t, repository.New(), false)

	_, err := svc.Finalize(ctx, pendingAt(9), "card")
	require.NoError(t, err)

	_, err = svc.Finalize(ctx, pendingAt(9), "card")
	require.NoError(t, err)
}

func TestBookingService_FinalizeIncomplete(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := bookingMocks.NewMockLog(ctrl)
	svc := newBooking(t, repo, true)

	tests := []struct {
		name    string
		pending model.Pending
	}{
		{name: "missing service", pending: model.Pending{DateTime: time.Now(), Customer: jane}},
		{name: "missing date", pending: model.Pending{Service: deep, Customer: jane}},
		{name: "missing customer", pending: model.Pending{Service: deep, DateTime: time.Now()}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Finalize(context.Background(), tt.pending, "card")
			assert.Equal(t, http.StatusConflict, failure.GetCode(err))
		})
	}
}

func TestBookingService_FinalizeAppendError(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := bookingMocks.NewMockLog(ctrl)
	svc := newBooking(t, repo, false)

	repo.EXPECT().Append(gomock.Any(), gomock.Any()).Return(errors.New("disk full"))

	res, err := svc.Finalize(context.Background(), pendingAt(9), "card")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to append booking")
	assert.Empty(t, res.ConfirmationID)
}

func TestBookingService_GetAll(t *testing.T) {
	ctx := context.Background()
	repo := repository.New()
	svc := newBooking(t, repo, false)

	var ids []string
	for hour := 8; hour < 13; hour++ {
		record, err := svc.Finalize(ctx, pendingAt(hour), "card")
		require.NoError(t, err)

		ids = append(ids, record.ConfirmationID)
	}

	tests := []struct {
		name      string
		params    gDto.QueryParams
		wantIDs   []string
		wantPages int
	}{
		{
			name:      "most recent first",
			params:    gDto.QueryParams{Page: 1, Limit: 10, SortDir: gDto.SortDirDesc},
			wantIDs:   []string{ids[4], ids[3], ids[2], ids[1], ids[0]},
			wantPages: 1,
		},
		{
			name:      "second page",
			params:    gDto.QueryParams{Page: 2, Limit: 2, SortDir: gDto.SortDirDesc},
			wantIDs:   []string{ids[2], ids[1]},
			wantPages: 3,
		},
		{
			name:      "oldest first",
			params:    gDto.QueryParams{Page: 1, Limit: 2, SortDir: gDto.SortDirAsc},
			wantIDs:   []string{ids[0], ids[1]},
			wantPages: 3,
		},
		{
			name:      "page past the end",
			params:    gDto.QueryParams{Page: 9, Limit: 2},
			wantIDs:   []string{},
			wantPages: 3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := svc.GetAll(ctx, tt.params)
			require.NoError(t, err)

			got := make([]string, len(res.Bookings))
			for i, booking := range res.Bookings {
				got[i] = booking.ConfirmationID
			}

			assert.Equal(t, tt.wantIDs, got)
			assert.Equal(t, 5, res.TotalData)
			assert.Equal(t, tt.wantPages, res.TotalPage)
		})
	}
}

func TestBookingService_Get(t *testing.T) {
	ctx := context.Background()
	svc := newBooking(t, repository.New(), false)

	record, err := svc.Finalize(ctx, pendingAt(10), "wallet")
	require.NoError(t, err)

	res, err := svc.Get(ctx, record.ConfirmationID)
	require.NoError(t, err)
	assert.Equal(t, "Deep Cleaning", res.ServiceName)
	assert.Equal(t, "50.00", res.ReservationFee)
	assert.Equal(t, "Jane Doe", res.Customer.Name)

	_, err = svc.Get(ctx, "KSG-0")
	assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
}
