package admin

import (
	"kasaglow/infras/otel"
	availabilityDto "kasaglow/internal/domains/availability/model/dto"
	availabilityService "kasaglow/internal/domains/availability/service"
	"kasaglow/internal/domains/booking/service"
	"kasaglow/shared/constant"
	gDto "kasaglow/shared/dto"
	"kasaglow/shared/validator"
	"kasaglow/transport/http/response"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service      service.Booking
	availability availabilityService.Availability
	otel         otel.Otel
}

func New(service service.Booking, availability availabilityService.Availability, otel otel.Otel) Handler {
	return Handler{
		service:      service,
		availability: availability,
		otel:         otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/admin/bookings", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetBookings)
		routerGroup.Get("/{id}", handler.GetBookingByID)
	})

	router.Route("/admin/blocked-slots", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetBlockedSlots)
		routerGroup.Post("/", handler.BlockSlot)
	})
}

// GetBookings lists confirmed bookings, most recent first by default.
// @Summary Get all bookings
// @Description Read-only view of the booking log with pagination.
// @Tags Admin
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Success 200 {object} response.Data[dto.GetBookingsResponse]
// @Failure 500 {object} response.Error
// @Router /v1/admin/bookings [get]
func (handler *Handler) GetBookings(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBookings")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(request, true)

	res, err := handler.service.GetAll(ctx, queryParams)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get bookings")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// GetBookingByID retrieves a booking by its confirmation id.
// @Summary Get booking by confirmation ID
// @Tags Admin
// @Produce json
// @Param id path string true "Confirmation ID"
// @Success 200 {object} response.Data[dto.BookingResponse]
// @Failure 404 {object} response.Error
// @Router /v1/admin/bookings/{id} [get]
func (handler *Handler) GetBookingByID(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBookingByID")
	defer scope.End()

	res, err := handler.service.Get(ctx, chi.URLParam(request, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// GetBlockedSlots lists the hours taken out of sale.
// @Summary Get blocked slots
// @Tags Admin
// @Produce json
// @Success 200 {object} response.Data[availabilityDto.BlockedSlotsResponse]
// @Failure 500 {object} response.Error
// @Router /v1/admin/blocked-slots [get]
func (handler *Handler) GetBlockedSlots(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBlockedSlots")
	defer scope.End()

	res, err := handler.availability.Blocked(ctx)
	if err != nil {
		scope.TraceError(err)

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// BlockSlot takes an hour out of sale for every service.
// @Summary Block a slot
// @Tags Admin
// @Accept json
// @Produce json
// @Param request body availabilityDto.BlockSlotRequest true "Block Slot Request"
// @Success 201 {object} response.Data[availabilityDto.BlockedSlotsResponse]
// @Failure 400 {object} response.Error
// @Router /v1/admin/blocked-slots [post]
func (handler *Handler) BlockSlot(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".BlockSlot")
	defer scope.End()

	req := availabilityDto.BlockSlotRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)

		response.WithError(writer, err)

		return
	}

	res, err := handler.availability.Block(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to block slot")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusCreated, res)
}
