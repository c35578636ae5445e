package catalog

import (
	"kasaglow/infras/otel"
	availabilityService "kasaglow/internal/domains/availability/service"
	"kasaglow/internal/domains/catalog/service"
	"kasaglow/shared/constant"
	"kasaglow/shared/failure"
	"kasaglow/transport/http/response"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service      service.Catalog
	availability availabilityService.Availability
	otel         otel.Otel
}

func New(service service.Catalog, availability availabilityService.Availability, otel otel.Otel) Handler {
	return Handler{
		service:      service,
		availability: availability,
		otel:         otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/services", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetServices)
		routerGroup.Get("/{id}", handler.GetService)
		routerGroup.Get("/{id}/slots", handler.GetServiceSlots)
	})
}

// GetServices lists the service catalog.
// @Summary Get all services
// @Description Retrieve every cleaning service with its duration and reservation fee.
// @Tags Catalog
// @Produce json
// @Success 200 {object} response.Data[dto.GetServicesResponse]
// @Failure 500 {object} response.Error
// @Router /v1/services [get]
func (handler *Handler) GetServices(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetServices")
	defer scope.End()

	res, err := handler.service.GetAll(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get services")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// GetService retrieves one catalog entry.
// @Summary Get service by ID
// @Tags Catalog
// @Produce json
// @Param id path int true "Service ID"
// @Success 200 {object} response.Data[dto.ServiceResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/services/{id} [get]
func (handler *Handler) GetService(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetService")
	defer scope.End()

	id, err := serviceID(request)
	if err != nil {
		response.WithError(writer, err)

		return
	}

	res, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Int("service_id", id).Msg("failed to get service")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// GetServiceSlots lists the start times offered for a service on a day.
// @Summary Get available time slots
// @Description Candidate start times every 30 minutes that finish, with a 30 minute buffer, before closing.
// @Tags Catalog
// @Produce json
// @Param id path int true "Service ID"
// @Param date query string true "Day formatted as YYYY-MM-DD"
// @Success 200 {object} response.Data[dto.SlotsResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/services/{id}/slots [get]
func (handler *Handler) GetServiceSlots(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetServiceSlots")
	defer scope.End()

	id, err := serviceID(request)
	if err != nil {
		response.WithError(writer, err)

		return
	}

	res, err := handler.availability.Slots(ctx, id, request.URL.Query().Get(constant.RequestParamDate))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Int("service_id", id).Msg("failed to get service slots")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

func serviceID(request *http.Request) (int, error) {
	id, err := strconv.Atoi(chi.URLParam(request, constant.RequestParamID))
	if err != nil || id < 1 {
		return 0, failure.BadRequestFromString("invalid service id") // nolint:wrapcheck
	}

	return id, nil
}
