package wizard

import (
	"kasaglow/infras/otel"
	"kasaglow/internal/domains/wizard/model/dto"
	"kasaglow/internal/domains/wizard/service"
	"kasaglow/shared/constant"
	"kasaglow/shared/validator"
	"kasaglow/transport/http/response"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Wizard
	otel    otel.Otel
}

func New(service service.Wizard, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

// Router registers the session routes on a group mounted at /sessions.
func (handler *Handler) Router(router chi.Router) {
	router.Post("/", handler.CreateSession)
	router.Get("/{id}", handler.GetSession)
	router.Delete("/{id}", handler.DeleteSession)
	router.Post("/{id}/service", handler.SelectService)
	router.Get("/{id}/slots", handler.GetSlots)
	router.Post("/{id}/datetime", handler.SelectDateTime)
	router.Post("/{id}/details", handler.SubmitDetails)
	router.Post("/{id}/back", handler.Back)
	router.Post("/{id}/reset", handler.Reset)
	router.Post("/{id}/admin-view", handler.ToggleAdminView)
}

// CreateSession starts a booking wizard on the first step.
// @Summary Start a booking session
// @Tags Wizard
// @Produce json
// @Success 201 {object} response.Data[dto.SessionResponse]
// @Failure 500 {object} response.Error
// @Router /v1/sessions [post]
func (handler *Handler) CreateSession(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateSession")
	defer scope.End()

	res, err := handler.service.Create(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create session")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Session created " + res.ID)

	response.WithJSON(writer, http.StatusCreated, res)
}

// GetSession returns the current step and draft.
// @Summary Get a booking session
// @Tags Wizard
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} response.Data[dto.SessionResponse]
// @Failure 404 {object} response.Error
// @Router /v1/sessions/{id} [get]
func (handler *Handler) GetSession(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetSession")
	defer scope.End()

	res, err := handler.service.Get(ctx, chi.URLParam(request, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// DeleteSession discards a session and its draft. Confirmed bookings stay in the log.
// @Summary Delete a booking session
// @Tags Wizard
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} response.Message
// @Failure 404 {object} response.Error
// @Router /v1/sessions/{id} [delete]
func (handler *Handler) DeleteSession(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteSession")
	defer scope.End()

	if err := handler.service.Delete(ctx, chi.URLParam(request, constant.RequestParamID)); err != nil {
		scope.TraceError(err)

		response.WithError(writer, err)

		return
	}

	response.WithMessage(writer, http.StatusOK, "Session deleted successfully")
}

// SelectService chooses the service and moves to date and time selection.
// @Summary Select a service
// @Tags Wizard
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param request body dto.SelectServiceRequest true "Select Service Request"
// @Success 200 {object} response.Data[dto.SessionResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Router /v1/sessions/{id}/service [post]
func (handler *Handler) SelectService(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SelectService")
	defer scope.End()

	req := dto.SelectServiceRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	res, err := handler.service.SelectService(ctx, chi.URLParam(request, constant.RequestParamID), req)
	Respond(writer, res, err)
}

// GetSlots lists the time slots for the session's chosen service.
// @Summary Get time slots for the chosen service
// @Tags Wizard
// @Produce json
// @Param id path string true "Session ID"
// @Param date query string true "Day formatted as YYYY-MM-DD"
// @Success 200 {object} response.Data[availabilityDto.SlotsResponse]
// @Failure 400 {object} response.Error
// @Failure 409 {object} response.Error
// @Router /v1/sessions/{id}/slots [get]
func (handler *Handler) GetSlots(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetSlots")
	defer scope.End()

	res, err := handler.service.Slots(ctx, chi.URLParam(request, constant.RequestParamID), request.URL.Query().Get(constant.RequestParamDate))
	if err != nil {
		scope.TraceError(err)

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// SelectDateTime picks one of the offered slots and moves to the details step.
// @Summary Select a date and time
// @Tags Wizard
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param request body dto.SelectDateTimeRequest true "Select Date Time Request"
// @Success 200 {object} response.Data[dto.SessionResponse]
// @Failure 400 {object} response.Error
// @Failure 409 {object} response.Error
// @Router /v1/sessions/{id}/datetime [post]
func (handler *Handler) SelectDateTime(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SelectDateTime")
	defer scope.End()

	req := dto.SelectDateTimeRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)

		response.WithError(writer, err)

		return
	}

	res, err := handler.service.SelectDateTime(ctx, chi.URLParam(request, constant.RequestParamID), req)
	Respond(writer, res, err)
}

// SubmitDetails records the customer's contact details and moves to payment.
// @Summary Submit customer details
// @Tags Wizard
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param request body dto.SubmitDetailsRequest true "Submit Details Request"
// @Success 200 {object} response.Data[dto.SessionResponse]
// @Failure 400 {object} response.Error
// @Failure 409 {object} response.Error
// @Router /v1/sessions/{id}/details [post]
func (handler *Handler) SubmitDetails(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SubmitDetails")
	defer scope.End()

	req := dto.SubmitDetailsRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)

		response.WithError(writer, err)

		return
	}

	res, err := handler.service.SubmitDetails(ctx, chi.URLParam(request, constant.RequestParamID), req)
	Respond(writer, res, err)
}

// Back returns to the previous step.
// @Summary Go back one step
// @Tags Wizard
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} response.Data[dto.SessionResponse]
// @Failure 409 {object} response.Error
// @Router /v1/sessions/{id}/back [post]
func (handler *Handler) Back(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Back")
	defer scope.End()

	res, err := handler.service.Back(ctx, chi.URLParam(request, constant.RequestParamID))
	Respond(writer, res, err)
}

// Reset clears the draft and returns to the first step.
// @Summary Reset the wizard
// @Tags Wizard
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} response.Data[dto.SessionResponse]
// @Failure 404 {object} response.Error
// @Router /v1/sessions/{id}/reset [post]
func (handler *Handler) Reset(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Reset")
	defer scope.End()

	res, err := handler.service.Reset(ctx, chi.URLParam(request, constant.RequestParamID))
	Respond(writer, res, err)
}

// ToggleAdminView flips the admin view without touching the wizard step.
// @Summary Toggle the admin view
// @Tags Wizard
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} response.Data[dto.SessionResponse]
// @Failure 404 {object} response.Error
// @Router /v1/sessions/{id}/admin-view [post]
func (handler *Handler) ToggleAdminView(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ToggleAdminView")
	defer scope.End()

	res, err := handler.service.ToggleAdminView(ctx, chi.URLParam(request, constant.RequestParamID))
	Respond(writer, res, err)
}

// Respond writes a session view. A rejected transition still carries the
// unchanged session so the client can redraw the current step.
func Respond(writer http.ResponseWriter, res dto.SessionResponse, err error) {
	if err != nil {
		if res.ID == constant.Empty {
			response.WithError(writer, err)

			return
		}

		response.WithErrorData(writer, err, res)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

