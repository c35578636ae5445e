package payment

import (
	"kasaglow/infras/otel"
	"kasaglow/internal/domains/payment/model/dto"
	"kasaglow/internal/domains/payment/service"
	"kasaglow/internal/handlers/wizard"
	"kasaglow/shared/constant"
	"kasaglow/shared/validator"
	"kasaglow/transport/http/response"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Payment
	otel    otel.Otel
}

func New(service service.Payment, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

// Router registers the payment routes on a group mounted at /sessions.
func (handler *Handler) Router(router chi.Router) {
	router.Route("/{id}/payment", func(routerGroup chi.Router) {
		routerGroup.Post("/card", handler.PayByCard)
		routerGroup.Post("/wallet/orders", handler.CreateWalletOrder)
		routerGroup.Post("/wallet/orders/{orderID}/approve", handler.ApproveWalletOrder)
		routerGroup.Post("/wallet/errors", handler.ReportWalletError)
	})
}

// PayByCard pays the reservation fee with the simulated card flow.
// @Summary Pay by card
// @Description Validates the card form, waits for the simulated processor and confirms the booking.
// @Tags Payment
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param request body dto.CardPaymentRequest true "Card Payment Request"
// @Success 200 {object} response.Data[wizardDto.SessionResponse]
// @Failure 400 {object} response.Error
// @Failure 402 {object} response.Error
// @Failure 409 {object} response.Error
// @Router /v1/sessions/{id}/payment/card [post]
func (handler *Handler) PayByCard(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".PayByCard")
	defer scope.End()

	req := dto.CardPaymentRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Warn().Err(err).Msg("invalid card details")

		response.WithError(writer, err)

		return
	}

	res, err := handler.service.PayByCard(ctx, chi.URLParam(request, constant.RequestParamID), req)
	if err != nil {
		scope.TraceError(err)
	}

	wizard.Respond(writer, res, err)
}

// CreateWalletOrder opens a wallet checkout for the reservation fee.
// @Summary Create a wallet order
// @Tags Payment
// @Produce json
// @Param id path string true "Session ID"
// @Success 201 {object} response.Data[dto.OrderResponse]
// @Failure 409 {object} response.Error
// @Failure 503 {object} response.Error
// @Router /v1/sessions/{id}/payment/wallet/orders [post]
func (handler *Handler) CreateWalletOrder(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateWalletOrder")
	defer scope.End()

	res, err := handler.service.CreateWalletOrder(ctx, chi.URLParam(request, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create wallet order")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusCreated, res)
}

// ApproveWalletOrder captures an approved wallet order and confirms the booking.
// @Summary Approve a wallet order
// @Tags Payment
// @Produce json
// @Param id path string true "Session ID"
// @Param orderID path string true "Order ID"
// @Success 200 {object} response.Data[wizardDto.SessionResponse]
// @Failure 402 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Router /v1/sessions/{id}/payment/wallet/orders/{orderID}/approve [post]
func (handler *Handler) ApproveWalletOrder(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ApproveWalletOrder")
	defer scope.End()

	res, err := handler.service.ApproveWalletOrder(
		ctx,
		chi.URLParam(request, constant.RequestParamID),
		chi.URLParam(request, constant.RequestParamOrderID),
	)
	if err != nil {
		scope.TraceError(err)
	}

	wizard.Respond(writer, res, err)
}

// ReportWalletError records a wallet checkout error on the session.
// @Summary Report a wallet error
// @Tags Payment
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param request body dto.WalletErrorRequest true "Wallet Error Request"
// @Success 200 {object} response.Data[wizardDto.SessionResponse]
// @Failure 400 {object} response.Error
// @Failure 409 {object} response.Error
// @Router /v1/sessions/{id}/payment/wallet/errors [post]
func (handler *Handler) ReportWalletError(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ReportWalletError")
	defer scope.End()

	req := dto.WalletErrorRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)

		response.WithError(writer, err)

		return
	}

	res, err := handler.service.ReportWalletError(ctx, chi.URLParam(request, constant.RequestParamID), req)
	wizard.Respond(writer, res, err)
}
