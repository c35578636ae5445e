package router

import (
	"kasaglow/infras/metrics"
	"kasaglow/internal/handlers/admin"
	"kasaglow/internal/handlers/catalog"
	"kasaglow/internal/handlers/payment"
	"kasaglow/internal/handlers/wizard"
	"net/http"

	"github.com/go-chi/chi/v5"
)

type DomainHandlers struct {
	Catalog catalog.Handler
	Wizard  wizard.Handler
	Payment payment.Handler
	Admin   admin.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
	Metrics        *metrics.Booking
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Method(http.MethodGet, "/metrics", r.Metrics.Handler())

	router.Route("/v1", func(routerGroup chi.Router) {
		r.DomainHandlers.Catalog.Router(routerGroup)

		// wizard and payment share one subrouter so their {id} routes do not collide
		routerGroup.Route("/sessions", func(sessions chi.Router) {
			r.DomainHandlers.Wizard.Router(sessions)
			r.DomainHandlers.Payment.Router(sessions)
		})

		r.DomainHandlers.Admin.Router(routerGroup)
	})
}

func New(domainHandlers DomainHandlers, metrics *metrics.Booking) Router {
	return Router{
		DomainHandlers: domainHandlers,
		Metrics:        metrics,
	}
}
