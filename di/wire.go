//go:build wireinject
// +build wireinject

package di

import (
	"kasaglow/config"
	"kasaglow/infras/metrics"
	"kasaglow/infras/otel"
	"kasaglow/infras/redis"
	"kasaglow/shared/cache"
	"kasaglow/transport/http"
	"kasaglow/transport/http/middleware"
	"kasaglow/transport/http/router"

	availabilityRepository "kasaglow/internal/domains/availability/repository"
	availabilityService "kasaglow/internal/domains/availability/service"
	bookingRepository "kasaglow/internal/domains/booking/repository"
	bookingService "kasaglow/internal/domains/booking/service"
	catalogRepository "kasaglow/internal/domains/catalog/repository"
	catalogService "kasaglow/internal/domains/catalog/service"
	"kasaglow/internal/domains/payment/gateway"
	paymentService "kasaglow/internal/domains/payment/service"
	wizardRepository "kasaglow/internal/domains/wizard/repository"
	wizardService "kasaglow/internal/domains/wizard/service"

	adminHandler "kasaglow/internal/handlers/admin"
	catalogHandler "kasaglow/internal/handlers/catalog"
	paymentHandler "kasaglow/internal/handlers/payment"
	wizardHandler "kasaglow/internal/handlers/wizard"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	otel.New,
	redis.New,
	metrics.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var catalogDomain = wire.NewSet(
	catalogRepository.New,
	catalogService.New,
)

var availabilityDomain = wire.NewSet(
	availabilityRepository.NewToday,
	availabilityService.New,
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	bookingService.NewIssuer,
	bookingService.New,
)

var wizardDomain = wire.NewSet(
	wizardRepository.New,
	wizardService.New,
	wizardService.NewJanitor,
)

var paymentDomain = wire.NewSet(
	gateway.NewSimulatedCard,
	gateway.NewSandboxWallet,
	paymentService.New,
)

var domains = wire.NewSet(
	catalogDomain,
	availabilityDomain,
	bookingDomain,
	wizardDomain,
	paymentDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	catalogHandler.New,
	wizardHandler.New,
	paymentHandler.New,
	adminHandler.New,
	router.New,
)

func InitializeService() *http.HTTP {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		domains,
		routing,
		http.New,
	)

	return &http.HTTP{}
}
