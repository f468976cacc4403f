//go:build wireinject
// +build wireinject

package di

import (
	"roam/config"
	"roam/infras/jwt"
	"roam/infras/kafka"
	"roam/infras/otel"
	"roam/infras/postgres"
	"roam/infras/razorpay"
	"roam/infras/redis"
	"roam/infras/s3"
	"roam/permissions"
	"roam/shared/cache"
	"roam/transport/http"
	"roam/transport/http/middleware"
	"roam/transport/http/router"

	"github.com/google/wire"

	authService "roam/internal/domains/auth/service"
	bookingRepository "roam/internal/domains/booking/repository"
	bookingService "roam/internal/domains/booking/service"
	catalogRepository "roam/internal/domains/catalog/repository"
	catalogService "roam/internal/domains/catalog/service"
	dashboardRepository "roam/internal/domains/dashboard/repository"
	dashboardService "roam/internal/domains/dashboard/service"
	paymentService "roam/internal/domains/payment/service"
	userRepository "roam/internal/domains/user/repository"
	userService "roam/internal/domains/user/service"

	authHandler "roam/internal/handlers/auth"
	bookingHandler "roam/internal/handlers/booking"
	catalogHandler "roam/internal/handlers/catalog"
	dashboardHandler "roam/internal/handlers/dashboard"
	paymentHandler "roam/internal/handlers/payment"
	userHandler "roam/internal/handlers/user"
)

var configurations = wire.NewSet(
	config.Get,
	permissions.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	redis.New,
	jwt.New,
	s3.New,
	kafka.New,
	razorpay.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthRoleMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var userDomain = wire.NewSet(
	userRepository.New,
	userService.New,
)

var authDomain = wire.NewSet(
	authService.New,
)

var catalogDomain = wire.NewSet(
	catalogRepository.New,
	catalogService.New,
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	bookingService.New,
)

var paymentDomain = wire.NewSet(
	paymentService.New,
)

var dashboardDomain = wire.NewSet(
	dashboardRepository.New,
	dashboardService.New,
)

var domains = wire.NewSet(
	userDomain,
	authDomain,
	catalogDomain,
	bookingDomain,
	paymentDomain,
	dashboardDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	authHandler.New,
	userHandler.New,
	catalogHandler.New,
	bookingHandler.New,
	paymentHandler.New,
	dashboardHandler.New,
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
