//go:build wireinject
// +build wireinject

package di

import (
	"gomoto/config"
	"gomoto/infras/jwt"
	"gomoto/infras/kafka"
	"gomoto/infras/mail"
	"gomoto/infras/otel"
	"gomoto/infras/postgres"
	"gomoto/infras/redis"
	"gomoto/infras/s3"
	bookingConsumer "gomoto/internal/consumers/booking"
	authService "gomoto/internal/domains/auth/service"
	bookingEvent "gomoto/internal/domains/booking/event"
	bookingRepository "gomoto/internal/domains/booking/repository"
	bookingService "gomoto/internal/domains/booking/service"
	userRepository "gomoto/internal/domains/user/repository"
	userService "gomoto/internal/domains/user/service"
	vehicleRepository "gomoto/internal/domains/vehicle/repository"
	vehicleService "gomoto/internal/domains/vehicle/service"
	authHandler "gomoto/internal/handlers/auth"
	bookingHandler "gomoto/internal/handlers/booking"
	userHandler "gomoto/internal/handlers/user"
	vehicleHandler "gomoto/internal/handlers/vehicle"
	"gomoto/permissions"
	"gomoto/shared/cache"
	"gomoto/transport/http"
	"gomoto/transport/http/middleware"
	"gomoto/transport/http/router"

	"github.com/google/wire"
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

var vehicleDomain = wire.NewSet(
	vehicleRepository.New,
	vehicleService.New,
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	bookingEvent.New,
	bookingService.New,
)

var domains = wire.NewSet(
	userDomain,
	authDomain,
	vehicleDomain,
	bookingDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	authHandler.New,
	userHandler.New,
	vehicleHandler.New,
	bookingHandler.New,
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

func InitializeConsumer() *bookingConsumer.Consumer {
	wire.Build(
		config.Get,
		otel.New,
		kafka.New,
		mail.New,
		bookingConsumer.New,
	)

	return &bookingConsumer.Consumer{}
}
