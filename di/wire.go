//go:build wireinject
// +build wireinject

package di

import (
	"tourcrm/config"
	"tourcrm/infras/otel"
	"tourcrm/infras/postgres"
	"tourcrm/infras/redis"
	"tourcrm/shared/cache"
	"tourcrm/transport/http"
	"tourcrm/transport/http/middleware"
	"tourcrm/transport/http/router"

	"github.com/google/wire"

	authService "tourcrm/internal/domains/auth/service"
	clientRepository "tourcrm/internal/domains/client/repository"
	clientService "tourcrm/internal/domains/client/service"
	communicationRepository "tourcrm/internal/domains/communication/repository"
	communicationService "tourcrm/internal/domains/communication/service"
	destinationRepository "tourcrm/internal/domains/destination/repository"
	destinationService "tourcrm/internal/domains/destination/service"
	providerRepository "tourcrm/internal/domains/provider/repository"
	providerService "tourcrm/internal/domains/provider/service"
	reservationRepository "tourcrm/internal/domains/reservation/repository"
	reservationService "tourcrm/internal/domains/reservation/service"
	packageRepository "tourcrm/internal/domains/tourpackage/repository"
	packageService "tourcrm/internal/domains/tourpackage/service"
	userRepository "tourcrm/internal/domains/user/repository"
	userService "tourcrm/internal/domains/user/service"

	authHandler "tourcrm/internal/handlers/auth"
	clientHandler "tourcrm/internal/handlers/client"
	communicationHandler "tourcrm/internal/handlers/communication"
	destinationHandler "tourcrm/internal/handlers/destination"
	providerHandler "tourcrm/internal/handlers/provider"
	reservationHandler "tourcrm/internal/handlers/reservation"
	packageHandler "tourcrm/internal/handlers/tourpackage"
	userHandler "tourcrm/internal/handlers/user"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	redis.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var userDomain = wire.NewSet(
	userRepository.New,
	userService.New,
	authService.New,
)

var catalogDomain = wire.NewSet(
	destinationRepository.New,
	destinationService.New,
	packageRepository.New,
	packageService.New,
	providerRepository.New,
	providerService.New,
)

var customerDomain = wire.NewSet(
	clientRepository.New,
	clientService.New,
	reservationRepository.New,
	reservationService.New,
	communicationRepository.New,
	communicationService.New,
)

var domains = wire.NewSet(
	userDomain,
	catalogDomain,
	customerDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	authHandler.New,
	userHandler.New,
	clientHandler.New,
	destinationHandler.New,
	packageHandler.New,
	providerHandler.New,
	reservationHandler.New,
	communicationHandler.New,
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
