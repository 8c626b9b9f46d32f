//go:build wireinject
// +build wireinject

package di

import (
	"campground/config"
	"campground/infras/jwt"
	"campground/infras/kafka"
	"campground/infras/otel"
	"campground/infras/postgres"
	"campground/infras/redis"
	"campground/permissions"
	"campground/shared/cache"
	"campground/transport/http"
	"campground/transport/http/middleware"
	"campground/transport/http/router"

	campsiteRepository "campground/internal/domains/campsite/repository"
	campsiteService "campground/internal/domains/campsite/service"
	categoryRepository "campground/internal/domains/category/repository"
	categoryService "campground/internal/domains/category/service"
	reservationRepository "campground/internal/domains/reservation/repository"
	reservationService "campground/internal/domains/reservation/service"

	campsiteHandler "campground/internal/handlers/campsite"
	categoryHandler "campground/internal/handlers/category"
	reservationHandler "campground/internal/handlers/reservation"

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
	kafka.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthRoleMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var categoryDomain = wire.NewSet(
	categoryRepository.New,
	categoryService.New,
)

var campsiteDomain = wire.NewSet(
	campsiteRepository.New,
	campsiteService.New,
)

var reservationDomain = wire.NewSet(
	reservationRepository.New,
	reservationService.New,
)

var domains = wire.NewSet(
	categoryDomain,
	campsiteDomain,
	reservationDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	categoryHandler.New,
	campsiteHandler.New,
	reservationHandler.New,
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
