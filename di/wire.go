//go:build wireinject
// +build wireinject

package di

import (
	"github.com/google/wire"

	"github.com/anupam2nd/mylavanya-sub003/config"
	"github.com/anupam2nd/mylavanya-sub003/infras/jwt"
	"github.com/anupam2nd/mylavanya-sub003/infras/kafka"
	"github.com/anupam2nd/mylavanya-sub003/infras/otel"
	"github.com/anupam2nd/mylavanya-sub003/infras/postgres"
	"github.com/anupam2nd/mylavanya-sub003/infras/redis"
	"github.com/anupam2nd/mylavanya-sub003/infras/s3"
	"github.com/anupam2nd/mylavanya-sub003/jobs"
	"github.com/anupam2nd/mylavanya-sub003/permissions"
	"github.com/anupam2nd/mylavanya-sub003/shared/cache"
	"github.com/anupam2nd/mylavanya-sub003/transport/http"
	"github.com/anupam2nd/mylavanya-sub003/transport/http/middleware"
	"github.com/anupam2nd/mylavanya-sub003/transport/http/router"

	artistRepository "github.com/anupam2nd/mylavanya-sub003/internal/domains/artist/repository"
	artistService "github.com/anupam2nd/mylavanya-sub003/internal/domains/artist/service"
	authService "github.com/anupam2nd/mylavanya-sub003/internal/domains/auth/service"
	bannerRepository "github.com/anupam2nd/mylavanya-sub003/internal/domains/banner/repository"
	bannerService "github.com/anupam2nd/mylavanya-sub003/internal/domains/banner/service"
	bookingRepository "github.com/anupam2nd/mylavanya-sub003/internal/domains/booking/repository"
	bookingService "github.com/anupam2nd/mylavanya-sub003/internal/domains/booking/service"
	notificationRepository "github.com/anupam2nd/mylavanya-sub003/internal/domains/notification/repository"
	notificationService "github.com/anupam2nd/mylavanya-sub003/internal/domains/notification/service"
	otpRepository "github.com/anupam2nd/mylavanya-sub003/internal/domains/otp/repository"
	otpService "github.com/anupam2nd/mylavanya-sub003/internal/domains/otp/service"
	statusRepository "github.com/anupam2nd/mylavanya-sub003/internal/domains/status/repository"
	statusService "github.com/anupam2nd/mylavanya-sub003/internal/domains/status/service"
	userRepository "github.com/anupam2nd/mylavanya-sub003/internal/domains/user/repository"
	userService "github.com/anupam2nd/mylavanya-sub003/internal/domains/user/service"
	wishlistRepository "github.com/anupam2nd/mylavanya-sub003/internal/domains/wishlist/repository"
	wishlistService "github.com/anupam2nd/mylavanya-sub003/internal/domains/wishlist/service"

	artistHandler "github.com/anupam2nd/mylavanya-sub003/internal/handlers/artist"
	authHandler "github.com/anupam2nd/mylavanya-sub003/internal/handlers/auth"
	bannerHandler "github.com/anupam2nd/mylavanya-sub003/internal/handlers/banner"
	bookingHandler "github.com/anupam2nd/mylavanya-sub003/internal/handlers/booking"
	notificationHandler "github.com/anupam2nd/mylavanya-sub003/internal/handlers/notification"
	otpHandler "github.com/anupam2nd/mylavanya-sub003/internal/handlers/otp"
	statusHandler "github.com/anupam2nd/mylavanya-sub003/internal/handlers/status"
	userHandler "github.com/anupam2nd/mylavanya-sub003/internal/handlers/user"
	wishlistHandler "github.com/anupam2nd/mylavanya-sub003/internal/handlers/wishlist"
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

var artistDomain = wire.NewSet(
	artistRepository.New,
	artistService.New,
)

var statusDomain = wire.NewSet(
	statusRepository.New,
	statusService.New,
)

var notificationDomain = wire.NewSet(
	notificationRepository.New,
	notificationService.New,
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	bookingService.New,
)

var otpDomain = wire.NewSet(
	otpRepository.New,
	otpService.New,
)

var wishlistDomain = wire.NewSet(
	wishlistRepository.New,
	wishlistService.New,
)

var bannerDomain = wire.NewSet(
	bannerRepository.New,
	bannerService.New,
)

var domains = wire.NewSet(
	userDomain,
	authDomain,
	artistDomain,
	statusDomain,
	notificationDomain,
	bookingDomain,
	otpDomain,
	wishlistDomain,
	bannerDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	authHandler.New,
	userHandler.New,
	bookingHandler.New,
	otpHandler.New,
	artistHandler.New,
	statusHandler.New,
	wishlistHandler.New,
	bannerHandler.New,
	notificationHandler.New,
	router.New,
)

func InitializeApp() *App {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		domains,
		routing,
		http.New,
		jobs.NewScheduler,
		wire.Struct(new(App), "*"),
	)

	return &App{}
}
