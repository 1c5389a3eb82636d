package router

import (
	"github.com/go-chi/chi/v5"

	"github.com/anupam2nd/mylavanya-sub003/internal/handlers/artist"
	"github.com/anupam2nd/mylavanya-sub003/internal/handlers/auth"
	"github.com/anupam2nd/mylavanya-sub003/internal/handlers/banner"
	"github.com/anupam2nd/mylavanya-sub003/internal/handlers/booking"
	"github.com/anupam2nd/mylavanya-sub003/internal/handlers/notification"
	"github.com/anupam2nd/mylavanya-sub003/internal/handlers/otp"
	"github.com/anupam2nd/mylavanya-sub003/internal/handlers/status"
	"github.com/anupam2nd/mylavanya-sub003/internal/handlers/user"
	"github.com/anupam2nd/mylavanya-sub003/internal/handlers/wishlist"
)

type DomainHandlers struct {
	Auth         auth.Handler
	User         user.Handler
	Booking      booking.Handler
	OTP          otp.Handler
	Artist       artist.Handler
	Status       status.Handler
	Wishlist     wishlist.Handler
	Banner       banner.Handler
	Notification notification.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Route("/v1", func(routerGroup chi.Router) {
		r.DomainHandlers.Auth.Router(routerGroup)
		r.DomainHandlers.User.Router(routerGroup)
		r.DomainHandlers.Booking.Router(routerGroup)
		r.DomainHandlers.OTP.Router(routerGroup)
		r.DomainHandlers.Artist.Router(routerGroup)
		r.DomainHandlers.Status.Router(routerGroup)
		r.DomainHandlers.Wishlist.Router(routerGroup)
		r.DomainHandlers.Banner.Router(routerGroup)
		r.DomainHandlers.Notification.Router(routerGroup)
	})
}

func New(domainHandlers DomainHandlers) Router {
	return Router{
		DomainHandlers: domainHandlers,
	}
}
