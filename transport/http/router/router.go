package router

import (
	"gomoto/internal/handlers/auth"
	"gomoto/internal/handlers/booking"
	"gomoto/internal/handlers/user"
	"gomoto/internal/handlers/vehicle"

	"github.com/go-chi/chi/v5"
)

type DomainHandlers struct {
	Auth    auth.Handler
	User    user.Handler
	Vehicle vehicle.Handler
	Booking booking.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
}

func New(domainHandlers DomainHandlers) Router {
	return Router{
		DomainHandlers: domainHandlers,
	}
}

// SetupRoutes mounts every domain under /v1.
func (r *Router) SetupRoutes(router chi.Router) {
	router.Route("/v1", func(routerGroup chi.Router) {
		r.DomainHandlers.Auth.Router(routerGroup)
		r.DomainHandlers.User.Router(routerGroup)
		r.DomainHandlers.Vehicle.Router(routerGroup)
		r.DomainHandlers.Booking.Router(routerGroup)
	})
}
