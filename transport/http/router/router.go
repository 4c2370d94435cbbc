package router

import (
	"net/http"
	"tourcrm/internal/handlers/auth"
	"tourcrm/internal/handlers/client"
	"tourcrm/internal/handlers/communication"
	"tourcrm/internal/handlers/destination"
	"tourcrm/internal/handlers/provider"
	"tourcrm/internal/handlers/reservation"
	"tourcrm/internal/handlers/tourpackage"
	"tourcrm/internal/handlers/user"

	"github.com/go-chi/chi/v5"
)

type DomainHandlers struct {
	Auth          auth.Handler
	User          user.Handler
	Client        client.Handler
	Destination   destination.Handler
	Package       tourpackage.Handler
	Provider      provider.Handler
	Reservation   reservation.Handler
	Communication communication.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
}

// SetupRoutes mounts every domain under /api. index answers /api itself.
func (r *Router) SetupRoutes(router chi.Router, index http.HandlerFunc) {
	router.Route("/api", func(routerGroup chi.Router) {
		routerGroup.Get("/", index)

		r.DomainHandlers.Destination.Router(routerGroup)
		r.DomainHandlers.Provider.Router(routerGroup)
		r.DomainHandlers.Package.Router(routerGroup)
		r.DomainHandlers.Client.Router(routerGroup)
		r.DomainHandlers.Reservation.Router(routerGroup)
		r.DomainHandlers.Communication.Router(routerGroup)
		r.DomainHandlers.User.Router(routerGroup)
		r.DomainHandlers.Auth.Router(routerGroup)
	})
}

func New(domainHandlers DomainHandlers) Router {
	return Router{
		DomainHandlers: domainHandlers,
	}
}
