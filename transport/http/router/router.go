package router

import (
	"github.com/go-chi/chi/v5"

	"reservahub/internal/handlers/appointment"
	"reservahub/internal/handlers/availability"
	"reservahub/internal/handlers/booking"
	"reservahub/internal/handlers/business"
	"reservahub/internal/handlers/client"
	"reservahub/internal/handlers/employee"
	"reservahub/internal/handlers/notification"
	"reservahub/internal/handlers/service"
)

type DomainHandlers struct {
	Business     business.Handler
	Employee     employee.Handler
	Service      service.Handler
	Client       client.Handler
	Appointment  appointment.Handler
	Availability availability.Handler
	Booking      booking.Handler
	Notification notification.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Route("/v1", func(routerGroup chi.Router) {
		r.DomainHandlers.Business.Router(routerGroup)
		r.DomainHandlers.Employee.Router(routerGroup)
		r.DomainHandlers.Service.Router(routerGroup)
		r.DomainHandlers.Client.Router(routerGroup)
		r.DomainHandlers.Appointment.Router(routerGroup)
		r.DomainHandlers.Availability.Router(routerGroup)
		r.DomainHandlers.Booking.Router(routerGroup)
		r.DomainHandlers.Notification.Router(routerGroup)
	})
}

func New(domainHandlers DomainHandlers) Router {
	return Router{
		DomainHandlers: domainHandlers,
	}
}
