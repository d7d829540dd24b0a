//go:build wireinject
// +build wireinject

package di

import (
	"github.com/google/wire"

	"reservahub/config"
	"reservahub/infras/jwt"
	"reservahub/infras/kafka"
	"reservahub/infras/otel"
	"reservahub/infras/postgres"
	"reservahub/infras/redis"
	"reservahub/infras/s3"
	"reservahub/internal/availability"
	"reservahub/internal/booking"
	"reservahub/internal/notification"
	"reservahub/shared/cache"
	"reservahub/transport/http"
	"reservahub/transport/http/middleware"
	"reservahub/transport/http/router"

	appointmentRepository "reservahub/internal/domains/appointment/repository"
	appointmentService "reservahub/internal/domains/appointment/service"
	businessRepository "reservahub/internal/domains/business/repository"
	businessService "reservahub/internal/domains/business/service"
	clientRepository "reservahub/internal/domains/client/repository"
	clientService "reservahub/internal/domains/client/service"
	employeeRepository "reservahub/internal/domains/employee/repository"
	employeeService "reservahub/internal/domains/employee/service"
	notificationRepository "reservahub/internal/domains/notification/repository"
	notificationService "reservahub/internal/domains/notification/service"
	serviceRepository "reservahub/internal/domains/service/repository"
	serviceService "reservahub/internal/domains/service/service"

	appointmentHandler "reservahub/internal/handlers/appointment"
	availabilityHandler "reservahub/internal/handlers/availability"
	bookingHandler "reservahub/internal/handlers/booking"
	businessHandler "reservahub/internal/handlers/business"
	clientHandler "reservahub/internal/handlers/client"
	employeeHandler "reservahub/internal/handlers/employee"
	notificationHandler "reservahub/internal/handlers/notification"
	serviceHandler "reservahub/internal/handlers/service"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	redis.New,
	jwt.New,
	kafka.New,
	s3.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var businessDomain = wire.NewSet(
	businessRepository.New,
	businessService.New,
)

var employeeDomain = wire.NewSet(
	employeeRepository.New,
	employeeService.New,
)

var serviceDomain = wire.NewSet(
	serviceRepository.New,
	serviceService.New,
)

var clientDomain = wire.NewSet(
	clientRepository.New,
	clientService.New,
)

var appointmentDomain = wire.NewSet(
	appointmentRepository.New,
	appointmentService.New,
)

var notificationDomain = wire.NewSet(
	notificationRepository.New,
	notificationService.New,
)

var bookingCore = wire.NewSet(
	availability.New,
	notification.NewDispatcher,
	booking.New,
)

var domains = wire.NewSet(
	businessDomain,
	employeeDomain,
	serviceDomain,
	clientDomain,
	appointmentDomain,
	notificationDomain,
	bookingCore,
	wire.Bind(new(availability.SettingsSource), new(businessService.Business)),
	wire.Bind(new(availability.EmployeeSource), new(employeeService.Employee)),
	wire.Bind(new(availability.AppointmentSource), new(appointmentService.Appointment)),
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	businessHandler.New,
	employeeHandler.New,
	serviceHandler.New,
	clientHandler.New,
	appointmentHandler.New,
	availabilityHandler.New,
	bookingHandler.New,
	notificationHandler.New,
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
