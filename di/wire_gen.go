// Code generated by Wire. DO NOT EDIT.

//go:generate go run -mod=mod github.com/google/wire/cmd/wire
//go:build !wireinject
// +build !wireinject

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
	repository5 "reservahub/internal/domains/appointment/repository"
	service6 "reservahub/internal/domains/appointment/service"
	"reservahub/internal/domains/business/repository"
	"reservahub/internal/domains/business/service"
	repository4 "reservahub/internal/domains/client/repository"
	service5 "reservahub/internal/domains/client/service"
	repository2 "reservahub/internal/domains/employee/repository"
	service2 "reservahub/internal/domains/employee/service"
	repository6 "reservahub/internal/domains/notification/repository"
	service7 "reservahub/internal/domains/notification/service"
	repository3 "reservahub/internal/domains/service/repository"
	service3 "reservahub/internal/domains/service/service"
	"reservahub/internal/handlers/appointment"
	availability2 "reservahub/internal/handlers/availability"
	booking2 "reservahub/internal/handlers/booking"
	"reservahub/internal/handlers/business"
	"reservahub/internal/handlers/client"
	"reservahub/internal/handlers/employee"
	notification2 "reservahub/internal/handlers/notification"
	service4 "reservahub/internal/handlers/service"
	"reservahub/internal/notification"
	"reservahub/shared/cache"
	"reservahub/transport/http"
	"reservahub/transport/http/middleware"
	"reservahub/transport/http/router"
)

// Injectors from wire.go:

func InitializeService() *http.HTTP {
	configConfig := config.Get()
	connection := postgres.New(configConfig)
	otelOtel := otel.New(configConfig)
	settings := repository.New(connection, otelOtel)
	redisClient := redis.New(configConfig)
	redisCache := cache.NewRedisCache(redisClient, otelOtel)
	s3S3 := s3.New(configConfig, otelOtel)
	serviceBusiness := service.New(settings, configConfig, redisCache, s3S3, otelOtel)
	jwtJWT := jwt.New(configConfig)
	auth := middleware.NewAuthMiddleware(jwtJWT, otelOtel)
	handler := business.New(serviceBusiness, auth, otelOtel)
	repositoryEmployee := repository2.New(connection, otelOtel)
	serviceEmployee := service2.New(repositoryEmployee, serviceBusiness, configConfig, redisCache, otelOtel)
	employeeHandler := employee.New(serviceEmployee, auth, otelOtel)
	repositoryService := repository3.New(connection, otelOtel)
	serviceService := service3.New(repositoryService, configConfig, redisCache, otelOtel)
	serviceHandler := service4.New(serviceService, auth, otelOtel)
	repositoryClient := repository4.New(connection, otelOtel)
	serviceClient := service5.New(repositoryClient, configConfig, redisCache, otelOtel)
	clientHandler := client.New(serviceClient, auth, otelOtel)
	repositoryAppointment := repository5.New(connection, otelOtel)
	serviceAppointment := service6.New(repositoryAppointment, configConfig, otelOtel)
	appointmentHandler := appointment.New(serviceAppointment, auth, otelOtel)
	engine := availability.New(serviceBusiness, serviceEmployee, serviceAppointment, configConfig, otelOtel)
	availabilityHandler := availability2.New(engine, serviceService, auth, otelOtel)
	repositoryNotification := repository6.New(connection, otelOtel)
	serviceNotification := service7.New(repositoryNotification, configConfig, otelOtel)
	dispatcher := notification.NewDispatcher(configConfig, otelOtel)
	kafkaClient := kafka.New(configConfig)
	orchestrator := booking.New(engine, serviceAppointment, serviceService, serviceClient, serviceBusiness, serviceNotification, dispatcher, kafkaClient, configConfig, otelOtel)
	bookingHandler := booking2.New(orchestrator, auth, otelOtel)
	notificationHandler := notification2.New(serviceNotification, auth, otelOtel)
	domainHandlers := router.DomainHandlers{
		Business:     handler,
		Employee:     employeeHandler,
		Service:      serviceHandler,
		Client:       clientHandler,
		Appointment:  appointmentHandler,
		Availability: availabilityHandler,
		Booking:      bookingHandler,
		Notification: notificationHandler,
	}
	routerRouter := router.New(domainHandlers)
	appMiddleware := middleware.NewAppMiddleware(otelOtel, configConfig, redisCache)
	httpHTTP := http.New(configConfig, routerRouter, appMiddleware)
	return httpHTTP
}

// wire.go:

var configurations = wire.NewSet(config.Get)

var infrastructures = wire.NewSet(postgres.New, otel.New, redis.New, jwt.New, kafka.New, s3.New)

var middlewares = wire.NewSet(middleware.NewAppMiddleware, middleware.NewAuthMiddleware)

var sharedHelpers = wire.NewSet(cache.NewRedisCache)

var businessDomain = wire.NewSet(repository.New, service.New)

var employeeDomain = wire.NewSet(repository2.New, service2.New)

var serviceDomain = wire.NewSet(repository3.New, service3.New)

var clientDomain = wire.NewSet(repository4.New, service5.New)

var appointmentDomain = wire.NewSet(repository5.New, service6.New)

var notificationDomain = wire.NewSet(repository6.New, service7.New)

var bookingCore = wire.NewSet(availability.New, notification.NewDispatcher, booking.New)

var domains = wire.NewSet(
	businessDomain,
	employeeDomain,
	serviceDomain,
	clientDomain,
	appointmentDomain,
	notificationDomain,
	bookingCore, wire.Bind(new(availability.SettingsSource), new(service.Business)), wire.Bind(new(availability.EmployeeSource), new(service2.Employee)), wire.Bind(new(availability.AppointmentSource), new(service6.Appointment)),
)

var routing = wire.NewSet(wire.Struct(new(router.DomainHandlers), "*"), business.New, employee.New, service4.New, client.New, appointment.New, availability2.New, booking2.New, notification2.New, router.New)
