package availability

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"reservahub/infras/otel"
	"reservahub/internal/availability"
	employeeDto "reservahub/internal/domains/employee/model/dto"
	serviceService "reservahub/internal/domains/service/service"
	"reservahub/shared/constant"
	"reservahub/shared/failure"
	"reservahub/transport/http/middleware"
	"reservahub/transport/http/response"
)

const (
	queryParamDate       = "date"
	queryParamTime       = "time"
	queryParamServiceID  = "service_id"
	queryParamEmployeeID = "employee_id"
	queryParamClientID   = "client_id"
	queryParamEmail      = "email"
	queryParamPhone      = "phone"
	queryParamName       = "name"
	queryParamIgnoreID   = "ignore_id"
	queryParamTeam       = "team"
)

// Handler exposes the read-only availability queries the booking page and the
// dashboard calendar poll before submitting a booking.
type Handler struct {
	engine     availability.Engine
	services   serviceService.Service
	middleware middleware.Auth
	otel       otel.Otel
}

func New(engine availability.Engine, services serviceService.Service, middleware middleware.Auth, otel otel.Otel) Handler {
	return Handler{
		engine:     engine,
		services:   services,
		middleware: middleware,
		otel:       otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/availability", func(routerGroup chi.Router) {
		routerGroup.Use(handler.middleware.Auth)
		routerGroup.Get("/slots", handler.GetSlots)
		routerGroup.Get("/daily", handler.GetDailyAvailability)
		routerGroup.Get("/client", handler.GetClientDailyAvailability)
		routerGroup.Get("/booking-date", handler.GetBookingDateStatus)
		routerGroup.Get("/employees", handler.GetAssignableEmployees)
	})
}

// GetSlots lists the bookable start times for a service on a date.
// @Summary Get available slots
// @Description List the bookable start times for a service on a date, for one employee or across the whole team.
// @Tags Availability
// @Accept json
// @Produce json
// @Param date query string true "Date (YYYY-MM-DD)"
// @Param service_id query string true "Service ID"
// @Param employee_id query string false "Employee ID"
// @Param team query boolean false "Check across the whole team"
// @Param ignore_id query string false "Appointment to exclude from conflict checks"
// @Success 200 {array} string "Available start times"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/availability/slots [get]
// @Security BearerAuth
func (handler *Handler) GetSlots(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetSlots")
	defer scope.End()

	date := r.URL.Query().Get(queryParamDate)
	serviceID := r.URL.Query().Get(queryParamServiceID)

	if date == constant.Empty || serviceID == constant.Empty {
		err := failure.BadRequestFromString("date and service_id are required")

		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	businessID := middleware.BusinessID(ctx)

	svc, err := handler.services.GetModel(ctx, serviceID, businessID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get service")

		response.WithError(w, err)

		return
	}

	team, _ := strconv.ParseBool(r.URL.Query().Get(queryParamTeam))

	slots, err := handler.engine.AvailableSlots(ctx, availability.SlotQuery{
		Date:            date,
		EmployeeID:      r.URL.Query().Get(queryParamEmployeeID),
		DurationMinutes: svc.DurationMinutes,
		IgnoreID:        r.URL.Query().Get(queryParamIgnoreID),
		BusinessID:      businessID,
		UseTeamCapacity: team,
	})
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to resolve available slots")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Slots resolved successfully")

	response.WithJSON(w, http.StatusOK, slots)
}

// GetDailyAvailability reports how much of the business day limit is used.
// @Summary Get daily availability
// @Description Report the daily appointment limit, how much of it is booked, and whether the day is full.
// @Tags Availability
// @Accept json
// @Produce json
// @Param date query string true "Date (YYYY-MM-DD)"
// @Param ignore_id query string false "Appointment to exclude from counting"
// @Success 200 {object} availability.DailyAvailability "Daily availability"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/availability/daily [get]
// @Security BearerAuth
func (handler *Handler) GetDailyAvailability(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetDailyAvailability")
	defer scope.End()

	date := r.URL.Query().Get(queryParamDate)
	if date == constant.Empty {
		err := failure.BadRequestFromString("date is required")

		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	daily, err := handler.engine.DailyAvailability(ctx, date, r.URL.Query().Get(queryParamIgnoreID), middleware.BusinessID(ctx))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to resolve daily availability")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Daily availability resolved successfully")

	response.WithJSON(w, http.StatusOK, daily)
}

// GetClientDailyAvailability reports how many bookings a client has left on a date.
// @Summary Get client daily availability
// @Description Report how many bookings the identified client already holds on a date against the per-client limit.
// @Tags Availability
// @Accept json
// @Produce json
// @Param date query string true "Date (YYYY-MM-DD)"
// @Param client_id query string false "Client ID"
// @Param email query string false "Client email"
// @Param phone query string false "Client phone"
// @Param name query string false "Client name"
// @Param ignore_id query string false "Appointment to exclude from counting"
// @Success 200 {object} availability.ClientDailyAvailability "Client daily availability"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/availability/client [get]
// @Security BearerAuth
func (handler *Handler) GetClientDailyAvailability(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetClientDailyAvailability")
	defer scope.End()

	date := r.URL.Query().Get(queryParamDate)
	if date == constant.Empty {
		err := failure.BadRequestFromString("date is required")

		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	clientDaily, err := handler.engine.ClientDailyAvailability(ctx, availability.ClientQuery{
		Date: date,
		Identity: availability.ClientIdentity{
			ID:    r.URL.Query().Get(queryParamClientID),
			Email: r.URL.Query().Get(queryParamEmail),
			Phone: r.URL.Query().Get(queryParamPhone),
			Name:  r.URL.Query().Get(queryParamName),
		},
		IgnoreID:   r.URL.Query().Get(queryParamIgnoreID),
		BusinessID: middleware.BusinessID(ctx),
	})
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to resolve client daily availability")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Client daily availability resolved successfully")

	response.WithJSON(w, http.StatusOK, clientDaily)
}

// GetBookingDateStatus reports whether a date falls inside the booking window.
// @Summary Get booking date status
// @Description Report whether a date is too soon or too far out to book, with the current window bounds.
// @Tags Availability
// @Accept json
// @Produce json
// @Param date query string true "Date (YYYY-MM-DD)"
// @Success 200 {object} availability.BookingDateStatus "Booking date status"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/availability/booking-date [get]
// @Security BearerAuth
func (handler *Handler) GetBookingDateStatus(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBookingDateStatus")
	defer scope.End()

	date := r.URL.Query().Get(queryParamDate)
	if date == constant.Empty {
		err := failure.BadRequestFromString("date is required")

		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	status, err := handler.engine.BookingDateStatus(ctx, date, middleware.BusinessID(ctx))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to resolve booking date status")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Booking date status resolved successfully")

	response.WithJSON(w, http.StatusOK, status)
}

// GetAssignableEmployees lists the employees free for a slot.
// @Summary Get assignable employees
// @Description List the employees free to take a slot, the preferred employee first.
// @Tags Availability
// @Accept json
// @Produce json
// @Param date query string true "Date (YYYY-MM-DD)"
// @Param time query string true "Start time (HH:MM)"
// @Param service_id query string true "Service ID"
// @Param employee_id query string false "Preferred employee ID"
// @Param ignore_id query string false "Appointment to exclude from conflict checks"
// @Success 200 {object} dto.GetEmployeesResponse "Assignable employees"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/availability/employees [get]
// @Security BearerAuth
func (handler *Handler) GetAssignableEmployees(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetAssignableEmployees")
	defer scope.End()

	date := r.URL.Query().Get(queryParamDate)
	clock := r.URL.Query().Get(queryParamTime)
	serviceID := r.URL.Query().Get(queryParamServiceID)

	if date == constant.Empty || clock == constant.Empty || serviceID == constant.Empty {
		err := failure.BadRequestFromString("date, time and service_id are required")

		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	businessID := middleware.BusinessID(ctx)

	svc, err := handler.services.GetModel(ctx, serviceID, businessID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get service")

		response.WithError(w, err)

		return
	}

	employees, err := handler.engine.AssignableEmployeesForSlot(
		ctx,
		date,
		clock,
		svc.DurationMinutes,
		businessID,
		r.URL.Query().Get(queryParamIgnoreID),
		r.URL.Query().Get(queryParamEmployeeID),
	)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to resolve assignable employees")

		response.WithError(w, err)

		return
	}

	res := make([]employeeDto.EmployeeResponse, len(employees))
	for i, employee := range employees {
		res[i].FromModel(employee)
	}

	scope.AddEvent("Assignable employees resolved successfully")

	response.WithJSON(w, http.StatusOK, res)
}
