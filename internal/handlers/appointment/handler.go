package appointment

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"reservahub/infras/otel"
	"reservahub/internal/domains/appointment/model"
	"reservahub/internal/domains/appointment/model/dto"
	"reservahub/internal/domains/appointment/service"
	"reservahub/shared/constant"
	gDto "reservahub/shared/dto"
	"reservahub/transport/http/middleware"
	"reservahub/transport/http/response"
)

type Handler struct {
	service    service.Appointment
	middleware middleware.Auth
	otel       otel.Otel
}

func New(service service.Appointment, middleware middleware.Auth, otel otel.Otel) Handler {
	return Handler{
		service:    service,
		middleware: middleware,
		otel:       otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/appointments", func(routerGroup chi.Router) {
		routerGroup.Use(handler.middleware.Auth, handler.middleware.RequireBusiness)
		routerGroup.Get("/", handler.GetAppointments)
		routerGroup.Get("/{id}", handler.GetAppointmentByID)
	})
}

// GetAppointments retrieves the appointments of the business.
// @Summary Get all appointments
// @Description Retrieve appointments with optional filters on date, status, employee and client.
// @Tags Appointment
// @Accept json
// @Produce json
// @Param date query string false "Filter by date (YYYY-MM-DD)"
// @Param status query string false "Filter by status"
// @Param employee_id query string false "Filter by employee"
// @Param client_id query string false "Filter by client"
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Success 200 {object} dto.GetAppointmentsResponse "List of appointments"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/appointments [get]
// @Security BearerAuth
func (handler *Handler) GetAppointments(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetAppointments")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	query := dto.ListAppointmentsQuery{
		Date:       r.URL.Query().Get(model.FieldDate),
		Status:     r.URL.Query().Get(model.FieldStatus),
		EmployeeID: r.URL.Query().Get(model.FieldEmployeeID),
		ClientID:   r.URL.Query().Get(model.FieldClientID),
	}

	appointments, err := handler.service.GetAll(ctx, queryParams, query, middleware.BusinessID(ctx))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get appointments")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Appointments retrieved successfully")

	response.WithJSON(w, http.StatusOK, appointments)
}

// GetAppointmentByID retrieves an appointment by its ID.
// @Summary Get an appointment by ID
// @Description Retrieve an appointment by its unique identifier.
// @Tags Appointment
// @Accept json
// @Produce json
// @Param id path string true "Appointment ID"
// @Success 200 {object} dto.AppointmentResponse "Appointment details"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/appointments/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetAppointmentByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetAppointmentByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	appointment, err := handler.service.Get(ctx, id, middleware.BusinessID(ctx))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get appointment by ID")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Appointment retrieved successfully")

	response.WithJSON(w, http.StatusOK, appointment)
}
