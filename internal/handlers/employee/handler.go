package employee

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"reservahub/infras/otel"
	"reservahub/internal/domains/employee/model/dto"
	"reservahub/internal/domains/employee/service"
	"reservahub/shared/constant"
	gDto "reservahub/shared/dto"
	"reservahub/shared/validator"
	"reservahub/transport/http/middleware"
	"reservahub/transport/http/response"
)

type Handler struct {
	service    service.Employee
	middleware middleware.Auth
	otel       otel.Otel
}

func New(service service.Employee, middleware middleware.Auth, otel otel.Otel) Handler {
	return Handler{
		service:    service,
		middleware: middleware,
		otel:       otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/employees", func(routerGroup chi.Router) {
		routerGroup.Use(handler.middleware.Auth, handler.middleware.RequireBusiness)
		routerGroup.Post("/", handler.CreateEmployee)
		routerGroup.Get("/", handler.GetEmployees)
		routerGroup.Get("/{id}", handler.GetEmployeeByID)
		routerGroup.Patch("/{id}", handler.UpdateEmployee)
		routerGroup.Delete("/{id}", handler.DeleteEmployee)
		routerGroup.Put("/{id}/availability", handler.SaveAvailability)
	})
}

// CreateEmployee handles the creation of a new employee.
// @Summary Create a new employee
// @Description Create a new employee with an all-week available default schedule.
// @Tags Employee
// @Accept json
// @Produce json
// @Param request body dto.CreateEmployeeRequest true "Create Employee Request"
// @Success 201 {object} response.Message "Employee created successfully"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/employees [post]
// @Security BearerAuth
func (handler *Handler) CreateEmployee(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateEmployee")
	defer scope.End()

	req := dto.CreateEmployeeRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Create(ctx, req, middleware.BusinessID(ctx)); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create employee")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Employee created successfully by user " + user)

	response.WithMessage(w, http.StatusCreated, "Employee created successfully")
}

// GetEmployees retrieves all employees of the business.
// @Summary Get all employees
// @Description Retrieve all employees with pagination.
// @Tags Employee
// @Accept json
// @Produce json
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Success 200 {object} dto.GetEmployeesResponse "List of employees"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/employees [get]
// @Security BearerAuth
func (handler *Handler) GetEmployees(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetEmployees")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	employees, err := handler.service.GetAll(ctx, queryParams, middleware.BusinessID(ctx))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get employees")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Employees retrieved successfully")

	response.WithJSON(w, http.StatusOK, employees)
}

// GetEmployeeByID retrieves an employee by its ID.
// @Summary Get an employee by ID
// @Description Retrieve an employee by its unique identifier.
// @Tags Employee
// @Accept json
// @Produce json
// @Param id path string true "Employee ID"
// @Success 200 {object} dto.EmployeeResponse "Employee details"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/employees/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetEmployeeByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetEmployeeByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	employee, err := handler.service.Get(ctx, id, middleware.BusinessID(ctx))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get employee by ID")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Employee retrieved successfully")

	response.WithJSON(w, http.StatusOK, employee)
}

// UpdateEmployee updates an existing employee by its ID.
// @Summary Update an employee by ID
// @Description Update the details of an existing employee.
// @Tags Employee
// @Accept json
// @Produce json
// @Param id path string true "Employee ID"
// @Param request body dto.UpdateEmployeeRequest true "Update Employee Request"
// @Success 200 {object} response.Message "Employee updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/employees/{id} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateEmployee(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateEmployee")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.UpdateEmployeeRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, req, id, middleware.BusinessID(ctx)); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update employee")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Employee updated successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Employee updated successfully")
}

// DeleteEmployee deletes an employee by its ID.
// @Summary Delete an employee by ID
// @Description Delete an employee using its unique identifier.
// @Tags Employee
// @Accept json
// @Produce json
// @Param id path string true "Employee ID"
// @Success 200 {object} response.Message "Employee deleted successfully"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/employees/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteEmployee(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteEmployee")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Delete(ctx, id, middleware.BusinessID(ctx)); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete employee")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Employee deleted successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Employee deleted successfully")
}

// SaveAvailability replaces the weekly availability of an employee.
// @Summary Save employee availability
// @Description Replace the weekly availability of an employee, Monday through Sunday.
// @Tags Employee
// @Accept json
// @Produce json
// @Param id path string true "Employee ID"
// @Param request body dto.SaveAvailabilityRequest true "Save Availability Request"
// @Success 200 {object} response.Message "Availability saved successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/employees/{id}/availability [put]
// @Security BearerAuth
func (handler *Handler) SaveAvailability(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SaveAvailability")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.SaveAvailabilityRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.SaveAvailability(ctx, req, id, middleware.BusinessID(ctx)); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to save availability")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Availability saved successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Availability saved successfully")
}
