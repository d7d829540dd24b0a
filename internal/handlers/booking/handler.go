package booking

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"reservahub/infras/otel"
	"reservahub/internal/booking"
	"reservahub/shared/constant"
	"reservahub/shared/validator"
	"reservahub/transport/http/middleware"
	"reservahub/transport/http/response"
)

// Handler fronts the booking orchestrator. Creation is open to both token
// roles; the booking source is derived from the caller's role, never from the
// payload.
type Handler struct {
	orchestrator booking.Orchestrator
	middleware   middleware.Auth
	otel         otel.Otel
}

func New(orchestrator booking.Orchestrator, middleware middleware.Auth, otel otel.Otel) Handler {
	return Handler{
		orchestrator: orchestrator,
		middleware:   middleware,
		otel:         otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/bookings", func(routerGroup chi.Router) {
		routerGroup.Use(handler.middleware.Auth)
		routerGroup.Post("/", handler.CreateBooking)
		routerGroup.Patch("/{id}/cancel", handler.CancelBooking)

		routerGroup.Group(func(restricted chi.Router) {
			restricted.Use(handler.middleware.RequireBusiness)
			restricted.Put("/{id}", handler.EditBooking)
			restricted.Patch("/{id}/confirm", handler.ConfirmBooking)
			restricted.Patch("/{id}/complete", handler.CompleteBooking)
		})
	})
}

// CreateBooking books an appointment through the full availability flow.
// @Summary Create a booking
// @Description Book an appointment through the availability checks. Client tokens book as self-service, business tokens as manual entries.
// @Tags Booking
// @Accept json
// @Produce json
// @Param request body booking.Request true "Create Booking Request"
// @Success 201 {object} booking.Response "Booking created successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings [post]
// @Security BearerAuth
func (handler *Handler) CreateBooking(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateBooking")
	defer scope.End()

	req := booking.Request{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	req.Source = constant.BookingSourceManual

	if role, _ := ctx.Value(constant.ContextKeyUserRole).(string); role == constant.RoleClient {
		req.Source = constant.BookingSourceClientApp
	}

	res, err := handler.orchestrator.Book(ctx, req, middleware.BusinessID(ctx))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create booking")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Booking created successfully by user " + user)

	response.WithJSON(w, http.StatusCreated, res)
}

// EditBooking re-books an existing appointment with new details.
// @Summary Edit a booking
// @Description Re-run the booking flow for an existing appointment with new details. The appointment keeps its identity.
// @Tags Booking
// @Accept json
// @Produce json
// @Param id path string true "Appointment ID"
// @Param request body booking.Request true "Edit Booking Request"
// @Success 200 {object} booking.Response "Booking updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings/{id} [put]
// @Security BearerAuth
func (handler *Handler) EditBooking(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".EditBooking")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := booking.Request{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.orchestrator.Edit(ctx, id, req, middleware.BusinessID(ctx))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to edit booking")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Booking updated successfully by user " + user)

	response.WithJSON(w, http.StatusOK, res)
}

// ConfirmBooking confirms a pending appointment.
// @Summary Confirm a booking
// @Description Confirm a pending appointment and send the confirmation email once.
// @Tags Booking
// @Accept json
// @Produce json
// @Param id path string true "Appointment ID"
// @Success 200 {object} response.Message "Booking confirmed successfully"
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings/{id}/confirm [patch]
// @Security BearerAuth
func (handler *Handler) ConfirmBooking(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ConfirmBooking")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.orchestrator.Confirm(ctx, id, middleware.BusinessID(ctx)); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to confirm booking")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Booking confirmed successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Booking confirmed successfully")
}

// CompleteBooking marks a confirmed appointment as completed.
// @Summary Complete a booking
// @Description Mark a confirmed appointment as completed and record the client visit.
// @Tags Booking
// @Accept json
// @Produce json
// @Param id path string true "Appointment ID"
// @Success 200 {object} response.Message "Booking completed successfully"
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings/{id}/complete [patch]
// @Security BearerAuth
func (handler *Handler) CompleteBooking(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CompleteBooking")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.orchestrator.Complete(ctx, id, middleware.BusinessID(ctx)); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to complete booking")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Booking completed successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Booking completed successfully")
}

// CancelBooking cancels a pending or confirmed appointment.
// @Summary Cancel a booking
// @Description Cancel a pending or confirmed appointment, freeing its slot.
// @Tags Booking
// @Accept json
// @Produce json
// @Param id path string true "Appointment ID"
// @Success 200 {object} response.Message "Booking cancelled successfully"
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings/{id}/cancel [patch]
// @Security BearerAuth
func (handler *Handler) CancelBooking(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CancelBooking")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.orchestrator.Cancel(ctx, id, middleware.BusinessID(ctx)); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to cancel booking")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Booking cancelled successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Booking cancelled successfully")
}
