package notification

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"reservahub/infras/otel"
	"reservahub/internal/domains/notification/service"
	"reservahub/shared/constant"
	gDto "reservahub/shared/dto"
	"reservahub/transport/http/middleware"
	"reservahub/transport/http/response"
)

type Handler struct {
	service    service.Notification
	middleware middleware.Auth
	otel       otel.Otel
}

func New(service service.Notification, middleware middleware.Auth, otel otel.Otel) Handler {
	return Handler{
		service:    service,
		middleware: middleware,
		otel:       otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/notifications", func(routerGroup chi.Router) {
		routerGroup.Use(handler.middleware.Auth, handler.middleware.RequireBusiness)
		routerGroup.Get("/", handler.GetNotifications)
		routerGroup.Get("/unread-count", handler.GetUnreadCount)
		routerGroup.Patch("/{id}/read", handler.MarkRead)
		routerGroup.Patch("/read-all", handler.MarkAllRead)
	})
}

// GetNotifications retrieves the notifications of the business.
// @Summary Get all notifications
// @Description Retrieve in-app notifications with pagination, newest first.
// @Tags Notification
// @Accept json
// @Produce json
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Success 200 {object} dto.GetNotificationsResponse "List of notifications"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/notifications [get]
// @Security BearerAuth
func (handler *Handler) GetNotifications(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetNotifications")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	notifications, err := handler.service.GetAll(ctx, queryParams, middleware.BusinessID(ctx))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get notifications")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Notifications retrieved successfully")

	response.WithJSON(w, http.StatusOK, notifications)
}

// GetUnreadCount returns the number of unread notifications.
// @Summary Get unread notification count
// @Description Retrieve the number of unread notifications for the badge counter.
// @Tags Notification
// @Accept json
// @Produce json
// @Success 200 {object} dto.UnreadCountResponse "Unread count"
// @Failure 500 {object} response.Error
// @Router /v1/notifications/unread-count [get]
// @Security BearerAuth
func (handler *Handler) GetUnreadCount(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetUnreadCount")
	defer scope.End()

	count, err := handler.service.UnreadCount(ctx, middleware.BusinessID(ctx))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to count unread notifications")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Unread count retrieved successfully")

	response.WithJSON(w, http.StatusOK, count)
}

// MarkRead marks one notification as read.
// @Summary Mark a notification as read
// @Description Mark a single notification as read by its unique identifier.
// @Tags Notification
// @Accept json
// @Produce json
// @Param id path string true "Notification ID"
// @Success 200 {object} response.Message "Notification marked as read"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/notifications/{id}/read [patch]
// @Security BearerAuth
func (handler *Handler) MarkRead(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".MarkRead")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.MarkRead(ctx, id, middleware.BusinessID(ctx)); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to mark notification read")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Notification marked as read")

	response.WithMessage(w, http.StatusOK, "Notification marked as read")
}

// MarkAllRead marks every notification of the business as read.
// @Summary Mark all notifications as read
// @Description Mark every notification of the business as read.
// @Tags Notification
// @Accept json
// @Produce json
// @Success 200 {object} response.Message "Notifications marked as read"
// @Failure 500 {object} response.Error
// @Router /v1/notifications/read-all [patch]
// @Security BearerAuth
func (handler *Handler) MarkAllRead(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".MarkAllRead")
	defer scope.End()

	if err := handler.service.MarkAllRead(ctx, middleware.BusinessID(ctx)); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to mark notifications read")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Notifications marked as read")

	response.WithMessage(w, http.StatusOK, "Notifications marked as read")
}
