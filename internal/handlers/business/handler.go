package business

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"reservahub/infras/otel"
	"reservahub/internal/domains/business/model/dto"
	"reservahub/internal/domains/business/service"
	"reservahub/shared/constant"
	"reservahub/shared/failure"
	"reservahub/shared/validator"
	"reservahub/transport/http/middleware"
	"reservahub/transport/http/response"
)

type Handler struct {
	service    service.Business
	middleware middleware.Auth
	otel       otel.Otel
}

func New(service service.Business, middleware middleware.Auth, otel otel.Otel) Handler {
	return Handler{
		service:    service,
		middleware: middleware,
		otel:       otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/settings", func(routerGroup chi.Router) {
		routerGroup.Use(handler.middleware.Auth, handler.middleware.RequireBusiness)
		routerGroup.Get("/", handler.GetSettings)
		routerGroup.Put("/", handler.UpdateSettings)
		routerGroup.Post("/photo", handler.UploadPhoto)
	})
}

// GetSettings retrieves the business booking settings.
// @Summary Get business settings
// @Description Retrieve the booking settings of the authenticated business, initializing defaults on first read.
// @Tags Settings
// @Accept json
// @Produce json
// @Success 200 {object} dto.SettingsResponse "Business settings"
// @Failure 401 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/settings [get]
// @Security BearerAuth
func (handler *Handler) GetSettings(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetSettings")
	defer scope.End()

	settings, err := handler.service.Get(ctx, middleware.BusinessID(ctx))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get settings")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Settings retrieved successfully")

	response.WithJSON(w, http.StatusOK, settings)
}

// UpdateSettings updates the business booking settings.
// @Summary Update business settings
// @Description Update the booking settings of the authenticated business.
// @Tags Settings
// @Accept json
// @Produce json
// @Param request body dto.UpdateSettingsRequest true "Update Settings Request"
// @Success 200 {object} response.Message "Settings updated successfully"
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/settings [put]
// @Security BearerAuth
func (handler *Handler) UpdateSettings(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateSettings")
	defer scope.End()

	req := dto.UpdateSettingsRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, req, middleware.BusinessID(ctx)); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update settings")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Settings updated successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Settings updated successfully")
}

// UploadPhoto uploads the business profile photo shown on the booking page.
// @Summary Upload business photo
// @Description Upload the photo shown on the public booking page of the business.
// @Tags Settings
// @Accept mpfd
// @Produce json
// @Param file formData file true "Photo file"
// @Success 200 {object} dto.UploadPhotoResponse "Uploaded photo URL"
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/settings/photo [post]
// @Security BearerAuth
func (handler *Handler) UploadPhoto(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UploadPhoto")
	defer scope.End()

	if err := r.ParseMultipartForm(constant.RequestMaxMemory); err != nil {
		err = failure.BadRequestFromString("failed to parse multipart form")

		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to parse multipart form")

		response.WithError(w, err)

		return
	}

	file, fileHeader, err := r.FormFile(constant.FormFile)
	if err != nil {
		err = failure.BadRequestFromString("photo file is required")

		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to read photo file")

		response.WithError(w, err)

		return
	}
	defer file.Close()

	res, err := handler.service.UploadPhoto(ctx, middleware.BusinessID(ctx), file, fileHeader)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to upload photo")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Photo uploaded successfully")

	response.WithJSON(w, http.StatusOK, res)
}
