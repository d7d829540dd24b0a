package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"mime/multipart"
	"path"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"reservahub/config"
	"reservahub/infras/otel"
	"reservahub/infras/s3"
	"reservahub/internal/domains/business/model"
	"reservahub/internal/domains/business/model/dto"
	"reservahub/internal/domains/business/repository"
	"reservahub/shared"
	"reservahub/shared/cache"
	"reservahub/shared/constant"
	"reservahub/shared/failure"
	"reservahub/shared/timezone"
)

const (
	cacheGetSettings = "business_settings:get"

	photoDirectory = "business-photos"
)

type Business interface {
	Get(ctx context.Context, businessID string) (dto.SettingsResponse, error)
	GetOrInitialize(ctx context.Context, businessID string) (model.Settings, error)
	Update(ctx context.Context, req dto.UpdateSettingsRequest, businessID string) error
	UploadPhoto(ctx context.Context, businessID string, file multipart.File, header *multipart.FileHeader) (dto.UploadPhotoResponse, error)
}

type serviceImpl struct {
	repo  repository.Settings
	cfg   *config.Config
	cache cache.RedisCache
	s3    s3.S3
	otel  otel.Otel
}

func New(repo repository.Settings, cfg *config.Config, cache cache.RedisCache, s3Client s3.S3, otel otel.Otel) Business {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		s3:    s3Client,
		otel:  otel,
	}
}

// Get reads the stored settings without writing defaults. A business that has
// never saved settings gets a zero BusinessID back.
func (s *serviceImpl) Get(ctx context.Context, businessID string) (res dto.SettingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetSettings, businessID)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for business settings")

		return res, nil
	}

	settings, err := s.repo.Get(ctx, shared.FilterByID(businessID, model.FieldBusinessID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get business settings")

		return res, fmt.Errorf("failed to get business settings: %w", err)
	}

	if settings.BusinessID == constant.Empty {
		return res, failure.NotFound("business settings") // nolint:wrapcheck
	}

	res.FromModel(settings)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save business settings to cache")
		}
	}()

	return res, nil
}

// GetOrInitialize returns the stored settings, writing the default row exactly
// once for a business that has never saved any.
func (s *serviceImpl) GetOrInitialize(ctx context.Context, businessID string) (res model.Settings, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetOrInitialize")
	defer scope.End()
	defer scope.TraceIfError(err)

	settings, err := s.repo.Get(ctx, shared.FilterByID(businessID, model.FieldBusinessID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get business settings")

		return res, fmt.Errorf("failed to get business settings: %w", err)
	}

	if settings.BusinessID != constant.Empty {
		return settings, nil
	}

	settings = model.DefaultSettings(
		businessID,
		s.cfg.Booking.DefaultDayStart,
		s.cfg.Booking.DefaultDayEnd,
		timezone.Now(),
	)

	if err = s.repo.Insert(ctx, settings); err != nil {
		log.Error().Err(err).Msg("failed to initialize business settings")

		return res, fmt.Errorf("failed to initialize business settings: %w", err)
	}

	return settings, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateSettingsRequest, businessID string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	if _, err = s.GetOrInitialize(ctx, businessID); err != nil {
		return err
	}

	updatedFields := shared.TransformFields(req, user)

	if schedule := req.ScheduleModel(); schedule != nil {
		updatedFields[model.FieldSchedule] = schedule
	}

	if req.LunchEnabled != nil {
		updatedFields[model.FieldLunchEnabled] = *req.LunchEnabled
	}

	if req.PrepaymentEnable != nil {
		updatedFields["prepayment_enabled"] = *req.PrepaymentEnable
	}

	filter := shared.FilterByID(businessID, model.FieldBusinessID, model.TableName)
	if err = s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update business settings")

		return fmt.Errorf("failed to update business settings: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetSettings, businessID)); err != nil {
			log.Error().Err(err).Msg("failed to delete business settings from cache")
		}
	}()

	return nil
}

func (s *serviceImpl) UploadPhoto(ctx context.Context, businessID string, file multipart.File, header *multipart.FileHeader) (res dto.UploadPhotoResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UploadPhoto")
	defer scope.End()
	defer scope.TraceIfError(err)

	settings, err := s.GetOrInitialize(ctx, businessID)
	if err != nil {
		return res, err
	}

	fileName := uuid.NewString() + path.Ext(header.Filename)

	url, err := s.s3.UploadFile(ctx, constant.Empty, photoDirectory, file, header, fileName)
	if err != nil {
		log.Error().Err(err).Msg("failed to upload business photo")

		return res, fmt.Errorf("failed to upload business photo: %w", err)
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(businessID, model.FieldBusinessID, model.TableName)

	updatedFields := map[string]any{
		model.FieldPhotoURL:      url,
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: user,
	}

	if err = s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to persist business photo url")

		return res, fmt.Errorf("failed to persist business photo url: %w", err)
	}

	if settings.PhotoURL != constant.Empty {
		oldObject := s.s3.GetObjectNameFromURL(s.cfg.External.S3.BucketName, settings.PhotoURL)
		if oldObject != constant.Empty {
			go func() {
				c := context.WithoutCancel(ctx)

				if err := s.s3.DeleteFile(c, constant.Empty, constant.Empty, oldObject); err != nil {
					log.Error().Err(err).Msg("failed to delete previous business photo")
				}
			}()
		}
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetSettings, businessID)); err != nil {
			log.Error().Err(err).Msg("failed to delete business settings from cache")
		}
	}()

	res.PhotoURL = url

	return res, nil
}
