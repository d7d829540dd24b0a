package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Service=MockServiceService

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"reservahub/config"
	"reservahub/infras/otel"
	"reservahub/internal/domains/service/model"
	"reservahub/internal/domains/service/model/dto"
	"reservahub/internal/domains/service/repository"
	"reservahub/shared"
	"reservahub/shared/cache"
	"reservahub/shared/constant"
	gDto "reservahub/shared/dto"
	"reservahub/shared/failure"
)

const (
	cacheGetService    = "service:get"
	cacheGetAllService = "service:gets"
	cacheCountService  = "service:count"
)

type Service interface {
	Create(ctx context.Context, req dto.CreateServiceRequest, businessID string) error
	GetAll(ctx context.Context, req gDto.QueryParams, businessID string) (dto.GetServicesResponse, error)
	Get(ctx context.Context, id, businessID string) (dto.ServiceResponse, error)
	GetModel(ctx context.Context, id, businessID string) (model.Service, error)
	Update(ctx context.Context, req dto.UpdateServiceRequest, id, businessID string) error
	Delete(ctx context.Context, id, businessID string) error
}

type serviceImpl struct {
	repo  repository.Service
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.Service, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Service {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateServiceRequest, businessID string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	if req.DurationMinutes < model.MinDurationMinutes {
		return failure.BadRequestFromString("service duration is below the minimum") // nolint:wrapcheck
	}

	if err = s.repo.Insert(ctx, req.ToModel(businessID, user)); err != nil {
		log.Error().Err(err).Msg("failed to create service")

		return fmt.Errorf("failed to create service: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllService)
		shared.InvalidateCaches(c, s.cache, cacheCountService)
	}()

	return nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, businessID string) (res dto.GetServicesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := s.businessFilter(businessID)
	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllService, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for services")

		return res, nil
	}

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count services")

		return res, fmt.Errorf("failed to count services: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get services")

		return res, fmt.Errorf("failed to get services: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save services to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id, businessID string) (res dto.ServiceResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetService, businessID, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for service")

		return res, nil
	}

	service, err := s.GetModel(ctx, id, businessID)
	if err != nil {
		return res, err
	}

	res.FromModel(service)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save service to cache")
		}
	}()

	return res, nil
}

// GetModel is the raw read used by the booking orchestrator.
func (s *serviceImpl) GetModel(ctx context.Context, id, businessID string) (res model.Service, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetModel")
	defer scope.End()
	defer scope.TraceIfError(err)

	service, err := s.repo.Get(ctx, s.ownedFilter(id, businessID))
	if err != nil {
		log.Error().Err(err).Msg("failed to get service")

		return res, fmt.Errorf("failed to get service: %w", err)
	}

	if service.ID == constant.Empty {
		return res, failure.NotFound("service") // nolint:wrapcheck
	}

	return service, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateServiceRequest, id, businessID string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	if req == (dto.UpdateServiceRequest{}) {
		return failure.BadRequestFromString("update request cannot be empty") // nolint:wrapcheck
	}

	if req.DurationMinutes != 0 && req.DurationMinutes < model.MinDurationMinutes {
		return failure.BadRequestFromString("service duration is below the minimum") // nolint:wrapcheck
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	if _, err = s.GetModel(ctx, id, businessID); err != nil {
		return err
	}

	updatedFields := shared.TransformFields(req, user)
	if err = s.repo.Update(ctx, updatedFields, s.ownedFilter(id, businessID)); err != nil {
		log.Error().Err(err).Msg("failed to update service")

		return fmt.Errorf("failed to update service: %w", err)
	}

	s.invalidate(ctx, id, businessID)

	return nil
}

func (s *serviceImpl) Delete(ctx context.Context, id, businessID string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	if _, err = s.GetModel(ctx, id, businessID); err != nil {
		return err
	}

	if err = s.repo.Delete(ctx, s.ownedFilter(id, businessID)); err != nil {
		log.Error().Err(err).Msg("failed to delete service")

		return fmt.Errorf("failed to delete service: %w", err)
	}

	s.invalidate(ctx, id, businessID)

	return nil
}

func (s *serviceImpl) businessFilter(businessID string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Filters: []any{
			shared.FilterByBusiness(businessID, model.FieldBusinessID, model.TableName),
		},
	}
}

func (s *serviceImpl) ownedFilter(id, businessID string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldID,
				Value:    id,
				Operator: gDto.FilterOperatorEq,
				Table:    model.TableName,
			},
			shared.FilterByBusiness(businessID, model.FieldBusinessID, model.TableName),
		},
	}
}

func (s *serviceImpl) invalidate(ctx context.Context, id, businessID string) {
	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetService, businessID, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete service from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllService)
		shared.InvalidateCaches(c, s.cache, cacheCountService)
	}()
}
