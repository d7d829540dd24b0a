package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Employee=MockEmployeeService

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"reservahub/config"
	"reservahub/infras/otel"
	businessService "reservahub/internal/domains/business/service"
	"reservahub/internal/domains/employee/model"
	"reservahub/internal/domains/employee/model/dto"
	"reservahub/internal/domains/employee/repository"
	"reservahub/shared"
	"reservahub/shared/cache"
	"reservahub/shared/constant"
	gDto "reservahub/shared/dto"
	"reservahub/shared/failure"
)

const (
	cacheGetEmployee    = "employee:get"
	cacheGetAllEmployee = "employee:gets"
	cacheCountEmployee  = "employee:count"
)

type Employee interface {
	Create(ctx context.Context, req dto.CreateEmployeeRequest, businessID string) error
	GetAll(ctx context.Context, req gDto.QueryParams, businessID string) (dto.GetEmployeesResponse, error)
	Get(ctx context.Context, id, businessID string) (dto.EmployeeResponse, error)
	Update(ctx context.Context, req dto.UpdateEmployeeRequest, id, businessID string) error
	Delete(ctx context.Context, id, businessID string) error
	SaveAvailability(ctx context.Context, req dto.SaveAvailabilityRequest, id, businessID string) error
	ListByBusiness(ctx context.Context, businessID string) ([]model.Employee, error)
}

type serviceImpl struct {
	repo     repository.Employee
	business businessService.Business
	cfg      *config.Config
	cache    cache.RedisCache
	otel     otel.Otel
}

func New(repo repository.Employee, business businessService.Business, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Employee {
	return &serviceImpl{
		repo:     repo,
		business: business,
		cfg:      cfg,
		cache:    cache,
		otel:     otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateEmployeeRequest, businessID string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	settings, err := s.business.GetOrInitialize(ctx, businessID)
	if err != nil {
		log.Error().Err(err).Msg("failed to load business settings for employee defaults")

		return fmt.Errorf("failed to load business settings: %w", err)
	}

	availability := model.DefaultAvailability(settings.Schedule)
	employee := req.ToModel(businessID, user, availability)

	if err = s.repo.Insert(ctx, employee); err != nil {
		log.Error().Err(err).Msg("failed to create employee")

		return fmt.Errorf("failed to create employee: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllEmployee)
		shared.InvalidateCaches(c, s.cache, cacheCountEmployee)
	}()

	return nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, businessID string) (res dto.GetEmployeesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := s.businessFilter(businessID)
	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllEmployee, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for employees")

		return res, nil
	}

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count employees")

		return res, fmt.Errorf("failed to count employees: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get employees")

		return res, fmt.Errorf("failed to get employees: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save employees to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id, businessID string) (res dto.EmployeeResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetEmployee, businessID, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for employee")

		return res, nil
	}

	employee, err := s.getOwned(ctx, id, businessID)
	if err != nil {
		return res, err
	}

	res.FromModel(employee)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save employee to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateEmployeeRequest, id, businessID string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	if req == (dto.UpdateEmployeeRequest{}) {
		return failure.BadRequestFromString("update request cannot be empty") // nolint:wrapcheck
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	if _, err = s.getOwned(ctx, id, businessID); err != nil {
		return err
	}

	updatedFields := shared.TransformFields(req, user)
	if err = s.repo.Update(ctx, updatedFields, s.ownedFilter(id, businessID)); err != nil {
		log.Error().Err(err).Msg("failed to update employee")

		return fmt.Errorf("failed to update employee: %w", err)
	}

	s.invalidate(ctx, id, businessID)

	return nil
}

func (s *serviceImpl) Delete(ctx context.Context, id, businessID string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	if _, err = s.getOwned(ctx, id, businessID); err != nil {
		return err
	}

	if err = s.repo.Delete(ctx, s.ownedFilter(id, businessID)); err != nil {
		log.Error().Err(err).Msg("failed to delete employee")

		return fmt.Errorf("failed to delete employee: %w", err)
	}

	s.invalidate(ctx, id, businessID)

	return nil
}

func (s *serviceImpl) SaveAvailability(ctx context.Context, req dto.SaveAvailabilityRequest, id, businessID string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".SaveAvailability")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	if _, err = s.getOwned(ctx, id, businessID); err != nil {
		return err
	}

	updatedFields := shared.TransformFields(struct{}{}, user)
	updatedFields[model.FieldAvailability] = req.ToModel()

	if err = s.repo.Update(ctx, updatedFields, s.ownedFilter(id, businessID)); err != nil {
		log.Error().Err(err).Msg("failed to save employee availability")

		return fmt.Errorf("failed to save employee availability: %w", err)
	}

	s.invalidate(ctx, id, businessID)

	return nil
}

// ListByBusiness returns every employee of a business ordered by name. The
// availability engine reads through this.
func (s *serviceImpl) ListByBusiness(ctx context.Context, businessID string) (res []model.Employee, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ListByBusiness")
	defer scope.End()
	defer scope.TraceIfError(err)

	params := gDto.QueryParams{
		SortBy:  model.FieldName,
		SortDir: "ASC",
	}

	res, err = s.repo.GetAll(ctx, params, s.businessFilter(businessID))
	if err != nil {
		log.Error().Err(err).Msg("failed to list employees")

		return nil, fmt.Errorf("failed to list employees: %w", err)
	}

	return res, nil
}

func (s *serviceImpl) getOwned(ctx context.Context, id, businessID string) (model.Employee, error) {
	employee, err := s.repo.Get(ctx, s.ownedFilter(id, businessID))
	if err != nil {
		log.Error().Err(err).Msg("failed to get employee")

		return employee, fmt.Errorf("failed to get employee: %w", err)
	}

	if employee.ID == constant.Empty {
		return employee, failure.NotFound("employee") // nolint:wrapcheck
	}

	return employee, nil
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

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetEmployee, businessID, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete employee from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllEmployee)
		shared.InvalidateCaches(c, s.cache, cacheCountEmployee)
	}()
}
