package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Client=MockClientService

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"reservahub/config"
	"reservahub/infras/otel"
	"reservahub/internal/domains/client/model"
	"reservahub/internal/domains/client/model/dto"
	"reservahub/internal/domains/client/repository"
	"reservahub/shared"
	"reservahub/shared/cache"
	"reservahub/shared/constant"
	gDto "reservahub/shared/dto"
	"reservahub/shared/failure"
	gModel "reservahub/shared/model"
	"reservahub/shared/timezone"
)

const (
	cacheGetClient    = "client:get"
	cacheGetAllClient = "client:gets"
	cacheCountClient  = "client:count"
)

// ClientRef identifies a client in a booking request. Resolution precedence is
// id, then email, then phone; name alone matches only when neither email nor
// phone was supplied.
type ClientRef struct {
	ID    string
	Name  string
	Email string
	Phone string
}

type Client interface {
	Create(ctx context.Context, req dto.CreateClientRequest, businessID string) error
	GetAll(ctx context.Context, req gDto.QueryParams, businessID string) (dto.GetClientsResponse, error)
	Get(ctx context.Context, id, businessID string) (dto.ClientResponse, error)
	Update(ctx context.Context, req dto.UpdateClientRequest, id, businessID string) error
	Delete(ctx context.Context, id, businessID string) error
	ResolveOrCreate(ctx context.Context, businessID string, ref ClientRef) (model.Client, bool, error)
	RecordVisit(ctx context.Context, id, visitDate string) error
}

type serviceImpl struct {
	repo  repository.Client
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.Client, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Client {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateClientRequest, businessID string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	if err = s.repo.Insert(ctx, req.ToModel(businessID, user)); err != nil {
		log.Error().Err(err).Msg("failed to create client")

		return fmt.Errorf("failed to create client: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllClient)
		shared.InvalidateCaches(c, s.cache, cacheCountClient)
	}()

	return nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, businessID string) (res dto.GetClientsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := s.businessFilter(businessID)
	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllClient, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for clients")

		return res, nil
	}

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count clients")

		return res, fmt.Errorf("failed to count clients: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get clients")

		return res, fmt.Errorf("failed to get clients: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save clients to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id, businessID string) (res dto.ClientResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetClient, businessID, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for client")

		return res, nil
	}

	client, err := s.getOwned(ctx, id, businessID)
	if err != nil {
		return res, err
	}

	res.FromModel(client)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save client to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateClientRequest, id, businessID string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	if req == (dto.UpdateClientRequest{}) {
		return failure.BadRequestFromString("update request cannot be empty") // nolint:wrapcheck
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	if _, err = s.getOwned(ctx, id, businessID); err != nil {
		return err
	}

	if req.Email != constant.Empty {
		req.Email = model.NormalizeEmail(req.Email)
	}

	updatedFields := shared.TransformFields(req, user)
	if err = s.repo.Update(ctx, updatedFields, s.ownedFilter(id, businessID)); err != nil {
		log.Error().Err(err).Msg("failed to update client")

		return fmt.Errorf("failed to update client: %w", err)
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
		log.Error().Err(err).Msg("failed to delete client")

		return fmt.Errorf("failed to delete client: %w", err)
	}

	s.invalidate(ctx, id, businessID)

	return nil
}

// ResolveOrCreate finds the client a booking refers to, creating one when no
// identity matches. The second return reports whether a new row was written.
func (s *serviceImpl) ResolveOrCreate(ctx context.Context, businessID string, ref ClientRef) (res model.Client, created bool, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ResolveOrCreate")
	defer scope.End()
	defer scope.TraceIfError(err)

	if ref.ID != constant.Empty {
		client, err := s.repo.Get(ctx, s.ownedFilter(ref.ID, businessID))
		if err != nil {
			return res, false, fmt.Errorf("failed to resolve client by id: %w", err)
		}

		if client.ID != constant.Empty {
			return client, false, nil
		}
	}

	if ref.Email != constant.Empty {
		client, err := s.repo.FindByEmail(ctx, businessID, model.NormalizeEmail(ref.Email))
		if err != nil {
			return res, false, err
		}

		if client.ID != constant.Empty {
			return s.backfill(ctx, client, ref)
		}
	}

	if ref.Phone != constant.Empty {
		client, err := s.repo.FindByPhone(ctx, businessID, model.NormalizePhone(ref.Phone))
		if err != nil {
			return res, false, err
		}

		if client.ID != constant.Empty {
			return s.backfill(ctx, client, ref)
		}
	}

	// Name matching is only safe when the request carried no other identity.
	if ref.Email == constant.Empty && ref.Phone == constant.Empty && ref.Name != constant.Empty {
		client, err := s.repo.FindByName(ctx, businessID, model.NormalizeName(ref.Name))
		if err != nil {
			return res, false, err
		}

		if client.ID != constant.Empty {
			return client, false, nil
		}
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	if user == constant.Empty {
		user = businessID
	}

	client := model.Client{
		ID:         uuid.NewString(),
		BusinessID: businessID,
		Name:       ref.Name,
		Email:      model.NormalizeEmail(ref.Email),
		Phone:      ref.Phone,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}

	if err = s.repo.Insert(ctx, client); err != nil {
		log.Error().Err(err).Msg("failed to create client during booking")

		return res, false, fmt.Errorf("failed to create client: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllClient)
		shared.InvalidateCaches(c, s.cache, cacheCountClient)
	}()

	return client, true, nil
}

func (s *serviceImpl) RecordVisit(ctx context.Context, id, visitDate string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".RecordVisit")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = s.repo.IncrementVisits(ctx, id, visitDate); err != nil {
		log.Error().Err(err).Msg("failed to record client visit")

		return err
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetClient)
		shared.InvalidateCaches(c, s.cache, cacheGetAllClient)
	}()

	return nil
}

// backfill fills contact fields the stored client is missing from the booking
// reference.
func (s *serviceImpl) backfill(ctx context.Context, client model.Client, ref ClientRef) (model.Client, bool, error) {
	updatedFields := map[string]any{}

	if client.Email == constant.Empty && ref.Email != constant.Empty {
		client.Email = model.NormalizeEmail(ref.Email)
		updatedFields[model.FieldEmail] = client.Email
	}

	if client.Phone == constant.Empty && ref.Phone != constant.Empty {
		client.Phone = ref.Phone
		updatedFields[model.FieldPhone] = client.Phone
	}

	if len(updatedFields) == 0 {
		return client, false, nil
	}

	updatedFields[constant.FieldModifiedAt] = timezone.Now()

	if err := s.repo.Update(ctx, updatedFields, s.ownedFilter(client.ID, client.BusinessID)); err != nil {
		log.Error().Err(err).Msg("failed to backfill client contact fields")
	}

	s.invalidate(ctx, client.ID, client.BusinessID)

	return client, false, nil
}

func (s *serviceImpl) getOwned(ctx context.Context, id, businessID string) (model.Client, error) {
	client, err := s.repo.Get(ctx, s.ownedFilter(id, businessID))
	if err != nil {
		log.Error().Err(err).Msg("failed to get client")

		return client, fmt.Errorf("failed to get client: %w", err)
	}

	if client.ID == constant.Empty {
		return client, failure.NotFound("client") // nolint:wrapcheck
	}

	return client, nil
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

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetClient, businessID, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete client from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllClient)
		shared.InvalidateCaches(c, s.cache, cacheCountClient)
	}()
}
