package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Appointment=MockAppointmentService

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"reservahub/config"
	"reservahub/infras/otel"
	"reservahub/internal/domains/appointment/model"
	"reservahub/internal/domains/appointment/model/dto"
	"reservahub/internal/domains/appointment/repository"
	"reservahub/shared"
	"reservahub/shared/constant"
	gDto "reservahub/shared/dto"
	"reservahub/shared/failure"
)

type Appointment interface {
	Create(ctx context.Context, appointment model.Appointment, guard repository.SlotGuard) error
	Insert(ctx context.Context, appointment model.Appointment) error
	GetAll(ctx context.Context, params gDto.QueryParams, query dto.ListAppointmentsQuery, businessID string) (dto.GetAppointmentsResponse, error)
	Get(ctx context.Context, id, businessID string) (dto.AppointmentResponse, error)
	GetModel(ctx context.Context, id, businessID string) (model.Appointment, error)
	UpdateFields(ctx context.Context, fields map[string]any, id, businessID string) error
	ListActiveOn(ctx context.Context, businessID, date string) ([]model.Appointment, error)
	ListActiveForClientOn(ctx context.Context, businessID, clientID, date string) ([]model.Appointment, error)
}

type serviceImpl struct {
	repo repository.Appointment
	cfg  *config.Config
	otel otel.Otel
}

func New(repo repository.Appointment, cfg *config.Config, otel otel.Otel) Appointment {
	return &serviceImpl{
		repo: repo,
		cfg:  cfg,
		otel: otel,
	}
}

// Create persists a validated booking behind the transactional slot guard.
// The sentinel errors of the repository surface unchanged so the caller can
// translate them into user-facing rejections.
func (s *serviceImpl) Create(ctx context.Context, appointment model.Appointment, guard repository.SlotGuard) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	return s.repo.InsertIfSlotFree(ctx, appointment, guard) // nolint:wrapcheck
}

// Insert persists without the slot guard. Only cancelled manual saves take
// this path, since a cancelled appointment occupies no capacity.
func (s *serviceImpl) Insert(ctx context.Context, appointment model.Appointment) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Insert")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = s.repo.Insert(ctx, appointment); err != nil {
		log.Error().Err(err).Msg("failed to insert appointment")

		return fmt.Errorf("failed to insert appointment: %w", err)
	}

	return nil
}

// Appointment listings back the calendar view, which must always reflect the
// latest writes, so they are read straight from the database without the
// cache-aside layer the other domains use.
func (s *serviceImpl) GetAll(ctx context.Context, params gDto.QueryParams, query dto.ListAppointmentsQuery, businessID string) (res dto.GetAppointmentsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := s.listFilter(query, businessID)

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count appointments")

		return res, fmt.Errorf("failed to count appointments: %w", err)
	}

	models, err := s.repo.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get appointments")

		return res, fmt.Errorf("failed to get appointments: %w", err)
	}

	res.FromModels(models, total, params.Limit)

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id, businessID string) (res dto.AppointmentResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	appointment, err := s.GetModel(ctx, id, businessID)
	if err != nil {
		return res, err
	}

	res.FromModel(appointment)

	return res, nil
}

func (s *serviceImpl) GetModel(ctx context.Context, id, businessID string) (res model.Appointment, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetModel")
	defer scope.End()
	defer scope.TraceIfError(err)

	appointment, err := s.repo.Get(ctx, s.ownedFilter(id, businessID))
	if err != nil {
		log.Error().Err(err).Msg("failed to get appointment")

		return res, fmt.Errorf("failed to get appointment: %w", err)
	}

	if appointment.ID == constant.Empty {
		return res, failure.NotFound("appointment") // nolint:wrapcheck
	}

	return appointment, nil
}

func (s *serviceImpl) UpdateFields(ctx context.Context, fields map[string]any, id, businessID string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdateFields")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = s.repo.Update(ctx, fields, s.ownedFilter(id, businessID)); err != nil {
		log.Error().Err(err).Msg("failed to update appointment")

		return fmt.Errorf("failed to update appointment: %w", err)
	}

	return nil
}

func (s *serviceImpl) ListActiveOn(ctx context.Context, businessID, date string) ([]model.Appointment, error) {
	return s.repo.ListActiveOn(ctx, businessID, date) // nolint:wrapcheck
}

func (s *serviceImpl) ListActiveForClientOn(ctx context.Context, businessID, clientID, date string) ([]model.Appointment, error) {
	return s.repo.ListActiveForClientOn(ctx, businessID, clientID, date) // nolint:wrapcheck
}

func (s *serviceImpl) listFilter(query dto.ListAppointmentsQuery, businessID string) gDto.FilterGroup {
	filters := []any{
		shared.FilterByBusiness(businessID, model.FieldBusinessID, model.TableName),
	}

	if query.Date != constant.Empty {
		filters = append(filters, gDto.Filter{
			Field:    model.FieldDate,
			Value:    query.Date,
			Operator: gDto.FilterOperatorEq,
			Table:    model.TableName,
		})
	}

	if query.Status != constant.Empty {
		filters = append(filters, gDto.Filter{
			Field:    model.FieldStatus,
			Value:    query.Status,
			Operator: gDto.FilterOperatorEq,
			Table:    model.TableName,
		})
	}

	if query.EmployeeID != constant.Empty {
		filters = append(filters, gDto.Filter{
			Field:    model.FieldEmployeeID,
			Value:    query.EmployeeID,
			Operator: gDto.FilterOperatorEq,
			Table:    model.TableName,
		})
	}

	if query.ClientID != constant.Empty {
		filters = append(filters, gDto.Filter{
			Field:    model.FieldClientID,
			Value:    query.ClientID,
			Operator: gDto.FilterOperatorEq,
			Table:    model.TableName,
		})
	}

	return gDto.FilterGroup{Filters: filters}
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
