package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Notification=MockNotificationService

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"reservahub/config"
	"reservahub/infras/otel"
	apptModel "reservahub/internal/domains/appointment/model"
	"reservahub/internal/domains/notification/model"
	"reservahub/internal/domains/notification/model/dto"
	"reservahub/internal/domains/notification/repository"
	"reservahub/shared"
	"reservahub/shared/constant"
	gDto "reservahub/shared/dto"
	"reservahub/shared/failure"
	gModel "reservahub/shared/model"
	"reservahub/shared/timezone"
)

type Notification interface {
	CreateForAppointment(ctx context.Context, appointment apptModel.Appointment, notificationType string) error
	GetAll(ctx context.Context, params gDto.QueryParams, businessID string) (dto.GetNotificationsResponse, error)
	UnreadCount(ctx context.Context, businessID string) (dto.UnreadCountResponse, error)
	MarkRead(ctx context.Context, id, businessID string) error
	MarkAllRead(ctx context.Context, businessID string) error
}

type serviceImpl struct {
	repo repository.Notification
	cfg  *config.Config
	otel otel.Otel
}

func New(repo repository.Notification, cfg *config.Config, otel otel.Otel) Notification {
	return &serviceImpl{
		repo: repo,
		cfg:  cfg,
		otel: otel,
	}
}

// CreateForAppointment records an in-app notification for the business from an
// appointment's denormalized fields.
func (s *serviceImpl) CreateForAppointment(ctx context.Context, appointment apptModel.Appointment, notificationType string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CreateForAppointment")
	defer scope.End()
	defer scope.TraceIfError(err)

	now := timezone.Now()

	notification := model.Notification{
		ID:              uuid.NewString(),
		BusinessID:      appointment.BusinessID,
		AppointmentID:   appointment.ID,
		Type:            notificationType,
		ClientName:      appointment.ClientName,
		ClientEmail:     appointment.ClientEmail,
		ServiceName:     appointment.ServiceName,
		EmployeeName:    appointment.EmployeeName,
		AppointmentDate: appointment.Date,
		AppointmentTime: appointment.Time,
		Metadata: gModel.Metadata{
			CreatedAt:  now,
			ModifiedAt: now,
			CreatedBy:  appointment.BusinessID,
			ModifiedBy: appointment.BusinessID,
		},
	}

	if err = s.repo.Insert(ctx, notification); err != nil {
		log.Error().Err(err).Msg("failed to create notification")

		return fmt.Errorf("failed to create notification: %w", err)
	}

	return nil
}

// Notifications back a live badge in the business dashboard and are read
// without caching for the same freshness reason as appointments.
func (s *serviceImpl) GetAll(ctx context.Context, params gDto.QueryParams, businessID string) (res dto.GetNotificationsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := s.businessFilter(businessID)

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count notifications")

		return res, fmt.Errorf("failed to count notifications: %w", err)
	}

	models, err := s.repo.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get notifications")

		return res, fmt.Errorf("failed to get notifications: %w", err)
	}

	res.FromModels(models, total, params.Limit)

	return res, nil
}

func (s *serviceImpl) UnreadCount(ctx context.Context, businessID string) (res dto.UnreadCountResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UnreadCount")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := s.businessFilter(businessID)
	filter.Filters = append(filter.Filters, gDto.Filter{
		Field:    model.FieldRead,
		Value:    false,
		Operator: gDto.FilterOperatorEq,
		Table:    model.TableName,
	})

	unread, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count unread notifications")

		return res, fmt.Errorf("failed to count unread notifications: %w", err)
	}

	res.Unread = unread

	return res, nil
}

func (s *serviceImpl) MarkRead(ctx context.Context, id, businessID string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".MarkRead")
	defer scope.End()
	defer scope.TraceIfError(err)

	notification, err := s.repo.Get(ctx, s.ownedFilter(id, businessID))
	if err != nil {
		log.Error().Err(err).Msg("failed to get notification")

		return fmt.Errorf("failed to get notification: %w", err)
	}

	if notification.ID == constant.Empty {
		return failure.NotFound("notification") // nolint:wrapcheck
	}

	fields := shared.TransformFields(struct{}{}, businessID)
	fields[model.FieldRead] = true

	if err = s.repo.Update(ctx, fields, s.ownedFilter(id, businessID)); err != nil {
		log.Error().Err(err).Msg("failed to mark notification read")

		return fmt.Errorf("failed to mark notification read: %w", err)
	}

	return nil
}

func (s *serviceImpl) MarkAllRead(ctx context.Context, businessID string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".MarkAllRead")
	defer scope.End()
	defer scope.TraceIfError(err)

	fields := shared.TransformFields(struct{}{}, businessID)
	fields[model.FieldRead] = true

	if err = s.repo.Update(ctx, fields, s.businessFilter(businessID)); err != nil {
		log.Error().Err(err).Msg("failed to mark notifications read")

		return fmt.Errorf("failed to mark notifications read: %w", err)
	}

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
