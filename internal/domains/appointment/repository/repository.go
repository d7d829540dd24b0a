package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"

	"reservahub/infras/otel"
	"reservahub/infras/postgres"
	"reservahub/internal/domains/appointment/model"
	"reservahub/shared/constant"
	gDto "reservahub/shared/dto"
	"reservahub/shared/logger"
	gRepo "reservahub/shared/repository"
)

var (
	// ErrSlotTaken means the assigned employee picked up an overlapping
	// booking between validation and insert.
	ErrSlotTaken = errors.New("slot is no longer available")
	// ErrCapacityReached means the business day filled up concurrently.
	ErrCapacityReached = errors.New("daily capacity reached")
	// ErrClientLimitReached means the client booked elsewhere on the same day
	// concurrently.
	ErrClientLimitReached = errors.New("client daily limit reached")
)

// SlotGuard carries the limits InsertIfSlotFree re-checks inside the insert
// transaction.
type SlotGuard struct {
	DailyCapacity    int
	ClientDailyLimit int
	IgnoreID         string
}

type Appointment interface {
	Insert(ctx context.Context, model model.Appointment) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Appointment, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Appointment, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
	ListActiveOn(ctx context.Context, businessID, date string) ([]model.Appointment, error)
	ListActiveForClientOn(ctx context.Context, businessID, clientID, date string) ([]model.Appointment, error)
	InsertIfSlotFree(ctx context.Context, appointment model.Appointment, guard SlotGuard) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Appointment]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Appointment {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Appointment](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

const appointmentColumns = "id, business_id, client_id, client_name, client_email, client_phone, " +
	"service_id, service_name, employee_id, employee_name, date, time, duration_minutes, price, " +
	"status, source, notes, prepayment_required, prepayment_rate, prepayment_amount, " +
	"prepayment_status, prepayment_method, prepayment_phone, prepayment_receipt_channel, " +
	"prepayment_requested_at, confirmation_email_sent_at, confirmation_email_status, " +
	"confirmation_email_error, created_at, modified_at, created_by, modified_by"

// ListActiveOn returns every non-cancelled appointment of a business on one
// day, ordered by start time.
func (repo *repositoryImpl) ListActiveOn(ctx context.Context, businessID, date string) (res []model.Appointment, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".appointment.ListActiveOn")
	defer scope.End()
	defer scope.TraceIfError(err)

	query := fmt.Sprintf(
		"SELECT %s FROM appointments WHERE business_id = $1 AND date = $2 AND status <> $3 ORDER BY time ASC",
		appointmentColumns,
	)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	err = repo.db.Read.SelectContext(ctx, &res, query, businessID, date, constant.AppointmentStatusCancelled)
	if err != nil {
		logger.ErrorWithStack(err)

		return nil, fmt.Errorf("failed to list active appointments: %w", err)
	}

	return res, nil
}

// ListActiveForClientOn returns a client's non-cancelled appointments on one
// day.
func (repo *repositoryImpl) ListActiveForClientOn(ctx context.Context, businessID, clientID, date string) (res []model.Appointment, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".appointment.ListActiveForClientOn")
	defer scope.End()
	defer scope.TraceIfError(err)

	query := fmt.Sprintf(
		"SELECT %s FROM appointments WHERE business_id = $1 AND client_id = $2 AND date = $3 AND status <> $4",
		appointmentColumns,
	)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	err = repo.db.Read.SelectContext(ctx, &res, query, businessID, clientID, date, constant.AppointmentStatusCancelled)
	if err != nil {
		logger.ErrorWithStack(err)

		return nil, fmt.Errorf("failed to list client appointments: %w", err)
	}

	return res, nil
}

// InsertIfSlotFree inserts the appointment after re-checking employee overlap,
// daily capacity and the per-client limit inside one transaction. The
// business's rows for that day are locked first, so two concurrent bookings of
// the same slot cannot both pass.
func (repo *repositoryImpl) InsertIfSlotFree(ctx context.Context, appointment model.Appointment, guard SlotGuard) (err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".appointment.InsertIfSlotFree")
	defer scope.End()
	defer scope.TraceIfError(err)

	tx, err := repo.db.Write.BeginTxx(ctx, nil)
	if err != nil {
		logger.ErrorWithStack(err)

		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	lockQuery := fmt.Sprintf(
		"SELECT %s FROM appointments WHERE business_id = $1 AND date = $2 AND status <> $3 FOR UPDATE",
		appointmentColumns,
	)

	var sameDay []model.Appointment
	if err = tx.SelectContext(ctx, &sameDay, lockQuery, appointment.BusinessID, appointment.Date, constant.AppointmentStatusCancelled); err != nil {
		logger.ErrorWithStack(err)

		return fmt.Errorf("failed to lock same-day appointments: %w", err)
	}

	startMinutes := appointment.StartMinutes()
	endMinutes := startMinutes + appointment.DurationMinutes
	clientCount := 0
	activeCount := 0

	for i := range sameDay {
		existing := &sameDay[i]
		if existing.ID == guard.IgnoreID {
			continue
		}

		activeCount++

		if existing.ClientID != constant.Empty && existing.ClientID == appointment.ClientID {
			clientCount++
		}

		if existing.EmployeeID != constant.Empty &&
			existing.EmployeeID == appointment.EmployeeID &&
			existing.Overlaps(startMinutes, endMinutes) {
			return ErrSlotTaken
		}
	}

	if guard.DailyCapacity > 0 && activeCount >= guard.DailyCapacity {
		return ErrCapacityReached
	}

	if guard.ClientDailyLimit > 0 && clientCount >= guard.ClientDailyLimit {
		return ErrClientLimitReached
	}

	if err = repo.InsertTx(ctx, tx, appointment); err != nil {
		return err
	}

	if err = tx.Commit(); err != nil {
		logger.ErrorWithStack(err)

		return fmt.Errorf("failed to commit appointment insert: %w", err)
	}

	return nil
}
