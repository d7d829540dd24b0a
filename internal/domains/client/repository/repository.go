package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"reservahub/infras/otel"
	"reservahub/infras/postgres"
	"reservahub/internal/domains/client/model"
	"reservahub/shared/constant"
	gDto "reservahub/shared/dto"
	"reservahub/shared/logger"
	gRepo "reservahub/shared/repository"
)

type Client interface {
	Insert(ctx context.Context, model model.Client) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Client, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Client, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
	FindByEmail(ctx context.Context, businessID, email string) (model.Client, error)
	FindByPhone(ctx context.Context, businessID, phoneDigits string) (model.Client, error)
	FindByName(ctx context.Context, businessID, name string) (model.Client, error)
	IncrementVisits(ctx context.Context, id, lastVisit string) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Client]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Client {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Client](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

const clientColumns = "id, business_id, name, email, phone, notes, visits, last_visit, created_at, modified_at, created_by, modified_by"

// FindByEmail matches case-insensitively on the stored email.
func (repo *repositoryImpl) FindByEmail(ctx context.Context, businessID, email string) (res model.Client, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".client.FindByEmail")
	defer scope.End()
	defer scope.TraceIfError(err)

	query := fmt.Sprintf("SELECT %s FROM clients WHERE business_id = $1 AND LOWER(email) = LOWER($2) LIMIT 1", clientColumns)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	err = repo.db.Read.GetContext(ctx, &res, query, businessID, email)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Client{}, nil
	}

	if err != nil {
		logger.ErrorWithStack(err)

		return model.Client{}, fmt.Errorf("failed to find client by email: %w", err)
	}

	return res, nil
}

// FindByPhone matches on the digits-only form of the stored phone.
func (repo *repositoryImpl) FindByPhone(ctx context.Context, businessID, phoneDigits string) (res model.Client, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".client.FindByPhone")
	defer scope.End()
	defer scope.TraceIfError(err)

	query := fmt.Sprintf("SELECT %s FROM clients WHERE business_id = $1 AND regexp_replace(phone, '\\D', '', 'g') = $2 AND $2 <> '' LIMIT 1", clientColumns)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	err = repo.db.Read.GetContext(ctx, &res, query, businessID, phoneDigits)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Client{}, nil
	}

	if err != nil {
		logger.ErrorWithStack(err)

		return model.Client{}, fmt.Errorf("failed to find client by phone: %w", err)
	}

	return res, nil
}

// FindByName matches case-insensitively on the stored name.
func (repo *repositoryImpl) FindByName(ctx context.Context, businessID, name string) (res model.Client, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".client.FindByName")
	defer scope.End()
	defer scope.TraceIfError(err)

	query := fmt.Sprintf("SELECT %s FROM clients WHERE business_id = $1 AND LOWER(TRIM(name)) = LOWER(TRIM($2)) LIMIT 1", clientColumns)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	err = repo.db.Read.GetContext(ctx, &res, query, businessID, name)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Client{}, nil
	}

	if err != nil {
		logger.ErrorWithStack(err)

		return model.Client{}, fmt.Errorf("failed to find client by name: %w", err)
	}

	return res, nil
}

// IncrementVisits bumps the visit counter and records the visit date.
func (repo *repositoryImpl) IncrementVisits(ctx context.Context, id, lastVisit string) (err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".client.IncrementVisits")
	defer scope.End()
	defer scope.TraceIfError(err)

	query := "UPDATE clients SET visits = visits + 1, last_visit = $2, modified_at = NOW() WHERE id = $1"
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	_, err = repo.db.Write.ExecContext(ctx, query, id, lastVisit)
	if err != nil {
		logger.ErrorWithStack(err)

		return fmt.Errorf("failed to increment client visits: %w", err)
	}

	return nil
}
