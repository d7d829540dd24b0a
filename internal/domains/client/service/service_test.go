package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"reservahub/config"
	"reservahub/infras/otel/mocks"
	clientMocks "reservahub/internal/domains/client/mocks"
	"reservahub/internal/domains/client/model"
	"reservahub/internal/domains/client/service"
	cacheMocks "reservahub/shared/cache/mocks"
	gModel "reservahub/shared/model"
	"reservahub/shared/timezone"
)

const testBusinessID = "biz-1"

type fixture struct {
	repo  *clientMocks.MockClient
	cache *cacheMocks.MockRedisCache
	svc   service.Client
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	ctrl := gomock.NewController(t)

	f := &fixture{
		repo:  clientMocks.NewMockClient(ctrl),
		cache: cacheMocks.NewMockRedisCache(ctrl),
	}

	// Cache invalidation runs on detached goroutines.
	f.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	f.cache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	f.svc = service.New(f.repo, &config.Config{}, f.cache, mocks.NewOtel())

	return f
}

func storedClient() model.Client {
	return model.Client{
		ID:         "client-1",
		BusinessID: testBusinessID,
		Name:       "Ana Solis",
		Email:      "ana@example.com",
		Phone:      "8888-1234",
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  testBusinessID,
			ModifiedBy: testBusinessID,
		},
	}
}

func TestClientService_ResolveOrCreate(t *testing.T) {
	t.Run("resolves by id first", func(t *testing.T) {
		f := newFixture(t)
		stored := storedClient()

		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(stored, nil)

		client, created, err := f.svc.ResolveOrCreate(context.Background(), testBusinessID, service.ClientRef{
			ID:    "client-1",
			Email: "other@example.com",
		})

		require.NoError(t, err)
		assert.False(t, created)
		assert.Equal(t, stored, client)
	})

	t.Run("resolves by email before phone", func(t *testing.T) {
		f := newFixture(t)
		stored := storedClient()

		f.repo.EXPECT().
			FindByEmail(gomock.Any(), testBusinessID, "ana@example.com").
			Return(stored, nil)

		client, created, err := f.svc.ResolveOrCreate(context.Background(), testBusinessID, service.ClientRef{
			Name:  "Ana Solis",
			Email: "  ANA@Example.com ",
			Phone: "8888-1234",
		})

		require.NoError(t, err)
		assert.False(t, created)
		assert.Equal(t, stored.ID, client.ID)
	})

	t.Run("falls back to phone when email finds nothing", func(t *testing.T) {
		f := newFixture(t)
		stored := storedClient()

		f.repo.EXPECT().FindByEmail(gomock.Any(), testBusinessID, "ana@example.com").Return(model.Client{}, nil)
		f.repo.EXPECT().FindByPhone(gomock.Any(), testBusinessID, "88881234").Return(stored, nil)

		client, created, err := f.svc.ResolveOrCreate(context.Background(), testBusinessID, service.ClientRef{
			Email: "ana@example.com",
			Phone: "8888-1234",
		})

		require.NoError(t, err)
		assert.False(t, created)
		assert.Equal(t, stored.ID, client.ID)
	})

	t.Run("matches by name only when no other identity was given", func(t *testing.T) {
		f := newFixture(t)
		stored := storedClient()

		f.repo.EXPECT().
			FindByName(gomock.Any(), testBusinessID, "ana solis").
			Return(stored, nil)

		client, created, err := f.svc.ResolveOrCreate(context.Background(), testBusinessID, service.ClientRef{
			Name: "  Ana Solis ",
		})

		require.NoError(t, err)
		assert.False(t, created)
		assert.Equal(t, stored.ID, client.ID)
	})

	t.Run("never matches by name when contact identity was given", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().FindByEmail(gomock.Any(), testBusinessID, "new@example.com").Return(model.Client{}, nil)
		f.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(nil)

		client, created, err := f.svc.ResolveOrCreate(context.Background(), testBusinessID, service.ClientRef{
			Name:  "Ana Solis",
			Email: "new@example.com",
		})

		require.NoError(t, err)
		assert.True(t, created)
		assert.NotEmpty(t, client.ID)
		assert.Equal(t, "new@example.com", client.Email)
	})

	t.Run("creates a new client when nothing matches", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().FindByPhone(gomock.Any(), testBusinessID, "70001111").Return(model.Client{}, nil)

		var inserted model.Client

		f.repo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, client model.Client) error {
				inserted = client

				return nil
			})

		client, created, err := f.svc.ResolveOrCreate(context.Background(), testBusinessID, service.ClientRef{
			Name:  "Marco Rojas",
			Phone: "7000-1111",
		})

		require.NoError(t, err)
		assert.True(t, created)
		assert.Equal(t, client, inserted)
		assert.Equal(t, testBusinessID, inserted.BusinessID)
		assert.Equal(t, "Marco Rojas", inserted.Name)
	})

	t.Run("backfills a missing email on the matched client", func(t *testing.T) {
		f := newFixture(t)

		stored := storedClient()
		stored.Email = ""

		f.repo.EXPECT().FindByPhone(gomock.Any(), testBusinessID, "88881234").Return(stored, nil)

		var fields map[string]any

		f.repo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, updated map[string]any, _ any) error {
				fields = updated

				return nil
			})

		client, created, err := f.svc.ResolveOrCreate(context.Background(), testBusinessID, service.ClientRef{
			Phone: "8888-1234",
			Email: "ana@example.com",
		})

		require.NoError(t, err)
		assert.False(t, created)
		assert.Equal(t, "ana@example.com", client.Email)
		assert.Equal(t, "ana@example.com", fields[model.FieldEmail])
	})

	t.Run("propagates lookup failures", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().
			FindByEmail(gomock.Any(), testBusinessID, "ana@example.com").
			Return(model.Client{}, errors.New("db down"))

		_, _, err := f.svc.ResolveOrCreate(context.Background(), testBusinessID, service.ClientRef{
			Email: "ana@example.com",
		})

		assert.Error(t, err)
	})
}

func TestClientService_RecordVisit(t *testing.T) {
	f := newFixture(t)

	f.repo.EXPECT().IncrementVisits(gomock.Any(), "client-1", "2025-06-09").Return(nil)

	err := f.svc.RecordVisit(context.Background(), "client-1", "2025-06-09")

	assert.NoError(t, err)
}
