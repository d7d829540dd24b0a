package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"reservahub/config"
	"reservahub/infras/otel/mocks"
	s3Mocks "reservahub/infras/s3/mocks"
	businessMocks "reservahub/internal/domains/business/mocks"
	"reservahub/internal/domains/business/model"
	"reservahub/internal/domains/business/model/dto"
	"reservahub/internal/domains/business/service"
	cacheMocks "reservahub/shared/cache/mocks"
	"reservahub/shared/failure"
	gModel "reservahub/shared/model"
	"reservahub/shared/timezone"
)

const testBusinessID = "biz-1"

type fixture struct {
	repo  *businessMocks.MockSettings
	cache *cacheMocks.MockRedisCache
	s3    *s3Mocks.MockS3
	svc   service.Business
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	ctrl := gomock.NewController(t)

	f := &fixture{
		repo:  businessMocks.NewMockSettings(ctrl),
		cache: cacheMocks.NewMockRedisCache(ctrl),
		s3:    s3Mocks.NewMockS3(ctrl),
	}

	cfg := &config.Config{}
	cfg.Booking.DefaultDayStart = "09:00"
	cfg.Booking.DefaultDayEnd = "18:00"

	// Cache population and invalidation run on detached goroutines.
	f.cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	f.cache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	f.svc = service.New(f.repo, cfg, f.cache, f.s3, mocks.NewOtel())

	return f
}

func storedSettings() model.Settings {
	return model.Settings{
		BusinessID:       testBusinessID,
		BusinessName:     "Bella Salon",
		Schedule:         model.DefaultSchedule("10:00", "19:00"),
		LunchEnabled:     true,
		LunchStart:       "12:00",
		DailyCapacity:    15,
		ClientDailyLimit: 2,
		BookingMinHours:  2,
		BookingMaxDays:   14,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  testBusinessID,
			ModifiedBy: testBusinessID,
		},
	}
}

func TestBusinessService_GetOrInitialize(t *testing.T) {
	t.Run("returns stored settings without writing", func(t *testing.T) {
		f := newFixture(t)
		stored := storedSettings()

		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(stored, nil)

		settings, err := f.svc.GetOrInitialize(context.Background(), testBusinessID)

		require.NoError(t, err)
		assert.Equal(t, stored, settings)
	})

	t.Run("writes the default row for a new business", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Settings{}, nil)

		var inserted model.Settings

		f.repo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, settings model.Settings) error {
				inserted = settings

				return nil
			})

		settings, err := f.svc.GetOrInitialize(context.Background(), testBusinessID)

		require.NoError(t, err)
		assert.Equal(t, settings, inserted)

		assert.Equal(t, testBusinessID, inserted.BusinessID)
		assert.Equal(t, model.DefaultLunchStart, inserted.LunchStart)
		assert.Equal(t, model.DefaultDailyCapacity, inserted.DailyCapacity)
		assert.Equal(t, model.DefaultClientDailyLimit, inserted.ClientDailyLimit)
		assert.Equal(t, model.DefaultBookingMinHours, inserted.BookingMinHours)
		assert.Equal(t, model.DefaultBookingMaxDays, inserted.BookingMaxDays)
		assert.Equal(t, model.DefaultPrepaymentRate, inserted.PrepaymentRate)
		assert.True(t, inserted.PrepaymentEnable, "prepayment should be on by default")

		require.Len(t, inserted.Schedule, 7)
		assert.True(t, inserted.Schedule[0].Open, "Monday should be open")
		assert.Equal(t, "09:00", inserted.Schedule[0].Start)
		assert.Equal(t, "18:00", inserted.Schedule[0].End)
		assert.False(t, inserted.Schedule[6].Open, "Sunday should be closed")
	})

	t.Run("propagates repository failures", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Settings{}, errors.New("db down"))

		_, err := f.svc.GetOrInitialize(context.Background(), testBusinessID)

		assert.Error(t, err)
	})
}

func TestBusinessService_Get(t *testing.T) {
	t.Run("cache hit skips the repository", func(t *testing.T) {
		f := newFixture(t)

		cached := dto.SettingsResponse{BusinessID: testBusinessID, BusinessName: "Bella Salon"}

		f.cache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, _ string, value any) error {
				*(value.(*dto.SettingsResponse)) = cached

				return nil
			})

		res, err := f.svc.Get(context.Background(), testBusinessID)

		require.NoError(t, err)
		assert.Equal(t, cached, res)
	})

	t.Run("not found when the business never saved settings", func(t *testing.T) {
		f := newFixture(t)

		f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss"))
		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Settings{}, nil)

		_, err := f.svc.Get(context.Background(), testBusinessID)

		require.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})

	t.Run("cache miss reads through to the repository", func(t *testing.T) {
		f := newFixture(t)
		stored := storedSettings()

		f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss"))
		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(stored, nil)

		res, err := f.svc.Get(context.Background(), testBusinessID)

		require.NoError(t, err)
		assert.Equal(t, stored.BusinessName, res.BusinessName)
		assert.Len(t, res.Schedule, 7)
	})
}

func TestBusinessService_Update(t *testing.T) {
	t.Run("writes the schedule and toggles alongside scalar fields", func(t *testing.T) {
		f := newFixture(t)
		stored := storedSettings()

		lunchEnabled := false
		prepaymentEnabled := true

		req := dto.UpdateSettingsRequest{
			BusinessName:     "Bella Salon & Spa",
			DailyCapacity:    25,
			LunchEnabled:     &lunchEnabled,
			PrepaymentEnable: &prepaymentEnabled,
			Schedule: []dto.ScheduleDayPayload{
				{Open: true, Start: "08:00", End: "16:00"},
				{Open: true, Start: "08:00", End: "16:00"},
				{Open: true, Start: "08:00", End: "16:00"},
				{Open: true, Start: "08:00", End: "16:00"},
				{Open: true, Start: "08:00", End: "16:00"},
				{Open: false},
				{Open: false},
			},
		}

		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(stored, nil)

		var fields map[string]any

		f.repo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, updated map[string]any, _ any) error {
				fields = updated

				return nil
			})

		err := f.svc.Update(context.Background(), req, testBusinessID)

		require.NoError(t, err)

		assert.Equal(t, "Bella Salon & Spa", fields[model.FieldBusinessName])
		assert.Equal(t, 25, fields[model.FieldDailyCapacity])
		assert.Equal(t, false, fields[model.FieldLunchEnabled])
		assert.Equal(t, true, fields["prepayment_enabled"])

		schedule, ok := fields[model.FieldSchedule].(model.ScheduleDays)
		require.True(t, ok, "expected schedule to be written as a model value")
		require.Len(t, schedule, 7)
		assert.Equal(t, "08:00", schedule[0].Start)
		assert.False(t, schedule[5].Open)
	})

	t.Run("initializes defaults before the first update", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Settings{}, nil)
		f.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(nil)
		f.repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

		err := f.svc.Update(context.Background(), dto.UpdateSettingsRequest{BusinessName: "Fresh Cuts"}, testBusinessID)

		assert.NoError(t, err)
	})
}
