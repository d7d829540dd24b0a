package availability_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"reservahub/config"
	"reservahub/infras/otel/mocks"
	"reservahub/internal/availability"
	availabilityMocks "reservahub/internal/availability/mocks"
	apptModel "reservahub/internal/domains/appointment/model"
	businessModel "reservahub/internal/domains/business/model"
	employeeModel "reservahub/internal/domains/employee/model"
)

const testBusinessID = "business-1"

// 2025-06-09 is a Monday.
var testNow = time.Date(2025, 6, 9, 9, 0, 0, 0, time.UTC)

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Booking.SlotStepMinutes = 30
	cfg.Booking.LunchDurationMin = 60

	return cfg
}

func testSettings() businessModel.Settings {
	return businessModel.Settings{
		BusinessID:       testBusinessID,
		Schedule:         businessModel.DefaultSchedule("09:00", "18:00"),
		LunchEnabled:     true,
		LunchStart:       "13:00",
		DailyCapacity:    20,
		ClientDailyLimit: 1,
		BookingMinHours:  4,
		BookingMaxDays:   30,
	}
}

func fullAvailability() employeeModel.AvailabilityDays {
	return employeeModel.DefaultAvailability(businessModel.DefaultSchedule("09:00", "18:00"))
}

func testAppointment(id, clientID, employeeID, date, clock string, durationMinutes int) apptModel.Appointment {
	return apptModel.Appointment{
		ID:              id,
		BusinessID:      testBusinessID,
		ClientID:        clientID,
		EmployeeID:      employeeID,
		Date:            date,
		Time:            clock,
		DurationMinutes: durationMinutes,
		Status:          "pending",
	}
}

type engineFixture struct {
	settings     *availabilityMocks.MockSettingsSource
	employees    *availabilityMocks.MockEmployeeSource
	appointments *availabilityMocks.MockAppointmentSource
	engine       availability.Engine
}

func newEngineFixture(t *testing.T) engineFixture {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	settings := availabilityMocks.NewMockSettingsSource(ctrl)
	employees := availabilityMocks.NewMockEmployeeSource(ctrl)
	appointments := availabilityMocks.NewMockAppointmentSource(ctrl)

	engine := availability.NewWithClock(settings, employees, appointments, testConfig(), mocks.NewOtel(), func() time.Time {
		return testNow
	})

	return engineFixture{
		settings:     settings,
		employees:    employees,
		appointments: appointments,
		engine:       engine,
	}
}

func TestEngine_ScheduleWindow(t *testing.T) {
	tests := []struct {
		name       string
		date       string
		employeeID string
		settings   businessModel.Settings
		employees  []employeeModel.Employee
		want       *availability.Window
	}{
		{
			name:     "open day uses the business window",
			date:     "2025-06-10",
			settings: testSettings(),
			want:     &availability.Window{Start: 540, End: 1080},
		},
		{
			name:     "closed sunday has no window",
			date:     "2025-06-15",
			settings: testSettings(),
			want:     nil,
		},
		{
			name:       "employee availability narrows the business window",
			date:       "2025-06-10",
			employeeID: "emp-1",
			settings:   testSettings(),
			employees: []employeeModel.Employee{
				{
					ID:   "emp-1",
					Name: "Ana",
					Availability: employeeModel.AvailabilityDays{
						{Available: true, Start: "09:00", End: "18:00"},
						{Available: true, Start: "10:00", End: "16:00"},
						{Available: true, Start: "09:00", End: "18:00"},
						{Available: true, Start: "09:00", End: "18:00"},
						{Available: true, Start: "09:00", End: "18:00"},
						{Available: true, Start: "09:00", End: "18:00"},
						{Available: false, Start: "09:00", End: "18:00"},
					},
				},
			},
			want: &availability.Window{Start: 600, End: 960},
		},
		{
			name:       "employee off-day has no window even when the business is open",
			date:       "2025-06-10",
			employeeID: "emp-1",
			settings:   testSettings(),
			employees: []employeeModel.Employee{
				{
					ID:   "emp-1",
					Name: "Ana",
					Availability: employeeModel.AvailabilityDays{
						{Available: true, Start: "09:00", End: "18:00"},
						{Available: false, Start: "09:00", End: "18:00"},
					},
				},
			},
			want: nil,
		},
		{
			name:       "employee without stored availability falls back to the business window",
			date:       "2025-06-10",
			employeeID: "emp-missing",
			settings:   testSettings(),
			employees:  []employeeModel.Employee{},
			want:       &availability.Window{Start: 540, End: 1080},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fixture := newEngineFixture(t)

			fixture.settings.EXPECT().
				GetOrInitialize(gomock.Any(), testBusinessID).
				Return(tt.settings, nil)

			if tt.employeeID != "" {
				fixture.employees.EXPECT().
					ListByBusiness(gomock.Any(), testBusinessID).
					Return(tt.employees, nil)
			}

			got, err := fixture.engine.ScheduleWindow(context.Background(), tt.date, tt.employeeID, testBusinessID)

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEngine_LunchWindow(t *testing.T) {
	tests := []struct {
		name     string
		settings businessModel.Settings
		want     *availability.Window
	}{
		{
			name:     "enabled lunch is a fixed one-hour block",
			settings: testSettings(),
			want:     &availability.Window{Start: 780, End: 840},
		},
		{
			name: "disabled lunch has no window",
			settings: func() businessModel.Settings {
				settings := testSettings()
				settings.LunchEnabled = false

				return settings
			}(),
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fixture := newEngineFixture(t)

			fixture.settings.EXPECT().
				GetOrInitialize(gomock.Any(), testBusinessID).
				Return(tt.settings, nil)

			got, err := fixture.engine.LunchWindow(context.Background(), testBusinessID)

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEngine_DailyAvailability(t *testing.T) {
	settings := testSettings()
	settings.DailyCapacity = 2

	booked := []apptModel.Appointment{
		testAppointment("apt-1", "client-1", "emp-1", "2025-06-10", "10:00", 30),
		testAppointment("apt-2", "client-2", "emp-2", "2025-06-10", "11:00", 30),
	}

	t.Run("day at capacity is full", func(t *testing.T) {
		fixture := newEngineFixture(t)

		fixture.settings.EXPECT().
			GetOrInitialize(gomock.Any(), testBusinessID).
			Return(settings, nil)
		fixture.appointments.EXPECT().
			ListActiveOn(gomock.Any(), testBusinessID, "2025-06-10").
			Return(booked, nil)

		got, err := fixture.engine.DailyAvailability(context.Background(), "2025-06-10", "", testBusinessID)

		require.NoError(t, err)
		assert.Equal(t, availability.DailyAvailability{Limit: 2, Booked: 2, Remaining: 0, IsFull: true}, got)
	})

	t.Run("edited appointment does not count against itself", func(t *testing.T) {
		fixture := newEngineFixture(t)

		fixture.settings.EXPECT().
			GetOrInitialize(gomock.Any(), testBusinessID).
			Return(settings, nil)
		fixture.appointments.EXPECT().
			ListActiveOn(gomock.Any(), testBusinessID, "2025-06-10").
			Return(booked, nil)

		got, err := fixture.engine.DailyAvailability(context.Background(), "2025-06-10", "apt-1", testBusinessID)

		require.NoError(t, err)
		assert.Equal(t, availability.DailyAvailability{Limit: 2, Booked: 1, Remaining: 1, IsFull: false}, got)
	})
}

func TestEngine_ClientDailyAvailability(t *testing.T) {
	existing := testAppointment("apt-1", "client-1", "emp-1", "2025-06-10", "10:00", 30)
	existing.ClientName = "Maria Lopez"
	existing.ClientEmail = "A@X.com"
	existing.ClientPhone = "(506) 8888-1234"

	tests := []struct {
		name        string
		identity    availability.ClientIdentity
		wantUsed    int
		wantAllowed bool
	}{
		{
			name:        "same email is blocked regardless of differing name and phone",
			identity:    availability.ClientIdentity{Email: "a@x.com", Name: "Other Name", Phone: "7000-0000"},
			wantUsed:    1,
			wantAllowed: false,
		},
		{
			name:        "a matching email counts even when the supplied id differs",
			identity:    availability.ClientIdentity{ID: "client-other", Email: "a@x.com"},
			wantUsed:    1,
			wantAllowed: false,
		},
		{
			name:        "a matching id counts even when the supplied email differs",
			identity:    availability.ClientIdentity{ID: "client-1", Email: "b@x.com"},
			wantUsed:    1,
			wantAllowed: false,
		},
		{
			name:        "phone matches on digits only",
			identity:    availability.ClientIdentity{Phone: "50688881234"},
			wantUsed:    1,
			wantAllowed: false,
		},
		{
			name:        "name matches only when neither email nor phone is supplied",
			identity:    availability.ClientIdentity{Name: "maria lopez"},
			wantUsed:    1,
			wantAllowed: false,
		},
		{
			name:        "unrelated client is allowed",
			identity:    availability.ClientIdentity{Email: "b@x.com"},
			wantUsed:    0,
			wantAllowed: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fixture := newEngineFixture(t)

			fixture.settings.EXPECT().
				GetOrInitialize(gomock.Any(), testBusinessID).
				Return(testSettings(), nil)
			fixture.appointments.EXPECT().
				ListActiveOn(gomock.Any(), testBusinessID, "2025-06-10").
				Return([]apptModel.Appointment{existing}, nil)

			got, err := fixture.engine.ClientDailyAvailability(context.Background(), availability.ClientQuery{
				Date:       "2025-06-10",
				Identity:   tt.identity,
				BusinessID: testBusinessID,
			})

			require.NoError(t, err)
			assert.Equal(t, 1, got.Limit)
			assert.Equal(t, tt.wantUsed, got.Used)
			assert.Equal(t, tt.wantAllowed, got.Allowed)
		})
	}
}

func TestEngine_ClientDailyAvailability_EmailMatchesWhenStoredIDMissing(t *testing.T) {
	fixture := newEngineFixture(t)

	// Self-service bookings can land without a stored client id; the email
	// still identifies the client for the daily limit.
	existing := testAppointment("apt-1", "", "emp-1", "2025-06-10", "10:00", 30)
	existing.ClientEmail = "a@x.com"

	fixture.settings.EXPECT().
		GetOrInitialize(gomock.Any(), testBusinessID).
		Return(testSettings(), nil)
	fixture.appointments.EXPECT().
		ListActiveOn(gomock.Any(), testBusinessID, "2025-06-10").
		Return([]apptModel.Appointment{existing}, nil)

	got, err := fixture.engine.ClientDailyAvailability(context.Background(), availability.ClientQuery{
		Date:       "2025-06-10",
		Identity:   availability.ClientIdentity{ID: "client-1", Email: "a@x.com"},
		BusinessID: testBusinessID,
	})

	require.NoError(t, err)
	assert.Equal(t, 1, got.Used)
	assert.False(t, got.Allowed)
}

func TestEngine_BookingDateStatus(t *testing.T) {
	tests := []struct {
		name          string
		now           time.Time
		date          string
		wantAllowed   bool
		wantIsTooSoon bool
		wantIsTooFar  bool
	}{
		{
			name:          "today is too soon when the lead time crosses midnight",
			now:           time.Date(2025, 6, 9, 21, 0, 0, 0, time.UTC),
			date:          "2025-06-09",
			wantIsTooSoon: true,
		},
		{
			name:        "tomorrow is allowed",
			now:         time.Date(2025, 6, 9, 21, 0, 0, 0, time.UTC),
			date:        "2025-06-10",
			wantAllowed: true,
		},
		{
			name:         "beyond the advance horizon is too far",
			now:          time.Date(2025, 6, 9, 9, 0, 0, 0, time.UTC),
			date:         "2025-07-10",
			wantIsTooFar: true,
		},
		{
			name: "the horizon's last day is still allowed",
			now:  time.Date(2025, 6, 9, 9, 0, 0, 0, time.UTC),
			date: "2025-07-09",

			wantAllowed: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			t.Cleanup(ctrl.Finish)

			settings := availabilityMocks.NewMockSettingsSource(ctrl)
			employees := availabilityMocks.NewMockEmployeeSource(ctrl)
			appointments := availabilityMocks.NewMockAppointmentSource(ctrl)

			engine := availability.NewWithClock(settings, employees, appointments, testConfig(), mocks.NewOtel(), func() time.Time {
				return tt.now
			})

			settings.EXPECT().
				GetOrInitialize(gomock.Any(), testBusinessID).
				Return(testSettings(), nil)

			got, err := engine.BookingDateStatus(context.Background(), tt.date, testBusinessID)

			require.NoError(t, err)
			assert.Equal(t, tt.wantAllowed, got.Allowed)
			assert.Equal(t, tt.wantIsTooSoon, got.IsTooSoon)
			assert.Equal(t, tt.wantIsTooFar, got.IsTooFar)
			assert.Equal(t, 4, got.MinHours)
			assert.Equal(t, 30, got.MaxDays)
		})
	}
}

func TestEngine_IsWithinBookingWindow(t *testing.T) {
	tests := []struct {
		name  string
		date  string
		clock string
		want  bool
	}{
		{name: "inside the lead time is rejected", date: "2025-06-09", clock: "10:00", want: false},
		{name: "exactly at the earliest instant is accepted", date: "2025-06-09", clock: "13:00", want: true},
		{name: "later the same day is accepted", date: "2025-06-09", clock: "16:00", want: true},
		{name: "past the advance horizon is rejected", date: "2025-07-10", clock: "09:00", want: false},
		{name: "unparseable input is rejected", date: "not-a-date", clock: "10:00", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fixture := newEngineFixture(t)

			fixture.settings.EXPECT().
				GetOrInitialize(gomock.Any(), testBusinessID).
				Return(testSettings(), nil)

			got, err := fixture.engine.IsWithinBookingWindow(context.Background(), tt.date, tt.clock, testBusinessID)

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEngine_AvailableSlots_LunchOverlap(t *testing.T) {
	fixture := newEngineFixture(t)

	employees := []employeeModel.Employee{
		{ID: "emp-1", Name: "Ana", Availability: fullAvailability()},
	}

	fixture.settings.EXPECT().
		GetOrInitialize(gomock.Any(), testBusinessID).
		Return(testSettings(), nil)
	fixture.appointments.EXPECT().
		ListActiveOn(gomock.Any(), testBusinessID, "2025-06-10").
		Return([]apptModel.Appointment{}, nil)
	fixture.employees.EXPECT().
		ListByBusiness(gomock.Any(), testBusinessID).
		Return(employees, nil)

	slots, err := fixture.engine.AvailableSlots(context.Background(), availability.SlotQuery{
		Date:            "2025-06-10",
		EmployeeID:      "emp-1",
		DurationMinutes: 60,
		BusinessID:      testBusinessID,
	})

	require.NoError(t, err)

	assert.Contains(t, slots, "09:00")
	assert.Contains(t, slots, "12:00")
	assert.Contains(t, slots, "14:00")
	assert.Contains(t, slots, "17:00")

	assert.NotContains(t, slots, "12:30")
	assert.NotContains(t, slots, "13:00")
	assert.NotContains(t, slots, "13:30")
	assert.NotContains(t, slots, "17:30")
}

func TestEngine_AvailableSlots_FullDayIsEmpty(t *testing.T) {
	fixture := newEngineFixture(t)

	settings := testSettings()
	settings.DailyCapacity = 2

	fixture.settings.EXPECT().
		GetOrInitialize(gomock.Any(), testBusinessID).
		Return(settings, nil)
	fixture.appointments.EXPECT().
		ListActiveOn(gomock.Any(), testBusinessID, "2025-06-10").
		Return([]apptModel.Appointment{
			testAppointment("apt-1", "client-1", "emp-1", "2025-06-10", "10:00", 30),
			testAppointment("apt-2", "client-2", "emp-2", "2025-06-10", "11:00", 30),
		}, nil)

	slots, err := fixture.engine.AvailableSlots(context.Background(), availability.SlotQuery{
		Date:            "2025-06-10",
		EmployeeID:      "emp-1",
		DurationMinutes: 30,
		BusinessID:      testBusinessID,
	})

	require.NoError(t, err)
	assert.Empty(t, slots)
}

func TestEngine_AvailableSlots_NoEmployeeSelected(t *testing.T) {
	fixture := newEngineFixture(t)

	slots, err := fixture.engine.AvailableSlots(context.Background(), availability.SlotQuery{
		Date:            "2025-06-10",
		DurationMinutes: 30,
		BusinessID:      testBusinessID,
	})

	require.NoError(t, err)
	assert.Empty(t, slots)
}

func TestEngine_AvailableSlots_TeamCapacity(t *testing.T) {
	employees := []employeeModel.Employee{
		{ID: "emp-1", Name: "Ana", Availability: fullAvailability()},
		{ID: "emp-2", Name: "Ben", Availability: fullAvailability()},
	}
	booked := []apptModel.Appointment{
		testAppointment("apt-1", "client-1", "emp-1", "2025-06-10", "10:00", 30),
	}

	t.Run("slot survives while a teammate is free", func(t *testing.T) {
		fixture := newEngineFixture(t)

		fixture.settings.EXPECT().
			GetOrInitialize(gomock.Any(), testBusinessID).
			Return(testSettings(), nil)
		fixture.appointments.EXPECT().
			ListActiveOn(gomock.Any(), testBusinessID, "2025-06-10").
			Return(booked, nil)
		fixture.employees.EXPECT().
			ListByBusiness(gomock.Any(), testBusinessID).
			Return(employees, nil)

		slots, err := fixture.engine.AvailableSlots(context.Background(), availability.SlotQuery{
			Date:            "2025-06-10",
			DurationMinutes: 30,
			BusinessID:      testBusinessID,
			UseTeamCapacity: true,
		})

		require.NoError(t, err)
		assert.Contains(t, slots, "10:00")
	})

	t.Run("single-employee query drops the conflicting slot", func(t *testing.T) {
		fixture := newEngineFixture(t)

		fixture.settings.EXPECT().
			GetOrInitialize(gomock.Any(), testBusinessID).
			Return(testSettings(), nil)
		fixture.appointments.EXPECT().
			ListActiveOn(gomock.Any(), testBusinessID, "2025-06-10").
			Return(booked, nil)
		fixture.employees.EXPECT().
			ListByBusiness(gomock.Any(), testBusinessID).
			Return(employees, nil)

		slots, err := fixture.engine.AvailableSlots(context.Background(), availability.SlotQuery{
			Date:            "2025-06-10",
			EmployeeID:      "emp-1",
			DurationMinutes: 30,
			BusinessID:      testBusinessID,
		})

		require.NoError(t, err)
		assert.NotContains(t, slots, "10:00")
		assert.Contains(t, slots, "10:30")
	})
}

func TestEngine_AssignableEmployeesForSlot_Ordering(t *testing.T) {
	fixture := newEngineFixture(t)

	employees := []employeeModel.Employee{
		{ID: "emp-ana", Name: "Ana", Availability: fullAvailability()},
		{ID: "emp-ben", Name: "Ben", Availability: fullAvailability()},
		{ID: "emp-carl", Name: "Carl", Availability: fullAvailability()},
	}

	fixture.settings.EXPECT().
		GetOrInitialize(gomock.Any(), testBusinessID).
		Return(testSettings(), nil)
	fixture.employees.EXPECT().
		ListByBusiness(gomock.Any(), testBusinessID).
		Return(employees, nil)
	fixture.appointments.EXPECT().
		ListActiveOn(gomock.Any(), testBusinessID, "2025-06-10").
		Return([]apptModel.Appointment{}, nil)

	got, err := fixture.engine.AssignableEmployeesForSlot(context.Background(), "2025-06-10", "10:00", 30, testBusinessID, "", "emp-carl")

	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, "emp-carl", got[0].ID)
	assert.Equal(t, "emp-ana", got[1].ID)
	assert.Equal(t, "emp-ben", got[2].ID)
}

func TestEngine_ResolveBookingEmployee(t *testing.T) {
	employees := []employeeModel.Employee{
		{ID: "emp-1", Name: "Ana", Availability: fullAvailability()},
		{ID: "emp-2", Name: "Ben", Availability: fullAvailability()},
	}

	t.Run("falls back to a free teammate when the preferred employee is busy", func(t *testing.T) {
		fixture := newEngineFixture(t)

		fixture.settings.EXPECT().
			GetOrInitialize(gomock.Any(), testBusinessID).
			Return(testSettings(), nil)
		fixture.employees.EXPECT().
			ListByBusiness(gomock.Any(), testBusinessID).
			Return(employees, nil)
		fixture.appointments.EXPECT().
			ListActiveOn(gomock.Any(), testBusinessID, "2025-06-10").
			Return([]apptModel.Appointment{
				testAppointment("apt-1", "client-1", "emp-1", "2025-06-10", "10:00", 30),
			}, nil)

		got, err := fixture.engine.ResolveBookingEmployee(context.Background(), "2025-06-10", "10:00", 30, testBusinessID, "emp-1", "")

		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, "emp-2", got.ID)
	})

	t.Run("returns nil when nobody can serve the slot", func(t *testing.T) {
		fixture := newEngineFixture(t)

		fixture.settings.EXPECT().
			GetOrInitialize(gomock.Any(), testBusinessID).
			Return(testSettings(), nil)
		fixture.employees.EXPECT().
			ListByBusiness(gomock.Any(), testBusinessID).
			Return(employees, nil)
		fixture.appointments.EXPECT().
			ListActiveOn(gomock.Any(), testBusinessID, "2025-06-10").
			Return([]apptModel.Appointment{
				testAppointment("apt-1", "client-1", "emp-1", "2025-06-10", "10:00", 30),
				testAppointment("apt-2", "client-2", "emp-2", "2025-06-10", "10:00", 30),
			}, nil)

		got, err := fixture.engine.ResolveBookingEmployee(context.Background(), "2025-06-10", "10:00", 30, testBusinessID, "emp-1", "")

		require.NoError(t, err)
		assert.Nil(t, got)
	})
}
