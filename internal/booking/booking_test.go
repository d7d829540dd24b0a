package booking_test

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"reservahub/config"
	kafkaMocks "reservahub/infras/kafka/mocks"
	"reservahub/infras/otel/mocks"
	"reservahub/internal/availability"
	availabilityMocks "reservahub/internal/availability/mocks"
	"reservahub/internal/booking"
	apptMocks "reservahub/internal/domains/appointment/mocks"
	apptModel "reservahub/internal/domains/appointment/model"
	apptRepo "reservahub/internal/domains/appointment/repository"
	businessMocks "reservahub/internal/domains/business/mocks"
	businessModel "reservahub/internal/domains/business/model"
	clientMocks "reservahub/internal/domains/client/mocks"
	clientModel "reservahub/internal/domains/client/model"
	clientService "reservahub/internal/domains/client/service"
	employeeModel "reservahub/internal/domains/employee/model"
	notifMocks "reservahub/internal/domains/notification/mocks"
	notificationModel "reservahub/internal/domains/notification/model"
	serviceMocks "reservahub/internal/domains/service/mocks"
	serviceModel "reservahub/internal/domains/service/model"
	"reservahub/internal/notification"
	dispatcherMocks "reservahub/internal/notification/mocks"
	"reservahub/shared/constant"
	"reservahub/shared/failure"
)

const testBusinessID = "business-1"

type fixture struct {
	engine        *availabilityMocks.MockEngine
	appointments  *apptMocks.MockAppointmentService
	services      *serviceMocks.MockServiceService
	clients       *clientMocks.MockClientService
	business      *businessMocks.MockBusiness
	notifications *notifMocks.MockNotificationService
	dispatcher    *dispatcherMocks.MockDispatcher
	kafka         *kafkaMocks.MockClient
	orchestrator  booking.Orchestrator
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	f := &fixture{
		engine:        availabilityMocks.NewMockEngine(ctrl),
		appointments:  apptMocks.NewMockAppointmentService(ctrl),
		services:      serviceMocks.NewMockServiceService(ctrl),
		clients:       clientMocks.NewMockClientService(ctrl),
		business:      businessMocks.NewMockBusiness(ctrl),
		notifications: notifMocks.NewMockNotificationService(ctrl),
		dispatcher:    dispatcherMocks.NewMockDispatcher(ctrl),
		kafka:         kafkaMocks.NewMockClient(ctrl),
	}

	f.orchestrator = booking.New(
		f.engine,
		f.appointments,
		f.services,
		f.clients,
		f.business,
		f.notifications,
		f.dispatcher,
		f.kafka,
		&config.Config{},
		mocks.NewOtel(),
	)

	// Email dispatch is fire-and-forget; the goroutine may or may not run
	// before the test finishes.
	f.dispatcher.EXPECT().
		SendAppointmentNotification(gomock.Any(), gomock.Any()).
		Return(notification.Result{Sent: true}).
		AnyTimes()
	f.dispatcher.EXPECT().
		SendAppointmentConfirmation(gomock.Any(), gomock.Any()).
		Return(notification.Result{Sent: true}).
		AnyTimes()

	return f
}

func testSettings() businessModel.Settings {
	return businessModel.Settings{
		BusinessID:       testBusinessID,
		BusinessName:     "Bella Salon",
		Schedule:         businessModel.DefaultSchedule("09:00", "18:00"),
		DailyCapacity:    20,
		ClientDailyLimit: 1,
		BookingMinHours:  4,
		BookingMaxDays:   30,
	}
}

func testService() serviceModel.Service {
	return serviceModel.Service{
		ID:              "svc-1",
		BusinessID:      testBusinessID,
		Name:            "Haircut",
		DurationMinutes: 30,
		Price:           50,
	}
}

func validRequest() booking.Request {
	return booking.Request{
		ServiceID:    "svc-1",
		EmployeeID:   "emp-1",
		EmployeeName: "Ana",
		Date:         "2025-06-10",
		Time:         "10:00",
		Source:       constant.BookingSourceManual,
		Client: booking.ClientSelection{
			Name:  "Maria Lopez",
			Email: "maria@example.com",
		},
	}
}

func resolvedClient() clientModel.Client {
	return clientModel.Client{
		ID:    "client-1",
		Name:  "Maria Lopez",
		Email: "maria@example.com",
	}
}

func anaEmployee() *employeeModel.Employee {
	return &employeeModel.Employee{ID: "emp-1", Name: "Ana"}
}

func TestOrchestrator_Book_ValidationOrder(t *testing.T) {
	t.Run("missing employee selection rejects before anything else", func(t *testing.T) {
		f := newFixture(t)

		req := validRequest()
		req.EmployeeID = ""

		_, err := f.orchestrator.Book(context.Background(), req, testBusinessID)

		require.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})

	t.Run("outside the booking window", func(t *testing.T) {
		f := newFixture(t)

		f.services.EXPECT().GetModel(gomock.Any(), "svc-1", testBusinessID).Return(testService(), nil)
		f.business.EXPECT().GetOrInitialize(gomock.Any(), testBusinessID).Return(testSettings(), nil)
		f.engine.EXPECT().
			IsWithinBookingWindow(gomock.Any(), "2025-06-10", "10:00", testBusinessID).
			Return(false, nil)

		_, err := f.orchestrator.Book(context.Background(), validRequest(), testBusinessID)

		require.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})

	t.Run("day at capacity", func(t *testing.T) {
		f := newFixture(t)

		f.services.EXPECT().GetModel(gomock.Any(), "svc-1", testBusinessID).Return(testService(), nil)
		f.business.EXPECT().GetOrInitialize(gomock.Any(), testBusinessID).Return(testSettings(), nil)
		f.engine.EXPECT().IsWithinBookingWindow(gomock.Any(), "2025-06-10", "10:00", testBusinessID).Return(true, nil)
		f.engine.EXPECT().
			DailyAvailability(gomock.Any(), "2025-06-10", "", testBusinessID).
			Return(availability.DailyAvailability{Limit: 20, Booked: 20, IsFull: true}, nil)

		_, err := f.orchestrator.Book(context.Background(), validRequest(), testBusinessID)

		require.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})

	t.Run("client over the daily limit", func(t *testing.T) {
		f := newFixture(t)

		f.services.EXPECT().GetModel(gomock.Any(), "svc-1", testBusinessID).Return(testService(), nil)
		f.business.EXPECT().GetOrInitialize(gomock.Any(), testBusinessID).Return(testSettings(), nil)
		f.engine.EXPECT().IsWithinBookingWindow(gomock.Any(), "2025-06-10", "10:00", testBusinessID).Return(true, nil)
		f.engine.EXPECT().
			DailyAvailability(gomock.Any(), "2025-06-10", "", testBusinessID).
			Return(availability.DailyAvailability{Limit: 20, Booked: 1, Remaining: 19}, nil)
		f.engine.EXPECT().
			ClientDailyAvailability(gomock.Any(), gomock.Any()).
			Return(availability.ClientDailyAvailability{Limit: 1, Used: 1, Allowed: false}, nil)

		_, err := f.orchestrator.Book(context.Background(), validRequest(), testBusinessID)

		require.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})

	t.Run("slot no longer available at submit time", func(t *testing.T) {
		f := newFixture(t)

		f.services.EXPECT().GetModel(gomock.Any(), "svc-1", testBusinessID).Return(testService(), nil)
		f.business.EXPECT().GetOrInitialize(gomock.Any(), testBusinessID).Return(testSettings(), nil)
		f.engine.EXPECT().IsWithinBookingWindow(gomock.Any(), "2025-06-10", "10:00", testBusinessID).Return(true, nil)
		f.engine.EXPECT().
			DailyAvailability(gomock.Any(), "2025-06-10", "", testBusinessID).
			Return(availability.DailyAvailability{Limit: 20, Remaining: 19}, nil)
		f.engine.EXPECT().
			ClientDailyAvailability(gomock.Any(), gomock.Any()).
			Return(availability.ClientDailyAvailability{Limit: 1, Allowed: true}, nil)
		f.engine.EXPECT().
			AvailableSlots(gomock.Any(), gomock.Any()).
			Return([]string{"11:00", "11:30"}, nil)

		_, err := f.orchestrator.Book(context.Background(), validRequest(), testBusinessID)

		require.Error(t, err)
		assert.Equal(t, http.StatusConflict, failure.GetCode(err))
	})

	t.Run("nobody assignable", func(t *testing.T) {
		f := newFixture(t)

		f.services.EXPECT().GetModel(gomock.Any(), "svc-1", testBusinessID).Return(testService(), nil)
		f.business.EXPECT().GetOrInitialize(gomock.Any(), testBusinessID).Return(testSettings(), nil)
		f.engine.EXPECT().IsWithinBookingWindow(gomock.Any(), "2025-06-10", "10:00", testBusinessID).Return(true, nil)
		f.engine.EXPECT().
			DailyAvailability(gomock.Any(), "2025-06-10", "", testBusinessID).
			Return(availability.DailyAvailability{Limit: 20, Remaining: 19}, nil)
		f.engine.EXPECT().
			ClientDailyAvailability(gomock.Any(), gomock.Any()).
			Return(availability.ClientDailyAvailability{Limit: 1, Allowed: true}, nil)
		f.engine.EXPECT().
			AvailableSlots(gomock.Any(), gomock.Any()).
			Return([]string{"10:00"}, nil)
		f.engine.EXPECT().
			ResolveBookingEmployee(gomock.Any(), "2025-06-10", "10:00", 30, testBusinessID, "emp-1", "").
			Return(nil, nil)

		_, err := f.orchestrator.Book(context.Background(), validRequest(), testBusinessID)

		require.Error(t, err)
		assert.Equal(t, http.StatusConflict, failure.GetCode(err))
	})
}

func (f *fixture) expectHappyEngine(resolved *employeeModel.Employee) {
	f.engine.EXPECT().IsWithinBookingWindow(gomock.Any(), "2025-06-10", "10:00", testBusinessID).Return(true, nil)
	f.engine.EXPECT().
		DailyAvailability(gomock.Any(), "2025-06-10", "", testBusinessID).
		Return(availability.DailyAvailability{Limit: 20, Remaining: 19}, nil)
	f.engine.EXPECT().
		ClientDailyAvailability(gomock.Any(), gomock.Any()).
		Return(availability.ClientDailyAvailability{Limit: 1, Allowed: true}, nil)
	f.engine.EXPECT().
		AvailableSlots(gomock.Any(), gomock.Any()).
		Return([]string{"10:00", "10:30"}, nil)
	f.engine.EXPECT().
		ResolveBookingEmployee(gomock.Any(), "2025-06-10", "10:00", 30, testBusinessID, "emp-1", "").
		Return(resolved, nil)
}

func TestOrchestrator_Book_SelfService(t *testing.T) {
	f := newFixture(t)

	settings := testSettings()
	settings.PrepaymentEnable = true
	settings.PrepaymentRate = 0.4
	settings.PrepaymentPhone = "8888-0000"

	f.services.EXPECT().GetModel(gomock.Any(), "svc-1", testBusinessID).Return(testService(), nil)
	f.business.EXPECT().GetOrInitialize(gomock.Any(), testBusinessID).Return(settings, nil)
	f.expectHappyEngine(anaEmployee())
	f.clients.EXPECT().
		ResolveOrCreate(gomock.Any(), testBusinessID, clientService.ClientRef{Name: "Maria Lopez", Email: "maria@example.com"}).
		Return(resolvedClient(), true, nil)

	var persisted apptModel.Appointment

	f.appointments.EXPECT().
		Create(gomock.Any(), gomock.Any(), apptRepo.SlotGuard{DailyCapacity: 20, ClientDailyLimit: 1}).
		DoAndReturn(func(_ context.Context, appointment apptModel.Appointment, _ apptRepo.SlotGuard) error {
			persisted = appointment

			return nil
		})
	f.clients.EXPECT().RecordVisit(gomock.Any(), "client-1", "2025-06-10").Return(nil)
	f.notifications.EXPECT().
		CreateForAppointment(gomock.Any(), gomock.Any(), notificationModel.TypeNewAppointment).
		Return(nil)

	req := validRequest()
	req.Source = constant.BookingSourceClientApp

	res, err := f.orchestrator.Book(context.Background(), req, testBusinessID)

	require.NoError(t, err)
	assert.True(t, res.ClientCreated)
	assert.False(t, res.EmployeeSubstituted)
	assert.Empty(t, res.Notice)

	assert.Equal(t, constant.AppointmentStatusPending, persisted.Status)
	assert.Equal(t, "client-1", persisted.ClientID)
	assert.Equal(t, "emp-1", persisted.EmployeeID)
	assert.True(t, persisted.PrepaymentRequired)
	assert.Equal(t, 0.4, persisted.PrepaymentRate)
	assert.Equal(t, float64(20), persisted.PrepaymentAmount)
	assert.Equal(t, apptModel.PrepaymentStatusPending, persisted.PrepaymentStatus)
	assert.Equal(t, apptModel.ReceiptChannelEmail, persisted.PrepaymentReceiptChannel)
	assert.True(t, persisted.PrepaymentRequestedAt.Valid)
}

func TestOrchestrator_Book_SubstitutionNotice(t *testing.T) {
	f := newFixture(t)

	f.services.EXPECT().GetModel(gomock.Any(), "svc-1", testBusinessID).Return(testService(), nil)
	f.business.EXPECT().GetOrInitialize(gomock.Any(), testBusinessID).Return(testSettings(), nil)
	f.expectHappyEngine(&employeeModel.Employee{ID: "emp-2", Name: "Ben"})
	f.clients.EXPECT().
		ResolveOrCreate(gomock.Any(), testBusinessID, gomock.Any()).
		Return(resolvedClient(), false, nil)

	var persisted apptModel.Appointment

	f.appointments.EXPECT().
		Create(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, appointment apptModel.Appointment, _ apptRepo.SlotGuard) error {
			persisted = appointment

			return nil
		})
	f.notifications.EXPECT().
		CreateForAppointment(gomock.Any(), gomock.Any(), notificationModel.TypeNewAppointment).
		Return(nil)

	res, err := f.orchestrator.Book(context.Background(), validRequest(), testBusinessID)

	require.NoError(t, err)
	assert.True(t, res.EmployeeSubstituted)
	assert.NotEmpty(t, res.Notice)
	assert.Equal(t, "emp-2", persisted.EmployeeID)
	assert.Equal(t, "Ben", persisted.EmployeeName)
}

func TestOrchestrator_Book_SideEffectFailuresDoNotFailBooking(t *testing.T) {
	f := newFixture(t)

	f.services.EXPECT().GetModel(gomock.Any(), "svc-1", testBusinessID).Return(testService(), nil)
	f.business.EXPECT().GetOrInitialize(gomock.Any(), testBusinessID).Return(testSettings(), nil)
	f.expectHappyEngine(anaEmployee())
	f.clients.EXPECT().
		ResolveOrCreate(gomock.Any(), testBusinessID, gomock.Any()).
		Return(resolvedClient(), false, nil)
	f.appointments.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	f.clients.EXPECT().
		RecordVisit(gomock.Any(), "client-1", "2025-06-10").
		Return(errors.New("visit counter down"))
	f.notifications.EXPECT().
		CreateForAppointment(gomock.Any(), gomock.Any(), notificationModel.TypeNewAppointment).
		Return(errors.New("notification store down"))

	req := validRequest()
	req.Source = constant.BookingSourceClientApp

	_, err := f.orchestrator.Book(context.Background(), req, testBusinessID)

	require.NoError(t, err)
}

func TestOrchestrator_Book_RaceLostAtPersist(t *testing.T) {
	f := newFixture(t)

	f.services.EXPECT().GetModel(gomock.Any(), "svc-1", testBusinessID).Return(testService(), nil)
	f.business.EXPECT().GetOrInitialize(gomock.Any(), testBusinessID).Return(testSettings(), nil)
	f.expectHappyEngine(anaEmployee())
	f.clients.EXPECT().
		ResolveOrCreate(gomock.Any(), testBusinessID, gomock.Any()).
		Return(resolvedClient(), false, nil)
	f.appointments.EXPECT().
		Create(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(apptRepo.ErrSlotTaken)

	_, err := f.orchestrator.Book(context.Background(), validRequest(), testBusinessID)

	require.Error(t, err)
	assert.Equal(t, http.StatusConflict, failure.GetCode(err))
}

func TestOrchestrator_Book_CancelledManualSaveSkipsChecks(t *testing.T) {
	f := newFixture(t)

	f.services.EXPECT().GetModel(gomock.Any(), "svc-1", testBusinessID).Return(testService(), nil)
	f.business.EXPECT().GetOrInitialize(gomock.Any(), testBusinessID).Return(testSettings(), nil)
	f.clients.EXPECT().
		ResolveOrCreate(gomock.Any(), testBusinessID, gomock.Any()).
		Return(resolvedClient(), false, nil)

	var persisted apptModel.Appointment

	f.appointments.EXPECT().
		Insert(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, appointment apptModel.Appointment) error {
			persisted = appointment

			return nil
		})

	req := validRequest()
	req.Status = constant.AppointmentStatusCancelled

	_, err := f.orchestrator.Book(context.Background(), req, testBusinessID)

	require.NoError(t, err)
	assert.Equal(t, constant.AppointmentStatusCancelled, persisted.Status)
}

func confirmedAppointment() apptModel.Appointment {
	return apptModel.Appointment{
		ID:          "apt-1",
		BusinessID:  testBusinessID,
		ClientID:    "client-1",
		ClientEmail: "maria@example.com",
		Date:        "2025-06-10",
		Time:        "10:00",
		Status:      constant.AppointmentStatusConfirmed,
		Source:      constant.BookingSourceManual,
	}
}

func TestOrchestrator_Confirm(t *testing.T) {
	t.Run("pending moves to confirmed and sends the email once", func(t *testing.T) {
		f := newFixture(t)

		appointment := confirmedAppointment()
		appointment.Status = constant.AppointmentStatusPending

		f.appointments.EXPECT().GetModel(gomock.Any(), "apt-1", testBusinessID).Return(appointment, nil)
		f.appointments.EXPECT().
			UpdateFields(gomock.Any(), gomock.Any(), "apt-1", testBusinessID).
			DoAndReturn(func(_ context.Context, fields map[string]any, _, _ string) error {
				assert.Equal(t, constant.AppointmentStatusConfirmed, fields[apptModel.FieldStatus])

				return nil
			})
		f.appointments.EXPECT().
			UpdateFields(gomock.Any(), gomock.Any(), "apt-1", testBusinessID).
			DoAndReturn(func(_ context.Context, fields map[string]any, _, _ string) error {
				assert.Equal(t, apptModel.EmailStatusSent, fields["confirmation_email_status"])
				assert.NotNil(t, fields["confirmation_email_sent_at"])

				return nil
			})

		require.NoError(t, f.orchestrator.Confirm(context.Background(), "apt-1", testBusinessID))
	})

	t.Run("re-confirming with the sent flag set is a no-op", func(t *testing.T) {
		f := newFixture(t)

		appointment := confirmedAppointment()
		appointment.ConfirmationEmailSentAt = sql.NullTime{Valid: true}

		f.appointments.EXPECT().GetModel(gomock.Any(), "apt-1", testBusinessID).Return(appointment, nil)

		require.NoError(t, f.orchestrator.Confirm(context.Background(), "apt-1", testBusinessID))
	})

	t.Run("a completed appointment cannot be confirmed", func(t *testing.T) {
		f := newFixture(t)

		appointment := confirmedAppointment()
		appointment.Status = constant.AppointmentStatusCompleted

		f.appointments.EXPECT().GetModel(gomock.Any(), "apt-1", testBusinessID).Return(appointment, nil)

		err := f.orchestrator.Confirm(context.Background(), "apt-1", testBusinessID)

		require.Error(t, err)
		assert.Equal(t, http.StatusConflict, failure.GetCode(err))
	})
}

func TestOrchestrator_Complete(t *testing.T) {
	t.Run("confirmed closes and records the visit", func(t *testing.T) {
		f := newFixture(t)

		f.appointments.EXPECT().GetModel(gomock.Any(), "apt-1", testBusinessID).Return(confirmedAppointment(), nil)
		f.appointments.EXPECT().
			UpdateFields(gomock.Any(), gomock.Any(), "apt-1", testBusinessID).
			DoAndReturn(func(_ context.Context, fields map[string]any, _, _ string) error {
				assert.Equal(t, constant.AppointmentStatusCompleted, fields[apptModel.FieldStatus])

				return nil
			})
		f.clients.EXPECT().RecordVisit(gomock.Any(), "client-1", "2025-06-10").Return(nil)

		require.NoError(t, f.orchestrator.Complete(context.Background(), "apt-1", testBusinessID))
	})

	t.Run("pending cannot be completed", func(t *testing.T) {
		f := newFixture(t)

		appointment := confirmedAppointment()
		appointment.Status = constant.AppointmentStatusPending

		f.appointments.EXPECT().GetModel(gomock.Any(), "apt-1", testBusinessID).Return(appointment, nil)

		err := f.orchestrator.Complete(context.Background(), "apt-1", testBusinessID)

		require.Error(t, err)
		assert.Equal(t, http.StatusConflict, failure.GetCode(err))
	})
}

func TestOrchestrator_Cancel(t *testing.T) {
	t.Run("confirmed can be cancelled", func(t *testing.T) {
		f := newFixture(t)

		f.appointments.EXPECT().GetModel(gomock.Any(), "apt-1", testBusinessID).Return(confirmedAppointment(), nil)
		f.appointments.EXPECT().
			UpdateFields(gomock.Any(), gomock.Any(), "apt-1", testBusinessID).
			DoAndReturn(func(_ context.Context, fields map[string]any, _, _ string) error {
				assert.Equal(t, constant.AppointmentStatusCancelled, fields[apptModel.FieldStatus])

				return nil
			})
		f.notifications.EXPECT().
			CreateForAppointment(gomock.Any(), gomock.Any(), notificationModel.TypeCancelledAppointment).
			Return(nil)

		require.NoError(t, f.orchestrator.Cancel(context.Background(), "apt-1", testBusinessID))
	})

	t.Run("cancelled is terminal", func(t *testing.T) {
		f := newFixture(t)

		appointment := confirmedAppointment()
		appointment.Status = constant.AppointmentStatusCancelled

		f.appointments.EXPECT().GetModel(gomock.Any(), "apt-1", testBusinessID).Return(appointment, nil)

		err := f.orchestrator.Cancel(context.Background(), "apt-1", testBusinessID)

		require.Error(t, err)
		assert.Equal(t, http.StatusConflict, failure.GetCode(err))
	})
}

func TestOrchestrator_Edit(t *testing.T) {
	f := newFixture(t)

	existing := confirmedAppointment()

	f.appointments.EXPECT().GetModel(gomock.Any(), "apt-1", testBusinessID).Return(existing, nil)
	f.services.EXPECT().GetModel(gomock.Any(), "svc-1", testBusinessID).Return(testService(), nil)
	f.business.EXPECT().GetOrInitialize(gomock.Any(), testBusinessID).Return(testSettings(), nil)

	f.engine.EXPECT().IsWithinBookingWindow(gomock.Any(), "2025-06-10", "10:00", testBusinessID).Return(true, nil)
	f.engine.EXPECT().
		DailyAvailability(gomock.Any(), "2025-06-10", "apt-1", testBusinessID).
		Return(availability.DailyAvailability{Limit: 20, Remaining: 19}, nil)
	f.engine.EXPECT().
		ClientDailyAvailability(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, query availability.ClientQuery) (availability.ClientDailyAvailability, error) {
			assert.Equal(t, "apt-1", query.IgnoreID)

			return availability.ClientDailyAvailability{Limit: 1, Allowed: true}, nil
		})
	f.engine.EXPECT().
		AvailableSlots(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, query availability.SlotQuery) ([]string, error) {
			assert.Equal(t, "apt-1", query.IgnoreID)

			return []string{"10:00"}, nil
		})
	f.engine.EXPECT().
		ResolveBookingEmployee(gomock.Any(), "2025-06-10", "10:00", 30, testBusinessID, "emp-1", "apt-1").
		Return(anaEmployee(), nil)
	f.clients.EXPECT().
		ResolveOrCreate(gomock.Any(), testBusinessID, gomock.Any()).
		Return(resolvedClient(), false, nil)
	f.appointments.EXPECT().
		UpdateFields(gomock.Any(), gomock.Any(), "apt-1", testBusinessID).
		DoAndReturn(func(_ context.Context, fields map[string]any, _, _ string) error {
			assert.Equal(t, "emp-1", fields[apptModel.FieldEmployeeID])
			assert.Equal(t, constant.BookingSourceManualEdit, fields[apptModel.FieldSource])

			return nil
		})
	f.notifications.EXPECT().
		CreateForAppointment(gomock.Any(), gomock.Any(), notificationModel.TypeNewAppointment).
		Return(nil)

	res, err := f.orchestrator.Edit(context.Background(), "apt-1", validRequest(), testBusinessID)

	require.NoError(t, err)
	assert.Equal(t, "apt-1", res.Appointment.ID)
}
