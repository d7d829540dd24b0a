package booking

//go:generate go run go.uber.org/mock/mockgen -source=./booking.go -destination=./mocks/booking_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"math"
	"slices"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"reservahub/config"
	"reservahub/infras/kafka"
	"reservahub/infras/otel"
	"reservahub/internal/availability"
	apptModel "reservahub/internal/domains/appointment/model"
	apptRepo "reservahub/internal/domains/appointment/repository"
	appointmentService "reservahub/internal/domains/appointment/service"
	businessModel "reservahub/internal/domains/business/model"
	businessService "reservahub/internal/domains/business/service"
	clientService "reservahub/internal/domains/client/service"
	notificationModel "reservahub/internal/domains/notification/model"
	notificationService "reservahub/internal/domains/notification/service"
	serviceModel "reservahub/internal/domains/service/model"
	serviceService "reservahub/internal/domains/service/service"
	"reservahub/internal/notification"
	"reservahub/shared/constant"
	"reservahub/shared/failure"
	gModel "reservahub/shared/model"
	"reservahub/shared/timezone"
)

// Orchestrator runs the multi-step booking flow: validation through the
// availability engine, employee resolution, client upsert, persistence, and
// the best-effort side effects. Side-effect failures never roll back a
// persisted appointment.
type Orchestrator interface {
	Book(ctx context.Context, req Request, businessID string) (Response, error)
	Edit(ctx context.Context, id string, req Request, businessID string) (Response, error)
	Confirm(ctx context.Context, id, businessID string) error
	Complete(ctx context.Context, id, businessID string) error
	Cancel(ctx context.Context, id, businessID string) error
}

type orchestratorImpl struct {
	engine        availability.Engine
	appointments  appointmentService.Appointment
	services      serviceService.Service
	clients       clientService.Client
	business      businessService.Business
	notifications notificationService.Notification
	dispatcher    notification.Dispatcher
	kafka         kafka.Client
	cfg           *config.Config
	otel          otel.Otel
}

func New(
	engine availability.Engine,
	appointments appointmentService.Appointment,
	services serviceService.Service,
	clients clientService.Client,
	business businessService.Business,
	notifications notificationService.Notification,
	dispatcher notification.Dispatcher,
	kafkaClient kafka.Client,
	cfg *config.Config,
	otel otel.Otel,
) Orchestrator {
	return &orchestratorImpl{
		engine:        engine,
		appointments:  appointments,
		services:      services,
		clients:       clients,
		business:      business,
		notifications: notifications,
		dispatcher:    dispatcher,
		kafka:         kafkaClient,
		cfg:           cfg,
		otel:          otel,
	}
}

func (o *orchestratorImpl) Book(ctx context.Context, req Request, businessID string) (res Response, err error) {
	ctx, scope := o.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Book")
	defer scope.End()
	defer scope.TraceIfError(err)

	return o.book(ctx, req, businessID, constant.Empty)
}

// Edit re-runs the booking flow for an existing appointment. The appointment
// being edited is excluded from capacity and conflict counting so it does not
// collide with itself.
func (o *orchestratorImpl) Edit(ctx context.Context, id string, req Request, businessID string) (res Response, err error) {
	ctx, scope := o.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Edit")
	defer scope.End()
	defer scope.TraceIfError(err)

	if _, err = o.appointments.GetModel(ctx, id, businessID); err != nil {
		return res, err
	}

	req.Source = constant.BookingSourceManualEdit

	return o.book(ctx, req, businessID, id)
}

func (o *orchestratorImpl) book(ctx context.Context, req Request, businessID, ignoreID string) (res Response, err error) {
	if err = req.checkSelections(); err != nil {
		return res, err
	}

	svc, err := o.services.GetModel(ctx, req.ServiceID, businessID)
	if err != nil {
		return res, err
	}

	settings, err := o.business.GetOrInitialize(ctx, businessID)
	if err != nil {
		return res, fmt.Errorf("failed to load business settings: %w", err)
	}

	// A manual save as cancelled records history only; a cancelled
	// appointment occupies no capacity, so the availability checks are
	// skipped.
	if !req.selfService() && req.Status == constant.AppointmentStatusCancelled {
		return o.persistCancelled(ctx, req, svc, settings, businessID, ignoreID)
	}

	withinWindow, err := o.engine.IsWithinBookingWindow(ctx, req.Date, req.Time, businessID)
	if err != nil {
		return res, err
	}

	if !withinWindow {
		return res, failure.BadRequestFromString("the selected time is outside the booking window") // nolint:wrapcheck
	}

	daily, err := o.engine.DailyAvailability(ctx, req.Date, ignoreID, businessID)
	if err != nil {
		return res, err
	}

	if daily.IsFull {
		return res, failure.BadRequestFromString("this day is fully booked") // nolint:wrapcheck
	}

	clientAvailability, err := o.engine.ClientDailyAvailability(ctx, availability.ClientQuery{
		Date: req.Date,
		Identity: availability.ClientIdentity{
			ID:    req.Client.ID,
			Email: req.Client.Email,
			Phone: req.Client.Phone,
			Name:  req.Client.Name,
		},
		IgnoreID:   ignoreID,
		BusinessID: businessID,
	})
	if err != nil {
		return res, err
	}

	if !clientAvailability.Allowed {
		return res, failure.BadRequestFromString("this client has reached the daily booking limit") // nolint:wrapcheck
	}

	// Availability may have changed between render and submit; the chosen
	// time must still be among the bookable slots.
	slots, err := o.engine.AvailableSlots(ctx, availability.SlotQuery{
		Date:            req.Date,
		EmployeeID:      req.EmployeeID,
		DurationMinutes: svc.DurationMinutes,
		IgnoreID:        ignoreID,
		BusinessID:      businessID,
		UseTeamCapacity: req.UseTeamCapacity,
	})
	if err != nil {
		return res, err
	}

	if !slices.Contains(slots, req.Time) {
		return res, failure.Conflict("availability changed, please pick another time") // nolint:wrapcheck
	}

	employee, err := o.engine.ResolveBookingEmployee(ctx, req.Date, req.Time, svc.DurationMinutes, businessID, req.EmployeeID, ignoreID)
	if err != nil {
		return res, err
	}

	if employee == nil {
		return res, failure.Conflict("no employee is available for this slot") // nolint:wrapcheck
	}

	substituted := req.EmployeeID != constant.Empty && employee.ID != req.EmployeeID

	client, clientCreated, err := o.clients.ResolveOrCreate(ctx, businessID, clientService.ClientRef{
		ID:    req.Client.ID,
		Name:  req.Client.Name,
		Email: req.Client.Email,
		Phone: req.Client.Phone,
	})
	if err != nil {
		return res, err
	}

	appointment := o.buildAppointment(req, svc, settings, businessID)
	appointment.ClientID = client.ID
	appointment.ClientName = client.Name
	appointment.ClientEmail = client.Email
	appointment.ClientPhone = client.Phone
	appointment.EmployeeID = employee.ID
	appointment.EmployeeName = employee.Name

	if ignoreID == constant.Empty {
		err = o.appointments.Create(ctx, appointment, apptRepo.SlotGuard{
			DailyCapacity:    settings.DailyCapacity,
			ClientDailyLimit: settings.ClientDailyLimit,
			IgnoreID:         ignoreID,
		})
	} else {
		appointment.ID = ignoreID
		err = o.appointments.UpdateFields(ctx, appointment.UpdatedColumns(), ignoreID, businessID)
	}

	if err != nil {
		return res, translatePersistError(err)
	}

	o.afterBooking(ctx, appointment, settings)

	res.Appointment.FromModel(appointment)
	res.ClientCreated = clientCreated
	res.EmployeeSubstituted = substituted

	if substituted {
		res.Notice = fmt.Sprintf("%s was not available, your appointment was booked with %s", req.EmployeeName, employee.Name)
	}

	return res, nil
}

// Confirm moves a pending appointment to confirmed and attempts the
// confirmation email at most once, tracked through the sent flag.
func (o *orchestratorImpl) Confirm(ctx context.Context, id, businessID string) (err error) {
	ctx, scope := o.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Confirm")
	defer scope.End()
	defer scope.TraceIfError(err)

	appointment, err := o.appointments.GetModel(ctx, id, businessID)
	if err != nil {
		return err
	}

	switch appointment.Status {
	case constant.AppointmentStatusPending:
		fields := map[string]any{
			apptModel.FieldStatus:    constant.AppointmentStatusConfirmed,
			constant.FieldModifiedAt: timezone.Now(),
			constant.FieldModifiedBy: businessID,
		}
		if err = o.appointments.UpdateFields(ctx, fields, id, businessID); err != nil {
			return err
		}

		appointment.Status = constant.AppointmentStatusConfirmed
	case constant.AppointmentStatusConfirmed:
		// Re-confirming is a no-op; the sent flag below still guards the
		// email.
	default:
		return failure.Conflict(fmt.Sprintf("cannot confirm a %s appointment", appointment.Status)) // nolint:wrapcheck
	}

	if !appointment.ConfirmationEmailSentAt.Valid && appointment.ClientEmail != constant.Empty {
		o.sendConfirmationEmail(ctx, appointment)
	}

	o.publishEvent(ctx, "appointment.confirmed", appointment)

	return nil
}

// Complete closes a confirmed appointment and records the client visit.
func (o *orchestratorImpl) Complete(ctx context.Context, id, businessID string) (err error) {
	ctx, scope := o.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Complete")
	defer scope.End()
	defer scope.TraceIfError(err)

	appointment, err := o.appointments.GetModel(ctx, id, businessID)
	if err != nil {
		return err
	}

	if appointment.Status != constant.AppointmentStatusConfirmed {
		return failure.Conflict(fmt.Sprintf("cannot complete a %s appointment", appointment.Status)) // nolint:wrapcheck
	}

	fields := map[string]any{
		apptModel.FieldStatus:    constant.AppointmentStatusCompleted,
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: businessID,
	}
	if err = o.appointments.UpdateFields(ctx, fields, id, businessID); err != nil {
		return err
	}

	// Self-service bookings already counted a provisional visit at creation.
	if appointment.Source != constant.BookingSourceClientApp && appointment.ClientID != constant.Empty {
		if visitErr := o.clients.RecordVisit(ctx, appointment.ClientID, appointment.Date); visitErr != nil {
			log.Warn().Err(visitErr).Str("clientID", appointment.ClientID).Msg("failed to record client visit")
		}
	}

	appointment.Status = constant.AppointmentStatusCompleted
	o.publishEvent(ctx, "appointment.completed", appointment)

	return nil
}

// Cancel releases the slot. Cancelled appointments stay on record and are
// excluded from all capacity and conflict counting.
func (o *orchestratorImpl) Cancel(ctx context.Context, id, businessID string) (err error) {
	ctx, scope := o.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Cancel")
	defer scope.End()
	defer scope.TraceIfError(err)

	appointment, err := o.appointments.GetModel(ctx, id, businessID)
	if err != nil {
		return err
	}

	if appointment.Status != constant.AppointmentStatusPending && appointment.Status != constant.AppointmentStatusConfirmed {
		return failure.Conflict(fmt.Sprintf("cannot cancel a %s appointment", appointment.Status)) // nolint:wrapcheck
	}

	fields := map[string]any{
		apptModel.FieldStatus:    constant.AppointmentStatusCancelled,
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: businessID,
	}
	if err = o.appointments.UpdateFields(ctx, fields, id, businessID); err != nil {
		return err
	}

	appointment.Status = constant.AppointmentStatusCancelled

	if notifErr := o.notifications.CreateForAppointment(ctx, appointment, notificationModel.TypeCancelledAppointment); notifErr != nil {
		log.Warn().Err(notifErr).Msg("failed to create cancellation notification")
	}

	o.publishEvent(ctx, "appointment.cancelled", appointment)

	return nil
}

func (o *orchestratorImpl) persistCancelled(ctx context.Context, req Request, svc serviceModel.Service, settings businessModel.Settings, businessID, ignoreID string) (res Response, err error) {
	client, clientCreated, err := o.clients.ResolveOrCreate(ctx, businessID, clientService.ClientRef{
		ID:    req.Client.ID,
		Name:  req.Client.Name,
		Email: req.Client.Email,
		Phone: req.Client.Phone,
	})
	if err != nil {
		return res, err
	}

	appointment := o.buildAppointment(req, svc, settings, businessID)
	appointment.Status = constant.AppointmentStatusCancelled
	appointment.ClientID = client.ID
	appointment.ClientName = client.Name
	appointment.ClientEmail = client.Email
	appointment.ClientPhone = client.Phone
	appointment.EmployeeID = req.EmployeeID
	appointment.EmployeeName = req.EmployeeName

	if ignoreID == constant.Empty {
		err = o.appointments.Insert(ctx, appointment)
	} else {
		appointment.ID = ignoreID
		err = o.appointments.UpdateFields(ctx, appointment.UpdatedColumns(), ignoreID, businessID)
	}

	if err != nil {
		return res, err
	}

	res.Appointment.FromModel(appointment)
	res.ClientCreated = clientCreated

	return res, nil
}

func (o *orchestratorImpl) buildAppointment(req Request, svc serviceModel.Service, settings businessModel.Settings, businessID string) apptModel.Appointment {
	now := timezone.Now()

	status := req.Status
	if req.selfService() || status == constant.Empty {
		status = constant.AppointmentStatusPending
	}

	source := req.Source
	if source == constant.Empty {
		source = constant.BookingSourceManual
	}

	appointment := apptModel.Appointment{
		ID:              uuid.NewString(),
		BusinessID:      businessID,
		ServiceID:       svc.ID,
		ServiceName:     svc.Name,
		Date:            req.Date,
		Time:            req.Time,
		DurationMinutes: svc.DurationMinutes,
		Price:           svc.Price,
		Status:          status,
		Source:          source,
		Notes:           req.Notes,
		Metadata: gModel.Metadata{
			CreatedAt:  now,
			ModifiedAt: now,
			CreatedBy:  businessID,
			ModifiedBy: businessID,
		},
	}

	if req.selfService() && settings.PrepaymentEnable {
		rate := settings.PrepaymentRate
		if rate <= 0 {
			rate = businessModel.DefaultPrepaymentRate
		}

		receiptChannel := apptModel.ReceiptChannelNone
		if req.Client.Email != constant.Empty {
			receiptChannel = apptModel.ReceiptChannelEmail
		}

		appointment.PrepaymentRequired = true
		appointment.PrepaymentRate = rate
		appointment.PrepaymentAmount = math.Round(rate * svc.Price)
		appointment.PrepaymentStatus = apptModel.PrepaymentStatusPending
		appointment.PrepaymentMethod = apptModel.PrepaymentMethodPhoneTransfer
		appointment.PrepaymentPhone = settings.PrepaymentPhone
		appointment.PrepaymentReceiptChannel = receiptChannel
		appointment.PrepaymentRequestedAt.Time = now
		appointment.PrepaymentRequestedAt.Valid = true
	}

	return appointment
}

// afterBooking runs the best-effort side effects of a persisted booking. None
// of them can fail the booking.
func (o *orchestratorImpl) afterBooking(ctx context.Context, appointment apptModel.Appointment, settings businessModel.Settings) {
	if appointment.Source == constant.BookingSourceClientApp || appointment.Status == constant.AppointmentStatusCompleted {
		if err := o.clients.RecordVisit(ctx, appointment.ClientID, appointment.Date); err != nil {
			log.Warn().Err(err).Str("clientID", appointment.ClientID).Msg("failed to record client visit")
		}
	}

	if err := o.notifications.CreateForAppointment(ctx, appointment, notificationModel.TypeNewAppointment); err != nil {
		log.Warn().Err(err).Msg("failed to create booking notification")
	}

	o.publishEvent(ctx, "appointment.created", appointment)

	go func() {
		c := context.WithoutCancel(ctx)

		result := o.dispatcher.SendAppointmentNotification(c, notification.EmailRequestFromAppointment(appointment, settings.BusinessName))
		if !result.Sent {
			log.Warn().Str("reason", result.Reason).Msg("booking notification email not sent")
		}

		if appointment.Status == constant.AppointmentStatusConfirmed {
			o.sendConfirmationEmail(c, appointment)
		}
	}()
}

// sendConfirmationEmail attempts delivery and records the outcome on the
// appointment row. The sent flag is only set on success, so a failed attempt
// is retried on the next confirm.
func (o *orchestratorImpl) sendConfirmationEmail(ctx context.Context, appointment apptModel.Appointment) {
	result := o.dispatcher.SendAppointmentConfirmation(ctx, notification.EmailRequestFromAppointment(appointment, constant.Empty))

	fields := map[string]any{
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: appointment.BusinessID,
	}

	if result.Sent {
		fields["confirmation_email_sent_at"] = timezone.Now()
		fields["confirmation_email_status"] = apptModel.EmailStatusSent
		fields["confirmation_email_error"] = constant.Empty
	} else {
		fields["confirmation_email_status"] = apptModel.EmailStatusFailed
		fields["confirmation_email_error"] = result.Reason
	}

	if err := o.appointments.UpdateFields(ctx, fields, appointment.ID, appointment.BusinessID); err != nil {
		log.Warn().Err(err).Msg("failed to record confirmation email outcome")
	}
}

func (o *orchestratorImpl) publishEvent(ctx context.Context, eventType string, appointment apptModel.Appointment) {
	if !o.cfg.Kafka.Enable {
		return
	}

	event := Event{
		Type:          eventType,
		AppointmentID: appointment.ID,
		BusinessID:    appointment.BusinessID,
		ClientID:      appointment.ClientID,
		ServiceID:     appointment.ServiceID,
		EmployeeID:    appointment.EmployeeID,
		Date:          appointment.Date,
		Time:          appointment.Time,
		Status:        appointment.Status,
		OccurredAt:    timezone.Format(timezone.Now(), constant.DateFormat),
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := o.kafka.SendMessages(c, o.cfg.Kafka.BookingTopic, kafka.Message{Key: appointment.ID, Value: event}); err != nil {
			log.Warn().Err(err).Str("type", eventType).Msg("failed to publish booking event")
		}
	}()
}

func translatePersistError(err error) error {
	switch {
	case errors.Is(err, apptRepo.ErrSlotTaken):
		return failure.Conflict("availability changed, please pick another time") // nolint:wrapcheck
	case errors.Is(err, apptRepo.ErrCapacityReached):
		return failure.Conflict("this day is fully booked") // nolint:wrapcheck
	case errors.Is(err, apptRepo.ErrClientLimitReached):
		return failure.Conflict("this client has reached the daily booking limit") // nolint:wrapcheck
	default:
		return err
	}
}
