package notification

//go:generate go run go.uber.org/mock/mockgen -source=./dispatcher.go -destination=./mocks/dispatcher_mock.go -package=mocks

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"

	"reservahub/config"
	"reservahub/infras/otel"
	apptModel "reservahub/internal/domains/appointment/model"
	"reservahub/shared/constant"
	"reservahub/shared/timezone"
)

const (
	functionConfirmation = "sendAppointmentConfirmation"
	functionNotification = "sendAppointmentNotification"
)

// Delivery failure reasons, mapped from the remote mail function's status
// codes. A failed delivery is never a booking failure.
const (
	ReasonInvalidRecipient   = "invalid-recipient"
	ReasonUnauthorized       = "unauthorized"
	ReasonForbidden          = "forbidden"
	ReasonFunctionMissing    = "function-missing"
	ReasonProviderError      = "provider-error"
	ReasonBackendUnavailable = "backend-unavailable"
)

type Result struct {
	Sent   bool   `json:"sent"`
	Reason string `json:"reason,omitempty"`
	Error  string `json:"error,omitempty"`
	SentAt string `json:"sent_at,omitempty"`
}

// EmailRequest is the payload posted to the remote mail function.
type EmailRequest struct {
	To              string  `json:"to"`
	ClientName      string  `json:"client_name"`
	BusinessName    string  `json:"business_name"`
	ServiceName     string  `json:"service_name"`
	EmployeeName    string  `json:"employee_name"`
	Date            string  `json:"date"`
	Time            string  `json:"time"`
	DurationMinutes int     `json:"duration_minutes"`
	Price           float64 `json:"price"`
	PrepaymentDue   float64 `json:"prepayment_due,omitempty"`
	PrepaymentPhone string  `json:"prepayment_phone,omitempty"`
}

type Dispatcher interface {
	SendAppointmentConfirmation(ctx context.Context, req EmailRequest) Result
	SendAppointmentNotification(ctx context.Context, req EmailRequest) Result
}

type dispatcherImpl struct {
	cfg    *config.Config
	client *http.Client
	otel   otel.Otel
}

func NewDispatcher(cfg *config.Config, otel otel.Otel) Dispatcher {
	return &dispatcherImpl{
		cfg: cfg,
		client: &http.Client{
			Timeout: time.Duration(cfg.External.NotifyFunction.TimeoutSeconds) * time.Second,
		},
		otel: otel,
	}
}

func (d *dispatcherImpl) SendAppointmentConfirmation(ctx context.Context, req EmailRequest) Result {
	return d.send(ctx, functionConfirmation, req)
}

func (d *dispatcherImpl) SendAppointmentNotification(ctx context.Context, req EmailRequest) Result {
	return d.send(ctx, functionNotification, req)
}

func (d *dispatcherImpl) send(ctx context.Context, function string, req EmailRequest) Result {
	ctx, scope := d.otel.NewScope(ctx, constant.OtelExternalScopeName, constant.OtelExternalScopeName+".notification."+function)
	defer scope.End()

	body, err := json.Marshal(req)
	if err != nil {
		return d.failed(function, ReasonBackendUnavailable, err)
	}

	url := d.cfg.External.NotifyFunction.BaseURL + "/" + function

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return d.failed(function, ReasonBackendUnavailable, err)
	}

	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("X-Api-Key", d.cfg.External.NotifyFunction.Key)

	resp, err := d.client.Do(httpReq)
	if err != nil {
		return d.failed(function, ReasonBackendUnavailable, err)
	}
	defer resp.Body.Close()

	if reason := reasonForStatus(resp.StatusCode); reason != constant.Empty {
		return d.failed(function, reason, fmt.Errorf("mail function returned status %d", resp.StatusCode))
	}

	return Result{
		Sent:   true,
		SentAt: timezone.Format(timezone.Now(), constant.DateFormat),
	}
}

func (d *dispatcherImpl) failed(function, reason string, err error) Result {
	log.Warn().Err(err).Str("function", function).Str("reason", reason).Msg("email dispatch failed")

	return Result{
		Sent:   false,
		Reason: reason,
		Error:  err.Error(),
	}
}

func reasonForStatus(status int) string {
	switch {
	case status >= 200 && status < 300:
		return constant.Empty
	case status == http.StatusBadRequest:
		return ReasonInvalidRecipient
	case status == http.StatusUnauthorized:
		return ReasonUnauthorized
	case status == http.StatusForbidden:
		return ReasonForbidden
	case status == http.StatusNotFound:
		return ReasonFunctionMissing
	case status == http.StatusBadGateway:
		return ReasonProviderError
	default:
		return ReasonProviderError
	}
}

// EmailRequestFromAppointment builds the mail payload from an appointment's
// denormalized fields plus the business name on the settings row.
func EmailRequestFromAppointment(appointment apptModel.Appointment, businessName string) EmailRequest {
	req := EmailRequest{
		To:              appointment.ClientEmail,
		ClientName:      appointment.ClientName,
		BusinessName:    businessName,
		ServiceName:     appointment.ServiceName,
		EmployeeName:    appointment.EmployeeName,
		Date:            appointment.Date,
		Time:            appointment.Time,
		DurationMinutes: appointment.DurationMinutes,
		Price:           appointment.Price,
	}

	if appointment.PrepaymentRequired {
		req.PrepaymentDue = appointment.PrepaymentAmount
		req.PrepaymentPhone = appointment.PrepaymentPhone
	}

	return req
}
