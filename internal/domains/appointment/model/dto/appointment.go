package dto

import (
	"reservahub/internal/domains/appointment/model"
	"reservahub/shared"
	"reservahub/shared/constant"
	gDto "reservahub/shared/dto"
	"reservahub/shared/timezone"
)

// ListAppointmentsQuery narrows an appointment listing. Empty fields are not
// applied.
type ListAppointmentsQuery struct {
	Date       string `validate:"omitempty,datetime=2006-01-02"`
	Status     string `validate:"omitempty,oneof=pending confirmed completed cancelled"`
	EmployeeID string `validate:"omitempty,uuid"`
	ClientID   string `validate:"omitempty,uuid"`
}

type PrepaymentResponse struct {
	Required       bool    `json:"required"`
	Rate           float64 `json:"rate,omitempty"`
	Amount         float64 `json:"amount,omitempty"`
	Status         string  `json:"status,omitempty"`
	Method         string  `json:"method,omitempty"`
	Phone          string  `json:"phone,omitempty"`
	ReceiptChannel string  `json:"receipt_channel,omitempty"`
	RequestedAt    string  `json:"requested_at,omitempty"`
}

type ConfirmationEmailResponse struct {
	SentAt string `json:"sent_at,omitempty"`
	Status string `json:"status,omitempty"`
	Error  string `json:"error,omitempty"`
}

type AppointmentResponse struct {
	ID                string                    `json:"id"`
	BusinessID        string                    `json:"business_id"`
	ClientID          string                    `json:"client_id"`
	ClientName        string                    `json:"client_name"`
	ClientEmail       string                    `json:"client_email"`
	ClientPhone       string                    `json:"client_phone"`
	ServiceID         string                    `json:"service_id"`
	ServiceName       string                    `json:"service_name"`
	EmployeeID        string                    `json:"employee_id"`
	EmployeeName      string                    `json:"employee_name"`
	Date              string                    `json:"date"`
	Time              string                    `json:"time"`
	DurationMinutes   int                       `json:"duration_minutes"`
	Price             float64                   `json:"price"`
	Status            string                    `json:"status"`
	Source            string                    `json:"source"`
	Notes             string                    `json:"notes"`
	Prepayment        PrepaymentResponse        `json:"prepayment"`
	ConfirmationEmail ConfirmationEmailResponse `json:"confirmation_email"`
	gDto.Metadata
}

func (r *AppointmentResponse) FromModel(appointment model.Appointment) {
	r.ID = appointment.ID
	r.BusinessID = appointment.BusinessID
	r.ClientID = appointment.ClientID
	r.ClientName = appointment.ClientName
	r.ClientEmail = appointment.ClientEmail
	r.ClientPhone = appointment.ClientPhone
	r.ServiceID = appointment.ServiceID
	r.ServiceName = appointment.ServiceName
	r.EmployeeID = appointment.EmployeeID
	r.EmployeeName = appointment.EmployeeName
	r.Date = appointment.Date
	r.Time = appointment.Time
	r.DurationMinutes = appointment.DurationMinutes
	r.Price = appointment.Price
	r.Status = appointment.Status
	r.Source = appointment.Source
	r.Notes = appointment.Notes

	r.Prepayment = PrepaymentResponse{
		Required:       appointment.PrepaymentRequired,
		Rate:           appointment.PrepaymentRate,
		Amount:         appointment.PrepaymentAmount,
		Status:         appointment.PrepaymentStatus,
		Method:         appointment.PrepaymentMethod,
		Phone:          appointment.PrepaymentPhone,
		ReceiptChannel: appointment.PrepaymentReceiptChannel,
	}
	if appointment.PrepaymentRequestedAt.Valid {
		r.Prepayment.RequestedAt = timezone.Format(appointment.PrepaymentRequestedAt.Time, constant.DateFormat)
	}

	r.ConfirmationEmail = ConfirmationEmailResponse{
		Status: appointment.ConfirmationEmailStatus,
		Error:  appointment.ConfirmationEmailError,
	}
	if appointment.ConfirmationEmailSentAt.Valid {
		r.ConfirmationEmail.SentAt = timezone.Format(appointment.ConfirmationEmailSentAt.Time, constant.DateFormat)
	}

	r.Metadata.FromModel(appointment.Metadata)
}

type GetAppointmentsResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
	TotalPage    int                   `json:"total_page"`
	TotalData    int                   `json:"total_data"`
}

func (r *GetAppointmentsResponse) FromModels(models []model.Appointment, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Appointments = make([]AppointmentResponse, len(models))
	for i, mod := range models {
		r.Appointments[i].FromModel(mod)
	}
}
