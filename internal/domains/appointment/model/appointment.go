package model

import (
	"database/sql"

	"reservahub/shared/constant"
	"reservahub/shared/model"
	"reservahub/shared/timeslot"
)

const (
	TableName  = "appointments"
	EntityName = "appointment"

	FieldID              = "id"
	FieldBusinessID      = "business_id"
	FieldClientID        = "client_id"
	FieldClientName      = "client_name"
	FieldClientEmail     = "client_email"
	FieldClientPhone     = "client_phone"
	FieldServiceID       = "service_id"
	FieldServiceName     = "service_name"
	FieldEmployeeID      = "employee_id"
	FieldEmployeeName    = "employee_name"
	FieldDate            = "date"
	FieldTime            = "time"
	FieldDurationMinutes = "duration_minutes"
	FieldStatus          = "status"
	FieldSource          = "source"
)

const (
	PrepaymentStatusPending = "pending"
	PrepaymentStatusPaid    = "paid"

	PrepaymentMethodPhoneTransfer = "phone-transfer"

	ReceiptChannelEmail = "email"
	ReceiptChannelNone  = "none"
)

const (
	EmailStatusSent   = "sent"
	EmailStatusFailed = "failed"
)

type Appointment struct {
	ID                       string       `db:"id"`
	BusinessID               string       `db:"business_id"`
	ClientID                 string       `db:"client_id"`
	ClientName               string       `db:"client_name"`
	ClientEmail              string       `db:"client_email"`
	ClientPhone              string       `db:"client_phone"`
	ServiceID                string       `db:"service_id"`
	ServiceName              string       `db:"service_name"`
	EmployeeID               string       `db:"employee_id"`
	EmployeeName             string       `db:"employee_name"`
	Date                     string       `db:"date"`
	Time                     string       `db:"time"`
	DurationMinutes          int          `db:"duration_minutes"`
	Price                    float64      `db:"price"`
	Status                   string       `db:"status"`
	Source                   string       `db:"source"`
	Notes                    string       `db:"notes"`
	PrepaymentRequired       bool         `db:"prepayment_required"`
	PrepaymentRate           float64      `db:"prepayment_rate"`
	PrepaymentAmount         float64      `db:"prepayment_amount"`
	PrepaymentStatus         string       `db:"prepayment_status"`
	PrepaymentMethod         string       `db:"prepayment_method"`
	PrepaymentPhone          string       `db:"prepayment_phone"`
	PrepaymentReceiptChannel string       `db:"prepayment_receipt_channel"`
	PrepaymentRequestedAt    sql.NullTime `db:"prepayment_requested_at"`
	ConfirmationEmailSentAt  sql.NullTime `db:"confirmation_email_sent_at"`
	ConfirmationEmailStatus  string       `db:"confirmation_email_status"`
	ConfirmationEmailError   string       `db:"confirmation_email_error"`
	model.Metadata
}

// UpdatedColumns maps the columns an edit rewrites, keyed by db tag. Status
// transition tracking fields are left untouched.
func (a *Appointment) UpdatedColumns() map[string]any {
	return map[string]any{
		FieldClientID:        a.ClientID,
		FieldClientName:      a.ClientName,
		FieldClientEmail:     a.ClientEmail,
		FieldClientPhone:     a.ClientPhone,
		FieldServiceID:       a.ServiceID,
		FieldServiceName:     a.ServiceName,
		FieldEmployeeID:      a.EmployeeID,
		FieldEmployeeName:    a.EmployeeName,
		FieldDate:            a.Date,
		FieldTime:            a.Time,
		FieldDurationMinutes: a.DurationMinutes,
		"price":              a.Price,
		FieldStatus:          a.Status,
		FieldSource:          a.Source,
		"notes":              a.Notes,
		"modified_at":        a.ModifiedAt,
		"modified_by":        a.ModifiedBy,
	}
}

// StartMinutes is the appointment start as minutes after midnight.
func (a *Appointment) StartMinutes() int {
	return timeslot.ToMinutes(a.Time)
}

// EndMinutes is the appointment end as minutes after midnight.
func (a *Appointment) EndMinutes() int {
	return a.StartMinutes() + a.DurationMinutes
}

// IsActive reports whether the appointment still occupies its slot.
func (a *Appointment) IsActive() bool {
	return a.Status != constant.AppointmentStatusCancelled
}

// Overlaps reports a half-open interval conflict with another booking on the
// same day.
func (a *Appointment) Overlaps(startMinutes, endMinutes int) bool {
	return timeslot.RangesOverlap(a.StartMinutes(), a.EndMinutes(), startMinutes, endMinutes)
}
