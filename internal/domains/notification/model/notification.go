package model

import (
	"reservahub/shared/model"
)

const (
	TableName  = "notifications"
	EntityName = "notification"

	FieldID         = "id"
	FieldBusinessID = "business_id"
	FieldType       = "type"
	FieldRead       = "read"
)

const (
	TypeNewAppointment       = "new-appointment"
	TypeCancelledAppointment = "cancelled-appointment"
)

type Notification struct {
	ID              string `db:"id"`
	BusinessID      string `db:"business_id"`
	AppointmentID   string `db:"appointment_id"`
	Type            string `db:"type"`
	ClientName      string `db:"client_name"`
	ClientEmail     string `db:"client_email"`
	ServiceName     string `db:"service_name"`
	EmployeeName    string `db:"employee_name"`
	AppointmentDate string `db:"appointment_date"`
	AppointmentTime string `db:"appointment_time"`
	Read            bool   `db:"read"`
	model.Metadata
}
