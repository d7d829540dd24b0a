package booking

import (
	apptDto "reservahub/internal/domains/appointment/model/dto"
	"reservahub/shared/constant"
	"reservahub/shared/failure"
)

// ClientSelection is what the booking form knows about the client. Any subset
// may be filled; resolution precedence is id, then email, then phone, then
// name.
type ClientSelection struct {
	ID    string `json:"id" validate:"omitempty,uuid"`
	Name  string `json:"name"`
	Email string `json:"email" validate:"omitempty,email"`
	Phone string `json:"phone"`
}

type Request struct {
	ServiceID       string          `json:"service_id" validate:"required,uuid"`
	EmployeeID      string          `json:"employee_id" validate:"omitempty,uuid"`
	EmployeeName    string          `json:"employee_name"`
	UseTeamCapacity bool            `json:"use_team_capacity"`
	Date            string          `json:"date" validate:"required,datetime=2006-01-02"`
	Time            string          `json:"time" validate:"required,clock"`
	Notes           string          `json:"notes"`
	Status          string          `json:"status" validate:"omitempty,oneof=pending confirmed completed cancelled"`
	Source          string          `json:"-"`
	Client          ClientSelection `json:"client"`
}

func (r *Request) selfService() bool {
	return r.Source == constant.BookingSourceClientApp
}

func (r *Request) checkSelections() error {
	switch {
	case r.ServiceID == constant.Empty:
		return failure.BadRequestFromString("a service must be selected") // nolint:wrapcheck
	case r.EmployeeID == constant.Empty && !r.UseTeamCapacity:
		return failure.BadRequestFromString("an employee must be selected") // nolint:wrapcheck
	case r.Date == constant.Empty:
		return failure.BadRequestFromString("a date must be selected") // nolint:wrapcheck
	case r.Time == constant.Empty:
		return failure.BadRequestFromString("a time must be selected") // nolint:wrapcheck
	default:
		return nil
	}
}

type Response struct {
	Appointment         apptDto.AppointmentResponse `json:"appointment"`
	ClientCreated       bool                        `json:"client_created"`
	EmployeeSubstituted bool                        `json:"employee_substituted"`
	Notice              string                      `json:"notice,omitempty"`
}

// Event is the booking event published to kafka, best-effort.
type Event struct {
	Type          string `json:"type"`
	AppointmentID string `json:"appointment_id"`
	BusinessID    string `json:"business_id"`
	ClientID      string `json:"client_id"`
	ServiceID     string `json:"service_id"`
	EmployeeID    string `json:"employee_id"`
	Date          string `json:"date"`
	Time          string `json:"time"`
	Status        string `json:"status"`
	OccurredAt    string `json:"occurred_at"`
}
