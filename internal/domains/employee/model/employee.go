package model

import (
	"database/sql/driver"
	"encoding/json"
	"errors"

	businessModel "reservahub/internal/domains/business/model"
	"reservahub/shared/model"
)

const (
	TableName  = "employees"
	EntityName = "employee"

	FieldID           = "id"
	FieldBusinessID   = "business_id"
	FieldName         = "name"
	FieldSpecialty    = "specialty"
	FieldEmail        = "email"
	FieldPhone        = "phone"
	FieldAvailability = "availability"
)

// AvailabilityDay is one weekly working window for an employee. Index 0 is
// Monday, matching the business schedule.
type AvailabilityDay struct {
	Available bool   `json:"available"`
	Start     string `json:"start"`
	End       string `json:"end"`
}

type AvailabilityDays []AvailabilityDay

func (a AvailabilityDays) Value() (driver.Value, error) {
	return json.Marshal(a)
}

func (a *AvailabilityDays) Scan(src any) error {
	switch data := src.(type) {
	case []byte:
		return json.Unmarshal(data, a)
	case string:
		return json.Unmarshal([]byte(data), a)
	case nil:
		*a = nil

		return nil
	default:
		return errors.New("unsupported scan type for availability")
	}
}

type Employee struct {
	ID           string           `db:"id"`
	BusinessID   string           `db:"business_id"`
	Name         string           `db:"name"`
	Specialty    string           `db:"specialty"`
	Email        string           `db:"email"`
	Phone        string           `db:"phone"`
	Availability AvailabilityDays `db:"availability"`
	model.Metadata
}

// DefaultAvailability snapshots the business schedule into an employee's
// weekly availability. The snapshot is taken once at creation and is not
// resynced when the business schedule changes later.
func DefaultAvailability(schedule businessModel.ScheduleDays) AvailabilityDays {
	availability := make(AvailabilityDays, len(schedule))
	for day, window := range schedule {
		availability[day] = AvailabilityDay{
			Available: window.Open,
			Start:     window.Start,
			End:       window.End,
		}
	}

	return availability
}
