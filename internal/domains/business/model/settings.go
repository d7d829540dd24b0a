package model

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"reservahub/shared/model"
)

const (
	TableName  = "business_settings"
	EntityName = "business_settings"

	FieldBusinessID       = "business_id"
	FieldBusinessName     = "business_name"
	FieldPhone            = "phone"
	FieldAddress          = "address"
	FieldPhotoURL         = "photo_url"
	FieldSchedule         = "schedule"
	FieldLunchEnabled     = "lunch_enabled"
	FieldLunchStart       = "lunch_start"
	FieldDailyCapacity    = "daily_capacity"
	FieldClientDailyLimit = "client_daily_limit"
	FieldBookingMinHours  = "booking_min_hours"
	FieldBookingMaxDays   = "booking_max_days"
)

const (
	DefaultDailyCapacity    = 20
	DefaultClientDailyLimit = 1
	DefaultBookingMinHours  = 4
	DefaultBookingMaxDays   = 30
	DefaultPrepaymentEnable = true
	DefaultPrepaymentRate   = 0.40
	DefaultLunchStart       = "13:00"

	daysPerWeek = 7
	sundayIndex = 6
)

// ScheduleDay is one weekly business-hours window. Index 0 is Monday.
type ScheduleDay struct {
	Open  bool   `json:"open"`
	Start string `json:"start"`
	End   string `json:"end"`
}

type ScheduleDays []ScheduleDay

func (s ScheduleDays) Value() (driver.Value, error) {
	return json.Marshal(s)
}

func (s *ScheduleDays) Scan(src any) error {
	switch data := src.(type) {
	case []byte:
		return json.Unmarshal(data, s)
	case string:
		return json.Unmarshal([]byte(data), s)
	case nil:
		*s = nil

		return nil
	default:
		return errors.New("unsupported scan type for schedule")
	}
}

type Settings struct {
	BusinessID       string       `db:"business_id"`
	BusinessName     string       `db:"business_name"`
	Phone            string       `db:"phone"`
	Address          string       `db:"address"`
	PhotoURL         string       `db:"photo_url"`
	Schedule         ScheduleDays `db:"schedule"`
	LunchEnabled     bool         `db:"lunch_enabled"`
	LunchStart       string       `db:"lunch_start"`
	DailyCapacity    int          `db:"daily_capacity"`
	ClientDailyLimit int          `db:"client_daily_limit"`
	BookingMinHours  int          `db:"booking_min_hours"`
	BookingMaxDays   int          `db:"booking_max_days"`
	PrepaymentEnable bool         `db:"prepayment_enabled"`
	PrepaymentRate   float64      `db:"prepayment_rate"`
	PrepaymentPhone  string       `db:"prepayment_phone"`
	model.Metadata
}

// DefaultSchedule opens Monday through Saturday and keeps Sunday closed.
func DefaultSchedule(start, end string) ScheduleDays {
	schedule := make(ScheduleDays, daysPerWeek)
	for day := range schedule {
		schedule[day] = ScheduleDay{
			Open:  day != sundayIndex,
			Start: start,
			End:   end,
		}
	}

	return schedule
}

// DefaultSettings is the row written once by GetOrInitialize for a business
// that has never saved settings.
func DefaultSettings(businessID, dayStart, dayEnd string, now time.Time) Settings {
	return Settings{
		BusinessID:       businessID,
		Schedule:         DefaultSchedule(dayStart, dayEnd),
		LunchStart:       DefaultLunchStart,
		DailyCapacity:    DefaultDailyCapacity,
		ClientDailyLimit: DefaultClientDailyLimit,
		BookingMinHours:  DefaultBookingMinHours,
		BookingMaxDays:   DefaultBookingMaxDays,
		PrepaymentEnable: DefaultPrepaymentEnable,
		PrepaymentRate:   DefaultPrepaymentRate,
		Metadata: model.Metadata{
			CreatedAt:  now,
			ModifiedAt: now,
			CreatedBy:  businessID,
			ModifiedBy: businessID,
		},
	}
}
