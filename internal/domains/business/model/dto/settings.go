package dto

import (
	"reservahub/internal/domains/business/model"
	gDto "reservahub/shared/dto"
)

type ScheduleDayPayload struct {
	Open  bool   `json:"open"`
	Start string `json:"start" validate:"omitempty,clock"`
	End   string `json:"end"   validate:"omitempty,clock"`
}

type UpdateSettingsRequest struct {
	BusinessName     string               `db:"business_name"      json:"business_name"      validate:"omitempty,max=150"`
	Phone            string               `db:"phone"              json:"phone"              validate:"omitempty,max=30"`
	Address          string               `db:"address"            json:"address"            validate:"omitempty,max=250"`
	Schedule         []ScheduleDayPayload `json:"schedule"         validate:"omitempty,len=7,dive"`
	LunchEnabled     *bool                `json:"lunch_enabled"`
	LunchStart       string               `db:"lunch_start"        json:"lunch_start"        validate:"omitempty,clock"`
	DailyCapacity    int                  `db:"daily_capacity"     json:"daily_capacity"     validate:"omitempty,gte=1"`
	ClientDailyLimit int                  `db:"client_daily_limit" json:"client_daily_limit" validate:"omitempty,gte=1"`
	BookingMinHours  int                  `db:"booking_min_hours"  json:"booking_min_hours"  validate:"omitempty,gte=0"`
	BookingMaxDays   int                  `db:"booking_max_days"   json:"booking_max_days"   validate:"omitempty,gte=1"`
	PrepaymentEnable *bool                `json:"prepayment_enabled"`
	PrepaymentRate   float64              `db:"prepayment_rate"    json:"prepayment_rate"    validate:"omitempty,gt=0,lte=1"`
	PrepaymentPhone  string               `db:"prepayment_phone"   json:"prepayment_phone"   validate:"omitempty,max=30"`
}

func (r *UpdateSettingsRequest) ScheduleModel() model.ScheduleDays {
	if len(r.Schedule) == 0 {
		return nil
	}

	schedule := make(model.ScheduleDays, len(r.Schedule))
	for i, day := range r.Schedule {
		schedule[i] = model.ScheduleDay{
			Open:  day.Open,
			Start: day.Start,
			End:   day.End,
		}
	}

	return schedule
}

type SettingsResponse struct {
	BusinessID       string               `json:"business_id"`
	BusinessName     string               `json:"business_name"`
	Phone            string               `json:"phone"`
	Address          string               `json:"address"`
	PhotoURL         string               `json:"photo_url"`
	Schedule         []ScheduleDayPayload `json:"schedule"`
	LunchEnabled     bool                 `json:"lunch_enabled"`
	LunchStart       string               `json:"lunch_start"`
	DailyCapacity    int                  `json:"daily_capacity"`
	ClientDailyLimit int                  `json:"client_daily_limit"`
	BookingMinHours  int                  `json:"booking_min_hours"`
	BookingMaxDays   int                  `json:"booking_max_days"`
	PrepaymentEnable bool                 `json:"prepayment_enabled"`
	PrepaymentRate   float64              `json:"prepayment_rate"`
	PrepaymentPhone  string               `json:"prepayment_phone"`
	gDto.Metadata
}

func (r *SettingsResponse) FromModel(settings model.Settings) {
	r.BusinessID = settings.BusinessID
	r.BusinessName = settings.BusinessName
	r.Phone = settings.Phone
	r.Address = settings.Address
	r.PhotoURL = settings.PhotoURL
	r.LunchEnabled = settings.LunchEnabled
	r.LunchStart = settings.LunchStart
	r.DailyCapacity = settings.DailyCapacity
	r.ClientDailyLimit = settings.ClientDailyLimit
	r.BookingMinHours = settings.BookingMinHours
	r.BookingMaxDays = settings.BookingMaxDays
	r.PrepaymentEnable = settings.PrepaymentEnable
	r.PrepaymentRate = settings.PrepaymentRate
	r.PrepaymentPhone = settings.PrepaymentPhone

	r.Schedule = make([]ScheduleDayPayload, len(settings.Schedule))
	for i, day := range settings.Schedule {
		r.Schedule[i] = ScheduleDayPayload{
			Open:  day.Open,
			Start: day.Start,
			End:   day.End,
		}
	}

	r.Metadata.FromModel(settings.Metadata)
}

type UploadPhotoResponse struct {
	PhotoURL string `json:"photo_url"`
}
