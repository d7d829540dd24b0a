package dto

import (
	"github.com/google/uuid"

	"reservahub/internal/domains/employee/model"
	"reservahub/shared"
	gDto "reservahub/shared/dto"
	gModel "reservahub/shared/model"
	"reservahub/shared/timezone"
)

type AvailabilityDayPayload struct {
	Available bool   `json:"available"`
	Start     string `json:"start" validate:"omitempty,clock"`
	End       string `json:"end"   validate:"omitempty,clock"`
}

type CreateEmployeeRequest struct {
	Name      string `json:"name"      validate:"required,max=100"`
	Specialty string `json:"specialty" validate:"omitempty,max=100"`
	Email     string `json:"email"     validate:"omitempty,email,max=100"`
	Phone     string `json:"phone"     validate:"omitempty,max=30"`
}

func (c *CreateEmployeeRequest) ToModel(businessID, user string, availability model.AvailabilityDays) model.Employee {
	return model.Employee{
		ID:           uuid.NewString(),
		BusinessID:   businessID,
		Name:         c.Name,
		Specialty:    c.Specialty,
		Email:        c.Email,
		Phone:        c.Phone,
		Availability: availability,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateEmployeeRequest struct {
	Name      string `db:"name"      json:"name"      validate:"omitempty,max=100"`
	Specialty string `db:"specialty" json:"specialty" validate:"omitempty,max=100"`
	Email     string `db:"email"     json:"email"     validate:"omitempty,email,max=100"`
	Phone     string `db:"phone"     json:"phone"     validate:"omitempty,max=30"`
}

type SaveAvailabilityRequest struct {
	Availability []AvailabilityDayPayload `json:"availability" validate:"required,len=7,dive"`
}

func (r *SaveAvailabilityRequest) ToModel() model.AvailabilityDays {
	availability := make(model.AvailabilityDays, len(r.Availability))
	for i, day := range r.Availability {
		availability[i] = model.AvailabilityDay{
			Available: day.Available,
			Start:     day.Start,
			End:       day.End,
		}
	}

	return availability
}

type EmployeeResponse struct {
	ID           string                   `json:"id"`
	BusinessID   string                   `json:"business_id"`
	Name         string                   `json:"name"`
	Specialty    string                   `json:"specialty"`
	Email        string                   `json:"email"`
	Phone        string                   `json:"phone"`
	Availability []AvailabilityDayPayload `json:"availability"`
	gDto.Metadata
}

func (r *EmployeeResponse) FromModel(employee model.Employee) {
	r.ID = employee.ID
	r.BusinessID = employee.BusinessID
	r.Name = employee.Name
	r.Specialty = employee.Specialty
	r.Email = employee.Email
	r.Phone = employee.Phone

	r.Availability = make([]AvailabilityDayPayload, len(employee.Availability))
	for i, day := range employee.Availability {
		r.Availability[i] = AvailabilityDayPayload{
			Available: day.Available,
			Start:     day.Start,
			End:       day.End,
		}
	}

	r.Metadata.FromModel(employee.Metadata)
}

type GetEmployeesResponse struct {
	Employees []EmployeeResponse `json:"employees"`
	TotalPage int                `json:"total_page"`
	TotalData int                `json:"total_data"`
}

func (r *GetEmployeesResponse) FromModels(models []model.Employee, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Employees = make([]EmployeeResponse, len(models))
	for i, mod := range models {
		r.Employees[i].FromModel(mod)
	}
}
