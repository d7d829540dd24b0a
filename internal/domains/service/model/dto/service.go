package dto

import (
	"github.com/google/uuid"

	"reservahub/internal/domains/service/model"
	"reservahub/shared"
	gDto "reservahub/shared/dto"
	gModel "reservahub/shared/model"
	"reservahub/shared/timezone"
)

type CreateServiceRequest struct {
	Name            string  `json:"name"             validate:"required,max=100"`
	Description     string  `json:"description"      validate:"omitempty,max=500"`
	DurationMinutes int     `json:"duration_minutes" validate:"required,gte=5"`
	Price           float64 `json:"price"            validate:"omitempty,gte=0"`
}

func (c *CreateServiceRequest) ToModel(businessID, user string) model.Service {
	return model.Service{
		ID:              uuid.NewString(),
		BusinessID:      businessID,
		Name:            c.Name,
		Description:     c.Description,
		DurationMinutes: c.DurationMinutes,
		Price:           c.Price,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateServiceRequest struct {
	Name            string  `db:"name"             json:"name"             validate:"omitempty,max=100"`
	Description     string  `db:"description"      json:"description"      validate:"omitempty,max=500"`
	DurationMinutes int     `db:"duration_minutes" json:"duration_minutes" validate:"omitempty,gte=5"`
	Price           float64 `db:"price"            json:"price"            validate:"omitempty,gte=0"`
}

type ServiceResponse struct {
	ID              string  `json:"id"`
	BusinessID      string  `json:"business_id"`
	Name            string  `json:"name"`
	Description     string  `json:"description"`
	DurationMinutes int     `json:"duration_minutes"`
	Price           float64 `json:"price"`
	gDto.Metadata
}

func (r *ServiceResponse) FromModel(service model.Service) {
	r.ID = service.ID
	r.BusinessID = service.BusinessID
	r.Name = service.Name
	r.Description = service.Description
	r.DurationMinutes = service.DurationMinutes
	r.Price = service.Price
	r.Metadata.FromModel(service.Metadata)
}

type GetServicesResponse struct {
	Services  []ServiceResponse `json:"services"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetServicesResponse) FromModels(models []model.Service, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Services = make([]ServiceResponse, len(models))
	for i, mod := range models {
		r.Services[i].FromModel(mod)
	}
}
