package dto

import (
	"github.com/google/uuid"

	"reservahub/internal/domains/client/model"
	"reservahub/shared"
	gDto "reservahub/shared/dto"
	gModel "reservahub/shared/model"
	"reservahub/shared/timezone"
)

type CreateClientRequest struct {
	Name  string `json:"name"  validate:"required,max=100"`
	Email string `json:"email" validate:"omitempty,email,max=100"`
	Phone string `json:"phone" validate:"omitempty,max=30"`
	Notes string `json:"notes" validate:"omitempty,max=500"`
}

func (c *CreateClientRequest) ToModel(businessID, user string) model.Client {
	return model.Client{
		ID:         uuid.NewString(),
		BusinessID: businessID,
		Name:       c.Name,
		Email:      model.NormalizeEmail(c.Email),
		Phone:      c.Phone,
		Notes:      c.Notes,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateClientRequest struct {
	Name  string `db:"name"  json:"name"  validate:"omitempty,max=100"`
	Email string `db:"email" json:"email" validate:"omitempty,email,max=100"`
	Phone string `db:"phone" json:"phone" validate:"omitempty,max=30"`
	Notes string `db:"notes" json:"notes" validate:"omitempty,max=500"`
}

type ClientResponse struct {
	ID         string `json:"id"`
	BusinessID string `json:"business_id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	Notes      string `json:"notes"`
	Visits     int    `json:"visits"`
	LastVisit  string `json:"last_visit"`
	gDto.Metadata
}

func (r *ClientResponse) FromModel(client model.Client) {
	r.ID = client.ID
	r.BusinessID = client.BusinessID
	r.Name = client.Name
	r.Email = client.Email
	r.Phone = client.Phone
	r.Notes = client.Notes
	r.Visits = client.Visits
	r.LastVisit = client.LastVisit
	r.Metadata.FromModel(client.Metadata)
}

type GetClientsResponse struct {
	Clients   []ClientResponse `json:"clients"`
	TotalPage int              `json:"total_page"`
	TotalData int              `json:"total_data"`
}

func (r *GetClientsResponse) FromModels(models []model.Client, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Clients = make([]ClientResponse, len(models))
	for i, mod := range models {
		r.Clients[i].FromModel(mod)
	}
}
