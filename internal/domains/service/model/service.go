package model

import (
	"reservahub/shared/model"
)

const (
	TableName  = "services"
	EntityName = "service"

	FieldID              = "id"
	FieldBusinessID      = "business_id"
	FieldName            = "name"
	FieldDescription     = "description"
	FieldDurationMinutes = "duration_minutes"
	FieldPrice           = "price"
)

const (
	MinDurationMinutes = 5
)

type Service struct {
	ID              string  `db:"id"`
	BusinessID      string  `db:"business_id"`
	Name            string  `db:"name"`
	Description     string  `db:"description"`
	DurationMinutes int     `db:"duration_minutes"`
	Price           float64 `db:"price"`
	model.Metadata
}
