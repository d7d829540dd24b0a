package model

import (
	"regexp"
	"strings"

	"reservahub/shared/model"
)

const (
	TableName  = "clients"
	EntityName = "client"

	FieldID         = "id"
	FieldBusinessID = "business_id"
	FieldName       = "name"
	FieldEmail      = "email"
	FieldPhone      = "phone"
	FieldNotes      = "notes"
	FieldVisits     = "visits"
	FieldLastVisit  = "last_visit"
)

var nonDigits = regexp.MustCompile(`\D`)

type Client struct {
	ID         string `db:"id"`
	BusinessID string `db:"business_id"`
	Name       string `db:"name"`
	Email      string `db:"email"`
	Phone      string `db:"phone"`
	Notes      string `db:"notes"`
	Visits     int    `db:"visits"`
	LastVisit  string `db:"last_visit"`
	model.Metadata
}

// NormalizeEmail lowercases and trims an email for identity comparison.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// NormalizePhone strips everything but digits for identity comparison.
func NormalizePhone(phone string) string {
	return nonDigits.ReplaceAllString(phone, "")
}

// NormalizeName lowercases and trims a name for identity comparison.
func NormalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
