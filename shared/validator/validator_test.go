package validator_test

import (
	"strings"
	"testing"

	"reservahub/shared/validator"
)

// Test structs for validation
type ValidTestStruct struct {
	Name     string `validate:"required" json:"name"`
	Email    string `validate:"required,email" json:"email"`
	Age      int    `validate:"gte=0,lte=120" json:"age"`
	Category string `validate:"oneof=user admin guest" json:"category"`
}

type ClockTestStruct struct {
	Start string `validate:"required,clock" json:"start"`
	End   string `validate:"omitempty,clock" json:"end"`
}

func TestValidateStruct(t *testing.T) {
	tests := []struct {
		name        string
		data        *ValidTestStruct
		expectError bool
	}{
		{
			name: "valid struct",
			data: &ValidTestStruct{
				Name:     "John Doe",
				Email:    "john@example.com",
				Age:      25,
				Category: "user",
			},
			expectError: false,
		},
		{
			name: "missing required field",
			data: &ValidTestStruct{
				Email:    "john@example.com",
				Age:      25,
				Category: "user",
			},
			expectError: true,
		},
		{
			name: "invalid email",
			data: &ValidTestStruct{
				Name:     "John Doe",
				Email:    "invalid-email",
				Age:      25,
				Category: "user",
			},
			expectError: true,
		},
		{
			name: "age out of range",
			data: &ValidTestStruct{
				Name:     "John Doe",
				Email:    "john@example.com",
				Age:      150,
				Category: "user",
			},
			expectError: true,
		},
		{
			name: "invalid category",
			data: &ValidTestStruct{
				Name:     "John Doe",
				Email:    "john@example.com",
				Age:      25,
				Category: "invalid",
			},
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateStruct(tt.data)

			if tt.expectError && err == nil {
				t.Error("expected validation error, got nil")
			}

			if !tt.expectError && err != nil {
				t.Errorf("expected no error, got %v", err)
			}
		})
	}
}

func TestValidateClockTag(t *testing.T) {
	tests := []struct {
		name        string
		data        *ClockTestStruct
		expectError bool
	}{
		{
			name:        "valid clock values",
			data:        &ClockTestStruct{Start: "09:00", End: "17:30"},
			expectError: false,
		},
		{
			name:        "optional clock left empty",
			data:        &ClockTestStruct{Start: "09:00"},
			expectError: false,
		},
		{
			name:        "hour out of range",
			data:        &ClockTestStruct{Start: "24:00"},
			expectError: true,
		},
		{
			name:        "minute out of range",
			data:        &ClockTestStruct{Start: "09:60"},
			expectError: true,
		},
		{
			name:        "missing zero padding",
			data:        &ClockTestStruct{Start: "9:00"},
			expectError: true,
		},
		{
			name:        "not a clock at all",
			data:        &ClockTestStruct{Start: "morning"},
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateStruct(tt.data)

			if tt.expectError && err == nil {
				t.Error("expected validation error, got nil")
			}

			if !tt.expectError && err != nil {
				t.Errorf("expected no error, got %v", err)
			}
		})
	}
}

func TestValidate(t *testing.T) {
	t.Run("valid JSON body", func(t *testing.T) {
		body := strings.NewReader(`{"name":"John Doe","email":"john@example.com","age":25,"category":"user"}`)

		req := ValidTestStruct{}
		if err := validator.Validate(body, &req); err != nil {
			t.Errorf("expected no error, got %v", err)
		}

		if req.Name != "John Doe" {
			t.Errorf("expected decoded name to be 'John Doe', got %s", req.Name)
		}
	})

	t.Run("malformed JSON body", func(t *testing.T) {
		body := strings.NewReader(`{"name":`)

		req := ValidTestStruct{}
		if err := validator.Validate(body, &req); err == nil {
			t.Error("expected decode error, got nil")
		}
	})

	t.Run("JSON body failing validation", func(t *testing.T) {
		body := strings.NewReader(`{"name":"","email":"bad","age":25,"category":"user"}`)

		req := ValidTestStruct{}
		if err := validator.Validate(body, &req); err == nil {
			t.Error("expected validation error, got nil")
		}
	})
}

func TestValidateVar(t *testing.T) {
	if err := validator.ValidateVar("14:30", "clock"); err != nil {
		t.Errorf("expected no error, got %v", err)
	}

	if err := validator.ValidateVar("25:00", "clock"); err == nil {
		t.Error("expected validation error, got nil")
	}
}
