package entities

import (
	"errors"
	"fmt"
	"strings"
)

// CustomField is one entry of the expense-field schema a PM can attach
// to a BudgetRequest. Type is informational (text, number, date, file);
// coercion happens upstream during intake, not here.
type CustomField struct {
	Name     string `json:"name"`
	Type     string `json:"type"`
	Required bool   `json:"required"`
}

// ExpenseSchema is the lightweight schema value object interpreted at
// runtime when utilization records are submitted.
type ExpenseSchema []CustomField

var ErrMissingRequiredField = errors.New("missing required field")

// MissingRequiredFieldError identifies the first required field absent
// from a submission's custom data.
type MissingRequiredFieldError struct {
	Field string
}

func (e *MissingRequiredFieldError) Error() string {
	return fmt.Sprintf("missing required field: %s", e.Field)
}

func (e *MissingRequiredFieldError) Is(target error) bool {
	return target == ErrMissingRequiredField
}

// Validate rejects schema definitions with unnamed fields.
func (s ExpenseSchema) Validate() error {
	for _, f := range s {
		if strings.TrimSpace(f.Name) == "" {
			return errors.New("expense field name is required")
		}
	}
	return nil
}

// ValidateData checks that data supplies a non-empty value for every
// required field, short-circuiting on the first miss. Optional fields
// and unknown keys pass through untouched.
func (s ExpenseSchema) ValidateData(data map[string]any) error {
	if len(s) == 0 {
		return nil
	}
	for _, f := range s {
		if !f.Required {
			continue
		}
		v, ok := data[f.Name]
		if !ok || v == nil {
			return &MissingRequiredFieldError{Field: f.Name}
		}
		if strings.TrimSpace(fmt.Sprintf("%v", v)) == "" {
			return &MissingRequiredFieldError{Field: f.Name}
		}
	}
	return nil
}
