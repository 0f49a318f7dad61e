package entities

import (
	"errors"
	"testing"
)

func TestExpenseSchemaValidate(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		s := ExpenseSchema{
			{Name: "invoice_number", Type: "text", Required: true},
			{Name: "notes", Type: "text"},
		}
		if err := s.Validate(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("unnamed field", func(t *testing.T) {
		s := ExpenseSchema{{Name: "   ", Type: "text"}}
		if err := s.Validate(); err == nil {
			t.Fatal("expected error for unnamed field")
		}
	})
}

func TestExpenseSchemaValidateData(t *testing.T) {
	schema := ExpenseSchema{
		{Name: "invoice_number", Type: "text", Required: true},
		{Name: "vendor", Type: "text", Required: true},
		{Name: "notes", Type: "text"},
	}

	t.Run("all required present", func(t *testing.T) {
		data := map[string]any{"invoice_number": "INV-1", "vendor": "Acme"}
		if err := schema.ValidateData(data); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("reports first missing required field", func(t *testing.T) {
		err := schema.ValidateData(map[string]any{"vendor": "Acme"})
		if !errors.Is(err, ErrMissingRequiredField) {
			t.Fatalf("expected ErrMissingRequiredField, got %v", err)
		}
		var missing *MissingRequiredFieldError
		if !errors.As(err, &missing) {
			t.Fatalf("expected MissingRequiredFieldError, got %T", err)
		}
		if missing.Field != "invoice_number" {
			t.Fatalf("expected invoice_number, got %s", missing.Field)
		}
	})

	t.Run("blank value counts as missing", func(t *testing.T) {
		data := map[string]any{"invoice_number": "  ", "vendor": "Acme"}
		var missing *MissingRequiredFieldError
		if err := schema.ValidateData(data); !errors.As(err, &missing) || missing.Field != "invoice_number" {
			t.Fatalf("expected missing invoice_number, got %v", err)
		}
	})

	t.Run("optional fields may be absent", func(t *testing.T) {
		data := map[string]any{"invoice_number": "INV-1", "vendor": "Acme"}
		if err := schema.ValidateData(data); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("empty schema accepts nil data", func(t *testing.T) {
		var s ExpenseSchema
		if err := s.ValidateData(nil); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}
