package validation

import (
	"fmt"

	"go-lawfirm-backend/pkg/apperror"

	"github.com/go-playground/validator/v10"
)

// FormatValidationErrors converts validator.ValidationErrors to one
// user-friendly message per failing field. Every failing field is reported,
// never just the first.
func FormatValidationErrors(err error) []apperror.FieldError {
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return []apperror.FieldError{{Field: "request", Message: err.Error()}}
	}

	fields := make([]apperror.FieldError, 0, len(validationErrors))
	for _, e := range validationErrors {
		fields = append(fields, apperror.FieldError{
			Field:   e.Field(),
			Message: formatSingleError(e),
		})
	}
	return fields
}

// formatSingleError formats a single validation error to a user-friendly message
func formatSingleError(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "This field is required"
	case "min":
		if e.Kind().String() == "string" {
			return fmt.Sprintf("Must be at least %s characters", e.Param())
		}
		return fmt.Sprintf("Must be at least %s", e.Param())
	case "max":
		if e.Kind().String() == "string" {
			return fmt.Sprintf("Must be at most %s characters", e.Param())
		}
		return fmt.Sprintf("Must be at most %s", e.Param())
	case "email":
		return "Must be a valid email address"
	case "valid_phone":
		return "Must be a valid phone number (digits, spaces, +, -, parentheses; 5-20 characters)"
	default:
		// Fallback for unknown tags
		return fmt.Sprintf("Validation failed (%s)", e.Tag())
	}
}
