package middleware

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FormatBindingError turns a binding failure into a short,
// field-oriented message suitable for the error detail field.
func FormatBindingError(err error) string {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return err.Error()
	}

	parts := make([]string, 0, len(validationErrors))
	for _, fieldError := range validationErrors {
		parts = append(parts, formatFieldError(fieldError))
	}
	return strings.Join(parts, "; ")
}

// formatFieldError renders a single rule violation.
func formatFieldError(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return e.Field() + " is required"
	case "min":
		return e.Field() + " must be at least " + e.Param()
	case "max":
		return e.Field() + " must be at most " + e.Param()
	case "email":
		return e.Field() + " must be a valid email address"
	case "oneof":
		return e.Field() + " must be one of: " + e.Param()
	default:
		return e.Field() + " failed the " + e.Tag() + " rule"
	}
}
