package services

import (
	"errors"
	"fmt"
	"strings"
)

// Expected business outcomes. Handlers branch on these to pick the right
// status code and message; anything else is an infrastructure failure.
var (
	ErrNotFound              = errors.New("record not found")
	ErrInactive              = errors.New("record is inactive")
	ErrDuplicateCheckinToday = errors.New("already checked in today")
)

// FieldError names one invalid input field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError carries per-field messages for malformed input.
type ValidationError struct {
	Fields []FieldError
}

func NewValidationError(fields ...FieldError) *ValidationError {
	return &ValidationError{Fields: fields}
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return "validation failed"
	}
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, fmt.Sprintf("%s: %s", f.Field, f.Message))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}
