package models

import (
	"fmt"
	"strings"
)

// ValidationError reports required fields missing from a submitted form.
// It is detected before any write, so a rejection leaves stored state untouched.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("missing required fields: %s", strings.Join(e.Fields, ", "))
}

// NewValidationError returns nil when no fields are missing.
func NewValidationError(fields ...string) error {
	if len(fields) == 0 {
		return nil
	}
	return &ValidationError{Fields: fields}
}
