package service

import "fmt"

// ValidationError marks input the caller must fix. The api layer maps it
// to a 400 response.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}

func newValidationError(field, format string, args ...any) error {
	return ValidationError{
		Field:   field,
		Message: fmt.Sprintf(format, args...),
	}
}
