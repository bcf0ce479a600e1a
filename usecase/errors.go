package usecase

import (
	"encoding/json"
	"fmt"
)

// ValidationError is a client error detected before any upstream call.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

func newValidationError(format string, args ...interface{}) error {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// GraphAPIError carries an upstream failure that the endpoint forwards as-is.
type GraphAPIError struct {
	StatusCode int
	Payload    json.RawMessage
}

func (e *GraphAPIError) Error() string {
	return fmt.Sprintf("graph api returned status %d", e.StatusCode)
}
