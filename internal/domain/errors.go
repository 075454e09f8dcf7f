package domain

import (
	"errors"
	"fmt"
)

// ValidationError provides detailed validation error information. Err is
// the sentinel it matches with errors.Is.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed: %s - %s", e.Field, e.Message)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// NewValidationError creates a new validation error
func NewValidationError(field, message string, sentinel error) *ValidationError {
	return &ValidationError{Field: field, Message: message, Err: sentinel}
}

// APIError is an error reported by the directory API in its "error" field.
// The message is shown to the user verbatim.
type APIError struct {
	Message string
}

func (e *APIError) Error() string {
	return e.Message
}

// TransportError covers requests that never produced a usable body:
// connection failures, timeouts and malformed JSON.
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// Input errors
var (
	ErrEmptyQuery       = errors.New("empty search query")
	ErrInvalidPodcastID = errors.New("invalid podcast id")
)

// IsAPIError reports whether err carries a message from the directory API.
func IsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}
