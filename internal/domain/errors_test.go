package domain

import (
	"errors"
	"fmt"
	"testing"
)

func TestValidationErrorMatchesSentinel(t *testing.T) {
	err := fmt.Errorf("episodes: %w", NewValidationError("id", "id must be greater than 0", ErrInvalidPodcastID))

	if !errors.Is(err, ErrInvalidPodcastID) {
		t.Error("Expected errors.Is to find the sentinel")
	}
	var vErr *ValidationError
	if !errors.As(err, &vErr) || vErr.Field != "id" {
		t.Errorf("Expected ValidationError for id, got %v", err)
	}
}

func TestIsAPIError(t *testing.T) {
	wrapped := fmt.Errorf("search: %w", &APIError{Message: "rate limited"})
	if apiErr, ok := IsAPIError(wrapped); !ok || apiErr.Message != "rate limited" {
		t.Errorf("Expected API error, got %v %v", apiErr, ok)
	}

	transport := &TransportError{Op: "search", Err: errors.New("dial tcp: refused")}
	if _, ok := IsAPIError(transport); ok {
		t.Error("Transport errors must not look like API errors")
	}
	if transport.Error() != "search: dial tcp: refused" {
		t.Errorf("Unexpected message %q", transport.Error())
	}
}
