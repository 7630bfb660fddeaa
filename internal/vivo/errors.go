package vivo

import (
	"errors"
	"fmt"
)

// Sentinel errors for store failures.
var (
	// ErrAuthError indicates the store rejected the configured
	// credentials.
	ErrAuthError = errors.New("authentication failed")

	// ErrNetworkError indicates a transport-level failure.
	ErrNetworkError = errors.New("network error")
)

// APIError is a non-auth error response from the store endpoints.
type APIError struct {
	StatusCode int
	Endpoint   string
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("store error: %s returned HTTP %d: %s", e.Endpoint, e.StatusCode, e.Body)
}

// IsAuthError checks if an error is an authentication error.
func IsAuthError(err error) bool {
	return errors.Is(err, ErrAuthError)
}
