package dashboard

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/pkg/errors"
)

// APIError is a failed dashboard request: either the transport failed (Err is
// set) or the dashboard answered with a non 2xx status.
type APIError struct {
	Method     string
	Path       string
	StatusCode int
	Status     string
	Errors     []string
	Err        error
}

func (e *APIError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s %s: %v", e.Method, e.Path, e.Err)
	}
	msg := fmt.Sprintf("%s %s: %s", e.Method, e.Path, e.Status)
	if len(e.Errors) > 0 {
		msg += ": " + strings.Join(e.Errors, "; ")
	}
	return msg
}

func (e *APIError) Unwrap() error { return e.Err }

// Retryable reports whether the same request could succeed later: transport
// failures, rate limiting, and server errors.
func (e *APIError) Retryable() bool {
	return e.Err != nil || e.StatusCode == http.StatusTooManyRequests || e.StatusCode >= 500
}

// IsRetryable reports whether err wraps a retryable *APIError.
func IsRetryable(err error) bool {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Retryable()
	}
	return false
}

// errorBody is the dashboard's error envelope.
type errorBody struct {
	Errors []string `json:"errors"`
}
