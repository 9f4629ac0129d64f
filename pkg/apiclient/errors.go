package apiclient

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrInvalidBaseURL indicates a missing or unusable backend URL
	ErrInvalidBaseURL = errors.New("apiclient.invalid_base_url")

	// ErrNetwork wraps transport-level failures (no usable response)
	ErrNetwork = errors.New("apiclient.network_failure")

	// ErrDecode wraps malformed JSON in a success response
	ErrDecode = errors.New("apiclient.malformed_response")
)

// APIError is a non-2xx response from the server. Detail carries the server's
// structured error message when it sent one; an empty Detail means the caller
// should fall back to its own message.
type APIError struct {
	StatusCode int
	Detail     string
}

func (e *APIError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("api error %d: %s", e.StatusCode, e.Detail)
	}
	return fmt.Sprintf("api error %d", e.StatusCode)
}

// IsUnauthorized reports whether the error is a 401 or 403 response, the two
// statuses that mean the current credential is not accepted.
func IsUnauthorized(err error) bool {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode == http.StatusUnauthorized || apiErr.StatusCode == http.StatusForbidden
	}
	return false
}

// ErrorDetail extracts the server-supplied detail message from an error,
// returning fallback when the error carries none.
func ErrorDetail(err error, fallback string) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.Detail != "" {
		return apiErr.Detail
	}
	return fallback
}
