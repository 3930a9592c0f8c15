package transport

import (
	"errors"
	"fmt"
	"net/http"
)

// APIError is a non-2xx response from the betting API, carrying the server's
// structured message. Anything that fails before a response exists (DNS,
// refused connection, timeout) is not an APIError.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error (%d): %s", e.StatusCode, e.Message)
}

// IsUnauthorized reports whether the error is the server refusing the
// caller's authentication.
func IsUnauthorized(err error) bool {
	var apiErr *APIError

	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusUnauthorized
}

// IsRejected reports whether the server refused the submitted data itself,
// e.g. failing its own validation.
func IsRejected(err error) bool {
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		return false
	}

	return apiErr.StatusCode >= 400 &&
		apiErr.StatusCode < 500 &&
		apiErr.StatusCode != http.StatusUnauthorized
}

// Message returns the server's message for rejected requests and a generic
// fallback for everything else.
func Message(err error) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}

	return "something went wrong, please try again"
}
