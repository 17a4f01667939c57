package secondary

import (
	"errors"
	"fmt"
	"net/http"
)

// APIError is a failure reported by the marketplace API.
// Message is the server's "error" string, kept verbatim.
type APIError struct {
	StatusCode int
	Message    string
	RequestID  string
}

func (e *APIError) Error() string {
	return e.Message
}

// TransportError is a failure where no usable response came back.
type TransportError struct {
	Op        string
	RequestID string
	Err       error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// IsNotFound reports whether err is an API 404.
func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound
}

// IsUnauthorized reports whether err is an API 401 or 403.
func IsUnauthorized(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) &&
		(apiErr.StatusCode == http.StatusUnauthorized || apiErr.StatusCode == http.StatusForbidden)
}

// IsTransport reports whether err is a transport-level failure.
func IsTransport(err error) bool {
	var tErr *TransportError
	return errors.As(err, &tErr)
}
