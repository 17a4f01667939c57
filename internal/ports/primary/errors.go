package primary

import "fmt"

// NotFoundError is returned by read operations when the API has nothing under the key.
type NotFoundError struct {
	Kind string // e.g. "Artist"
	Key  string // optional, e.g. the username
	Err  error
}

func (e *NotFoundError) Error() string {
	if e.Key == "" {
		return e.Kind + " not found"
	}
	return fmt.Sprintf("%s '%s' not found", e.Kind, e.Key)
}

func (e *NotFoundError) Unwrap() error {
	return e.Err
}

// SessionExpiredError is returned by read operations when the API rejects the stored token.
type SessionExpiredError struct {
	Err error
}

func (e *SessionExpiredError) Error() string {
	return "Session expired. Log in again with: atelier login"
}

func (e *SessionExpiredError) Unwrap() error {
	return e.Err
}
