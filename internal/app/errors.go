package app

import (
	"errors"

	"github.com/example/atelier/internal/ports/primary"
	"github.com/example/atelier/internal/ports/secondary"
)

// GenericFailureMessage is shown when the API could not be reached.
const GenericFailureMessage = "Something went wrong. Please try again."

// UserMessage returns the text a user should see for err.
// Read failures render as a not-found or expired-session state. Other
// server-reported messages are shown verbatim; transport failures get a generic notice.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	var notFound *primary.NotFoundError
	if errors.As(err, &notFound) {
		return notFound.Error()
	}
	var expired *primary.SessionExpiredError
	if errors.As(err, &expired) {
		return expired.Error()
	}
	var apiErr *secondary.APIError
	if errors.As(err, &apiErr) {
		return apiErr.Message
	}
	if secondary.IsTransport(err) {
		return GenericFailureMessage
	}
	return err.Error()
}

// readFailure maps a failed read to the state the caller renders:
// 401/403 become SessionExpiredError, 404 becomes NotFoundError.
// Mutations never go through here; their server message is shown as is.
func readFailure(err error, kind, key string) error {
	switch {
	case secondary.IsUnauthorized(err):
		return &primary.SessionExpiredError{Err: err}
	case secondary.IsNotFound(err):
		return &primary.NotFoundError{Kind: kind, Key: key, Err: err}
	}
	return err
}
