package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/example/atelier/internal/ports/primary"
)

// browseArtists is the follow-up shown when an artist lookup finds nothing.
const browseArtists = "atelier artist list"

// readFailure prints what to do next when a read found nothing or the session
// was rejected, and returns err unchanged for the caller to toast.
// Other errors, including every mutation failure, print nothing here.
func readFailure(out io.Writer, err error, browse string) error {
	var expired *primary.SessionExpiredError
	var notFound *primary.NotFoundError
	switch {
	case errors.As(err, &expired):
		fmt.Fprintln(out, "The marketplace no longer accepts your stored session. Log in again:")
		fmt.Fprintln(out, "  atelier login --email <your email>")
	case errors.As(err, &notFound) && browse != "":
		fmt.Fprintf(out, "%s. See what exists with:\n  %s\n", notFound.Error(), browse)
	}
	return err
}
