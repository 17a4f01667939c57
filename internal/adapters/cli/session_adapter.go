package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/example/atelier/internal/ports/primary"
)

// SessionAdapter is a thin adapter that translates CLI operations to SessionService calls.
type SessionAdapter struct {
	service primary.SessionService
	out     io.Writer
}

// NewSessionAdapter creates a new SessionAdapter with the given service.
func NewSessionAdapter(service primary.SessionService, out io.Writer) *SessionAdapter {
	return &SessionAdapter{
		service: service,
		out:     out,
	}
}

// Login logs in; the service announces the result.
func (a *SessionAdapter) Login(ctx context.Context, email, password string) (*primary.Session, error) {
	return a.service.Login(ctx, email, password)
}

// Logout clears the session.
func (a *SessionAdapter) Logout(ctx context.Context) error {
	return a.service.Logout(ctx)
}

// WhoAmI prints the logged-in account.
func (a *SessionAdapter) WhoAmI(ctx context.Context) (*primary.Session, error) {
	sess, err := a.service.Current(ctx)
	if err != nil {
		return nil, err
	}
	fmt.Fprintf(a.out, "Email:   %s\n", sess.Email)
	fmt.Fprintf(a.out, "Role:    %s\n", sess.Role)
	if sess.UserID != 0 {
		fmt.Fprintf(a.out, "User ID: %d\n", sess.UserID)
	}
	fmt.Fprintf(a.out, "Since:   %s\n", sess.CreatedAt)
	return sess, nil
}
