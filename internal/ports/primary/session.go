package primary

import "context"

// SessionService defines the primary port for login state.
type SessionService interface {
	// Login exchanges credentials for a session and stores it.
	Login(ctx context.Context, email, password string) (*Session, error)

	// Logout clears the stored session.
	Logout(ctx context.Context) error

	// Current returns the stored session.
	Current(ctx context.Context) (*Session, error)
}

// Session represents the logged-in account at the port boundary.
// The token itself never crosses this boundary.
type Session struct {
	Email     string
	Role      string
	UserID    int
	CreatedAt string
}
