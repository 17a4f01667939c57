package secondary

import (
	"context"
	"errors"
)

// ErrNoSession is returned when no one is logged in.
var ErrNoSession = errors.New("not logged in. Log in first with: atelier login")

// SessionReader is the read-only view of the session store.
// Lifecycle services depend on this and can never change the session.
type SessionReader interface {
	// Current returns the active session or ErrNoSession.
	Current(ctx context.Context) (*SessionRecord, error)
}

// SessionStore defines the secondary port for session persistence.
// Only login and logout write through it.
type SessionStore interface {
	SessionReader

	// Save replaces the active session.
	Save(ctx context.Context, session *SessionRecord) error

	// Clear removes the active session. Clearing an empty store is not an error.
	Clear(ctx context.Context) error
}

// SessionRecord represents a session as stored in persistence.
type SessionRecord struct {
	Token     string
	Role      string // "Buyer" or "Seller"
	UserID    int    // 0 when the token carries no user claim
	Email     string
	CreatedAt string
}
