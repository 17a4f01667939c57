package app

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/golang-jwt/jwt/v5"

	corecommission "github.com/example/atelier/internal/core/commission"
	coresession "github.com/example/atelier/internal/core/session"
	"github.com/example/atelier/internal/ctxutil"
	"github.com/example/atelier/internal/ports/primary"
	"github.com/example/atelier/internal/ports/secondary"
)

// SessionServiceImpl implements the SessionService interface.
// It is the only writer of the session store.
type SessionServiceImpl struct {
	auth     secondary.AuthGateway
	store    secondary.SessionStore
	executor EffectExecutor
	logger   *log.Logger
}

// NewSessionService creates a new SessionService with injected dependencies.
func NewSessionService(
	auth secondary.AuthGateway,
	store secondary.SessionStore,
	executor EffectExecutor,
	logger *log.Logger,
) *SessionServiceImpl {
	return &SessionServiceImpl{
		auth:     auth,
		store:    store,
		executor: executor,
		logger:   orDiscard(logger),
	}
}

// Login exchanges credentials for a session and stores it.
func (s *SessionServiceImpl) Login(ctx context.Context, email, password string) (*primary.Session, error) {
	if err := coresession.CanLogin(coresession.LoginContext{Email: email, Password: password}).Error(); err != nil {
		return nil, err
	}
	ctx = ctxutil.WithActorID(ctxutil.EnsureRequestID(ctx), email)

	rec, err := s.auth.Login(ctx, email, password)
	if err != nil {
		if execErr := s.executor.Execute(ctx, coresession.PlanLoginFailureEffects(email, err.Error())); execErr != nil {
			s.logger.Printf("request_id=%s: %v", ctxutil.RequestIDFromContext(ctx), execErr)
		}
		return nil, fmt.Errorf("failed to log in: %w", err)
	}
	if rec.Token == "" {
		return nil, errors.New("login succeeded but no token was returned")
	}

	role, err := corecommission.ParseRole(rec.UserType)
	if err != nil {
		return nil, fmt.Errorf("unexpected account type: %w", err)
	}

	record := &secondary.SessionRecord{
		Token:  rec.Token,
		Role:   string(role),
		UserID: userIDFromToken(rec.Token),
		Email:  email,
	}
	if err := s.store.Save(ctx, record); err != nil {
		return nil, fmt.Errorf("failed to save session: %w", err)
	}

	if err := s.executor.Execute(ctx, coresession.PlanLoginEffects(email, string(role))); err != nil {
		s.logger.Printf("request_id=%s: %v", ctxutil.RequestIDFromContext(ctx), err)
	}

	return s.Current(ctx)
}

// Logout clears the stored session.
func (s *SessionServiceImpl) Logout(ctx context.Context) error {
	ctx = ctxutil.EnsureRequestID(ctx)

	var email string
	sess, err := s.store.Current(ctx)
	switch {
	case errors.Is(err, secondary.ErrNoSession):
	case err != nil:
		return err
	default:
		email = sess.Email
		ctx = ctxutil.WithActorID(ctx, email)
	}

	if err := s.store.Clear(ctx); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}

	if err := s.executor.Execute(ctx, coresession.PlanLogoutEffects(email)); err != nil {
		s.logger.Printf("request_id=%s: %v", ctxutil.RequestIDFromContext(ctx), err)
	}
	return nil
}

// Current returns the stored session.
func (s *SessionServiceImpl) Current(ctx context.Context) (*primary.Session, error) {
	rec, err := s.store.Current(ctx)
	if err != nil {
		return nil, err
	}
	return &primary.Session{
		Email:     rec.Email,
		Role:      rec.Role,
		UserID:    rec.UserID,
		CreatedAt: rec.CreatedAt,
	}, nil
}

// userIDFromToken reads the account id from the token's claims without
// verifying the signature; the client never holds the signing key.
func userIDFromToken(token string) int {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return 0
	}
	return coresession.UserIDFromClaims(claims)
}

// Ensure SessionServiceImpl implements the interface
var _ primary.SessionService = (*SessionServiceImpl)(nil)
