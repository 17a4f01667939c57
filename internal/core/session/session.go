// Package session contains the pure logic for logging in and out.
package session

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/example/atelier/internal/core/effects"
)

// Activity actions for session changes.
const (
	ActivityLogin  = "login"
	ActivityLogout = "logout"
)

// GuardResult represents the outcome of a guard evaluation.
type GuardResult struct {
	Allowed bool
	Reason  string
}

// Error converts the guard result to an error if not allowed.
func (r GuardResult) Error() error {
	if r.Allowed {
		return nil
	}
	return fmt.Errorf("%s", r.Reason)
}

// LoginContext provides context for the login guard.
type LoginContext struct {
	Email    string
	Password string
}

// CanLogin evaluates whether credentials are worth sending.
func CanLogin(ctx LoginContext) GuardResult {
	if strings.TrimSpace(ctx.Email) == "" {
		return GuardResult{Allowed: false, Reason: "email is required"}
	}
	if ctx.Password == "" {
		return GuardResult{Allowed: false, Reason: "password is required"}
	}
	return GuardResult{Allowed: true}
}

// UserIDClaims lists the token claims that may carry the account id, in lookup order.
var UserIDClaims = []string{"user_id", "id", "sub"}

// UserIDFromClaims extracts the account id from decoded token claims.
// Numbers and numeric strings are accepted; anything else yields 0.
func UserIDFromClaims(claims map[string]any) int {
	for _, key := range UserIDClaims {
		switch v := claims[key].(type) {
		case float64:
			return int(v)
		case string:
			if n, err := strconv.Atoi(v); err == nil {
				return n
			}
		}
	}
	return 0
}

// PlanLoginEffects returns the effects of a stored session.
func PlanLoginEffects(email, role string) []effects.Effect {
	return []effects.Effect{
		effects.NotifyEffect{Level: effects.LevelSuccess, Message: fmt.Sprintf("Logged in as %s (%s)", email, role)},
		effects.ActivityEffect{Action: ActivityLogin, EntityID: email, Detail: "role=" + role, Outcome: "ok"},
	}
}

// PlanLoginFailureEffects returns the effects of rejected credentials.
// Nothing is recorded in the activity log; no account acted.
func PlanLoginFailureEffects(email, cause string) []effects.Effect {
	return []effects.Effect{
		effects.LogEffect{
			Level:   effects.LevelError,
			Message: ActivityLogin + " failed",
			Fields:  map[string]any{"email": email, "error": cause},
		},
	}
}

// PlanLogoutEffects returns the effects of a cleared session.
func PlanLogoutEffects(email string) []effects.Effect {
	if email == "" {
		return []effects.Effect{effects.NotifyEffect{Level: effects.LevelInfo, Message: "Not logged in"}}
	}
	return []effects.Effect{
		effects.NotifyEffect{Level: effects.LevelSuccess, Message: "Logged out"},
		effects.ActivityEffect{Action: ActivityLogout, EntityID: email, Outcome: "ok"},
	}
}
