// Package effects defines effect types as data structures representing I/O operations.
// This is the foundation of the Functional Core / Imperative Shell pattern.
// Effects are pure data - they describe what should happen, not how.
package effects

// Effect is the base interface for all effects.
// Effects represent I/O operations as data that can be interpreted by the shell.
type Effect interface {
	// EffectType returns a string identifier for the effect type.
	EffectType() string
}

// Notification levels.
const (
	LevelSuccess = "success"
	LevelInfo    = "info"
	LevelError   = "error"
)

// NotifyEffect represents a user-visible toast.
type NotifyEffect struct {
	Level   string
	Message string
}

func (e NotifyEffect) EffectType() string { return "notify" }

// LogEffect represents a diagnostic log line.
type LogEffect struct {
	Level   string
	Message string
	Fields  map[string]any
}

func (e LogEffect) EffectType() string { return "log" }

// ActivityEffect represents an entry in the local activity log.
type ActivityEffect struct {
	Action   string // e.g., "request", "advance", "rate"
	EntityID string
	Detail   string
	Outcome  string // "ok" or the error text
}

func (e ActivityEffect) EffectType() string { return "activity" }
