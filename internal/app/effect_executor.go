// Package app contains the application layer - service implementations and effect execution.
package app

import (
	"context"
	"fmt"
	"io"
	"log"
	"sort"
	"strings"

	"github.com/example/atelier/internal/core/effects"
	"github.com/example/atelier/internal/ctxutil"
	"github.com/example/atelier/internal/ports/secondary"
)

// EffectExecutor interprets and executes effects.
// This is the "Imperative Shell" - the only place I/O happens.
type EffectExecutor interface {
	Execute(ctx context.Context, effs []effects.Effect) error
}

// DefaultEffectExecutor implements EffectExecutor with real I/O.
// A nil notifier or activity log drops the corresponding effects.
type DefaultEffectExecutor struct {
	notifier secondary.Notifier
	activity secondary.ActivityLog
	logger   *log.Logger
}

// NewEffectExecutor creates a new DefaultEffectExecutor.
func NewEffectExecutor(notifier secondary.Notifier, activity secondary.ActivityLog, logger *log.Logger) *DefaultEffectExecutor {
	return &DefaultEffectExecutor{
		notifier: notifier,
		activity: activity,
		logger:   orDiscard(logger),
	}
}

// Execute processes a slice of effects, executing each in sequence.
func (e *DefaultEffectExecutor) Execute(ctx context.Context, effs []effects.Effect) error {
	for _, eff := range effs {
		if err := e.executeOne(ctx, eff); err != nil {
			return fmt.Errorf("failed to execute %s effect: %w", eff.EffectType(), err)
		}
	}
	return nil
}

func (e *DefaultEffectExecutor) executeOne(ctx context.Context, eff effects.Effect) error {
	switch typed := eff.(type) {
	case effects.NotifyEffect:
		if e.notifier != nil {
			e.notifier.Notify(typed.Level, typed.Message)
		}
		return nil
	case effects.ActivityEffect:
		return e.executeActivity(ctx, typed)
	case effects.LogEffect:
		e.logger.Printf("[%s] %s%s", typed.Level, typed.Message, formatFields(withRequestID(ctx, typed.Fields)))
		return nil
	default:
		return fmt.Errorf("unknown effect type: %T", eff)
	}
}

func (e *DefaultEffectExecutor) executeActivity(ctx context.Context, eff effects.ActivityEffect) error {
	if e.activity == nil {
		return nil
	}
	return e.activity.Record(ctx, &secondary.ActivityRecord{
		Action:   eff.Action,
		EntityID: eff.EntityID,
		Detail:   eff.Detail,
		Outcome:  eff.Outcome,
	})
}

// withRequestID adds the context's request id to a copy of fields.
func withRequestID(ctx context.Context, fields map[string]any) map[string]any {
	id := ctxutil.RequestIDFromContext(ctx)
	if id == "" {
		return fields
	}
	out := make(map[string]any, len(fields)+1)
	for k, v := range fields {
		out[k] = v
	}
	out["request_id"] = id
	return out
}

// formatFields renders log fields as " k=v" pairs in key order.
func formatFields(fields map[string]any) string {
	if len(fields) == 0 {
		return ""
	}
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	for _, k := range keys {
		fmt.Fprintf(&b, " %s=%v", k, fields[k])
	}
	return b.String()
}

func orDiscard(l *log.Logger) *log.Logger {
	if l == nil {
		return log.New(io.Discard, "", 0)
	}
	return l
}
