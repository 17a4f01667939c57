// Package ctxutil provides context utilities that can be safely imported anywhere.
// This package has no internal dependencies to avoid import cycles.
package ctxutil

import (
	"context"

	"github.com/google/uuid"
)

// ActorKey is the context key for the acting account (the session email).
// Exported so it can be used consistently across packages.
type ActorKey struct{}

// RequestIDKey is the context key for the id sent as X-Request-ID.
type RequestIDKey struct{}

// WithActorID returns a context with the actor ID embedded.
func WithActorID(ctx context.Context, actorID string) context.Context {
	return context.WithValue(ctx, ActorKey{}, actorID)
}

// ActorFromContext returns the actor ID from context, or empty string if not set.
func ActorFromContext(ctx context.Context) string {
	if v, ok := ctx.Value(ActorKey{}).(string); ok {
		return v
	}
	return ""
}

// WithRequestID returns a context carrying the given request id.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, RequestIDKey{}, requestID)
}

// RequestIDFromContext returns the request id from context, or empty string if not set.
func RequestIDFromContext(ctx context.Context) string {
	if v, ok := ctx.Value(RequestIDKey{}).(string); ok {
		return v
	}
	return ""
}

// EnsureRequestID returns ctx unchanged if it already carries a request id,
// otherwise a child context with a fresh one.
func EnsureRequestID(ctx context.Context) context.Context {
	if RequestIDFromContext(ctx) != "" {
		return ctx
	}
	return WithRequestID(ctx, uuid.NewString())
}
