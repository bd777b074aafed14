package logger

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
)

type contextKey string

const sessionIDKey contextKey = "session_id"

// AttrKeySessionID tags log lines belonging to one focus session.
const AttrKeySessionID = "session_id"

// NewSessionID returns a fresh random session identifier.
func NewSessionID() string {
	return uuid.New().String()
}

// WithSessionID stores the session id on the context.
func WithSessionID(ctx context.Context, sessionID string) context.Context {
	return context.WithValue(ctx, sessionIDKey, sessionID)
}

// SessionID returns the session id stored on the context, if any.
func SessionID(ctx context.Context) string {
	if id, ok := ctx.Value(sessionIDKey).(string); ok {
		return id
	}
	return ""
}

// FromContext returns the default logger enriched with the context's session id.
func FromContext(ctx context.Context) *slog.Logger {
	log := slog.Default()
	if id := SessionID(ctx); id != "" {
		log = log.With(AttrKeySessionID, id)
	}
	return log
}
