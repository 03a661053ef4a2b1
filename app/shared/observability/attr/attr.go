package attr

import (
	"context"
	"log/slog"
	"time"

	sharedtypes "github.com/The-Bracket-Club/tourney-bot/app/shared/types/shared"
)

// Thin wrappers over slog attrs so call sites read uniformly and domain IDs
// get consistent keys.

func String(key, value string) slog.Attr { return slog.String(key, value) }

func Int(key string, value int) slog.Attr { return slog.Int(key, value) }

func Int64(key string, value int64) slog.Attr { return slog.Int64(key, value) }

func Bool(key string, value bool) slog.Attr { return slog.Bool(key, value) }

func Any(key string, value any) slog.Attr { return slog.Any(key, value) }

func Time(key string, value time.Time) slog.Attr { return slog.Time(key, value) }

func Duration(key string, value time.Duration) slog.Attr { return slog.Duration(key, value) }

func Error(err error) slog.Attr { return slog.Any("error", err) }

func MatchID(key string, id sharedtypes.MatchID) slog.Attr {
	return slog.Int64(key, int64(id))
}

func TeamID(key string, id sharedtypes.TeamID) slog.Attr {
	return slog.Int64(key, int64(id))
}

type correlationIDKey struct{}

// WithCorrelationID stores the message correlation ID in the context for
// later extraction by log statements.
func WithCorrelationID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, correlationIDKey{}, id)
}

// CorrelationIDFromContext returns the stored correlation ID, or "".
func CorrelationIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(correlationIDKey{}).(string)
	return id
}

// ExtractCorrelationID returns a correlation_id attr from the context.
func ExtractCorrelationID(ctx context.Context) slog.Attr {
	return slog.String("correlation_id", CorrelationIDFromContext(ctx))
}
