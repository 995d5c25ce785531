package internal

import (
	"context"
	"log/slog"

	"github.com/cordialdev/cordial/pkg/logger"
)

type commandKey struct{}
type userKey struct{}
type guildKey struct{}
type incidentKey struct{}

// WithCommand returns a context carrying the qualified command name.
func WithCommand(ctx context.Context, name string) context.Context {
	return context.WithValue(ctx, commandKey{}, name)
}

// WithUser returns a context carrying the invoking user's id.
func WithUser(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, userKey{}, id)
}

// WithGuild returns a context carrying the guild id of the event.
func WithGuild(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, guildKey{}, id)
}

// WithIncident returns a context carrying a diagnostic incident id.
func WithIncident(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, incidentKey{}, id)
}

// Extractors returns the log extractors for event-scoped values. Wired
// into the bot logger so every record emitted while handling an event
// names the command, user and guild without the call site repeating them.
func Extractors() []logger.ContextExtractor {
	return []logger.ContextExtractor{
		extractString(commandKey{}, "command"),
		extractString(userKey{}, "user"),
		extractString(guildKey{}, "guild"),
		extractString(incidentKey{}, "incident"),
	}
}

func extractString(key any, name string) logger.ContextExtractor {
	return func(ctx context.Context) (slog.Attr, bool) {
		v, ok := ctx.Value(key).(string)
		if !ok || v == "" {
			return slog.Attr{}, false
		}
		return slog.String(name, v), true
	}
}
