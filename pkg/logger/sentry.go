package logger

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/getsentry/sentry-go"
	sentryslog "github.com/getsentry/sentry-go/slog"
)

// newSentryHandler initializes the Sentry SDK and returns a handler that
// turns error records into Sentry issues, plus a flush function for
// shutdown. Warnings are forwarded as searchable logs unless the bot level
// is error.
func newSentryHandler(dsn, environment string, level slog.Level) (slog.Handler, func(context.Context) error, error) {
	if environment == "" {
		environment = "production"
	}

	if err := sentry.Init(sentry.ClientOptions{
		Dsn:         dsn,
		Environment: environment,
		EnableLogs:  true,
	}); err != nil {
		return nil, nil, fmt.Errorf("logger: initializing sentry: %w", err)
	}

	logLevels := []slog.Level{slog.LevelWarn, slog.LevelError}
	if level >= slog.LevelError {
		logLevels = []slog.Level{slog.LevelError}
	}

	handler := sentryslog.Option{
		EventLevel: []slog.Level{slog.LevelError},
		LogLevel:   logLevels,
	}.NewSentryHandler(context.Background())

	flush := func(ctx context.Context) error {
		timeout := 2 * time.Second
		if deadline, ok := ctx.Deadline(); ok {
			if remaining := time.Until(deadline); remaining < timeout {
				timeout = remaining
			}
		}
		sentry.Flush(timeout)
		return nil
	}

	return handler, flush, nil
}
