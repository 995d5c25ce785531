package tasks

import (
	"context"
	"log/slog"
	"time"
)

// Handler is one iteration of a background task. A returned error is
// logged; the task keeps running.
type Handler func(context.Context) error

// config holds runner configuration.
type config struct {
	logger    *slog.Logger
	intervals []intervalTask
	crons     []cronTask
}

type intervalTask struct {
	handler Handler
	name    string
	every   time.Duration
}

type cronTask struct {
	handler Handler
	name    string
	spec    string
}

func newConfig() *config {
	return &config{}
}

// Option configures the task runner.
type Option func(*config)

// WithInterval registers a task that runs once at start and then every
// interval until the runner stops.
//
// Example:
//
//	tasks.WithInterval("presence", 5*time.Minute, func(ctx context.Context) error {
//	    return session.UpdateWatchStatus(0, "the gates")
//	})
func WithInterval(name string, every time.Duration, fn Handler) Option {
	return func(c *config) {
		c.intervals = append(c.intervals, intervalTask{
			name:    name,
			every:   every,
			handler: fn,
		})
	}
}

// WithCron registers a task on a cron expression
// (5 fields: min hour day month weekday).
//
// Example:
//
//	tasks.WithCron("daily_digest", "0 9 * * *", func(ctx context.Context) error {
//	    return digest.Send(ctx)
//	})
func WithCron(name, spec string, fn Handler) Option {
	return func(c *config) {
		c.crons = append(c.crons, cronTask{
			name:    name,
			spec:    spec,
			handler: fn,
		})
	}
}

// WithLogger sets the logger for task execution.
// If not set, a noop logger is used.
func WithLogger(l *slog.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}
