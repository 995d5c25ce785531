package logger

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

const (
	defaultName       = "cordial"
	defaultFormat     = "[%{time}] [%{level}] %{name}: %{message}"
	defaultTimeFormat = "2006-01-02 15:04:05"
)

// Config holds the logging settings, usually copied from the log section of
// the bot configuration. Zero values fall back to the defaults above.
type Config struct {
	// Name fills the %{name} placeholder of the line format.
	Name string

	// Level is the minimum level: debug, info, warn or error.
	Level string

	// Format is the line template rendered per record with the %{time},
	// %{level}, %{name} and %{message} placeholders.
	Format string

	// TimeFormat is the Go layout for %{time}.
	TimeFormat string

	// File appends every line to the given path when set.
	File string

	// SentryDSN enables the Sentry sink when set. SentryEnvironment tags
	// the events; it defaults to "production".
	SentryDSN         string
	SentryEnvironment string
}

// New builds the bot logger: a line-formatted console sink, plus a file
// sink and a Sentry sink when configured. The returned close function
// flushes Sentry and closes the file; it is safe to call in every case.
//
// A Sentry DSN that fails to initialize degrades to a logged warning
// rather than an error, so a broken reporting backend never keeps the bot
// from starting. Only an unwritable log file fails construction.
func New(cfg Config, extractors ...ContextExtractor) (*slog.Logger, func(context.Context) error, error) {
	if cfg.Name == "" {
		cfg.Name = defaultName
	}
	if cfg.Format == "" {
		cfg.Format = defaultFormat
	}
	if cfg.TimeFormat == "" {
		cfg.TimeFormat = defaultTimeFormat
	}
	level := ParseLevel(cfg.Level)

	console := newConsoleHandler(os.Stdout, cfg.Name, level, cfg.Format, cfg.TimeFormat)
	handlers := []slog.Handler{console}
	closers := make([]func(context.Context) error, 0, 2)

	if cfg.File != "" {
		file, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("logger: opening log file: %w", err)
		}
		handlers = append(handlers, newConsoleHandler(file, cfg.Name, level, cfg.Format, cfg.TimeFormat))
		closers = append(closers, func(context.Context) error { return file.Close() })
	}

	if cfg.SentryDSN != "" {
		sentryHandler, flush, err := newSentryHandler(cfg.SentryDSN, cfg.SentryEnvironment, level)
		if err != nil {
			slog.New(console).Warn("sentry disabled", slog.String("error", err.Error()))
		} else {
			handlers = append(handlers, sentryHandler)
			closers = append(closers, flush)
		}
	}

	var handler slog.Handler = console
	if len(handlers) > 1 {
		handler = newFanoutHandler(handlers...)
	}

	closeAll := func(ctx context.Context) error {
		var errs []error
		for _, closeFn := range closers {
			if err := closeFn(ctx); err != nil {
				errs = append(errs, err)
			}
		}
		if len(errs) > 0 {
			return fmt.Errorf("logger: closing sinks: %w", errors.Join(errs...))
		}
		return nil
	}

	return slog.New(Decorate(handler, extractors...)), closeAll, nil
}

// NewWriter builds a logger with the console sink pointed at w. Handy for
// tests asserting on rendered lines.
func NewWriter(w io.Writer, cfg Config, extractors ...ContextExtractor) *slog.Logger {
	if cfg.Name == "" {
		cfg.Name = defaultName
	}
	if cfg.Format == "" {
		cfg.Format = defaultFormat
	}
	if cfg.TimeFormat == "" {
		cfg.TimeFormat = defaultTimeFormat
	}
	handler := newConsoleHandler(w, cfg.Name, ParseLevel(cfg.Level), cfg.Format, cfg.TimeFormat)
	return slog.New(Decorate(handler, extractors...))
}

// NewNope creates a logger that discards everything. The default wherever
// logging was not configured.
func NewNope() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// ParseLevel maps a level name to its slog.Level. Unknown names, including
// the empty string, mean info.
func ParseLevel(name string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

