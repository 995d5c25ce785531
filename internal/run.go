package internal

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"
)

// defaultShutdownTimeout bounds graceful shutdown after the stop signal.
const defaultShutdownTimeout = 15 * time.Second

// Run opens the gateway and blocks until ctx is cancelled or the process
// receives SIGINT or SIGTERM, then shuts everything down gracefully. A nil
// ctx is treated as context.Background().
func (b *Bot) Run(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := b.Start(ctx); err != nil {
		return err
	}

	<-ctx.Done()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), defaultShutdownTimeout)
	defer shutdownCancel()
	return b.Stop(shutdownCtx)
}

// Start opens the gateway connection and brings up the background tasks
// and the probe server. It does not block; pair with Stop.
func (b *Bot) Start(ctx context.Context) error {
	if err := b.session.Open(); err != nil {
		return fmt.Errorf("opening gateway: %w", err)
	}

	if b.tasks != nil {
		if err := b.tasks.Start(ctx); err != nil {
			_ = b.session.Close()
			return err
		}
	}

	if b.health != nil {
		if err := b.health.Start(ctx); err != nil {
			if b.tasks != nil {
				_ = b.tasks.Stop(ctx)
			}
			_ = b.session.Close()
			return err
		}
	}

	return nil
}

// Stop shuts the bot down in reverse start order: probe server, tasks,
// gateway, cooldown store, registered shutdown hooks, log sinks. Every
// step runs; failures are collected and joined.
func (b *Bot) Stop(ctx context.Context) error {
	b.logger.Info("shutting down")

	var errs []error

	if b.health != nil {
		if err := b.health.Stop(ctx); err != nil {
			errs = append(errs, err)
		}
	}

	if b.tasks != nil {
		if err := b.tasks.Stop(ctx); err != nil && !errors.Is(err, context.DeadlineExceeded) {
			errs = append(errs, err)
		}
	}

	if err := b.session.Close(); err != nil {
		errs = append(errs, fmt.Errorf("closing gateway: %w", err))
	}

	if err := b.cooldowns.Close(); err != nil {
		errs = append(errs, err)
	}

	for _, hook := range b.shutdownHooks {
		if err := hook(ctx); err != nil {
			errs = append(errs, err)
		}
	}

	for _, err := range errs {
		b.logger.Error("shutdown step failed", slog.Any("error", err))
	}
	b.logger.Info("shutdown completed")

	if b.logClose != nil {
		if err := b.logClose(ctx); err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}
