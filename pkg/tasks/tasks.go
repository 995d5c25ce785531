package tasks

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/robfig/cron/v3"
)

// Runner executes registered background tasks: interval loops and cron
// schedules. Tasks start together, stop together, and survive their own
// panics and errors.
type Runner struct {
	cron      *cron.Cron
	intervals []intervalTask
	logger    *slog.Logger
	taskCount int

	runCtx atomic.Value // context.Context

	mu      sync.Mutex
	started bool
	cancel  context.CancelFunc
	wg      sync.WaitGroup
}

// NewRunner creates a runner with the given options. Cron expressions
// are validated here, so a bad schedule fails at construction rather
// than at start.
func NewRunner(opts ...Option) (*Runner, error) {
	cfg := newConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	if cfg.logger == nil {
		cfg.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	r := &Runner{
		intervals: cfg.intervals,
		logger:    cfg.logger,
	}
	r.cron = cron.New(cron.WithLogger(cronLogger{logger: cfg.logger}))

	for _, it := range cfg.intervals {
		if it.name == "" || it.handler == nil || it.every <= 0 {
			return nil, fmt.Errorf("%w: interval task %q", ErrInvalidTask, it.name)
		}
	}

	for _, ct := range cfg.crons {
		if ct.name == "" || ct.handler == nil {
			return nil, fmt.Errorf("%w: cron task %q", ErrInvalidTask, ct.name)
		}
		name, fn := ct.name, ct.handler
		if _, err := r.cron.AddFunc(ct.spec, func() {
			r.runTask(r.taskContext(), name, fn)
		}); err != nil {
			return nil, fmt.Errorf("%w: cron task %q: %v", ErrInvalidSchedule, ct.name, err)
		}
	}

	r.taskCount = len(cfg.intervals) + len(cfg.crons)

	return r, nil
}

// Start begins running tasks. Interval tasks run their first iteration
// immediately. The runner inherits values from ctx but not its
// cancellation; call Stop to shut down.
func (r *Runner) Start(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.started {
		return ErrAlreadyStarted
	}

	runCtx, cancel := context.WithCancel(context.WithoutCancel(ctx))
	r.runCtx.Store(runCtx)
	r.cancel = cancel

	for _, it := range r.intervals {
		r.wg.Add(1)
		go r.runLoop(runCtx, it)
	}
	r.cron.Start()

	r.started = true
	r.logger.Info("task runner started",
		slog.Int("tasks", r.taskCount),
	)

	return nil
}

// Stop shuts the runner down and waits for in-flight iterations to
// finish, up to the context deadline.
func (r *Runner) Stop(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.started {
		return ErrNotStarted
	}

	r.cancel()
	cronDone := r.cron.Stop().Done()

	loopsDone := make(chan struct{})
	go func() {
		r.wg.Wait()
		close(loopsDone)
	}()

	r.started = false

	select {
	case <-ctx.Done():
		return fmt.Errorf("tasks: stopping: %w", ctx.Err())
	case <-loopsDone:
	}

	select {
	case <-ctx.Done():
		return fmt.Errorf("tasks: stopping: %w", ctx.Err())
	case <-cronDone:
	}

	r.logger.Info("task runner stopped")
	return nil
}

// StartFunc returns a startup function for the runner.
func (r *Runner) StartFunc() func(context.Context) error {
	return func(ctx context.Context) error {
		return r.Start(ctx)
	}
}

// Shutdown returns a shutdown function for the runner.
func (r *Runner) Shutdown() func(context.Context) error {
	return func(ctx context.Context) error {
		return r.Stop(ctx)
	}
}

func (r *Runner) runLoop(ctx context.Context, it intervalTask) {
	defer r.wg.Done()

	r.runTask(ctx, it.name, it.handler)

	ticker := time.NewTicker(it.every)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			r.runTask(ctx, it.name, it.handler)
		}
	}
}

// runTask executes one iteration. Panics and errors are logged so a
// failing iteration never takes the loop down.
func (r *Runner) runTask(ctx context.Context, name string, fn Handler) {
	defer func() {
		if rec := recover(); rec != nil {
			r.logger.Error("task panicked",
				slog.String("task", name),
				slog.Any("panic", rec),
			)
		}
	}()

	if ctx.Err() != nil {
		return
	}

	if err := fn(ctx); err != nil {
		r.logger.ErrorContext(ctx, "task failed",
			slog.String("task", name),
			slog.Any("error", err),
		)
	}
}

// taskContext returns the context of the current run. Cron fires on its
// own goroutine, so the context is read atomically rather than under
// the runner mutex.
func (r *Runner) taskContext() context.Context {
	if v := r.runCtx.Load(); v != nil {
		return v.(context.Context)
	}
	return context.Background()
}

// cronLogger adapts slog to the cron logging interface.
type cronLogger struct {
	logger *slog.Logger
}

func (c cronLogger) Info(msg string, keysAndValues ...any) {
	c.logger.Debug(msg, keysAndValues...)
}

func (c cronLogger) Error(err error, msg string, keysAndValues ...any) {
	c.logger.Error(msg, append(keysAndValues, slog.Any("error", err))...)
}
