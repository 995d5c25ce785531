package tasks_test

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/cordialdev/cordial/pkg/tasks"
)

func noop(context.Context) error { return nil }

// --- NewRunner ---

func TestNewRunner(t *testing.T) {
	t.Parallel()

	t.Run("accepts interval and cron tasks", func(t *testing.T) {
		t.Parallel()

		r, err := tasks.NewRunner(
			tasks.WithInterval("presence", time.Minute, noop),
			tasks.WithCron("digest", "0 9 * * *", noop),
		)
		require.NoError(t, err)
		require.NotNil(t, r)
	})

	t.Run("accepts no tasks at all", func(t *testing.T) {
		t.Parallel()

		r, err := tasks.NewRunner()
		require.NoError(t, err)
		require.NotNil(t, r)
	})

	t.Run("rejects invalid cron expressions", func(t *testing.T) {
		t.Parallel()

		exprs := []string{"", "* * *", "* * * * * *", "60 * * * *", "not a cron expression"}
		for _, expr := range exprs {
			_, err := tasks.NewRunner(tasks.WithCron("bad", expr, noop))
			require.ErrorIs(t, err, tasks.ErrInvalidSchedule, "expr %q", expr)
		}
	})

	t.Run("rejects unnamed tasks", func(t *testing.T) {
		t.Parallel()

		_, err := tasks.NewRunner(tasks.WithInterval("", time.Minute, noop))
		require.ErrorIs(t, err, tasks.ErrInvalidTask)

		_, err = tasks.NewRunner(tasks.WithCron("", "* * * * *", noop))
		require.ErrorIs(t, err, tasks.ErrInvalidTask)
	})

	t.Run("rejects nil handlers", func(t *testing.T) {
		t.Parallel()

		_, err := tasks.NewRunner(tasks.WithInterval("presence", time.Minute, nil))
		require.ErrorIs(t, err, tasks.ErrInvalidTask)

		_, err = tasks.NewRunner(tasks.WithCron("digest", "* * * * *", nil))
		require.ErrorIs(t, err, tasks.ErrInvalidTask)
	})

	t.Run("rejects nonpositive intervals", func(t *testing.T) {
		t.Parallel()

		_, err := tasks.NewRunner(tasks.WithInterval("presence", 0, noop))
		require.ErrorIs(t, err, tasks.ErrInvalidTask)

		_, err = tasks.NewRunner(tasks.WithInterval("presence", -time.Second, noop))
		require.ErrorIs(t, err, tasks.ErrInvalidTask)
	})
}

// --- Lifecycle ---

func TestRunnerLifecycle(t *testing.T) {
	t.Parallel()

	t.Run("interval task runs immediately on start", func(t *testing.T) {
		t.Parallel()

		var runs atomic.Int64
		r, err := tasks.NewRunner(tasks.WithInterval("tick", time.Hour, func(context.Context) error {
			runs.Add(1)
			return nil
		}))
		require.NoError(t, err)

		ctx := context.Background()
		require.NoError(t, r.Start(ctx))
		defer r.Stop(ctx)

		require.Eventually(t, func() bool { return runs.Load() >= 1 }, time.Second, 5*time.Millisecond)
	})

	t.Run("interval task keeps ticking", func(t *testing.T) {
		t.Parallel()

		var runs atomic.Int64
		r, err := tasks.NewRunner(tasks.WithInterval("tick", 10*time.Millisecond, func(context.Context) error {
			runs.Add(1)
			return nil
		}))
		require.NoError(t, err)

		ctx := context.Background()
		require.NoError(t, r.Start(ctx))
		defer r.Stop(ctx)

		require.Eventually(t, func() bool { return runs.Load() >= 3 }, time.Second, 5*time.Millisecond)
	})

	t.Run("double start returns ErrAlreadyStarted", func(t *testing.T) {
		t.Parallel()

		r, err := tasks.NewRunner()
		require.NoError(t, err)

		ctx := context.Background()
		require.NoError(t, r.Start(ctx))
		defer r.Stop(ctx)

		require.ErrorIs(t, r.Start(ctx), tasks.ErrAlreadyStarted)
	})

	t.Run("stop without start returns ErrNotStarted", func(t *testing.T) {
		t.Parallel()

		r, err := tasks.NewRunner()
		require.NoError(t, err)

		require.ErrorIs(t, r.Stop(context.Background()), tasks.ErrNotStarted)
	})

	t.Run("stop halts the loop", func(t *testing.T) {
		t.Parallel()

		var runs atomic.Int64
		r, err := tasks.NewRunner(tasks.WithInterval("tick", 10*time.Millisecond, func(context.Context) error {
			runs.Add(1)
			return nil
		}))
		require.NoError(t, err)

		ctx := context.Background()
		require.NoError(t, r.Start(ctx))
		require.Eventually(t, func() bool { return runs.Load() >= 2 }, time.Second, 5*time.Millisecond)

		require.NoError(t, r.Stop(ctx))

		after := runs.Load()
		time.Sleep(50 * time.Millisecond)
		require.Equal(t, after, runs.Load())
	})

	t.Run("runner restarts after stop", func(t *testing.T) {
		t.Parallel()

		var runs atomic.Int64
		r, err := tasks.NewRunner(tasks.WithInterval("tick", 10*time.Millisecond, func(context.Context) error {
			runs.Add(1)
			return nil
		}))
		require.NoError(t, err)

		ctx := context.Background()
		require.NoError(t, r.Start(ctx))
		require.Eventually(t, func() bool { return runs.Load() >= 1 }, time.Second, 5*time.Millisecond)
		require.NoError(t, r.Stop(ctx))

		stopped := runs.Load()
		require.NoError(t, r.Start(ctx))
		defer r.Stop(ctx)

		require.Eventually(t, func() bool { return runs.Load() > stopped }, time.Second, 5*time.Millisecond)
	})

	t.Run("panicking iteration keeps the loop alive", func(t *testing.T) {
		t.Parallel()

		var runs atomic.Int64
		r, err := tasks.NewRunner(tasks.WithInterval("tick", 10*time.Millisecond, func(context.Context) error {
			runs.Add(1)
			panic("boom")
		}))
		require.NoError(t, err)

		ctx := context.Background()
		require.NoError(t, r.Start(ctx))
		defer r.Stop(ctx)

		require.Eventually(t, func() bool { return runs.Load() >= 3 }, time.Second, 5*time.Millisecond)
	})

	t.Run("failing iteration keeps the loop alive", func(t *testing.T) {
		t.Parallel()

		var runs atomic.Int64
		r, err := tasks.NewRunner(tasks.WithInterval("tick", 10*time.Millisecond, func(context.Context) error {
			runs.Add(1)
			return errors.New("transient")
		}))
		require.NoError(t, err)

		ctx := context.Background()
		require.NoError(t, r.Start(ctx))
		defer r.Stop(ctx)

		require.Eventually(t, func() bool { return runs.Load() >= 3 }, time.Second, 5*time.Millisecond)
	})

	t.Run("stop honors its context deadline", func(t *testing.T) {
		t.Parallel()

		started := make(chan struct{}, 1)
		r, err := tasks.NewRunner(tasks.WithInterval("slow", time.Hour, func(context.Context) error {
			started <- struct{}{}
			time.Sleep(300 * time.Millisecond)
			return nil
		}))
		require.NoError(t, err)

		require.NoError(t, r.Start(context.Background()))
		<-started

		stopCtx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
		defer cancel()

		err = r.Stop(stopCtx)
		require.ErrorIs(t, err, context.DeadlineExceeded)
	})

	t.Run("start and shutdown funcs drive the runner", func(t *testing.T) {
		t.Parallel()

		var runs atomic.Int64
		r, err := tasks.NewRunner(tasks.WithInterval("tick", time.Hour, func(context.Context) error {
			runs.Add(1)
			return nil
		}))
		require.NoError(t, err)

		ctx := context.Background()
		require.NoError(t, r.StartFunc()(ctx))
		require.Eventually(t, func() bool { return runs.Load() >= 1 }, time.Second, 5*time.Millisecond)
		require.NoError(t, r.Shutdown()(ctx))
	})
}
