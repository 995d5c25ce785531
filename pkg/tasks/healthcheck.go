package tasks

import (
	"context"
	"errors"
)

// ErrHealthcheckFailed is returned when the task runner health check fails.
var ErrHealthcheckFailed = errors.New("tasks: healthcheck failed")

var (
	errRunnerNil        = errors.New("runner is nil")
	errRunnerNotStarted = errors.New("runner not started")
)

// Healthcheck returns a readiness probe for the task runner, in the
// shape pkg/health expects:
//
//	health.Checks{"tasks": tasks.Healthcheck(runner)}
func Healthcheck(r *Runner) func(ctx context.Context) error {
	return func(ctx context.Context) error {
		if r == nil {
			return errors.Join(ErrHealthcheckFailed, errRunnerNil)
		}

		r.mu.Lock()
		started := r.started
		r.mu.Unlock()

		if !started {
			return errors.Join(ErrHealthcheckFailed, errRunnerNotStarted)
		}

		return nil
	}
}
