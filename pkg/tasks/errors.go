package tasks

import "errors"

// Runner errors.
var (
	// ErrInvalidTask is returned when a task is registered without a
	// name or handler, or with a nonpositive interval.
	ErrInvalidTask = errors.New("tasks: invalid task")

	// ErrInvalidSchedule is returned when a cron expression cannot be
	// parsed.
	ErrInvalidSchedule = errors.New("tasks: invalid schedule")

	// ErrAlreadyStarted is returned when attempting to start a runner
	// that is already running.
	ErrAlreadyStarted = errors.New("tasks: already started")

	// ErrNotStarted is returned when attempting to stop a runner that
	// is not running.
	ErrNotStarted = errors.New("tasks: not started")
)
