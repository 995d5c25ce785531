package cooldown

import "time"

// MemoryOption configures the in-process store.
type MemoryOption func(*memoryOptions)

type memoryOptions struct {
	cleanupInterval time.Duration
}

func defaultMemoryOptions() *memoryOptions {
	return &memoryOptions{
		cleanupInterval: time.Minute,
	}
}

// WithCleanupInterval sets how often expired windows are removed by the
// background janitor goroutine. Zero disables the janitor; expired
// windows are then replaced lazily on the next Take.
// Default: 1 minute.
func WithCleanupInterval(d time.Duration) MemoryOption {
	return func(o *memoryOptions) {
		o.cleanupInterval = d
	}
}
