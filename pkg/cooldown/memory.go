package cooldown

import (
	"context"
	"sync"
	"time"
)

// Memory is an in-process cooldown store. Windows live in a map guarded
// by a mutex; a background janitor drops expired windows so idle
// buckets do not accumulate.
type Memory struct {
	mu      sync.Mutex
	windows map[string]*window
	done    chan struct{}
	closed  bool
}

type window struct {
	resetAt time.Time
	used    int
}

// NewMemory creates an in-process store. Call Close when done to stop
// the janitor goroutine.
func NewMemory(opts ...MemoryOption) *Memory {
	o := defaultMemoryOptions()
	for _, opt := range opts {
		opt(o)
	}

	m := &Memory{
		windows: make(map[string]*window),
	}

	if o.cleanupInterval > 0 {
		m.done = make(chan struct{})
		go m.janitor(o.cleanupInterval)
	}

	return m
}

// Take consumes one use from the bucket, starting a fresh window if the
// previous one has ended.
func (m *Memory) Take(_ context.Context, key string, rate int, per time.Duration) (Result, error) {
	if rate <= 0 || per <= 0 {
		return Result{Allowed: true}, nil
	}

	now := time.Now()

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return Result{}, ErrClosed
	}

	w, ok := m.windows[key]
	if !ok || !now.Before(w.resetAt) {
		resetAt := now.Add(per)
		m.windows[key] = &window{resetAt: resetAt, used: 1}
		return Result{Allowed: true, Remaining: rate - 1, ResetAt: resetAt}, nil
	}

	if w.used < rate {
		w.used++
		return Result{Allowed: true, Remaining: rate - w.used, ResetAt: w.resetAt}, nil
	}

	return Result{RetryAfter: w.resetAt.Sub(now), ResetAt: w.resetAt}, nil
}

// Reset clears the bucket for key.
func (m *Memory) Reset(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return ErrClosed
	}

	delete(m.windows, key)
	return nil
}

// Close stops the janitor and releases the window map. Close is
// idempotent.
func (m *Memory) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return nil
	}
	m.closed = true

	if m.done != nil {
		close(m.done)
	}
	m.windows = nil
	return nil
}

func (m *Memory) janitor(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			m.removeExpired()
		case <-m.done:
			return
		}
	}
}

func (m *Memory) removeExpired() {
	now := time.Now()

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return
	}

	for key, w := range m.windows {
		if !now.Before(w.resetAt) {
			delete(m.windows, key)
		}
	}
}

var _ Store = (*Memory)(nil)
