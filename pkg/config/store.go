package config

import "sync/atomic"

// Store publishes the active Config. Hot reload swaps in a freshly built
// Config in one step; a handler that read the store before the swap keeps
// the old view for its whole run.
type Store struct {
	current atomic.Pointer[Config]
}

// NewStore creates a Store publishing the given config.
func NewStore(c *Config) *Store {
	s := &Store{}
	s.current.Store(c)
	return s
}

// Current returns the active config.
func (s *Store) Current() *Config {
	return s.current.Load()
}

// Swap atomically replaces the active config and returns the previous one.
func (s *Store) Swap(c *Config) *Config {
	return s.current.Swap(c)
}
