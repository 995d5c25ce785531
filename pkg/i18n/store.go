package i18n

import "sync/atomic"

// Store publishes the active Bundle. A reader obtains the bundle once and
// renders against it, so swapping in a reloaded bundle never affects a
// render already in flight: it either sees the old catalog throughout or
// the new one throughout.
type Store struct {
	current atomic.Pointer[Bundle]
}

// NewStore creates a Store publishing the given bundle.
func NewStore(b *Bundle) *Store {
	s := &Store{}
	s.current.Store(b)
	return s
}

// Current returns the active bundle.
func (s *Store) Current() *Bundle {
	return s.current.Load()
}

// Swap atomically replaces the active bundle and returns the previous one.
func (s *Store) Swap(b *Bundle) *Bundle {
	return s.current.Swap(b)
}
