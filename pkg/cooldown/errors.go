package cooldown

import "errors"

var (
	// ErrClosed is returned when an operation is attempted on a closed store.
	ErrClosed = errors.New("cooldown: store closed")
)
