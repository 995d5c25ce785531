package config

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidFile   = errors.New("config: invalid file")
	ErrUnknownFormat = errors.New("config: unknown file format")
)

// SchemaError reports a merged configuration tree that cannot produce a
// runnable bot. It is fatal: construction fails and the process must not
// start.
type SchemaError struct {
	Path   string
	Reason string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("config: %s: %s", e.Path, e.Reason)
}
