package i18n

import (
	"errors"
	"strings"
)

var (
	ErrEmptyLocale    = errors.New("i18n: locale cannot be empty")
	ErrInvalidFile    = errors.New("i18n: invalid locale file")
	ErrInvalidMessage = errors.New("i18n: invalid message template")
)

// MissingPlaceholderError reports placeholder names a template referenced but
// the render context did not supply. The render result is still usable: the
// unfilled tokens are left in place so the gap is visible.
type MissingPlaceholderError struct {
	// Key is the message key being rendered, when known.
	Key string

	// Names lists the unfilled placeholder names in order of appearance.
	Names []string
}

func (e *MissingPlaceholderError) Error() string {
	if e.Key != "" {
		return "i18n: message " + e.Key + ": missing placeholders: " + strings.Join(e.Names, ", ")
	}
	return "i18n: missing placeholders: " + strings.Join(e.Names, ", ")
}
