package logger

import (
	"context"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/cordialdev/cordial/pkg/i18n"
)

// consoleHandler renders one line per record from a %{...} template, the
// way the configurable log format describes it. Record attributes follow
// the line as key=value pairs.
type consoleHandler struct {
	mu  *sync.Mutex
	out io.Writer

	name       string
	level      slog.Level
	format     string
	timeFormat string

	prefix string
	attrs  []slog.Attr
}

func newConsoleHandler(out io.Writer, name string, level slog.Level, format, timeFormat string) *consoleHandler {
	return &consoleHandler{
		mu:         &sync.Mutex{},
		out:        out,
		name:       name,
		level:      level,
		format:     format,
		timeFormat: timeFormat,
	}
}

func (h *consoleHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level
}

func (h *consoleHandler) Handle(_ context.Context, rec slog.Record) error {
	when := rec.Time
	if when.IsZero() {
		when = time.Now()
	}

	// A format may use fewer placeholders than supplied; an unknown token
	// stays literal in the line, which makes the typo visible instead of
	// eating the record.
	line, _ := i18n.Render(h.format, i18n.M{
		"time":    when.Format(h.timeFormat),
		"level":   rec.Level.String(),
		"name":    h.name,
		"message": rec.Message,
	})

	var b strings.Builder
	b.WriteString(line)
	// Stored attrs were qualified when added; only record attrs take the
	// open group prefix.
	for _, attr := range h.attrs {
		writeAttr(&b, "", attr)
	}
	rec.Attrs(func(attr slog.Attr) bool {
		writeAttr(&b, h.prefix, attr)
		return true
	})
	b.WriteByte('\n')

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := io.WriteString(h.out, b.String())
	return err
}

func (h *consoleHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	if len(attrs) == 0 {
		return h
	}
	h2 := *h
	h2.attrs = make([]slog.Attr, 0, len(h.attrs)+len(attrs))
	h2.attrs = append(h2.attrs, h.attrs...)
	for _, attr := range attrs {
		if h.prefix != "" && attr.Key != "" {
			attr.Key = h.prefix + "." + attr.Key
		}
		h2.attrs = append(h2.attrs, attr)
	}
	return &h2
}

func (h *consoleHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	h2 := *h
	if h.prefix != "" {
		h2.prefix = h.prefix + "." + name
	} else {
		h2.prefix = name
	}
	return &h2
}

func writeAttr(b *strings.Builder, prefix string, attr slog.Attr) {
	attr.Value = attr.Value.Resolve()
	if attr.Equal(slog.Attr{}) {
		return
	}

	key := attr.Key
	if prefix != "" && key != "" {
		key = prefix + "." + key
	}

	if attr.Value.Kind() == slog.KindGroup {
		groupPrefix := key
		if attr.Key == "" {
			// Inline group: members keep the surrounding prefix.
			groupPrefix = prefix
		}
		for _, nested := range attr.Value.Group() {
			writeAttr(b, groupPrefix, nested)
		}
		return
	}

	if attr.Key == "" {
		return
	}

	val := attr.Value.String()
	if strings.ContainsAny(val, " \t\"=") {
		val = strconv.Quote(val)
	}

	b.WriteByte(' ')
	b.WriteString(key)
	b.WriteByte('=')
	b.WriteString(val)
}
