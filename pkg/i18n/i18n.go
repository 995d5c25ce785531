package i18n

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"golang.org/x/text/language"

	"github.com/cordialdev/cordial/pkg/tree"
)

// Bundle holds the message catalogs for every configured locale.
// It is immutable after creation, making it safe for concurrent use;
// hot reload replaces the whole bundle through a Store.
type Bundle struct {
	// Flattened messages for O(1) lookups. Key format: "locale:key.path"
	messages map[string]string

	// Locale ids with at least one message, sorted.
	locales []string

	// Base language -> locale ids sharing that base, each slice sorted.
	byBase map[string][]string

	// Configured fallback locale consulted before the built-in English.
	fallback string

	// Optional handler called when a key is not found in any locale.
	missingKeyHandler func(locale, key string)

	// Per-locale trees, only populated while New runs.
	trees map[string]tree.Tree
}

// Option configures a Bundle during construction.
type Option func(*Bundle) error

// New creates a Bundle with the given options. The built-in English catalog
// is always loaded first, so every lookup has a floor to land on. Locale
// trees provided through options are layered on top of whatever the same
// locale already holds.
func New(opts ...Option) (*Bundle, error) {
	b := &Bundle{
		fallback: DefaultLocale,
		trees:    map[string]tree.Tree{DefaultLocale: Default()},
	}

	for _, opt := range opts {
		if err := opt(b); err != nil {
			return nil, fmt.Errorf("failed to apply option: %w", err)
		}
	}

	b.messages = make(map[string]string)
	b.locales = make([]string, 0, len(b.trees))
	b.byBase = make(map[string][]string)

	for locale, t := range b.trees {
		for key, value := range t.Flatten() {
			b.messages[buildKey(locale, key)] = stringify(value)
		}
		b.locales = append(b.locales, locale)
	}
	sort.Strings(b.locales)

	for _, locale := range b.locales {
		base := baseLanguage(locale)
		b.byBase[base] = append(b.byBase[base], locale)
	}

	b.trees = nil

	return b, nil
}

// WithDefaultLocale sets the configured fallback locale. Lookups that miss
// the requested locale land here before the built-in English.
func WithDefaultLocale(locale string) Option {
	return func(b *Bundle) error {
		if locale == "" {
			return ErrEmptyLocale
		}
		b.fallback = locale
		return nil
	}
}

// WithLocaleTree layers a message tree onto the given locale. Repeated calls
// for the same locale merge cumulatively, later trees winning at the leaves;
// the built-in English is the base layer for "en". Null leaves drop out so
// the layer underneath shows through.
func WithLocaleTree(locale string, t tree.Tree) Option {
	return func(b *Bundle) error {
		if locale == "" {
			return ErrEmptyLocale
		}
		b.trees[locale] = tree.Merge(b.trees[locale], t)
		return nil
	}
}

// WithMissingKeyHandler sets a handler called when a key is not found in any
// locale, including the built-in catalog. Useful for spotting typos in
// message keys during development.
func WithMissingKeyHandler(handler func(locale, key string)) Option {
	return func(b *Bundle) error {
		b.missingKeyHandler = handler
		return nil
	}
}

// ResolveLocale picks the locale a message for the requested id would come
// from. The chain is: exact match, base language of the request, the
// configured fallback locale (again exact then base), finally the built-in
// English. It never fails: some locale in the chain always exists.
func (b *Bundle) ResolveLocale(requested string) string {
	return b.chain(requested)[0]
}

// Message returns the raw template stored for an exact locale and key.
func (b *Bundle) Message(locale, key string) (string, bool) {
	msg, ok := b.messages[buildKey(locale, key)]
	return msg, ok
}

// T resolves the locale, looks up the key, and renders the template with the
// given placeholder values. A key found nowhere in the chain triggers the
// missing key handler and echoes the key back. A template referencing
// placeholders absent from ctx still returns the best effort rendering,
// alongside a *MissingPlaceholderError.
func (b *Bundle) T(locale, key string, ctx M) (string, error) {
	for _, candidate := range b.chain(locale) {
		template, ok := b.messages[buildKey(candidate, key)]
		if !ok {
			continue
		}

		rendered, err := Render(template, ctx)
		if err != nil {
			var miss *MissingPlaceholderError
			if errors.As(err, &miss) {
				miss.Key = key
			}
		}
		return rendered, err
	}

	if b.missingKeyHandler != nil {
		b.missingKeyHandler(locale, key)
	}
	return key, nil
}

// Locales returns the locale ids with at least one message, sorted.
func (b *Bundle) Locales() []string {
	out := make([]string, len(b.locales))
	copy(out, b.locales)
	return out
}

// Fallback returns the configured fallback locale.
func (b *Bundle) Fallback() string {
	return b.fallback
}

// chain returns the locale ids to consult for a request, in order, skipping
// ids with no messages and deduplicating. The built-in English is always
// loaded, so the chain is never empty.
func (b *Bundle) chain(requested string) []string {
	candidates := make([]string, 0, 4)

	appendLocale := func(locale string) {
		if locale == "" || !b.has(locale) {
			return
		}
		for _, existing := range candidates {
			if existing == locale {
				return
			}
		}
		candidates = append(candidates, locale)
	}

	appendWithBase := func(locale string) {
		if locale == "" {
			return
		}
		appendLocale(locale)
		base := baseLanguage(locale)
		appendLocale(base)
		if siblings := b.byBase[base]; len(siblings) > 0 {
			appendLocale(siblings[0])
		}
	}

	appendWithBase(requested)
	appendWithBase(b.fallback)
	appendLocale(DefaultLocale)

	return candidates
}

func (b *Bundle) has(locale string) bool {
	i := sort.SearchStrings(b.locales, locale)
	return i < len(b.locales) && b.locales[i] == locale
}

func buildKey(locale, key string) string {
	return locale + ":" + key
}

// baseLanguage reduces a locale id to its base language ("en-GB" -> "en").
// Unparseable ids fall back to cutting at the first separator.
func baseLanguage(locale string) string {
	tag, err := language.Parse(locale)
	if err == nil {
		base, conf := tag.Base()
		if conf > language.No {
			return base.String()
		}
	}

	if i := strings.IndexAny(locale, "-_"); i > 0 {
		return strings.ToLower(locale[:i])
	}
	return strings.ToLower(locale)
}
