package i18n

import (
	"fmt"
	"strings"
)

// M carries placeholder values for rendering. Values may be strings,
// fmt.Stringer implementations, Lazy producers, or anything printable
// with %v.
type M map[string]any

// Lazy defers a placeholder value until the template actually references
// it. Producers that are never referenced are never called.
type Lazy func() string

// Render substitutes %{name} tokens in template with values from ctx.
//
// The template is scanned once, left to right; substituted text is never
// rescanned, so values containing %{...} pass through literally. A token
// name consists of letters, digits, and underscores. Text that looks like
// a token but has no valid name is copied through unchanged.
//
// Tokens with no value in ctx are left in place and reported through a
// *MissingPlaceholderError. The first return value is always the best
// effort rendering, with or without an error.
func Render(template string, ctx M) (string, error) {
	rendered, missing := render(template, ctx)
	if len(missing) > 0 {
		return rendered, &MissingPlaceholderError{Names: missing}
	}
	return rendered, nil
}

func render(template string, ctx M) (string, []string) {
	start := strings.Index(template, "%{")
	if start < 0 {
		return template, nil
	}

	var b strings.Builder
	b.Grow(len(template))

	var missing []string
	seen := make(map[string]bool)
	rest := template

	for {
		i := strings.Index(rest, "%{")
		if i < 0 {
			b.WriteString(rest)
			break
		}

		b.WriteString(rest[:i])
		rest = rest[i:]

		name, token, ok := scanToken(rest)
		if !ok {
			b.WriteString("%{")
			rest = rest[2:]
			continue
		}

		if value, exists := ctx[name]; exists {
			b.WriteString(stringify(value))
		} else {
			b.WriteString(token)
			if !seen[name] {
				seen[name] = true
				missing = append(missing, name)
			}
		}
		rest = rest[len(token):]
	}

	return b.String(), missing
}

// scanToken reads a %{name} token at the start of s. Reports the name, the
// full token text, and whether a well-formed token was found.
func scanToken(s string) (name, token string, ok bool) {
	end := -1
	for i := 2; i < len(s); i++ {
		c := s[i]
		if c == '}' {
			end = i
			break
		}
		if !isIdentChar(c) {
			return "", "", false
		}
	}
	if end <= 2 {
		return "", "", false
	}
	return s[2:end], s[:end+1], true
}

func isIdentChar(c byte) bool {
	return c == '_' ||
		(c >= 'a' && c <= 'z') ||
		(c >= 'A' && c <= 'Z') ||
		(c >= '0' && c <= '9')
}

func stringify(v any) string {
	switch val := v.(type) {
	case string:
		return val
	case Lazy:
		return val()
	case func() string:
		return val()
	case fmt.Stringer:
		return val.String()
	case error:
		return val.Error()
	default:
		return fmt.Sprintf("%v", val)
	}
}

// placeholderNames returns the names of all well-formed %{name} tokens in
// template, deduplicated, in order of appearance.
func placeholderNames(template string) []string {
	var names []string
	seen := make(map[string]bool)
	rest := template

	for {
		i := strings.Index(rest, "%{")
		if i < 0 {
			return names
		}
		rest = rest[i:]

		name, token, ok := scanToken(rest)
		if !ok {
			rest = rest[2:]
			continue
		}
		if !seen[name] {
			seen[name] = true
			names = append(names, name)
		}
		rest = rest[len(token):]
	}
}
