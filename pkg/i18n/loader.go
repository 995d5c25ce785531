package i18n

import (
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/cordialdev/cordial/pkg/tree"
)

// WithLocaleDir loads every locale file at the root of fsys. The file base
// name is the locale id: en.yml, fr.yml, en-GB.yaml. Files are applied in
// name order through WithLocaleTree, so later files layer over earlier ones
// for the same locale.
func WithLocaleDir(fsys fs.FS) Option {
	return func(b *Bundle) error {
		trees, err := LoadDir(fsys)
		if err != nil {
			return err
		}

		locales := make([]string, 0, len(trees))
		for locale := range trees {
			locales = append(locales, locale)
		}
		sort.Strings(locales)

		for _, locale := range locales {
			if err := WithLocaleTree(locale, trees[locale])(b); err != nil {
				return err
			}
		}
		return nil
	}
}

// LoadDir reads the locale files at the root of fsys into per-locale trees.
// Only .yml and .yaml entries are considered; subdirectories are ignored.
// A python-i18n style wrapper (a single top-level "en" key inside en.yml)
// is unwrapped.
func LoadDir(fsys fs.FS) (map[string]tree.Tree, error) {
	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return nil, fmt.Errorf("i18n: reading locale dir: %w", err)
	}

	trees := make(map[string]tree.Tree)
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		name := entry.Name()
		ext := strings.ToLower(path.Ext(name))
		if ext != ".yml" && ext != ".yaml" {
			continue
		}

		locale := strings.TrimSuffix(name, path.Ext(name))
		if locale == "" {
			return nil, fmt.Errorf("%w: %q has no locale name", ErrInvalidFile, name)
		}

		data, err := fs.ReadFile(fsys, name)
		if err != nil {
			return nil, fmt.Errorf("i18n: reading %q: %w", name, err)
		}

		var raw map[string]any
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("%w: parsing %q: %s", ErrInvalidFile, name, err)
		}

		t, err := tree.Normalize(raw)
		if err != nil {
			return nil, fmt.Errorf("%w: %q: %s", ErrInvalidFile, name, err)
		}

		trees[locale] = unwrapLocale(locale, t)
	}

	return trees, nil
}

// unwrapLocale strips a single top-level key matching the locale id, the
// layout python-i18n writes.
func unwrapLocale(locale string, t tree.Tree) tree.Tree {
	if len(t) != 1 {
		return t
	}
	inner, ok := t[locale]
	if !ok {
		return t
	}
	if innerTree, ok := inner.(tree.Tree); ok {
		return innerTree
	}
	return t
}
