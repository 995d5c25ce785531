// Package i18n provides the localized message layer for bots: a built-in
// English catalog, total locale resolution, and placeholder rendering.
//
// A Bundle is immutable after construction and safe for concurrent use.
// The built-in English catalog is always loaded, so every lookup lands
// somewhere: no message key ever renders as an error page for the user.
//
// # Basic Usage
//
// Create a bundle, optionally layering locale files over the built-ins:
//
//	bundle, err := i18n.New(
//		i18n.WithDefaultLocale("fr"),
//		i18n.WithLocaleDir(os.DirFS("locale")),
//	)
//
//	msg, err := bundle.T("fr-CA", "command_error.on_cooldown", i18n.M{
//		"cooldown_time": "3.2 seconds",
//	})
//
// # Locale Resolution
//
// Lookups walk a fixed chain until a catalog holds the key: the exact
// requested locale, its base language, the configured default locale (exact
// then base), and finally the built-in English. ResolveLocale exposes the
// first hop of that chain:
//
//	bundle.ResolveLocale("en-GB") // "en" when only en and fr are loaded
//
// # Placeholders
//
// Templates reference values as %{name}. Rendering is a single left-to-right
// pass and substituted text is never rescanned. Values may be strings,
// fmt.Stringer implementations, or Lazy producers evaluated only when the
// template references them:
//
//	i18n.Render("Try %{x}", i18n.M{"x": "foo"}) // "Try foo"
//
// A referenced name with no value leaves the token in place and reports a
// *MissingPlaceholderError next to the degraded string, so callers can log
// the gap and still answer the user.
//
// # Locale Files
//
// A locale directory holds one file per locale, named by locale id:
//
//	locale/en.yml
//	locale/fr.yml
//	locale/en-GB.yml
//
// Each file is a message tree merged onto what the locale already holds;
// for "en" that base is the built-in catalog, so a user file only needs the
// keys it wants to change. Null leaves restore the layer underneath.
//
// # Hot Reload
//
// A Store publishes the active bundle behind an atomic pointer. Build a new
// bundle from the updated files and Swap it in; renders in flight keep the
// bundle they started with.
package i18n
