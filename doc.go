// Package cordial turns a declarative configuration file plus a directory
// of locale files into a fully wired Discord bot on top of discordgo:
// command prefix, help command, logging sinks, and a uniform
// error-to-user-message pipeline.
//
// # Quick start
//
// Create a bot with cordial.New(), configure it with options, and call
// Run() to connect to the gateway:
//
//	bot, err := cordial.New(
//	    cordial.WithConfigFile("config.yml"),
//	    cordial.WithLocaleDir(locales),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if err := bot.Run(context.Background()); err != nil {
//	    log.Fatal(err)
//	}
//
// # Configuration
//
// The configuration file (YAML or TOML) is merged onto a complete set of
// defaults, so a minimal file needs only a token:
//
//	token: "..."
//	prefix: "!"
//	locale: en
//	log:
//	  level: info
//	  channel: 123456789
//
// Every key the file omits takes its default; keys the framework does not
// recognize are preserved and reachable through Config.Get. The token may
// also come from the DISCORD_TOKEN environment variable.
//
// # Localization
//
// Locale files are YAML trees named after their locale id (en.yml,
// fr.yml, en-GB.yml) and are merged onto the built-in English catalog, so
// a partial translation still renders every message. Lookups resolve
// exact locale, then base language, then the configured default, then
// English. Templates substitute %{name} placeholders.
//
// # Error messages
//
// Command faults are described as Conditions and rendered to localized
// user-facing text with Bot.UserMessage. Unclassified faults render the
// generic exception message and are reported out of band: a log record,
// an embed in the configured log channel, and optionally a single-use
// day-limited guild invite as a diagnostic aid.
//
// The engine packages under pkg/ (tree, config, i18n, logger, cooldown,
// tasks, health) are importable on their own.
package cordial
