// Package config turns a partial configuration file into a complete,
// validated view of the bot's settings.
//
// A user file only states what differs from the defaults. The tree it
// decodes into is merged onto [Defaults], so every recognized key is
// present afterwards, and unknown extension keys the user added survive
// untouched and stay reachable through [Config.Get].
//
// # Loading
//
// The usual entry point reads a file, overlays the environment and
// validates in one call:
//
//	cfg, err := config.Load("config.yml")
//	if err != nil {
//		log.Fatal(err)
//	}
//
// YAML and TOML are supported, chosen by file extension. A missing token is
// the one fatal condition: [New] returns a [*SchemaError] and the bot must
// not start. DISCORD_TOKEN and SENTRY_DSN from the environment win over
// file values.
//
// # Optional keys
//
// token, description, version, color, application_id, the help block and
// the log channel/file/sentry keys have no default: when unset they are
// absent, not zero. Accessors for them return a presence flag:
//
//	if version, ok := cfg.Version(); ok {
//		embed.Footer = &discordgo.MessageEmbedFooter{Text: "ver. " + version}
//	}
//
// Setting a key to null in the file removes the override, which for these
// keys means absent and for all others means the default shows through.
//
// # Help block
//
// The built-in help command runs by default under the name "help". The
// block tunes or disables it:
//
//	help:
//	  command: aide
//	  aliases: [h]
//
// A bare "help: false" disables the command entirely.
//
// # Hot reload
//
// [Store] holds the active config behind an atomic pointer. When hot_reload
// is enabled the watcher rebuilds the config from disk and calls
// [Store.Swap]; readers that grabbed the previous config keep it for the
// duration of their event.
package config
