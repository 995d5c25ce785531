package config

import "github.com/cordialdev/cordial/pkg/tree"

// DefaultPrefix is the command prefix used when the configuration sets none.
const DefaultPrefix = "!"

// DefaultHelpCommand is the name of the built-in help command.
const DefaultHelpCommand = "help"

// Defaults returns the built-in configuration tree. Every call allocates a
// fresh copy, so callers may layer overrides onto it freely.
//
// Keys whose default is "absent" carry no entry here: token, description,
// version, color, application_id, the whole help block, log.channel,
// log.file, log.sentry_dsn and log.sentry_environment. An explicit null for
// any of them therefore resolves to absence rather than to a fallback value.
func Defaults() tree.Tree {
	return tree.Tree{
		"prefix":           DefaultPrefix,
		"case_insensitive": true,
		"hot_reload":       false,
		"locale":           "en",
		"log": tree.Tree{
			"commands":      true,
			"alert_user":    true,
			"create_invite": false,
			"level":         "info",
			"format":        "[%{time}] [%{level}] %{name}: %{message}",
			"time_format":   "2006-01-02 15:04:05",
		},
	}
}
