package cordial

import (
	"context"

	"github.com/cordialdev/cordial/internal"
	"github.com/cordialdev/cordial/pkg/logger"
)

// Type aliases - public API
type (
	// Bot is a configured, localized Discord bot built from a
	// configuration file and a directory of locale files.
	Bot = internal.Bot

	// Option configures the bot during New.
	Option = internal.Option

	// Command describes one command for the help pages and usage strings.
	Command = internal.Command

	// Registry holds the command descriptors the bot knows about.
	Registry = internal.Registry

	// Condition is one observed command fault, ready for UserMessage.
	Condition = internal.Condition

	// ConditionKind tags the fault a command run ended with.
	ConditionKind = internal.ConditionKind

	// Trace is a sanitized source location attached to unclassified
	// conditions.
	Trace = internal.Trace

	// Messenger turns conditions into user-facing text.
	Messenger = internal.Messenger

	// Reporter handles the out-of-band side of an unclassified fault.
	Reporter = internal.Reporter

	// ContextExtractor extracts a slog attribute from context.
	// Used with logger.New to add event-scoped values to log lines.
	ContextExtractor = logger.ContextExtractor
)

// Condition kinds, one per user-facing message.
const (
	KindUnclassified          = internal.KindUnclassified
	KindBadArgument           = internal.KindBadArgument
	KindMissingArgument       = internal.KindMissingArgument
	KindNotFound              = internal.KindNotFound
	KindOnCooldown            = internal.KindOnCooldown
	KindInvalidQuotedString   = internal.KindInvalidQuotedString
	KindUserMissingPermission = internal.KindUserMissingPermission
	KindBotMissingPermission  = internal.KindBotMissingPermission
	KindPrivateMessageOnly    = internal.KindPrivateMessageOnly
	KindNoPrivateMessage      = internal.KindNoPrivateMessage

	KindAppTransformer           = internal.KindAppTransformer
	KindAppNoPrivateMessage      = internal.KindAppNoPrivateMessage
	KindAppMissingRole           = internal.KindAppMissingRole
	KindAppMissingAnyRole        = internal.KindAppMissingAnyRole
	KindAppMissingPermissions    = internal.KindAppMissingPermissions
	KindAppBotMissingPermissions = internal.KindAppBotMissingPermissions
	KindAppOnCooldown            = internal.KindAppOnCooldown
	KindAppCommandNotFound       = internal.KindAppCommandNotFound
)

// New assembles a bot from the given options: configuration loaded and
// merged onto the defaults, locale catalogs merged onto the built-in
// English, logger built from the log section, session created with the
// help command and gateway listeners installed.
//
// Example:
//
//	bot, err := cordial.New(
//	    cordial.WithConfigFile("config.yml"),
//	    cordial.WithLocaleDir(locales),
//	    cordial.WithCommands(commands...),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if err := bot.Run(context.Background()); err != nil {
//	    log.Fatal(err)
//	}
func New(opts ...Option) (*Bot, error) {
	return internal.New(opts...)
}

// Run is the one-call form: New, then run until SIGINT or SIGTERM.
func Run(opts ...Option) error {
	bot, err := internal.New(opts...)
	if err != nil {
		return err
	}
	return bot.Run(context.Background())
}

// ClassifyRESTError maps a discordgo REST failure to a condition.
func ClassifyRESTError(err error) Condition {
	return internal.ClassifyRESTError(err)
}

// Recovered converts a recovered panic value into an unclassified
// condition. Call it from the recover site of a command handler:
//
//	defer func() {
//	    if v := recover(); v != nil {
//	        reply(bot.UserMessage(cordial.Recovered("deploy", v), locale))
//	    }
//	}()
func Recovered(command string, v any) Condition {
	return internal.Recovered(command, v)
}

// Usage builds the prefixed usage string for a command path.
func Usage(prefix string, path ...Command) string {
	return internal.Usage(prefix, path...)
}

// AppUsage builds the slash-command usage string for a command path.
func AppUsage(path ...Command) string {
	return internal.AppUsage(path...)
}
