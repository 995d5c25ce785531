package internal

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/cordialdev/cordial/pkg/config"
	"github.com/cordialdev/cordial/pkg/i18n"
)

// ConditionKind tags the fault a command run ended with. One kind per
// user-facing message; anything that fits no specific kind funnels into
// KindUnclassified and renders the generic exception message.
type ConditionKind int

const (
	// KindUnclassified is the zero value and the default funnel: an
	// internal fault with no more specific mapping.
	KindUnclassified ConditionKind = iota

	// KindBadArgument is a malformed argument value.
	KindBadArgument
	// KindMissingArgument is a required argument that was not supplied.
	KindMissingArgument
	// KindNotFound is a target entity that does not exist.
	KindNotFound
	// KindOnCooldown is an invocation rejected by an active cooldown.
	KindOnCooldown
	// KindInvalidQuotedString is an unterminated quoted token.
	KindInvalidQuotedString
	// KindUserMissingPermission is a caller without the needed permission.
	KindUserMissingPermission
	// KindBotMissingPermission is the bot itself lacking permission.
	KindBotMissingPermission
	// KindPrivateMessageOnly is a DM-only command used in a guild.
	KindPrivateMessageOnly
	// KindNoPrivateMessage is a guild-only command used in a DM.
	KindNoPrivateMessage

	// App command flavors of the above, keyed under app_error.*.

	// KindAppTransformer is a slash command option value the transformer
	// rejected.
	KindAppTransformer
	// KindAppNoPrivateMessage is a guild-only slash command used in a DM.
	KindAppNoPrivateMessage
	// KindAppMissingRole is a caller without the required role.
	KindAppMissingRole
	// KindAppMissingAnyRole is a caller holding none of a role set.
	KindAppMissingAnyRole
	// KindAppMissingPermissions is a caller lacking a permission set.
	KindAppMissingPermissions
	// KindAppBotMissingPermissions is the bot lacking a permission set.
	KindAppBotMissingPermissions
	// KindAppOnCooldown is a slash command rejected by an active cooldown.
	KindAppOnCooldown
	// KindAppCommandNotFound is a registered slash command the bot no
	// longer knows, usually after a deploy changed the command set.
	KindAppCommandNotFound
)

// Condition is one observed command fault, built by whatever boundary code
// saw the underlying failure and handed to UserMessage. Only the fields the
// kind needs are set; the rest stay zero.
type Condition struct {
	Kind ConditionKind

	// Command is the qualified command name, when known.
	Command string

	// Usage is the command usage string for argument errors.
	Usage string

	// ArgumentValue is the rejected value for transformer errors.
	ArgumentValue string

	// Remaining is the time left on an active cooldown.
	Remaining time.Duration

	// Role is the missing role name; Roles the missing role set;
	// Perms the missing permission set.
	Role  string
	Roles []string
	Perms []string

	// Err is the underlying fault for unclassified conditions.
	Err error

	// Trace locates an unclassified fault. Zero when no frame is known;
	// the command name then stands in for the function.
	Trace Trace

	// Event identifiers, used by the diagnostic reporter.
	GuildID   string
	ChannelID string
	MessageID string
	UserID    string

	// Content is the raw invocation text, shown in the report embed.
	Content string
}

// Trace is a sanitized source location: a project-relative file, a line
// and a function base name. Never a full call stack.
type Trace struct {
	File     string
	Line     int
	Function string
}

// conditionKeys maps every kind to its message key. Kinds absent here
// render the generic exception message.
var conditionKeys = map[ConditionKind]string{
	KindBadArgument:           "command_error.bad_argument",
	KindMissingArgument:       "command_error.missing_argument",
	KindNotFound:              "command_error.not_found",
	KindOnCooldown:            "command_error.on_cooldown",
	KindInvalidQuotedString:   "command_error.invalid_quoted_string",
	KindUserMissingPermission: "command_error.user_missing_permission",
	KindBotMissingPermission:  "command_error.bot_missing_permission",
	KindPrivateMessageOnly:    "command_error.private_message_only",
	KindNoPrivateMessage:      "command_error.no_private_message",

	KindAppTransformer:           "app_error.transformer",
	KindAppNoPrivateMessage:      "app_error.no_private_message",
	KindAppMissingRole:           "app_error.missing_role",
	KindAppMissingAnyRole:        "app_error.missing_any_role",
	KindAppMissingPermissions:    "app_error.missing_permissions",
	KindAppBotMissingPermissions: "app_error.bot_missing_permissions",
	KindAppOnCooldown:            "app_error.on_cooldown",
	KindAppCommandNotFound:       "app_error.command_not_found",
}

// Messenger turns conditions into user-facing text. It reads the active
// config and bundle once per call, so a hot reload mid-burst never mixes
// catalogs within one message.
type Messenger struct {
	config  *config.Store
	locales *i18n.Store
	logger  *slog.Logger

	// report, when set, receives every unclassified condition on its own
	// goroutine. Rendering never waits for it.
	report func(Condition)
}

// NewMessenger creates a Messenger over the given stores.
func NewMessenger(cfg *config.Store, locales *i18n.Store, log *slog.Logger) *Messenger {
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Messenger{config: cfg, locales: locales, logger: log}
}

// SetReporter installs the side channel for unclassified conditions.
func (m *Messenger) SetReporter(report func(Condition)) {
	m.report = report
}

// UserMessage renders the user-facing text for a condition in the given
// locale. Classified conditions always yield a string. An unclassified
// condition additionally fires the diagnostic reporter, and yields an
// empty string when log.alert_user is off. The caller sends nothing.
//
// A template missing a placeholder is a registry inconsistency: it is
// logged, and the degraded rendering (gap left visible) is returned
// rather than failing the interaction.
func (m *Messenger) UserMessage(cond Condition, locale string) string {
	cfg := m.config.Current()
	bundle := m.locales.Current()

	key, ok := conditionKeys[cond.Kind]
	if !ok {
		if m.report != nil {
			go m.report(cond)
		}
		if !cfg.Log().AlertUser {
			return ""
		}
		key = "exception"
	}

	text, err := bundle.T(locale, key, m.placeholders(cond, bundle, locale))
	if err != nil {
		var miss *i18n.MissingPlaceholderError
		if errors.As(err, &miss) {
			m.logger.Error("message template missing placeholders",
				slog.String("key", key),
				slog.String("names", strings.Join(miss.Names, ", ")),
			)
		}
	}
	return text
}

// placeholders builds the render context a condition's template expects.
// Every name the template may reference is supplied, so a render miss
// points at the catalogs, not at this table.
func (m *Messenger) placeholders(cond Condition, bundle *i18n.Bundle, locale string) i18n.M {
	switch cond.Kind {
	case KindBadArgument, KindMissingArgument:
		return i18n.M{
			"command_usage": cond.Usage,
			"help_command":  m.helpInvocation(),
		}
	case KindAppTransformer:
		return i18n.M{
			"argument_value": cond.ArgumentValue,
			"command_usage":  cond.Usage,
			"help_command":   m.helpInvocation(),
		}
	case KindOnCooldown:
		return i18n.M{"cooldown_time": bundle.FormatDuration(locale, cond.Remaining)}
	case KindAppOnCooldown:
		// Slash command responses may use Discord's relative timestamp
		// markup, which the client renders live in the user's language.
		return i18n.M{"cooldown_time": relativeTimestamp(time.Now().Add(cond.Remaining))}
	case KindAppMissingRole:
		return i18n.M{"role": cond.Role}
	case KindAppMissingAnyRole:
		return i18n.M{"roles_list": strings.Join(cond.Roles, ", ")}
	case KindAppMissingPermissions, KindAppBotMissingPermissions:
		return i18n.M{"permissions_list": strings.Join(cond.Perms, ", ")}
	case KindNotFound, KindInvalidQuotedString, KindUserMissingPermission,
		KindBotMissingPermission, KindPrivateMessageOnly, KindNoPrivateMessage,
		KindAppNoPrivateMessage, KindAppCommandNotFound:
		return nil
	default:
		return m.exceptionPlaceholders(cond)
	}
}

func (m *Messenger) exceptionPlaceholders(cond Condition) i18n.M {
	function := cond.Trace.Function
	if function == "" {
		function = cond.Command
	}
	return i18n.M{
		"file":          cond.Trace.File,
		"line":          cond.Trace.Line,
		"function":      function,
		"error":         errorName(cond.Err),
		"error_message": errorText(cond.Err),
	}
}

// helpInvocation is a lazy value: it reads the live prefix and help
// command name only when the template actually references %{help_command},
// so the expansion always reflects the current runtime configuration.
func (m *Messenger) helpInvocation() i18n.Lazy {
	return func() string {
		cfg := m.config.Current()
		return cfg.Prefix() + cfg.Help().Command
	}
}

// ClassifyRESTError maps a discordgo REST failure to a condition, the
// gateway-API analogue of permission and lookup faults. Anything else
// stays unclassified.
func ClassifyRESTError(err error) Condition {
	var restErr *discordgo.RESTError
	if errors.As(err, &restErr) && restErr.Response != nil {
		switch restErr.Response.StatusCode {
		case http.StatusForbidden:
			return Condition{Kind: KindBotMissingPermission, Err: err}
		case http.StatusNotFound:
			return Condition{Kind: KindNotFound, Err: err}
		}
	}
	return Condition{Kind: KindUnclassified, Err: err}
}

// Recovered converts a recovered panic value into an unclassified
// condition located at the panicking frame.
func Recovered(command string, v any) Condition {
	err, ok := v.(error)
	if !ok {
		err = fmt.Errorf("panic: %v", v)
	}
	return Condition{
		Kind:    KindUnclassified,
		Command: command,
		Err:     err,
		Trace:   CaptureTrace(2),
	}
}

func relativeTimestamp(t time.Time) string {
	return fmt.Sprintf("<t:%d:R>", t.Unix())
}

// errorName reports a short name for the fault's type, the Go stand-in
// for the exception class name the template shows before the colon.
func errorName(err error) string {
	if err == nil {
		return "error"
	}
	name := fmt.Sprintf("%T", err)
	name = strings.TrimLeft(name, "*")
	if i := strings.LastIndex(name, "."); i >= 0 {
		name = name[i+1:]
	}
	if name == "errorString" || name == "wrapError" {
		return "error"
	}
	return name
}

func errorText(err error) string {
	if err == nil {
		return "unknown error"
	}
	return err.Error()
}
