package i18n

import (
	"errors"
	"fmt"
	"sort"

	"github.com/cordialdev/cordial/pkg/tree"
)

// keyPlaceholders maps every built-in message key to the placeholder names
// its template may reference. A translation may use fewer placeholders than
// listed, never more: a name outside this set would survive rendering as a
// literal %{...} gap in every message, so it is rejected up front.
var keyPlaceholders = map[string][]string{
	"help.no_commands":              {},
	"help.bot.title":                {"name"},
	"help.bot.description":          {"prefix", "help_command"},
	"help.bot.no_category":          {},
	"help.cog.title":                {"category"},
	"help.cog.commands":             {},
	"help.group.title":              {},
	"help.command.title":            {"command"},
	"help.command.not_found":        {"command"},
	"help.subcommand.not_found":     {"command", "subcommand"},
	"help.subcommand.no_subcommand": {"command"},

	"command_error.bad_argument":            {"command_usage", "help_command"},
	"command_error.missing_argument":        {"command_usage", "help_command"},
	"command_error.not_found":               {},
	"command_error.invite_message":          {},
	"command_error.on_cooldown":             {"cooldown_time"},
	"command_error.invalid_quoted_string":   {},
	"command_error.bot_missing_permission":  {},
	"command_error.user_missing_permission": {},
	"command_error.private_message_only":    {},
	"command_error.no_private_message":      {},

	"app_error.transformer":             {"argument_value", "command_usage", "help_command"},
	"app_error.no_private_message":      {},
	"app_error.missing_role":            {"role"},
	"app_error.missing_any_role":        {"roles_list"},
	"app_error.missing_permissions":     {"permissions_list"},
	"app_error.bot_missing_permissions": {"permissions_list"},
	"app_error.on_cooldown":             {"cooldown_time"},
	"app_error.command_not_found":       {},

	"exception": {"file", "line", "function", "error", "error_message"},

	"footer.version":       {"version"},
	"footer.timeout":       {"time"},
	"footer.units.seconds": {},
	"footer.units.minutes": {},
	"footer.units.hours":   {},
	"footer.units.days":    {},
}

// Keys returns the built-in message keys in sorted order.
func Keys() []string {
	keys := make([]string, 0, len(keyPlaceholders))
	for key := range keyPlaceholders {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// Placeholders reports the placeholder names allowed in the template for a
// built-in message key.
func Placeholders(key string) ([]string, bool) {
	names, ok := keyPlaceholders[key]
	if !ok {
		return nil, false
	}
	out := make([]string, len(names))
	copy(out, names)
	return out, true
}

// ValidateTemplates checks every built-in key present in the message tree
// against the placeholder schema. Keys outside the built-in set are the
// caller's own messages and are not checked. All violations are reported,
// joined into a single error wrapping ErrInvalidMessage.
func ValidateTemplates(t tree.Tree) error {
	var errs []error

	for key, value := range t.Flatten() {
		allowed, known := keyPlaceholders[key]
		if !known {
			continue
		}

		template, ok := value.(string)
		if !ok {
			errs = append(errs, fmt.Errorf("%w: %s: expected a string, got %T", ErrInvalidMessage, key, value))
			continue
		}

		for _, name := range placeholderNames(template) {
			if !contains(allowed, name) {
				errs = append(errs, fmt.Errorf("%w: %s: unknown placeholder %%{%s}", ErrInvalidMessage, key, name))
			}
		}
	}

	return errors.Join(errs...)
}

func contains(names []string, name string) bool {
	for _, n := range names {
		if n == name {
			return true
		}
	}
	return false
}
