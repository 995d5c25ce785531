package i18n

import "github.com/cordialdev/cordial/pkg/tree"

// DefaultLocale is the built-in locale every bundle falls back to.
const DefaultLocale = "en"

// Default returns the built-in English message tree. It covers every key the
// framework renders, so locale resolution and key lookup are total even when
// no locale files are provided. Each call returns a fresh copy.
func Default() tree.Tree {
	return tree.Tree{
		"help": tree.Tree{
			"no_commands": "No commands available.",
			"bot": tree.Tree{
				"title":       "%{name} commands",
				"description": "Use `%{help_command} [command]` for more info on a command.",
				"no_category": "No category",
			},
			"cog": tree.Tree{
				"title":    "%{category} commands",
				"commands": "Commands",
			},
			"group": tree.Tree{
				"title": "Subcommands",
			},
			"command": tree.Tree{
				"title":     "`%{command}` command",
				"not_found": "No command called \"%{command}\" found.",
			},
			"subcommand": tree.Tree{
				"not_found":     "Command \"%{command}\" has no subcommand named \"%{subcommand}\".",
				"no_subcommand": "Command \"%{command}\" has no subcommands.",
			},
		},
		"command_error": tree.Tree{
			"bad_argument":            "Invalid argument. Usage: `%{command_usage}`. Type `%{help_command}` for more information.",
			"missing_argument":        "Missing required argument. Usage: `%{command_usage}`. Type `%{help_command}` for more information.",
			"not_found":               "Nothing matches your request.",
			"invite_message":          "Invite created after a command error, to let the developers investigate",
			"on_cooldown":             "This command is on cooldown. Try again in %{cooldown_time}.",
			"invalid_quoted_string":   "Invalid quoted string. Check your quotes and try again.",
			"bot_missing_permission":  "The bot is missing the permissions required for this command.",
			"user_missing_permission": "You do not have the permissions required for this command.",
			"private_message_only":    "This command can only be used in private messages.",
			"no_private_message":      "This command cannot be used in private messages.",
		},
		"app_error": tree.Tree{
			"transformer":             "\"%{argument_value}\" is not a valid value. Usage: `%{command_usage}`. See `%{help_command}` for details.",
			"no_private_message":      "This command cannot be used in private messages.",
			"missing_role":            "You need the %{role} role to use this command.",
			"missing_any_role":        "You need one of the following roles to use this command: %{roles_list}.",
			"missing_permissions":     "You are missing permissions required for this command: %{permissions_list}.",
			"bot_missing_permissions": "The bot is missing permissions required for this command: %{permissions_list}.",
			"on_cooldown":             "This command is on cooldown. Try again %{cooldown_time}.",
			"command_not_found":       "This command no longer exists. The command list has been refreshed.",
		},
		"exception": "An internal error occurred:\n```\nFile \"%{file}\", line %{line}, in %{function}\n%{error}: %{error_message}\n```",
		"footer": tree.Tree{
			"version": "ver. %{version}",
			"timeout": "Expires in %{time}",
			"units": tree.Tree{
				"seconds": "seconds",
				"minutes": "minutes",
				"hours":   "hours",
				"days":    "days",
			},
		},
	}
}
