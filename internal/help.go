package internal

import (
	"log/slog"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/cordialdev/cordial/pkg/config"
	"github.com/cordialdev/cordial/pkg/i18n"
)

// helpCommand answers "<prefix><help> [command [subcommand]]" messages with
// embed pages. It is the only message routing the framework does; every
// other command belongs to the caller's dispatcher.
type helpCommand struct {
	config   *config.Store
	locales  *i18n.Store
	registry *Registry
	logger   *slog.Logger
}

// handle inspects one inbound message and, when it is a help invocation,
// replies with the matching page. Non-help messages are ignored.
func (h *helpCommand) handle(s *discordgo.Session, m *discordgo.MessageCreate) {
	if m.Author == nil || m.Author.Bot {
		return
	}

	cfg := h.config.Current()
	help := cfg.Help()
	if !help.Enabled {
		return
	}

	content, ok := strings.CutPrefix(m.Content, cfg.Prefix())
	if !ok {
		return
	}

	args := strings.Fields(content)
	if len(args) == 0 || !isHelpName(args[0], help, cfg.CaseInsensitive()) {
		return
	}

	locale := cfg.Locale()
	embed := h.page(s, cfg, locale, args[1:])

	if _, err := s.ChannelMessageSendEmbed(m.ChannelID, embed); err != nil {
		h.logger.Error("failed to send help page",
			slog.String("channel", m.ChannelID),
			slog.String("error", err.Error()),
		)
	}
}

func isHelpName(name string, help config.HelpConfig, caseInsensitive bool) bool {
	if equalName(name, help.Command, caseInsensitive) {
		return true
	}
	for _, alias := range help.Aliases {
		if equalName(name, alias, caseInsensitive) {
			return true
		}
	}
	return false
}

// page picks the embed for the requested path: no arguments is the bot
// page, one is a command page, two is a subcommand page.
func (h *helpCommand) page(s *discordgo.Session, cfg *config.Config, locale string, args []string) *discordgo.MessageEmbed {
	bundle := h.locales.Current()

	if len(args) == 0 {
		return h.botPage(s, cfg, bundle, locale)
	}

	command, ok := h.registry.Lookup(args[0])
	if !ok {
		if commands := h.registry.Category(args[0]); len(commands) > 0 {
			return h.categoryPage(cfg, bundle, locale, args[0], commands)
		}
		return h.errorPage(cfg, bundle, locale, "help.command.not_found", i18n.M{"command": args[0]})
	}

	if len(args) == 1 {
		return h.commandPage(cfg, bundle, locale, command)
	}

	if len(command.Subcommands) == 0 {
		return h.errorPage(cfg, bundle, locale, "help.subcommand.no_subcommand", i18n.M{"command": command.Name})
	}
	sub, ok := command.Subcommand(args[1], cfg.CaseInsensitive())
	if !ok {
		return h.errorPage(cfg, bundle, locale, "help.subcommand.not_found", i18n.M{
			"command":    command.Name,
			"subcommand": args[1],
		})
	}
	return h.subcommandPage(cfg, bundle, locale, command, sub)
}

// botPage lists every visible command grouped by category.
func (h *helpCommand) botPage(s *discordgo.Session, cfg *config.Config, bundle *i18n.Bundle, locale string) *discordgo.MessageEmbed {
	title, _ := bundle.T(locale, "help.bot.title", i18n.M{"name": botUsername(s)})
	description, _ := bundle.T(locale, "help.bot.description", i18n.M{
		"prefix":       cfg.Prefix(),
		"help_command": i18n.Lazy(func() string { return cfg.Prefix() + cfg.Help().Command }),
	})
	if desc, ok := cfg.Description(); ok {
		description = desc + "\n\n" + description
	}

	embed := h.newEmbed(cfg, bundle, locale, title, description)

	visible := h.registry.Visible()
	if len(visible) == 0 {
		text, _ := bundle.T(locale, "help.no_commands", nil)
		embed.Description = text
		return embed
	}

	for _, category := range h.registry.Categories() {
		name := category
		if name == "" {
			name, _ = bundle.T(locale, "help.bot.no_category", nil)
		}
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:  name,
			Value: commandList(h.registry.Category(category)),
		})
	}
	return embed
}

func (h *helpCommand) categoryPage(cfg *config.Config, bundle *i18n.Bundle, locale, category string, commands []Command) *discordgo.MessageEmbed {
	title, _ := bundle.T(locale, "help.cog.title", i18n.M{"category": category})
	heading, _ := bundle.T(locale, "help.cog.commands", nil)

	embed := h.newEmbed(cfg, bundle, locale, title, "")
	embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
		Name:  heading,
		Value: commandList(commands),
	})
	return embed
}

func (h *helpCommand) commandPage(cfg *config.Config, bundle *i18n.Bundle, locale string, command Command) *discordgo.MessageEmbed {
	title, _ := bundle.T(locale, "help.command.title", i18n.M{"command": command.Name})

	description := command.Description
	if description == "" {
		description = command.Brief
	}
	description = strings.TrimSpace("`" + Usage(cfg.Prefix(), command) + "`\n\n" + description)

	embed := h.newEmbed(cfg, bundle, locale, title, description)

	if len(command.Subcommands) > 0 {
		heading, _ := bundle.T(locale, "help.group.title", nil)
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:  heading,
			Value: commandList(command.Subcommands),
		})
	}
	return embed
}

func (h *helpCommand) subcommandPage(cfg *config.Config, bundle *i18n.Bundle, locale string, parent, sub Command) *discordgo.MessageEmbed {
	title, _ := bundle.T(locale, "help.command.title", i18n.M{"command": parent.Name + " " + sub.Name})

	description := sub.Description
	if description == "" {
		description = sub.Brief
	}
	description = strings.TrimSpace("`" + Usage(cfg.Prefix(), parent, sub) + "`\n\n" + description)

	return h.newEmbed(cfg, bundle, locale, title, description)
}

func (h *helpCommand) errorPage(cfg *config.Config, bundle *i18n.Bundle, locale, key string, ctx i18n.M) *discordgo.MessageEmbed {
	text, _ := bundle.T(locale, key, ctx)
	return h.newEmbed(cfg, bundle, locale, "", text)
}

func (h *helpCommand) newEmbed(cfg *config.Config, bundle *i18n.Bundle, locale, title, description string) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Title:       title,
		Description: description,
	}
	if color, ok := cfg.Color(); ok {
		embed.Color = color
	}
	if version, ok := cfg.Version(); ok {
		text, _ := bundle.T(locale, "footer.version", i18n.M{"version": version})
		embed.Footer = &discordgo.MessageEmbedFooter{Text: text}
	}
	return embed
}

// commandList renders one line per command, name first, brief after.
func commandList(commands []Command) string {
	lines := make([]string, 0, len(commands))
	for _, c := range commands {
		line := "`" + c.Name + "`"
		if c.Brief != "" {
			line += " " + c.Brief
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}

func botUsername(s *discordgo.Session) string {
	if s != nil && s.State != nil && s.State.User != nil {
		return s.State.User.Username
	}
	return ""
}
