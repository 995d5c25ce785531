package internal

import (
	"context"
	"log/slog"

	"github.com/bwmarrin/discordgo"
)

// installListeners wires the gateway lifecycle events to the bot logger.
// Each handler is cheap: a single log record, gated where the config says
// so.
func (b *Bot) installListeners() {
	b.session.AddHandler(func(s *discordgo.Session, _ *discordgo.Connect) {
		b.logger.Info("connected to gateway")
	})

	b.session.AddHandler(func(s *discordgo.Session, _ *discordgo.Ready) {
		cfg := b.config.Current()
		b.logger.Info("bot is ready to use",
			slog.String("name", botUsername(s)),
			slog.String("prefix", cfg.Prefix()),
			slog.Int("guilds", guildCount(s)),
		)
	})

	b.session.AddHandler(func(_ *discordgo.Session, _ *discordgo.Disconnect) {
		b.logger.Warn("disconnected from gateway")
	})

	b.session.AddHandler(func(_ *discordgo.Session, _ *discordgo.Resumed) {
		b.logger.Info("gateway session resumed")
	})

	b.session.AddHandler(func(_ *discordgo.Session, g *discordgo.GuildCreate) {
		if g.Guild == nil || g.Unavailable {
			return
		}
		b.logger.Info("joined guild",
			slog.String("guild", g.ID),
			slog.String("name", g.Name),
		)
	})
}

// LogCommand records a command invocation when log.commands is on. The
// returned context carries the command and user ids for every record the
// handler emits while running.
func (b *Bot) LogCommand(ctx context.Context, command, userID, guildID string) context.Context {
	ctx = WithCommand(ctx, command)
	ctx = WithUser(ctx, userID)
	ctx = WithGuild(ctx, guildID)

	if b.config.Current().Log().Commands {
		b.logger.InfoContext(ctx, "command requested")
	}
	return ctx
}

// LogCommandDone records a completed command invocation, gated the same
// way as LogCommand.
func (b *Bot) LogCommandDone(ctx context.Context) {
	if b.config.Current().Log().Commands {
		b.logger.InfoContext(ctx, "command completed")
	}
}

func guildCount(s *discordgo.Session) int {
	if s == nil || s.State == nil {
		return 0
	}
	return len(s.State.Guilds)
}
