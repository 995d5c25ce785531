package internal

import (
	"log/slog"
	"runtime"
	"strconv"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"

	"github.com/cordialdev/cordial/pkg/config"
	"github.com/cordialdev/cordial/pkg/i18n"
)

// inviteMaxAge bounds diagnostic invites to one day, the longest grant
// the error pipeline may create.
const inviteMaxAge = 86400

// Reporter handles the out-of-band side of an unclassified fault: a log
// record, an embed in the configured log channel, and optionally a
// single-use temporary invite so the developers can look at the guild
// where the fault happened.
//
// Reporting runs on its own goroutine and never gates the user-facing
// message.
type Reporter struct {
	session *discordgo.Session
	config  *config.Store
	locales *i18n.Store
	logger  *slog.Logger

	// One invite per guild per fault burst.
	invites singleflight.Group
}

// NewReporter creates a reporter over the session and stores.
func NewReporter(session *discordgo.Session, cfg *config.Store, locales *i18n.Store, log *slog.Logger) *Reporter {
	return &Reporter{session: session, config: cfg, locales: locales, logger: log}
}

// Report logs the fault and, when a log channel is configured, posts the
// diagnostic embed there. Each report gets an incident id so the log line,
// the embed and any user conversation can be tied together.
func (r *Reporter) Report(cond Condition) {
	incident := uuid.NewString()
	cfg := r.config.Current()

	attrs := []any{
		slog.String("incident", incident),
		slog.String("command", cond.Command),
		slog.String("guild", cond.GuildID),
		slog.String("user", cond.UserID),
	}
	if cond.Err != nil {
		attrs = append(attrs, slog.String("error", cond.Err.Error()))
	}
	if cond.Trace.File != "" {
		attrs = append(attrs, slog.String("location", cond.Trace.File+":"+strconv.Itoa(cond.Trace.Line)))
	}
	r.logger.Error("command failed", attrs...)

	channel := cfg.Log().Channel
	if channel == "" || r.session == nil {
		return
	}

	embed := r.buildEmbed(cfg, cond, incident)
	if cfg.Log().CreateInvite && cond.GuildID != "" {
		if invite := r.guildInvite(cond); invite != "" {
			embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
				Name: "Invite", Value: invite, Inline: true,
			})
		}
	}

	if _, err := r.session.ChannelMessageSendEmbed(channel, embed); err != nil {
		r.logger.Error("failed to post error report",
			slog.String("incident", incident),
			slog.String("channel", channel),
			slog.String("error", err.Error()),
		)
	}
}

func (r *Reporter) buildEmbed(cfg *config.Config, cond Condition, incident string) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Title:     "Command error",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
	if color, ok := cfg.Color(); ok {
		embed.Color = color
	}

	field := func(name, value string, inline bool) {
		if value == "" {
			return
		}
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name: name, Value: value, Inline: inline,
		})
	}

	field("Command", cond.Command, true)
	field("Author", mention(cond.UserID), true)
	field("Server", cond.GuildID, true)
	field("File", cond.Trace.File, true)
	if cond.Trace.Line > 0 {
		field("Line", strconv.Itoa(cond.Trace.Line), true)
	}
	if cond.Err != nil {
		field("Error", errorName(cond.Err), true)
		embed.Description = "```\n" + escapeCodeBlock(cond.Err.Error()) + "\n```"
	}
	field("Message", cond.Content, false)
	if link := messageLink(cond); link != "" {
		field("Link", link, false)
	}
	field("Incident", incident, false)

	footer := r.botName()
	if version, ok := cfg.Version(); ok {
		tag, _ := r.locales.Current().T(cfg.Locale(), "footer.version", i18n.M{"version": version})
		footer = strings.TrimSpace(footer + " " + tag)
	}
	if footer != "" {
		embed.Footer = &discordgo.MessageEmbedFooter{Text: footer}
	}

	return embed
}

// guildInvite creates a single-use temporary invite for the guild the
// fault happened in. Faults arrive in bursts; singleflight collapses the
// burst into one invite per guild.
func (r *Reporter) guildInvite(cond Condition) string {
	code, err, _ := r.invites.Do(cond.GuildID, func() (any, error) {
		cfg := r.config.Current()
		reason, _ := r.locales.Current().T(cfg.Locale(), "command_error.invite_message", nil)

		invite, err := r.session.ChannelInviteCreate(cond.ChannelID, discordgo.Invite{
			MaxAge:    inviteMaxAge,
			MaxUses:   1,
			Temporary: true,
		}, discordgo.WithAuditLogReason(reason))
		if err != nil {
			return "", err
		}
		return invite.Code, nil
	})
	if err != nil {
		r.logger.Warn("failed to create diagnostic invite",
			slog.String("guild", cond.GuildID),
			slog.String("error", err.Error()),
		)
		return ""
	}
	// Let the next burst mint a fresh invite once this one is consumed.
	r.invites.Forget(cond.GuildID)

	return "https://discord.gg/" + code.(string)
}

func (r *Reporter) botName() string {
	if r.session != nil && r.session.State != nil && r.session.State.User != nil {
		return r.session.State.User.Username
	}
	return ""
}

func mention(userID string) string {
	if userID == "" {
		return ""
	}
	return "<@" + userID + ">"
}

func messageLink(cond Condition) string {
	if cond.GuildID == "" || cond.ChannelID == "" || cond.MessageID == "" {
		return ""
	}
	return "https://discord.com/channels/" + cond.GuildID + "/" + cond.ChannelID + "/" + cond.MessageID
}

// escapeCodeBlock keeps fault text from closing the embed's code fence.
func escapeCodeBlock(s string) string {
	return strings.ReplaceAll(s, "```", "`\u200b``")
}

// CaptureTrace records the caller's sanitized source location, skip
// frames up from CaptureTrace itself.
func CaptureTrace(skip int) Trace {
	pc, file, line, ok := runtime.Caller(skip)
	if !ok {
		return Trace{}
	}

	t := Trace{File: sanitizeFile(file), Line: line}
	if fn := runtime.FuncForPC(pc); fn != nil {
		name := fn.Name()
		if i := strings.LastIndex(name, "/"); i >= 0 {
			name = name[i+1:]
		}
		t.Function = name
	}
	return t
}

// sanitizeFile reduces an absolute build path to its last two elements,
// enough to locate the fault without leaking the build machine's layout.
func sanitizeFile(path string) string {
	parts := strings.Split(path, "/")
	if len(parts) <= 2 {
		return path
	}
	return strings.Join(parts[len(parts)-2:], "/")
}
