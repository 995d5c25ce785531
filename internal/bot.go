package internal

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/cordialdev/cordial/pkg/config"
	"github.com/cordialdev/cordial/pkg/cooldown"
	"github.com/cordialdev/cordial/pkg/health"
	"github.com/cordialdev/cordial/pkg/i18n"
	"github.com/cordialdev/cordial/pkg/logger"
	"github.com/cordialdev/cordial/pkg/tasks"
)

// Bot is a configured, localized Discord bot: a gateway session wired to
// the config and locale stores, the help command, the gateway listeners
// and the error-to-message pipeline. Construction does everything that can
// fail; Run only opens the gateway and waits.
type Bot struct {
	session   *discordgo.Session
	config    *config.Store
	locales   *i18n.Store
	logger    *slog.Logger
	logClose  func(context.Context) error
	registry  *Registry
	messenger *Messenger
	reporter  *Reporter
	cooldowns cooldown.Store
	tasks     *tasks.Runner
	health    *health.Server

	shutdownHooks []func(context.Context) error
}

// New assembles a bot from the given options. The configuration is loaded
// and merged onto the defaults, locale files are merged onto the built-in
// English catalog and validated against the placeholder schema, the logger
// is built from the log section, and the session is created with the help
// command and gateway listeners installed.
func New(opts ...Option) (*Bot, error) {
	s := &settings{configPath: defaultConfigPath}
	for _, opt := range opts {
		opt(s)
	}

	cfg, err := resolveConfig(s)
	if err != nil {
		return nil, err
	}

	bundle, err := buildBundle(cfg, s)
	if err != nil {
		return nil, err
	}

	log := s.logger
	var logClose func(context.Context) error
	if log == nil {
		logCfg := cfg.Log()
		log, logClose, err = logger.New(logger.Config{
			Level:             logCfg.Level,
			Format:            logCfg.Format,
			TimeFormat:        logCfg.TimeFormat,
			File:              logCfg.File,
			SentryDSN:         logCfg.SentryDSN,
			SentryEnvironment: logCfg.SentryEnvironment,
		}, Extractors()...)
		if err != nil {
			return nil, err
		}
	}

	session, err := discordgo.New(botToken(cfg.Token()))
	if err != nil {
		return nil, fmt.Errorf("creating session: %w", err)
	}
	session.Identify.Intents = discordgo.IntentsAll
	if s.hasIntents {
		session.Identify.Intents = s.intents
	}

	b := &Bot{
		session:   session,
		config:    config.NewStore(cfg),
		locales:   i18n.NewStore(bundle),
		logger:    log,
		logClose:  logClose,
		registry:  NewRegistry(cfg.CaseInsensitive(), s.commands...),
		cooldowns: s.cooldowns,

		shutdownHooks: s.shutdownHooks,
	}
	if b.cooldowns == nil {
		b.cooldowns = cooldown.NewMemory()
	}

	b.reporter = NewReporter(session, b.config, b.locales, log)
	b.messenger = NewMessenger(b.config, b.locales, log)
	b.messenger.SetReporter(b.reporter.Report)

	b.installListeners()
	if cfg.Help().Enabled {
		help := &helpCommand{config: b.config, locales: b.locales, registry: b.registry, logger: log}
		session.AddHandler(help.handle)
	}

	if len(s.taskOptions) > 0 {
		runner, err := tasks.NewRunner(append(s.taskOptions, tasks.WithLogger(log))...)
		if err != nil {
			return nil, err
		}
		b.tasks = runner
	}

	if s.healthAddr != "" {
		checks := health.Checks{"gateway": health.GatewayCheck(session)}
		for name, check := range s.healthChecks {
			checks[name] = check
		}
		b.health = health.NewServer(s.healthAddr, checks, health.WithLogger(log))
	}

	return b, nil
}

func resolveConfig(s *settings) (*config.Config, error) {
	switch {
	case s.cfg != nil:
		return s.cfg, nil
	case s.configTree != nil:
		return config.New(s.configTree)
	default:
		return config.Load(s.configPath)
	}
}

// buildBundle merges the locale files onto the built-in catalog. Both the
// built-in catalog and every user tree are checked against the placeholder
// schema here, so a template asking for a name no classifier supplies
// fails at startup instead of in front of a user.
func buildBundle(cfg *config.Config, s *settings) (*i18n.Bundle, error) {
	if err := i18n.ValidateTemplates(i18n.Default()); err != nil {
		return nil, err
	}

	opts := []i18n.Option{i18n.WithDefaultLocale(cfg.Locale())}

	if s.localeFS != nil {
		trees, err := i18n.LoadDir(s.localeFS)
		if err != nil {
			return nil, err
		}

		locales := make([]string, 0, len(trees))
		for locale := range trees {
			locales = append(locales, locale)
		}
		sort.Strings(locales)

		for _, locale := range locales {
			if err := i18n.ValidateTemplates(trees[locale]); err != nil {
				return nil, fmt.Errorf("locale %q: %w", locale, err)
			}
			opts = append(opts, i18n.WithLocaleTree(locale, trees[locale]))
		}
	}

	return i18n.New(opts...)
}

// Session returns the underlying discordgo session.
func (b *Bot) Session() *discordgo.Session { return b.session }

// Config returns the config store. Hot reload swaps a rebuilt Config in
// through it.
func (b *Bot) Config() *config.Store { return b.config }

// Locales returns the locale bundle store, the hot reload point for
// message catalogs.
func (b *Bot) Locales() *i18n.Store { return b.locales }

// Logger returns the bot logger.
func (b *Bot) Logger() *slog.Logger { return b.logger }

// Registry returns the command descriptors.
func (b *Bot) Registry() *Registry { return b.registry }

// Cooldowns returns the cooldown store.
func (b *Bot) Cooldowns() cooldown.Store { return b.cooldowns }

// UserMessage renders the user-facing text for a condition. See
// Messenger.UserMessage.
func (b *Bot) UserMessage(cond Condition, locale string) string {
	return b.messenger.UserMessage(cond, locale)
}

// TimeoutFooter renders the embed footer line for a component that
// expires after d, with the duration spelled out in the locale's units.
// Pair it with the footer a message timeout deletes or disables.
func (b *Bot) TimeoutFooter(locale string, d time.Duration) string {
	bundle := b.locales.Current()
	text, _ := bundle.T(locale, "footer.timeout", i18n.M{"time": bundle.FormatDuration(locale, d)})
	return text
}

// TakeCooldown consumes one use from a command's cooldown bucket. A denied
// reservation comes back as an OnCooldown condition ready for UserMessage;
// ok is true when the invocation may proceed.
func (b *Bot) TakeCooldown(ctx context.Context, command string, rule cooldown.Rule, ev cooldown.Event) (Condition, bool, error) {
	res, err := b.cooldowns.Take(ctx, rule.Key(command, ev), rule.Rate, rule.Per)
	if err != nil {
		return Condition{}, false, err
	}
	if res.Allowed {
		return Condition{}, true, nil
	}
	return Condition{
		Kind:      KindOnCooldown,
		Command:   command,
		Remaining: res.RetryAfter,
		GuildID:   ev.GuildID,
		ChannelID: ev.ChannelID,
		UserID:    ev.UserID,
	}, false, nil
}

// botToken normalizes a raw token to the "Bot " form discordgo expects,
// leaving already prefixed tokens alone.
func botToken(token string) string {
	if strings.HasPrefix(token, "Bot ") || strings.HasPrefix(token, "Bearer ") {
		return token
	}
	return "Bot " + token
}
