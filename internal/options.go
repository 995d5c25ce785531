package internal

import (
	"context"
	"io/fs"
	"log/slog"

	"github.com/bwmarrin/discordgo"

	"github.com/cordialdev/cordial/pkg/config"
	"github.com/cordialdev/cordial/pkg/cooldown"
	"github.com/cordialdev/cordial/pkg/health"
	"github.com/cordialdev/cordial/pkg/tasks"
	"github.com/cordialdev/cordial/pkg/tree"
)

// defaultConfigPath is where New looks for the configuration file when no
// option names another source.
const defaultConfigPath = "config.yml"

// Option configures the bot during New.
type Option func(*settings)

// settings collects everything the options may set before New assembles
// the bot.
type settings struct {
	configPath string
	configTree tree.Tree
	cfg        *config.Config

	localeFS fs.FS

	logger *slog.Logger

	intents    discordgo.Intent
	hasIntents bool

	commands []Command

	cooldowns cooldown.Store

	taskOptions []tasks.Option

	healthAddr   string
	healthChecks health.Checks

	shutdownHooks []func(context.Context) error
}

// WithConfigFile sets the configuration file path. The format follows the
// extension: .yml, .yaml or .toml. Defaults to "config.yml".
func WithConfigFile(path string) Option {
	return func(s *settings) {
		if path != "" {
			s.configPath = path
		}
	}
}

// WithConfigTree supplies an already parsed configuration tree instead of
// a file, merged onto the defaults like any other override. Useful for
// tests and for callers with their own loading pipeline.
func WithConfigTree(t tree.Tree) Option {
	return func(s *settings) {
		s.configTree = t
	}
}

// WithConfig supplies a fully constructed Config, bypassing loading and
// merging entirely.
func WithConfig(cfg *config.Config) Option {
	return func(s *settings) {
		s.cfg = cfg
	}
}

// WithLocaleDir loads locale files from the root of fsys. The file base
// name is the locale id: locales/en.yml translates requests for "en".
//
// Example:
//
//	//go:embed locales
//	var locales embed.FS
//
//	sub, _ := fs.Sub(locales, "locales")
//	bot, err := internal.New(internal.WithLocaleDir(sub))
func WithLocaleDir(fsys fs.FS) Option {
	return func(s *settings) {
		s.localeFS = fsys
	}
}

// WithLogger replaces the built-in logger. The log section of the
// configuration is ignored when set.
func WithLogger(l *slog.Logger) Option {
	return func(s *settings) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithIntents sets the gateway intents. Defaults to all intents, matching
// a bot that reads messages for its prefix commands.
func WithIntents(intents discordgo.Intent) Option {
	return func(s *settings) {
		s.intents = intents
		s.hasIntents = true
	}
}

// WithCommands registers command descriptors for the help pages and usage
// strings. The framework does not dispatch them; it only talks about them.
func WithCommands(commands ...Command) Option {
	return func(s *settings) {
		s.commands = append(s.commands, commands...)
	}
}

// WithCooldownStore replaces the in-memory cooldown store, typically with
// the Redis store so shards share buckets.
func WithCooldownStore(store cooldown.Store) Option {
	return func(s *settings) {
		if store != nil {
			s.cooldowns = store
		}
	}
}

// WithTasks registers background tasks that start and stop with the bot.
func WithTasks(opts ...tasks.Option) Option {
	return func(s *settings) {
		s.taskOptions = append(s.taskOptions, opts...)
	}
}

// WithHealthServer serves liveness and readiness probes on addr for the
// bot's lifetime. Readiness always includes the gateway check; extra
// checks are merged in.
func WithHealthServer(addr string, checks health.Checks) Option {
	return func(s *settings) {
		s.healthAddr = addr
		s.healthChecks = checks
	}
}

// WithShutdownHook registers a hook that runs during Stop, after the
// gateway and the cooldown store are closed. Hooks run in registration
// order; each gets the shutdown context and its error joins the rest.
func WithShutdownHook(hook func(context.Context) error) Option {
	return func(s *settings) {
		if hook != nil {
			s.shutdownHooks = append(s.shutdownHooks, hook)
		}
	}
}
