package cordial

import (
	"context"
	"io/fs"
	"log/slog"

	"github.com/bwmarrin/discordgo"

	"github.com/cordialdev/cordial/internal"
	"github.com/cordialdev/cordial/pkg/config"
	"github.com/cordialdev/cordial/pkg/cooldown"
	"github.com/cordialdev/cordial/pkg/health"
	"github.com/cordialdev/cordial/pkg/tasks"
	"github.com/cordialdev/cordial/pkg/tree"
)

// WithConfigFile sets the configuration file path. The format follows the
// extension: .yml, .yaml or .toml. Defaults to "config.yml".
func WithConfigFile(path string) Option {
	return internal.WithConfigFile(path)
}

// WithConfigTree supplies an already parsed configuration tree instead of
// a file, merged onto the defaults like any other override.
func WithConfigTree(t tree.Tree) Option {
	return internal.WithConfigTree(t)
}

// WithConfig supplies a fully constructed Config, bypassing loading and
// merging entirely.
func WithConfig(cfg *config.Config) Option {
	return internal.WithConfig(cfg)
}

// WithLocaleDir loads locale files from the root of fsys. The file base
// name is the locale id: locales/fr.yml answers requests for "fr".
//
// Example:
//
//	//go:embed locales
//	var localeFiles embed.FS
//
//	locales, _ := fs.Sub(localeFiles, "locales")
//	bot, err := cordial.New(cordial.WithLocaleDir(locales))
func WithLocaleDir(fsys fs.FS) Option {
	return internal.WithLocaleDir(fsys)
}

// WithLogger replaces the built-in logger. The log section of the
// configuration is ignored when set.
func WithLogger(l *slog.Logger) Option {
	return internal.WithLogger(l)
}

// WithIntents sets the gateway intents. Defaults to all intents.
func WithIntents(intents discordgo.Intent) Option {
	return internal.WithIntents(intents)
}

// WithCommands registers command descriptors for the help pages and usage
// strings.
func WithCommands(commands ...Command) Option {
	return internal.WithCommands(commands...)
}

// WithCooldownStore replaces the in-memory cooldown store, typically with
// cooldown.NewRedis so shards share buckets.
func WithCooldownStore(store cooldown.Store) Option {
	return internal.WithCooldownStore(store)
}

// WithTasks registers background tasks that start and stop with the bot.
//
// Example:
//
//	cordial.WithTasks(
//	    tasks.WithInterval("presence", 5*time.Minute, updatePresence),
//	    tasks.WithCron("digest", "0 9 * * *", sendDigest),
//	)
func WithTasks(opts ...tasks.Option) Option {
	return internal.WithTasks(opts...)
}

// WithHealthServer serves liveness and readiness probes on addr for the
// bot's lifetime. Readiness always includes the gateway check.
func WithHealthServer(addr string, checks health.Checks) Option {
	return internal.WithHealthServer(addr, checks)
}

// WithShutdownHook registers a hook that runs during the bot's stop
// sequence, after the gateway and the cooldown store are closed. Use it
// to release resources the bot borrowed rather than owned:
//
//	client := redis.MustOpen(ctx, os.Getenv("REDIS_URL"))
//	bot, err := cordial.New(
//	    cordial.WithCooldownStore(cooldown.NewRedis(client)),
//	    cordial.WithShutdownHook(redis.Shutdown(client)),
//	)
func WithShutdownHook(hook func(context.Context) error) Option {
	return internal.WithShutdownHook(hook)
}
