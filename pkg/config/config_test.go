package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cordialdev/cordial/pkg/config"
	"github.com/cordialdev/cordial/pkg/tree"
)

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("defaults fill everything but the token", func(t *testing.T) {
		t.Parallel()

		cfg, err := config.New(tree.Tree{"token": "secret"})
		require.NoError(t, err)

		assert.Equal(t, "secret", cfg.Token())
		assert.Equal(t, "!", cfg.Prefix())
		assert.Equal(t, "en", cfg.Locale())
		assert.True(t, cfg.CaseInsensitive())
		assert.False(t, cfg.HotReload())
	})

	t.Run("missing token is a schema error", func(t *testing.T) {
		t.Parallel()

		_, err := config.New(tree.Tree{"prefix": "?"})
		require.Error(t, err)

		var schemaErr *config.SchemaError
		require.ErrorAs(t, err, &schemaErr)
		assert.Equal(t, "token", schemaErr.Path)
	})

	t.Run("blank token is a schema error", func(t *testing.T) {
		t.Parallel()

		_, err := config.New(tree.Tree{"token": "   "})

		var schemaErr *config.SchemaError
		require.ErrorAs(t, err, &schemaErr)
	})

	t.Run("null token stays absent", func(t *testing.T) {
		t.Parallel()

		_, err := config.New(tree.Tree{"token": nil})

		var schemaErr *config.SchemaError
		require.ErrorAs(t, err, &schemaErr)
	})

	t.Run("non-string token is a schema error", func(t *testing.T) {
		t.Parallel()

		_, err := config.New(tree.Tree{"token": 12345})

		var schemaErr *config.SchemaError
		require.ErrorAs(t, err, &schemaErr)
	})

	t.Run("override wins over defaults", func(t *testing.T) {
		t.Parallel()

		cfg, err := config.New(tree.Tree{
			"token":            "secret",
			"prefix":           "?",
			"locale":           "fr",
			"case_insensitive": false,
			"hot_reload":       true,
		})
		require.NoError(t, err)

		assert.Equal(t, "?", cfg.Prefix())
		assert.Equal(t, "fr", cfg.Locale())
		assert.False(t, cfg.CaseInsensitive())
		assert.True(t, cfg.HotReload())
	})

	t.Run("null override restores the default", func(t *testing.T) {
		t.Parallel()

		cfg, err := config.New(tree.Tree{"token": "secret", "prefix": nil})
		require.NoError(t, err)

		assert.Equal(t, "!", cfg.Prefix())
	})

	t.Run("wrong type falls back to the default", func(t *testing.T) {
		t.Parallel()

		cfg, err := config.New(tree.Tree{
			"token":            "secret",
			"prefix":           5,
			"case_insensitive": "yes",
		})
		require.NoError(t, err)

		assert.Equal(t, "!", cfg.Prefix())
		assert.True(t, cfg.CaseInsensitive())
	})

	t.Run("extension keys survive and stay queryable", func(t *testing.T) {
		t.Parallel()

		cfg, err := config.New(tree.Tree{
			"token": "secret",
			"radio": tree.Tree{"station": "fip", "volume": 7},
		})
		require.NoError(t, err)

		station, ok := cfg.Get("radio.station")
		require.True(t, ok)
		assert.Equal(t, "fip", station)

		volume, ok := cfg.Get("radio.volume")
		require.True(t, ok)
		assert.Equal(t, 7, volume)
	})

	t.Run("raw decoder maps are accepted", func(t *testing.T) {
		t.Parallel()

		cfg, err := config.New(tree.Tree{
			"token": "secret",
			"log":   map[string]any{"level": "debug"},
		})
		require.NoError(t, err)

		assert.Equal(t, "debug", cfg.Log().Level)
	})

	t.Run("override tree is not mutated", func(t *testing.T) {
		t.Parallel()

		override := tree.Tree{"token": "secret", "log": tree.Tree{"level": "debug"}}
		_, err := config.New(override)
		require.NoError(t, err)

		assert.Equal(t, tree.Tree{"token": "secret", "log": tree.Tree{"level": "debug"}}, override)
	})
}

func TestConfigOptionalKeys(t *testing.T) {
	t.Parallel()

	t.Run("absent by default", func(t *testing.T) {
		t.Parallel()

		cfg, err := config.New(tree.Tree{"token": "secret"})
		require.NoError(t, err)

		_, ok := cfg.Description()
		assert.False(t, ok)
		_, ok = cfg.Version()
		assert.False(t, ok)
		_, ok = cfg.Color()
		assert.False(t, ok)
		_, ok = cfg.ApplicationID()
		assert.False(t, ok)
	})

	t.Run("present when configured", func(t *testing.T) {
		t.Parallel()

		cfg, err := config.New(tree.Tree{
			"token":          "secret",
			"description":    "a radio bot",
			"version":        "1.4.0",
			"color":          0x7289DA,
			"application_id": "123456789012345678",
		})
		require.NoError(t, err)

		description, ok := cfg.Description()
		require.True(t, ok)
		assert.Equal(t, "a radio bot", description)

		version, ok := cfg.Version()
		require.True(t, ok)
		assert.Equal(t, "1.4.0", version)

		color, ok := cfg.Color()
		require.True(t, ok)
		assert.Equal(t, 0x7289DA, color)

		appID, ok := cfg.ApplicationID()
		require.True(t, ok)
		assert.Equal(t, "123456789012345678", appID)
	})

	t.Run("color accepts decoder integer shapes", func(t *testing.T) {
		t.Parallel()

		for name, value := range map[string]any{
			"int":            7506394,
			"int64":          int64(7506394),
			"uint64":         uint64(7506394),
			"integral float": float64(7506394),
		} {
			value := value
			t.Run(name, func(t *testing.T) {
				t.Parallel()

				cfg, err := config.New(tree.Tree{"token": "secret", "color": value})
				require.NoError(t, err)

				color, ok := cfg.Color()
				require.True(t, ok)
				assert.Equal(t, 7506394, color)
			})
		}
	})

	t.Run("fractional color is treated as absent", func(t *testing.T) {
		t.Parallel()

		cfg, err := config.New(tree.Tree{"token": "secret", "color": 1.5})
		require.NoError(t, err)

		_, ok := cfg.Color()
		assert.False(t, ok)
	})

	t.Run("numeric application id becomes a decimal string", func(t *testing.T) {
		t.Parallel()

		cfg, err := config.New(tree.Tree{"token": "secret", "application_id": int64(123456789012345678)})
		require.NoError(t, err)

		appID, ok := cfg.ApplicationID()
		require.True(t, ok)
		assert.Equal(t, "123456789012345678", appID)
	})
}

func TestConfigHelp(t *testing.T) {
	t.Parallel()

	t.Run("enabled with defaults when absent", func(t *testing.T) {
		t.Parallel()

		cfg, err := config.New(tree.Tree{"token": "secret"})
		require.NoError(t, err)

		help := cfg.Help()
		assert.True(t, help.Enabled)
		assert.Equal(t, "help", help.Command)
		assert.Empty(t, help.Aliases)
	})

	t.Run("bare false disables the command", func(t *testing.T) {
		t.Parallel()

		cfg, err := config.New(tree.Tree{"token": "secret", "help": false})
		require.NoError(t, err)

		assert.False(t, cfg.Help().Enabled)
	})

	t.Run("block tunes name and aliases", func(t *testing.T) {
		t.Parallel()

		cfg, err := config.New(tree.Tree{
			"token": "secret",
			"help": tree.Tree{
				"command": "aide",
				"aliases": []any{"h", "?"},
			},
		})
		require.NoError(t, err)

		help := cfg.Help()
		assert.True(t, help.Enabled)
		assert.Equal(t, "aide", help.Command)
		assert.Equal(t, []string{"h", "?"}, help.Aliases)
	})

	t.Run("single alias string becomes a list", func(t *testing.T) {
		t.Parallel()

		cfg, err := config.New(tree.Tree{
			"token": "secret",
			"help":  tree.Tree{"aliases": "h"},
		})
		require.NoError(t, err)

		assert.Equal(t, []string{"h"}, cfg.Help().Aliases)
	})

	t.Run("enabled false inside the block", func(t *testing.T) {
		t.Parallel()

		cfg, err := config.New(tree.Tree{
			"token": "secret",
			"help":  tree.Tree{"enabled": false},
		})
		require.NoError(t, err)

		assert.False(t, cfg.Help().Enabled)
	})

	t.Run("returned aliases are a copy", func(t *testing.T) {
		t.Parallel()

		cfg, err := config.New(tree.Tree{
			"token": "secret",
			"help":  tree.Tree{"aliases": []any{"h"}},
		})
		require.NoError(t, err)

		first := cfg.Help()
		first.Aliases[0] = "mutated"

		assert.Equal(t, []string{"h"}, cfg.Help().Aliases)
	})
}

func TestConfigLog(t *testing.T) {
	t.Parallel()

	t.Run("defaults", func(t *testing.T) {
		t.Parallel()

		cfg, err := config.New(tree.Tree{"token": "secret"})
		require.NoError(t, err)

		log := cfg.Log()
		assert.Empty(t, log.Channel)
		assert.Empty(t, log.File)
		assert.Empty(t, log.SentryDSN)
		assert.Empty(t, log.SentryEnvironment)
		assert.True(t, log.Commands)
		assert.True(t, log.AlertUser)
		assert.False(t, log.CreateInvite)
		assert.Equal(t, "info", log.Level)
		assert.Equal(t, "[%{time}] [%{level}] %{name}: %{message}", log.Format)
		assert.Equal(t, "2006-01-02 15:04:05", log.TimeFormat)
	})

	t.Run("configured", func(t *testing.T) {
		t.Parallel()

		cfg, err := config.New(tree.Tree{
			"token": "secret",
			"log": tree.Tree{
				"channel":       int64(987654321098765432),
				"file":          "bot.log",
				"sentry_dsn":    "https://key@sentry.example.com/1",
				"commands":      false,
				"alert_user":    false,
				"create_invite": true,
				"level":         "debug",
			},
		})
		require.NoError(t, err)

		log := cfg.Log()
		assert.Equal(t, "987654321098765432", log.Channel)
		assert.Equal(t, "bot.log", log.File)
		assert.Equal(t, "https://key@sentry.example.com/1", log.SentryDSN)
		assert.False(t, log.Commands)
		assert.False(t, log.AlertUser)
		assert.True(t, log.CreateInvite)
		assert.Equal(t, "debug", log.Level)
	})

	t.Run("partial block keeps sibling defaults", func(t *testing.T) {
		t.Parallel()

		cfg, err := config.New(tree.Tree{
			"token": "secret",
			"log":   tree.Tree{"level": "warn"},
		})
		require.NoError(t, err)

		log := cfg.Log()
		assert.Equal(t, "warn", log.Level)
		assert.True(t, log.Commands)
		assert.Equal(t, "[%{time}] [%{level}] %{name}: %{message}", log.Format)
	})
}

func TestConfigTree(t *testing.T) {
	t.Parallel()

	t.Run("returns a detached copy", func(t *testing.T) {
		t.Parallel()

		cfg, err := config.New(tree.Tree{"token": "secret"})
		require.NoError(t, err)

		clone := cfg.Tree()
		clone.Set("prefix", "mutated")

		assert.Equal(t, "!", cfg.Prefix())

		fresh, ok := cfg.Tree().Get("prefix")
		require.True(t, ok)
		assert.Equal(t, "!", fresh)
	})

	t.Run("carries merged defaults", func(t *testing.T) {
		t.Parallel()

		cfg, err := config.New(tree.Tree{"token": "secret"})
		require.NoError(t, err)

		level, ok := cfg.Tree().Get("log.level")
		require.True(t, ok)
		assert.Equal(t, "info", level)
	})
}

func TestDefaults(t *testing.T) {
	t.Parallel()

	t.Run("fresh copy per call", func(t *testing.T) {
		t.Parallel()

		first := config.Defaults()
		first.Set("prefix", "mutated")

		prefix, ok := config.Defaults().Get("prefix")
		require.True(t, ok)
		assert.Equal(t, "!", prefix)
	})

	t.Run("absent-by-default keys carry no entry", func(t *testing.T) {
		t.Parallel()

		defaults := config.Defaults()
		for _, path := range []string{
			"token",
			"description",
			"version",
			"color",
			"application_id",
			"help",
			"log.channel",
			"log.file",
			"log.sentry_dsn",
			"log.sentry_environment",
		} {
			_, ok := defaults.Get(path)
			assert.False(t, ok, "expected no default at %q", path)
		}
	})
}
