package internal_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"testing/fstest"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cordialdev/cordial/internal"
	"github.com/cordialdev/cordial/pkg/config"
	"github.com/cordialdev/cordial/pkg/cooldown"
	"github.com/cordialdev/cordial/pkg/tasks"
	"github.com/cordialdev/cordial/pkg/tree"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newBot(t *testing.T, opts ...internal.Option) *internal.Bot {
	t.Helper()

	opts = append([]internal.Option{
		internal.WithConfigTree(tree.Tree{"token": "test-token"}),
		internal.WithLogger(discardLogger()),
	}, opts...)

	bot, err := internal.New(opts...)
	require.NoError(t, err)
	return bot
}

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("missing token is fatal", func(t *testing.T) {
		t.Parallel()
		_, err := internal.New(
			internal.WithConfigTree(tree.Tree{"prefix": "!"}),
			internal.WithLogger(discardLogger()),
		)
		var schemaErr *config.SchemaError
		require.ErrorAs(t, err, &schemaErr)
		assert.Equal(t, "token", schemaErr.Path)
	})

	t.Run("minimal bot comes up wired", func(t *testing.T) {
		t.Parallel()
		bot := newBot(t)

		require.NotNil(t, bot.Session())
		assert.Equal(t, "Bot test-token", bot.Session().Token)
		assert.Equal(t, "!", bot.Config().Current().Prefix())
		assert.NotNil(t, bot.Locales().Current())
		assert.NotNil(t, bot.Cooldowns())
	})

	t.Run("already prefixed token stays untouched", func(t *testing.T) {
		t.Parallel()
		bot := newBot(t, internal.WithConfigTree(tree.Tree{"token": "Bot abc"}))
		assert.Equal(t, "Bot abc", bot.Session().Token)
	})

	t.Run("commands land in the registry", func(t *testing.T) {
		t.Parallel()
		bot := newBot(t, internal.WithCommands(internal.Command{Name: "ping"}))

		c, ok := bot.Registry().Lookup("ping")
		require.True(t, ok)
		assert.Equal(t, "ping", c.Name)
	})

	t.Run("locale dir merges onto the built-in catalog", func(t *testing.T) {
		t.Parallel()
		fsys := fstest.MapFS{
			"fr.yml": {Data: []byte("command_error:\n  not_found: \"Rien ne correspond.\"\n")},
		}
		bot := newBot(t,
			internal.WithConfigTree(tree.Tree{"token": "test-token", "locale": "fr"}),
			internal.WithLocaleDir(fsys),
		)

		out := bot.UserMessage(internal.Condition{Kind: internal.KindNotFound}, "fr")
		assert.Equal(t, "Rien ne correspond.", out)

		// Keys the French file omits fall back to English.
		out = bot.UserMessage(internal.Condition{Kind: internal.KindInvalidQuotedString}, "fr")
		assert.Equal(t, "Invalid quoted string. Check your quotes and try again.", out)
	})

	t.Run("locale template with an unknown placeholder fails startup", func(t *testing.T) {
		t.Parallel()
		fsys := fstest.MapFS{
			"fr.yml": {Data: []byte("command_error:\n  not_found: \"Rien %{who}\"\n")},
		}
		_, err := internal.New(
			internal.WithConfigTree(tree.Tree{"token": "test-token"}),
			internal.WithLogger(discardLogger()),
			internal.WithLocaleDir(fsys),
		)
		require.Error(t, err)
		assert.ErrorContains(t, err, "fr")
	})

	t.Run("bad cron schedule fails construction", func(t *testing.T) {
		t.Parallel()
		_, err := internal.New(
			internal.WithConfigTree(tree.Tree{"token": "test-token"}),
			internal.WithLogger(discardLogger()),
			internal.WithTasks(tasks.WithCron("cleanup", "not a schedule", func(context.Context) error { return nil })),
		)
		require.Error(t, err)
	})
}

func TestStopRunsShutdownHooks(t *testing.T) {
	t.Parallel()

	t.Run("hooks run in registration order", func(t *testing.T) {
		t.Parallel()
		var order []string
		bot := newBot(t,
			internal.WithShutdownHook(func(context.Context) error {
				order = append(order, "first")
				return nil
			}),
			internal.WithShutdownHook(func(context.Context) error {
				order = append(order, "second")
				return nil
			}),
		)

		require.NoError(t, bot.Stop(context.Background()))
		assert.Equal(t, []string{"first", "second"}, order)
	})

	t.Run("hook failures join the shutdown error", func(t *testing.T) {
		t.Parallel()
		hookErr := errors.New("client already closed")
		laterRan := false
		bot := newBot(t,
			internal.WithShutdownHook(func(context.Context) error { return hookErr }),
			internal.WithShutdownHook(func(context.Context) error {
				laterRan = true
				return nil
			}),
		)

		err := bot.Stop(context.Background())
		require.ErrorIs(t, err, hookErr)
		// A failing hook does not keep later hooks from running.
		assert.True(t, laterRan)
	})
}

func TestTimeoutFooter(t *testing.T) {
	t.Parallel()

	bot := newBot(t)
	assert.Equal(t, "Expires in 15 seconds", bot.TimeoutFooter("en", 15*time.Second))
	assert.Equal(t, "Expires in 3.2 seconds", bot.TimeoutFooter("en", 3200*time.Millisecond))
}

func TestTakeCooldown(t *testing.T) {
	t.Parallel()

	bot := newBot(t, internal.WithCooldownStore(cooldown.NewMemory()))
	t.Cleanup(func() { _ = bot.Cooldowns().Close() })

	rule := cooldown.Rule{Rate: 1, Per: time.Minute, Scope: cooldown.ScopeUser}
	ev := cooldown.Event{UserID: "42"}

	_, ok, err := bot.TakeCooldown(context.Background(), "ping", rule, ev)
	require.NoError(t, err)
	assert.True(t, ok)

	cond, ok, err := bot.TakeCooldown(context.Background(), "ping", rule, ev)
	require.NoError(t, err)
	require.False(t, ok)
	assert.Equal(t, internal.KindOnCooldown, cond.Kind)
	assert.Equal(t, "ping", cond.Command)
	assert.Positive(t, cond.Remaining)

	// Another user has a bucket of their own.
	_, ok, err = bot.TakeCooldown(context.Background(), "ping", rule, cooldown.Event{UserID: "43"})
	require.NoError(t, err)
	assert.True(t, ok)
}
