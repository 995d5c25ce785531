package internal_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cordialdev/cordial/internal"
)

func testCommands() []internal.Command {
	return []internal.Command{
		{
			Name:     "ban",
			Aliases:  []string{"b"},
			Category: "Moderation",
			Brief:    "Ban a member",
			Subcommands: []internal.Command{
				{Name: "temp", Signature: "<member> <duration>", Brief: "Temporary ban"},
			},
		},
		{Name: "kick", Category: "Moderation", Brief: "Kick a member"},
		{Name: "ping", Brief: "Latency check"},
		{Name: "eval", Hidden: true, Category: "Owner"},
	}
}

func TestRegistry(t *testing.T) {
	t.Parallel()

	t.Run("lookup by name", func(t *testing.T) {
		t.Parallel()
		r := internal.NewRegistry(false, testCommands()...)
		c, ok := r.Lookup("ban")
		require.True(t, ok)
		assert.Equal(t, "ban", c.Name)
	})

	t.Run("lookup by alias", func(t *testing.T) {
		t.Parallel()
		r := internal.NewRegistry(false, testCommands()...)
		c, ok := r.Lookup("b")
		require.True(t, ok)
		assert.Equal(t, "ban", c.Name)
	})

	t.Run("case sensitivity follows the flag", func(t *testing.T) {
		t.Parallel()
		sensitive := internal.NewRegistry(false, testCommands()...)
		_, ok := sensitive.Lookup("BAN")
		assert.False(t, ok)

		insensitive := internal.NewRegistry(true, testCommands()...)
		_, ok = insensitive.Lookup("BAN")
		assert.True(t, ok)
	})

	t.Run("hidden commands stay reachable by name", func(t *testing.T) {
		t.Parallel()
		r := internal.NewRegistry(false, testCommands()...)
		_, ok := r.Lookup("eval")
		assert.True(t, ok)
	})

	t.Run("visible excludes hidden commands", func(t *testing.T) {
		t.Parallel()
		r := internal.NewRegistry(false, testCommands()...)
		for _, c := range r.Visible() {
			assert.NotEqual(t, "eval", c.Name)
		}
		assert.Len(t, r.Visible(), 3)
	})

	t.Run("categories sorted with uncategorized under empty string", func(t *testing.T) {
		t.Parallel()
		r := internal.NewRegistry(false, testCommands()...)
		assert.Equal(t, []string{"", "Moderation"}, r.Categories())
	})

	t.Run("category keeps registration order", func(t *testing.T) {
		t.Parallel()
		r := internal.NewRegistry(false, testCommands()...)
		mods := r.Category("Moderation")
		require.Len(t, mods, 2)
		assert.Equal(t, "ban", mods[0].Name)
		assert.Equal(t, "kick", mods[1].Name)
	})

	t.Run("subcommand lookup", func(t *testing.T) {
		t.Parallel()
		r := internal.NewRegistry(false, testCommands()...)
		ban, ok := r.Lookup("ban")
		require.True(t, ok)

		sub, ok := ban.Subcommand("temp", false)
		require.True(t, ok)
		assert.Equal(t, "temp", sub.Name)

		_, ok = ban.Subcommand("perm", false)
		assert.False(t, ok)
	})
}

func TestUsage(t *testing.T) {
	t.Parallel()

	t.Run("plain command", func(t *testing.T) {
		t.Parallel()
		out := internal.Usage("!", internal.Command{Name: "ping"})
		assert.Equal(t, "!ping", out)
	})

	t.Run("signature appended", func(t *testing.T) {
		t.Parallel()
		out := internal.Usage("!", internal.Command{Name: "kick", Signature: "<member> [reason]"})
		assert.Equal(t, "!kick <member> [reason]", out)
	})

	t.Run("aliases render in bracket form", func(t *testing.T) {
		t.Parallel()
		out := internal.Usage("!", internal.Command{Name: "ban", Aliases: []string{"b"}, Signature: "<member>"})
		assert.Equal(t, "![ban|b] <member>", out)
	})

	t.Run("parent path prefixes the subcommand", func(t *testing.T) {
		t.Parallel()
		parent := internal.Command{Name: "ban", Aliases: []string{"b"}}
		sub := internal.Command{Name: "temp", Signature: "<member> <duration>"}
		out := internal.Usage("!", parent, sub)
		assert.Equal(t, "![ban|b] temp <member> <duration>", out)
	})

	t.Run("app usage uses the qualified slash form", func(t *testing.T) {
		t.Parallel()
		parent := internal.Command{Name: "config"}
		sub := internal.Command{Name: "set", Signature: "<key> <value>"}
		assert.Equal(t, "/config set <key> <value>", internal.AppUsage(parent, sub))
	})
}
