package internal_test

import (
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cordialdev/cordial/internal"
	"github.com/cordialdev/cordial/pkg/config"
	"github.com/cordialdev/cordial/pkg/tree"
)

func TestEventLocale(t *testing.T) {
	t.Parallel()

	cfg, err := config.New(tree.Tree{"token": "test-token", "locale": "fr"})
	require.NoError(t, err)

	t.Run("interaction locale wins", func(t *testing.T) {
		t.Parallel()
		interaction := &discordgo.Interaction{Locale: discordgo.EnglishGB}
		assert.Equal(t, "en-GB", internal.EventLocale(cfg, interaction))
	})

	t.Run("empty interaction locale falls back to config", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "fr", internal.EventLocale(cfg, &discordgo.Interaction{}))
	})

	t.Run("plain messages use the configured locale", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "fr", internal.EventLocale(cfg, nil))
	})
}
