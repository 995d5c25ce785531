package internal

import (
	"github.com/bwmarrin/discordgo"

	"github.com/cordialdev/cordial/pkg/config"
)

// EventLocale picks the locale for one event. Interactions carry the
// invoking user's client locale, so it wins when present; everything else
// falls back to the configured locale. The bundle's own chain handles
// locales the bot has no catalog for.
func EventLocale(cfg *config.Config, interaction *discordgo.Interaction) string {
	if interaction != nil && interaction.Locale != "" {
		return string(interaction.Locale)
	}
	return cfg.Locale()
}
