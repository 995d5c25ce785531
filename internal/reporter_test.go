package internal

import (
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cordialdev/cordial/pkg/config"
	"github.com/cordialdev/cordial/pkg/i18n"
	"github.com/cordialdev/cordial/pkg/tree"
)

func newReporter(t *testing.T, override tree.Tree) *Reporter {
	t.Helper()

	if override == nil {
		override = tree.Tree{}
	}
	if _, ok := override.Get("token"); !ok {
		override.Set("token", "test-token")
	}

	cfg, err := config.New(override)
	require.NoError(t, err)
	bundle, err := i18n.New()
	require.NoError(t, err)

	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewReporter(nil, config.NewStore(cfg), i18n.NewStore(bundle), log)
}

func TestReporterBuildEmbed(t *testing.T) {
	t.Parallel()

	t.Run("carries the sanitized location and incident id", func(t *testing.T) {
		t.Parallel()
		r := newReporter(t, tree.Tree{"version": "2.0.1"})

		embed := r.buildEmbed(r.config.Current(), Condition{
			Command:   "deploy",
			UserID:    "42",
			GuildID:   "100",
			ChannelID: "200",
			MessageID: "300",
			Err:       errors.New("database on fire"),
			Trace:     Trace{File: "cogs/deploy.go", Line: 17, Function: "runDeploy"},
			Content:   "!deploy prod",
		}, "incident-1")

		fields := map[string]string{}
		for _, f := range embed.Fields {
			fields[f.Name] = f.Value
		}
		assert.Equal(t, "deploy", fields["Command"])
		assert.Equal(t, "<@42>", fields["Author"])
		assert.Equal(t, "cogs/deploy.go", fields["File"])
		assert.Equal(t, "17", fields["Line"])
		assert.Equal(t, "incident-1", fields["Incident"])
		assert.Equal(t, "https://discord.com/channels/100/200/300", fields["Link"])
		assert.Contains(t, embed.Description, "database on fire")

		require.NotNil(t, embed.Footer)
		assert.Contains(t, embed.Footer.Text, "ver. 2.0.1")
	})

	t.Run("skips fields with no value", func(t *testing.T) {
		t.Parallel()
		r := newReporter(t, nil)

		embed := r.buildEmbed(r.config.Current(), Condition{Command: "deploy"}, "incident-2")
		for _, f := range embed.Fields {
			assert.NotEmpty(t, f.Value)
			assert.NotEqual(t, "Link", f.Name)
		}
	})
}

func TestReportWithoutSession(t *testing.T) {
	t.Parallel()

	// No session and no channel: the report is just a log record.
	r := newReporter(t, nil)
	r.Report(Condition{Command: "deploy", Err: errors.New("boom")})
}

func TestCaptureTrace(t *testing.T) {
	t.Parallel()

	trace := CaptureTrace(1)
	assert.True(t, strings.HasSuffix(trace.File, "reporter_test.go"), trace.File)
	assert.NotContains(t, trace.File, "/root/")
	assert.Positive(t, trace.Line)
	assert.Contains(t, trace.Function, "TestCaptureTrace")
}

func TestSanitizeFile(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "internal/bot.go", sanitizeFile("/home/user/src/cordial/internal/bot.go"))
	assert.Equal(t, "bot.go", sanitizeFile("bot.go"))
	assert.Equal(t, "internal/bot.go", sanitizeFile("internal/bot.go"))
}

func TestEscapeCodeBlock(t *testing.T) {
	t.Parallel()

	out := escapeCodeBlock("before ``` after")
	assert.NotContains(t, out, "```")
	assert.Contains(t, out, "before")
}
