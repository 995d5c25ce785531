package config

import (
	"strconv"
	"strings"

	"github.com/cordialdev/cordial/pkg/tree"
)

const (
	defaultLogLevel      = "info"
	defaultLogFormat     = "[%{time}] [%{level}] %{name}: %{message}"
	defaultLogTimeFormat = "2006-01-02 15:04:05"
)

// Config is an immutable view over a configuration tree merged onto
// Defaults. Accessors never fail: optional values report presence through a
// second return, and a value of the wrong type falls back to the built-in
// default for its key.
type Config struct {
	tree tree.Tree

	token           string
	prefix          string
	locale          string
	caseInsensitive bool
	hotReload       bool

	description      string
	hasDescription   bool
	version          string
	hasVersion       bool
	color            int
	hasColor         bool
	applicationID    string
	hasApplicationID bool

	help HelpConfig
	log  LogConfig
}

// HelpConfig controls the built-in help command.
type HelpConfig struct {
	Enabled bool
	Command string
	Aliases []string
}

// LogConfig mirrors the log section of the configuration tree. Optional
// string fields are empty when unset.
type LogConfig struct {
	Channel           string
	File              string
	SentryDSN         string
	SentryEnvironment string

	Commands     bool
	AlertUser    bool
	CreateInvite bool

	Level      string
	Format     string
	TimeFormat string
}

// New merges override onto Defaults and validates the result. The override
// may contain raw decoder output (map[string]any or map[any]any nodes); it
// is normalized before merging and never mutated.
//
// A missing or empty token yields a *SchemaError: there is no default a bot
// could run with.
func New(override tree.Tree) (*Config, error) {
	norm := override
	if override != nil {
		n, err := tree.Normalize(override)
		if err != nil {
			return nil, err
		}
		norm = n
	}

	merged := tree.Merge(Defaults(), norm)

	token, ok := stringAt(merged, "token")
	if !ok || strings.TrimSpace(token) == "" {
		return nil, &SchemaError{Path: "token", Reason: "bot token is required"}
	}

	c := &Config{
		tree:            merged,
		token:           token,
		prefix:          stringOr(merged, "prefix", DefaultPrefix),
		locale:          stringOr(merged, "locale", "en"),
		caseInsensitive: boolOr(merged, "case_insensitive", true),
		hotReload:       boolOr(merged, "hot_reload", false),
		help:            helpSection(merged),
		log:             logSection(merged),
	}
	c.description, c.hasDescription = stringAt(merged, "description")
	c.version, c.hasVersion = stringAt(merged, "version")
	c.color, c.hasColor = intAt(merged, "color")
	c.applicationID, c.hasApplicationID = snowflakeAt(merged, "application_id")

	return c, nil
}

// Token returns the bot token. Always non-empty on a constructed Config.
func (c *Config) Token() string { return c.token }

// Prefix returns the text command prefix.
func (c *Config) Prefix() string { return c.prefix }

// Locale returns the configured default locale identifier.
func (c *Config) Locale() string { return c.locale }

// CaseInsensitive reports whether command names match regardless of case.
func (c *Config) CaseInsensitive() bool { return c.caseInsensitive }

// HotReload reports whether configuration and locale files should be
// watched and swapped in at runtime.
func (c *Config) HotReload() bool { return c.hotReload }

// Description returns the bot description, if one was configured.
func (c *Config) Description() (string, bool) { return c.description, c.hasDescription }

// Version returns the bot version string, if one was configured.
func (c *Config) Version() (string, bool) { return c.version, c.hasVersion }

// Color returns the embed accent color, if one was configured.
func (c *Config) Color() (int, bool) { return c.color, c.hasColor }

// ApplicationID returns the application id used for slash command sync, if
// one was configured. Numeric ids are rendered in decimal form.
func (c *Config) ApplicationID() (string, bool) { return c.applicationID, c.hasApplicationID }

// Help returns the help command settings.
func (c *Config) Help() HelpConfig {
	h := c.help
	h.Aliases = append([]string(nil), c.help.Aliases...)
	return h
}

// Log returns the log section settings.
func (c *Config) Log() LogConfig { return c.log }

// Get returns the raw merged value at a dot-separated path. Extension keys
// unknown to the schema stay reachable here.
func (c *Config) Get(path string) (any, bool) { return c.tree.Get(path) }

// Tree returns a deep copy of the merged configuration tree.
func (c *Config) Tree() tree.Tree { return c.tree.Clone() }

func helpSection(t tree.Tree) HelpConfig {
	h := HelpConfig{Enabled: true, Command: DefaultHelpCommand}

	v, ok := t.Get("help")
	if !ok {
		return h
	}
	if b, isBool := v.(bool); isBool {
		h.Enabled = b
		return h
	}

	h.Enabled = boolOr(t, "help.enabled", true)
	h.Command = stringOr(t, "help.command", DefaultHelpCommand)
	h.Aliases = stringListAt(t, "help.aliases")
	return h
}

func logSection(t tree.Tree) LogConfig {
	channel, _ := snowflakeAt(t, "log.channel")
	file, _ := stringAt(t, "log.file")
	dsn, _ := stringAt(t, "log.sentry_dsn")
	env, _ := stringAt(t, "log.sentry_environment")

	return LogConfig{
		Channel:           channel,
		File:              file,
		SentryDSN:         dsn,
		SentryEnvironment: env,
		Commands:          boolOr(t, "log.commands", true),
		AlertUser:         boolOr(t, "log.alert_user", true),
		CreateInvite:      boolOr(t, "log.create_invite", false),
		Level:             stringOr(t, "log.level", defaultLogLevel),
		Format:            stringOr(t, "log.format", defaultLogFormat),
		TimeFormat:        stringOr(t, "log.time_format", defaultLogTimeFormat),
	}
}

func stringAt(t tree.Tree, path string) (string, bool) {
	v, ok := t.Get(path)
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}

func stringOr(t tree.Tree, path, fallback string) string {
	s, ok := stringAt(t, path)
	if !ok || s == "" {
		return fallback
	}
	return s
}

func boolOr(t tree.Tree, path string, fallback bool) bool {
	v, ok := t.Get(path)
	if !ok {
		return fallback
	}
	b, ok := v.(bool)
	if !ok {
		return fallback
	}
	return b
}

func intAt(t tree.Tree, path string) (int, bool) {
	v, ok := t.Get(path)
	if !ok {
		return 0, false
	}
	switch n := v.(type) {
	case int:
		return n, true
	case int64:
		return int(n), true
	case uint64:
		return int(n), true
	case float64:
		if n == float64(int64(n)) {
			return int(n), true
		}
	}
	return 0, false
}

// snowflakeAt reads a Discord id. YAML allows both quoted strings and bare
// integers, so both shapes collapse to a decimal string.
func snowflakeAt(t tree.Tree, path string) (string, bool) {
	v, ok := t.Get(path)
	if !ok {
		return "", false
	}
	switch id := v.(type) {
	case string:
		if strings.TrimSpace(id) == "" {
			return "", false
		}
		return id, true
	case int:
		return strconv.Itoa(id), true
	case int64:
		return strconv.FormatInt(id, 10), true
	case uint64:
		return strconv.FormatUint(id, 10), true
	case float64:
		if id == float64(int64(id)) {
			return strconv.FormatInt(int64(id), 10), true
		}
	}
	return "", false
}

func stringListAt(t tree.Tree, path string) []string {
	v, ok := t.Get(path)
	if !ok {
		return nil
	}

	if s, ok := v.(string); ok {
		if s == "" {
			return nil
		}
		return []string{s}
	}

	items, ok := v.([]any)
	if !ok {
		return nil
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		if s, ok := item.(string); ok && s != "" {
			out = append(out, s)
		}
	}
	return out
}
