package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"

	"github.com/cordialdev/cordial/pkg/tree"
)

// envOverlay carries the values the environment may supply or override.
type envOverlay struct {
	Token     string `env:"DISCORD_TOKEN"`
	SentryDSN string `env:"SENTRY_DSN"`
}

// Load reads the configuration file at path, applies the environment
// overlay and constructs the Config. The file may omit token entirely when
// DISCORD_TOKEN is set.
func Load(path string) (*Config, error) {
	t, err := LoadFile(path)
	if err != nil {
		return nil, err
	}
	if err := applyEnv(t); err != nil {
		return nil, err
	}
	return New(t)
}

// LoadFile parses the file at path into a configuration tree. The format
// follows the extension: .toml, .yml or .yaml.
func LoadFile(path string) (tree.Tree, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: reading %q: %w", path, err)
	}
	return Parse(data, filepath.Ext(path))
}

// Parse decodes data in the named format into a configuration tree. Format
// is a file extension with or without the leading dot: "toml", "yml",
// "yaml".
func Parse(data []byte, format string) (tree.Tree, error) {
	format = strings.ToLower(strings.TrimPrefix(format, "."))

	var raw map[string]any
	switch format {
	case "yml", "yaml":
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("%w: %s", ErrInvalidFile, err)
		}
	case "toml":
		if err := toml.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("%w: %s", ErrInvalidFile, err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}

	if raw == nil {
		return tree.Tree{}, nil
	}

	t, err := tree.Normalize(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidFile, err)
	}
	return t, nil
}

// applyEnv overlays environment values onto t. The environment wins over
// file values so deployments can rotate secrets without editing files.
func applyEnv(t tree.Tree) error {
	var overlay envOverlay
	if err := env.Parse(&overlay); err != nil {
		return fmt.Errorf("config: parsing environment: %w", err)
	}

	if overlay.Token != "" {
		t.Set("token", overlay.Token)
	}
	if overlay.SentryDSN != "" {
		t.Set("log.sentry_dsn", overlay.SentryDSN)
	}
	return nil
}
