package logger_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cordialdev/cordial/pkg/logger"
)

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("console only", func(t *testing.T) {
		t.Parallel()

		log, closeLog, err := logger.New(logger.Config{})
		require.NoError(t, err)
		require.NotNil(t, log)

		assert.NoError(t, closeLog(context.Background()))
	})

	t.Run("file sink receives lines", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "bot.log")
		cfg := fixedConfig()
		cfg.File = path

		log, closeLog, err := logger.New(cfg)
		require.NoError(t, err)

		log.Info("written to disk")
		require.NoError(t, closeLog(context.Background()))

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "[T] [INFO] cordial: written to disk\n", string(data))
	})

	t.Run("file sink appends across restarts", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "bot.log")
		cfg := fixedConfig()
		cfg.File = path

		for _, line := range []string{"first", "second"} {
			log, closeLog, err := logger.New(cfg)
			require.NoError(t, err)
			log.Info(line)
			require.NoError(t, closeLog(context.Background()))
		}

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "[T] [INFO] cordial: first\n[T] [INFO] cordial: second\n", string(data))
	})

	t.Run("unwritable file fails construction", func(t *testing.T) {
		t.Parallel()

		_, _, err := logger.New(logger.Config{File: t.TempDir()})
		assert.Error(t, err)
	})

	t.Run("malformed sentry dsn degrades to console", func(t *testing.T) {
		t.Parallel()

		log, closeLog, err := logger.New(logger.Config{SentryDSN: "not-a-dsn"})
		require.NoError(t, err)
		require.NotNil(t, log)

		log.Info("still alive")
		assert.NoError(t, closeLog(context.Background()))
	})
}

func TestNewNope(t *testing.T) {
	t.Parallel()

	log := logger.NewNope()
	log.Info("dropped")
	log.Error("also dropped")
}
