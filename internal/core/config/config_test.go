package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("missing file uses defaults", func(t *testing.T) {
		dataDir := t.TempDir()

		cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"), dataDir)
		require.NoError(t, err)

		assert.Equal(t, 50, cfg.MaxEntries)
		assert.Equal(t, time.Second, cfg.PollInterval)
		assert.Equal(t, 2*time.Second, cfg.StatusDuration)
		assert.Equal(t, dataDir, cfg.DataDir)
	})

	t.Run("empty path uses defaults", func(t *testing.T) {
		cfg, err := Load("", t.TempDir())
		require.NoError(t, err)
		assert.Equal(t, 50, cfg.MaxEntries)
	})

	t.Run("reads yaml values", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		content := "max_entries: 100\npoll_interval: 500ms\nstatus_duration: 5s\n"
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

		cfg, err := Load(path, t.TempDir())
		require.NoError(t, err)

		assert.Equal(t, 100, cfg.MaxEntries)
		assert.Equal(t, 500*time.Millisecond, cfg.PollInterval)
		assert.Equal(t, 5*time.Second, cfg.StatusDuration)
	})

	t.Run("partial config keeps defaults", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(path, []byte("max_entries: 25\n"), 0o644))

		cfg, err := Load(path, t.TempDir())
		require.NoError(t, err)

		assert.Equal(t, 25, cfg.MaxEntries)
		assert.Equal(t, time.Second, cfg.PollInterval)
	})

	t.Run("invalid yaml errors", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(path, []byte("max_entries: [nope"), 0o644))

		_, err := Load(path, t.TempDir())
		assert.Error(t, err)
	})

	t.Run("negative capacity rejected", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(path, []byte("max_entries: -1\n"), 0o644))

		_, err := Load(path, t.TempDir())
		assert.ErrorContains(t, err, "max_entries")
	})

	t.Run("empty data dir rejected", func(t *testing.T) {
		_, err := Load("", "")
		assert.ErrorContains(t, err, "data directory")
	})
}

func TestHistoryFile(t *testing.T) {
	cfg := Config{DataDir: "/data/klippy"}
	assert.Equal(t, filepath.Join("/data/klippy", "data.json"), cfg.HistoryFile())
}
