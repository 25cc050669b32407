package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/turntable/pkg/types"
)

func TestLoadConfig(t *testing.T) {
	t.Run("creates default config on first run", func(t *testing.T) {
		dir := filepath.Join(t.TempDir(), "fresh")

		cfg, err := loadConfig(dir)
		require.NoError(t, err)

		assert.Equal(t, types.BackendSQLite, cfg.GetString(cfgKeyBackend))
		assert.Empty(t, cfg.GetString(cfgKeyDataDir))

		_, err = os.Stat(filepath.Join(dir, configFileExt))
		assert.NoError(t, err)
	})

	t.Run("reads existing config", func(t *testing.T) {
		dir := t.TempDir()
		content := "backend: sqlite\ndata_dir: /tmp/turntable-data\n"
		require.NoError(t, os.WriteFile(filepath.Join(dir, configFileExt), []byte(content), 0o644))

		cfg, err := loadConfig(dir)
		require.NoError(t, err)
		assert.Equal(t, "/tmp/turntable-data", cfg.GetString(cfgKeyDataDir))
	})

	t.Run("does not overwrite existing config", func(t *testing.T) {
		dir := t.TempDir()
		content := "backend: sqlite\ndata_dir: /keep/me\n"
		path := filepath.Join(dir, configFileExt)
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

		_, err := loadConfig(dir)
		require.NoError(t, err)

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, content, string(data))
	})
}
