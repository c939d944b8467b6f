package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaultsWithoutFile(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("XDG_DATA_HOME", "/data")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/data", "codepad", "saves.db"), cfg.Store.Path)
	assert.Equal(t, "saves", cfg.Store.Bucket)
	assert.Equal(t, time.Second, cfg.Store.Timeout)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoadFileAndEnvOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "codepad.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
store:
  path: /tmp/x.db
  bucket: mine
  timeout: 3s
log:
  level: DEBUG
`), 0o644))
	t.Setenv("CODEPAD_STORE_BUCKET", "fromenv")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/tmp/x.db", cfg.Store.Path)
	assert.Equal(t, "fromenv", cfg.Store.Bucket)
	assert.Equal(t, 3*time.Second, cfg.Store.Timeout)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoadExplicitMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Log.Level = "loud"
	assert.Error(t, cfg.Validate())

	cfg = DefaultConfig()
	cfg.Store.Bucket = " "
	assert.Error(t, cfg.Validate())

	cfg = DefaultConfig()
	cfg.Store.Timeout = 0
	require.NoError(t, cfg.Validate())
	assert.Equal(t, time.Second, cfg.Store.Timeout)
}
