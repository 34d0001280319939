package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	svc := NewConfigServiceAt(filepath.Join(t.TempDir(), "missing.toml"))

	cfg, err := svc.Load()
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadFromPathTOML(t *testing.T) {
	path := writeFile(t, "config.toml", `version = 1
base_url = "http://movies.internal:9000"
log_file = "/tmp/ms.log"
debug = true
request_timeout = "5s"

[ui]
show_scores = false
page_size = 50
`)

	cfg, err := NewConfigService().LoadFromPath(path)
	require.NoError(t, err)

	assert.Equal(t, "http://movies.internal:9000", cfg.BaseURL)
	assert.Equal(t, "/tmp/ms.log", cfg.LogFile)
	assert.True(t, cfg.Debug)
	assert.False(t, cfg.UISettings.ShowScores)
	assert.Equal(t, 50, cfg.UISettings.PageSize)

	timeout, err := cfg.Timeout()
	require.NoError(t, err)
	assert.Equal(t, 5*time.Second, timeout)
}

func TestLoadFromPathYAML(t *testing.T) {
	path := writeFile(t, "config.yaml", `base_url: http://yaml.example
ui:
  page_size: 10
`)

	cfg, err := NewConfigService().LoadFromPath(path)
	require.NoError(t, err)

	assert.Equal(t, "http://yaml.example", cfg.BaseURL)
	assert.Equal(t, 10, cfg.UISettings.PageSize)
	assert.True(t, cfg.UISettings.ShowScores, "unset fields keep their defaults")
	assert.Equal(t, "moviesearch.log", cfg.LogFile)
}

func TestLoadFromPathErrors(t *testing.T) {
	t.Run("missing", func(t *testing.T) {
		_, err := NewConfigService().LoadFromPath(filepath.Join(t.TempDir(), "nope.toml"))
		require.Error(t, err)
		assert.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("malformed", func(t *testing.T) {
		path := writeFile(t, "bad.toml", "base_url = \n")
		_, err := NewConfigService().LoadFromPath(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to parse config")
	})
}

func TestEnvironmentOverrides(t *testing.T) {
	t.Setenv("MOVIESEARCH_BASE_URL", "http://env.example")
	t.Setenv("MOVIESEARCH_UI_PAGE_SIZE", "5")

	path := writeFile(t, "config.toml", `base_url = "http://file.example"`)
	cfg, err := NewConfigService().LoadFromPath(path)
	require.NoError(t, err)

	assert.Equal(t, "http://env.example", cfg.BaseURL)
	assert.Equal(t, 5, cfg.UISettings.PageSize)
}

func TestEnvironmentOverrideInvalid(t *testing.T) {
	t.Setenv("MOVIESEARCH_DEBUG", "not-a-boolean")

	cfg, err := NewConfigServiceAt(filepath.Join(t.TempDir(), "missing.toml")).Load()
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "load config error")
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	svc := NewConfigServiceAt(path)

	cfg := DefaultConfig()
	cfg.BaseURL = "http://saved.example"
	require.NoError(t, svc.Save(cfg))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "http://saved.example")

	loaded, err := svc.Load()
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestTimeout(t *testing.T) {
	cfg := DefaultConfig()
	d, err := cfg.Timeout()
	require.NoError(t, err)
	assert.Zero(t, d)

	cfg.RequestTimeout = "soon"
	_, err = cfg.Timeout()
	assert.Error(t, err)
}
