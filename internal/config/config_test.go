package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"PREPQUEST_DB", "PREPQUEST_LOG_LEVEL", "PREPQUEST_LOG_FORMAT",
		"PREPQUEST_SYNC_URL", "PREPQUEST_SYNC_TIMEOUT", "PREPQUEST_ADDR",
	} {
		t.Setenv(k, "")
	}
}

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())
	assert.False(t, cfg.Sync.Enabled())
}

func TestLoadMissingFile(t *testing.T) {
	clearEnv(t)
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadFile(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
db_path = "/tmp/pq.db"

[log]
level = "debug"
format = "json"

[sync]
base_url = "https://progress.example.com"
timeout = "3s"

[sync.retry]
max_attempts = 5

[pomodoro]
default_minutes = 50
`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/tmp/pq.db", cfg.DBPath)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.True(t, cfg.Sync.Enabled())
	assert.Equal(t, 3*time.Second, cfg.Sync.Timeout)
	assert.Equal(t, 5, cfg.Sync.Retry.MaxAttempts)
	assert.Equal(t, 500*time.Millisecond, cfg.Sync.Retry.InitialWait, "unset keys keep defaults")
	assert.Equal(t, 50, cfg.Pomodoro.DefaultMinutes)
}

func TestLoadEnvOverridesFile(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[log]\nlevel = \"warn\"\n"), 0o644))

	t.Setenv("PREPQUEST_LOG_LEVEL", "error")
	t.Setenv("PREPQUEST_SYNC_URL", "http://localhost:9000")
	t.Setenv("PREPQUEST_SYNC_TIMEOUT", "250ms")
	t.Setenv("PREPQUEST_ADDR", "127.0.0.1:9999")
	t.Setenv("PREPQUEST_DB", "/data/x.db")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "error", cfg.Log.Level)
	assert.Equal(t, "http://localhost:9000", cfg.Sync.BaseURL)
	assert.Equal(t, 250*time.Millisecond, cfg.Sync.Timeout)
	assert.Equal(t, "127.0.0.1:9999", cfg.Server.Addr)
	assert.Equal(t, "/data/x.db", cfg.DBPath)
}

func TestLoadRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		body string
		env  map[string]string
	}{
		{name: "bad level", body: "[log]\nlevel = \"loud\"\n"},
		{name: "bad format", body: "[log]\nformat = \"xml\"\n"},
		{name: "bad url", body: "[sync]\nbase_url = \"not a url\"\n"},
		{name: "zero attempts", body: "[sync.retry]\nmax_attempts = 0\n"},
		{name: "max below initial", body: "[sync.retry]\ninitial_wait = \"10s\"\nmax_wait = \"1s\"\n"},
		{name: "bad addr", body: "[server]\naddr = \"nowhere\"\n"},
		{name: "malformed toml", body: "[log\n"},
		{name: "bad env duration", env: map[string]string{"PREPQUEST_SYNC_TIMEOUT": "soon"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			path := filepath.Join(t.TempDir(), "config.toml")
			require.NoError(t, os.WriteFile(path, []byte(tt.body), 0o644))
			_, err := Load(path)
			assert.Error(t, err)
		})
	}
}

func TestDefaultConfigPath(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/xdg")
	assert.Equal(t, filepath.Join("/xdg", "prepquest", "config.toml"), DefaultConfigPath())
}
