// Package config loads prepquest settings from a TOML file and PREPQUEST_*
// environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Config holds all runtime settings.
type Config struct {
	// DBPath is the SQLite database file. Empty means the XDG default.
	DBPath   string         `toml:"db_path"`
	Log      LogConfig      `toml:"log"`
	Sync     SyncConfig     `toml:"sync"`
	Server   ServerConfig   `toml:"server"`
	Pomodoro PomodoroConfig `toml:"pomodoro"`
}

// LogConfig selects log verbosity and output format.
type LogConfig struct {
	Level  string `toml:"level" validate:"oneof=debug info warn error"`
	Format string `toml:"format" validate:"oneof=console json"`
}

// SyncConfig configures the progress backend. Sync is disabled when
// BaseURL is empty. Durations are written as strings such as "10s".
type SyncConfig struct {
	BaseURL   string        `toml:"base_url" validate:"omitempty,url"`
	Timeout   time.Duration `toml:"timeout" validate:"gt=0"`
	QueueSize int           `toml:"queue_size" validate:"gte=1,lte=4096"`
	Retry     RetryConfig   `toml:"retry"`
}

// RetryConfig controls backoff for transient sync failures.
type RetryConfig struct {
	MaxAttempts int           `toml:"max_attempts" validate:"gte=1,lte=10"`
	InitialWait time.Duration `toml:"initial_wait" validate:"gt=0"`
	MaxWait     time.Duration `toml:"max_wait" validate:"gtefield=InitialWait"`
	Multiplier  float64       `toml:"multiplier" validate:"gte=1"`
}

// ServerConfig configures the local HTTP API.
type ServerConfig struct {
	Addr string `toml:"addr" validate:"required,hostname_port"`
}

// PomodoroConfig configures the focus timer.
type PomodoroConfig struct {
	DefaultMinutes int `toml:"default_minutes" validate:"gte=1,lte=180"`
	XPPerMinute    int `toml:"xp_per_minute" validate:"gte=0,lte=100"`
}

// Enabled reports whether a sync backend is configured.
func (s SyncConfig) Enabled() bool {
	return s.BaseURL != ""
}

// DefaultConfig returns the settings used when nothing is configured.
func DefaultConfig() Config {
	return Config{
		Log: LogConfig{Level: "info", Format: "console"},
		Sync: SyncConfig{
			Timeout:   10 * time.Second,
			QueueSize: 64,
			Retry: RetryConfig{
				MaxAttempts: 3,
				InitialWait: 500 * time.Millisecond,
				MaxWait:     5 * time.Second,
				Multiplier:  2.0,
			},
		},
		Server:   ServerConfig{Addr: "127.0.0.1:8765"},
		Pomodoro: PomodoroConfig{DefaultMinutes: 25, XPPerMinute: 2},
	}
}

// Load reads the TOML file at path over the defaults and applies the
// environment. A missing file is not an error.
func Load(path string) (Config, error) {
	cfg := DefaultConfig()
	if path != "" {
		if _, err := toml.DecodeFile(path, &cfg); err != nil {
			if !errors.Is(err, os.ErrNotExist) {
				return Config{}, fmt.Errorf("decode config %s: %w", path, err)
			}
		}
	}
	if err := ApplyEnv(&cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// ApplyEnv overrides cfg with any PREPQUEST_* variables that are set.
func ApplyEnv(cfg *Config) error {
	if v := os.Getenv("PREPQUEST_DB"); v != "" {
		cfg.DBPath = v
	}
	if v := os.Getenv("PREPQUEST_LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
	if v := os.Getenv("PREPQUEST_LOG_FORMAT"); v != "" {
		cfg.Log.Format = v
	}
	if v := os.Getenv("PREPQUEST_SYNC_URL"); v != "" {
		cfg.Sync.BaseURL = v
	}
	if v := os.Getenv("PREPQUEST_SYNC_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("PREPQUEST_SYNC_TIMEOUT: %w", err)
		}
		cfg.Sync.Timeout = d
	}
	if v := os.Getenv("PREPQUEST_ADDR"); v != "" {
		cfg.Server.Addr = v
	}
	return nil
}

// Validate checks every field against its constraints.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// XDGConfigHome returns the XDG config home or a default fallback.
func XDGConfigHome() string {
	if v := os.Getenv("XDG_CONFIG_HOME"); v != "" {
		return v
	}
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return "."
	}
	return filepath.Join(home, ".config")
}

// DefaultConfigPath returns the default TOML config path.
func DefaultConfigPath() string {
	return filepath.Join(XDGConfigHome(), "prepquest", "config.toml")
}
