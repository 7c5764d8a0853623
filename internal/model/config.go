package model

import (
	"os"
	"path/filepath"
	"runtime"
	"time"
)

// Config holds all claimshift settings
type Config struct {
	Store   StoreConfig   `yaml:"store" mapstructure:"store"`
	Session SessionConfig `yaml:"session" mapstructure:"session"`
	Auth    AuthConfig    `yaml:"auth" mapstructure:"auth"`
	Locale  string        `yaml:"locale" mapstructure:"locale"` // Message language (en, fr, ru)
	Batch   BatchConfig   `yaml:"batch" mapstructure:"batch"`
	Log     LogConfig     `yaml:"log" mapstructure:"log"`
}

// StoreConfig configures the sqlite claim store
type StoreConfig struct {
	Path string `yaml:"path" mapstructure:"path"`
}

// SessionConfig configures workflow session expiry
type SessionConfig struct {
	TTL             time.Duration `yaml:"ttl" mapstructure:"ttl"`
	CleanupInterval time.Duration `yaml:"cleanup_interval" mapstructure:"cleanup_interval"`
}

// AuthConfig lists the roles held by the local operator
type AuthConfig struct {
	Roles []string `yaml:"roles" mapstructure:"roles"`
}

// BatchConfig configures concurrent eligibility checks
type BatchConfig struct {
	Workers       int     `yaml:"workers" mapstructure:"workers"`
	RatePerSecond float64 `yaml:"rate_per_second" mapstructure:"rate_per_second"`
	Burst         int     `yaml:"burst" mapstructure:"burst"`
}

// LogConfig configures the zap logger
type LogConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`   // debug, info, warn, error
	Format string `yaml:"format" mapstructure:"format"` // console or json
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Store: StoreConfig{
			Path: filepath.Join(DefaultHomeDir(), "claims.db"),
		},
		Session: SessionConfig{
			TTL:             30 * time.Minute,
			CleanupInterval: 10 * time.Minute,
		},
		Auth: AuthConfig{
			Roles: []string{},
		},
		Locale: "en",
		Batch: BatchConfig{
			Workers:       runtime.NumCPU(),
			RatePerSecond: 50,
			Burst:         10,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// DefaultHomeDir returns ~/.claimshift, or .claimshift when the home directory is unknown
func DefaultHomeDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".claimshift"
	}
	return filepath.Join(home, ".claimshift")
}
