// Package config loads settings from the environment and an optional .env
// file.
package config

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"

	"github.com/abhisek/casefile/internal/i18n"
)

// Prefix is prepended to every variable name, e.g. CASEFILE_DB.
const Prefix = "casefile"

// Config holds every runtime setting. Field names map to prefixed
// variables only (CASEFILE_LOG_LEVEL); bare names such as LANG are ignored.
type Config struct {
	// DB is the SQLite database path. Empty means the default data dir.
	DB string `split_words:"true"`

	// Content is an external catalog file. Empty means the embedded one.
	Content string `split_words:"true"`

	Lang string `split_words:"true" default:"en"`

	// LogFile receives log output. Empty means next to the database; "-"
	// means stderr.
	LogFile  string `split_words:"true"`
	LogLevel string `split_words:"true" default:"info"`

	// AdvanceDelay is how long a solved story clue stays on screen.
	AdvanceDelay time.Duration `split_words:"true" default:"1500ms"`

	// SnapshotKeep is how many game-state snapshots are retained.
	SnapshotKeep int `split_words:"true" default:"20"`
}

// Load reads .env (if present) and then the environment.
func Load() (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process(Prefix, &cfg); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return &cfg, nil
}

// Validate checks values that envconfig cannot. Call it again after
// applying flag overrides.
func (c *Config) Validate() error {
	if c.SnapshotKeep < 1 {
		return fmt.Errorf("SNAPSHOT_KEEP must be at least 1, got %d", c.SnapshotKeep)
	}
	if _, ok := i18n.Lookup(c.Lang); !ok {
		return fmt.Errorf("unsupported language %q (supported: %s)", c.Lang, i18n.SupportedList())
	}
	return nil
}

// Language returns the configured display language.
func (c *Config) Language() i18n.Language {
	if lang, ok := i18n.Lookup(c.Lang); ok {
		return lang
	}
	return i18n.Default
}
