// Package config defines service configuration structures and loading hooks.
//
// Conventions:
// - Provide New() to build a Config with defaults.
// - Load layers .env, YAML and environment variables on top of New().
// - External errors are wrapped with this package's sentinel kinds.
package config

import (
	"time"
)

// WordEntry is a word-of-the-day candidate as it appears in config files.
type WordEntry struct {
	Word       string `koanf:"word"`
	Definition string `koanf:"definition"`
}

// Config contains process configuration. It is loaded once at startup and
// treated as read-only afterwards.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// Addr configures the HTTP listen address, e.g. ":8000".
	Addr string `koanf:"addr"`

	// ScorerWebhook is the remote evaluator endpoint. Empty means unconfigured.
	ScorerWebhook string `koanf:"scorer_webhook"`

	// SummaryWebhook is the remote dashboard summary endpoint.
	SummaryWebhook string `koanf:"summary_webhook"`

	// ScorerTimeoutMS bounds one remote scoring attempt.
	ScorerTimeoutMS int `koanf:"scorer_timeout_ms"`

	// SummaryTimeoutMS bounds one summary fetch.
	SummaryTimeoutMS int `koanf:"summary_timeout_ms"`

	// Words overrides the built-in word-of-the-day list when non-empty.
	Words []WordEntry `koanf:"words"`
}

// New creates a Config populated with defaults.
func New() *Config {
	return &Config{
		LogLevel:         "info",
		Addr:             ":8000",
		ScorerTimeoutMS:  30_000,
		SummaryTimeoutMS: 10_000,
	}
}

// ScorerTimeout returns ScorerTimeoutMS as a duration.
func (c *Config) ScorerTimeout() time.Duration {
	return time.Duration(c.ScorerTimeoutMS) * time.Millisecond
}

// SummaryTimeout returns SummaryTimeoutMS as a duration.
func (c *Config) SummaryTimeout() time.Duration {
	return time.Duration(c.SummaryTimeoutMS) * time.Millisecond
}
