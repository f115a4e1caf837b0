package config

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Environment variables that steer loading itself.
const (
	EnvConfigFile = "WORDDEE_CONFIG"
	EnvDotEnvFile = "WORDDEE_ENV_FILE"

	envPrefix       = "WORDDEE_"
	legacyEnvPrefix = "N8N_"
	defaultDotEnv   = ".env"
)

// legacyKeys maps the variable names used by earlier deployments to config keys.
var legacyKeys = map[string]string{ //nolint:gochecknoglobals // fixed lookup table
	"N8N_SCORER_WEBHOOK":  "scorer_webhook",
	"N8N_SUMMARY_WEBHOOK": "summary_webhook",
}

// Load builds a Config by layering defaults, a .env file, an optional YAML
// file and environment variables.
// Order of precedence (low -> high):
//  1. defaults (New())
//  2. .env file (WORDDEE_ENV_FILE, default ".env"; missing file is ignored).
//     Values only populate variables that are not already set.
//  3. file (YAML) if WORDDEE_CONFIG is set
//  4. legacy env (N8N_SCORER_WEBHOOK, N8N_SUMMARY_WEBHOOK)
//  5. env (prefix WORDDEE_)
func Load(_ context.Context) (*Config, error) {
	if err := loadDotEnv(); err != nil {
		return nil, err
	}

	k := koanf.New(".")

	if path := os.Getenv(EnvConfigFile); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("%w: read %s: %w", ErrLoadConfig, path, err)
		}
	}

	legacy := env.Provider(legacyEnvPrefix, ".", func(s string) string {
		return legacyKeys[s]
	})
	if err := k.Load(legacy, nil); err != nil {
		return nil, fmt.Errorf("%w: legacy env: %w", ErrLoadConfig, err)
	}

	// WORDDEE_SCORER_TIMEOUT_MS -> scorer_timeout_ms (flat keys).
	envProvider := env.Provider(envPrefix, ".", func(s string) string {
		s = strings.ToLower(s)
		return strings.TrimPrefix(s, strings.ToLower(envPrefix))
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("%w: env: %w", ErrLoadConfig, err)
	}

	cfg := *New()
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the fields that have no usable zero value. Missing
// webhooks are valid: the service degrades to the local engine.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Addr) == "" {
		return fmt.Errorf("%w: addr must not be empty", ErrInvalidConfig)
	}
	if c.ScorerTimeoutMS <= 0 {
		return fmt.Errorf("%w: scorer_timeout_ms must be positive", ErrInvalidConfig)
	}
	if c.SummaryTimeoutMS <= 0 {
		return fmt.Errorf("%w: summary_timeout_ms must be positive", ErrInvalidConfig)
	}
	for i, w := range c.Words {
		if strings.TrimSpace(w.Word) == "" {
			return fmt.Errorf("%w: words[%d] has no word", ErrInvalidConfig, i)
		}
	}
	return nil
}

func loadDotEnv() error {
	path := os.Getenv(EnvDotEnvFile)
	if path == "" {
		path = defaultDotEnv
	}
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("%w: read %s: %w", ErrLoadConfig, path, err)
	}
	return nil
}
