// Package config provides configuration for the support backend.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds the server configuration, read once at startup.
type Config struct {
	// Server settings
	HTTPPort int `env:"HTTP_PORT" envDefault:"8000"`

	// Database
	DatabaseURL string `env:"DATABASE_URL" envDefault:"file:sessions.db?_journal_mode=WAL&_busy_timeout=5000"`

	// Static FAQ source (.json, .yaml or .yml)
	FAQFile string `env:"FAQ_FILE" envDefault:"data/faqs.json"`

	// Reply generation. An empty API key selects the offline placeholder.
	OpenAIAPIKey  string        `env:"OPENAI_API_KEY"`
	OpenAIModel   string        `env:"OPENAI_MODEL" envDefault:"gpt-4o-mini"`
	OpenAIBaseURL string        `env:"OPENAI_BASE_URL"`
	LLMTimeout    time.Duration `env:"LLM_TIMEOUT" envDefault:"30s"`

	// Optional rego module replacing the built-in escalation rule
	EscalationPolicyFile string `env:"ESCALATION_POLICY_FILE"`

	// Logging
	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"json"`
}

// Load reads an optional .env file and then parses the environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env file: %w", err)
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}
	cfg.OpenAIAPIKey = strings.TrimSpace(cfg.OpenAIAPIKey)
	return &cfg, nil
}

// LiveReplies reports whether an API credential is configured.
func (c *Config) LiveReplies() bool {
	return c.OpenAIAPIKey != ""
}
