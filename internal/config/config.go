package config

import (
	"fmt"

	"github.com/caarlos0/env/v7"
	"sevdesk-mcp/internal/logger"
)

// Config holds all process configuration, populated from environment
// variables. The .env file (if any) is loaded by main before Load runs.
type Config struct {
	// sevDesk API configuration
	APIToken string `env:"SEVDESK_API_TOKEN"`
	BaseURL  string `env:"SEVDESK_BASE_URL" envDefault:"https://my.sevdesk.de/api/v1"`

	// Logging configuration
	LogLevel      string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat     string `env:"LOG_FORMAT" envDefault:"console"`
	LogTimeFormat string `env:"LOG_TIME_FORMAT" envDefault:"2006-01-02T15:04:05Z07:00"`
	LogOutput     string `env:"LOG_OUTPUT" envDefault:"stderr"`
}

// Load reads configuration from the environment. It does not require the
// API token to be present; callers that need the token (the serve command)
// must call Validate before using it.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("config parsing failed: %w", err)
	}
	return cfg, nil
}

// Validate checks that everything required for talking to sevDesk is set.
func (c *Config) Validate() error {
	if c.APIToken == "" {
		return fmt.Errorf("SEVDESK_API_TOKEN is required")
	}
	return nil
}

// LoggerConfig returns a logger configuration from the main config
func (c *Config) LoggerConfig() logger.LogConfig {
	return logger.LogConfig{
		Level:      c.LogLevel,
		Format:     c.LogFormat,
		TimeFormat: c.LogTimeFormat,
		Output:     c.LogOutput,
	}
}
