package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// unset clears a variable for one test while preserving its outer value.
func unset(t *testing.T, key string) {
	t.Helper()
	t.Setenv(key, "")
	os.Unsetenv(key)
}

func TestLoadDefaults(t *testing.T) {
	unset(t, "SEVDESK_API_TOKEN")
	unset(t, "SEVDESK_BASE_URL")
	unset(t, "LOG_LEVEL")
	unset(t, "LOG_OUTPUT")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "https://my.sevdesk.de/api/v1", cfg.BaseURL)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "stderr", cfg.LogOutput)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("SEVDESK_API_TOKEN", "abc123")
	t.Setenv("SEVDESK_BASE_URL", "https://staging.sevdesk.local/api/v1")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "abc123", cfg.APIToken)
	assert.Equal(t, "https://staging.sevdesk.local/api/v1", cfg.BaseURL)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestValidateRequiresToken(t *testing.T) {
	cfg := &Config{}
	assert.EqualError(t, cfg.Validate(), "SEVDESK_API_TOKEN is required")

	cfg.APIToken = "abc123"
	assert.NoError(t, cfg.Validate())
}
