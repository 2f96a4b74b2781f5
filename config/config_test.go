package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brenonun3s/project-llm-optimizer/utils"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("OPTIMIZER_MODEL", "")
	t.Setenv("OPTIMIZER_PORT", "")
	t.Setenv("OPTIMIZER_TIMEOUT", "")
	t.Setenv("OPTIMIZER_LOG_LEVEL", "")
	t.Setenv("OPTIMIZER_MAX_PROMPT_TOKENS", "")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "gemini-2.5-flash", cfg.Model)
	assert.Equal(t, "8000", cfg.Port)
	assert.Equal(t, 60*time.Second, cfg.Timeout)
	assert.Equal(t, utils.LogLevelInfo, cfg.LogLevel)
	assert.Equal(t, 4096, cfg.MaxPromptTokens)
	assert.False(t, cfg.HasCredential())
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "test-key")
	t.Setenv("OPTIMIZER_MODEL", "gemini-2.0-flash")
	t.Setenv("OPTIMIZER_PORT", "9090")
	t.Setenv("OPTIMIZER_TIMEOUT", "15s")
	t.Setenv("OPTIMIZER_LOG_LEVEL", "DEBUG")
	t.Setenv("OPTIMIZER_MAX_PROMPT_TOKENS", "1024")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "test-key", cfg.GeminiAPIKey)
	assert.Equal(t, "gemini-2.0-flash", cfg.Model)
	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, 15*time.Second, cfg.Timeout)
	assert.Equal(t, utils.LogLevelDebug, cfg.LogLevel)
	assert.Equal(t, 1024, cfg.MaxPromptTokens)
	assert.True(t, cfg.HasCredential())
}

func TestLoadConfigInvalidLogLevel(t *testing.T) {
	t.Setenv("OPTIMIZER_LOG_LEVEL", "LOUD")

	_, err := LoadConfig()
	require.Error(t, err)
}

func TestHasCredentialWhitespace(t *testing.T) {
	cfg := NewConfig(SetAPIKey("   "))
	assert.False(t, cfg.HasCredential())
}

func TestConfigOptions(t *testing.T) {
	cfg := NewConfig(
		SetAPIKey("k"),
		SetModel("gemini-1.5-pro"),
		SetPort("8081"),
		SetTimeout(5*time.Second),
		SetLogLevel(utils.LogLevelWarn),
		SetMaxPromptTokens(0),
		SetRateLimit(2*time.Second, 1),
	)

	assert.Equal(t, "k", cfg.GeminiAPIKey)
	assert.Equal(t, "gemini-1.5-pro", cfg.Model)
	assert.Equal(t, "8081", cfg.Port)
	assert.Equal(t, 5*time.Second, cfg.Timeout)
	assert.Equal(t, utils.LogLevelWarn, cfg.LogLevel)
	assert.Equal(t, 1, cfg.MaxPromptTokens, "max tokens is clamped to at least 1")
	assert.Equal(t, 2*time.Second, cfg.RateEvery)
	assert.Equal(t, 1, cfg.RateBurst)
}
