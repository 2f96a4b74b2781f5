// Package config holds the immutable process configuration for the prompt
// optimizer service. It is loaded once at startup from the environment and
// passed explicitly into the components that need it; nothing in the service
// reads ambient state after that.
package config

import (
	"strings"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/brenonun3s/project-llm-optimizer/utils"
)

// Config carries every process-wide setting. GeminiAPIKey is the only
// required external input; when it is absent the service still starts and
// answers every optimization call with a service-unavailable error until
// the credential is corrected.
type Config struct {
	GeminiAPIKey    string         `env:"GEMINI_API_KEY"`
	Model           string         `env:"OPTIMIZER_MODEL" envDefault:"gemini-2.5-flash"`
	Port            string         `env:"OPTIMIZER_PORT" envDefault:"8000"`
	Timeout         time.Duration  `env:"OPTIMIZER_TIMEOUT" envDefault:"60s"`
	LogLevel        utils.LogLevel `env:"OPTIMIZER_LOG_LEVEL" envDefault:"INFO"`
	MaxPromptTokens int            `env:"OPTIMIZER_MAX_PROMPT_TOKENS" envDefault:"4096"`

	// Outbound pacing towards the generation API. One request per
	// RateEvery with bursts of RateBurst.
	RateEvery time.Duration `env:"OPTIMIZER_RATE_EVERY" envDefault:"1s"`
	RateBurst int           `env:"OPTIMIZER_RATE_BURST" envDefault:"2"`
}

// LoadConfig reads the configuration from the environment. A missing
// credential is not an error here; callers decide how to degrade.
func LoadConfig() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// HasCredential reports whether a generation API key is configured.
func (c *Config) HasCredential() bool {
	return strings.TrimSpace(c.GeminiAPIKey) != ""
}

type ConfigOption func(*Config)

// NewConfig returns a Config with the same defaults the environment
// loader applies, optionally adjusted through options. Used by tests and
// by callers that configure the service programmatically.
func NewConfig(opts ...ConfigOption) *Config {
	cfg := &Config{
		Model:           "gemini-2.5-flash",
		Port:            "8000",
		Timeout:         60 * time.Second,
		LogLevel:        utils.LogLevelInfo,
		MaxPromptTokens: 4096,
		RateEvery:       time.Second,
		RateBurst:       2,
	}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

func SetAPIKey(key string) ConfigOption {
	return func(c *Config) {
		c.GeminiAPIKey = key
	}
}

func SetModel(model string) ConfigOption {
	return func(c *Config) {
		c.Model = model
	}
}

func SetPort(port string) ConfigOption {
	return func(c *Config) {
		c.Port = port
	}
}

func SetTimeout(timeout time.Duration) ConfigOption {
	return func(c *Config) {
		c.Timeout = timeout
	}
}

func SetLogLevel(level utils.LogLevel) ConfigOption {
	return func(c *Config) {
		c.LogLevel = level
	}
}

func SetMaxPromptTokens(maxTokens int) ConfigOption {
	return func(c *Config) {
		if maxTokens < 1 {
			maxTokens = 1
		}
		c.MaxPromptTokens = maxTokens
	}
}

func SetRateLimit(every time.Duration, burst int) ConfigOption {
	return func(c *Config) {
		c.RateEvery = every
		c.RateBurst = burst
	}
}
