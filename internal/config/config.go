package config

import (
	"fmt"
	"log/slog"
	"time"

	"expert-assistant/internal/llm"

	"github.com/caarlos0/env/v11"
)

// Config holds the server settings. A zero RequestTimeout disables the
// per-request deadline.
type Config struct {
	Port           string        `env:"PORT" envDefault:"8501"`
	Backend        string        `env:"LLM_BACKEND" envDefault:"langchain"`
	Model          string        `env:"OPENAI_MODEL" envDefault:"gpt-3.5-turbo"`
	BaseURL        string        `env:"OPENAI_BASE_URL"`
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT" envDefault:"0s"`
	AllowedOrigins []string      `env:"ALLOWED_ORIGINS" envDefault:"*" envSeparator:","`
}

// LoadConfig reads the server configuration from the environment. The OpenAI
// credential is deliberately not part of it; it is read on every request.
func LoadConfig() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("error parsing config: %w", err)
	}

	if cfg.Backend != llm.BackendLangChain && cfg.Backend != llm.BackendOpenAI {
		return nil, fmt.Errorf("invalid LLM_BACKEND %q: must be one of %s, %s", cfg.Backend, llm.BackendLangChain, llm.BackendOpenAI)
	}

	if cfg.RequestTimeout < 0 {
		slog.Warn("negative REQUEST_TIMEOUT, disabling request timeout", "value", cfg.RequestTimeout)
		cfg.RequestTimeout = 0
	}

	return &cfg, nil
}
