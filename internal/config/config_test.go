package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	for _, key := range []string{"PORT", "LLM_BACKEND", "OPENAI_MODEL", "OPENAI_BASE_URL", "REQUEST_TIMEOUT", "ALLOWED_ORIGINS"} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "8501", cfg.Port)
	assert.Equal(t, "langchain", cfg.Backend)
	assert.Equal(t, "gpt-3.5-turbo", cfg.Model)
	assert.Empty(t, cfg.BaseURL)
	assert.Zero(t, cfg.RequestTimeout)
	assert.Equal(t, []string{"*"}, cfg.AllowedOrigins)
}

func TestLoadConfigOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "9000")
	t.Setenv("LLM_BACKEND", "openai")
	t.Setenv("OPENAI_MODEL", "gpt-4o-mini")
	t.Setenv("OPENAI_BASE_URL", "http://localhost:1234/v1")
	t.Setenv("REQUEST_TIMEOUT", "90s")
	t.Setenv("ALLOWED_ORIGINS", "http://a.example,http://b.example")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "9000", cfg.Port)
	assert.Equal(t, "openai", cfg.Backend)
	assert.Equal(t, "gpt-4o-mini", cfg.Model)
	assert.Equal(t, "http://localhost:1234/v1", cfg.BaseURL)
	assert.Equal(t, 90*time.Second, cfg.RequestTimeout)
	assert.Equal(t, []string{"http://a.example", "http://b.example"}, cfg.AllowedOrigins)
}

func TestLoadConfigInvalidBackend(t *testing.T) {
	clearEnv(t)
	t.Setenv("LLM_BACKEND", "ollama")

	_, err := LoadConfig()
	assert.Error(t, err)
}

func TestLoadConfigInvalidTimeout(t *testing.T) {
	clearEnv(t)
	t.Setenv("REQUEST_TIMEOUT", "soon")

	_, err := LoadConfig()
	assert.Error(t, err)
}

func TestLoadConfigNegativeTimeoutDisabled(t *testing.T) {
	clearEnv(t)
	t.Setenv("REQUEST_TIMEOUT", "-5s")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Zero(t, cfg.RequestTimeout)
}
