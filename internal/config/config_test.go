package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8000", cfg.Port)
	assert.False(t, cfg.Debug)
	assert.Equal(t, "llama3-8b-8192", cfg.Model)
	assert.Equal(t, "llama3-70b-8192", cfg.FallbackModel)
	assert.Equal(t, 1000, cfg.MaxTokens)
	assert.Equal(t, []string{"x", "reddit", "linkedin"}, cfg.Platforms)
	assert.Equal(t, []string{"technology", "ai", "data"}, cfg.Keywords)
	assert.Equal(t, "professional", cfg.Tone)
	assert.Equal(t, "standard", cfg.Preset)
	assert.False(t, cfg.EnableRefresh)
	assert.False(t, cfg.MockData)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("DEBUG", "true")
	t.Setenv("GROQ_API_KEY", "test-key")
	t.Setenv("KEYWORDS", "golang, kubernetes")
	t.Setenv("GROQ_MAX_TOKENS", "2000")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.True(t, cfg.Debug)
	assert.Equal(t, "test-key", cfg.GroqAPIKey)
	assert.Equal(t, []string{"golang", "kubernetes"}, cfg.Keywords, "keyword entries are trimmed")
	assert.Equal(t, 2000, cfg.MaxTokens)
}

func TestLoad_RefreshRequiresAPIKey(t *testing.T) {
	t.Setenv("ENABLE_REFRESH", "true")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "GROQ_API_KEY")

	// Mock mode does not need a credential
	t.Setenv("MOCK_DATA", "true")
	cfg, err := Load()
	require.NoError(t, err)
	assert.True(t, cfg.EnableRefresh)

	// Neither does a key-carrying refresh
	t.Setenv("MOCK_DATA", "false")
	t.Setenv("GROQ_API_KEY", "key")
	_, err = Load()
	assert.NoError(t, err)
}
