package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("GEMINI_API_KEY", "api-key")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":5000", cfg.Addr)
	assert.Equal(t, "./summarizer.db", cfg.DBPath)
	assert.Equal(t, "gemini-2.0-flash", cfg.GeminiModel)
	assert.Equal(t, "s3cret", cfg.JWTSecret)
	assert.Equal(t, "api-key", cfg.GeminiAPIKey)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("GEMINI_API_KEY", "api-key")
	t.Setenv("ADDR", ":8081")
	t.Setenv("GEMINI_MODEL", "gemini-2.5-pro")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":8081", cfg.Addr)
	assert.Equal(t, "gemini-2.5-pro", cfg.GeminiModel)
}

func TestLoad_MissingRequired(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	t.Setenv("GEMINI_API_KEY", "api-key")

	_, err := Load()
	assert.Error(t, err, "startup must fail without a signing secret")
}
