package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	for _, k := range []string{
		"PORT", "ENGINE", "GEMINI_API_KEY", "GEMINI_MODEL",
		"ANALYZE_TIMEOUT", "MAX_BODY_BYTES", "CORS_ORIGINS", "LOG_LEVEL", "LOG_FORMAT",
	} {
		t.Setenv(k, "")
	}

	cfg := Load()

	assert.Equal(t, "8000", cfg.Port)
	assert.Equal(t, "gemini", cfg.Engine)
	assert.Equal(t, "gemini-2.5-flash", cfg.GeminiModel)
	assert.Empty(t, cfg.GeminiAPIKey, "credential must not default to anything")
	assert.Equal(t, 60*time.Second, cfg.AnalyzeTimeout)
	assert.Equal(t, int64(1<<20), cfg.MaxBodyBytes)
	assert.Equal(t, []string{"*"}, cfg.CORSOrigins)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("ENGINE", "openai")
	t.Setenv("GEMINI_API_KEY", "test-key")
	t.Setenv("ANALYZE_TIMEOUT", "30s")
	t.Setenv("MAX_BODY_BYTES", "2048")

	cfg := Load()

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "openai", cfg.Engine)
	assert.Equal(t, "test-key", cfg.GeminiAPIKey)
	assert.Equal(t, 30*time.Second, cfg.AnalyzeTimeout)
	assert.Equal(t, int64(2048), cfg.MaxBodyBytes)
}

func TestLoadSplitsCORSOrigins(t *testing.T) {
	t.Setenv("CORS_ORIGINS", "https://a.example, https://b.example ,")

	cfg := Load()

	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSOrigins)
}

func TestLoadInvalidValuesFallBack(t *testing.T) {
	t.Setenv("ANALYZE_TIMEOUT", "soon")
	t.Setenv("MAX_BODY_BYTES", "-5")

	cfg := Load()

	assert.Equal(t, 60*time.Second, cfg.AnalyzeTimeout)
	assert.Equal(t, int64(1<<20), cfg.MaxBodyBytes)
}
