package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{
		"ENVIRONMENT", "PORT", "SENTRY_DSN", "CLOUDWATCH_NAMESPACE",
		"CORS_ALLOWED_ORIGINS", "DEFAULT_KEY_ROOT", "DEFAULT_KEY_MODE",
	} {
		t.Setenv(key, "")
	}

	cfg := Load()

	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, "8080", cfg.Port)
	assert.Empty(t, cfg.SentryDSN)
	assert.Equal(t, "MAGDA/Harmony", cfg.CloudWatchNamespace)
	assert.Equal(t, []string{"*"}, cfg.CORSAllowedOrigins)
	assert.Equal(t, "C", cfg.DefaultKeyRoot)
	assert.Equal(t, "major", cfg.DefaultKeyMode)
	assert.False(t, cfg.IsProduction())
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("ENVIRONMENT", "production")
	t.Setenv("PORT", "9090")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example,,")
	t.Setenv("DEFAULT_KEY_ROOT", "Eb")
	t.Setenv("DEFAULT_KEY_MODE", "dorian")

	cfg := Load()

	assert.True(t, cfg.IsProduction())
	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSAllowedOrigins)
	assert.Equal(t, "Eb", cfg.DefaultKeyRoot)
	assert.Equal(t, "dorian", cfg.DefaultKeyMode)
}
