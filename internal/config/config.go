package config

import (
	"os"
	"strings"
)

// Config holds the application configuration.
// The engine is stateless, so there is no database or auth secret to carry.
type Config struct {
	// Environment
	Environment string
	Port        string

	// Observability
	SentryDSN           string // Sentry DSN for error tracking
	CloudWatchNamespace string // Namespace for production custom metrics

	// HTTP
	CORSAllowedOrigins []string // "*" allows any origin

	// Fallback key when a request or CLI call omits one
	DefaultKeyRoot string
	DefaultKeyMode string
}

func Load() *Config {
	return &Config{
		Environment:         getEnv("ENVIRONMENT", "development"),
		Port:                getEnv("PORT", "8080"),
		SentryDSN:           getEnv("SENTRY_DSN", ""),
		CloudWatchNamespace: getEnv("CLOUDWATCH_NAMESPACE", "MAGDA/Harmony"),
		CORSAllowedOrigins:  splitList(getEnv("CORS_ALLOWED_ORIGINS", "*")),
		DefaultKeyRoot:      getEnv("DEFAULT_KEY_ROOT", "C"),
		DefaultKeyMode:      getEnv("DEFAULT_KEY_MODE", "major"),
	}
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value != "" {
		return value
	}
	return defaultValue
}

func splitList(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// IsProduction reports whether production-only integrations should be enabled
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}
