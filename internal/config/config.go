package config

import "os"

// Environment modes. Anything other than production exposes the
// interactive API docs.
const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

type Config struct {
	// Addr is the listen address for the HTTP server, e.g. ":8080".
	Addr string
	// Environment selects production vs. development behavior.
	Environment string
}

func Load() *Config {
	return &Config{
		Addr:        getEnv("ADDR", ":8080"),
		Environment: getEnv("ENVIRONMENT", EnvDevelopment),
	}
}

// DocsEnabled reports whether the interactive API documentation routes
// should be mounted.
func (c *Config) DocsEnabled() bool {
	return c.Environment != EnvProduction
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
