package config

import (
	"os"
	"strconv"
	"time"
)

// Search backend selectors accepted in SEARCH_BACKEND.
const (
	BackendPostgres      = "postgres"
	BackendElasticsearch = "elasticsearch"
)

// Config holds runtime configuration parsed from environment variables.
type Config struct {
	HTTPAddr        string
	DBConnString    string
	ESURL           string
	SearchBackend   string
	ShutdownTimeout time.Duration
}

// FromEnv builds Config with local-development defaults, overridden by
// environment variables.
func FromEnv() Config {
	return Config{
		HTTPAddr:        envOrDefault("HTTP_ADDR", ":3000"),
		DBConnString:    envOrDefault("DB_DSN", "postgres://localhost:5432/clees_keys?sslmode=disable"),
		ESURL:           envOrDefault("ES_URL", "http://localhost:9200"),
		SearchBackend:   envOrDefault("SEARCH_BACKEND", BackendPostgres),
		ShutdownTimeout: envDuration("SHUTDOWN_TIMEOUT_SECONDS", 10*time.Second),
	}
}

func envOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		seconds, err := strconv.Atoi(v)
		if err == nil {
			return time.Duration(seconds) * time.Second
		}
	}
	return def
}
