/*
config.go - Server configuration

PURPOSE:
Loads server settings from the environment, with an optional .env file
for local development. Every value has a working default so the server
runs with no configuration at all.

SEE ALSO:
- cmd/server/main.go: flag overrides on top of these values
*/
package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds the server settings.
type Config struct {
	// Port the HTTP server listens on.
	Port int

	// DBPath is the sqlite database file. ":memory:" runs without a file.
	DBPath string

	// AllowedOrigins for CORS. "*" allows any origin.
	AllowedOrigins []string
}

// Load reads configuration from the environment. A .env file in the
// working directory is applied first when present; real environment
// variables win over it.
func Load() Config {
	// Missing .env is not an error.
	_ = godotenv.Load()

	return Config{
		Port:           envInt("PORT", 8080),
		DBPath:         envString("DB_PATH", "compensation.db"),
		AllowedOrigins: envList("CORS_ORIGINS", []string{"*"}),
	}
}

func envString(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

func envList(key string, fallback []string) []string {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return fallback
	}
	return out
}
