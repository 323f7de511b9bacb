// internal/config/config.go
package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config is the process configuration, read once at startup from the
// environment. godotenv preloads a .env file when present.
type Config struct {
	HTTPPort string

	// HistoryEnabled toggles the Redis action queue.
	HistoryEnabled bool
	RedisAddr      string
	RedisDB        int
	HistoryQueue   string

	// ArchiveEnabled toggles Postgres result archival.
	ArchiveEnabled bool
	PostgresDSN    string
}

// Load reads the configuration from the environment.
func Load() Config {
	return Config{
		HTTPPort:       getEnv("HTTP_PORT", "8080"),
		HistoryEnabled: getEnvBool("HISTORY_ENABLED", false),
		RedisAddr:      getEnv("REDIS_ADDR", "localhost:6379"),
		RedisDB:        getEnvInt("REDIS_DB", 0),
		HistoryQueue:   getEnv("HISTORY_QUEUE_NAME", ""),
		ArchiveEnabled: getEnvBool("ARCHIVE_ENABLED", false),
		PostgresDSN:    getEnv("DATABASE_URL", postgresDSNFromParts()),
	}
}

// postgresDSNFromParts assembles a DSN from the discrete POSTGRES_* variables
// when DATABASE_URL is not set.
func postgresDSNFromParts() string {
	user := os.Getenv("POSTGRES_USER")
	if user == "" {
		return ""
	}
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s",
		user,
		os.Getenv("POSTGRES_PASSWORD"),
		getEnv("PG_HOST", "localhost"),
		getEnv("PG_PORT", "5432"),
		os.Getenv("PG_DATABASE"),
	)
}

func getEnv(key, def string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return def
}

func getEnvInt(key string, def int) int {
	s := os.Getenv(key)
	if s == "" {
		return def
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return v
}

func getEnvBool(key string, def bool) bool {
	s := os.Getenv(key)
	if s == "" {
		return def
	}
	v, err := strconv.ParseBool(s)
	if err != nil {
		return def
	}
	return v
}
