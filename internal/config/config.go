package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"pilotbid/bidboard/internal/logging"
)

// Config holds every runtime setting, loaded once at startup.
type Config struct {
	AppEnv string
	Port   string

	PostgresDSN string
	SQLitePath  string

	CacheBackend  string // "memory" or "redis"
	RedisHost     string
	RedisPort     string
	RedisPassword string

	AssistantEndpoint string
	AssistantAPIKey   string

	ShareSecret   string
	ShareTTLHours int
}

// Load reads .env if present, then the environment. Missing optional
// values fall back to development defaults.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		logging.Debug("no .env file found, using environment", "error", err)
	}

	cfg := &Config{
		AppEnv: getEnv("APP_ENV", "development"),
		Port:   getEnv("PORT", "8080"),

		PostgresDSN: getEnv("DATABASE_URL", defaultPostgresDSN()),
		SQLitePath:  getEnv("SQLITE_PATH", ":memory:"),

		CacheBackend:  getEnv("CACHE_BACKEND", "memory"),
		RedisHost:     getEnv("REDIS_HOST", "localhost"),
		RedisPort:     getEnv("REDIS_PORT", "6379"),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),

		AssistantEndpoint: getEnv("ASSISTANT_ENDPOINT", ""),
		AssistantAPIKey:   getEnv("ASSISTANT_API_KEY", ""),

		ShareSecret:   getEnv("SHARE_SECRET", "dev-share-secret"),
		ShareTTLHours: getEnvAsInt("SHARE_TTL_HOURS", 72),
	}
	return cfg
}

func defaultPostgresDSN() string {
	host := getEnv("PG_HOST", "localhost")
	port := getEnv("PG_PORT", "5432")
	user := getEnv("PG_USER", "postgres")
	pass := getEnv("PG_PASSWORD", "postgres")
	name := getEnv("PG_DATABASE", "bidboard")
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		host, port, user, pass, name)
}

func getEnv(key, fallback string) string {
	if val, ok := os.LookupEnv(key); ok && val != "" {
		return val
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	val := getEnv(key, "")
	if val == "" {
		return fallback
	}
	n, err := strconv.Atoi(val)
	if err != nil {
		logging.Warn("invalid integer env value, using fallback", "key", key, "value", val)
		return fallback
	}
	return n
}
