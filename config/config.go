package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Store drivers.
const (
	StoreMemory = "memory"
	StoreFile   = "file"
	StoreMySQL  = "mysql"
)

// Config carries everything the wiring in main needs. It is built once from
// the environment and passed down explicitly; nothing reads env vars after
// startup.
type Config struct {
	Port      string
	JWTSecret string

	StoreDriver string
	StoreFile   string

	// Optional external assistant backend (OpenAI-compatible). Empty API
	// key disables remote calls; every assistant feature then runs on the
	// local heuristics.
	AssistantAPIKey  string
	AssistantBaseURL string
	AssistantModel   string
	AssistantTimeout time.Duration
	AssistantRetries int
	AssistantBackoff time.Duration

	// Optional reply cache.
	RedisAddr string
}

func Load() Config {
	return Config{
		Port:      envOrDefault("PORT", "8080"),
		JWTSecret: envOrDefault("JWT_SECRET", "dev-secret-change-in-production"),

		StoreDriver: strings.ToLower(envOrDefault("STORE_DRIVER", StoreMemory)),
		StoreFile:   envOrDefault("STORE_FILE", "data/bookings.json"),

		AssistantAPIKey:  strings.TrimSpace(os.Getenv("ASSISTANT_API_KEY")),
		AssistantBaseURL: strings.TrimSpace(os.Getenv("ASSISTANT_BASE_URL")),
		AssistantModel:   envOrDefault("ASSISTANT_MODEL", "gpt-4o-mini"),
		AssistantTimeout: envDuration("ASSISTANT_TIMEOUT", 30*time.Second),
		AssistantRetries: envInt("ASSISTANT_RETRIES", 3),
		AssistantBackoff: envDuration("ASSISTANT_RETRY_DELAY", time.Second),

		RedisAddr: strings.TrimSpace(os.Getenv("REDIS_ADDR")),
	}
}

func envOrDefault(key, def string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return def
	}
	return value
}

func envInt(key string, def int) int {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return def
	}
	return n
}

func envDuration(key string, def time.Duration) time.Duration {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	d, err := time.ParseDuration(raw)
	if err != nil || d <= 0 {
		return def
	}
	return d
}
