package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds all application configuration.
// Values are loaded from environment variables with sensible defaults.
type Config struct {
	// Server
	Port          int
	LogLevel      string
	AllowedOrigin string // SPA origin for CORS

	// Upstreams
	CoreAPIURL      string
	EvolutionAPIURL string
	EvolutionAPIKey string

	// HTTP client
	HTTPTimeout time.Duration

	// Resilience
	MaxRetries     int
	InitialBackoff time.Duration
	MaxConcurrency int

	// Polling / caching
	StatusCacheTTL      time.Duration // WhatsApp status snapshot
	GatewayPollInterval time.Duration // admin gateway health watcher

	// Observability
	OTLPEndpoint string

	// Sessions
	JWTSecret  string
	SessionTTL time.Duration
}

// Load reads configuration from environment variables with defaults.
func Load() *Config {
	return &Config{
		Port:          getEnvInt("PORT", 8080),
		LogLevel:      getEnv("LOG_LEVEL", "info"),
		AllowedOrigin: getEnv("ALLOWED_ORIGIN", "http://localhost:5173"),

		CoreAPIURL:      getEnv("CORE_API_URL", "http://localhost:8000"),
		EvolutionAPIURL: getEnv("EVOLUTION_API_URL", "http://localhost:8081"),
		EvolutionAPIKey: getEnv("EVOLUTION_API_KEY", ""),

		HTTPTimeout: getEnvDuration("HTTP_TIMEOUT", 10*time.Second),

		MaxRetries:     getEnvInt("MAX_RETRIES", 3),
		InitialBackoff: getEnvDuration("INITIAL_BACKOFF", 100*time.Millisecond),
		MaxConcurrency: getEnvInt("MAX_CONCURRENCY", 50),

		StatusCacheTTL:      getEnvDuration("STATUS_CACHE_TTL", 15*time.Second),
		GatewayPollInterval: getEnvDuration("GATEWAY_POLL_INTERVAL", 30*time.Second),

		OTLPEndpoint: getEnv("OTEL_EXPORTER_OTLP_ENDPOINT", "localhost:4317"),

		JWTSecret:  getEnv("JWT_SECRET", "inmonea-default-dev-secret-change-me"),
		SessionTTL: getEnvDuration("SESSION_TTL", time.Hour),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
