package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	Addr          string
	MongoURI      string
	MongoDatabase string

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	NatsURL string

	MapsAPIKey string

	// Per-caller limit for the places proxy endpoints.
	SearchRateWindow time.Duration
	SearchRateLimit  int

	// Global requests-per-second budget against the provider.
	UpstreamRPS float64
}

// Load reads configuration from the environment. Every value has a default
// except the Mongo URI and Maps key, which have no sensible ones; main
// decides whether their absence is fatal.
func Load() *Config {
	return &Config{
		Addr:          getEnvAsString("ADDR", ":8080"),
		MongoURI:      os.Getenv("MONGODB_URI"),
		MongoDatabase: getEnvAsString("MONGODB_DATABASE", "roam"),

		RedisAddr:     os.Getenv("REDIS_ADDR"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		RedisDB:       getEnvAsInt("REDIS_DB", 0),

		NatsURL: os.Getenv("NATS_URL"),

		MapsAPIKey: os.Getenv("MAPS_KEY"),

		SearchRateWindow: getEnvAsDuration("SEARCH_RATE_WINDOW", time.Minute),
		SearchRateLimit:  getEnvAsInt("SEARCH_RATE_LIMIT", 60),

		UpstreamRPS: getEnvAsFloat("UPSTREAM_RPS", 10),
	}
}

func getEnvAsString(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseFloat(value, 64); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if parsed, err := time.ParseDuration(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}
