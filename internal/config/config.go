package config

import (
	"log"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	// Server
	Port string
	Env  string

	// CORS
	AllowedOrigins []string

	// Upstream tour source
	UpstreamListURL string
	UpstreamItemURL string
	UpstreamTimeout time.Duration

	// Client-side gateway target
	BackendURL string

	// Local state persistence (wishlist, booking drafts)
	StateBackend string // "file" or "redis"
	StateDir     string
	RedisURL     string

	// Logging
	LogLevel string
}

func Load() *Config {
	// Load .env file in development
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	return &Config{
		// Server
		Port: getEnv("PORT", "5000"),
		Env:  getEnv("ENV", "development"),

		// CORS
		AllowedOrigins: parseStringSlice(getEnv("ALLOWED_ORIGINS", "https://mapmytour.vercel.app,http://localhost:3000")),

		// Upstream
		UpstreamListURL: getEnv("UPSTREAM_LIST_URL", "https://dummyjson.com/c/b3a6-28bd-48d3-9f64"),
		UpstreamItemURL: getEnv("UPSTREAM_ITEM_URL", "https://dummyjson.com/c/d82a-d75d-4727-8f37"),
		UpstreamTimeout: time.Duration(parseInt(getEnv("UPSTREAM_TIMEOUT_SECONDS", "10"), 10)) * time.Second,

		// Client gateway
		BackendURL: getEnv("BACKEND_URL", "http://localhost:5000"),

		// Local state
		StateBackend: getEnv("STATE_BACKEND", "file"),
		StateDir:     getEnv("STATE_DIR", defaultStateDir()),
		RedisURL:     getEnv("REDIS_URL", ""),

		// Logging
		LogLevel: getEnv("LOG_LEVEL", "debug"),
	}
}

func defaultStateDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".tourctl"
	}
	return filepath.Join(home, ".tourctl")
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func parseInt(s string, defaultValue int) int {
	value, err := strconv.Atoi(s)
	if err != nil {
		return defaultValue
	}
	return value
}

func parseStringSlice(s string) []string {
	if s == "" {
		return []string{}
	}
	// Simple split by comma
	var result []string
	start := 0
	for i := 0; i <= len(s); i++ {
		if i == len(s) || s[i] == ',' {
			if start < i {
				result = append(result, s[start:i])
			}
			start = i + 1
		}
	}
	return result
}

// IsDevelopment returns true if running in development mode
func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}

// IsProduction returns true if running in production mode
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}
