package config

import (
	"fmt"
	"os"
)

// Config is captured once at startup and never mutated afterwards; it is
// the only process-wide state besides the model client itself.
type Config struct {
	Port         string
	LogLevel     string
	StaticDir    string
	GeminiAPIKey string
	GeminiModel  string

	// Upload limits
	MaxUploadSize int64
}

func Load() (*Config, error) {
	cfg := &Config{
		Port:          getEnv("PORT", "3000"),
		LogLevel:      getEnv("LOG_LEVEL", "info"),
		StaticDir:     getEnv("STATIC_DIR", "public"),
		GeminiAPIKey:  getEnv("GEMINI_API_KEY", ""),
		GeminiModel:   getEnv("GEMINI_MODEL", "gemini-1.5-flash-latest"),
		MaxUploadSize: 10 * 1024 * 1024,
	}

	if cfg.GeminiAPIKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY is required")
	}

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
