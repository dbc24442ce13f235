package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Config holds all configuration for the application
type Config struct {
	// Server configuration
	Port  string
	Debug bool

	// Groq / LLM configuration
	GroqAPIKey    string
	Model         string
	FallbackModel string
	MaxTokens     int

	// Default analysis parameters, used when a request omits them
	// and by the scheduled refresher
	Platforms []string
	Keywords  []string
	Tone      string
	Preset    string

	// Scheduled refresh configuration
	EnableRefresh   bool
	RefreshSchedule string // cron expression, seconds granularity

	// Serve generated mock insights instead of running the pipeline
	MockData bool
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{
		Port:  getEnv("PORT", "8000"),
		Debug: getBoolEnv("DEBUG", false),

		GroqAPIKey:    getEnv("GROQ_API_KEY", ""),
		Model:         getEnv("GROQ_MODEL", "llama3-8b-8192"),
		FallbackModel: getEnv("GROQ_FALLBACK_MODEL", "llama3-70b-8192"),
		MaxTokens:     getIntEnv("GROQ_MAX_TOKENS", 1000),

		Platforms: getSliceEnv("PLATFORMS", []string{"x", "reddit", "linkedin"}),
		Keywords:  getSliceEnv("KEYWORDS", []string{"technology", "ai", "data"}),
		Tone:      getEnv("TONE", "professional"),
		Preset:    getEnv("PRESET", "standard"),

		EnableRefresh:   getBoolEnv("ENABLE_REFRESH", false),
		RefreshSchedule: getEnv("REFRESH_SCHEDULE", "0 0 * * * *"),

		MockData: getBoolEnv("MOCK_DATA", false),
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

func (c *Config) validate() error {
	if len(c.Platforms) == 0 {
		return fmt.Errorf("PLATFORMS must name at least one platform")
	}

	if len(c.Keywords) == 0 {
		return fmt.Errorf("KEYWORDS must name at least one keyword")
	}

	if c.EnableRefresh && !c.MockData && c.GroqAPIKey == "" {
		return fmt.Errorf("GROQ_API_KEY is required when ENABLE_REFRESH is set")
	}

	return nil
}

// Helper functions for environment variable parsing
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getBoolEnv(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseBool(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getSliceEnv(key string, defaultValue []string) []string {
	if value := os.Getenv(key); value != "" {
		parts := strings.Split(value, ",")
		for i := range parts {
			parts[i] = strings.TrimSpace(parts[i])
		}
		return parts
	}
	return defaultValue
}
