package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Advisor backends.
const (
	BackendCanned = "canned"
	BackendGemini = "gemini"
)

type Config struct {
	// HTTP Server
	Port string

	// Advisor backend selection
	AdvisorBackend string

	// Gemini
	GeminiAPIKey string
	GeminiModel  string

	// Defensive cap on one analysis request; the collaborator's latency
	// is otherwise unbounded.
	AnalysisTimeout time.Duration

	// Rate limiting for mutating requests, per client IP
	RateLimitPerMinute int
}

func Load() *Config {
	return &Config{
		Port:           getEnv("PORT", "8084"),
		AdvisorBackend: getEnv("ADVISOR_BACKEND", BackendCanned),

		GeminiAPIKey: getEnv("GEMINI_API_KEY", ""),
		GeminiModel:  getEnv("GEMINI_MODEL", "gemini-1.5-pro"),

		AnalysisTimeout:    getEnvDuration("ANALYSIS_TIMEOUT", 90*time.Second),
		RateLimitPerMinute: getEnvInt("RATE_LIMIT_PER_MINUTE", 60),
	}
}

// Validate validates the configuration and returns an error if invalid
func (c *Config) Validate() error {
	var errors []string

	if port, err := strconv.Atoi(c.Port); err != nil {
		errors = append(errors, fmt.Sprintf("invalid port '%s': must be a number", c.Port))
	} else if port < 1 || port > 65535 {
		errors = append(errors, fmt.Sprintf("invalid port %d: must be between 1 and 65535", port))
	}

	switch c.AdvisorBackend {
	case BackendCanned:
	case BackendGemini:
		if c.GeminiAPIKey == "" {
			errors = append(errors, "GEMINI_API_KEY is required when using the gemini backend")
		}
		if c.GeminiModel == "" {
			errors = append(errors, "GEMINI_MODEL cannot be empty when using the gemini backend")
		}
	default:
		errors = append(errors, fmt.Sprintf("invalid advisor backend '%s': must be one of [%s %s]", c.AdvisorBackend, BackendCanned, BackendGemini))
	}

	if c.AnalysisTimeout < time.Second {
		errors = append(errors, fmt.Sprintf("invalid analysis timeout %v: must be at least 1 second", c.AnalysisTimeout))
	} else if c.AnalysisTimeout > 10*time.Minute {
		errors = append(errors, fmt.Sprintf("invalid analysis timeout %v: must be at most 10 minutes", c.AnalysisTimeout))
	}

	if c.RateLimitPerMinute < 1 {
		errors = append(errors, fmt.Sprintf("invalid rate limit %d: must be at least 1", c.RateLimitPerMinute))
	} else if c.RateLimitPerMinute > 10000 {
		errors = append(errors, fmt.Sprintf("invalid rate limit %d: must be at most 10000", c.RateLimitPerMinute))
	}

	if len(errors) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(errors, "\n- "))
	}

	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
