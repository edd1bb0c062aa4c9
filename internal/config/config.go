package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	ProviderGoogle = "google"
	ProviderLibre  = "libre"
	ProviderNone   = "none"
)

type Config struct {
	Server      ServerConfig
	Database    DatabaseConfig
	Export      ExportConfig
	Translation TranslationConfig
	Logging     LoggingConfig
}

type ServerConfig struct {
	Port            int
	GinMode         string
	AllowedOrigins  []string
	RateLimitRPS    float64
	RateLimitBurst  int
	ShutdownTimeout time.Duration
}

type DatabaseConfig struct {
	Path string
}

type ExportConfig struct {
	DemoExamplesPath string
}

type TranslationConfig struct {
	Provider        string
	SourceLanguage  string
	GoogleAPIKey    string
	CredentialsFile string
	LibreURL        string
	LibreAPIKey     string
	Timeout         time.Duration
	CacheTTL        time.Duration
	RequestsPerSec  float64
}

type LoggingConfig struct {
	Level string
	File  string
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Server: ServerConfig{
			Port:            getEnvInt("PORT", 8080),
			GinMode:         getEnv("GIN_MODE", "release"),
			AllowedOrigins:  parseCommaSeparated(getEnv("CORS_ALLOWED_ORIGINS", "")),
			RateLimitRPS:    getEnvFloat("RATE_LIMIT_RPS", 10),
			RateLimitBurst:  getEnvInt("RATE_LIMIT_BURST", 20),
			ShutdownTimeout: getEnvDuration("SHUTDOWN_TIMEOUT", 5*time.Second),
		},
		Database: DatabaseConfig{
			Path: getEnv("DB_PATH", "healthyhabits_profiles.db"),
		},
		Export: ExportConfig{
			DemoExamplesPath: getEnv("DEMO_EXAMPLES_PATH", "healthyhabits_demo_examples.csv"),
		},
		Translation: TranslationConfig{
			Provider:        strings.ToLower(getEnv("TRANSLATE_PROVIDER", ProviderGoogle)),
			SourceLanguage:  getEnv("TRANSLATE_SOURCE_LANGUAGE", "en"),
			GoogleAPIKey:    getEnv("GOOGLE_TRANSLATE_API_KEY", ""),
			CredentialsFile: getEnv("GOOGLE_APPLICATION_CREDENTIALS", ""),
			LibreURL:        getEnv("LIBRETRANSLATE_URL", ""),
			LibreAPIKey:     getEnv("LIBRETRANSLATE_API_KEY", ""),
			Timeout:         getEnvDuration("TRANSLATE_TIMEOUT", 10*time.Second),
			CacheTTL:        getEnvDuration("TRANSLATE_CACHE_TTL", time.Hour),
			RequestsPerSec:  getEnvFloat("TRANSLATE_RPS", 5),
		},
		Logging: LoggingConfig{
			Level: getEnv("LOG_LEVEL", "info"),
			File:  getEnv("LOG_FILE", ""),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("port %d is out of range", c.Server.Port)
	}
	if c.Database.Path == "" {
		return fmt.Errorf("DB_PATH is required")
	}
	if c.Server.RateLimitRPS <= 0 || c.Server.RateLimitBurst <= 0 {
		return fmt.Errorf("RATE_LIMIT_RPS and RATE_LIMIT_BURST must be positive")
	}
	switch c.Translation.Provider {
	case ProviderGoogle, ProviderLibre, ProviderNone:
	default:
		return fmt.Errorf("TRANSLATE_PROVIDER must be one of google, libre, none (got %q)", c.Translation.Provider)
	}
	return nil
}

// TranslationConfigured reports whether the selected provider has what it needs
// to make calls. A provider without credentials runs as unavailable.
func (t TranslationConfig) TranslationConfigured() bool {
	switch t.Provider {
	case ProviderGoogle:
		return t.GoogleAPIKey != "" || t.CredentialsFile != ""
	case ProviderLibre:
		return t.LibreURL != ""
	}
	return false
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
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

func parseCommaSeparated(value string) []string {
	if value == "" {
		return []string{}
	}
	parts := strings.Split(value, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}
