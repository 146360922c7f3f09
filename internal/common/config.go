package common

import (
	"os"
	"strconv"
	"time"
)

// Config holds all application configuration
type Config struct {
	Server   ServerConfig
	Pipeline PipelineConfig
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	HTTPAddr        string
	MaxUploadBytes  int64
	RequestTimeout  time.Duration
	ShutdownTimeout time.Duration
}

// PipelineConfig holds extraction pipeline configuration
type PipelineConfig struct {
	DefaultLanguage    string
	LanguageThreshold  float64
	TotalTolerance     string // exact decimal, e.g. "0.01"
	DefaultCountryCode string // phone normalization prefix
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPAddr:        getEnv("HTTP_ADDR", ":8080"),
			MaxUploadBytes:  getEnvAsInt64("MAX_UPLOAD_BYTES", 16<<20),
			RequestTimeout:  getEnvAsDuration("REQUEST_TIMEOUT", 30*time.Second),
			ShutdownTimeout: getEnvAsDuration("SHUTDOWN_TIMEOUT", 10*time.Second),
		},
		Pipeline: PipelineConfig{
			DefaultLanguage:    getEnv("DEFAULT_LANGUAGE", "no"),
			LanguageThreshold:  getEnvAsFloat64("LANGUAGE_THRESHOLD", 0.2),
			TotalTolerance:     getEnv("TOTAL_TOLERANCE", "0.01"),
			DefaultCountryCode: getEnv("DEFAULT_COUNTRY_CODE", "47"),
		},
	}
}

// Helper functions for environment variable parsing
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt64(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.ParseInt(value, 10, 64); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsFloat64(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatVal, err := strconv.ParseFloat(value, 64); err == nil {
			return floatVal
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

// ValidateConfig validates the loaded configuration
func (c *Config) Validate() error {
	if c.Pipeline.DefaultLanguage != "no" && c.Pipeline.DefaultLanguage != "en" {
		return NewAppError("CONFIG_ERROR", "DEFAULT_LANGUAGE must be 'no' or 'en'", ErrInvalidInput)
	}
	if c.Pipeline.LanguageThreshold < 0 || c.Pipeline.LanguageThreshold > 1 {
		return NewAppError("CONFIG_ERROR", "LANGUAGE_THRESHOLD must be in [0,1]", ErrInvalidInput)
	}
	if _, err := strconv.ParseFloat(c.Pipeline.TotalTolerance, 64); err != nil {
		return NewAppError("CONFIG_ERROR", "TOTAL_TOLERANCE must be a decimal number", ErrInvalidInput)
	}
	return nil
}
