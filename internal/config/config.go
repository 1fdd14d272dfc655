// Package config provides configuration management functionality.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Default tuning values. The scenario WACC offsets are deliberately
// configuration, not behavior: the worst case discounts at a premium over
// the base WACC and the best case at a discount, and the magnitude of that
// shift is an analyst choice.
const (
	DefaultProjectionYears      = 5
	DefaultQualityWarnThreshold = 0.5
	DefaultWorstCaseWACCOffset  = 0.01  // +100bp over base WACC
	DefaultBestCaseWACCOffset   = -0.01 // -100bp under base WACC
)

// Config holds application configuration
type Config struct {
	LogLevel             string
	LogPretty            bool
	ProjectionYears      int     // default scenario horizon in years
	QualityWarnThreshold float64 // quality score below this adds a report warning
	WorstCaseWACCOffset  float64
	BestCaseWACCOffset   float64
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists
	_ = godotenv.Load()

	cfg := &Config{
		LogLevel:             getEnv("LOG_LEVEL", "info"),
		LogPretty:            getEnvAsBool("LOG_PRETTY", true),
		ProjectionYears:      getEnvAsInt("PROJECTION_YEARS", DefaultProjectionYears),
		QualityWarnThreshold: getEnvAsFloat("QUALITY_WARN_THRESHOLD", DefaultQualityWarnThreshold),
		WorstCaseWACCOffset:  getEnvAsFloat("WORST_CASE_WACC_OFFSET", DefaultWorstCaseWACCOffset),
		BestCaseWACCOffset:   getEnvAsFloat("BEST_CASE_WACC_OFFSET", DefaultBestCaseWACCOffset),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks if the configuration is internally consistent
func (c *Config) Validate() error {
	if c.ProjectionYears <= 0 {
		return fmt.Errorf("PROJECTION_YEARS must be greater than 0, got %d", c.ProjectionYears)
	}

	if c.QualityWarnThreshold < 0.0 || c.QualityWarnThreshold > 1.0 {
		return fmt.Errorf("QUALITY_WARN_THRESHOLD must be between 0.0 and 1.0, got %f", c.QualityWarnThreshold)
	}

	// The worst case must never discount cheaper than the best case.
	if c.WorstCaseWACCOffset < c.BestCaseWACCOffset {
		return fmt.Errorf("WORST_CASE_WACC_OFFSET (%f) must be >= BEST_CASE_WACC_OFFSET (%f)",
			c.WorstCaseWACCOffset, c.BestCaseWACCOffset)
	}

	return nil
}

// Helper functions
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatVal, err := strconv.ParseFloat(value, 64); err == nil {
			return floatVal
		}
	}
	return defaultValue
}
