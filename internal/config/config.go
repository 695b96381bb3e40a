package config

import (
	"os"
	"strconv"
)

// Config represents the complete library configuration
type Config struct {
	Prediction PredictionConfig
}

// PredictionConfig holds default prediction options, overridable per request
type PredictionConfig struct {
	// StdevLimit is the default search-breadth multiplier
	StdevLimit float64

	// MaxPredictions caps the accepted set; 0 means unbounded
	MaxPredictions int
}

// DefaultStdevLimit is the stdev multiplier used when neither the
// environment nor the request supplies one
const DefaultStdevLimit = 2.0

// Load reads configuration from environment variables, falling back to
// library defaults for anything unset or unparseable
func Load() *Config {
	return &Config{
		Prediction: PredictionConfig{
			StdevLimit:     getEnvFloatOrDefault("PREDICT_STDEV_LIMIT", DefaultStdevLimit),
			MaxPredictions: getEnvIntOrDefault("PREDICT_MAX_PREDICTIONS", 0),
		},
	}
}

// Helper functions for environment variable parsing
func getEnvIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvFloatOrDefault(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}
