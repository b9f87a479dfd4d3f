// Package config centralises configuration parsing for fitstats.
package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/sstent/fitstats/internal/models"
)

// Config captures runtime configuration values.
type Config struct {
	InputPath string // empty means the built-in sample packages, "-" means stdin
	Format    string
	LogLevel  string
	Athlete   models.Athlete // used for device files that lack body measurements
}

// Load reads environment variables into Config, applying defaults for
// anything unset or unparsable.
func Load() Config {
	cfg := Config{
		InputPath: getEnv("FITSTATS_INPUT", ""),
		Format:    getEnv("FITSTATS_FORMAT", "text"),
		LogLevel:  getEnv("LOG_LEVEL", "info"),
		Athlete: models.Athlete{
			WeightKg: getFloatEnv("ATHLETE_WEIGHT_KG", 75),
			HeightCm: getFloatEnv("ATHLETE_HEIGHT_CM", 175),
		},
	}
	cfg.Normalize()
	return cfg
}

// Normalize canonicalises values that may come from flags as well as from
// the environment.
func (c *Config) Normalize() {
	c.Format = strings.ToLower(strings.TrimSpace(c.Format))
	c.LogLevel = strings.ToLower(strings.TrimSpace(c.LogLevel))
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}

func getFloatEnv(key string, fallback float64) float64 {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		if parsed, err := strconv.ParseFloat(strings.TrimSpace(value), 64); err == nil {
			return parsed
		}
	}
	return fallback
}
