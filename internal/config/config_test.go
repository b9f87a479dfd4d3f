package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"FITSTATS_INPUT", "FITSTATS_FORMAT", "LOG_LEVEL", "ATHLETE_WEIGHT_KG", "ATHLETE_HEIGHT_CM"} {
		t.Setenv(key, "")
	}

	cfg := Load()
	assert.Equal(t, "", cfg.InputPath)
	assert.Equal(t, "text", cfg.Format)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 75.0, cfg.Athlete.WeightKg)
	assert.Equal(t, 175.0, cfg.Athlete.HeightCm)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("FITSTATS_INPUT", "/tmp/packages.json")
	t.Setenv("FITSTATS_FORMAT", "JSON")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("ATHLETE_WEIGHT_KG", " 82.5 ")
	t.Setenv("ATHLETE_HEIGHT_CM", "not-a-number")

	cfg := Load()
	assert.Equal(t, "/tmp/packages.json", cfg.InputPath)
	assert.Equal(t, "json", cfg.Format)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 82.5, cfg.Athlete.WeightKg)
	assert.Equal(t, 175.0, cfg.Athlete.HeightCm)
}

func TestNormalize(t *testing.T) {
	cfg := Config{Format: " JSON ", LogLevel: "DEBUG"}
	cfg.Normalize()
	assert.Equal(t, "json", cfg.Format)
	assert.Equal(t, "debug", cfg.LogLevel)
}
