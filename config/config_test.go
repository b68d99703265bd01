package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAPIConfigSanitize(t *testing.T) {
	cfg := APIConfig{BaseURL: "  https://hrms.example.com/api/  ", Timeout: 0}
	cfg.Sanitize()

	assert.Equal(t, "https://hrms.example.com/api", cfg.BaseURL)
	assert.Equal(t, 15*time.Second, cfg.Timeout)
}

func TestPollConfigSanitizeDefaults(t *testing.T) {
	cfg := PollConfig{}
	cfg.Sanitize()

	assert.Equal(t, DefaultClockInterval, cfg.ClockInterval)
	assert.Equal(t, DefaultLiveInterval, cfg.LiveInterval)
}

func TestPollConfigSanitizeFloor(t *testing.T) {
	cfg := PollConfig{ClockInterval: time.Millisecond, LiveInterval: 10 * time.Millisecond}
	cfg.Sanitize()

	assert.Equal(t, minPollInterval, cfg.ClockInterval)
	assert.Equal(t, minPollInterval, cfg.LiveInterval)
}

func TestDetectDevModeFromNodeEnv(t *testing.T) {
	t.Setenv("NODE_ENV", "development")

	cfg := AppConfig{}
	cfg.Sanitize()

	assert.True(t, cfg.IsDev)
}

func TestDetectDevModeExplicit(t *testing.T) {
	t.Setenv("NODE_ENV", "production")

	cfg := AppConfig{IsDev: true}
	cfg.Sanitize()

	assert.True(t, cfg.IsDev)
}
