package config

import (
	"os"
	"strings"
)

// AppConfig is the main application configuration struct that composes
// domain-specific configuration from separate files.
//
// Configuration is loaded from environment variables using the
// github.com/caarlos0/env library. See individual domain config
// files for details on available environment variables:
//   - api.go: Backend HRMS API configuration
//   - http.go: Local console HTTP server configuration
//   - session.go: Persisted session token configuration
//   - poll.go: Polling cadence configuration
type AppConfig struct {
	// IsDev controls development mode behavior (template reloading, verbose errors).
	// Set DEV=true or NODE_ENV=development for development mode.
	IsDev bool `env:"DEV" envDefault:"false"`

	// API is the remote HRMS backend the console talks to.
	API APIConfig `envPrefix:"HRMS_"`

	// HTTP is the local console listener configuration.
	HTTP HTTPConfig

	// Session is the persisted-token configuration.
	Session SessionConfig `envPrefix:"SESSION_"`

	// Poll configures the refresh cadences for live data.
	Poll PollConfig `envPrefix:"POLL_"`
}

// Sanitize applies guardrails to configuration values loaded from env.
// This should be called after loading configuration from environment variables.
func (c *AppConfig) Sanitize() {
	c.API.Sanitize()
	c.Poll.Sanitize()
	c.detectDevMode()
}

// detectDevMode checks both DEV and NODE_ENV environment variables.
// NODE_ENV is checked as a fallback (the original frontend tooling used it).
func (c *AppConfig) detectDevMode() {
	if !c.IsDev {
		nodeEnv := strings.ToLower(os.Getenv("NODE_ENV"))
		c.IsDev = nodeEnv == "development" || nodeEnv == "dev"
	}
}
