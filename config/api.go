package config

import (
	"strings"
	"time"
)

// APIConfig describes the remote HRMS REST API the console consumes.
// The backend is an opaque collaborator; the base URL is the only
// environment-provided dependency the client has.
type APIConfig struct {
	// BaseURL is the root of the HRMS API (e.g. "https://hrms.example.com/api").
	BaseURL string `env:"API_URL,required"`

	// Timeout is the transport-level timeout applied uniformly to every
	// outbound request. The application layer defines no per-call timeouts.
	Timeout time.Duration `env:"API_TIMEOUT" envDefault:"15s"`
}

// Sanitize applies guardrails to API configuration values.
func (a *APIConfig) Sanitize() {
	a.BaseURL = strings.TrimRight(strings.TrimSpace(a.BaseURL), "/")
	if a.Timeout <= 0 {
		a.Timeout = 15 * time.Second
	}
}
