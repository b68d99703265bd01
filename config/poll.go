package config

import "time"

// Default polling cadences. These mirror the refresh rates of the original
// dashboards: a 1-second wall-clock tick and 3-second live-data refresh.
const (
	DefaultClockInterval = 1 * time.Second
	DefaultLiveInterval  = 3 * time.Second

	// minPollInterval is the floor applied to configured cadences so a
	// misconfigured environment cannot hot-loop against the backend.
	minPollInterval = 250 * time.Millisecond
)

// PollConfig configures the fixed-interval refresh loops that approximate
// live data. There is no push transport; polling is the only liveness model.
type PollConfig struct {
	// ClockInterval drives the dashboard wall-clock display.
	ClockInterval time.Duration `env:"CLOCK_INTERVAL" envDefault:"1s"`

	// LiveInterval drives attendance live-status and dashboard stat refresh.
	LiveInterval time.Duration `env:"LIVE_INTERVAL" envDefault:"3s"`
}

// Sanitize applies guardrails to polling configuration values.
func (p *PollConfig) Sanitize() {
	if p.ClockInterval <= 0 {
		p.ClockInterval = DefaultClockInterval
	}
	if p.LiveInterval <= 0 {
		p.LiveInterval = DefaultLiveInterval
	}
	if p.ClockInterval < minPollInterval {
		p.ClockInterval = minPollInterval
	}
	if p.LiveInterval < minPollInterval {
		p.LiveInterval = minPollInterval
	}
}
