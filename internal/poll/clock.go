// Package poll provides fixed-interval background refresh loops and the
// stale-response guard shared by live views.
package poll

import "time"

// Ticker is the subset of time.Ticker the runner needs, abstracted so tests
// can drive ticks manually.
type Ticker interface {
	// Chan returns the tick channel.
	Chan() <-chan time.Time
	// Stop releases the ticker.
	Stop()
}

// Clock provides time functionality that can be faked for testing.
type Clock interface {
	// Now returns the current time.
	Now() time.Time
	// NewTicker creates a ticker firing every d.
	NewTicker(d time.Duration) Ticker
}

// RealClock implements Clock using real system time.
type RealClock struct{}

// Now returns the current system time.
func (RealClock) Now() time.Time { return time.Now() }

// NewTicker creates a real time.Ticker.
func (RealClock) NewTicker(d time.Duration) Ticker {
	return realTicker{t: time.NewTicker(d)}
}

type realTicker struct{ t *time.Ticker }

func (r realTicker) Chan() <-chan time.Time { return r.t.C }
func (r realTicker) Stop()                  { r.t.Stop() }
