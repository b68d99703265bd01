package poll

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"
)

// DefaultInterval is the refresh cadence for live data loops.
const DefaultInterval = 3 * time.Second

// Runner repeatedly invokes a fetch at a fixed interval until its context is
// cancelled. The interval is wall-clock fixed: a slow fetch does not delay
// the next tick, and there is no backoff or jitter. Fetch errors are logged
// and swallowed so the loop keeps running; the next tick retries naturally.
type Runner struct {
	name     string
	interval time.Duration
	fetch    func(context.Context) error
	clock    Clock
	logger   *slog.Logger
}

// Options holds the dependencies for creating a Runner.
type Options struct {
	// Name identifies the loop in logs.
	Name string

	// Interval between fetches. Defaults to DefaultInterval.
	Interval time.Duration

	// Fetch is invoked once immediately on start and then on every tick.
	Fetch func(context.Context) error

	// Clock defaults to RealClock.
	Clock Clock

	Logger *slog.Logger
}

// NewRunner creates a runner with the given options.
func NewRunner(opts Options) (*Runner, error) {
	if opts.Fetch == nil {
		return nil, errors.New("fetch function is required")
	}
	if opts.Interval <= 0 {
		opts.Interval = DefaultInterval
	}
	if opts.Clock == nil {
		opts.Clock = RealClock{}
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	if opts.Name == "" {
		opts.Name = "poll"
	}
	return &Runner{
		name:     opts.Name,
		interval: opts.Interval,
		fetch:    opts.Fetch,
		clock:    opts.Clock,
		logger:   opts.Logger,
	}, nil
}

// Run starts the loop and blocks until ctx is cancelled. Starting fetches
// immediately; each subsequent fetch starts on its tick. Fetches run in
// their own goroutines so a fetch that outlives the interval neither delays
// nor drops the ticks behind it; out-of-order completions are the consumer's
// concern (Snapshot rejects stale commits). A plain context cancellation is
// a normal stop, not an error.
func (r *Runner) Run(ctx context.Context) error {
	r.logger.Debug("poll loop starting", "name", r.name, "interval", r.interval)

	var inFlight sync.WaitGroup
	start := func() {
		inFlight.Add(1)
		go func() {
			defer inFlight.Done()
			r.runFetch(ctx)
		}()
	}

	start()

	ticker := r.clock.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			r.logger.Debug("poll loop stopping", "name", r.name)
			inFlight.Wait()
			if errors.Is(ctx.Err(), context.Canceled) {
				return nil
			}
			return ctx.Err()

		case <-ticker.Chan():
			start()
		}
	}
}

func (r *Runner) runFetch(ctx context.Context) {
	if ctx.Err() != nil {
		return
	}
	if err := r.fetch(ctx); err != nil {
		if errors.Is(err, context.Canceled) {
			return
		}
		// Keep running despite errors.
		r.logger.Warn("poll fetch failed", "name", r.name, "error", err)
	}
}
