package poll

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeClock drives ticks manually.
type fakeClock struct {
	mu    sync.Mutex
	now   time.Time
	ticks chan time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{
		now:   time.Date(2026, 8, 1, 9, 0, 0, 0, time.UTC),
		ticks: make(chan time.Time),
	}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) NewTicker(time.Duration) Ticker { return fakeTicker{c.ticks} }

// Tick advances the clock and fires one tick.
func (c *fakeClock) Tick(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	now := c.now
	c.mu.Unlock()
	c.ticks <- now
}

type fakeTicker struct{ ch chan time.Time }

func (t fakeTicker) Chan() <-chan time.Time { return t.ch }
func (t fakeTicker) Stop()                  {}

// countingFetch records each fetch and signals the caller.
type countingFetch struct {
	mu    sync.Mutex
	n     int
	done  chan struct{}
	fails bool
}

func newCountingFetch() *countingFetch {
	return &countingFetch{done: make(chan struct{}, 16)}
}

func (f *countingFetch) fetch(context.Context) error {
	f.mu.Lock()
	f.n++
	fails := f.fails
	f.mu.Unlock()
	f.done <- struct{}{}
	if fails {
		return errors.New("backend unavailable")
	}
	return nil
}

func (f *countingFetch) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.n
}

func (f *countingFetch) wait(t *testing.T) {
	t.Helper()
	select {
	case <-f.done:
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for fetch")
	}
}

func startRunner(t *testing.T, clock Clock, fetch func(context.Context) error) (context.CancelFunc, chan error) {
	t.Helper()
	r, err := NewRunner(Options{Name: "test", Interval: 3 * time.Second, Fetch: fetch, Clock: clock})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	errs := make(chan error, 1)
	go func() { errs <- r.Run(ctx) }()
	return cancel, errs
}

func TestRunnerFetchesImmediatelyOnStart(t *testing.T) {
	clock := newFakeClock()
	fetch := newCountingFetch()

	cancel, errs := startRunner(t, clock, fetch.fetch)
	defer cancel()

	fetch.wait(t)
	assert.Equal(t, 1, fetch.count())

	cancel()
	require.NoError(t, <-errs)
}

func TestRunnerFetchesOnEachTick(t *testing.T) {
	clock := newFakeClock()
	fetch := newCountingFetch()

	cancel, errs := startRunner(t, clock, fetch.fetch)
	defer cancel()

	fetch.wait(t) // immediate fetch

	for i := 0; i < 3; i++ {
		clock.Tick(3 * time.Second)
		fetch.wait(t)
	}
	assert.Equal(t, 4, fetch.count())

	cancel()
	require.NoError(t, <-errs)
}

func TestRunnerStopsOnCancel(t *testing.T) {
	clock := newFakeClock()
	fetch := newCountingFetch()

	cancel, errs := startRunner(t, clock, fetch.fetch)
	fetch.wait(t)

	cancel()
	require.NoError(t, <-errs)

	// No further fetches after stop.
	assert.Equal(t, 1, fetch.count())
}

// blockingFetch counts starts and holds every call until released.
type blockingFetch struct {
	mu      sync.Mutex
	started int
	release chan struct{}
	begun   chan struct{}
}

func newBlockingFetch() *blockingFetch {
	return &blockingFetch{
		release: make(chan struct{}),
		begun:   make(chan struct{}, 16),
	}
}

func (f *blockingFetch) fetch(context.Context) error {
	f.mu.Lock()
	f.started++
	f.mu.Unlock()
	f.begun <- struct{}{}
	<-f.release
	return nil
}

func (f *blockingFetch) starts() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.started
}

func (f *blockingFetch) waitBegun(t *testing.T) {
	t.Helper()
	select {
	case <-f.begun:
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for fetch to start")
	}
}

func TestRunnerTicksIndependentOfSlowFetch(t *testing.T) {
	clock := newFakeClock()
	fetch := newBlockingFetch()

	cancel, errs := startRunner(t, clock, fetch.fetch)
	defer cancel()

	fetch.waitBegun(t) // immediate fetch, still in flight

	// Ticks keep starting fetches while earlier ones have not returned.
	for i := 0; i < 3; i++ {
		clock.Tick(3 * time.Second)
		fetch.waitBegun(t)
	}
	assert.Equal(t, 4, fetch.starts())

	close(fetch.release)
	cancel()
	require.NoError(t, <-errs)
}

func TestRunnerKeepsGoingAfterFetchError(t *testing.T) {
	clock := newFakeClock()
	fetch := newCountingFetch()
	fetch.fails = true

	cancel, errs := startRunner(t, clock, fetch.fetch)
	defer cancel()

	fetch.wait(t)
	clock.Tick(3 * time.Second)
	fetch.wait(t)
	assert.Equal(t, 2, fetch.count())

	cancel()
	require.NoError(t, <-errs)
}

func TestNewRunnerRequiresFetch(t *testing.T) {
	_, err := NewRunner(Options{})
	assert.Error(t, err)
}
