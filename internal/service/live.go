package service

import (
	"context"
	"errors"
	"log/slog"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/peopledesk/console/internal/adapters/hrmsapi"
	"github.com/peopledesk/console/internal/poll"
)

// LiveClient is the slice of the API client the live loops need.
type LiveClient interface {
	DashboardStats(ctx context.Context) (hrmsapi.DashboardStats, error)
	RecentActivities(ctx context.Context) ([]hrmsapi.Activity, error)
	LiveStatus(ctx context.Context) (hrmsapi.LiveStatus, error)
	TodayAttendance(ctx context.Context) (hrmsapi.TodayAttendance, error)
}

// SessionReader exposes the current session to the live loops so they can
// skip fetching while logged out.
type SessionReader interface {
	Current() SessionState
}

// LiveService runs the background refresh loops behind the dashboards: the
// wall clock every second and the live data (stats, presence, today's
// attendance, activity feed) every LiveInterval. Loops run for the life of
// the process; while no user is logged in they tick without fetching.
type LiveService struct {
	client   LiveClient
	sessions SessionReader
	clock    poll.Clock
	logger   *slog.Logger

	clockInterval time.Duration
	liveInterval  time.Duration

	now        poll.Snapshot[time.Time]
	stats      poll.Snapshot[hrmsapi.DashboardStats]
	activities poll.Snapshot[[]hrmsapi.Activity]
	live       poll.Snapshot[hrmsapi.LiveStatus]
	today      poll.Snapshot[hrmsapi.TodayAttendance]

	refreshing atomic.Bool
}

// LiveOptions holds the dependencies for creating a LiveService.
type LiveOptions struct {
	Client   LiveClient
	Sessions SessionReader

	// ClockInterval drives the displayed wall clock. Defaults to 1s.
	ClockInterval time.Duration

	// LiveInterval drives the data loops. Defaults to poll.DefaultInterval.
	LiveInterval time.Duration

	Clock  poll.Clock
	Logger *slog.Logger
}

// NewLiveService creates the live refresh service.
func NewLiveService(opts LiveOptions) (*LiveService, error) {
	if opts.Client == nil {
		return nil, errors.New("live client is required")
	}
	if opts.Sessions == nil {
		return nil, errors.New("session reader is required")
	}
	if opts.ClockInterval <= 0 {
		opts.ClockInterval = time.Second
	}
	if opts.LiveInterval <= 0 {
		opts.LiveInterval = poll.DefaultInterval
	}
	if opts.Clock == nil {
		opts.Clock = poll.RealClock{}
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	return &LiveService{
		client:        opts.Client,
		sessions:      opts.Sessions,
		clock:         opts.Clock,
		logger:        opts.Logger,
		clockInterval: opts.ClockInterval,
		liveInterval:  opts.LiveInterval,
	}, nil
}

// Run starts all loops and blocks until ctx is cancelled.
func (l *LiveService) Run(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)

	loops := []struct {
		name     string
		interval time.Duration
		fetch    func(context.Context) error
	}{
		{"clock", l.clockInterval, l.tickClock},
		{"dashboard-stats", l.liveInterval, l.fetchStats},
		{"activities", l.liveInterval, l.fetchActivities},
		{"live-status", l.liveInterval, l.fetchLive},
		{"attendance-today", l.liveInterval, l.fetchToday},
	}
	for _, loop := range loops {
		runner, err := poll.NewRunner(poll.Options{
			Name:     loop.name,
			Interval: loop.interval,
			Fetch:    loop.fetch,
			Clock:    l.clock,
			Logger:   l.logger,
		})
		if err != nil {
			return err
		}
		g.Go(func() error { return runner.Run(ctx) })
	}
	return g.Wait()
}

// Refresh performs one immediate fetch of all live data, on top of the
// scheduled loops. At most one manual refresh runs at a time; a call that
// finds one in flight returns false and does nothing.
func (l *LiveService) Refresh(ctx context.Context) bool {
	if !l.refreshing.CompareAndSwap(false, true) {
		return false
	}
	defer l.refreshing.Store(false)

	for _, fetch := range []func(context.Context) error{
		l.fetchStats, l.fetchActivities, l.fetchLive, l.fetchToday,
	} {
		if err := fetch(ctx); err != nil {
			l.logger.Warn("manual refresh fetch failed", "error", err)
		}
	}
	return true
}

// Refreshing reports whether a manual refresh is in flight.
func (l *LiveService) Refreshing() bool { return l.refreshing.Load() }

// ResetData clears all committed data, e.g. after logout, so the next login
// does not briefly show the previous user's numbers.
func (l *LiveService) ResetData() {
	l.stats.Reset()
	l.activities.Reset()
	l.live.Reset()
	l.today.Reset()
}

// Now returns the last committed clock tick.
func (l *LiveService) Now() (time.Time, bool) {
	v, _, ok := l.now.Get()
	return v, ok
}

// Stats returns the latest dashboard stats and when they were fetched.
func (l *LiveService) Stats() (hrmsapi.DashboardStats, time.Time, bool) {
	return l.stats.Get()
}

// Activities returns the latest activity feed.
func (l *LiveService) Activities() ([]hrmsapi.Activity, time.Time, bool) {
	return l.activities.Get()
}

// Live returns the latest company-wide presence snapshot.
func (l *LiveService) Live() (hrmsapi.LiveStatus, time.Time, bool) {
	return l.live.Get()
}

// Today returns the caller's latest own-attendance state.
func (l *LiveService) Today() (hrmsapi.TodayAttendance, time.Time, bool) {
	return l.today.Get()
}

func (l *LiveService) tickClock(context.Context) error {
	l.now.Commit(l.now.Begin(), l.clock.Now(), l.clock.Now())
	return nil
}

// loggedOut reports whether data fetches should be skipped this tick.
// Unauthenticated polls would only produce 401 churn.
func (l *LiveService) loggedOut() bool {
	state := l.sessions.Current()
	return state.Loading || state.User == nil
}

func (l *LiveService) fetchStats(ctx context.Context) error {
	if l.loggedOut() {
		return nil
	}
	seq := l.stats.Begin()
	v, err := l.client.DashboardStats(ctx)
	if err != nil {
		return err
	}
	l.stats.Commit(seq, v, l.clock.Now())
	return nil
}

func (l *LiveService) fetchActivities(ctx context.Context) error {
	if l.loggedOut() {
		return nil
	}
	seq := l.activities.Begin()
	v, err := l.client.RecentActivities(ctx)
	if err != nil {
		return err
	}
	l.activities.Commit(seq, v, l.clock.Now())
	return nil
}

func (l *LiveService) fetchLive(ctx context.Context) error {
	if l.loggedOut() {
		return nil
	}
	seq := l.live.Begin()
	v, err := l.client.LiveStatus(ctx)
	if err != nil {
		return err
	}
	l.live.Commit(seq, v, l.clock.Now())
	return nil
}

func (l *LiveService) fetchToday(ctx context.Context) error {
	if l.loggedOut() {
		return nil
	}
	seq := l.today.Begin()
	v, err := l.client.TodayAttendance(ctx)
	if err != nil {
		return err
	}
	l.today.Commit(seq, v, l.clock.Now())
	return nil
}
