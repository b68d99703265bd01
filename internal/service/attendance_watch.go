package service

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/peopledesk/console/internal/adapters/hrmsapi"
	"github.com/peopledesk/console/internal/poll"
)

// AttendanceLister is the slice of the API client the watcher needs.
type AttendanceLister interface {
	ListAttendance(ctx context.Context, date string, p hrmsapi.ListParams) (hrmsapi.Page[hrmsapi.AttendanceRecord], error)
}

// AttendanceWatcher polls the company attendance sheet for one selected
// date. Changing the date stops the old loop and starts a fresh one for the
// new date; the sequence guard in the snapshot keeps a straggling response
// for the old date from overwriting the new one.
type AttendanceWatcher struct {
	client   AttendanceLister
	interval time.Duration
	clock    poll.Clock
	logger   *slog.Logger

	mu     sync.Mutex
	date   string
	cancel context.CancelFunc

	snap poll.Snapshot[hrmsapi.Page[hrmsapi.AttendanceRecord]]
}

// AttendanceWatchOptions holds the dependencies for creating a watcher.
type AttendanceWatchOptions struct {
	Client   AttendanceLister
	Interval time.Duration
	Clock    poll.Clock
	Logger   *slog.Logger
}

// NewAttendanceWatcher creates a stopped watcher. SetDate starts it.
func NewAttendanceWatcher(opts AttendanceWatchOptions) (*AttendanceWatcher, error) {
	if opts.Client == nil {
		return nil, errors.New("attendance client is required")
	}
	if opts.Interval <= 0 {
		opts.Interval = poll.DefaultInterval
	}
	if opts.Clock == nil {
		opts.Clock = poll.RealClock{}
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	return &AttendanceWatcher{
		client:   opts.Client,
		interval: opts.Interval,
		clock:    opts.Clock,
		logger:   opts.Logger,
	}, nil
}

// SetDate switches the watched date (YYYY-MM-DD, empty for today) and
// restarts the loop under ctx. Setting the already-watched date restarts
// the loop anyway, which also forces an immediate fetch.
func (w *AttendanceWatcher) SetDate(ctx context.Context, date string) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.cancel != nil {
		w.cancel()
	}

	w.date = date
	loopCtx, cancel := context.WithCancel(ctx)
	w.cancel = cancel

	runner, err := poll.NewRunner(poll.Options{
		Name:     "attendance-sheet",
		Interval: w.interval,
		Fetch:    w.fetchFor(date),
		Clock:    w.clock,
		Logger:   w.logger,
	})
	if err != nil {
		cancel()
		w.cancel = nil
		return err
	}

	go func() {
		if err := runner.Run(loopCtx); err != nil {
			w.logger.Warn("attendance watch stopped", "date", date, "error", err)
		}
	}()
	return nil
}

// Stop cancels the current loop, if any.
func (w *AttendanceWatcher) Stop() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.cancel != nil {
		w.cancel()
		w.cancel = nil
	}
}

// Active reports whether a watch loop is currently running.
func (w *AttendanceWatcher) Active() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.cancel != nil
}

// Date returns the currently watched date.
func (w *AttendanceWatcher) Date() string {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.date
}

// Records returns the latest committed sheet and when it was fetched.
func (w *AttendanceWatcher) Records() (hrmsapi.Page[hrmsapi.AttendanceRecord], time.Time, bool) {
	return w.snap.Get()
}

func (w *AttendanceWatcher) fetchFor(date string) func(context.Context) error {
	return func(ctx context.Context) error {
		seq := w.snap.Begin()
		page, err := w.client.ListAttendance(ctx, date, hrmsapi.ListParams{})
		if err != nil {
			return err
		}
		w.snap.Commit(seq, page, w.clock.Now())
		return nil
	}
}
