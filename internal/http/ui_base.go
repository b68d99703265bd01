// Package httpx serves the browser-facing console: login, role dashboards
// and the HR resource pages, all rendered server-side from live API data.
package httpx

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/peopledesk/console/internal/adapters/hrmsapi"
	"github.com/peopledesk/console/internal/domain/auth"
	"github.com/peopledesk/console/internal/service"
)

// SessionsService is the slice of the session service the UI needs.
type SessionsService interface {
	Current() service.SessionState
	Login(ctx context.Context, email, password string) (auth.UserSummary, error)
	Logout() error
}

// LiveReadService exposes the polled snapshots and the manual refresh.
type LiveReadService interface {
	Now() (time.Time, bool)
	Stats() (hrmsapi.DashboardStats, time.Time, bool)
	Activities() ([]hrmsapi.Activity, time.Time, bool)
	Live() (hrmsapi.LiveStatus, time.Time, bool)
	Today() (hrmsapi.TodayAttendance, time.Time, bool)
	Refresh(ctx context.Context) bool
	Refreshing() bool
}

// Compile-time assertions that the concrete services satisfy the UI slices.
var (
	_ SessionsService = (*service.SessionService)(nil)
	_ LiveReadService = (*service.LiveService)(nil)
)

// UIHandlers serves all browser routes. Resource data is fetched from the
// HRMS API per request; dashboards read the poll snapshots instead.
type UIHandlers struct {
	API      *hrmsapi.Client
	Sessions SessionsService
	Live     LiveReadService
	Watch    *service.AttendanceWatcher
	Renderer *TemplateRenderer
	Logger   *slog.Logger
}

func (h *UIHandlers) logger() *slog.Logger {
	if h.Logger != nil {
		return h.Logger
	}
	return slog.Default()
}

// PageData is the payload every template receives.
type PageData struct {
	Title string
	User  *auth.UserSummary
	// Base is the role area prefix for nav links, e.g. "/admin".
	Base string
	// Err is a user-facing message for a failed fetch or action.
	Err string
	// Clock is the latest committed wall-clock tick, empty before the first.
	Clock string
	Data  any
}

func (h *UIHandlers) pageData(title string, data any) PageData {
	pd := PageData{Title: title, Data: data}
	if user := h.Sessions.Current().User; user != nil {
		pd.User = user
		pd.Base = auth.DashboardPath(user.Role)
	}
	if now, ok := h.Live.Now(); ok {
		pd.Clock = now.Format("15:04:05")
	}
	return pd
}

// render shows the page; when fetchErr is set the page carries a message
// instead of data, otherwise a message handed over by a failed action
// (the err query parameter set by redirectBackError) is shown. 401s are not
// special-cased here: the interceptor has already dropped the session and
// the guard redirects on the next request.
func (h *UIHandlers) render(w http.ResponseWriter, r *http.Request, name string, pd PageData, fetchErr error) {
	status := http.StatusOK
	if fetchErr != nil {
		h.logger().WarnContext(r.Context(), "page fetch failed", "template", name, "error", fetchErr)
		pd.Err = hrmsapi.ErrorMessage(fetchErr, "Unable to load data")
		status = statusForError(fetchErr)
	} else if msg := r.URL.Query().Get("err"); msg != "" && pd.Err == "" {
		pd.Err = msg
	}
	h.Renderer.Render(w, status, name, pd)
}

func statusForError(err error) int {
	if s := hrmsapi.StatusOf(err); s >= http.StatusInternalServerError {
		return http.StatusBadGateway
	}
	return http.StatusOK
}
