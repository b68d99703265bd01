package httpx

import (
	"context"
	"net/http"

	"github.com/peopledesk/console/internal/adapters/hrmsapi"
)

// dashboardView carries the poll snapshots shared by all role dashboards.
// Each Has* flag distinguishes "no data yet" from a zero value.
type dashboardView struct {
	Stats    hrmsapi.DashboardStats
	HasStats bool

	Activities []hrmsapi.Activity

	Live    hrmsapi.LiveStatus
	HasLive bool

	Today    hrmsapi.TodayAttendance
	HasToday bool

	Refreshing bool
}

func (h *UIHandlers) dashboardView() dashboardView {
	var v dashboardView
	v.Stats, _, v.HasStats = h.Live.Stats()
	v.Activities, _, _ = h.Live.Activities()
	v.Live, _, v.HasLive = h.Live.Live()
	v.Today, _, v.HasToday = h.Live.Today()
	v.Refreshing = h.Live.Refreshing()
	return v
}

// AdminDashboard shows company stats, live presence and recent activity.
func (h *UIHandlers) AdminDashboard(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, "dashboard_admin.tmpl",
		h.pageData("Admin dashboard", h.dashboardView()), nil)
}

// ManagerDashboard shows team presence and stats.
func (h *UIHandlers) ManagerDashboard(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, "dashboard_manager.tmpl",
		h.pageData("Manager dashboard", h.dashboardView()), nil)
}

// HRDashboard shows workforce stats and live presence.
func (h *UIHandlers) HRDashboard(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, "dashboard_hr.tmpl",
		h.pageData("HR dashboard", h.dashboardView()), nil)
}

// EmployeeDashboard shows the clock and the caller's own day state with the
// check-in/out and break controls.
func (h *UIHandlers) EmployeeDashboard(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, "dashboard_employee.tmpl",
		h.pageData("My dashboard", h.dashboardView()), nil)
}

// RefreshNow triggers one immediate fetch of all live data. While a refresh
// is already in flight the trigger is dropped, matching the disabled
// refresh button.
func (h *UIHandlers) RefreshNow(w http.ResponseWriter, r *http.Request) {
	h.Live.Refresh(r.Context())
	redirectBack(w, r)
}

// AttendanceAction performs one of the employee clock actions and returns
// to the dashboard, carrying the backend's message when it rejects the
// action (double check-in, break without check-in).
func (h *UIHandlers) AttendanceAction(action func(context.Context, *hrmsapi.Client) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := action(r.Context(), h.API); err != nil {
			h.logger().WarnContext(r.Context(), "attendance action failed", "error", err)
			redirectBackError(w, r, hrmsapi.ErrorMessage(err, "Action failed"))
			return
		}
		redirectBack(w, r)
	}
}
