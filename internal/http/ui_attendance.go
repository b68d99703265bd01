package httpx

import (
	"context"
	"net/http"
	"time"

	"github.com/peopledesk/console/internal/adapters/hrmsapi"
)

// attendanceSheetView is the polled company sheet for a selected date.
type attendanceSheetView struct {
	Date      string
	Records   []hrmsapi.AttendanceRecord
	Total     int
	HasData   bool
	FetchedAt string
}

// AttendanceSheetPage shows the company attendance sheet for the selected
// date, refreshed by the background watcher. The first load starts the
// watch; picking a different date restarts it for that date, while a plain
// reload leaves the running loop alone.
func (h *UIHandlers) AttendanceSheetPage(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")

	if h.Watch != nil && (date != h.Watch.Date() || !h.Watch.Active()) {
		// The watcher outlives the request; tie its loop to the server, not
		// to this request's context.
		if err := h.Watch.SetDate(context.WithoutCancel(r.Context()), date); err != nil {
			h.logger().WarnContext(r.Context(), "start attendance watch failed", "error", err)
		}
	}

	view := attendanceSheetView{Date: date}
	if h.Watch != nil {
		if page, at, ok := h.Watch.Records(); ok {
			view.Records = page.Items
			view.Total = page.Pagination.Total
			view.HasData = true
			view.FetchedAt = at.Format(time.TimeOnly)
		}
	}
	h.render(w, r, "attendance_sheet.tmpl", h.pageData("Attendance", view), nil)
}

// MyAttendancePage lists the caller's own attendance history.
func (h *UIHandlers) MyAttendancePage(w http.ResponseWriter, r *http.Request) {
	records, err := h.API.MyAttendance(r.Context())
	h.render(w, r, "attendance_my.tmpl", h.pageData("My attendance", records), err)
}
