package hrmsapi

import "context"

// MyAttendance fetches the caller's own attendance history.
func (c *Client) MyAttendance(ctx context.Context) ([]AttendanceRecord, error) {
	var out []AttendanceRecord
	if err := c.Get(ctx, "/attendance/my", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// TodayAttendance fetches the caller's attendance state for the current day.
func (c *Client) TodayAttendance(ctx context.Context) (TodayAttendance, error) {
	var out TodayAttendance
	if err := c.Get(ctx, "/attendance/today", nil, &out); err != nil {
		return TodayAttendance{}, err
	}
	return out, nil
}

// CheckIn records the start of the caller's work day and returns the
// refreshed day state.
func (c *Client) CheckIn(ctx context.Context) (TodayAttendance, error) {
	return c.attendanceAction(ctx, "/attendance/check-in")
}

// CheckOut records the end of the caller's work day.
func (c *Client) CheckOut(ctx context.Context) (TodayAttendance, error) {
	return c.attendanceAction(ctx, "/attendance/check-out")
}

// BreakStart records the start of a break.
func (c *Client) BreakStart(ctx context.Context) (TodayAttendance, error) {
	return c.attendanceAction(ctx, "/attendance/break-start")
}

// BreakEnd records the end of a break.
func (c *Client) BreakEnd(ctx context.Context) (TodayAttendance, error) {
	return c.attendanceAction(ctx, "/attendance/break-end")
}

func (c *Client) attendanceAction(ctx context.Context, path string) (TodayAttendance, error) {
	var out TodayAttendance
	if err := c.Post(ctx, path, nil, &out); err != nil {
		return TodayAttendance{}, err
	}
	return out, nil
}

// ListAttendance fetches a page of attendance records for a given date
// (YYYY-MM-DD). An empty date means today.
func (c *Client) ListAttendance(ctx context.Context, date string, p ListParams) (Page[AttendanceRecord], error) {
	q := p.Values()
	if date != "" {
		q.Set("date", date)
	}
	var out Page[AttendanceRecord]
	if err := c.Get(ctx, "/attendance", q, &out); err != nil {
		return Page[AttendanceRecord]{}, err
	}
	return out, nil
}

// LiveStatus fetches the company-wide presence snapshot. Polled by live
// dashboards.
func (c *Client) LiveStatus(ctx context.Context) (LiveStatus, error) {
	var out LiveStatus
	if err := c.Get(ctx, "/attendance/live-status", nil, &out); err != nil {
		return LiveStatus{}, err
	}
	return out, nil
}
