package httpx

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/peopledesk/console/internal/adapters/hrmsapi"
	"github.com/peopledesk/console/internal/domain/auth"
	"github.com/peopledesk/console/internal/service"
)

// staticTokens satisfies ports.TokenStore with a fixed token.
type staticTokens struct{}

func (staticTokens) Load() (string, error) { return "tkn", nil }
func (staticTokens) Save(string) error     { return nil }
func (staticTokens) Clear() error          { return nil }

func newAPIRouter(t *testing.T, backend http.Handler, role auth.Role) http.Handler {
	t.Helper()
	srv := httptest.NewServer(backend)
	t.Cleanup(srv.Close)

	api, err := hrmsapi.New(hrmsapi.Options{BaseURL: srv.URL, Tokens: staticTokens{}})
	require.NoError(t, err)

	renderer, err := NewTemplateRenderer(TemplateRendererConfig{})
	require.NoError(t, err)
	return NewRouter(RouterServices{
		API:      api,
		Sessions: &fakeSessions{state: userWithRole(role)},
		Live:     &fakeLive{},
		Renderer: renderer,
	})
}

func postForm(router http.Handler, target, referer string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Referer", referer)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestCreateErrorMessageCarriedBack(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /employees", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":"email already exists"}`))
	})
	mux.HandleFunc("GET /employees", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"items":[],"pagination":{"total":0,"pages":0}}`))
	})
	router := newAPIRouter(t, mux, auth.RoleAdmin)

	form := url.Values{"name": {"Ada"}, "email": {"ada@corp.test"}}
	rec := postForm(router, "/admin/employees", "/admin/employees", form)

	require.Equal(t, http.StatusSeeOther, rec.Code)
	loc, err := url.Parse(rec.Header().Get("Location"))
	require.NoError(t, err)
	assert.Equal(t, "/admin/employees", loc.Path)
	assert.Equal(t, "email already exists", loc.Query().Get("err"))

	// Following the redirect shows the backend's message on the page.
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, loc.String(), nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "email already exists")
}

func TestCreateChecksRequiredFieldsBeforeDispatch(t *testing.T) {
	var hits atomic.Int32
	backend := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		hits.Add(1)
		w.WriteHeader(http.StatusOK)
	})
	router := newAPIRouter(t, backend, auth.RoleAdmin)

	// Email is required but missing.
	rec := postForm(router, "/admin/employees", "/admin/employees", url.Values{"name": {"Ada"}})

	require.Equal(t, http.StatusSeeOther, rec.Code)
	loc, err := url.Parse(rec.Header().Get("Location"))
	require.NoError(t, err)
	assert.Equal(t, requiredFieldsMessage, loc.Query().Get("err"))
	assert.EqualValues(t, 0, hits.Load())
}

func TestClockActionErrorShownOnDashboard(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /attendance/check-in", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":"Already checked in today"}`))
	})
	router := newAPIRouter(t, mux, auth.RoleEmployee)

	rec := postForm(router, "/employee/check-in", "/employee", nil)

	require.Equal(t, http.StatusSeeOther, rec.Code)
	loc, err := url.Parse(rec.Header().Get("Location"))
	require.NoError(t, err)
	assert.Equal(t, "/employee", loc.Path)
	assert.Equal(t, "Already checked in today", loc.Query().Get("err"))

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, loc.String(), nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Already checked in today")
}

// countingLister records attendance sheet fetches.
type countingLister struct{ n atomic.Int32 }

func (l *countingLister) ListAttendance(context.Context, string, hrmsapi.ListParams) (hrmsapi.Page[hrmsapi.AttendanceRecord], error) {
	l.n.Add(1)
	return hrmsapi.Page[hrmsapi.AttendanceRecord]{}, nil
}

func TestAttendanceSheetReloadKeepsWatch(t *testing.T) {
	lister := &countingLister{}
	watch, err := service.NewAttendanceWatcher(service.AttendanceWatchOptions{
		Client:   lister,
		Interval: time.Hour,
	})
	require.NoError(t, err)
	defer watch.Stop()

	renderer, err := NewTemplateRenderer(TemplateRendererConfig{})
	require.NoError(t, err)
	router := NewRouter(RouterServices{
		Sessions: &fakeSessions{state: userWithRole(auth.RoleHR)},
		Live:     &fakeLive{},
		Watch:    watch,
		Renderer: renderer,
	})

	get := func(target string) {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
		require.Equal(t, http.StatusOK, rec.Code)
	}

	// First load starts the watch and its immediate fetch.
	get("/hr/attendance")
	require.Eventually(t, func() bool { return lister.n.Load() == 1 }, time.Second, 10*time.Millisecond)
	require.True(t, watch.Active())

	// Reloading the default view keeps the running loop instead of
	// restarting it.
	get("/hr/attendance")
	time.Sleep(50 * time.Millisecond)
	assert.EqualValues(t, 1, lister.n.Load())
	assert.True(t, watch.Active())

	// Picking a date restarts the loop for that date.
	get("/hr/attendance?date=2026-08-27")
	require.Eventually(t, func() bool { return lister.n.Load() == 2 }, time.Second, 10*time.Millisecond)
	assert.Equal(t, "2026-08-27", watch.Date())
}
