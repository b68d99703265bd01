package httpx

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/peopledesk/console/internal/adapters/hrmsapi"
	"github.com/peopledesk/console/internal/domain/auth"
	"github.com/peopledesk/console/internal/service"
)

// fakeSessions is a scriptable session state for handler tests.
type fakeSessions struct {
	state     service.SessionState
	loginUser auth.UserSummary
	loginErr  error
	loggedOut bool
}

func (f *fakeSessions) Current() service.SessionState { return f.state }

func (f *fakeSessions) Login(_ context.Context, _, _ string) (auth.UserSummary, error) {
	if f.loginErr != nil {
		return auth.UserSummary{}, f.loginErr
	}
	u := f.loginUser
	f.state = service.SessionState{User: &u}
	return u, nil
}

func (f *fakeSessions) Logout() error {
	f.loggedOut = true
	f.state = service.SessionState{}
	return nil
}

// fakeLive serves empty snapshots.
type fakeLive struct {
	refreshed int
}

func (f *fakeLive) Now() (time.Time, bool)                               { return time.Time{}, false }
func (f *fakeLive) Stats() (hrmsapi.DashboardStats, time.Time, bool)     { return hrmsapi.DashboardStats{}, time.Time{}, false }
func (f *fakeLive) Activities() ([]hrmsapi.Activity, time.Time, bool)    { return nil, time.Time{}, false }
func (f *fakeLive) Live() (hrmsapi.LiveStatus, time.Time, bool)          { return hrmsapi.LiveStatus{}, time.Time{}, false }
func (f *fakeLive) Today() (hrmsapi.TodayAttendance, time.Time, bool)    { return hrmsapi.TodayAttendance{}, time.Time{}, false }
func (f *fakeLive) Refresh(context.Context) bool                         { f.refreshed++; return true }
func (f *fakeLive) Refreshing() bool                                     { return false }

func newTestHandlers(t *testing.T, sessions SessionsService) *UIHandlers {
	t.Helper()
	renderer, err := NewTemplateRenderer(TemplateRendererConfig{})
	require.NoError(t, err)
	return &UIHandlers{
		Sessions: sessions,
		Live:     &fakeLive{},
		Renderer: renderer,
	}
}

func userWithRole(role auth.Role) service.SessionState {
	return service.SessionState{User: &auth.UserSummary{ID: "u1", Role: role}}
}

func TestGuardShowsLoadingBeforeBootstrap(t *testing.T) {
	h := newTestHandlers(t, &fakeSessions{state: service.SessionState{Loading: true}})
	guarded := h.RequireRole(auth.RoleAdmin, func(http.ResponseWriter, *http.Request) {
		t.Fatal("handler must not run while loading")
	})

	rec := httptest.NewRecorder()
	guarded(rec, httptest.NewRequest(http.MethodGet, "/admin", nil))

	// No redirect while the session is still loading.
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Loading")
}

func TestGuardRedirectsAnonymousToLogin(t *testing.T) {
	h := newTestHandlers(t, &fakeSessions{})
	guarded := h.RequireRole(auth.RoleAdmin, func(http.ResponseWriter, *http.Request) {
		t.Fatal("handler must not run for anonymous user")
	})

	rec := httptest.NewRecorder()
	guarded(rec, httptest.NewRequest(http.MethodGet, "/admin", nil))

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/login", rec.Header().Get("Location"))
}

func TestGuardRedirectsWrongRoleToOwnDashboard(t *testing.T) {
	h := newTestHandlers(t, &fakeSessions{state: userWithRole(auth.RoleEmployee)})
	guarded := h.RequireRole(auth.RoleAdmin, func(http.ResponseWriter, *http.Request) {
		t.Fatal("handler must not run for wrong role")
	})

	rec := httptest.NewRecorder()
	guarded(rec, httptest.NewRequest(http.MethodGet, "/admin", nil))

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/employee", rec.Header().Get("Location"))
}

func TestGuardPassesMatchingRole(t *testing.T) {
	h := newTestHandlers(t, &fakeSessions{state: userWithRole(auth.RoleHR)})
	ran := false
	guarded := h.RequireRole(auth.RoleHR, func(w http.ResponseWriter, _ *http.Request) {
		ran = true
		w.WriteHeader(http.StatusOK)
	})

	rec := httptest.NewRecorder()
	guarded(rec, httptest.NewRequest(http.MethodGet, "/hr", nil))

	assert.True(t, ran)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRootRedirectByRole(t *testing.T) {
	cases := []struct {
		role auth.Role
		want string
	}{
		{auth.RoleAdmin, "/admin"},
		{auth.RoleManager, "/manager"},
		{auth.RoleHR, "/hr"},
		{auth.RoleEmployee, "/employee"},
	}
	for _, tc := range cases {
		t.Run(string(tc.role), func(t *testing.T) {
			h := newTestHandlers(t, &fakeSessions{state: userWithRole(tc.role)})
			rec := httptest.NewRecorder()
			h.RootRedirect(rec, httptest.NewRequest(http.MethodGet, "/", nil))

			assert.Equal(t, http.StatusSeeOther, rec.Code)
			assert.Equal(t, tc.want, rec.Header().Get("Location"))
		})
	}
}

func TestRootRedirectAnonymousToLogin(t *testing.T) {
	h := newTestHandlers(t, &fakeSessions{})
	rec := httptest.NewRecorder()
	h.RootRedirect(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/login", rec.Header().Get("Location"))
}

func TestUnknownPathBouncesThroughRoot(t *testing.T) {
	h := newTestHandlers(t, &fakeSessions{state: userWithRole(auth.RoleAdmin)})
	rec := httptest.NewRecorder()
	h.RootRedirect(rec, httptest.NewRequest(http.MethodGet, "/no-such-page", nil))

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/", rec.Header().Get("Location"))
}
