package httpx

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/peopledesk/console/internal/domain/auth"
	"github.com/peopledesk/console/internal/service"
)

func newTestRouter(t *testing.T, sessions SessionsService) http.Handler {
	t.Helper()
	renderer, err := NewTemplateRenderer(TemplateRendererConfig{})
	require.NoError(t, err)
	return NewRouter(RouterServices{
		Sessions: sessions,
		Live:     &fakeLive{},
		Renderer: renderer,
	})
}

func TestHealthz(t *testing.T) {
	router := newTestRouter(t, &fakeSessions{})
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestLoginPageRendersForm(t *testing.T) {
	router := newTestRouter(t, &fakeSessions{})
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/login", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `action="/login"`)
}

func TestLoginPageRedirectsWhenAlreadySignedIn(t *testing.T) {
	router := newTestRouter(t, &fakeSessions{state: userWithRole(auth.RoleManager)})
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/login", nil))

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/manager", rec.Header().Get("Location"))
}

func TestLoginSubmitRedirectsToRoleDashboard(t *testing.T) {
	sessions := &fakeSessions{loginUser: auth.UserSummary{ID: "u1", Role: auth.RoleHR}}
	router := newTestRouter(t, sessions)

	form := url.Values{"email": {"a@b.c"}, "password": {"pw"}}
	req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/hr", rec.Header().Get("Location"))
}

func TestLoginSubmitShowsServerMessage(t *testing.T) {
	sessions := &fakeSessions{loginErr: &service.AuthenticationError{Message: "invalid credentials"}}
	router := newTestRouter(t, sessions)

	form := url.Values{"email": {"a@b.c"}, "password": {"nope"}}
	req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, rec.Body.String(), "invalid credentials")
}

func TestLogoutRedirectsToLogin(t *testing.T) {
	sessions := &fakeSessions{state: userWithRole(auth.RoleAdmin)}
	router := newTestRouter(t, sessions)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/logout", nil))

	assert.True(t, sessions.loggedOut)
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/login", rec.Header().Get("Location"))
}

func TestRoleAreasAreGuarded(t *testing.T) {
	router := newTestRouter(t, &fakeSessions{state: userWithRole(auth.RoleEmployee)})

	for _, path := range []string{"/admin", "/hr", "/manager"} {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusSeeOther, rec.Code, path)
		assert.Equal(t, "/employee", rec.Header().Get("Location"), path)
	}
}

func TestEmployeeDashboardRenders(t *testing.T) {
	router := newTestRouter(t, &fakeSessions{state: userWithRole(auth.RoleEmployee)})
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/employee", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Check in")
}

func TestRefreshEndpointTriggersLive(t *testing.T) {
	live := &fakeLive{}
	renderer, err := NewTemplateRenderer(TemplateRendererConfig{})
	require.NoError(t, err)
	router := NewRouter(RouterServices{
		Sessions: &fakeSessions{state: userWithRole(auth.RoleAdmin)},
		Live:     live,
		Renderer: renderer,
	})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/admin/refresh", nil))

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, 1, live.refreshed)
}
