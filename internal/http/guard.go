package httpx

import (
	"net/http"

	"github.com/peopledesk/console/internal/domain/auth"
)

// RequireRole guards a role area. Checks run in strict order: while the
// session is still loading nothing redirects and a neutral loading page is
// shown; without a user the request goes to the login page; with the wrong
// role it goes to the user's own dashboard.
func (h *UIHandlers) RequireRole(role auth.Role, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		state := h.Sessions.Current()
		if state.Loading {
			h.Renderer.Render(w, http.StatusOK, "loading.tmpl", PageData{Title: "Loading"})
			return
		}
		if state.User == nil {
			http.Redirect(w, r, auth.LoginPath, http.StatusSeeOther)
			return
		}
		if state.User.Role != role {
			http.Redirect(w, r, auth.DashboardPath(state.User.Role), http.StatusSeeOther)
			return
		}
		next(w, r)
	}
}

// RootRedirect sends "/" to the dashboard for the session's role, or to the
// login page when logged out. Any other unmatched path lands here too and
// bounces through "/" first.
func (h *UIHandlers) RootRedirect(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	state := h.Sessions.Current()
	if state.Loading {
		h.Renderer.Render(w, http.StatusOK, "loading.tmpl", PageData{Title: "Loading"})
		return
	}
	if state.User == nil {
		http.Redirect(w, r, auth.LoginPath, http.StatusSeeOther)
		return
	}
	http.Redirect(w, r, auth.DashboardPath(state.User.Role), http.StatusSeeOther)
}
