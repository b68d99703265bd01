package httpx

import (
	"errors"
	"net/http"

	"github.com/peopledesk/console/internal/adapters/hrmsapi"
	"github.com/peopledesk/console/internal/domain/auth"
	"github.com/peopledesk/console/internal/service"
)

// loginView is the template payload for the login page.
type loginView struct {
	Email string
	Err   string
	// Notice is a non-error message, e.g. after a registration submit.
	Notice string
}

// LoginPage serves the login form. A logged-in user is sent straight to
// their dashboard.
func (h *UIHandlers) LoginPage(w http.ResponseWriter, r *http.Request) {
	if user := h.Sessions.Current().User; user != nil {
		http.Redirect(w, r, auth.DashboardPath(user.Role), http.StatusSeeOther)
		return
	}
	h.Renderer.Render(w, http.StatusOK, "login.tmpl", h.pageData("Sign in", loginView{
		Notice: r.URL.Query().Get("notice"),
	}))
}

// LoginSubmit handles the credential post. On success the user lands on
// their role's dashboard; on failure the form re-renders with the message.
func (h *UIHandlers) LoginSubmit(w http.ResponseWriter, r *http.Request) {
	email := r.FormValue("email")
	password := r.FormValue("password")

	user, err := h.Sessions.Login(r.Context(), email, password)
	if err != nil {
		msg := "Login failed"
		var authErr *service.AuthenticationError
		if errors.As(err, &authErr) {
			msg = authErr.Message
		} else {
			h.logger().ErrorContext(r.Context(), "login failed", "error", err)
		}
		h.Renderer.Render(w, http.StatusUnprocessableEntity, "login.tmpl",
			h.pageData("Sign in", loginView{Email: email, Err: msg}))
		return
	}

	http.Redirect(w, r, auth.DashboardPath(user.Role), http.StatusSeeOther)
}

// Logout ends the session and returns to the login page.
func (h *UIHandlers) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.Sessions.Logout(); err != nil {
		h.logger().ErrorContext(r.Context(), "logout failed", "error", err)
	}
	http.Redirect(w, r, auth.LoginPath, http.StatusSeeOther)
}

// RegisterPage serves the self-registration form.
func (h *UIHandlers) RegisterPage(w http.ResponseWriter, r *http.Request) {
	h.Renderer.Render(w, http.StatusOK, "register.tmpl", h.pageData("Register", nil))
}

// RegisterSubmit files a registration for admin review.
func (h *UIHandlers) RegisterSubmit(w http.ResponseWriter, r *http.Request) {
	in := hrmsapi.RegisterInput{
		Name:       r.FormValue("name"),
		Email:      r.FormValue("email"),
		Password:   r.FormValue("password"),
		Position:   r.FormValue("position"),
		Department: r.FormValue("department"),
	}
	if err := formValidate.Struct(in); err != nil {
		pd := h.pageData("Register", in)
		pd.Err = requiredFieldsMessage
		h.Renderer.Render(w, http.StatusUnprocessableEntity, "register.tmpl", pd)
		return
	}
	if err := h.API.Register(r.Context(), in); err != nil {
		pd := h.pageData("Register", in)
		pd.Err = hrmsapi.ErrorMessage(err, "Registration failed")
		h.Renderer.Render(w, http.StatusUnprocessableEntity, "register.tmpl", pd)
		return
	}
	http.Redirect(w, r, auth.LoginPath+"?notice=Registration+submitted+for+review", http.StatusSeeOther)
}

// PasswordResetPage serves the reset-request form.
func (h *UIHandlers) PasswordResetPage(w http.ResponseWriter, r *http.Request) {
	h.Renderer.Render(w, http.StatusOK, "password_reset.tmpl", h.pageData("Reset password", nil))
}

// PasswordResetSubmit files a reset request for admin action.
func (h *UIHandlers) PasswordResetSubmit(w http.ResponseWriter, r *http.Request) {
	email := r.FormValue("email")
	if err := h.API.RequestPasswordReset(r.Context(), email); err != nil {
		pd := h.pageData("Reset password", nil)
		pd.Err = hrmsapi.ErrorMessage(err, "Request failed")
		h.Renderer.Render(w, http.StatusUnprocessableEntity, "password_reset.tmpl", pd)
		return
	}
	http.Redirect(w, r, auth.LoginPath+"?notice=Reset+request+submitted", http.StatusSeeOther)
}
