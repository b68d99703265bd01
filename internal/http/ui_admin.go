package httpx

import (
	"net/http"

	"github.com/peopledesk/console/internal/adapters/hrmsapi"
	"github.com/peopledesk/console/internal/domain/auth"
)

// reviewQueueView combines the two admin review queues.
type reviewQueueView struct {
	Registrations []hrmsapi.RegistrationRequest
	Resets        []hrmsapi.PasswordResetRequest
	Roles         []auth.Role
}

// ReviewQueuePage shows pending registrations and password resets.
func (h *UIHandlers) ReviewQueuePage(w http.ResponseWriter, r *http.Request) {
	view := reviewQueueView{Roles: auth.Roles()}

	registrations, err := h.API.PendingRegistrations(r.Context())
	if err == nil {
		view.Registrations = registrations
		var rerr error
		view.Resets, rerr = h.API.PendingPasswordResets(r.Context())
		if rerr != nil {
			h.logger().WarnContext(r.Context(), "pending resets fetch failed", "error", rerr)
		}
	}
	h.render(w, r, "review_queue.tmpl", h.pageData("Review queue", view), err)
}

// RegistrationApprove approves a registration with the chosen role.
func (h *UIHandlers) RegistrationApprove(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	role := auth.Role(r.FormValue("role"))
	if !role.IsValid() {
		role = auth.RoleEmployee
	}
	if err := h.API.ApproveRegistration(r.Context(), id, role); err != nil {
		h.logger().WarnContext(r.Context(), "approve registration failed", "registration_id", id, "error", err)
		redirectBackError(w, r, hrmsapi.ErrorMessage(err, "Approve failed"))
		return
	}
	redirectBack(w, r)
}

// RegistrationReject rejects a registration.
func (h *UIHandlers) RegistrationReject(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if err := h.API.RejectRegistration(r.Context(), id); err != nil {
		h.logger().WarnContext(r.Context(), "reject registration failed", "registration_id", id, "error", err)
		redirectBackError(w, r, hrmsapi.ErrorMessage(err, "Reject failed"))
		return
	}
	redirectBack(w, r)
}

// ResetApprove approves a password reset with the admin-chosen password.
func (h *UIHandlers) ResetApprove(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if err := h.API.ApprovePasswordReset(r.Context(), id, r.FormValue("new_password")); err != nil {
		h.logger().WarnContext(r.Context(), "approve password reset failed", "reset_id", id, "error", err)
		redirectBackError(w, r, hrmsapi.ErrorMessage(err, "Approve failed"))
		return
	}
	redirectBack(w, r)
}

// ResetReject rejects a password reset request.
func (h *UIHandlers) ResetReject(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if err := h.API.RejectPasswordReset(r.Context(), id); err != nil {
		h.logger().WarnContext(r.Context(), "reject password reset failed", "reset_id", id, "error", err)
		redirectBackError(w, r, hrmsapi.ErrorMessage(err, "Reject failed"))
		return
	}
	redirectBack(w, r)
}
