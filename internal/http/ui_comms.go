package httpx

import (
	"net/http"

	"github.com/peopledesk/console/internal/adapters/hrmsapi"
)

// AnnouncementsPage lists announcements; managers and up also get the
// publish form in the template.
func (h *UIHandlers) AnnouncementsPage(w http.ResponseWriter, r *http.Request) {
	items, err := h.API.ListAnnouncements(r.Context())
	h.render(w, r, "announcements.tmpl", h.pageData("Announcements", items), err)
}

// AnnouncementCreate publishes an announcement.
func (h *UIHandlers) AnnouncementCreate(w http.ResponseWriter, r *http.Request) {
	in := hrmsapi.AnnouncementInput{
		Title:    r.FormValue("title"),
		Content:  r.FormValue("content"),
		Audience: r.FormValue("audience"),
	}
	if err := formValidate.Struct(in); err != nil {
		redirectBackError(w, r, requiredFieldsMessage)
		return
	}
	if _, err := h.API.CreateAnnouncement(r.Context(), in); err != nil {
		h.logger().WarnContext(r.Context(), "create announcement failed", "error", err)
		redirectBackError(w, r, hrmsapi.ErrorMessage(err, "Publish failed"))
		return
	}
	redirectBack(w, r)
}

// AnnouncementDelete removes an announcement.
func (h *UIHandlers) AnnouncementDelete(w http.ResponseWriter, r *http.Request) {
	if err := h.API.DeleteAnnouncement(r.Context(), r.PathValue("id")); err != nil {
		h.logger().WarnContext(r.Context(), "delete announcement failed", "error", err)
		redirectBackError(w, r, hrmsapi.ErrorMessage(err, "Delete failed"))
		return
	}
	redirectBack(w, r)
}

// HiringPage lists job postings.
func (h *UIHandlers) HiringPage(w http.ResponseWriter, r *http.Request) {
	params := listParamsFromQuery(r)
	page, err := h.API.ListJobs(r.Context(), params)
	h.render(w, r, "hiring.tmpl", h.pageData("Hiring", toListView(page, params.Page)), err)
}

// JobCreate opens a job posting.
func (h *UIHandlers) JobCreate(w http.ResponseWriter, r *http.Request) {
	in := hrmsapi.JobPostingInput{
		Title:       r.FormValue("title"),
		Department:  r.FormValue("department"),
		Location:    r.FormValue("location"),
		Type:        r.FormValue("type"),
		Description: r.FormValue("description"),
	}
	if err := formValidate.Struct(in); err != nil {
		redirectBackError(w, r, requiredFieldsMessage)
		return
	}
	if _, err := h.API.CreateJob(r.Context(), in); err != nil {
		h.logger().WarnContext(r.Context(), "create job posting failed", "error", err)
		redirectBackError(w, r, hrmsapi.ErrorMessage(err, "Create failed"))
		return
	}
	redirectBack(w, r)
}

// JobDelete closes and removes a job posting.
func (h *UIHandlers) JobDelete(w http.ResponseWriter, r *http.Request) {
	if err := h.API.DeleteJob(r.Context(), r.PathValue("id")); err != nil {
		h.logger().WarnContext(r.Context(), "delete job posting failed", "error", err)
		redirectBackError(w, r, hrmsapi.ErrorMessage(err, "Delete failed"))
		return
	}
	redirectBack(w, r)
}
