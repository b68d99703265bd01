package httpx

import (
	"net/http"

	"github.com/peopledesk/console/internal/adapters/hrmsapi"
)

// LeavesPage lists all leave requests for review.
func (h *UIHandlers) LeavesPage(w http.ResponseWriter, r *http.Request) {
	params := listParamsFromQuery(r)
	page, err := h.API.ListLeaves(r.Context(), params)
	h.render(w, r, "leaves.tmpl", h.pageData("Leave requests", toListView(page, params.Page)), err)
}

// MyLeavesPage lists the caller's own leave requests with the apply form.
func (h *UIHandlers) MyLeavesPage(w http.ResponseWriter, r *http.Request) {
	leaves, err := h.API.MyLeaves(r.Context())
	h.render(w, r, "leaves_my.tmpl", h.pageData("My leaves", leaves), err)
}

// LeaveCreate submits a leave request for the caller.
func (h *UIHandlers) LeaveCreate(w http.ResponseWriter, r *http.Request) {
	in := hrmsapi.LeaveInput{
		Type:      r.FormValue("type"),
		StartDate: r.FormValue("start_date"),
		EndDate:   r.FormValue("end_date"),
		Reason:    r.FormValue("reason"),
	}
	if err := formValidate.Struct(in); err != nil {
		redirectBackError(w, r, requiredFieldsMessage)
		return
	}
	if _, err := h.API.CreateLeave(r.Context(), in); err != nil {
		h.logger().WarnContext(r.Context(), "create leave failed", "error", err)
		redirectBackError(w, r, hrmsapi.ErrorMessage(err, "Apply failed"))
		return
	}
	redirectBack(w, r)
}

// LeaveSetStatus approves or rejects a leave request.
func (h *UIHandlers) LeaveSetStatus(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if _, err := h.API.UpdateLeaveStatus(r.Context(), id, r.FormValue("status")); err != nil {
		h.logger().WarnContext(r.Context(), "update leave status failed", "leave_id", id, "error", err)
		redirectBackError(w, r, hrmsapi.ErrorMessage(err, "Update failed"))
		return
	}
	redirectBack(w, r)
}

// TasksPage lists all tasks for assignment and review.
func (h *UIHandlers) TasksPage(w http.ResponseWriter, r *http.Request) {
	params := listParamsFromQuery(r)
	page, err := h.API.ListTasks(r.Context(), params)
	h.render(w, r, "tasks.tmpl", h.pageData("Tasks", toListView(page, params.Page)), err)
}

// MyTasksPage lists the caller's assigned tasks with status controls.
func (h *UIHandlers) MyTasksPage(w http.ResponseWriter, r *http.Request) {
	tasks, err := h.API.MyTasks(r.Context())
	h.render(w, r, "tasks_my.tmpl", h.pageData("My tasks", tasks), err)
}

// TaskCreate creates and assigns a task.
func (h *UIHandlers) TaskCreate(w http.ResponseWriter, r *http.Request) {
	in := hrmsapi.TaskInput{
		Title:       r.FormValue("title"),
		Description: r.FormValue("description"),
		AssigneeID:  r.FormValue("assignee_id"),
		Priority:    r.FormValue("priority"),
		DueDate:     r.FormValue("due_date"),
	}
	if err := formValidate.Struct(in); err != nil {
		redirectBackError(w, r, requiredFieldsMessage)
		return
	}
	if _, err := h.API.CreateTask(r.Context(), in); err != nil {
		h.logger().WarnContext(r.Context(), "create task failed", "error", err)
		redirectBackError(w, r, hrmsapi.ErrorMessage(err, "Create failed"))
		return
	}
	redirectBack(w, r)
}

// TaskSetStatus moves a task along its workflow.
func (h *UIHandlers) TaskSetStatus(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if _, err := h.API.UpdateTaskStatus(r.Context(), id, r.FormValue("status")); err != nil {
		h.logger().WarnContext(r.Context(), "update task status failed", "task_id", id, "error", err)
		redirectBackError(w, r, hrmsapi.ErrorMessage(err, "Update failed"))
		return
	}
	redirectBack(w, r)
}

// TaskDelete removes a task.
func (h *UIHandlers) TaskDelete(w http.ResponseWriter, r *http.Request) {
	if err := h.API.DeleteTask(r.Context(), r.PathValue("id")); err != nil {
		h.logger().WarnContext(r.Context(), "delete task failed", "error", err)
		redirectBackError(w, r, hrmsapi.ErrorMessage(err, "Delete failed"))
		return
	}
	redirectBack(w, r)
}
