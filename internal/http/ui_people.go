package httpx

import (
	"net/http"

	"github.com/peopledesk/console/internal/adapters/hrmsapi"
)

// listView wraps a paginated resource page with its pager state.
type listView[T any] struct {
	Items []T
	Page  int
	Pages int
	Total int
}

func toListView[T any](page hrmsapi.Page[T], current int) listView[T] {
	if current < 1 {
		current = 1
	}
	return listView[T]{
		Items: page.Items,
		Page:  current,
		Pages: page.Pagination.Pages,
		Total: page.Pagination.Total,
	}
}

// EmployeesPage lists the employee directory for the given role area.
func (h *UIHandlers) EmployeesPage(w http.ResponseWriter, r *http.Request) {
	params := listParamsFromQuery(r)
	page, err := h.API.ListEmployees(r.Context(), params)
	h.render(w, r, "employees.tmpl",
		h.pageData("Employees", toListView(page, params.Page)), err)
}

// EmployeeCreate adds a directory entry.
func (h *UIHandlers) EmployeeCreate(w http.ResponseWriter, r *http.Request) {
	in := hrmsapi.EmployeeInput{
		Name:       r.FormValue("name"),
		Email:      r.FormValue("email"),
		Role:       r.FormValue("role"),
		Position:   r.FormValue("position"),
		Department: r.FormValue("department"),
		Phone:      r.FormValue("phone"),
		JoinDate:   r.FormValue("join_date"),
		Salary:     formFloat(r, "salary"),
	}
	if err := formValidate.Struct(in); err != nil {
		redirectBackError(w, r, requiredFieldsMessage)
		return
	}
	if _, err := h.API.CreateEmployee(r.Context(), in); err != nil {
		h.logger().WarnContext(r.Context(), "create employee failed", "error", err)
		redirectBackError(w, r, hrmsapi.ErrorMessage(err, "Create failed"))
		return
	}
	redirectBack(w, r)
}

// EmployeeDelete removes a directory entry.
func (h *UIHandlers) EmployeeDelete(w http.ResponseWriter, r *http.Request) {
	if err := h.API.DeleteEmployee(r.Context(), r.PathValue("id")); err != nil {
		h.logger().WarnContext(r.Context(), "delete employee failed", "error", err)
		redirectBackError(w, r, hrmsapi.ErrorMessage(err, "Delete failed"))
		return
	}
	redirectBack(w, r)
}

// DepartmentsPage lists departments with headcounts.
func (h *UIHandlers) DepartmentsPage(w http.ResponseWriter, r *http.Request) {
	departments, err := h.API.ListDepartments(r.Context())
	h.render(w, r, "departments.tmpl", h.pageData("Departments", departments), err)
}

// DepartmentCreate adds a department.
func (h *UIHandlers) DepartmentCreate(w http.ResponseWriter, r *http.Request) {
	in := hrmsapi.DepartmentInput{
		Name:        r.FormValue("name"),
		Description: r.FormValue("description"),
		ManagerID:   r.FormValue("manager_id"),
	}
	if err := formValidate.Struct(in); err != nil {
		redirectBackError(w, r, requiredFieldsMessage)
		return
	}
	if _, err := h.API.CreateDepartment(r.Context(), in); err != nil {
		h.logger().WarnContext(r.Context(), "create department failed", "error", err)
		redirectBackError(w, r, hrmsapi.ErrorMessage(err, "Create failed"))
		return
	}
	redirectBack(w, r)
}

// DepartmentDelete removes a department.
func (h *UIHandlers) DepartmentDelete(w http.ResponseWriter, r *http.Request) {
	if err := h.API.DeleteDepartment(r.Context(), r.PathValue("id")); err != nil {
		h.logger().WarnContext(r.Context(), "delete department failed", "error", err)
		redirectBackError(w, r, hrmsapi.ErrorMessage(err, "Delete failed"))
		return
	}
	redirectBack(w, r)
}

// TeamsPage lists teams and their rosters.
func (h *UIHandlers) TeamsPage(w http.ResponseWriter, r *http.Request) {
	teams, err := h.API.ListTeams(r.Context())
	h.render(w, r, "teams.tmpl", h.pageData("Teams", teams), err)
}

// TeamCreate adds a team.
func (h *UIHandlers) TeamCreate(w http.ResponseWriter, r *http.Request) {
	in := hrmsapi.TeamInput{
		Name:        r.FormValue("name"),
		Description: r.FormValue("description"),
		LeadID:      r.FormValue("lead_id"),
	}
	if err := formValidate.Struct(in); err != nil {
		redirectBackError(w, r, requiredFieldsMessage)
		return
	}
	if _, err := h.API.CreateTeam(r.Context(), in); err != nil {
		h.logger().WarnContext(r.Context(), "create team failed", "error", err)
		redirectBackError(w, r, hrmsapi.ErrorMessage(err, "Create failed"))
		return
	}
	redirectBack(w, r)
}

// TeamDelete removes a team.
func (h *UIHandlers) TeamDelete(w http.ResponseWriter, r *http.Request) {
	if err := h.API.DeleteTeam(r.Context(), r.PathValue("id")); err != nil {
		h.logger().WarnContext(r.Context(), "delete team failed", "error", err)
		redirectBackError(w, r, hrmsapi.ErrorMessage(err, "Delete failed"))
		return
	}
	redirectBack(w, r)
}

// TeamMemberAdd puts a user on a team.
func (h *UIHandlers) TeamMemberAdd(w http.ResponseWriter, r *http.Request) {
	teamID := r.PathValue("id")
	if _, err := h.API.AddTeamMember(r.Context(), teamID, r.FormValue("user_id"), r.FormValue("role")); err != nil {
		h.logger().WarnContext(r.Context(), "add team member failed", "team_id", teamID, "error", err)
		redirectBackError(w, r, hrmsapi.ErrorMessage(err, "Add member failed"))
		return
	}
	redirectBack(w, r)
}

// TeamMemberRemove takes a member off a team.
func (h *UIHandlers) TeamMemberRemove(w http.ResponseWriter, r *http.Request) {
	teamID := r.PathValue("id")
	if err := h.API.RemoveTeamMember(r.Context(), teamID, r.PathValue("member")); err != nil {
		h.logger().WarnContext(r.Context(), "remove team member failed", "team_id", teamID, "error", err)
		redirectBackError(w, r, hrmsapi.ErrorMessage(err, "Remove member failed"))
		return
	}
	redirectBack(w, r)
}
