package hrmsapi

import (
	"net/url"
	"strconv"

	"github.com/peopledesk/console/internal/domain/auth"
)

// Pagination is the paging envelope returned by list endpoints.
type Pagination struct {
	Total int `json:"total"`
	Pages int `json:"pages"`
}

// Page is a paginated list response.
type Page[T any] struct {
	Items      []T        `json:"items"`
	Pagination Pagination `json:"pagination"`
}

// ListParams selects a page of a list endpoint. Zero values are omitted and
// the backend applies its defaults.
type ListParams struct {
	Page  int
	Limit int
}

// Values encodes the params as a query string.
func (p ListParams) Values() url.Values {
	q := url.Values{}
	if p.Page > 0 {
		q.Set("page", strconv.Itoa(p.Page))
	}
	if p.Limit > 0 {
		q.Set("limit", strconv.Itoa(p.Limit))
	}
	return q
}

// LoginResult is the response to a successful credential exchange.
type LoginResult struct {
	Token string           `json:"token"`
	User  auth.UserSummary `json:"user"`
}

// Timestamps and dates below are kept as the backend's strings. The console
// renders what the API returned and never derives values locally.

type Employee struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Email      string  `json:"email"`
	Role       string  `json:"role"`
	Position   string  `json:"position"`
	Department string  `json:"department"`
	Phone      string  `json:"phone"`
	JoinDate   string  `json:"join_date"`
	Salary     float64 `json:"salary"`
	Status     string  `json:"status"`
}

// EmployeeInput carries the writable employee fields for create/update.
type EmployeeInput struct {
	Name       string  `json:"name" validate:"required"`
	Email      string  `json:"email" validate:"required,email"`
	Role       string  `json:"role,omitempty"`
	Position   string  `json:"position,omitempty"`
	Department string  `json:"department,omitempty"`
	Phone      string  `json:"phone,omitempty"`
	JoinDate   string  `json:"join_date,omitempty"`
	Salary     float64 `json:"salary,omitempty"`
}

type Department struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Description   string `json:"description"`
	ManagerID     string `json:"manager_id"`
	ManagerName   string `json:"manager_name"`
	EmployeeCount int    `json:"employee_count"`
}

type DepartmentInput struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description,omitempty"`
	ManagerID   string `json:"manager_id,omitempty"`
}

type AttendanceRecord struct {
	ID           string `json:"id"`
	EmployeeID   string `json:"employee_id"`
	EmployeeName string `json:"employee_name"`
	Date         string `json:"date"`
	CheckIn      string `json:"check_in"`
	CheckOut     string `json:"check_out"`
	Status       string `json:"status"`
	WorkHours    string `json:"work_hours"`
}

// TodayAttendance is the caller's own attendance state for the current day.
type TodayAttendance struct {
	Status     string `json:"status"`
	CheckIn    string `json:"check_in"`
	CheckOut   string `json:"check_out"`
	BreakStart string `json:"break_start"`
	BreakEnd   string `json:"break_end"`
	WorkHours  string `json:"work_hours"`
}

// LiveStatus is the company-wide presence snapshot for live dashboards.
type LiveStatus struct {
	CheckedIn  int         `json:"checked_in"`
	OnBreak    int         `json:"on_break"`
	CheckedOut int         `json:"checked_out"`
	Absent     int         `json:"absent"`
	Entries    []LiveEntry `json:"entries"`
}

type LiveEntry struct {
	EmployeeID string `json:"employee_id"`
	Name       string `json:"name"`
	Status     string `json:"status"`
	Since      string `json:"since"`
}

type LeaveRequest struct {
	ID           string `json:"id"`
	EmployeeID   string `json:"employee_id"`
	EmployeeName string `json:"employee_name"`
	Type         string `json:"type"`
	StartDate    string `json:"start_date"`
	EndDate      string `json:"end_date"`
	Reason       string `json:"reason"`
	Status       string `json:"status"`
	AppliedAt    string `json:"applied_at"`
}

type LeaveInput struct {
	Type      string `json:"type" validate:"required"`
	StartDate string `json:"start_date" validate:"required"`
	EndDate   string `json:"end_date" validate:"required"`
	Reason    string `json:"reason,omitempty"`
}

type PayrollRecord struct {
	ID           string  `json:"id"`
	EmployeeID   string  `json:"employee_id"`
	EmployeeName string  `json:"employee_name"`
	Month        string  `json:"month"`
	BaseSalary   float64 `json:"base_salary"`
	Allowances   float64 `json:"allowances"`
	Deductions   float64 `json:"deductions"`
	NetSalary    float64 `json:"net_salary"`
	Status       string  `json:"status"`
}

type PayrollInput struct {
	EmployeeID string  `json:"employee_id" validate:"required"`
	Month      string  `json:"month" validate:"required"`
	BaseSalary float64 `json:"base_salary"`
	Allowances float64 `json:"allowances,omitempty"`
	Deductions float64 `json:"deductions,omitempty"`
}

type PayrollSummary struct {
	Month     string  `json:"month"`
	TotalNet  float64 `json:"total_net"`
	Processed int     `json:"processed"`
	Paid      int     `json:"paid"`
	Pending   int     `json:"pending"`
}

type Task struct {
	ID           string `json:"id"`
	Title        string `json:"title"`
	Description  string `json:"description"`
	AssigneeID   string `json:"assignee_id"`
	AssigneeName string `json:"assignee_name"`
	Priority     string `json:"priority"`
	Status       string `json:"status"`
	DueDate      string `json:"due_date"`
}

type TaskInput struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description,omitempty"`
	AssigneeID  string `json:"assignee_id,omitempty"`
	Priority    string `json:"priority,omitempty"`
	DueDate     string `json:"due_date,omitempty"`
}

type Announcement struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Content   string `json:"content"`
	Audience  string `json:"audience"`
	Author    string `json:"author"`
	CreatedAt string `json:"created_at"`
}

type AnnouncementInput struct {
	Title    string `json:"title" validate:"required"`
	Content  string `json:"content" validate:"required"`
	Audience string `json:"audience,omitempty"`
}

type JobPosting struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Department  string `json:"department"`
	Location    string `json:"location"`
	Type        string `json:"type"`
	Status      string `json:"status"`
	Description string `json:"description"`
	PostedAt    string `json:"posted_at"`
}

type JobPostingInput struct {
	Title       string `json:"title" validate:"required"`
	Department  string `json:"department,omitempty"`
	Location    string `json:"location,omitempty"`
	Type        string `json:"type,omitempty"`
	Description string `json:"description,omitempty"`
}

type Team struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Description string       `json:"description"`
	LeadID      string       `json:"lead_id"`
	LeadName    string       `json:"lead_name"`
	Members     []TeamMember `json:"members"`
}

type TeamInput struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description,omitempty"`
	LeadID      string `json:"lead_id,omitempty"`
}

type TeamMember struct {
	ID     string `json:"id"`
	UserID string `json:"user_id"`
	Name   string `json:"name"`
	Role   string `json:"role"`
}

// RegistrationRequest is a pending self-registration awaiting admin review.
type RegistrationRequest struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	Position    string `json:"position"`
	Department  string `json:"department"`
	RequestedAt string `json:"requested_at"`
}

// RegisterInput is a self-registration submission.
type RegisterInput struct {
	Name       string `json:"name" validate:"required"`
	Email      string `json:"email" validate:"required,email"`
	Password   string `json:"password" validate:"required"`
	Position   string `json:"position,omitempty"`
	Department string `json:"department,omitempty"`
}

// PasswordResetRequest is a pending reset awaiting admin action.
type PasswordResetRequest struct {
	ID          string `json:"id"`
	Email       string `json:"email"`
	Status      string `json:"status"`
	RequestedAt string `json:"requested_at"`
}

// DashboardStats is the headline-number block on role dashboards.
type DashboardStats struct {
	TotalEmployees int `json:"total_employees"`
	PresentToday   int `json:"present_today"`
	OnLeave        int `json:"on_leave"`
	PendingLeaves  int `json:"pending_leaves"`
	OpenTasks      int `json:"open_tasks"`
	Departments    int `json:"departments"`
}

// Activity is a recent-activity feed entry.
type Activity struct {
	At     string `json:"at"`
	Actor  string `json:"actor"`
	Action string `json:"action"`
}
