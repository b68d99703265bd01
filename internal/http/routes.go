package httpx

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/peopledesk/console/internal/adapters/hrmsapi"
	"github.com/peopledesk/console/internal/domain/auth"
	"github.com/peopledesk/console/internal/service"
)

// RouterServices holds all the services needed by the HTTP router.
type RouterServices struct {
	API      *hrmsapi.Client
	Sessions SessionsService
	Live     LiveReadService
	Watch    *service.AttendanceWatcher
	Renderer *TemplateRenderer
	Logger   *slog.Logger
}

// NewRouter creates and configures the console router. Each role area is
// guarded as a whole; page capabilities per role follow the HRMS roles
// (admin sees everything, employees only their own records).
func NewRouter(services RouterServices) http.Handler {
	mux := http.NewServeMux()

	h := &UIHandlers{
		API:      services.API,
		Sessions: services.Sessions,
		Live:     services.Live,
		Watch:    services.Watch,
		Renderer: services.Renderer,
		Logger:   services.Logger,
	}

	registerAuthRoutes(mux, h)
	registerAdminRoutes(mux, h)
	registerHRRoutes(mux, h)
	registerManagerRoutes(mux, h)
	registerEmployeeRoutes(mux, h)

	mux.Handle("GET /healthz", http.HandlerFunc(healthHandler))
	mux.HandleFunc("/", h.RootRedirect)

	logger := services.Logger
	if logger == nil {
		logger = slog.Default()
	}
	var handler http.Handler = mux
	handler = Logging(logger)(handler)
	handler = Recover(logger)(handler)
	return handler
}

func healthHandler(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func registerAuthRoutes(mux *http.ServeMux, h *UIHandlers) {
	mux.HandleFunc("GET /login", h.LoginPage)
	mux.HandleFunc("POST /login", h.LoginSubmit)
	mux.HandleFunc("POST /logout", h.Logout)
	mux.HandleFunc("GET /register", h.RegisterPage)
	mux.HandleFunc("POST /register", h.RegisterSubmit)
	mux.HandleFunc("GET /password-reset", h.PasswordResetPage)
	mux.HandleFunc("POST /password-reset", h.PasswordResetSubmit)
}

func registerAdminRoutes(mux *http.ServeMux, h *UIHandlers) {
	guard := func(next http.HandlerFunc) http.HandlerFunc {
		return h.RequireRole(auth.RoleAdmin, next)
	}

	mux.HandleFunc("GET /admin", guard(h.AdminDashboard))
	mux.HandleFunc("POST /admin/refresh", guard(h.RefreshNow))

	mux.HandleFunc("GET /admin/employees", guard(h.EmployeesPage))
	mux.HandleFunc("POST /admin/employees", guard(h.EmployeeCreate))
	mux.HandleFunc("POST /admin/employees/{id}/delete", guard(h.EmployeeDelete))

	mux.HandleFunc("GET /admin/departments", guard(h.DepartmentsPage))
	mux.HandleFunc("POST /admin/departments", guard(h.DepartmentCreate))
	mux.HandleFunc("POST /admin/departments/{id}/delete", guard(h.DepartmentDelete))

	mux.HandleFunc("GET /admin/teams", guard(h.TeamsPage))
	mux.HandleFunc("POST /admin/teams", guard(h.TeamCreate))
	mux.HandleFunc("POST /admin/teams/{id}/delete", guard(h.TeamDelete))
	mux.HandleFunc("POST /admin/teams/{id}/members", guard(h.TeamMemberAdd))
	mux.HandleFunc("POST /admin/teams/{id}/members/{member}/delete", guard(h.TeamMemberRemove))

	mux.HandleFunc("GET /admin/attendance", guard(h.AttendanceSheetPage))

	mux.HandleFunc("GET /admin/leaves", guard(h.LeavesPage))
	mux.HandleFunc("POST /admin/leaves/{id}/status", guard(h.LeaveSetStatus))

	mux.HandleFunc("GET /admin/payroll", guard(h.PayrollPage))
	mux.HandleFunc("POST /admin/payroll", guard(h.PayrollCreate))
	mux.HandleFunc("POST /admin/payroll/{id}/process", guard(h.PayrollProcess))
	mux.HandleFunc("POST /admin/payroll/{id}/pay", guard(h.PayrollPay))

	mux.HandleFunc("GET /admin/tasks", guard(h.TasksPage))
	mux.HandleFunc("POST /admin/tasks", guard(h.TaskCreate))
	mux.HandleFunc("POST /admin/tasks/{id}/status", guard(h.TaskSetStatus))
	mux.HandleFunc("POST /admin/tasks/{id}/delete", guard(h.TaskDelete))

	mux.HandleFunc("GET /admin/announcements", guard(h.AnnouncementsPage))
	mux.HandleFunc("POST /admin/announcements", guard(h.AnnouncementCreate))
	mux.HandleFunc("POST /admin/announcements/{id}/delete", guard(h.AnnouncementDelete))

	mux.HandleFunc("GET /admin/hiring", guard(h.HiringPage))
	mux.HandleFunc("POST /admin/hiring", guard(h.JobCreate))
	mux.HandleFunc("POST /admin/hiring/{id}/delete", guard(h.JobDelete))

	mux.HandleFunc("GET /admin/reviews", guard(h.ReviewQueuePage))
	mux.HandleFunc("POST /admin/registrations/{id}/approve", guard(h.RegistrationApprove))
	mux.HandleFunc("POST /admin/registrations/{id}/reject", guard(h.RegistrationReject))
	mux.HandleFunc("POST /admin/password-resets/{id}/approve", guard(h.ResetApprove))
	mux.HandleFunc("POST /admin/password-resets/{id}/reject", guard(h.ResetReject))
}

func registerHRRoutes(mux *http.ServeMux, h *UIHandlers) {
	guard := func(next http.HandlerFunc) http.HandlerFunc {
		return h.RequireRole(auth.RoleHR, next)
	}

	mux.HandleFunc("GET /hr", guard(h.HRDashboard))
	mux.HandleFunc("POST /hr/refresh", guard(h.RefreshNow))

	mux.HandleFunc("GET /hr/employees", guard(h.EmployeesPage))
	mux.HandleFunc("POST /hr/employees", guard(h.EmployeeCreate))
	mux.HandleFunc("POST /hr/employees/{id}/delete", guard(h.EmployeeDelete))

	mux.HandleFunc("GET /hr/departments", guard(h.DepartmentsPage))

	mux.HandleFunc("GET /hr/attendance", guard(h.AttendanceSheetPage))

	mux.HandleFunc("GET /hr/leaves", guard(h.LeavesPage))
	mux.HandleFunc("POST /hr/leaves/{id}/status", guard(h.LeaveSetStatus))

	mux.HandleFunc("GET /hr/payroll", guard(h.PayrollPage))
	mux.HandleFunc("POST /hr/payroll", guard(h.PayrollCreate))
	mux.HandleFunc("POST /hr/payroll/{id}/process", guard(h.PayrollProcess))
	mux.HandleFunc("POST /hr/payroll/{id}/pay", guard(h.PayrollPay))

	mux.HandleFunc("GET /hr/announcements", guard(h.AnnouncementsPage))
	mux.HandleFunc("POST /hr/announcements", guard(h.AnnouncementCreate))

	mux.HandleFunc("GET /hr/hiring", guard(h.HiringPage))
	mux.HandleFunc("POST /hr/hiring", guard(h.JobCreate))
	mux.HandleFunc("POST /hr/hiring/{id}/delete", guard(h.JobDelete))
}

func registerManagerRoutes(mux *http.ServeMux, h *UIHandlers) {
	guard := func(next http.HandlerFunc) http.HandlerFunc {
		return h.RequireRole(auth.RoleManager, next)
	}

	mux.HandleFunc("GET /manager", guard(h.ManagerDashboard))
	mux.HandleFunc("POST /manager/refresh", guard(h.RefreshNow))

	mux.HandleFunc("GET /manager/teams", guard(h.TeamsPage))
	mux.HandleFunc("POST /manager/teams/{id}/members", guard(h.TeamMemberAdd))
	mux.HandleFunc("POST /manager/teams/{id}/members/{member}/delete", guard(h.TeamMemberRemove))

	mux.HandleFunc("GET /manager/attendance", guard(h.AttendanceSheetPage))

	mux.HandleFunc("GET /manager/leaves", guard(h.LeavesPage))
	mux.HandleFunc("POST /manager/leaves/{id}/status", guard(h.LeaveSetStatus))

	mux.HandleFunc("GET /manager/tasks", guard(h.TasksPage))
	mux.HandleFunc("POST /manager/tasks", guard(h.TaskCreate))
	mux.HandleFunc("POST /manager/tasks/{id}/status", guard(h.TaskSetStatus))
	mux.HandleFunc("POST /manager/tasks/{id}/delete", guard(h.TaskDelete))

	mux.HandleFunc("GET /manager/announcements", guard(h.AnnouncementsPage))
	mux.HandleFunc("POST /manager/announcements", guard(h.AnnouncementCreate))
}

func registerEmployeeRoutes(mux *http.ServeMux, h *UIHandlers) {
	guard := func(next http.HandlerFunc) http.HandlerFunc {
		return h.RequireRole(auth.RoleEmployee, next)
	}

	mux.HandleFunc("GET /employee", guard(h.EmployeeDashboard))
	mux.HandleFunc("POST /employee/refresh", guard(h.RefreshNow))

	mux.HandleFunc("POST /employee/check-in", guard(h.AttendanceAction(
		func(ctx context.Context, c *hrmsapi.Client) error { _, err := c.CheckIn(ctx); return err })))
	mux.HandleFunc("POST /employee/check-out", guard(h.AttendanceAction(
		func(ctx context.Context, c *hrmsapi.Client) error { _, err := c.CheckOut(ctx); return err })))
	mux.HandleFunc("POST /employee/break-start", guard(h.AttendanceAction(
		func(ctx context.Context, c *hrmsapi.Client) error { _, err := c.BreakStart(ctx); return err })))
	mux.HandleFunc("POST /employee/break-end", guard(h.AttendanceAction(
		func(ctx context.Context, c *hrmsapi.Client) error { _, err := c.BreakEnd(ctx); return err })))

	mux.HandleFunc("GET /employee/attendance", guard(h.MyAttendancePage))

	mux.HandleFunc("GET /employee/leaves", guard(h.MyLeavesPage))
	mux.HandleFunc("POST /employee/leaves", guard(h.LeaveCreate))

	mux.HandleFunc("GET /employee/payslips", guard(h.MyPayslipsPage))

	mux.HandleFunc("GET /employee/tasks", guard(h.MyTasksPage))
	mux.HandleFunc("POST /employee/tasks/{id}/status", guard(h.TaskSetStatus))

	mux.HandleFunc("GET /employee/announcements", guard(h.AnnouncementsPage))
}
