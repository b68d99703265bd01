package auth

// LoginPath is where unauthenticated (or unknown-role) navigation lands.
const LoginPath = "/login"

// dashboardRoots is the single role-to-route table shared by the route
// guard, the root redirect, and the login success handler. Every valid
// role has exactly one entry; keep this the only copy in the codebase.
var dashboardRoots = map[Role]string{
	RoleAdmin:    "/admin",
	RoleManager:  "/manager",
	RoleHR:       "/hr",
	RoleEmployee: "/employee",
}

// DashboardPath returns the dashboard root path for a role. It is total:
// an unknown or missing role maps to the login path.
func DashboardPath(r Role) string {
	if p, ok := dashboardRoots[r]; ok {
		return p
	}
	return LoginPath
}
