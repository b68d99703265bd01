// Package auth contains domain-level types for the console session.
// It is pure and free of transport/adapter concerns.
package auth

// Role represents a user's authorization role as reported by the backend.
// Keep string form for easy persistence and template rendering.
// Valid values are defined as constants below.
type Role string

const (
	RoleAdmin    Role = "admin"
	RoleManager  Role = "manager"
	RoleHR       Role = "hr"
	RoleEmployee Role = "employee"
)

// Roles returns every valid role. The slice is freshly allocated on each call.
func Roles() []Role {
	return []Role{RoleAdmin, RoleManager, RoleHR, RoleEmployee}
}

// IsValid reports whether r is one of the known roles.
func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleManager, RoleHR, RoleEmployee:
		return true
	default:
		return false
	}
}

// UserSummary is the authenticated identity returned by the backend.
// It is server-authoritative: the client treats it as immutable within a
// session and replaces it wholesale on re-fetch, never field-by-field.
type UserSummary struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Role       Role   `json:"role"`
	Position   string `json:"position,omitempty"`
	Department string `json:"department,omitempty"`
}
