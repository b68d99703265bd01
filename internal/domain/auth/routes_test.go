package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDashboardPathTotalAndUnique(t *testing.T) {
	seen := map[string]Role{}
	for _, role := range Roles() {
		path := DashboardPath(role)
		assert.NotEqual(t, LoginPath, path, "role %q must have its own root", role)
		prev, dup := seen[path]
		assert.False(t, dup, "roles %q and %q share root %q", prev, role, path)
		seen[path] = role
	}
	assert.Len(t, seen, len(Roles()))
}

func TestDashboardPathUnknownRole(t *testing.T) {
	assert.Equal(t, LoginPath, DashboardPath(Role("superuser")))
	assert.Equal(t, LoginPath, DashboardPath(Role("")))
}

func TestRoleIsValid(t *testing.T) {
	for _, role := range Roles() {
		assert.True(t, role.IsValid())
	}
	assert.False(t, Role("root").IsValid())
}
