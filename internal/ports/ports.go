// Package ports defines interfaces (hexagonal ports) for the console's
// session plumbing. Implementations live in internal/adapters;
// orchestration in internal/service.
package ports

import "errors"

// ErrNoToken is returned by TokenStore.Load when no token is persisted.
// Absence of a token means logged out.
var ErrNoToken = errors.New("no session token")

// TokenStore persists the single opaque bearer token that is the sole
// durable client-side state. Clear must be idempotent: the 401 handler
// and an explicit logout may race, and both must succeed.
type TokenStore interface {
	Load() (string, error)
	Save(token string) error
	Clear() error
}
