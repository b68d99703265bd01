package config

// SessionConfig controls where the persisted bearer token lives.
// The token file is the sole durable client-side state: absence means
// logged out.
type SessionConfig struct {
	// TokenPath overrides the token file location. When empty the store
	// resolves a per-user default under the OS config directory.
	TokenPath string `env:"TOKEN_PATH"`
}
