// Package tokenfile provides the file-backed token store.
package tokenfile

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/peopledesk/console/internal/ports"
)

// tokenFileName is the fixed storage key for the persisted bearer token.
// It matches the storage key the original web client used.
const tokenFileName = "hrms_token"

const (
	dirMode  = 0o700
	fileMode = 0o600
)

// Store persists the bearer token in a single file. The file's presence is
// the logged-in signal; its absence means logged out.
type Store struct {
	path string
}

// New creates a token store at an explicit path. When path is empty the
// per-user default location is used.
func New(path string) (*Store, error) {
	if path == "" {
		var err error
		path, err = DefaultPath()
		if err != nil {
			return nil, err
		}
	}
	return &Store{path: path}, nil
}

// DefaultPath resolves the default token location under the OS config
// directory (e.g. ~/.config/peopledesk/hrms_token).
func DefaultPath() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve user config dir: %w", err)
	}
	return filepath.Join(base, "peopledesk", tokenFileName), nil
}

// Path returns the location of the token file.
func (s *Store) Path() string { return s.path }

// Load reads the persisted token. Returns ports.ErrNoToken when no token
// is stored.
func (s *Store) Load() (string, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", ports.ErrNoToken
		}
		return "", fmt.Errorf("read token file: %w", err)
	}
	token := strings.TrimSpace(string(data))
	if token == "" {
		return "", ports.ErrNoToken
	}
	return token, nil
}

// Save persists the token, creating the parent directory if needed.
func (s *Store) Save(token string) error {
	if token == "" {
		return errors.New("token cannot be empty")
	}
	if err := os.MkdirAll(filepath.Dir(s.path), dirMode); err != nil {
		return fmt.Errorf("create token dir: %w", err)
	}
	if err := os.WriteFile(s.path, []byte(token), fileMode); err != nil {
		return fmt.Errorf("write token file: %w", err)
	}
	return nil
}

// Clear removes the persisted token. Clearing an already-absent token is
// not an error: the 401 handler and logout may both clear concurrently.
func (s *Store) Clear() error {
	if err := os.Remove(s.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("remove token file: %w", err)
	}
	return nil
}

var _ ports.TokenStore = (*Store)(nil)
