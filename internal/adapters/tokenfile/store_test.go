package tokenfile

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/peopledesk/console/internal/ports"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := New(filepath.Join(t.TempDir(), "nested", "hrms_token"))
	require.NoError(t, err)
	return s
}

func TestLoadMissingToken(t *testing.T) {
	s := newTestStore(t)

	_, err := s.Load()
	assert.ErrorIs(t, err, ports.ErrNoToken)
}

func TestSaveAndLoad(t *testing.T) {
	s := newTestStore(t)

	require.NoError(t, s.Save("tok-123"))

	token, err := s.Load()
	require.NoError(t, err)
	assert.Equal(t, "tok-123", token)
}

func TestSaveEmptyTokenRejected(t *testing.T) {
	s := newTestStore(t)
	assert.Error(t, s.Save(""))
}

func TestClearIsIdempotent(t *testing.T) {
	s := newTestStore(t)

	require.NoError(t, s.Save("tok-123"))
	require.NoError(t, s.Clear())
	require.NoError(t, s.Clear())

	_, err := s.Load()
	assert.ErrorIs(t, err, ports.ErrNoToken)
}
