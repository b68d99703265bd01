package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/peopledesk/console/internal/adapters/hrmsapi"
	"github.com/peopledesk/console/internal/domain/auth"
	"github.com/peopledesk/console/internal/mocks/portsmock"
	"github.com/peopledesk/console/internal/mocks/servicemock"
	"github.com/peopledesk/console/internal/ports"
	"github.com/peopledesk/console/internal/service"
)

func newSession(t *testing.T) (*service.SessionService, *portsmock.MockTokenStore, *servicemock.MockIdentityClient) {
	t.Helper()
	ctrl := gomock.NewController(t)
	tokens := portsmock.NewMockTokenStore(ctrl)
	identity := servicemock.NewMockIdentityClient(ctrl)

	s, err := service.NewSessionService(service.SessionOptions{
		Tokens:   tokens,
		Identity: identity,
	})
	require.NoError(t, err)
	return s, tokens, identity
}

func TestSessionStartsLoading(t *testing.T) {
	s, _, _ := newSession(t)

	state := s.Current()
	assert.True(t, state.Loading)
	assert.Nil(t, state.User)
}

func TestBootstrapWithoutTokenSkipsNetwork(t *testing.T) {
	s, tokens, identity := newSession(t)

	tokens.EXPECT().Load().Return("", ports.ErrNoToken)
	identity.EXPECT().Me(gomock.Any()).Times(0)

	require.NoError(t, s.Bootstrap(context.Background()))

	state := s.Current()
	assert.False(t, state.Loading)
	assert.Nil(t, state.User)
}

func TestBootstrapRestoresSession(t *testing.T) {
	s, tokens, identity := newSession(t)

	tokens.EXPECT().Load().Return("tok", nil)
	identity.EXPECT().Me(gomock.Any()).Return(auth.UserSummary{ID: "u1", Role: auth.RoleHR}, nil)

	require.NoError(t, s.Bootstrap(context.Background()))

	state := s.Current()
	assert.False(t, state.Loading)
	require.NotNil(t, state.User)
	assert.Equal(t, auth.RoleHR, state.User.Role)
}

func TestBootstrapDiscardsRejectedToken(t *testing.T) {
	s, tokens, identity := newSession(t)

	tokens.EXPECT().Load().Return("stale", nil)
	identity.EXPECT().Me(gomock.Any()).Return(auth.UserSummary{}, &hrmsapi.Error{Status: 401})
	tokens.EXPECT().Clear().Return(nil)

	require.NoError(t, s.Bootstrap(context.Background()))

	state := s.Current()
	assert.False(t, state.Loading)
	assert.Nil(t, state.User)
}

func TestBootstrapRunsOnce(t *testing.T) {
	s, tokens, _ := newSession(t)

	tokens.EXPECT().Load().Return("", ports.ErrNoToken).Times(1)

	require.NoError(t, s.Bootstrap(context.Background()))
	require.NoError(t, s.Bootstrap(context.Background()))
}

func TestLoginPersistsTokenAndSetsUser(t *testing.T) {
	s, tokens, identity := newSession(t)

	identity.EXPECT().Login(gomock.Any(), "a@b.c", "pw").Return(hrmsapi.LoginResult{
		Token: "fresh",
		User:  auth.UserSummary{ID: "u1", Role: auth.RoleAdmin},
	}, nil)
	tokens.EXPECT().Save("fresh").Return(nil)

	user, err := s.Login(context.Background(), "a@b.c", "pw")
	require.NoError(t, err)
	assert.Equal(t, auth.RoleAdmin, user.Role)

	state := s.Current()
	require.NotNil(t, state.User)
	assert.Equal(t, "u1", state.User.ID)
}

func TestLoginRequiresCredentials(t *testing.T) {
	s, _, identity := newSession(t)
	identity.EXPECT().Login(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	_, err := s.Login(context.Background(), "", "pw")
	var authErr *service.AuthenticationError
	require.ErrorAs(t, err, &authErr)
}

func TestLoginSurfacesServerMessage(t *testing.T) {
	s, _, identity := newSession(t)

	identity.EXPECT().Login(gomock.Any(), "a@b.c", "bad").
		Return(hrmsapi.LoginResult{}, &hrmsapi.Error{Status: 400, Message: "invalid credentials"})

	_, err := s.Login(context.Background(), "a@b.c", "bad")
	var authErr *service.AuthenticationError
	require.ErrorAs(t, err, &authErr)
	assert.Equal(t, "invalid credentials", authErr.Message)
}

func TestLoginFallbackMessage(t *testing.T) {
	s, _, identity := newSession(t)

	identity.EXPECT().Login(gomock.Any(), "a@b.c", "pw").
		Return(hrmsapi.LoginResult{}, errors.New("connection refused"))

	_, err := s.Login(context.Background(), "a@b.c", "pw")
	var authErr *service.AuthenticationError
	require.ErrorAs(t, err, &authErr)
	assert.Equal(t, "Login failed", authErr.Message)
}

func TestLogoutClearsTokenAndUser(t *testing.T) {
	s, tokens, identity := newSession(t)

	identity.EXPECT().Login(gomock.Any(), "a@b.c", "pw").Return(hrmsapi.LoginResult{
		Token: "tok",
		User:  auth.UserSummary{ID: "u1", Role: auth.RoleEmployee},
	}, nil)
	tokens.EXPECT().Save("tok").Return(nil)
	tokens.EXPECT().Clear().Return(nil)

	_, err := s.Login(context.Background(), "a@b.c", "pw")
	require.NoError(t, err)

	require.NoError(t, s.Logout())
	assert.Nil(t, s.Current().User)
}

func TestInvalidateIsIdempotent(t *testing.T) {
	s, tokens, identity := newSession(t)

	identity.EXPECT().Login(gomock.Any(), "a@b.c", "pw").Return(hrmsapi.LoginResult{
		Token: "tok",
		User:  auth.UserSummary{ID: "u1", Role: auth.RoleEmployee},
	}, nil)
	tokens.EXPECT().Save("tok").Return(nil)

	_, err := s.Login(context.Background(), "a@b.c", "pw")
	require.NoError(t, err)

	s.Invalidate()
	s.Invalidate()
	assert.Nil(t, s.Current().User)
}

func TestCurrentReturnsCopy(t *testing.T) {
	s, tokens, identity := newSession(t)

	identity.EXPECT().Login(gomock.Any(), "a@b.c", "pw").Return(hrmsapi.LoginResult{
		Token: "tok",
		User:  auth.UserSummary{ID: "u1", Name: "Ada"},
	}, nil)
	tokens.EXPECT().Save("tok").Return(nil)

	_, err := s.Login(context.Background(), "a@b.c", "pw")
	require.NoError(t, err)

	state := s.Current()
	state.User.Name = "mutated"
	assert.Equal(t, "Ada", s.Current().User.Name)
}
