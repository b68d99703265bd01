// Package service orchestrates session state and the live refresh loops on
// top of the ports and adapters.
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/peopledesk/console/internal/adapters/hrmsapi"
	"github.com/peopledesk/console/internal/domain/auth"
	"github.com/peopledesk/console/internal/ports"
)

// loginFallbackMessage is shown when the backend's error body carries no
// usable message.
const loginFallbackMessage = "Login failed"

// IdentityClient is the slice of the API client the session service needs.
type IdentityClient interface {
	Login(ctx context.Context, email, password string) (hrmsapi.LoginResult, error)
	Me(ctx context.Context) (auth.UserSummary, error)
}

// SessionState is an immutable view of the session at one point in time.
type SessionState struct {
	// User is nil when logged out.
	User *auth.UserSummary

	// Loading is true from construction until Bootstrap has finished. Role
	// gating must not redirect while Loading is set.
	Loading bool
}

// AuthenticationError is a login failure with a message fit for display.
type AuthenticationError struct {
	Message string
}

func (e *AuthenticationError) Error() string { return e.Message }

type loginForm struct {
	Email    string `validate:"required"`
	Password string `validate:"required"`
}

// SessionService owns the authenticated-user state. All mutation goes
// through Bootstrap, Login, Logout and Invalidate; readers get copies.
type SessionService struct {
	tokens   ports.TokenStore
	identity IdentityClient
	logger   *slog.Logger
	validate *validator.Validate

	mu           sync.Mutex
	user         *auth.UserSummary
	loading      bool
	bootstrapped bool
}

// SessionOptions holds the dependencies for creating a SessionService.
type SessionOptions struct {
	Tokens   ports.TokenStore
	Identity IdentityClient
	Logger   *slog.Logger
}

// NewSessionService creates a session service. The session starts in the
// Loading state until Bootstrap runs.
func NewSessionService(opts SessionOptions) (*SessionService, error) {
	if opts.Tokens == nil {
		return nil, errors.New("token store is required")
	}
	if opts.Identity == nil {
		return nil, errors.New("identity client is required")
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	return &SessionService{
		tokens:   opts.Tokens,
		identity: opts.Identity,
		logger:   opts.Logger,
		validate: validator.New(validator.WithRequiredStructEnabled()),
		loading:  true,
	}, nil
}

// Bootstrap restores the session from the persisted token, exactly once.
// With no token stored it makes no network call at all. A token that fails
// verification is discarded. Bootstrap always ends the Loading state, and
// repeat calls are no-ops.
func (s *SessionService) Bootstrap(ctx context.Context) error {
	s.mu.Lock()
	if s.bootstrapped {
		s.mu.Unlock()
		return nil
	}
	s.bootstrapped = true
	s.mu.Unlock()

	defer s.finishLoading()

	if _, err := s.tokens.Load(); err != nil {
		if !errors.Is(err, ports.ErrNoToken) {
			return fmt.Errorf("load session token: %w", err)
		}
		return nil
	}

	user, err := s.identity.Me(ctx)
	if err != nil {
		// The stored token did not produce a user; drop it so the next start
		// skips verification. The 401 interceptor may have cleared it
		// already, which is fine.
		s.logger.Info("stored session token rejected", "error", err)
		if cerr := s.tokens.Clear(); cerr != nil {
			s.logger.Warn("clear session token failed", "error", cerr)
		}
		return nil
	}

	s.setUser(&user)
	s.logger.Info("session restored", "user_id", user.ID, "role", user.Role)
	return nil
}

// Login exchanges credentials for a session. Failures come back as
// *AuthenticationError carrying the backend's message when it sent one.
func (s *SessionService) Login(ctx context.Context, email, password string) (auth.UserSummary, error) {
	if err := s.validate.Struct(loginForm{Email: email, Password: password}); err != nil {
		return auth.UserSummary{}, &AuthenticationError{Message: "Email and password are required"}
	}

	res, err := s.identity.Login(ctx, email, password)
	if err != nil {
		s.logger.Info("login rejected", "email", email)
		return auth.UserSummary{}, &AuthenticationError{
			Message: hrmsapi.ErrorMessage(err, loginFallbackMessage),
		}
	}

	if err := s.tokens.Save(res.Token); err != nil {
		return auth.UserSummary{}, fmt.Errorf("persist session token: %w", err)
	}

	user := res.User
	s.setUser(&user)
	s.logger.Info("logged in", "user_id", user.ID, "role", user.Role)
	return user, nil
}

// Logout ends the session synchronously: clear the token, drop the user.
// No network call is involved.
func (s *SessionService) Logout() error {
	if err := s.tokens.Clear(); err != nil {
		return fmt.Errorf("clear session token: %w", err)
	}
	s.setUser(nil)
	s.logger.Info("logged out")
	return nil
}

// Invalidate drops the in-memory session after an external rejection (the
// 401 interceptor has already cleared the token). Safe to call repeatedly
// and when already logged out.
func (s *SessionService) Invalidate() {
	s.mu.Lock()
	wasLoggedIn := s.user != nil
	s.user = nil
	s.mu.Unlock()

	if wasLoggedIn {
		s.logger.Info("session invalidated by backend")
	}
}

// Current returns a copy of the session state.
func (s *SessionService) Current() SessionState {
	s.mu.Lock()
	defer s.mu.Unlock()

	state := SessionState{Loading: s.loading}
	if s.user != nil {
		u := *s.user
		state.User = &u
	}
	return state
}

func (s *SessionService) setUser(u *auth.UserSummary) {
	s.mu.Lock()
	s.user = u
	s.mu.Unlock()
}

func (s *SessionService) finishLoading() {
	s.mu.Lock()
	s.loading = false
	s.mu.Unlock()
}
