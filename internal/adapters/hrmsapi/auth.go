package hrmsapi

import (
	"context"
	"fmt"

	"github.com/peopledesk/console/internal/domain/auth"
)

// Login exchanges credentials for a bearer token and the user's profile.
// The token is NOT persisted here; session orchestration decides that.
func (c *Client) Login(ctx context.Context, email, password string) (LoginResult, error) {
	var out LoginResult
	body := map[string]string{"email": email, "password": password}
	if err := c.Post(ctx, "/auth/login", body, &out); err != nil {
		return LoginResult{}, err
	}
	return out, nil
}

// Me verifies the current token and returns the authenticated user.
func (c *Client) Me(ctx context.Context) (auth.UserSummary, error) {
	var out auth.UserSummary
	if err := c.Get(ctx, "/auth/me", nil, &out); err != nil {
		return auth.UserSummary{}, err
	}
	return out, nil
}

// Register submits a self-registration for admin review.
func (c *Client) Register(ctx context.Context, in RegisterInput) error {
	return c.Post(ctx, "/auth/register", in, nil)
}

// ChangePassword rotates the caller's own password.
func (c *Client) ChangePassword(ctx context.Context, current, next string) error {
	body := map[string]string{"current_password": current, "new_password": next}
	return c.Post(ctx, "/auth/change-password", body, nil)
}

// PendingRegistrations lists self-registrations awaiting review.
func (c *Client) PendingRegistrations(ctx context.Context) ([]RegistrationRequest, error) {
	var out []RegistrationRequest
	if err := c.Get(ctx, "/auth/registrations/pending", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ApproveRegistration approves a pending registration with the given role.
func (c *Client) ApproveRegistration(ctx context.Context, id string, role auth.Role) error {
	body := map[string]string{"role": string(role)}
	return c.Post(ctx, fmt.Sprintf("/auth/registrations/%s/approve", id), body, nil)
}

// RejectRegistration rejects a pending registration.
func (c *Client) RejectRegistration(ctx context.Context, id string) error {
	return c.Post(ctx, fmt.Sprintf("/auth/registrations/%s/reject", id), nil, nil)
}
