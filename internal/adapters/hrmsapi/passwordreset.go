package hrmsapi

import "context"

// RequestPasswordReset files a reset request for review. Unauthenticated.
func (c *Client) RequestPasswordReset(ctx context.Context, email string) error {
	body := map[string]string{"email": email}
	return c.Post(ctx, "/auth/password-resets", body, nil)
}

// PendingPasswordResets lists reset requests awaiting admin action.
func (c *Client) PendingPasswordResets(ctx context.Context) ([]PasswordResetRequest, error) {
	var out []PasswordResetRequest
	if err := c.Get(ctx, "/auth/password-resets/pending", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ApprovePasswordReset approves a reset and sets the new password.
func (c *Client) ApprovePasswordReset(ctx context.Context, id, newPassword string) error {
	body := map[string]string{"new_password": newPassword}
	return c.Post(ctx, "/auth/password-resets/"+id+"/approve", body, nil)
}

// RejectPasswordReset rejects a reset request.
func (c *Client) RejectPasswordReset(ctx context.Context, id string) error {
	return c.Post(ctx, "/auth/password-resets/"+id+"/reject", nil, nil)
}
