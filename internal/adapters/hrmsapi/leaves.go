package hrmsapi

import "context"

// MyLeaves fetches the caller's own leave requests.
func (c *Client) MyLeaves(ctx context.Context) ([]LeaveRequest, error) {
	var out []LeaveRequest
	if err := c.Get(ctx, "/leaves/my", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ListLeaves fetches a page of leave requests across the company.
func (c *Client) ListLeaves(ctx context.Context, p ListParams) (Page[LeaveRequest], error) {
	var out Page[LeaveRequest]
	if err := c.Get(ctx, "/leaves", p.Values(), &out); err != nil {
		return Page[LeaveRequest]{}, err
	}
	return out, nil
}

// CreateLeave submits a leave request for the caller.
func (c *Client) CreateLeave(ctx context.Context, in LeaveInput) (LeaveRequest, error) {
	var out LeaveRequest
	if err := c.Post(ctx, "/leaves", in, &out); err != nil {
		return LeaveRequest{}, err
	}
	return out, nil
}

// UpdateLeaveStatus approves or rejects a leave request.
func (c *Client) UpdateLeaveStatus(ctx context.Context, id, status string) (LeaveRequest, error) {
	var out LeaveRequest
	body := map[string]string{"status": status}
	if err := c.Put(ctx, "/leaves/"+id+"/status", body, &out); err != nil {
		return LeaveRequest{}, err
	}
	return out, nil
}

// DeleteLeave withdraws a leave request.
func (c *Client) DeleteLeave(ctx context.Context, id string) error {
	return c.Delete(ctx, "/leaves/"+id, nil)
}
