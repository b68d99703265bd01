package hrmsapi

import "context"

// ListDepartments fetches all departments. The backend does not paginate
// this collection.
func (c *Client) ListDepartments(ctx context.Context) ([]Department, error) {
	var out []Department
	if err := c.Get(ctx, "/departments", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateDepartment creates a department.
func (c *Client) CreateDepartment(ctx context.Context, in DepartmentInput) (Department, error) {
	var out Department
	if err := c.Post(ctx, "/departments", in, &out); err != nil {
		return Department{}, err
	}
	return out, nil
}

// UpdateDepartment updates a department.
func (c *Client) UpdateDepartment(ctx context.Context, id string, in DepartmentInput) (Department, error) {
	var out Department
	if err := c.Put(ctx, "/departments/"+id, in, &out); err != nil {
		return Department{}, err
	}
	return out, nil
}

// DeleteDepartment removes a department.
func (c *Client) DeleteDepartment(ctx context.Context, id string) error {
	return c.Delete(ctx, "/departments/"+id, nil)
}
