package hrmsapi

import "context"

// ListEmployees fetches a page of employees.
func (c *Client) ListEmployees(ctx context.Context, p ListParams) (Page[Employee], error) {
	var out Page[Employee]
	if err := c.Get(ctx, "/employees", p.Values(), &out); err != nil {
		return Page[Employee]{}, err
	}
	return out, nil
}

// GetEmployee fetches one employee by id.
func (c *Client) GetEmployee(ctx context.Context, id string) (Employee, error) {
	var out Employee
	if err := c.Get(ctx, "/employees/"+id, nil, &out); err != nil {
		return Employee{}, err
	}
	return out, nil
}

// CreateEmployee creates an employee record.
func (c *Client) CreateEmployee(ctx context.Context, in EmployeeInput) (Employee, error) {
	var out Employee
	if err := c.Post(ctx, "/employees", in, &out); err != nil {
		return Employee{}, err
	}
	return out, nil
}

// UpdateEmployee updates an employee record.
func (c *Client) UpdateEmployee(ctx context.Context, id string, in EmployeeInput) (Employee, error) {
	var out Employee
	if err := c.Put(ctx, "/employees/"+id, in, &out); err != nil {
		return Employee{}, err
	}
	return out, nil
}

// DeleteEmployee removes an employee record.
func (c *Client) DeleteEmployee(ctx context.Context, id string) error {
	return c.Delete(ctx, "/employees/"+id, nil)
}
