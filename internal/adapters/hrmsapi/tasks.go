package hrmsapi

import "context"

// MyTasks fetches tasks assigned to the caller.
func (c *Client) MyTasks(ctx context.Context) ([]Task, error) {
	var out []Task
	if err := c.Get(ctx, "/tasks/my", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ListTasks fetches a page of all tasks.
func (c *Client) ListTasks(ctx context.Context, p ListParams) (Page[Task], error) {
	var out Page[Task]
	if err := c.Get(ctx, "/tasks", p.Values(), &out); err != nil {
		return Page[Task]{}, err
	}
	return out, nil
}

// CreateTask creates and assigns a task.
func (c *Client) CreateTask(ctx context.Context, in TaskInput) (Task, error) {
	var out Task
	if err := c.Post(ctx, "/tasks", in, &out); err != nil {
		return Task{}, err
	}
	return out, nil
}

// UpdateTask rewrites a task's fields.
func (c *Client) UpdateTask(ctx context.Context, id string, in TaskInput) (Task, error) {
	var out Task
	if err := c.Put(ctx, "/tasks/"+id, in, &out); err != nil {
		return Task{}, err
	}
	return out, nil
}

// UpdateTaskStatus moves a task along its workflow (e.g. in-progress, done).
func (c *Client) UpdateTaskStatus(ctx context.Context, id, status string) (Task, error) {
	var out Task
	body := map[string]string{"status": status}
	if err := c.Put(ctx, "/tasks/"+id+"/status", body, &out); err != nil {
		return Task{}, err
	}
	return out, nil
}

// DeleteTask removes a task.
func (c *Client) DeleteTask(ctx context.Context, id string) error {
	return c.Delete(ctx, "/tasks/"+id, nil)
}
