package hrmsapi

import "context"

// ListJobs fetches a page of job postings.
func (c *Client) ListJobs(ctx context.Context, p ListParams) (Page[JobPosting], error) {
	var out Page[JobPosting]
	if err := c.Get(ctx, "/hiring/jobs", p.Values(), &out); err != nil {
		return Page[JobPosting]{}, err
	}
	return out, nil
}

// GetJob fetches one job posting by id.
func (c *Client) GetJob(ctx context.Context, id string) (JobPosting, error) {
	var out JobPosting
	if err := c.Get(ctx, "/hiring/jobs/"+id, nil, &out); err != nil {
		return JobPosting{}, err
	}
	return out, nil
}

// CreateJob opens a job posting.
func (c *Client) CreateJob(ctx context.Context, in JobPostingInput) (JobPosting, error) {
	var out JobPosting
	if err := c.Post(ctx, "/hiring/jobs", in, &out); err != nil {
		return JobPosting{}, err
	}
	return out, nil
}

// UpdateJob edits a job posting.
func (c *Client) UpdateJob(ctx context.Context, id string, in JobPostingInput) (JobPosting, error) {
	var out JobPosting
	if err := c.Put(ctx, "/hiring/jobs/"+id, in, &out); err != nil {
		return JobPosting{}, err
	}
	return out, nil
}

// DeleteJob closes and removes a job posting.
func (c *Client) DeleteJob(ctx context.Context, id string) error {
	return c.Delete(ctx, "/hiring/jobs/"+id, nil)
}
