package hrmsapi

import "context"

// DashboardStats fetches the headline numbers for role dashboards.
func (c *Client) DashboardStats(ctx context.Context) (DashboardStats, error) {
	var out DashboardStats
	if err := c.Get(ctx, "/dashboard/stats", nil, &out); err != nil {
		return DashboardStats{}, err
	}
	return out, nil
}

// RecentActivities fetches the recent-activity feed.
func (c *Client) RecentActivities(ctx context.Context) ([]Activity, error) {
	var out []Activity
	if err := c.Get(ctx, "/dashboard/activities", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}
