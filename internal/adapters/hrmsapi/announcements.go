package hrmsapi

import "context"

// ListAnnouncements fetches all visible announcements, newest first.
func (c *Client) ListAnnouncements(ctx context.Context) ([]Announcement, error) {
	var out []Announcement
	if err := c.Get(ctx, "/announcements", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateAnnouncement publishes an announcement.
func (c *Client) CreateAnnouncement(ctx context.Context, in AnnouncementInput) (Announcement, error) {
	var out Announcement
	if err := c.Post(ctx, "/announcements", in, &out); err != nil {
		return Announcement{}, err
	}
	return out, nil
}

// UpdateAnnouncement edits an announcement.
func (c *Client) UpdateAnnouncement(ctx context.Context, id string, in AnnouncementInput) (Announcement, error) {
	var out Announcement
	if err := c.Put(ctx, "/announcements/"+id, in, &out); err != nil {
		return Announcement{}, err
	}
	return out, nil
}

// DeleteAnnouncement removes an announcement.
func (c *Client) DeleteAnnouncement(ctx context.Context, id string) error {
	return c.Delete(ctx, "/announcements/"+id, nil)
}
