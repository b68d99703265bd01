package hrmsapi

import "context"

// ListTeams fetches all teams with their member rosters.
func (c *Client) ListTeams(ctx context.Context) ([]Team, error) {
	var out []Team
	if err := c.Get(ctx, "/teams", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetTeam fetches one team by id.
func (c *Client) GetTeam(ctx context.Context, id string) (Team, error) {
	var out Team
	if err := c.Get(ctx, "/teams/"+id, nil, &out); err != nil {
		return Team{}, err
	}
	return out, nil
}

// CreateTeam creates a team.
func (c *Client) CreateTeam(ctx context.Context, in TeamInput) (Team, error) {
	var out Team
	if err := c.Post(ctx, "/teams", in, &out); err != nil {
		return Team{}, err
	}
	return out, nil
}

// UpdateTeam updates a team.
func (c *Client) UpdateTeam(ctx context.Context, id string, in TeamInput) (Team, error) {
	var out Team
	if err := c.Put(ctx, "/teams/"+id, in, &out); err != nil {
		return Team{}, err
	}
	return out, nil
}

// DeleteTeam removes a team.
func (c *Client) DeleteTeam(ctx context.Context, id string) error {
	return c.Delete(ctx, "/teams/"+id, nil)
}

// AddTeamMember adds a user to a team.
func (c *Client) AddTeamMember(ctx context.Context, teamID, userID, role string) (TeamMember, error) {
	var out TeamMember
	body := map[string]string{"user_id": userID, "role": role}
	if err := c.Post(ctx, "/teams/"+teamID+"/members", body, &out); err != nil {
		return TeamMember{}, err
	}
	return out, nil
}

// RemoveTeamMember removes a member from a team.
func (c *Client) RemoveTeamMember(ctx context.Context, teamID, memberID string) error {
	return c.Delete(ctx, "/teams/"+teamID+"/members/"+memberID, nil)
}
