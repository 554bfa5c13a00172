package gorgias

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gorgias-oss/gorgias-mcp-server/internal/domain"
)

// ListTeams returns one page of teams.
func (c *Client) ListTeams(ctx context.Context, opts domain.ListOptions) (domain.Page[domain.Team], error) {
	return listPage(ctx, c, "/teams", c.listQuery(opts), domain.MapTeam)
}

// GetTeam retrieves one team by id.
func (c *Client) GetTeam(ctx context.Context, id int64) (domain.Team, error) {
	var w domain.WireTeam
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/teams/%d", id), nil, nil, &w); err != nil {
		return domain.Team{}, err
	}
	return domain.MapTeam(w), nil
}

// CreateTeam creates a team.
func (c *Client) CreateTeam(ctx context.Context, create domain.TeamCreate) (domain.Team, error) {
	var w domain.WireTeam
	if err := c.do(ctx, http.MethodPost, "/teams", nil, create, &w); err != nil {
		return domain.Team{}, err
	}
	return domain.MapTeam(w), nil
}

// UpdateTeam applies a partial update to a team.
func (c *Client) UpdateTeam(ctx context.Context, id int64, update domain.TeamUpdate) (domain.Team, error) {
	var w domain.WireTeam
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/teams/%d", id), nil, update, &w); err != nil {
		return domain.Team{}, err
	}
	return domain.MapTeam(w), nil
}

// DeleteTeam removes a team.
func (c *Client) DeleteTeam(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/teams/%d", id), nil, nil, nil)
}
