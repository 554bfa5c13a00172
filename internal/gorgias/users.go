package gorgias

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gorgias-oss/gorgias-mcp-server/internal/domain"
)

// ListUsers returns one page of agents.
func (c *Client) ListUsers(ctx context.Context, opts domain.ListOptions) (domain.Page[domain.User], error) {
	return listPage(ctx, c, "/users", c.listQuery(opts), domain.MapUser)
}

// GetUser retrieves one agent by id.
func (c *Client) GetUser(ctx context.Context, id int64) (domain.User, error) {
	var w domain.WireUser
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/users/%d", id), nil, nil, &w); err != nil {
		return domain.User{}, err
	}
	return domain.MapUser(w), nil
}

// CreateUser invites a new agent.
func (c *Client) CreateUser(ctx context.Context, create domain.UserCreate) (domain.User, error) {
	var w domain.WireUser
	if err := c.do(ctx, http.MethodPost, "/users", nil, create, &w); err != nil {
		return domain.User{}, err
	}
	return domain.MapUser(w), nil
}

// UpdateUser applies a partial update to an agent.
func (c *Client) UpdateUser(ctx context.Context, id int64, update domain.UserUpdate) (domain.User, error) {
	var w domain.WireUser
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/users/%d", id), nil, update, &w); err != nil {
		return domain.User{}, err
	}
	return domain.MapUser(w), nil
}

// DeleteUser removes an agent.
func (c *Client) DeleteUser(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/users/%d", id), nil, nil, nil)
}
