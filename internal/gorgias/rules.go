package gorgias

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gorgias-oss/gorgias-mcp-server/internal/domain"
)

// ListRules returns one page of automation rules.
func (c *Client) ListRules(ctx context.Context, opts domain.ListOptions) (domain.Page[domain.Rule], error) {
	return listPage(ctx, c, "/rules", c.listQuery(opts), domain.MapRule)
}

// GetRule retrieves one rule by id.
func (c *Client) GetRule(ctx context.Context, id int64) (domain.Rule, error) {
	var w domain.WireRule
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/rules/%d", id), nil, nil, &w); err != nil {
		return domain.Rule{}, err
	}
	return domain.MapRule(w), nil
}

// CreateRule creates a rule. The code tree passes through to the upstream
// unchanged.
func (c *Client) CreateRule(ctx context.Context, create domain.RuleCreate) (domain.Rule, error) {
	var w domain.WireRule
	if err := c.do(ctx, http.MethodPost, "/rules", nil, create, &w); err != nil {
		return domain.Rule{}, err
	}
	return domain.MapRule(w), nil
}

// UpdateRule applies a partial update to a rule.
func (c *Client) UpdateRule(ctx context.Context, id int64, update domain.RuleUpdate) (domain.Rule, error) {
	var w domain.WireRule
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/rules/%d", id), nil, update, &w); err != nil {
		return domain.Rule{}, err
	}
	return domain.MapRule(w), nil
}

// DeleteRule removes a rule.
func (c *Client) DeleteRule(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/rules/%d", id), nil, nil, nil)
}
