package gorgias

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gorgias-oss/gorgias-mcp-server/internal/domain"
)

// IntegrationListOptions combines pagination with the integration type
// filter.
type IntegrationListOptions struct {
	domain.ListOptions
	Type string
}

// ListIntegrations returns one page of integrations.
func (c *Client) ListIntegrations(ctx context.Context, opts IntegrationListOptions) (domain.Page[domain.Integration], error) {
	q := c.listQuery(opts.ListOptions)
	if opts.Type != "" {
		q.Set("type", opts.Type)
	}
	return listPage(ctx, c, "/integrations", q, domain.MapIntegration)
}

// GetIntegration retrieves one integration by id.
func (c *Client) GetIntegration(ctx context.Context, id int64) (domain.Integration, error) {
	var w domain.WireIntegration
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/integrations/%d", id), nil, nil, &w); err != nil {
		return domain.Integration{}, err
	}
	return domain.MapIntegration(w), nil
}

// CreateIntegration creates an integration.
func (c *Client) CreateIntegration(ctx context.Context, create domain.IntegrationCreate) (domain.Integration, error) {
	var w domain.WireIntegration
	if err := c.do(ctx, http.MethodPost, "/integrations", nil, create, &w); err != nil {
		return domain.Integration{}, err
	}
	return domain.MapIntegration(w), nil
}

// UpdateIntegration applies a partial update to an integration.
func (c *Client) UpdateIntegration(ctx context.Context, id int64, update domain.IntegrationUpdate) (domain.Integration, error) {
	var w domain.WireIntegration
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/integrations/%d", id), nil, update, &w); err != nil {
		return domain.Integration{}, err
	}
	return domain.MapIntegration(w), nil
}

// DeleteIntegration removes an integration.
func (c *Client) DeleteIntegration(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/integrations/%d", id), nil, nil, nil)
}
