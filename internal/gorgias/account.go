package gorgias

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gorgias-oss/gorgias-mcp-server/internal/domain"
)

// GetAccount retrieves the account the credentials belong to.
func (c *Client) GetAccount(ctx context.Context) (domain.Account, error) {
	var w domain.WireAccount
	if err := c.do(ctx, http.MethodGet, "/account", nil, nil, &w); err != nil {
		return domain.Account{}, err
	}
	return domain.MapAccount(w), nil
}

// UpdateAccount applies a partial update to the account settings.
func (c *Client) UpdateAccount(ctx context.Context, update domain.AccountUpdate) (domain.Account, error) {
	var w domain.WireAccount
	if err := c.do(ctx, http.MethodPut, "/account", nil, update, &w); err != nil {
		return domain.Account{}, err
	}
	return domain.MapAccount(w), nil
}

// GetStatistic computes one named statistic over the given time window. The
// upstream exposes statistics as POST endpoints because the window travels in
// the body.
func (c *Client) GetStatistic(ctx context.Context, name string, query domain.StatsQuery) (domain.Statistic, error) {
	var w domain.WireStatistic
	if err := c.do(ctx, http.MethodPost, fmt.Sprintf("/stats/%s", name), nil, query, &w); err != nil {
		return domain.Statistic{}, err
	}
	return domain.MapStatistic(w), nil
}
