package gorgias

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gorgias-oss/gorgias-mcp-server/internal/domain"
)

// ListSatisfactionSurveys returns one page of satisfaction surveys. Surveys
// are created by Gorgias itself, so only reads are exposed.
func (c *Client) ListSatisfactionSurveys(ctx context.Context, opts domain.ListOptions) (domain.Page[domain.SatisfactionSurvey], error) {
	return listPage(ctx, c, "/satisfaction-surveys", c.listQuery(opts), domain.MapSatisfactionSurvey)
}

// GetSatisfactionSurvey retrieves one survey by id.
func (c *Client) GetSatisfactionSurvey(ctx context.Context, id int64) (domain.SatisfactionSurvey, error) {
	var w domain.WireSatisfactionSurvey
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/satisfaction-surveys/%d", id), nil, nil, &w); err != nil {
		return domain.SatisfactionSurvey{}, err
	}
	return domain.MapSatisfactionSurvey(w), nil
}
