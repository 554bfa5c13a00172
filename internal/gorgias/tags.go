package gorgias

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gorgias-oss/gorgias-mcp-server/internal/domain"
)

// ListTags returns one page of tags.
func (c *Client) ListTags(ctx context.Context, opts domain.ListOptions) (domain.Page[domain.Tag], error) {
	return listPage(ctx, c, "/tags", c.listQuery(opts), domain.MapTag)
}

// GetTag retrieves one tag by id.
func (c *Client) GetTag(ctx context.Context, id int64) (domain.Tag, error) {
	var w domain.WireTag
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/tags/%d", id), nil, nil, &w); err != nil {
		return domain.Tag{}, err
	}
	return domain.MapTag(w), nil
}

// CreateTag creates a tag.
func (c *Client) CreateTag(ctx context.Context, create domain.TagCreate) (domain.Tag, error) {
	var w domain.WireTag
	if err := c.do(ctx, http.MethodPost, "/tags", nil, create, &w); err != nil {
		return domain.Tag{}, err
	}
	return domain.MapTag(w), nil
}

// UpdateTag applies a partial update to a tag.
func (c *Client) UpdateTag(ctx context.Context, id int64, update domain.TagUpdate) (domain.Tag, error) {
	var w domain.WireTag
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/tags/%d", id), nil, update, &w); err != nil {
		return domain.Tag{}, err
	}
	return domain.MapTag(w), nil
}

// DeleteTag removes a tag from the account.
func (c *Client) DeleteTag(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/tags/%d", id), nil, nil, nil)
}

// MergeTags collapses the source tags into the target and returns the
// surviving tag.
func (c *Client) MergeTags(ctx context.Context, merge domain.TagMerge) (domain.Tag, error) {
	var w domain.WireTag
	if err := c.do(ctx, http.MethodPost, "/tags/merge", nil, merge, &w); err != nil {
		return domain.Tag{}, err
	}
	return domain.MapTag(w), nil
}
