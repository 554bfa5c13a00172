package gorgias

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gorgias-oss/gorgias-mcp-server/internal/domain"
)

// EventListOptions combines pagination with the audit log filters.
type EventListOptions struct {
	domain.ListOptions
	ObjectType string
	ObjectID   int64
}

// ListEvents returns one page of audit log events, newest first.
func (c *Client) ListEvents(ctx context.Context, opts EventListOptions) (domain.Page[domain.Event], error) {
	q := c.listQuery(opts.ListOptions)
	if opts.ObjectType != "" {
		q.Set("object_type", opts.ObjectType)
	}
	if opts.ObjectID > 0 {
		q.Set("object_id", strconv.FormatInt(opts.ObjectID, 10))
	}
	return listPage(ctx, c, "/events", q, domain.MapEvent)
}

// GetEvent retrieves one audit log event by id.
func (c *Client) GetEvent(ctx context.Context, id int64) (domain.Event, error) {
	var w domain.WireEvent
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/events/%d", id), nil, nil, &w); err != nil {
		return domain.Event{}, err
	}
	return domain.MapEvent(w), nil
}
