package gorgias

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gorgias-oss/gorgias-mcp-server/internal/domain"
)

// ListViews returns one page of views.
func (c *Client) ListViews(ctx context.Context, opts domain.ListOptions) (domain.Page[domain.View], error) {
	return listPage(ctx, c, "/views", c.listQuery(opts), domain.MapView)
}

// GetView retrieves one view by id.
func (c *Client) GetView(ctx context.Context, id int64) (domain.View, error) {
	var w domain.WireView
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/views/%d", id), nil, nil, &w); err != nil {
		return domain.View{}, err
	}
	return domain.MapView(w), nil
}

// CreateView creates a view.
func (c *Client) CreateView(ctx context.Context, create domain.ViewCreate) (domain.View, error) {
	var w domain.WireView
	if err := c.do(ctx, http.MethodPost, "/views", nil, create, &w); err != nil {
		return domain.View{}, err
	}
	return domain.MapView(w), nil
}

// UpdateView applies a partial update to a view.
func (c *Client) UpdateView(ctx context.Context, id int64, update domain.ViewUpdate) (domain.View, error) {
	var w domain.WireView
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/views/%d", id), nil, update, &w); err != nil {
		return domain.View{}, err
	}
	return domain.MapView(w), nil
}

// DeleteView removes a view.
func (c *Client) DeleteView(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/views/%d", id), nil, nil, nil)
}

// ListViewItems evaluates the view's filter upstream and returns one page of
// the matching tickets.
func (c *Client) ListViewItems(ctx context.Context, viewID int64, opts domain.ListOptions) (domain.Page[domain.Ticket], error) {
	return listPage(ctx, c, fmt.Sprintf("/views/%d/items", viewID), c.listQuery(opts), domain.MapTicket)
}
