package gorgias

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gorgias-oss/gorgias-mcp-server/internal/domain"
)

// ListWidgets returns one page of widgets.
func (c *Client) ListWidgets(ctx context.Context, opts domain.ListOptions) (domain.Page[domain.Widget], error) {
	return listPage(ctx, c, "/widgets", c.listQuery(opts), domain.MapWidget)
}

// GetWidget retrieves one widget by id.
func (c *Client) GetWidget(ctx context.Context, id int64) (domain.Widget, error) {
	var w domain.WireWidget
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/widgets/%d", id), nil, nil, &w); err != nil {
		return domain.Widget{}, err
	}
	return domain.MapWidget(w), nil
}

// CreateWidget creates a widget. The definition tree passes through to the
// upstream unchanged.
func (c *Client) CreateWidget(ctx context.Context, create domain.WidgetCreate) (domain.Widget, error) {
	var w domain.WireWidget
	if err := c.do(ctx, http.MethodPost, "/widgets", nil, create, &w); err != nil {
		return domain.Widget{}, err
	}
	return domain.MapWidget(w), nil
}

// UpdateWidget applies a partial update to a widget.
func (c *Client) UpdateWidget(ctx context.Context, id int64, update domain.WidgetUpdate) (domain.Widget, error) {
	var w domain.WireWidget
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/widgets/%d", id), nil, update, &w); err != nil {
		return domain.Widget{}, err
	}
	return domain.MapWidget(w), nil
}

// DeleteWidget removes a widget.
func (c *Client) DeleteWidget(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/widgets/%d", id), nil, nil, nil)
}
