package gorgias

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gorgias-oss/gorgias-mcp-server/internal/domain"
)

// ListMacros returns one page of macros.
func (c *Client) ListMacros(ctx context.Context, opts domain.ListOptions) (domain.Page[domain.Macro], error) {
	return listPage(ctx, c, "/macros", c.listQuery(opts), domain.MapMacro)
}

// GetMacro retrieves one macro by id.
func (c *Client) GetMacro(ctx context.Context, id int64) (domain.Macro, error) {
	var w domain.WireMacro
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/macros/%d", id), nil, nil, &w); err != nil {
		return domain.Macro{}, err
	}
	return domain.MapMacro(w), nil
}

// CreateMacro creates a macro. Actions pass through to the upstream
// unchanged.
func (c *Client) CreateMacro(ctx context.Context, create domain.MacroCreate) (domain.Macro, error) {
	var w domain.WireMacro
	if err := c.do(ctx, http.MethodPost, "/macros", nil, create, &w); err != nil {
		return domain.Macro{}, err
	}
	return domain.MapMacro(w), nil
}

// UpdateMacro applies a partial update to a macro.
func (c *Client) UpdateMacro(ctx context.Context, id int64, update domain.MacroUpdate) (domain.Macro, error) {
	var w domain.WireMacro
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/macros/%d", id), nil, update, &w); err != nil {
		return domain.Macro{}, err
	}
	return domain.MapMacro(w), nil
}

// DeleteMacro removes a macro.
func (c *Client) DeleteMacro(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/macros/%d", id), nil, nil, nil)
}
