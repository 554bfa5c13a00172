package gorgias

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gorgias-oss/gorgias-mcp-server/internal/domain"
)

// CustomFieldListOptions combines pagination with the object type filter.
type CustomFieldListOptions struct {
	domain.ListOptions
	ObjectType string
}

// ListCustomFields returns one page of custom field definitions.
func (c *Client) ListCustomFields(ctx context.Context, opts CustomFieldListOptions) (domain.Page[domain.CustomField], error) {
	q := c.listQuery(opts.ListOptions)
	if opts.ObjectType != "" {
		q.Set("object_type", opts.ObjectType)
	}
	return listPage(ctx, c, "/custom-fields", q, domain.MapCustomField)
}

// GetCustomField retrieves one custom field definition by id.
func (c *Client) GetCustomField(ctx context.Context, id int64) (domain.CustomField, error) {
	var w domain.WireCustomField
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/custom-fields/%d", id), nil, nil, &w); err != nil {
		return domain.CustomField{}, err
	}
	return domain.MapCustomField(w), nil
}

// CreateCustomField creates a custom field definition.
func (c *Client) CreateCustomField(ctx context.Context, create domain.CustomFieldCreate) (domain.CustomField, error) {
	var w domain.WireCustomField
	if err := c.do(ctx, http.MethodPost, "/custom-fields", nil, create, &w); err != nil {
		return domain.CustomField{}, err
	}
	return domain.MapCustomField(w), nil
}

// UpdateCustomField applies a partial update to a custom field definition.
func (c *Client) UpdateCustomField(ctx context.Context, id int64, update domain.CustomFieldUpdate) (domain.CustomField, error) {
	var w domain.WireCustomField
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/custom-fields/%d", id), nil, update, &w); err != nil {
		return domain.CustomField{}, err
	}
	return domain.MapCustomField(w), nil
}

// DeleteCustomField removes a custom field definition and its stored values.
func (c *Client) DeleteCustomField(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/custom-fields/%d", id), nil, nil, nil)
}
