package gorgias

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gorgias-oss/gorgias-mcp-server/internal/domain"
)

// CustomerListOptions combines pagination with the customer list filters.
type CustomerListOptions struct {
	domain.ListOptions
	Email      string
	ExternalID string
}

// ListCustomers returns one page of customers.
func (c *Client) ListCustomers(ctx context.Context, opts CustomerListOptions) (domain.Page[domain.Customer], error) {
	q := c.listQuery(opts.ListOptions)
	if opts.Email != "" {
		q.Set("email", opts.Email)
	}
	if opts.ExternalID != "" {
		q.Set("external_id", opts.ExternalID)
	}
	return listPage(ctx, c, "/customers", q, domain.MapCustomer)
}

// GetCustomer retrieves one customer by id.
func (c *Client) GetCustomer(ctx context.Context, id int64) (domain.Customer, error) {
	var w domain.WireCustomer
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/customers/%d", id), nil, nil, &w); err != nil {
		return domain.Customer{}, err
	}
	return domain.MapCustomer(w), nil
}

// CreateCustomer creates a customer.
func (c *Client) CreateCustomer(ctx context.Context, create domain.CustomerCreate) (domain.Customer, error) {
	var w domain.WireCustomer
	if err := c.do(ctx, http.MethodPost, "/customers", nil, create, &w); err != nil {
		return domain.Customer{}, err
	}
	return domain.MapCustomer(w), nil
}

// UpdateCustomer applies a partial update to a customer.
func (c *Client) UpdateCustomer(ctx context.Context, id int64, update domain.CustomerUpdate) (domain.Customer, error) {
	var w domain.WireCustomer
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/customers/%d", id), nil, update, &w); err != nil {
		return domain.Customer{}, err
	}
	return domain.MapCustomer(w), nil
}

// DeleteCustomer removes a customer.
func (c *Client) DeleteCustomer(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/customers/%d", id), nil, nil, nil)
}

// MergeCustomers collapses the source customers into the target and returns
// the surviving record.
func (c *Client) MergeCustomers(ctx context.Context, merge domain.CustomerMerge) (domain.Customer, error) {
	var w domain.WireCustomer
	if err := c.do(ctx, http.MethodPost, "/customers/merge", nil, merge, &w); err != nil {
		return domain.Customer{}, err
	}
	return domain.MapCustomer(w), nil
}
