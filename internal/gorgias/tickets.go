package gorgias

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gorgias-oss/gorgias-mcp-server/internal/domain"
)

// TicketListOptions combines pagination with the ticket list filters.
type TicketListOptions struct {
	domain.ListOptions
	CustomerID int64
	Status     string
	Channel    string
}

// ListTickets returns one page of tickets, newest first by default.
func (c *Client) ListTickets(ctx context.Context, opts TicketListOptions) (domain.Page[domain.Ticket], error) {
	q := c.listQuery(opts.ListOptions)
	if opts.CustomerID > 0 {
		q.Set("customer_id", strconv.FormatInt(opts.CustomerID, 10))
	}
	if opts.Status != "" {
		q.Set("status", opts.Status)
	}
	if opts.Channel != "" {
		q.Set("channel", opts.Channel)
	}
	return listPage(ctx, c, "/tickets", q, domain.MapTicket)
}

// GetTicket retrieves one ticket by id.
func (c *Client) GetTicket(ctx context.Context, id int64) (domain.Ticket, error) {
	var w domain.WireTicket
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/tickets/%d", id), nil, nil, &w); err != nil {
		return domain.Ticket{}, err
	}
	return domain.MapTicket(w), nil
}

// CreateTicket creates a ticket; the initial message travels in the same
// upstream call.
func (c *Client) CreateTicket(ctx context.Context, create domain.TicketCreate) (domain.Ticket, error) {
	var w domain.WireTicket
	if err := c.do(ctx, http.MethodPost, "/tickets", nil, create, &w); err != nil {
		return domain.Ticket{}, err
	}
	return domain.MapTicket(w), nil
}

// UpdateTicket applies a partial update; unset fields are never sent.
func (c *Client) UpdateTicket(ctx context.Context, id int64, update domain.TicketUpdate) (domain.Ticket, error) {
	var w domain.WireTicket
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/tickets/%d", id), nil, update, &w); err != nil {
		return domain.Ticket{}, err
	}
	return domain.MapTicket(w), nil
}

// DeleteTicket removes a ticket. Idempotency is the upstream's concern.
func (c *Client) DeleteTicket(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/tickets/%d", id), nil, nil, nil)
}

type tagNamesPayload struct {
	Names []string `json:"names"`
}

// AddTicketTags attaches tags by name and returns the ticket's resulting tag
// set.
func (c *Client) AddTicketTags(ctx context.Context, id int64, names []string) ([]domain.Tag, error) {
	var env pageEnvelope[domain.WireTag]
	if err := c.do(ctx, http.MethodPost, fmt.Sprintf("/tickets/%d/tags", id), nil, tagNamesPayload{Names: names}, &env); err != nil {
		return nil, err
	}
	tags := make([]domain.Tag, 0, len(env.Data))
	for _, w := range env.Data {
		tags = append(tags, domain.MapTag(w))
	}
	return tags, nil
}

// RemoveTicketTags detaches tags by name.
func (c *Client) RemoveTicketTags(ctx context.Context, id int64, names []string) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/tickets/%d/tags", id), nil, tagNamesPayload{Names: names}, nil)
}
