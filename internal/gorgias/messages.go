package gorgias

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gorgias-oss/gorgias-mcp-server/internal/domain"
)

// ListTicketMessages returns one page of messages for a ticket, oldest
// first.
func (c *Client) ListTicketMessages(ctx context.Context, ticketID int64, opts domain.ListOptions) (domain.Page[domain.Message], error) {
	return listPage(ctx, c, fmt.Sprintf("/tickets/%d/messages", ticketID), c.listQuery(opts), domain.MapMessage)
}

// GetMessage retrieves one message of a ticket.
func (c *Client) GetMessage(ctx context.Context, ticketID, messageID int64) (domain.Message, error) {
	var w domain.WireMessage
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/tickets/%d/messages/%d", ticketID, messageID), nil, nil, &w); err != nil {
		return domain.Message{}, err
	}
	return domain.MapMessage(w), nil
}

// CreateMessage appends a message to a ticket.
func (c *Client) CreateMessage(ctx context.Context, ticketID int64, create domain.MessageCreate) (domain.Message, error) {
	var w domain.WireMessage
	if err := c.do(ctx, http.MethodPost, fmt.Sprintf("/tickets/%d/messages", ticketID), nil, create, &w); err != nil {
		return domain.Message{}, err
	}
	return domain.MapMessage(w), nil
}

// DeleteMessage removes a message from a ticket.
func (c *Client) DeleteMessage(ctx context.Context, ticketID, messageID int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/tickets/%d/messages/%d", ticketID, messageID), nil, nil, nil)
}
