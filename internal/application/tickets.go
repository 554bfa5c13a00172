package application

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/gorgias-oss/gorgias-mcp-server/internal/domain"
	"github.com/gorgias-oss/gorgias-mcp-server/internal/gorgias"
)

func (c *Catalog) ticketTools() []server.ServerTool {
	return []server.ServerTool{
		{
			Tool: mcp.NewTool("list_tickets", append(listToolOptions("List support tickets, newest first. Supports filtering by customer, status and channel."),
				mcp.WithNumber("customerId", mcp.Description("Only tickets belonging to this customer id.")),
				mcp.WithString("status", mcp.Description("Only tickets in this status."), mcp.Enum(domain.TicketStatuses...)),
				mcp.WithString("channel", mcp.Description("Only tickets on this channel."), mcp.Enum(domain.TicketChannels...)),
			)...),
			Handler: c.listTickets,
		},
		{
			Tool: mcp.NewTool("get_ticket",
				mcp.WithDescription("Retrieve one ticket by id, including its tags and assignee."),
				mcp.WithNumber("ticketId", mcp.Required(), mcp.Description("Ticket id.")),
				formatOption(),
			),
			Handler: c.getTicket,
		},
		{
			Tool: mcp.NewTool("create_ticket",
				mcp.WithDescription("Create a ticket. The initial message is sent in the same call."),
				mcp.WithString("channel", mcp.Required(), mcp.Description("Channel the ticket arrives on."), mcp.Enum(domain.TicketChannels...)),
				mcp.WithString("subject", mcp.Description("Ticket subject line.")),
				mcp.WithString("status", mcp.Description("Initial status, defaults upstream to open."), mcp.Enum(domain.TicketStatuses...)),
				mcp.WithString("priority", mcp.Description("Ticket priority."), mcp.Enum(domain.TicketPriorities...)),
				mcp.WithString("customerEmail", mcp.Description("Email of the customer the ticket belongs to.")),
				mcp.WithString("messageBodyText", mcp.Description("Plain-text body of the initial message.")),
				mcp.WithString("messageBodyHtml", mcp.Description("HTML body of the initial message.")),
				formatOption(),
			),
			Handler: c.createTicket,
		},
		{
			Tool: mcp.NewTool("update_ticket",
				mcp.WithDescription("Update a ticket. Only the supplied fields change; everything else is left untouched."),
				mcp.WithNumber("ticketId", mcp.Required(), mcp.Description("Ticket id.")),
				mcp.WithString("subject", mcp.Description("New subject line.")),
				mcp.WithString("status", mcp.Description("New status."), mcp.Enum(domain.TicketStatuses...)),
				mcp.WithString("priority", mcp.Description("New priority."), mcp.Enum(domain.TicketPriorities...)),
				mcp.WithString("language", mcp.Description("New language code.")),
				mcp.WithNumber("assigneeUserId", mcp.Description("Agent to assign the ticket to.")),
				mcp.WithNumber("assigneeTeamId", mcp.Description("Team to assign the ticket to.")),
				formatOption(),
			),
			Handler: c.updateTicket,
		},
		{
			Tool: mcp.NewTool("delete_ticket",
				mcp.WithDescription("Permanently delete a ticket."),
				mcp.WithNumber("ticketId", mcp.Required(), mcp.Description("Ticket id.")),
			),
			Handler: c.deleteTicket,
		},
		{
			Tool: mcp.NewTool("add_ticket_tags",
				mcp.WithDescription("Attach tags to a ticket by name. Returns the ticket's resulting tag set."),
				mcp.WithNumber("ticketId", mcp.Required(), mcp.Description("Ticket id.")),
				mcp.WithString("tags", mcp.Required(), mcp.Description("JSON array of tag names, e.g. [\"vip\",\"refund\"].")),
				formatOption(),
			),
			Handler: c.addTicketTags,
		},
		{
			Tool: mcp.NewTool("remove_ticket_tags",
				mcp.WithDescription("Detach tags from a ticket by name."),
				mcp.WithNumber("ticketId", mcp.Required(), mcp.Description("Ticket id.")),
				mcp.WithString("tags", mcp.Required(), mcp.Description("JSON array of tag names to remove.")),
			),
			Handler: c.removeTicketTags,
		},
	}
}

func (c *Catalog) listTickets(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	opts := gorgias.TicketListOptions{
		ListOptions: listOptions(req),
		Status:      req.GetString("status", ""),
		Channel:     req.GetString("channel", ""),
	}
	if id := int64Arg(req, "customerId"); id != nil {
		opts.CustomerID = *id
	}
	if err := validateEnum("status", opts.Status, domain.TicketStatuses); err != nil {
		return argError(err), nil
	}
	if err := validateEnum("channel", opts.Channel, domain.TicketChannels); err != nil {
		return argError(err), nil
	}
	page, err := c.client.ListTickets(ctx, opts)
	if err != nil {
		return toolError(err), nil
	}
	return c.render(domain.PageResult("ticket", page), formatArg(req)), nil
}

func (c *Catalog) getTicket(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := requireID(req, "ticketId")
	if err != nil {
		return argError(err), nil
	}
	ticket, err := c.client.GetTicket(ctx, id)
	if err != nil {
		return toolError(err), nil
	}
	return c.render(domain.Single("ticket", ticket), formatArg(req)), nil
}

func (c *Catalog) createTicket(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	channel, err := req.RequireString("channel")
	if err != nil {
		return argError(err), nil
	}
	create := domain.TicketCreate{
		Channel:  channel,
		Subject:  req.GetString("subject", ""),
		Status:   req.GetString("status", ""),
		Priority: req.GetString("priority", ""),
	}
	for _, check := range []error{
		validateEnum("channel", create.Channel, domain.TicketChannels),
		validateEnum("status", create.Status, domain.TicketStatuses),
		validateEnum("priority", create.Priority, domain.TicketPriorities),
	} {
		if check != nil {
			return argError(check), nil
		}
	}
	if email := req.GetString("customerEmail", ""); email != "" {
		create.Customer = &domain.WireCustomerStub{Email: email}
	}
	bodyText := req.GetString("messageBodyText", "")
	bodyHTML := req.GetString("messageBodyHtml", "")
	if bodyText != "" || bodyHTML != "" {
		create.Messages = []domain.MessageCreate{{
			Channel:  channel,
			Subject:  create.Subject,
			BodyText: bodyText,
			BodyHTML: bodyHTML,
		}}
	}
	ticket, err := c.client.CreateTicket(ctx, create)
	if err != nil {
		return toolError(err), nil
	}
	return c.render(domain.Single("ticket", ticket), formatArg(req)), nil
}

func (c *Catalog) updateTicket(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := requireID(req, "ticketId")
	if err != nil {
		return argError(err), nil
	}
	update := domain.TicketUpdate{
		Subject:        stringArg(req, "subject"),
		Status:         stringArg(req, "status"),
		Priority:       stringArg(req, "priority"),
		Language:       stringArg(req, "language"),
		AssigneeUserID: int64Arg(req, "assigneeUserId"),
		AssigneeTeamID: int64Arg(req, "assigneeTeamId"),
	}
	if update.Status != nil {
		if err := validateEnum("status", *update.Status, domain.TicketStatuses); err != nil {
			return argError(err), nil
		}
	}
	if update.Priority != nil {
		if err := validateEnum("priority", *update.Priority, domain.TicketPriorities); err != nil {
			return argError(err), nil
		}
	}
	ticket, err := c.client.UpdateTicket(ctx, id, update)
	if err != nil {
		return toolError(err), nil
	}
	return c.render(domain.Single("ticket", ticket), formatArg(req)), nil
}

func (c *Catalog) deleteTicket(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := requireID(req, "ticketId")
	if err != nil {
		return argError(err), nil
	}
	if err := c.client.DeleteTicket(ctx, id); err != nil {
		return toolError(err), nil
	}
	return c.render(domain.Single("ticket", map[string]any{"id": id, "deleted": true}), formatArg(req)), nil
}

func (c *Catalog) addTicketTags(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := requireID(req, "ticketId")
	if err != nil {
		return argError(err), nil
	}
	names, err := parseTagNames(req)
	if err != nil {
		return argError(err), nil
	}
	tags, err := c.client.AddTicketTags(ctx, id, names)
	if err != nil {
		return toolError(err), nil
	}
	items := make([]any, 0, len(tags))
	for _, t := range tags {
		items = append(items, t)
	}
	return c.render(domain.List("tag", items), formatArg(req)), nil
}

func (c *Catalog) removeTicketTags(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := requireID(req, "ticketId")
	if err != nil {
		return argError(err), nil
	}
	names, err := parseTagNames(req)
	if err != nil {
		return argError(err), nil
	}
	if err := c.client.RemoveTicketTags(ctx, id, names); err != nil {
		return toolError(err), nil
	}
	return c.render(domain.Single("ticket", map[string]any{"id": id, "removedTags": names}), formatArg(req)), nil
}

func parseTagNames(req mcp.CallToolRequest) ([]string, error) {
	raw, err := req.RequireString("tags")
	if err != nil {
		return nil, err
	}
	return parseStringArray("tags", raw)
}
