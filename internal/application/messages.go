package application

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/gorgias-oss/gorgias-mcp-server/internal/domain"
)

func (c *Catalog) messageTools() []server.ServerTool {
	return []server.ServerTool{
		{
			Tool: mcp.NewTool("list_ticket_messages", append(listToolOptions("List the messages of a ticket, oldest first."),
				mcp.WithNumber("ticketId", mcp.Required(), mcp.Description("Ticket id.")),
			)...),
			Handler: c.listTicketMessages,
		},
		{
			Tool: mcp.NewTool("get_message",
				mcp.WithDescription("Retrieve one message of a ticket."),
				mcp.WithNumber("ticketId", mcp.Required(), mcp.Description("Ticket id.")),
				mcp.WithNumber("messageId", mcp.Required(), mcp.Description("Message id.")),
				formatOption(),
			),
			Handler: c.getMessage,
		},
		{
			Tool: mcp.NewTool("create_message",
				mcp.WithDescription("Append a message to a ticket, as a public reply or an internal note."),
				mcp.WithNumber("ticketId", mcp.Required(), mcp.Description("Ticket id.")),
				mcp.WithString("channel", mcp.Required(), mcp.Description("Channel to send on."), mcp.Enum(domain.TicketChannels...)),
				mcp.WithString("bodyText", mcp.Description("Plain-text body.")),
				mcp.WithString("bodyHtml", mcp.Description("HTML body.")),
				mcp.WithString("subject", mcp.Description("Message subject.")),
				mcp.WithBoolean("public", mcp.Description("False makes the message an internal note. Defaults to true upstream.")),
				mcp.WithString("senderEmail", mcp.Description("Email of the sending agent or customer.")),
				mcp.WithString("receiverEmail", mcp.Description("Email of the receiving party.")),
				formatOption(),
			),
			Handler: c.createMessage,
		},
		{
			Tool: mcp.NewTool("delete_message",
				mcp.WithDescription("Permanently delete a message from a ticket."),
				mcp.WithNumber("ticketId", mcp.Required(), mcp.Description("Ticket id.")),
				mcp.WithNumber("messageId", mcp.Required(), mcp.Description("Message id.")),
			),
			Handler: c.deleteMessage,
		},
	}
}

func (c *Catalog) listTicketMessages(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	ticketID, err := requireID(req, "ticketId")
	if err != nil {
		return argError(err), nil
	}
	page, err := c.client.ListTicketMessages(ctx, ticketID, listOptions(req))
	if err != nil {
		return toolError(err), nil
	}
	return c.render(domain.PageResult("message", page), formatArg(req)), nil
}

func (c *Catalog) getMessage(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	ticketID, err := requireID(req, "ticketId")
	if err != nil {
		return argError(err), nil
	}
	messageID, err := requireID(req, "messageId")
	if err != nil {
		return argError(err), nil
	}
	msg, err := c.client.GetMessage(ctx, ticketID, messageID)
	if err != nil {
		return toolError(err), nil
	}
	return c.render(domain.Single("message", msg), formatArg(req)), nil
}

func (c *Catalog) createMessage(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	ticketID, err := requireID(req, "ticketId")
	if err != nil {
		return argError(err), nil
	}
	channel, err := req.RequireString("channel")
	if err != nil {
		return argError(err), nil
	}
	if err := validateEnum("channel", channel, domain.TicketChannels); err != nil {
		return argError(err), nil
	}
	create := domain.MessageCreate{
		Channel:  channel,
		Subject:  req.GetString("subject", ""),
		BodyText: req.GetString("bodyText", ""),
		BodyHTML: req.GetString("bodyHtml", ""),
		Public:   boolArg(req, "public"),
	}
	if email := req.GetString("senderEmail", ""); email != "" {
		create.Sender = &domain.WireActorStub{Email: email}
	}
	if email := req.GetString("receiverEmail", ""); email != "" {
		create.Receiver = &domain.WireActorStub{Email: email}
	}
	msg, err := c.client.CreateMessage(ctx, ticketID, create)
	if err != nil {
		return toolError(err), nil
	}
	return c.render(domain.Single("message", msg), formatArg(req)), nil
}

func (c *Catalog) deleteMessage(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	ticketID, err := requireID(req, "ticketId")
	if err != nil {
		return argError(err), nil
	}
	messageID, err := requireID(req, "messageId")
	if err != nil {
		return argError(err), nil
	}
	if err := c.client.DeleteMessage(ctx, ticketID, messageID); err != nil {
		return toolError(err), nil
	}
	return c.render(domain.Single("message", map[string]any{"id": messageID, "deleted": true}), formatArg(req)), nil
}
