package application

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/gorgias-oss/gorgias-mcp-server/internal/domain"
	"github.com/gorgias-oss/gorgias-mcp-server/internal/gorgias"
)

func (c *Catalog) eventTools() []server.ServerTool {
	return []server.ServerTool{
		{
			Tool: mcp.NewTool("list_events", append(listToolOptions("List audit log events, newest first. Supports filtering by subject."),
				mcp.WithString("objectType", mcp.Description("Only events about this object kind."), mcp.Enum(domain.EventObjectTypes...)),
				mcp.WithNumber("objectId", mcp.Description("Only events about this object id.")),
			)...),
			Handler: c.listEvents,
		},
		{
			Tool: mcp.NewTool("get_event",
				mcp.WithDescription("Retrieve one audit log event by id."),
				mcp.WithNumber("eventId", mcp.Required(), mcp.Description("Event id.")),
				formatOption(),
			),
			Handler: c.getEvent,
		},
	}
}

func (c *Catalog) listEvents(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	opts := gorgias.EventListOptions{
		ListOptions: listOptions(req),
		ObjectType:  req.GetString("objectType", ""),
	}
	if id := int64Arg(req, "objectId"); id != nil {
		opts.ObjectID = *id
	}
	if err := validateEnum("objectType", opts.ObjectType, domain.EventObjectTypes); err != nil {
		return argError(err), nil
	}
	page, err := c.client.ListEvents(ctx, opts)
	if err != nil {
		return toolError(err), nil
	}
	return c.render(domain.PageResult("event", page), formatArg(req)), nil
}

func (c *Catalog) getEvent(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := requireID(req, "eventId")
	if err != nil {
		return argError(err), nil
	}
	event, err := c.client.GetEvent(ctx, id)
	if err != nil {
		return toolError(err), nil
	}
	return c.render(domain.Single("event", event), formatArg(req)), nil
}
