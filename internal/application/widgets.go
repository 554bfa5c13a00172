package application

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/gorgias-oss/gorgias-mcp-server/internal/domain"
)

func (c *Catalog) widgetTools() []server.ServerTool {
	return []server.ServerTool{
		{
			Tool:    mcp.NewTool("list_widgets", listToolOptions("List the sidebar widgets configured on the account.")...),
			Handler: c.listWidgets,
		},
		{
			Tool: mcp.NewTool("get_widget",
				mcp.WithDescription("Retrieve one widget by id, including its layout definition."),
				mcp.WithNumber("widgetId", mcp.Required(), mcp.Description("Widget id.")),
				formatOption(),
			),
			Handler: c.getWidget,
		},
		{
			Tool: mcp.NewTool("create_widget",
				mcp.WithDescription("Create a sidebar widget from a JSON layout definition."),
				mcp.WithString("type", mcp.Required(), mcp.Description("Widget type, e.g. http or card.")),
				mcp.WithString("context", mcp.Description("Where the widget renders, e.g. ticket.")),
				mcp.WithString("definitionJson", mcp.Description("JSON object describing the widget layout.")),
				formatOption(),
			),
			Handler: c.createWidget,
		},
		{
			Tool: mcp.NewTool("update_widget",
				mcp.WithDescription("Update a widget. Only the supplied fields change."),
				mcp.WithNumber("widgetId", mcp.Required(), mcp.Description("Widget id.")),
				mcp.WithString("context", mcp.Description("New rendering context.")),
				mcp.WithString("definitionJson", mcp.Description("Replacement JSON layout definition.")),
				formatOption(),
			),
			Handler: c.updateWidget,
		},
		{
			Tool: mcp.NewTool("delete_widget",
				mcp.WithDescription("Delete a widget."),
				mcp.WithNumber("widgetId", mcp.Required(), mcp.Description("Widget id.")),
			),
			Handler: c.deleteWidget,
		},
	}
}

func (c *Catalog) listWidgets(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	page, err := c.client.ListWidgets(ctx, listOptions(req))
	if err != nil {
		return toolError(err), nil
	}
	return c.render(domain.PageResult("widget", page), formatArg(req)), nil
}

func (c *Catalog) getWidget(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := requireID(req, "widgetId")
	if err != nil {
		return argError(err), nil
	}
	widget, err := c.client.GetWidget(ctx, id)
	if err != nil {
		return toolError(err), nil
	}
	return c.render(domain.Single("widget", widget), formatArg(req)), nil
}

func (c *Catalog) createWidget(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	widgetType, err := req.RequireString("type")
	if err != nil {
		return argError(err), nil
	}
	create := domain.WidgetCreate{
		Type:    widgetType,
		Context: req.GetString("context", ""),
	}
	if raw := req.GetString("definitionJson", ""); raw != "" {
		definition, err := parseJSONObject("definitionJson", raw)
		if err != nil {
			return argError(err), nil
		}
		create.Definition = definition
	}
	widget, err := c.client.CreateWidget(ctx, create)
	if err != nil {
		return toolError(err), nil
	}
	return c.render(domain.Single("widget", widget), formatArg(req)), nil
}

func (c *Catalog) updateWidget(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := requireID(req, "widgetId")
	if err != nil {
		return argError(err), nil
	}
	update := domain.WidgetUpdate{
		Context: stringArg(req, "context"),
	}
	if raw := stringArg(req, "definitionJson"); raw != nil {
		definition, err := parseJSONObject("definitionJson", *raw)
		if err != nil {
			return argError(err), nil
		}
		update.Definition = definition
	}
	widget, err := c.client.UpdateWidget(ctx, id, update)
	if err != nil {
		return toolError(err), nil
	}
	return c.render(domain.Single("widget", widget), formatArg(req)), nil
}

func (c *Catalog) deleteWidget(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := requireID(req, "widgetId")
	if err != nil {
		return argError(err), nil
	}
	if err := c.client.DeleteWidget(ctx, id); err != nil {
		return toolError(err), nil
	}
	return c.render(domain.Single("widget", map[string]any{"id": id, "deleted": true}), formatArg(req)), nil
}
