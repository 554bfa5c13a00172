package application

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/gorgias-oss/gorgias-mcp-server/internal/domain"
)

func (c *Catalog) viewTools() []server.ServerTool {
	return []server.ServerTool{
		{
			Tool:    mcp.NewTool("list_views", listToolOptions("List the saved ticket views of the account.")...),
			Handler: c.listViews,
		},
		{
			Tool: mcp.NewTool("get_view",
				mcp.WithDescription("Retrieve one view by id, including its filter expression."),
				mcp.WithNumber("viewId", mcp.Required(), mcp.Description("View id.")),
				formatOption(),
			),
			Handler: c.getView,
		},
		{
			Tool: mcp.NewTool("create_view",
				mcp.WithDescription("Create a saved ticket view from a filter expression."),
				mcp.WithString("name", mcp.Required(), mcp.Description("View name.")),
				mcp.WithString("filters", mcp.Description("Filter expression, e.g. status:open AND priority:urgent.")),
				mcp.WithString("visibility", mcp.Description("Who can see the view."), mcp.Enum(domain.ViewVisibilities...)),
				mcp.WithString("orderBy", mcp.Description("Sort field for the view's tickets.")),
				mcp.WithString("orderDir", mcp.Description("Sort direction, asc or desc.")),
				formatOption(),
			),
			Handler: c.createView,
		},
		{
			Tool: mcp.NewTool("update_view",
				mcp.WithDescription("Update a view. Only the supplied fields change."),
				mcp.WithNumber("viewId", mcp.Required(), mcp.Description("View id.")),
				mcp.WithString("name", mcp.Description("New name.")),
				mcp.WithString("filters", mcp.Description("New filter expression.")),
				mcp.WithString("visibility", mcp.Description("New visibility."), mcp.Enum(domain.ViewVisibilities...)),
				mcp.WithString("orderBy", mcp.Description("New sort field.")),
				mcp.WithString("orderDir", mcp.Description("New sort direction.")),
				formatOption(),
			),
			Handler: c.updateView,
		},
		{
			Tool: mcp.NewTool("delete_view",
				mcp.WithDescription("Delete a saved view. The tickets it matches are unaffected."),
				mcp.WithNumber("viewId", mcp.Required(), mcp.Description("View id.")),
			),
			Handler: c.deleteView,
		},
		{
			Tool: mcp.NewTool("list_view_items", append(listToolOptions("List the tickets currently matching a view's filter."),
				mcp.WithNumber("viewId", mcp.Required(), mcp.Description("View id.")),
			)...),
			Handler: c.listViewItems,
		},
	}
}

func (c *Catalog) listViews(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	page, err := c.client.ListViews(ctx, listOptions(req))
	if err != nil {
		return toolError(err), nil
	}
	return c.render(domain.PageResult("view", page), formatArg(req)), nil
}

func (c *Catalog) getView(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := requireID(req, "viewId")
	if err != nil {
		return argError(err), nil
	}
	view, err := c.client.GetView(ctx, id)
	if err != nil {
		return toolError(err), nil
	}
	return c.render(domain.Single("view", view), formatArg(req)), nil
}

func (c *Catalog) createView(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name, err := req.RequireString("name")
	if err != nil {
		return argError(err), nil
	}
	create := domain.ViewCreate{
		Name:       name,
		Filters:    req.GetString("filters", ""),
		Visibility: req.GetString("visibility", ""),
		OrderBy:    req.GetString("orderBy", ""),
		OrderDir:   req.GetString("orderDir", ""),
	}
	if err := validateEnum("visibility", create.Visibility, domain.ViewVisibilities); err != nil {
		return argError(err), nil
	}
	view, err := c.client.CreateView(ctx, create)
	if err != nil {
		return toolError(err), nil
	}
	return c.render(domain.Single("view", view), formatArg(req)), nil
}

func (c *Catalog) updateView(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := requireID(req, "viewId")
	if err != nil {
		return argError(err), nil
	}
	update := domain.ViewUpdate{
		Name:       stringArg(req, "name"),
		Filters:    stringArg(req, "filters"),
		Visibility: stringArg(req, "visibility"),
		OrderBy:    stringArg(req, "orderBy"),
		OrderDir:   stringArg(req, "orderDir"),
	}
	if update.Visibility != nil {
		if err := validateEnum("visibility", *update.Visibility, domain.ViewVisibilities); err != nil {
			return argError(err), nil
		}
	}
	view, err := c.client.UpdateView(ctx, id, update)
	if err != nil {
		return toolError(err), nil
	}
	return c.render(domain.Single("view", view), formatArg(req)), nil
}

func (c *Catalog) deleteView(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := requireID(req, "viewId")
	if err != nil {
		return argError(err), nil
	}
	if err := c.client.DeleteView(ctx, id); err != nil {
		return toolError(err), nil
	}
	return c.render(domain.Single("view", map[string]any{"id": id, "deleted": true}), formatArg(req)), nil
}

func (c *Catalog) listViewItems(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := requireID(req, "viewId")
	if err != nil {
		return argError(err), nil
	}
	page, err := c.client.ListViewItems(ctx, id, listOptions(req))
	if err != nil {
		return toolError(err), nil
	}
	return c.render(domain.PageResult("ticket", page), formatArg(req)), nil
}
