package application

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/gorgias-oss/gorgias-mcp-server/internal/domain"
)

func (c *Catalog) macroTools() []server.ServerTool {
	return []server.ServerTool{
		{
			Tool:    mcp.NewTool("list_macros", listToolOptions("List the reply macros of the account.")...),
			Handler: c.listMacros,
		},
		{
			Tool: mcp.NewTool("get_macro",
				mcp.WithDescription("Retrieve one macro by id, including its action list."),
				mcp.WithNumber("macroId", mcp.Required(), mcp.Description("Macro id.")),
				formatOption(),
			),
			Handler: c.getMacro,
		},
		{
			Tool: mcp.NewTool("create_macro",
				mcp.WithDescription("Create a reply macro from a JSON action list."),
				mcp.WithString("name", mcp.Required(), mcp.Description("Macro name.")),
				mcp.WithString("actionsJson", mcp.Required(), mcp.Description("JSON array of action objects, e.g. [{\"type\":\"add-tags\",\"tags\":[\"vip\"]}].")),
				mcp.WithString("intention", mcp.Description("Intent label used for macro suggestions.")),
				formatOption(),
			),
			Handler: c.createMacro,
		},
		{
			Tool: mcp.NewTool("update_macro",
				mcp.WithDescription("Update a macro. Only the supplied fields change."),
				mcp.WithNumber("macroId", mcp.Required(), mcp.Description("Macro id.")),
				mcp.WithString("name", mcp.Description("New name.")),
				mcp.WithString("intention", mcp.Description("New intent label.")),
				mcp.WithString("actionsJson", mcp.Description("Replacement JSON array of action objects.")),
				formatOption(),
			),
			Handler: c.updateMacro,
		},
		{
			Tool: mcp.NewTool("delete_macro",
				mcp.WithDescription("Delete a macro."),
				mcp.WithNumber("macroId", mcp.Required(), mcp.Description("Macro id.")),
			),
			Handler: c.deleteMacro,
		},
	}
}

func (c *Catalog) listMacros(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	page, err := c.client.ListMacros(ctx, listOptions(req))
	if err != nil {
		return toolError(err), nil
	}
	return c.render(domain.PageResult("macro", page), formatArg(req)), nil
}

func (c *Catalog) getMacro(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := requireID(req, "macroId")
	if err != nil {
		return argError(err), nil
	}
	macro, err := c.client.GetMacro(ctx, id)
	if err != nil {
		return toolError(err), nil
	}
	return c.render(domain.Single("macro", macro), formatArg(req)), nil
}

func (c *Catalog) createMacro(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name, err := req.RequireString("name")
	if err != nil {
		return argError(err), nil
	}
	raw, err := req.RequireString("actionsJson")
	if err != nil {
		return argError(err), nil
	}
	actions, err := parseJSONObjectArray("actionsJson", raw)
	if err != nil {
		return argError(err), nil
	}
	macro, err := c.client.CreateMacro(ctx, domain.MacroCreate{
		Name:      name,
		Intention: req.GetString("intention", ""),
		Actions:   actions,
	})
	if err != nil {
		return toolError(err), nil
	}
	return c.render(domain.Single("macro", macro), formatArg(req)), nil
}

func (c *Catalog) updateMacro(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := requireID(req, "macroId")
	if err != nil {
		return argError(err), nil
	}
	update := domain.MacroUpdate{
		Name:      stringArg(req, "name"),
		Intention: stringArg(req, "intention"),
	}
	if raw := stringArg(req, "actionsJson"); raw != nil {
		actions, err := parseJSONObjectArray("actionsJson", *raw)
		if err != nil {
			return argError(err), nil
		}
		update.Actions = actions
	}
	macro, err := c.client.UpdateMacro(ctx, id, update)
	if err != nil {
		return toolError(err), nil
	}
	return c.render(domain.Single("macro", macro), formatArg(req)), nil
}

func (c *Catalog) deleteMacro(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := requireID(req, "macroId")
	if err != nil {
		return argError(err), nil
	}
	if err := c.client.DeleteMacro(ctx, id); err != nil {
		return toolError(err), nil
	}
	return c.render(domain.Single("macro", map[string]any{"id": id, "deleted": true}), formatArg(req)), nil
}
