package application

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/gorgias-oss/gorgias-mcp-server/internal/domain"
)

func (c *Catalog) teamTools() []server.ServerTool {
	return []server.ServerTool{
		{
			Tool:    mcp.NewTool("list_teams", listToolOptions("List the teams of the account.")...),
			Handler: c.listTeams,
		},
		{
			Tool: mcp.NewTool("get_team",
				mcp.WithDescription("Retrieve one team by id."),
				mcp.WithNumber("teamId", mcp.Required(), mcp.Description("Team id.")),
				formatOption(),
			),
			Handler: c.getTeam,
		},
		{
			Tool: mcp.NewTool("create_team",
				mcp.WithDescription("Create a team."),
				mcp.WithString("name", mcp.Required(), mcp.Description("Team name.")),
				mcp.WithString("description", mcp.Description("What the team handles.")),
				mcp.WithString("decoration", mcp.Description("Emoji or color shown next to the name.")),
				formatOption(),
			),
			Handler: c.createTeam,
		},
		{
			Tool: mcp.NewTool("update_team",
				mcp.WithDescription("Update a team. Only the supplied fields change."),
				mcp.WithNumber("teamId", mcp.Required(), mcp.Description("Team id.")),
				mcp.WithString("name", mcp.Description("New name.")),
				mcp.WithString("description", mcp.Description("New description.")),
				mcp.WithString("decoration", mcp.Description("New decoration.")),
				formatOption(),
			),
			Handler: c.updateTeam,
		},
		{
			Tool: mcp.NewTool("delete_team",
				mcp.WithDescription("Delete a team. Its members stay on the account."),
				mcp.WithNumber("teamId", mcp.Required(), mcp.Description("Team id.")),
			),
			Handler: c.deleteTeam,
		},
	}
}

func (c *Catalog) listTeams(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	page, err := c.client.ListTeams(ctx, listOptions(req))
	if err != nil {
		return toolError(err), nil
	}
	return c.render(domain.PageResult("team", page), formatArg(req)), nil
}

func (c *Catalog) getTeam(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := requireID(req, "teamId")
	if err != nil {
		return argError(err), nil
	}
	team, err := c.client.GetTeam(ctx, id)
	if err != nil {
		return toolError(err), nil
	}
	return c.render(domain.Single("team", team), formatArg(req)), nil
}

func (c *Catalog) createTeam(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name, err := req.RequireString("name")
	if err != nil {
		return argError(err), nil
	}
	create := domain.TeamCreate{
		Name:        name,
		Description: req.GetString("description", ""),
		Decoration:  req.GetString("decoration", ""),
	}
	team, err := c.client.CreateTeam(ctx, create)
	if err != nil {
		return toolError(err), nil
	}
	return c.render(domain.Single("team", team), formatArg(req)), nil
}

func (c *Catalog) updateTeam(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := requireID(req, "teamId")
	if err != nil {
		return argError(err), nil
	}
	update := domain.TeamUpdate{
		Name:        stringArg(req, "name"),
		Description: stringArg(req, "description"),
		Decoration:  stringArg(req, "decoration"),
	}
	team, err := c.client.UpdateTeam(ctx, id, update)
	if err != nil {
		return toolError(err), nil
	}
	return c.render(domain.Single("team", team), formatArg(req)), nil
}

func (c *Catalog) deleteTeam(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := requireID(req, "teamId")
	if err != nil {
		return argError(err), nil
	}
	if err := c.client.DeleteTeam(ctx, id); err != nil {
		return toolError(err), nil
	}
	return c.render(domain.Single("team", map[string]any{"id": id, "deleted": true}), formatArg(req)), nil
}
