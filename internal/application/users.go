package application

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/gorgias-oss/gorgias-mcp-server/internal/domain"
)

func (c *Catalog) userTools() []server.ServerTool {
	return []server.ServerTool{
		{
			Tool:    mcp.NewTool("list_users", listToolOptions("List the agents of the account.")...),
			Handler: c.listUsers,
		},
		{
			Tool: mcp.NewTool("get_user",
				mcp.WithDescription("Retrieve one agent by id."),
				mcp.WithNumber("userId", mcp.Required(), mcp.Description("Agent id.")),
				formatOption(),
			),
			Handler: c.getUser,
		},
		{
			Tool: mcp.NewTool("create_user",
				mcp.WithDescription("Invite a new agent to the account."),
				mcp.WithString("email", mcp.Required(), mcp.Description("Agent email.")),
				mcp.WithString("firstname", mcp.Description("First name.")),
				mcp.WithString("lastname", mcp.Description("Last name.")),
				mcp.WithString("role", mcp.Description("Agent role."), mcp.Enum(domain.UserRoles...)),
				formatOption(),
			),
			Handler: c.createUser,
		},
		{
			Tool: mcp.NewTool("update_user",
				mcp.WithDescription("Update an agent. Only the supplied fields change."),
				mcp.WithNumber("userId", mcp.Required(), mcp.Description("Agent id.")),
				mcp.WithString("email", mcp.Description("New email.")),
				mcp.WithString("firstname", mcp.Description("New first name.")),
				mcp.WithString("lastname", mcp.Description("New last name.")),
				mcp.WithString("role", mcp.Description("New role."), mcp.Enum(domain.UserRoles...)),
				mcp.WithBoolean("active", mcp.Description("False deactivates the agent.")),
				formatOption(),
			),
			Handler: c.updateUser,
		},
		{
			Tool: mcp.NewTool("delete_user",
				mcp.WithDescription("Remove an agent from the account."),
				mcp.WithNumber("userId", mcp.Required(), mcp.Description("Agent id.")),
			),
			Handler: c.deleteUser,
		},
	}
}

func (c *Catalog) listUsers(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	page, err := c.client.ListUsers(ctx, listOptions(req))
	if err != nil {
		return toolError(err), nil
	}
	return c.render(domain.PageResult("user", page), formatArg(req)), nil
}

func (c *Catalog) getUser(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := requireID(req, "userId")
	if err != nil {
		return argError(err), nil
	}
	user, err := c.client.GetUser(ctx, id)
	if err != nil {
		return toolError(err), nil
	}
	return c.render(domain.Single("user", user), formatArg(req)), nil
}

func (c *Catalog) createUser(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	email, err := req.RequireString("email")
	if err != nil {
		return argError(err), nil
	}
	create := domain.UserCreate{
		Email:     email,
		Firstname: req.GetString("firstname", ""),
		Lastname:  req.GetString("lastname", ""),
		Role:      req.GetString("role", ""),
	}
	if err := validateEnum("role", create.Role, domain.UserRoles); err != nil {
		return argError(err), nil
	}
	user, err := c.client.CreateUser(ctx, create)
	if err != nil {
		return toolError(err), nil
	}
	return c.render(domain.Single("user", user), formatArg(req)), nil
}

func (c *Catalog) updateUser(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := requireID(req, "userId")
	if err != nil {
		return argError(err), nil
	}
	update := domain.UserUpdate{
		Email:     stringArg(req, "email"),
		Firstname: stringArg(req, "firstname"),
		Lastname:  stringArg(req, "lastname"),
		Role:      stringArg(req, "role"),
		Active:    boolArg(req, "active"),
	}
	if update.Role != nil {
		if err := validateEnum("role", *update.Role, domain.UserRoles); err != nil {
			return argError(err), nil
		}
	}
	user, err := c.client.UpdateUser(ctx, id, update)
	if err != nil {
		return toolError(err), nil
	}
	return c.render(domain.Single("user", user), formatArg(req)), nil
}

func (c *Catalog) deleteUser(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := requireID(req, "userId")
	if err != nil {
		return argError(err), nil
	}
	if err := c.client.DeleteUser(ctx, id); err != nil {
		return toolError(err), nil
	}
	return c.render(domain.Single("user", map[string]any{"id": id, "deleted": true}), formatArg(req)), nil
}
