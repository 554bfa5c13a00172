package application

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/gorgias-oss/gorgias-mcp-server/internal/domain"
)

func (c *Catalog) ruleTools() []server.ServerTool {
	return []server.ServerTool{
		{
			Tool:    mcp.NewTool("list_rules", listToolOptions("List the automation rules of the account.")...),
			Handler: c.listRules,
		},
		{
			Tool: mcp.NewTool("get_rule",
				mcp.WithDescription("Retrieve one rule by id, including its condition/action tree."),
				mcp.WithNumber("ruleId", mcp.Required(), mcp.Description("Rule id.")),
				formatOption(),
			),
			Handler: c.getRule,
		},
		{
			Tool: mcp.NewTool("create_rule",
				mcp.WithDescription("Create an automation rule from a JSON condition/action tree."),
				mcp.WithString("name", mcp.Required(), mcp.Description("Rule name.")),
				mcp.WithString("codeJson", mcp.Required(), mcp.Description("JSON object holding the rule's condition/action tree.")),
				mcp.WithNumber("priority", mcp.Description("Evaluation priority; lower runs first.")),
				mcp.WithBoolean("active", mcp.Description("Whether the rule is enabled on creation.")),
				formatOption(),
			),
			Handler: c.createRule,
		},
		{
			Tool: mcp.NewTool("update_rule",
				mcp.WithDescription("Update a rule. Only the supplied fields change."),
				mcp.WithNumber("ruleId", mcp.Required(), mcp.Description("Rule id.")),
				mcp.WithString("name", mcp.Description("New name.")),
				mcp.WithString("codeJson", mcp.Description("Replacement JSON condition/action tree.")),
				mcp.WithNumber("priority", mcp.Description("New evaluation priority.")),
				mcp.WithBoolean("active", mcp.Description("Enable or disable the rule.")),
				formatOption(),
			),
			Handler: c.updateRule,
		},
		{
			Tool: mcp.NewTool("delete_rule",
				mcp.WithDescription("Delete a rule."),
				mcp.WithNumber("ruleId", mcp.Required(), mcp.Description("Rule id.")),
			),
			Handler: c.deleteRule,
		},
	}
}

func (c *Catalog) listRules(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	page, err := c.client.ListRules(ctx, listOptions(req))
	if err != nil {
		return toolError(err), nil
	}
	return c.render(domain.PageResult("rule", page), formatArg(req)), nil
}

func (c *Catalog) getRule(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := requireID(req, "ruleId")
	if err != nil {
		return argError(err), nil
	}
	rule, err := c.client.GetRule(ctx, id)
	if err != nil {
		return toolError(err), nil
	}
	return c.render(domain.Single("rule", rule), formatArg(req)), nil
}

func (c *Catalog) createRule(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name, err := req.RequireString("name")
	if err != nil {
		return argError(err), nil
	}
	raw, err := req.RequireString("codeJson")
	if err != nil {
		return argError(err), nil
	}
	code, err := parseJSONObject("codeJson", raw)
	if err != nil {
		return argError(err), nil
	}
	create := domain.RuleCreate{
		Name:   name,
		Code:   code,
		Active: boolArg(req, "active"),
	}
	if p := intArg(req, "priority"); p != nil {
		create.Priority = *p
	}
	rule, err := c.client.CreateRule(ctx, create)
	if err != nil {
		return toolError(err), nil
	}
	return c.render(domain.Single("rule", rule), formatArg(req)), nil
}

func (c *Catalog) updateRule(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := requireID(req, "ruleId")
	if err != nil {
		return argError(err), nil
	}
	update := domain.RuleUpdate{
		Name:     stringArg(req, "name"),
		Priority: intArg(req, "priority"),
		Active:   boolArg(req, "active"),
	}
	if raw := stringArg(req, "codeJson"); raw != nil {
		code, err := parseJSONObject("codeJson", *raw)
		if err != nil {
			return argError(err), nil
		}
		update.Code = code
	}
	rule, err := c.client.UpdateRule(ctx, id, update)
	if err != nil {
		return toolError(err), nil
	}
	return c.render(domain.Single("rule", rule), formatArg(req)), nil
}

func (c *Catalog) deleteRule(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := requireID(req, "ruleId")
	if err != nil {
		return argError(err), nil
	}
	if err := c.client.DeleteRule(ctx, id); err != nil {
		return toolError(err), nil
	}
	return c.render(domain.Single("rule", map[string]any{"id": id, "deleted": true}), formatArg(req)), nil
}
