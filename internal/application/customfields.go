package application

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/gorgias-oss/gorgias-mcp-server/internal/domain"
	"github.com/gorgias-oss/gorgias-mcp-server/internal/gorgias"
)

func (c *Catalog) customFieldTools() []server.ServerTool {
	return []server.ServerTool{
		{
			Tool: mcp.NewTool("list_custom_fields", append(listToolOptions("List the custom field definitions of the account."),
				mcp.WithString("objectType", mcp.Description("Only fields attached to this object kind."), mcp.Enum(domain.CustomFieldObjectTypes...)),
			)...),
			Handler: c.listCustomFields,
		},
		{
			Tool: mcp.NewTool("get_custom_field",
				mcp.WithDescription("Retrieve one custom field definition by id."),
				mcp.WithNumber("customFieldId", mcp.Required(), mcp.Description("Custom field id.")),
				formatOption(),
			),
			Handler: c.getCustomField,
		},
		{
			Tool: mcp.NewTool("create_custom_field",
				mcp.WithDescription("Define a custom field on tickets or customers."),
				mcp.WithString("objectType", mcp.Required(), mcp.Description("Object kind the field attaches to."), mcp.Enum(domain.CustomFieldObjectTypes...)),
				mcp.WithString("label", mcp.Required(), mcp.Description("Field label shown to agents.")),
				mcp.WithString("dataType", mcp.Required(), mcp.Description("Value type of the field."), mcp.Enum(domain.CustomFieldDataTypes...)),
				mcp.WithBoolean("required", mcp.Description("Whether agents must fill the field.")),
				mcp.WithString("definitionJson", mcp.Description("JSON object with type-specific settings, e.g. {\"choices\":[\"a\",\"b\"]} for select fields.")),
				formatOption(),
			),
			Handler: c.createCustomField,
		},
		{
			Tool: mcp.NewTool("update_custom_field",
				mcp.WithDescription("Update a custom field definition. Only the supplied fields change."),
				mcp.WithNumber("customFieldId", mcp.Required(), mcp.Description("Custom field id.")),
				mcp.WithString("label", mcp.Description("New label.")),
				mcp.WithBoolean("required", mcp.Description("New required flag.")),
				mcp.WithString("definitionJson", mcp.Description("Replacement JSON settings object.")),
				formatOption(),
			),
			Handler: c.updateCustomField,
		},
		{
			Tool: mcp.NewTool("delete_custom_field",
				mcp.WithDescription("Delete a custom field definition and its stored values."),
				mcp.WithNumber("customFieldId", mcp.Required(), mcp.Description("Custom field id.")),
			),
			Handler: c.deleteCustomField,
		},
	}
}

func (c *Catalog) listCustomFields(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	opts := gorgias.CustomFieldListOptions{
		ListOptions: listOptions(req),
		ObjectType:  req.GetString("objectType", ""),
	}
	if err := validateEnum("objectType", opts.ObjectType, domain.CustomFieldObjectTypes); err != nil {
		return argError(err), nil
	}
	page, err := c.client.ListCustomFields(ctx, opts)
	if err != nil {
		return toolError(err), nil
	}
	return c.render(domain.PageResult("customField", page), formatArg(req)), nil
}

func (c *Catalog) getCustomField(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := requireID(req, "customFieldId")
	if err != nil {
		return argError(err), nil
	}
	field, err := c.client.GetCustomField(ctx, id)
	if err != nil {
		return toolError(err), nil
	}
	return c.render(domain.Single("customField", field), formatArg(req)), nil
}

func (c *Catalog) createCustomField(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	objectType, err := req.RequireString("objectType")
	if err != nil {
		return argError(err), nil
	}
	label, err := req.RequireString("label")
	if err != nil {
		return argError(err), nil
	}
	dataType, err := req.RequireString("dataType")
	if err != nil {
		return argError(err), nil
	}
	for _, check := range []error{
		validateEnum("objectType", objectType, domain.CustomFieldObjectTypes),
		validateEnum("dataType", dataType, domain.CustomFieldDataTypes),
	} {
		if check != nil {
			return argError(check), nil
		}
	}
	create := domain.CustomFieldCreate{
		ObjectType: objectType,
		Label:      label,
		DataType:   dataType,
		Required:   boolArg(req, "required"),
	}
	if raw := req.GetString("definitionJson", ""); raw != "" {
		definition, err := parseJSONObject("definitionJson", raw)
		if err != nil {
			return argError(err), nil
		}
		create.Definition = definition
	}
	field, err := c.client.CreateCustomField(ctx, create)
	if err != nil {
		return toolError(err), nil
	}
	return c.render(domain.Single("customField", field), formatArg(req)), nil
}

func (c *Catalog) updateCustomField(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := requireID(req, "customFieldId")
	if err != nil {
		return argError(err), nil
	}
	update := domain.CustomFieldUpdate{
		Label:    stringArg(req, "label"),
		Required: boolArg(req, "required"),
	}
	if raw := stringArg(req, "definitionJson"); raw != nil {
		definition, err := parseJSONObject("definitionJson", *raw)
		if err != nil {
			return argError(err), nil
		}
		update.Definition = definition
	}
	field, err := c.client.UpdateCustomField(ctx, id, update)
	if err != nil {
		return toolError(err), nil
	}
	return c.render(domain.Single("customField", field), formatArg(req)), nil
}

func (c *Catalog) deleteCustomField(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := requireID(req, "customFieldId")
	if err != nil {
		return argError(err), nil
	}
	if err := c.client.DeleteCustomField(ctx, id); err != nil {
		return toolError(err), nil
	}
	return c.render(domain.Single("customField", map[string]any{"id": id, "deleted": true}), formatArg(req)), nil
}
