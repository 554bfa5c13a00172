package application

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/gorgias-oss/gorgias-mcp-server/internal/domain"
	"github.com/gorgias-oss/gorgias-mcp-server/internal/gorgias"
)

func (c *Catalog) customerTools() []server.ServerTool {
	return []server.ServerTool{
		{
			Tool: mcp.NewTool("list_customers", append(listToolOptions("List customers. Supports filtering by email and external id."),
				mcp.WithString("email", mcp.Description("Only the customer with this exact email.")),
				mcp.WithString("externalId", mcp.Description("Only customers with this external id.")),
			)...),
			Handler: c.listCustomers,
		},
		{
			Tool: mcp.NewTool("get_customer",
				mcp.WithDescription("Retrieve one customer by id."),
				mcp.WithNumber("customerId", mcp.Required(), mcp.Description("Customer id.")),
				formatOption(),
			),
			Handler: c.getCustomer,
		},
		{
			Tool: mcp.NewTool("create_customer",
				mcp.WithDescription("Create a customer record."),
				mcp.WithString("email", mcp.Required(), mcp.Description("Customer email, unique per account.")),
				mcp.WithString("name", mcp.Description("Display name.")),
				mcp.WithString("firstname", mcp.Description("First name.")),
				mcp.WithString("lastname", mcp.Description("Last name.")),
				mcp.WithString("language", mcp.Description("Preferred language code.")),
				mcp.WithString("timezone", mcp.Description("IANA timezone name.")),
				mcp.WithString("externalId", mcp.Description("Identifier in an external system.")),
				mcp.WithString("note", mcp.Description("Free-form note visible to agents.")),
				formatOption(),
			),
			Handler: c.createCustomer,
		},
		{
			Tool: mcp.NewTool("update_customer",
				mcp.WithDescription("Update a customer. Only the supplied fields change."),
				mcp.WithNumber("customerId", mcp.Required(), mcp.Description("Customer id.")),
				mcp.WithString("email", mcp.Description("New email.")),
				mcp.WithString("name", mcp.Description("New display name.")),
				mcp.WithString("firstname", mcp.Description("New first name.")),
				mcp.WithString("lastname", mcp.Description("New last name.")),
				mcp.WithString("language", mcp.Description("New language code.")),
				mcp.WithString("timezone", mcp.Description("New timezone.")),
				mcp.WithString("externalId", mcp.Description("New external id.")),
				mcp.WithString("note", mcp.Description("New agent note.")),
				formatOption(),
			),
			Handler: c.updateCustomer,
		},
		{
			Tool: mcp.NewTool("delete_customer",
				mcp.WithDescription("Permanently delete a customer record."),
				mcp.WithNumber("customerId", mcp.Required(), mcp.Description("Customer id.")),
			),
			Handler: c.deleteCustomer,
		},
		{
			Tool: mcp.NewTool("merge_customers",
				mcp.WithDescription("Merge duplicate customers into one. Tickets of the sources move to the target; the sources are removed."),
				mcp.WithNumber("targetId", mcp.Required(), mcp.Description("Customer that survives the merge.")),
				mcp.WithString("sourceIds", mcp.Required(), mcp.Description("JSON array of customer ids to merge into the target, e.g. [12,13].")),
				formatOption(),
			),
			Handler: c.mergeCustomers,
		},
	}
}

func (c *Catalog) listCustomers(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	opts := gorgias.CustomerListOptions{
		ListOptions: listOptions(req),
		Email:       req.GetString("email", ""),
		ExternalID:  req.GetString("externalId", ""),
	}
	page, err := c.client.ListCustomers(ctx, opts)
	if err != nil {
		return toolError(err), nil
	}
	return c.render(domain.PageResult("customer", page), formatArg(req)), nil
}

func (c *Catalog) getCustomer(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := requireID(req, "customerId")
	if err != nil {
		return argError(err), nil
	}
	customer, err := c.client.GetCustomer(ctx, id)
	if err != nil {
		return toolError(err), nil
	}
	return c.render(domain.Single("customer", customer), formatArg(req)), nil
}

func (c *Catalog) createCustomer(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	email, err := req.RequireString("email")
	if err != nil {
		return argError(err), nil
	}
	create := domain.CustomerCreate{
		Email:      email,
		Name:       req.GetString("name", ""),
		Firstname:  req.GetString("firstname", ""),
		Lastname:   req.GetString("lastname", ""),
		Language:   req.GetString("language", ""),
		Timezone:   req.GetString("timezone", ""),
		ExternalID: req.GetString("externalId", ""),
		Note:       req.GetString("note", ""),
	}
	customer, err := c.client.CreateCustomer(ctx, create)
	if err != nil {
		return toolError(err), nil
	}
	return c.render(domain.Single("customer", customer), formatArg(req)), nil
}

func (c *Catalog) updateCustomer(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := requireID(req, "customerId")
	if err != nil {
		return argError(err), nil
	}
	update := domain.CustomerUpdate{
		Email:      stringArg(req, "email"),
		Name:       stringArg(req, "name"),
		Firstname:  stringArg(req, "firstname"),
		Lastname:   stringArg(req, "lastname"),
		Language:   stringArg(req, "language"),
		Timezone:   stringArg(req, "timezone"),
		ExternalID: stringArg(req, "externalId"),
		Note:       stringArg(req, "note"),
	}
	customer, err := c.client.UpdateCustomer(ctx, id, update)
	if err != nil {
		return toolError(err), nil
	}
	return c.render(domain.Single("customer", customer), formatArg(req)), nil
}

func (c *Catalog) deleteCustomer(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := requireID(req, "customerId")
	if err != nil {
		return argError(err), nil
	}
	if err := c.client.DeleteCustomer(ctx, id); err != nil {
		return toolError(err), nil
	}
	return c.render(domain.Single("customer", map[string]any{"id": id, "deleted": true}), formatArg(req)), nil
}

func (c *Catalog) mergeCustomers(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	targetID, err := requireID(req, "targetId")
	if err != nil {
		return argError(err), nil
	}
	raw, err := req.RequireString("sourceIds")
	if err != nil {
		return argError(err), nil
	}
	sourceIDs, err := parseIDArray("sourceIds", raw)
	if err != nil {
		return argError(err), nil
	}
	customer, err := c.client.MergeCustomers(ctx, domain.CustomerMerge{TargetID: targetID, SourceIDs: sourceIDs})
	if err != nil {
		return toolError(err), nil
	}
	return c.render(domain.Single("customer", customer), formatArg(req)), nil
}
