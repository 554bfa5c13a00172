package application

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/gorgias-oss/gorgias-mcp-server/internal/domain"
	"github.com/gorgias-oss/gorgias-mcp-server/internal/gorgias"
)

func (c *Catalog) integrationTools() []server.ServerTool {
	return []server.ServerTool{
		{
			Tool: mcp.NewTool("list_integrations", append(listToolOptions("List the integrations connected to the account."),
				mcp.WithString("type", mcp.Description("Only integrations of this kind."), mcp.Enum(domain.IntegrationTypes...)),
			)...),
			Handler: c.listIntegrations,
		},
		{
			Tool: mcp.NewTool("get_integration",
				mcp.WithDescription("Retrieve one integration by id."),
				mcp.WithNumber("integrationId", mcp.Required(), mcp.Description("Integration id.")),
				formatOption(),
			),
			Handler: c.getIntegration,
		},
		{
			Tool: mcp.NewTool("create_integration",
				mcp.WithDescription("Connect a new integration. HTTP integrations take a target URL, method and headers."),
				mcp.WithString("name", mcp.Required(), mcp.Description("Integration name.")),
				mcp.WithString("type", mcp.Required(), mcp.Description("Integration kind."), mcp.Enum(domain.IntegrationTypes...)),
				mcp.WithString("description", mcp.Description("What the integration is for.")),
				mcp.WithString("url", mcp.Description("Target URL for http integrations.")),
				mcp.WithString("method", mcp.Description("HTTP method for http integrations, e.g. POST.")),
				mcp.WithString("headersJson", mcp.Description("JSON object of outbound HTTP headers, e.g. {\"Authorization\":\"Bearer x\"}.")),
				formatOption(),
			),
			Handler: c.createIntegration,
		},
		{
			Tool: mcp.NewTool("update_integration",
				mcp.WithDescription("Update an integration. Only the supplied fields change."),
				mcp.WithNumber("integrationId", mcp.Required(), mcp.Description("Integration id.")),
				mcp.WithString("name", mcp.Description("New name.")),
				mcp.WithString("description", mcp.Description("New description.")),
				mcp.WithString("url", mcp.Description("New target URL for http integrations.")),
				mcp.WithString("method", mcp.Description("New HTTP method.")),
				mcp.WithString("headersJson", mcp.Description("Replacement JSON object of outbound headers.")),
				formatOption(),
			),
			Handler: c.updateIntegration,
		},
		{
			Tool: mcp.NewTool("delete_integration",
				mcp.WithDescription("Disconnect and delete an integration."),
				mcp.WithNumber("integrationId", mcp.Required(), mcp.Description("Integration id.")),
			),
			Handler: c.deleteIntegration,
		},
	}
}

func (c *Catalog) listIntegrations(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	opts := gorgias.IntegrationListOptions{
		ListOptions: listOptions(req),
		Type:        req.GetString("type", ""),
	}
	if err := validateEnum("type", opts.Type, domain.IntegrationTypes); err != nil {
		return argError(err), nil
	}
	page, err := c.client.ListIntegrations(ctx, opts)
	if err != nil {
		return toolError(err), nil
	}
	return c.render(domain.PageResult("integration", page), formatArg(req)), nil
}

func (c *Catalog) getIntegration(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := requireID(req, "integrationId")
	if err != nil {
		return argError(err), nil
	}
	integration, err := c.client.GetIntegration(ctx, id)
	if err != nil {
		return toolError(err), nil
	}
	return c.render(domain.Single("integration", integration), formatArg(req)), nil
}

func (c *Catalog) createIntegration(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name, err := req.RequireString("name")
	if err != nil {
		return argError(err), nil
	}
	kind, err := req.RequireString("type")
	if err != nil {
		return argError(err), nil
	}
	if err := validateEnum("type", kind, domain.IntegrationTypes); err != nil {
		return argError(err), nil
	}
	create := domain.IntegrationCreate{
		Name:        name,
		Type:        kind,
		Description: req.GetString("description", ""),
	}
	httpCfg, err := integrationHTTPArgs(req)
	if err != nil {
		return argError(err), nil
	}
	create.HTTP = httpCfg
	integration, err := c.client.CreateIntegration(ctx, create)
	if err != nil {
		return toolError(err), nil
	}
	return c.render(domain.Single("integration", integration), formatArg(req)), nil
}

func (c *Catalog) updateIntegration(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := requireID(req, "integrationId")
	if err != nil {
		return argError(err), nil
	}
	update := domain.IntegrationUpdate{
		Name:        stringArg(req, "name"),
		Description: stringArg(req, "description"),
	}
	httpCfg, err := integrationHTTPArgs(req)
	if err != nil {
		return argError(err), nil
	}
	update.HTTP = httpCfg
	integration, err := c.client.UpdateIntegration(ctx, id, update)
	if err != nil {
		return toolError(err), nil
	}
	return c.render(domain.Single("integration", integration), formatArg(req)), nil
}

func (c *Catalog) deleteIntegration(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := requireID(req, "integrationId")
	if err != nil {
		return argError(err), nil
	}
	if err := c.client.DeleteIntegration(ctx, id); err != nil {
		return toolError(err), nil
	}
	return c.render(domain.Single("integration", map[string]any{"id": id, "deleted": true}), formatArg(req)), nil
}

// integrationHTTPArgs builds the http sub-config when any of its arguments
// was supplied. The headers argument is JSON text and must parse before the
// request goes anywhere.
func integrationHTTPArgs(req mcp.CallToolRequest) (*domain.WireIntegrationHTTP, error) {
	url := req.GetString("url", "")
	method := req.GetString("method", "")
	rawHeaders := req.GetString("headersJson", "")
	if url == "" && method == "" && rawHeaders == "" {
		return nil, nil
	}
	cfg := &domain.WireIntegrationHTTP{URL: url, Method: method}
	if rawHeaders != "" {
		headers, err := parseJSONStringMap("headersJson", rawHeaders)
		if err != nil {
			return nil, err
		}
		cfg.Headers = headers
	}
	return cfg, nil
}
