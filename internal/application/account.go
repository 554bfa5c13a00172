package application

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/gorgias-oss/gorgias-mcp-server/internal/domain"
)

func (c *Catalog) accountTools() []server.ServerTool {
	return []server.ServerTool{
		{
			Tool: mcp.NewTool("get_account",
				mcp.WithDescription("Retrieve the account the request credentials belong to."),
				formatOption(),
			),
			Handler: c.getAccount,
		},
		{
			Tool: mcp.NewTool("update_account",
				mcp.WithDescription("Update account settings. Only the supplied fields change."),
				mcp.WithString("name", mcp.Description("New account name.")),
				mcp.WithString("timezone", mcp.Description("New IANA timezone.")),
				mcp.WithString("defaultLanguage", mcp.Description("New default language code.")),
				formatOption(),
			),
			Handler: c.updateAccount,
		},
		{
			Tool: mcp.NewTool("get_statistics",
				mcp.WithDescription("Compute a named support metric over a datetime range."),
				mcp.WithString("name", mcp.Required(), mcp.Description("Metric to compute."), mcp.Enum(domain.StatisticNames...)),
				mcp.WithString("startDatetime", mcp.Required(), mcp.Description("Window start, RFC3339.")),
				mcp.WithString("endDatetime", mcp.Required(), mcp.Description("Window end, RFC3339.")),
				formatOption(),
			),
			Handler: c.getStatistics,
		},
	}
}

func (c *Catalog) getAccount(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	account, err := c.client.GetAccount(ctx)
	if err != nil {
		return toolError(err), nil
	}
	return c.render(domain.Single("account", account), formatArg(req)), nil
}

func (c *Catalog) updateAccount(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	update := domain.AccountUpdate{
		Name:            stringArg(req, "name"),
		Timezone:        stringArg(req, "timezone"),
		DefaultLanguage: stringArg(req, "defaultLanguage"),
	}
	account, err := c.client.UpdateAccount(ctx, update)
	if err != nil {
		return toolError(err), nil
	}
	return c.render(domain.Single("account", account), formatArg(req)), nil
}

func (c *Catalog) getStatistics(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name, err := req.RequireString("name")
	if err != nil {
		return argError(err), nil
	}
	if err := validateEnum("name", name, domain.StatisticNames); err != nil {
		return argError(err), nil
	}
	start, err := req.RequireString("startDatetime")
	if err != nil {
		return argError(err), nil
	}
	end, err := req.RequireString("endDatetime")
	if err != nil {
		return argError(err), nil
	}
	stat, err := c.client.GetStatistic(ctx, name, domain.StatsQuery{
		StartDatetime: start,
		EndDatetime:   end,
	})
	if err != nil {
		return toolError(err), nil
	}
	return c.render(domain.Single("statistic", stat), formatArg(req)), nil
}
