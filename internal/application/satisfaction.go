package application

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/gorgias-oss/gorgias-mcp-server/internal/domain"
)

func (c *Catalog) satisfactionTools() []server.ServerTool {
	return []server.ServerTool{
		{
			Tool:    mcp.NewTool("list_satisfaction_surveys", listToolOptions("List customer satisfaction surveys with their scores.")...),
			Handler: c.listSatisfactionSurveys,
		},
		{
			Tool: mcp.NewTool("get_satisfaction_survey",
				mcp.WithDescription("Retrieve one satisfaction survey by id."),
				mcp.WithNumber("surveyId", mcp.Required(), mcp.Description("Survey id.")),
				formatOption(),
			),
			Handler: c.getSatisfactionSurvey,
		},
	}
}

func (c *Catalog) listSatisfactionSurveys(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	page, err := c.client.ListSatisfactionSurveys(ctx, listOptions(req))
	if err != nil {
		return toolError(err), nil
	}
	return c.render(domain.PageResult("survey", page), formatArg(req)), nil
}

func (c *Catalog) getSatisfactionSurvey(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := requireID(req, "surveyId")
	if err != nil {
		return argError(err), nil
	}
	survey, err := c.client.GetSatisfactionSurvey(ctx, id)
	if err != nil {
		return toolError(err), nil
	}
	return c.render(domain.Single("survey", survey), formatArg(req)), nil
}
