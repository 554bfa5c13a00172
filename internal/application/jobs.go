package application

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/gorgias-oss/gorgias-mcp-server/internal/domain"
)

func (c *Catalog) jobTools() []server.ServerTool {
	return []server.ServerTool{
		{
			Tool:    mcp.NewTool("list_jobs", listToolOptions("List background jobs, newest first.")...),
			Handler: c.listJobs,
		},
		{
			Tool: mcp.NewTool("get_job",
				mcp.WithDescription("Retrieve one background job by id. Poll this to track progress."),
				mcp.WithNumber("jobId", mcp.Required(), mcp.Description("Job id.")),
				formatOption(),
			),
			Handler: c.getJob,
		},
		{
			Tool: mcp.NewTool("create_job",
				mcp.WithDescription("Enqueue a background job, e.g. a bulk ticket export."),
				mcp.WithString("type", mcp.Required(), mcp.Description("Job type name.")),
				mcp.WithString("paramsJson", mcp.Description("JSON object of type-specific job parameters.")),
				formatOption(),
			),
			Handler: c.createJob,
		},
		{
			Tool: mcp.NewTool("cancel_job",
				mcp.WithDescription("Cancel a pending or running job. Finished jobs are unaffected."),
				mcp.WithNumber("jobId", mcp.Required(), mcp.Description("Job id.")),
			),
			Handler: c.cancelJob,
		},
	}
}

func (c *Catalog) listJobs(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	page, err := c.client.ListJobs(ctx, listOptions(req))
	if err != nil {
		return toolError(err), nil
	}
	return c.render(domain.PageResult("job", page), formatArg(req)), nil
}

func (c *Catalog) getJob(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := requireID(req, "jobId")
	if err != nil {
		return argError(err), nil
	}
	job, err := c.client.GetJob(ctx, id)
	if err != nil {
		return toolError(err), nil
	}
	return c.render(domain.Single("job", job), formatArg(req)), nil
}

func (c *Catalog) createJob(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	jobType, err := req.RequireString("type")
	if err != nil {
		return argError(err), nil
	}
	create := domain.JobCreate{Type: jobType}
	if raw := req.GetString("paramsJson", ""); raw != "" {
		params, err := parseJSONObject("paramsJson", raw)
		if err != nil {
			return argError(err), nil
		}
		create.Params = params
	}
	job, err := c.client.CreateJob(ctx, create)
	if err != nil {
		return toolError(err), nil
	}
	return c.render(domain.Single("job", job), formatArg(req)), nil
}

func (c *Catalog) cancelJob(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := requireID(req, "jobId")
	if err != nil {
		return argError(err), nil
	}
	if err := c.client.CancelJob(ctx, id); err != nil {
		return toolError(err), nil
	}
	return c.render(domain.Single("job", map[string]any{"id": id, "cancelled": true}), formatArg(req)), nil
}
