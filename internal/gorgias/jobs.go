package gorgias

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gorgias-oss/gorgias-mcp-server/internal/domain"
)

// ListJobs returns one page of background jobs, newest first.
func (c *Client) ListJobs(ctx context.Context, opts domain.ListOptions) (domain.Page[domain.Job], error) {
	return listPage(ctx, c, "/jobs", c.listQuery(opts), domain.MapJob)
}

// GetJob retrieves one job by id. Callers poll this to track progress.
func (c *Client) GetJob(ctx context.Context, id int64) (domain.Job, error) {
	var w domain.WireJob
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/jobs/%d", id), nil, nil, &w); err != nil {
		return domain.Job{}, err
	}
	return domain.MapJob(w), nil
}

// CreateJob enqueues a background job and returns it in its initial state.
func (c *Client) CreateJob(ctx context.Context, create domain.JobCreate) (domain.Job, error) {
	var w domain.WireJob
	if err := c.do(ctx, http.MethodPost, "/jobs", nil, create, &w); err != nil {
		return domain.Job{}, err
	}
	return domain.MapJob(w), nil
}

// CancelJob cancels a pending or running job. Finished jobs are unaffected.
func (c *Client) CancelJob(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/jobs/%d", id), nil, nil, nil)
}
