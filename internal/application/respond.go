package application

import (
	"errors"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/gorgias-oss/gorgias-mcp-server/internal/domain"
)

// render wraps a successful result in a text envelope, honoring the optional
// display format.
func (c *Catalog) render(r domain.Result, format domain.Format) *mcp.CallToolResult {
	return mcp.NewToolResultText(c.formatter.Render(r, format))
}

// toolError converts any handler failure into an isError text envelope. No
// failure ever escapes a handler as a Go error; the protocol runtime only
// sees well-formed results.
func toolError(err error) *mcp.CallToolResult {
	var apiErr *domain.APIError
	if errors.As(err, &apiErr) {
		msg := apiErr.Error()
		if apiErr.Retryable() {
			msg += " (retryable)"
		}
		return mcp.NewToolResultError(msg)
	}
	return mcp.NewToolResultError(err.Error())
}

// argError reports a local argument failure before any network call.
func argError(err error) *mcp.CallToolResult {
	return mcp.NewToolResultError(err.Error())
}
