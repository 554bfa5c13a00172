// Package application assembles the tool catalog and routes inbound HTTP
// requests. Every catalog is built fresh for one request and bound to that
// request's tenant client; nothing here is shared across requests.
package application

import (
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/gorgias-oss/gorgias-mcp-server/internal/domain"
	"github.com/gorgias-oss/gorgias-mcp-server/internal/gorgias"
)

// Catalog binds tool handlers to one tenant's upstream client and the
// process formatter settings.
type Catalog struct {
	client    *gorgias.Client
	formatter domain.Formatter
}

// AssembleCatalog composes the full tool set against the given client. Pure
// composition; callers register the result on a fresh protocol server. A nil
// client is acceptable when only the definitions are needed.
func AssembleCatalog(client *gorgias.Client, formatter domain.Formatter) []server.ServerTool {
	c := &Catalog{client: client, formatter: formatter}

	var tools []server.ServerTool
	tools = append(tools, c.ticketTools()...)
	tools = append(tools, c.messageTools()...)
	tools = append(tools, c.customerTools()...)
	tools = append(tools, c.userTools()...)
	tools = append(tools, c.teamTools()...)
	tools = append(tools, c.tagTools()...)
	tools = append(tools, c.macroTools()...)
	tools = append(tools, c.ruleTools()...)
	tools = append(tools, c.integrationTools()...)
	tools = append(tools, c.viewTools()...)
	tools = append(tools, c.satisfactionTools()...)
	tools = append(tools, c.customFieldTools()...)
	tools = append(tools, c.eventTools()...)
	tools = append(tools, c.jobTools()...)
	tools = append(tools, c.widgetTools()...)
	tools = append(tools, c.accountTools()...)
	return tools
}

// ToolNames enumerates every tool name the catalog exposes, for the service
// info endpoint. Definitions only; no client is involved.
func ToolNames() []string {
	tools := AssembleCatalog(nil, domain.Formatter{})
	names := make([]string, 0, len(tools))
	for _, t := range tools {
		names = append(names, t.Tool.Name)
	}
	return names
}

// listToolOptions is the shared option set of every list tool: description,
// pagination arguments, and the display format flag.
func listToolOptions(desc string) []mcp.ToolOption {
	return []mcp.ToolOption{
		mcp.WithDescription(desc),
		mcp.WithNumber("limit", mcp.Description("Page size, 1-100. Defaults to 20.")),
		mcp.WithString("cursor", mcp.Description("Opaque cursor from a previous page's nextCursor.")),
		mcp.WithString("orderBy", mcp.Description("Sort expression, e.g. created_datetime:desc.")),
		formatOption(),
	}
}

// formatOption declares the optional display-format argument of read tools.
func formatOption() mcp.ToolOption {
	return mcp.WithString("format",
		mcp.Description("Response rendering: structured json (default) or a compact markdown table."),
		mcp.Enum(domain.Formats...),
	)
}
