package application

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/gorgias-oss/gorgias-mcp-server/internal/domain"
)

func (c *Catalog) tagTools() []server.ServerTool {
	return []server.ServerTool{
		{
			Tool:    mcp.NewTool("list_tags", listToolOptions("List the tags of the account with their usage counts.")...),
			Handler: c.listTags,
		},
		{
			Tool: mcp.NewTool("get_tag",
				mcp.WithDescription("Retrieve one tag by id."),
				mcp.WithNumber("tagId", mcp.Required(), mcp.Description("Tag id.")),
				formatOption(),
			),
			Handler: c.getTag,
		},
		{
			Tool: mcp.NewTool("create_tag",
				mcp.WithDescription("Create a tag."),
				mcp.WithString("name", mcp.Required(), mcp.Description("Tag name, unique per account.")),
				mcp.WithString("description", mcp.Description("When agents should apply the tag.")),
				formatOption(),
			),
			Handler: c.createTag,
		},
		{
			Tool: mcp.NewTool("update_tag",
				mcp.WithDescription("Update a tag. Only the supplied fields change."),
				mcp.WithNumber("tagId", mcp.Required(), mcp.Description("Tag id.")),
				mcp.WithString("name", mcp.Description("New name.")),
				mcp.WithString("description", mcp.Description("New description.")),
				formatOption(),
			),
			Handler: c.updateTag,
		},
		{
			Tool: mcp.NewTool("delete_tag",
				mcp.WithDescription("Delete a tag and detach it from every ticket."),
				mcp.WithNumber("tagId", mcp.Required(), mcp.Description("Tag id.")),
			),
			Handler: c.deleteTag,
		},
		{
			Tool: mcp.NewTool("merge_tags",
				mcp.WithDescription("Merge duplicate tags into one. Tickets tagged with any source end up tagged with the target."),
				mcp.WithNumber("targetId", mcp.Required(), mcp.Description("Tag that survives the merge.")),
				mcp.WithString("sourceIds", mcp.Required(), mcp.Description("JSON array of tag ids to merge into the target, e.g. [4,9].")),
				formatOption(),
			),
			Handler: c.mergeTags,
		},
	}
}

func (c *Catalog) listTags(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	page, err := c.client.ListTags(ctx, listOptions(req))
	if err != nil {
		return toolError(err), nil
	}
	return c.render(domain.PageResult("tag", page), formatArg(req)), nil
}

func (c *Catalog) getTag(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := requireID(req, "tagId")
	if err != nil {
		return argError(err), nil
	}
	tag, err := c.client.GetTag(ctx, id)
	if err != nil {
		return toolError(err), nil
	}
	return c.render(domain.Single("tag", tag), formatArg(req)), nil
}

func (c *Catalog) createTag(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name, err := req.RequireString("name")
	if err != nil {
		return argError(err), nil
	}
	tag, err := c.client.CreateTag(ctx, domain.TagCreate{
		Name:        name,
		Description: req.GetString("description", ""),
	})
	if err != nil {
		return toolError(err), nil
	}
	return c.render(domain.Single("tag", tag), formatArg(req)), nil
}

func (c *Catalog) updateTag(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := requireID(req, "tagId")
	if err != nil {
		return argError(err), nil
	}
	update := domain.TagUpdate{
		Name:        stringArg(req, "name"),
		Description: stringArg(req, "description"),
	}
	tag, err := c.client.UpdateTag(ctx, id, update)
	if err != nil {
		return toolError(err), nil
	}
	return c.render(domain.Single("tag", tag), formatArg(req)), nil
}

func (c *Catalog) deleteTag(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := requireID(req, "tagId")
	if err != nil {
		return argError(err), nil
	}
	if err := c.client.DeleteTag(ctx, id); err != nil {
		return toolError(err), nil
	}
	return c.render(domain.Single("tag", map[string]any{"id": id, "deleted": true}), formatArg(req)), nil
}

func (c *Catalog) mergeTags(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
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
	tag, err := c.client.MergeTags(ctx, domain.TagMerge{TargetID: targetID, SourceIDs: sourceIDs})
	if err != nil {
		return toolError(err), nil
	}
	return c.render(domain.Single("tag", tag), formatArg(req)), nil
}
