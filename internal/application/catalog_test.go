package application

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gorgias-oss/gorgias-mcp-server/internal/domain"
)

func TestAssembleCatalogDefinitions(t *testing.T) {
	tools := AssembleCatalog(nil, domain.Formatter{})

	seen := map[string]bool{}
	for _, tool := range tools {
		require.NotEmpty(t, tool.Tool.Name)
		require.NotEmpty(t, tool.Tool.Description, "tool %s has no description", tool.Tool.Name)
		require.NotNil(t, tool.Handler, "tool %s has no handler", tool.Tool.Name)
		assert.False(t, seen[tool.Tool.Name], "duplicate tool name %s", tool.Tool.Name)
		seen[tool.Tool.Name] = true
	}
	assert.GreaterOrEqual(t, len(tools), 60)

	// One representative per entity group.
	for _, name := range []string{
		"list_tickets", "list_ticket_messages", "merge_customers", "create_user",
		"update_team", "merge_tags", "create_macro", "create_rule",
		"list_integrations", "list_view_items", "get_satisfaction_survey",
		"create_custom_field", "list_events", "cancel_job", "update_widget",
		"get_statistics",
	} {
		assert.True(t, seen[name], "missing tool %s", name)
	}
}

func TestCatalogsAreIndependent(t *testing.T) {
	a := AssembleCatalog(nil, domain.Formatter{})
	b := AssembleCatalog(nil, domain.Formatter{})

	require.Equal(t, len(a), len(b))
	// Appending to one catalog must not leak into another request's catalog.
	a = append(a, a[0])
	assert.Equal(t, len(a)-1, len(b))
}
