package cmd

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"

	"github.com/gorgias-oss/gorgias-mcp-server/internal/domain"
)

func TestSettingsDefaults(t *testing.T) {
	assert.Equal(t, ":8080", viper.GetString("addr"))
	assert.Equal(t, 50000, intSetting("response_char_limit", 50000))
	assert.Equal(t, domain.DefaultPageSize, intSetting("default_page_size", domain.DefaultPageSize))
	assert.Equal(t, domain.MaxPageSize, intSetting("max_page_size", domain.MaxPageSize))
}

func TestSettingsEnvOverride(t *testing.T) {
	t.Setenv("GORGIAS_MCP_ADDR", ":9090")
	t.Setenv("GORGIAS_MCP_MAX_PAGE_SIZE", "250")

	assert.Equal(t, ":9090", viper.GetString("addr"))
	assert.Equal(t, 250, intSetting("max_page_size", domain.MaxPageSize))
}

func TestSettingsUnparseableEnvFallsBack(t *testing.T) {
	t.Setenv("GORGIAS_MCP_RESPONSE_CHAR_LIMIT", "not-a-number")

	assert.Equal(t, 50000, intSetting("response_char_limit", 50000))
}
