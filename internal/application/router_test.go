package application

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gorgias-oss/gorgias-mcp-server/internal/domain"
)

func newTestRouter() *Router {
	return NewRouter(Config{
		ServerName:      "gorgias-mcp-server",
		Version:         "1.0.0",
		CharLimit:       50000,
		DefaultPageSize: 20,
		MaxPageSize:     100,
	}, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestHealth(t *testing.T) {
	rec := httptest.NewRecorder()
	newTestRouter().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "ok", body["status"])
	assert.Equal(t, "gorgias-mcp-server", body["server"])
}

// A request missing any credential header is rejected before any tool runs,
// with the three required header names in the body.
func TestMCPMissingCredentials(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/mcp", nil)
	req.Header.Set(domain.HeaderDomain, "acme")
	req.Header.Set(domain.HeaderEmail, "agent@acme.com")
	// API key header deliberately absent.

	rec := httptest.NewRecorder()
	newTestRouter().ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	var body struct {
		Error           string   `json:"error"`
		Message         string   `json:"message"`
		RequiredHeaders []string `json:"required_headers"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "unauthorized", body.Error)
	assert.Contains(t, body.Message, domain.HeaderAPIKey)
	assert.Equal(t, []string{domain.HeaderDomain, domain.HeaderEmail, domain.HeaderAPIKey}, body.RequiredHeaders)
}

func TestMCPAllCredentialsMissing(t *testing.T) {
	rec := httptest.NewRecorder()
	newTestRouter().ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/mcp", nil))

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Len(t, body["required_headers"], 3)
}

func TestSSEUnsupported(t *testing.T) {
	rec := httptest.NewRecorder()
	newTestRouter().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/sse", nil))

	require.Equal(t, http.StatusNotImplemented, rec.Code)
	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Contains(t, body["message"], "/mcp")
}

func TestInfoListsToolsAndHeaders(t *testing.T) {
	rec := httptest.NewRecorder()
	newTestRouter().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var body struct {
		Name            string            `json:"name"`
		Version         string            `json:"version"`
		Endpoints       map[string]string `json:"endpoints"`
		RequiredHeaders []string          `json:"required_headers"`
		Tools           []string          `json:"tools"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "gorgias-mcp-server", body.Name)
	assert.Equal(t, "/mcp", body.Endpoints["mcp"])
	assert.Len(t, body.RequiredHeaders, 3)
	assert.Contains(t, body.Tools, "list_tickets")
	assert.Contains(t, body.Tools, "create_macro")
	assert.Contains(t, body.Tools, "get_statistics")
	assert.GreaterOrEqual(t, len(body.Tools), 60)
}
