package application

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gorgias-oss/gorgias-mcp-server/internal/domain"
	"github.com/gorgias-oss/gorgias-mcp-server/internal/gorgias"
)

func newTestCatalog(t *testing.T, handler http.HandlerFunc) *Catalog {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	client := gorgias.NewClient(
		domain.Credentials{Domain: "acme", Email: "agent@acme.com", APIKey: "secret"},
		gorgias.Config{BaseURL: srv.URL},
	)
	return &Catalog{client: client, formatter: domain.Formatter{CharLimit: 50000}}
}

func callRequest(name string, args map[string]any) mcp.CallToolRequest {
	req := mcp.CallToolRequest{}
	req.Params.Name = name
	req.Params.Arguments = args
	return req
}

func resultText(t *testing.T, res *mcp.CallToolResult) string {
	t.Helper()
	require.NotEmpty(t, res.Content)
	tc, ok := res.Content[0].(mcp.TextContent)
	require.True(t, ok, "tool results are text envelopes")
	return tc.Text
}

// Rejected upstream credentials surface as an isError envelope, after exactly
// one upstream call and with no retry.
func TestListTicketsUpstreamAuthFailure(t *testing.T) {
	var calls atomic.Int64
	c := newTestCatalog(t, func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusForbidden)
	})

	res, err := c.listTickets(context.Background(), callRequest("list_tickets", nil))
	require.NoError(t, err, "upstream failures never escape as Go errors")
	assert.True(t, res.IsError)
	assert.Contains(t, resultText(t, res), "Authentication failed")
	assert.Equal(t, int64(1), calls.Load())
}

// Malformed JSON text arguments fail locally; the upstream is never touched.
func TestCreateMacroRejectsMalformedActions(t *testing.T) {
	var calls atomic.Int64
	c := newTestCatalog(t, func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		_, _ = w.Write([]byte(`{"id": 1, "name": "m"}`))
	})

	res, err := c.createMacro(context.Background(), callRequest("create_macro", map[string]any{
		"name":        "Close and tag",
		"actionsJson": "not json",
	}))
	require.NoError(t, err)
	assert.True(t, res.IsError)
	assert.Contains(t, resultText(t, res), "actionsJson")
	assert.Equal(t, int64(0), calls.Load(), "no network call on a local parse failure")
}

func TestCreateMacroForwardsParsedActions(t *testing.T) {
	var body map[string]any
	c := newTestCatalog(t, func(w http.ResponseWriter, r *http.Request) {
		data, _ := io.ReadAll(r.Body)
		require.NoError(t, json.Unmarshal(data, &body))
		_, _ = w.Write([]byte(`{"id": 1, "name": "Close and tag"}`))
	})

	res, err := c.createMacro(context.Background(), callRequest("create_macro", map[string]any{
		"name":        "Close and tag",
		"actionsJson": `[{"type":"add-tags","tags":["vip"]}]`,
	}))
	require.NoError(t, err)
	assert.False(t, res.IsError)

	actions, ok := body["actions"].([]any)
	require.True(t, ok)
	first := actions[0].(map[string]any)
	assert.Equal(t, "add-tags", first["type"])
}

func TestRateLimitEnvelopeMarkedRetryable(t *testing.T) {
	c := newTestCatalog(t, func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Retry-After", "30")
		w.WriteHeader(http.StatusTooManyRequests)
	})

	res, err := c.getTicket(context.Background(), callRequest("get_ticket", map[string]any{"ticketId": 42}))
	require.NoError(t, err)
	assert.True(t, res.IsError)
	text := resultText(t, res)
	assert.Contains(t, text, "Rate limit exceeded")
	assert.Contains(t, text, "(retryable)")
}

func TestGetTicketRequiresID(t *testing.T) {
	var calls atomic.Int64
	c := newTestCatalog(t, func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
	})

	res, err := c.getTicket(context.Background(), callRequest("get_ticket", nil))
	require.NoError(t, err)
	assert.True(t, res.IsError)
	assert.Contains(t, resultText(t, res), "ticketId")
	assert.Equal(t, int64(0), calls.Load())
}

// Zero, negative, and fractional ids fail locally instead of being truncated
// into an upstream path.
func TestGetTicketRejectsBadIDs(t *testing.T) {
	var calls atomic.Int64
	c := newTestCatalog(t, func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
	})

	for _, id := range []any{-5, 0, 42.5} {
		res, err := c.getTicket(context.Background(), callRequest("get_ticket", map[string]any{"ticketId": id}))
		require.NoError(t, err)
		assert.True(t, res.IsError, "id %v was accepted", id)
		assert.Contains(t, resultText(t, res), "ticketId")
	}
	assert.Equal(t, int64(0), calls.Load())
}

func TestListTicketsRejectsUnknownStatus(t *testing.T) {
	var calls atomic.Int64
	c := newTestCatalog(t, func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
	})

	res, err := c.listTickets(context.Background(), callRequest("list_tickets", map[string]any{"status": "pending"}))
	require.NoError(t, err)
	assert.True(t, res.IsError)
	assert.Contains(t, resultText(t, res), "status")
	assert.Equal(t, int64(0), calls.Load())
}

func TestUpdateTicketSendsOnlySuppliedFields(t *testing.T) {
	var body map[string]any
	c := newTestCatalog(t, func(w http.ResponseWriter, r *http.Request) {
		data, _ := io.ReadAll(r.Body)
		require.NoError(t, json.Unmarshal(data, &body))
		_, _ = w.Write([]byte(`{"id": 42, "status": "closed", "channel": "email"}`))
	})

	res, err := c.updateTicket(context.Background(), callRequest("update_ticket", map[string]any{
		"ticketId": 42,
		"status":   "closed",
	}))
	require.NoError(t, err)
	assert.False(t, res.IsError)
	assert.Equal(t, map[string]any{"status": "closed"}, body)
}

func TestListTicketsTableFormat(t *testing.T) {
	c := newTestCatalog(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{
			"data": [{"id": 42, "subject": "Hello", "status": "open", "channel": "email"}],
			"meta": {"next_cursor": ""}
		}`))
	})

	res, err := c.listTickets(context.Background(), callRequest("list_tickets", map[string]any{"format": "table"}))
	require.NoError(t, err)
	assert.False(t, res.IsError)
	text := resultText(t, res)
	assert.Contains(t, text, "| id | subject |")
	assert.Contains(t, text, "| Hello |")
}

func TestMergeCustomersParsesSourceIDs(t *testing.T) {
	var body map[string]any
	c := newTestCatalog(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/customers/merge", r.URL.Path)
		data, _ := io.ReadAll(r.Body)
		require.NoError(t, json.Unmarshal(data, &body))
		_, _ = w.Write([]byte(`{"id": 7, "email": "jo@example.com"}`))
	})

	res, err := c.mergeCustomers(context.Background(), callRequest("merge_customers", map[string]any{
		"targetId":  7,
		"sourceIds": "[12,13]",
	}))
	require.NoError(t, err)
	assert.False(t, res.IsError)
	assert.Equal(t, float64(7), body["target_id"])
	assert.Equal(t, []any{float64(12), float64(13)}, body["source_ids"])
}

func TestCreateRuleRejectsNonObjectCode(t *testing.T) {
	var calls atomic.Int64
	c := newTestCatalog(t, func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
	})

	res, err := c.createRule(context.Background(), callRequest("create_rule", map[string]any{
		"name":     "Auto close",
		"codeJson": `["not","an","object"]`,
	}))
	require.NoError(t, err)
	assert.True(t, res.IsError)
	assert.Contains(t, resultText(t, res), "codeJson")
	assert.Equal(t, int64(0), calls.Load())
}
