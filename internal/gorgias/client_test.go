package gorgias

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gorgias-oss/gorgias-mcp-server/internal/domain"
)

func testCredentials() domain.Credentials {
	return domain.Credentials{Domain: "acme", Email: "agent@acme.com", APIKey: "secret"}
}

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(testCredentials(), Config{BaseURL: srv.URL})
}

func TestRequestCarriesBasicAuthAndJSONHeaders(t *testing.T) {
	var captured *http.Request
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		captured = r
		_, _ = w.Write([]byte(`{"data":[],"meta":{}}`))
	})

	_, err := client.ListTickets(context.Background(), TicketListOptions{})
	require.NoError(t, err)

	user, pass, ok := captured.BasicAuth()
	require.True(t, ok)
	assert.Equal(t, "agent@acme.com", user)
	assert.Equal(t, "secret", pass)
	assert.Equal(t, "application/json", captured.Header.Get("Content-Type"))
	assert.Equal(t, "application/json", captured.Header.Get("Accept"))
}

func TestListLimitClamping(t *testing.T) {
	tests := []struct {
		name      string
		requested int
		wantLimit string
	}{
		{"oversized request is clamped to max", 500, "100"},
		{"zero falls back to default", 0, "20"},
		{"in-range passes through", 50, "50"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotLimit string
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				gotLimit = r.URL.Query().Get("limit")
				_, _ = w.Write([]byte(`{"data":[],"meta":{}}`))
			})

			_, err := client.ListTickets(context.Background(), TicketListOptions{
				ListOptions: domain.ListOptions{Limit: tt.requested},
			})
			require.NoError(t, err)
			assert.Equal(t, tt.wantLimit, gotLimit)
		})
	}
}

func TestListForwardsCursorAndFilters(t *testing.T) {
	var query map[string][]string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		query = r.URL.Query()
		_, _ = w.Write([]byte(`{"data":[],"meta":{}}`))
	})

	_, err := client.ListTickets(context.Background(), TicketListOptions{
		ListOptions: domain.ListOptions{Cursor: "tok-2", OrderBy: "created_datetime:desc"},
		CustomerID:  7,
		Status:      "open",
	})
	require.NoError(t, err)

	assert.Equal(t, "tok-2", query["cursor"][0])
	assert.Equal(t, "created_datetime:desc", query["order_by"][0])
	assert.Equal(t, "7", query["customer_id"][0])
	assert.Equal(t, "open", query["status"][0])
}

func TestEmptyPage(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"data":[],"meta":{}}`))
	})

	page, err := client.ListTickets(context.Background(), TicketListOptions{})
	require.NoError(t, err)
	assert.NotNil(t, page.Items)
	assert.Empty(t, page.Items)
	assert.Empty(t, page.NextCursor)
}

func TestPageMapsWireRecords(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{
			"data": [{"id": 42, "status": "open", "channel": "email", "created_datetime": "2024-03-05T10:00:00Z"}],
			"meta": {"next_cursor": "tok-2"}
		}`))
	})

	page, err := client.ListTickets(context.Background(), TicketListOptions{})
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	assert.Equal(t, int64(42), page.Items[0].ID)
	assert.Equal(t, "2024-03-05T10:00:00Z", page.Items[0].CreatedDatetime)
	assert.Equal(t, "tok-2", page.NextCursor)
}

func TestRateLimitClassification(t *testing.T) {
	tests := []struct {
		name       string
		retryAfter string
		want       time.Duration
	}{
		{"header honored", "30", 30 * time.Second},
		{"absent header uses default", "", 60 * time.Second},
		{"unparseable header uses default", "soon", 60 * time.Second},
		{"oversized header is capped", "9999", 5 * time.Minute},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
				if tt.retryAfter != "" {
					w.Header().Set("Retry-After", tt.retryAfter)
				}
				w.WriteHeader(http.StatusTooManyRequests)
			})

			_, err := client.GetTicket(context.Background(), 1)
			var apiErr *domain.APIError
			require.ErrorAs(t, err, &apiErr)
			assert.Equal(t, domain.ErrKindRateLimit, apiErr.Kind)
			assert.Equal(t, tt.want, apiErr.RetryAfter)
			assert.True(t, apiErr.Retryable())
		})
	}
}

func TestAuthRejection(t *testing.T) {
	for _, status := range []int{http.StatusUnauthorized, http.StatusForbidden} {
		client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(status)
		})

		_, err := client.GetTicket(context.Background(), 1)
		var apiErr *domain.APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, domain.ErrKindAuth, apiErr.Kind)
		assert.Equal(t, status, apiErr.StatusCode)
		assert.False(t, apiErr.Retryable())
		assert.Contains(t, apiErr.Error(), "Authentication failed")
	}
}

func TestNotFound(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"error": "no such ticket"}`))
	})

	_, err := client.GetTicket(context.Background(), 999)
	var apiErr *domain.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, domain.ErrKindNotFound, apiErr.Kind)
	assert.Equal(t, "Resource not found: no such ticket", apiErr.Error())
}

func TestAPIErrorBodyMessage(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"message": "boom"}`))
	})

	_, err := client.GetTicket(context.Background(), 1)
	var apiErr *domain.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, domain.ErrKindAPI, apiErr.Kind)
	assert.Equal(t, "boom", apiErr.Message)
}

func TestAPIErrorUnparseableBody(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("<html>bad gateway</html>"))
	})

	_, err := client.GetTicket(context.Background(), 1)
	var apiErr *domain.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "API error: 502", apiErr.Message)
}

func TestDeleteNoContent(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/tickets/42", r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	})

	assert.NoError(t, client.DeleteTicket(context.Background(), 42))
}

func TestCreateTicketSendsSnakeCaseBody(t *testing.T) {
	var body map[string]any
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		data, _ := io.ReadAll(r.Body)
		require.NoError(t, json.Unmarshal(data, &body))
		_, _ = w.Write([]byte(`{"id": 1, "status": "open", "channel": "email"}`))
	})

	_, err := client.CreateTicket(context.Background(), domain.TicketCreate{
		Channel: "email",
		Subject: "Hello",
		Messages: []domain.MessageCreate{{
			Channel:  "email",
			BodyText: "first message",
		}},
	})
	require.NoError(t, err)

	assert.Equal(t, "email", body["channel"])
	messages, ok := body["messages"].([]any)
	require.True(t, ok)
	first := messages[0].(map[string]any)
	assert.Equal(t, "first message", first["body_text"])
	_, hasStatus := body["status"]
	assert.False(t, hasStatus, "empty optional fields are omitted")
}

func TestUpdateTicketSendsOnlySetFields(t *testing.T) {
	var body map[string]any
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		data, _ := io.ReadAll(r.Body)
		require.NoError(t, json.Unmarshal(data, &body))
		_, _ = w.Write([]byte(`{"id": 42, "status": "closed", "channel": "email"}`))
	})

	status := "closed"
	_, err := client.UpdateTicket(context.Background(), 42, domain.TicketUpdate{Status: &status})
	require.NoError(t, err)

	assert.Equal(t, map[string]any{"status": "closed"}, body)
}

func TestGetStatisticPostsWindow(t *testing.T) {
	var body map[string]any
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/stats/total-tickets-created", r.URL.Path)
		data, _ := io.ReadAll(r.Body)
		require.NoError(t, json.Unmarshal(data, &body))
		_, _ = w.Write([]byte(`{"name": "total-tickets-created", "data": {"value": 12}}`))
	})

	stat, err := client.GetStatistic(context.Background(), "total-tickets-created", domain.StatsQuery{
		StartDatetime: "2024-03-01T00:00:00Z",
		EndDatetime:   "2024-03-31T00:00:00Z",
	})
	require.NoError(t, err)

	assert.Equal(t, "2024-03-01T00:00:00Z", body["start_datetime"])
	assert.Equal(t, "total-tickets-created", stat.Name)
	assert.Equal(t, float64(12), stat.Data["value"])
}

func TestBaseURLDerivedFromDomain(t *testing.T) {
	client := NewClient(testCredentials(), Config{})
	assert.Equal(t, "https://acme.gorgias.com/api", client.baseURL)
}
