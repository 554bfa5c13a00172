package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapTicket(t *testing.T) {
	raw := `{
		"id": 42,
		"external_id": "ord-9",
		"subject": "Where is my order?",
		"status": "open",
		"priority": "high",
		"channel": "email",
		"customer": {"id": 7, "email": "jo@example.com", "name": "Jo"},
		"assignee_user": {"id": 3, "email": "agent@acme.com", "type": "user"},
		"assignee_team": {"id": 2, "name": "Support"},
		"tags": [{"id": 1, "name": "vip"}],
		"is_unread": true,
		"created_datetime": "2024-03-05T10:00:00Z",
		"last_message_datetime": "2024-03-06T08:30:00Z"
	}`
	var w WireTicket
	require.NoError(t, json.Unmarshal([]byte(raw), &w))

	ticket := MapTicket(w)

	assert.Equal(t, int64(42), ticket.ID)
	assert.Equal(t, "ord-9", ticket.ExternalID)
	assert.Equal(t, "open", ticket.Status)
	require.NotNil(t, ticket.Customer)
	assert.Equal(t, "jo@example.com", ticket.Customer.Email)
	require.NotNil(t, ticket.AssigneeUser)
	assert.Equal(t, "user", ticket.AssigneeUser.Type)
	require.NotNil(t, ticket.AssigneeTeam)
	assert.Equal(t, "Support", ticket.AssigneeTeam.Name)
	require.Len(t, ticket.Tags, 1)
	assert.Equal(t, "vip", ticket.Tags[0].Name)
	assert.True(t, ticket.IsUnread)
	assert.Equal(t, "2024-03-06T08:30:00Z", ticket.LastMessageDatetime)

	// The internal shape serializes camelCase only.
	data, err := json.Marshal(ticket)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"externalId"`)
	assert.Contains(t, string(data), `"lastMessageDatetime"`)
	assert.NotContains(t, string(data), `"external_id"`)
}

func TestTicketRoundTrip(t *testing.T) {
	w := WireTicket{
		ID:       42,
		Subject:  "Where is my order?",
		Status:   "open",
		Priority: "urgent",
		Channel:  "chat",
		Customer: &WireCustomerStub{ID: 7, Email: "jo@example.com"},
		Tags:     []WireTag{{ID: 1, Name: "vip"}},
	}

	assert.Equal(t, w, MapTicket(w).Wire(), "mapping renames fields but loses nothing")
}

func TestMapMessage(t *testing.T) {
	raw := `{
		"id": 9,
		"ticket_id": 42,
		"public": false,
		"channel": "internal-note",
		"body_text": "customer called back",
		"sender": {"id": 3, "email": "agent@acme.com", "type": "user"},
		"created_datetime": "2024-03-05T10:00:00Z"
	}`
	var w WireMessage
	require.NoError(t, json.Unmarshal([]byte(raw), &w))

	msg := MapMessage(w)

	assert.Equal(t, int64(42), msg.TicketID)
	assert.False(t, msg.Public)
	assert.Equal(t, "customer called back", msg.BodyText)
	require.NotNil(t, msg.Sender)
	assert.Equal(t, "agent@acme.com", msg.Sender.Email)
	assert.Nil(t, msg.Receiver)
	assert.Equal(t, w, msg.Wire())
}

func TestMapCustomer(t *testing.T) {
	w := WireCustomer{
		ID:              7,
		ExternalID:      "shop-77",
		Email:           "jo@example.com",
		Name:            "Jo Doe",
		Language:        "en",
		CreatedDatetime: "2024-01-01T00:00:00Z",
	}

	customer := MapCustomer(w)

	assert.Equal(t, "shop-77", customer.ExternalID)
	assert.Equal(t, "Jo Doe", customer.Name)
	assert.Equal(t, w, customer.Wire())
}

func TestMapIntegrationNestedHTTP(t *testing.T) {
	w := WireIntegration{
		ID:   5,
		Name: "Order webhook",
		Type: "http",
		HTTP: &WireIntegrationHTTP{
			URL:     "https://hooks.example.com/orders",
			Method:  "POST",
			Headers: map[string]string{"Authorization": "Bearer x"},
		},
	}

	integration := MapIntegration(w)

	require.NotNil(t, integration.HTTP)
	assert.Equal(t, "https://hooks.example.com/orders", integration.HTTP.URL)
	assert.Equal(t, w, integration.Wire())

	bare := MapIntegration(WireIntegration{ID: 6, Name: "Shopify", Type: "shopify"})
	assert.Nil(t, bare.HTTP)
}

func TestPartialUpdatePayloadsDropUnsetFields(t *testing.T) {
	status := "closed"
	data, err := json.Marshal(TicketUpdate{Status: &status})
	require.NoError(t, err)
	assert.JSONEq(t, `{"status":"closed"}`, string(data), "nil pointers never reach the wire")

	data, err = json.Marshal(CustomerUpdate{})
	require.NoError(t, err)
	assert.JSONEq(t, `{}`, string(data))
}
