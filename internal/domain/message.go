package domain

// WireMessage is the message shape received from the Gorgias API.
type WireMessage struct {
	ID              int64          `json:"id"`
	TicketID        int64          `json:"ticket_id"`
	ExternalID      string         `json:"external_id,omitempty"`
	Public          bool           `json:"public"`
	Channel         string         `json:"channel"`
	Via             string         `json:"via,omitempty"`
	Subject         string         `json:"subject,omitempty"`
	BodyText        string         `json:"body_text,omitempty"`
	BodyHTML        string         `json:"body_html,omitempty"`
	Sender          *WireActorStub `json:"sender,omitempty"`
	Receiver        *WireActorStub `json:"receiver,omitempty"`
	CreatedDatetime string         `json:"created_datetime,omitempty"`
	SentDatetime    string         `json:"sent_datetime,omitempty"`
	FailedDatetime  string         `json:"failed_datetime,omitempty"`
}

// Message is the internal message shape.
type Message struct {
	ID              int64      `json:"id"`
	TicketID        int64      `json:"ticketId"`
	ExternalID      string     `json:"externalId,omitempty"`
	Public          bool       `json:"public"`
	Channel         string     `json:"channel"`
	Via             string     `json:"via,omitempty"`
	Subject         string     `json:"subject,omitempty"`
	BodyText        string     `json:"bodyText,omitempty"`
	BodyHTML        string     `json:"bodyHtml,omitempty"`
	Sender          *ActorStub `json:"sender,omitempty"`
	Receiver        *ActorStub `json:"receiver,omitempty"`
	CreatedDatetime string     `json:"createdDatetime,omitempty"`
	SentDatetime    string     `json:"sentDatetime,omitempty"`
	FailedDatetime  string     `json:"failedDatetime,omitempty"`
}

// MapMessage converts a wire message to the internal shape.
func MapMessage(w WireMessage) Message {
	return Message{
		ID:              w.ID,
		TicketID:        w.TicketID,
		ExternalID:      w.ExternalID,
		Public:          w.Public,
		Channel:         w.Channel,
		Via:             w.Via,
		Subject:         w.Subject,
		BodyText:        w.BodyText,
		BodyHTML:        w.BodyHTML,
		Sender:          mapActorStub(w.Sender),
		Receiver:        mapActorStub(w.Receiver),
		CreatedDatetime: w.CreatedDatetime,
		SentDatetime:    w.SentDatetime,
		FailedDatetime:  w.FailedDatetime,
	}
}

// Wire converts the internal shape back to wire field names.
func (m Message) Wire() WireMessage {
	return WireMessage{
		ID:              m.ID,
		TicketID:        m.TicketID,
		ExternalID:      m.ExternalID,
		Public:          m.Public,
		Channel:         m.Channel,
		Via:             m.Via,
		Subject:         m.Subject,
		BodyText:        m.BodyText,
		BodyHTML:        m.BodyHTML,
		Sender:          wireActorStub(m.Sender),
		Receiver:        wireActorStub(m.Receiver),
		CreatedDatetime: m.CreatedDatetime,
		SentDatetime:    m.SentDatetime,
		FailedDatetime:  m.FailedDatetime,
	}
}

// MessageCreate is the payload for adding a message to a ticket, and for the
// initial message bundled into ticket creation.
type MessageCreate struct {
	Channel  string         `json:"channel"`
	Via      string         `json:"via,omitempty"`
	Public   *bool          `json:"public,omitempty"`
	Subject  string         `json:"subject,omitempty"`
	BodyText string         `json:"body_text,omitempty"`
	BodyHTML string         `json:"body_html,omitempty"`
	Sender   *WireActorStub `json:"sender,omitempty"`
	Receiver *WireActorStub `json:"receiver,omitempty"`
}
