package domain

// Closed value sets accepted for ticket fields. The upstream rejects other
// values, so handlers enforce them before any network call.
var (
	TicketStatuses   = []string{"open", "closed"}
	TicketPriorities = []string{"low", "normal", "high", "urgent"}
	TicketChannels   = []string{"email", "chat", "phone", "sms", "api", "help-center", "facebook", "instagram", "twitter", "internal-note"}
)

// WireTicket is the ticket shape received from the Gorgias API.
type WireTicket struct {
	ID                  int64             `json:"id"`
	ExternalID          string            `json:"external_id,omitempty"`
	Subject             string            `json:"subject,omitempty"`
	Status              string            `json:"status"`
	Priority            string            `json:"priority,omitempty"`
	Channel             string            `json:"channel"`
	Via                 string            `json:"via,omitempty"`
	Language            string            `json:"language,omitempty"`
	Customer            *WireCustomerStub `json:"customer,omitempty"`
	AssigneeUser        *WireActorStub    `json:"assignee_user,omitempty"`
	AssigneeTeam        *WireTeamStub     `json:"assignee_team,omitempty"`
	Tags                []WireTag         `json:"tags,omitempty"`
	IsUnread            bool              `json:"is_unread"`
	Spam                bool              `json:"spam"`
	CreatedDatetime     string            `json:"created_datetime,omitempty"`
	UpdatedDatetime     string            `json:"updated_datetime,omitempty"`
	LastMessageDatetime string            `json:"last_message_datetime,omitempty"`
	ClosedDatetime      string            `json:"closed_datetime,omitempty"`
}

// Ticket is the internal ticket shape used everywhere outside the wire
// boundary.
type Ticket struct {
	ID                  int64         `json:"id"`
	ExternalID          string        `json:"externalId,omitempty"`
	Subject             string        `json:"subject,omitempty"`
	Status              string        `json:"status"`
	Priority            string        `json:"priority,omitempty"`
	Channel             string        `json:"channel"`
	Via                 string        `json:"via,omitempty"`
	Language            string        `json:"language,omitempty"`
	Customer            *CustomerStub `json:"customer,omitempty"`
	AssigneeUser        *ActorStub    `json:"assigneeUser,omitempty"`
	AssigneeTeam        *TeamStub     `json:"assigneeTeam,omitempty"`
	Tags                []Tag         `json:"tags,omitempty"`
	IsUnread            bool          `json:"isUnread"`
	Spam                bool          `json:"spam"`
	CreatedDatetime     string        `json:"createdDatetime,omitempty"`
	UpdatedDatetime     string        `json:"updatedDatetime,omitempty"`
	LastMessageDatetime string        `json:"lastMessageDatetime,omitempty"`
	ClosedDatetime      string        `json:"closedDatetime,omitempty"`
}

// MapTicket converts a wire ticket to the internal shape. Pure; every
// response is re-mapped from scratch.
func MapTicket(w WireTicket) Ticket {
	tags := make([]Tag, 0, len(w.Tags))
	for _, t := range w.Tags {
		tags = append(tags, MapTag(t))
	}
	if len(tags) == 0 {
		tags = nil
	}
	return Ticket{
		ID:                  w.ID,
		ExternalID:          w.ExternalID,
		Subject:             w.Subject,
		Status:              w.Status,
		Priority:            w.Priority,
		Channel:             w.Channel,
		Via:                 w.Via,
		Language:            w.Language,
		Customer:            mapCustomerStub(w.Customer),
		AssigneeUser:        mapActorStub(w.AssigneeUser),
		AssigneeTeam:        mapTeamStub(w.AssigneeTeam),
		Tags:                tags,
		IsUnread:            w.IsUnread,
		Spam:                w.Spam,
		CreatedDatetime:     w.CreatedDatetime,
		UpdatedDatetime:     w.UpdatedDatetime,
		LastMessageDatetime: w.LastMessageDatetime,
		ClosedDatetime:      w.ClosedDatetime,
	}
}

// Wire converts the internal shape back to wire field names. The conversion
// renames fields but never invents them.
func (t Ticket) Wire() WireTicket {
	var tags []WireTag
	for _, tag := range t.Tags {
		tags = append(tags, tag.Wire())
	}
	return WireTicket{
		ID:                  t.ID,
		ExternalID:          t.ExternalID,
		Subject:             t.Subject,
		Status:              t.Status,
		Priority:            t.Priority,
		Channel:             t.Channel,
		Via:                 t.Via,
		Language:            t.Language,
		Customer:            wireCustomerStub(t.Customer),
		AssigneeUser:        wireActorStub(t.AssigneeUser),
		AssigneeTeam:        wireTeamStub(t.AssigneeTeam),
		Tags:                tags,
		IsUnread:            t.IsUnread,
		Spam:                t.Spam,
		CreatedDatetime:     t.CreatedDatetime,
		UpdatedDatetime:     t.UpdatedDatetime,
		LastMessageDatetime: t.LastMessageDatetime,
		ClosedDatetime:      t.ClosedDatetime,
	}
}

// TicketCreate is the payload for creating a ticket. Ticket creation bundles
// the initial message in the same upstream call.
type TicketCreate struct {
	Subject      string            `json:"subject,omitempty"`
	Status       string            `json:"status,omitempty"`
	Priority     string            `json:"priority,omitempty"`
	Channel      string            `json:"channel"`
	Via          string            `json:"via,omitempty"`
	Customer     *WireCustomerStub `json:"customer,omitempty"`
	AssigneeUser *WireActorStub    `json:"assignee_user,omitempty"`
	Tags         []TagRef          `json:"tags,omitempty"`
	Messages     []MessageCreate   `json:"messages,omitempty"`
}

// TicketUpdate is the partial-update payload. Nil pointers are dropped from
// the serialized body so unset fields never clobber upstream state.
type TicketUpdate struct {
	Subject        *string `json:"subject,omitempty"`
	Status         *string `json:"status,omitempty"`
	Priority       *string `json:"priority,omitempty"`
	Language       *string `json:"language,omitempty"`
	AssigneeUserID *int64  `json:"assignee_user_id,omitempty"`
	AssigneeTeamID *int64  `json:"assignee_team_id,omitempty"`
}

// TagRef references a tag by name in ticket payloads.
type TagRef struct {
	Name string `json:"name"`
}
