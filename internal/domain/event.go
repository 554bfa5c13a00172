package domain

// EventObjectTypes is the closed set of audit-event subjects.
var EventObjectTypes = []string{"ticket", "message", "customer", "user", "integration", "rule", "macro"}

// WireEvent is the audit-event shape received from the Gorgias API. Events
// are read-only upstream records.
type WireEvent struct {
	ID              int64          `json:"id"`
	Type            string         `json:"type"`
	ObjectType      string         `json:"object_type,omitempty"`
	ObjectID        int64          `json:"object_id,omitempty"`
	UserID          int64          `json:"user_id,omitempty"`
	Context         string         `json:"context,omitempty"`
	Data            map[string]any `json:"data,omitempty"`
	CreatedDatetime string         `json:"created_datetime,omitempty"`
}

// Event is the internal audit-event shape.
type Event struct {
	ID              int64          `json:"id"`
	Type            string         `json:"type"`
	ObjectType      string         `json:"objectType,omitempty"`
	ObjectID        int64          `json:"objectId,omitempty"`
	UserID          int64          `json:"userId,omitempty"`
	Context         string         `json:"context,omitempty"`
	Data            map[string]any `json:"data,omitempty"`
	CreatedDatetime string         `json:"createdDatetime,omitempty"`
}

// MapEvent converts a wire event to the internal shape.
func MapEvent(w WireEvent) Event {
	return Event{
		ID:              w.ID,
		Type:            w.Type,
		ObjectType:      w.ObjectType,
		ObjectID:        w.ObjectID,
		UserID:          w.UserID,
		Context:         w.Context,
		Data:            w.Data,
		CreatedDatetime: w.CreatedDatetime,
	}
}

// Wire converts the internal shape back to wire field names.
func (e Event) Wire() WireEvent {
	return WireEvent{
		ID:              e.ID,
		Type:            e.Type,
		ObjectType:      e.ObjectType,
		ObjectID:        e.ObjectID,
		UserID:          e.UserID,
		Context:         e.Context,
		Data:            e.Data,
		CreatedDatetime: e.CreatedDatetime,
	}
}
