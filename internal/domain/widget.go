package domain

// WireWidget is the widget shape received from the Gorgias API.
type WireWidget struct {
	ID              int64          `json:"id"`
	Type            string         `json:"type"`
	Context         string         `json:"context,omitempty"`
	Definition      map[string]any `json:"definition,omitempty"`
	CreatedDatetime string         `json:"created_datetime,omitempty"`
	UpdatedDatetime string         `json:"updated_datetime,omitempty"`
}

// Widget is the internal widget shape.
type Widget struct {
	ID              int64          `json:"id"`
	Type            string         `json:"type"`
	Context         string         `json:"context,omitempty"`
	Definition      map[string]any `json:"definition,omitempty"`
	CreatedDatetime string         `json:"createdDatetime,omitempty"`
	UpdatedDatetime string         `json:"updatedDatetime,omitempty"`
}

// MapWidget converts a wire widget to the internal shape.
func MapWidget(w WireWidget) Widget {
	return Widget{
		ID:              w.ID,
		Type:            w.Type,
		Context:         w.Context,
		Definition:      w.Definition,
		CreatedDatetime: w.CreatedDatetime,
		UpdatedDatetime: w.UpdatedDatetime,
	}
}

// Wire converts the internal shape back to wire field names.
func (w Widget) Wire() WireWidget {
	return WireWidget{
		ID:              w.ID,
		Type:            w.Type,
		Context:         w.Context,
		Definition:      w.Definition,
		CreatedDatetime: w.CreatedDatetime,
		UpdatedDatetime: w.UpdatedDatetime,
	}
}

// WidgetCreate is the payload for creating a widget.
type WidgetCreate struct {
	Type       string         `json:"type"`
	Context    string         `json:"context,omitempty"`
	Definition map[string]any `json:"definition,omitempty"`
}

// WidgetUpdate is the partial-update payload for a widget.
type WidgetUpdate struct {
	Context    *string        `json:"context,omitempty"`
	Definition map[string]any `json:"definition,omitempty"`
}
