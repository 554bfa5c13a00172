package domain

// Closed value sets for custom-field definitions.
var (
	CustomFieldObjectTypes = []string{"ticket", "customer"}
	CustomFieldDataTypes   = []string{"text", "number", "date", "boolean", "select", "multi-select"}
)

// WireCustomField is the custom-field definition received from the Gorgias
// API. Definition is an untyped structured payload (e.g. select choices).
type WireCustomField struct {
	ID                  int64          `json:"id"`
	ObjectType          string         `json:"object_type"`
	Label               string         `json:"label"`
	DataType            string         `json:"data_type"`
	Required            bool           `json:"required,omitempty"`
	Definition          map[string]any `json:"definition,omitempty"`
	CreatedDatetime     string         `json:"created_datetime,omitempty"`
	UpdatedDatetime     string         `json:"updated_datetime,omitempty"`
	DeactivatedDatetime string         `json:"deactivated_datetime,omitempty"`
}

// CustomField is the internal custom-field shape.
type CustomField struct {
	ID                  int64          `json:"id"`
	ObjectType          string         `json:"objectType"`
	Label               string         `json:"label"`
	DataType            string         `json:"dataType"`
	Required            bool           `json:"required,omitempty"`
	Definition          map[string]any `json:"definition,omitempty"`
	CreatedDatetime     string         `json:"createdDatetime,omitempty"`
	UpdatedDatetime     string         `json:"updatedDatetime,omitempty"`
	DeactivatedDatetime string         `json:"deactivatedDatetime,omitempty"`
}

// MapCustomField converts a wire custom field to the internal shape.
func MapCustomField(w WireCustomField) CustomField {
	return CustomField{
		ID:                  w.ID,
		ObjectType:          w.ObjectType,
		Label:               w.Label,
		DataType:            w.DataType,
		Required:            w.Required,
		Definition:          w.Definition,
		CreatedDatetime:     w.CreatedDatetime,
		UpdatedDatetime:     w.UpdatedDatetime,
		DeactivatedDatetime: w.DeactivatedDatetime,
	}
}

// Wire converts the internal shape back to wire field names.
func (c CustomField) Wire() WireCustomField {
	return WireCustomField{
		ID:                  c.ID,
		ObjectType:          c.ObjectType,
		Label:               c.Label,
		DataType:            c.DataType,
		Required:            c.Required,
		Definition:          c.Definition,
		CreatedDatetime:     c.CreatedDatetime,
		UpdatedDatetime:     c.UpdatedDatetime,
		DeactivatedDatetime: c.DeactivatedDatetime,
	}
}

// CustomFieldCreate is the payload for creating a custom field.
type CustomFieldCreate struct {
	ObjectType string         `json:"object_type"`
	Label      string         `json:"label"`
	DataType   string         `json:"data_type"`
	Required   *bool          `json:"required,omitempty"`
	Definition map[string]any `json:"definition,omitempty"`
}

// CustomFieldUpdate is the partial-update payload for a custom field.
type CustomFieldUpdate struct {
	Label      *string        `json:"label,omitempty"`
	Required   *bool          `json:"required,omitempty"`
	Definition map[string]any `json:"definition,omitempty"`
}
