package domain

// WireMacro is the macro shape received from the Gorgias API. Actions is an
// untyped structured payload; the upstream defines its element schema.
type WireMacro struct {
	ID              int64            `json:"id"`
	Name            string           `json:"name"`
	Intention       string           `json:"intention,omitempty"`
	Actions         []map[string]any `json:"actions,omitempty"`
	Uses            int              `json:"uses,omitempty"`
	CreatedDatetime string           `json:"created_datetime,omitempty"`
	UpdatedDatetime string           `json:"updated_datetime,omitempty"`
}

// Macro is the internal macro shape.
type Macro struct {
	ID              int64            `json:"id"`
	Name            string           `json:"name"`
	Intention       string           `json:"intention,omitempty"`
	Actions         []map[string]any `json:"actions,omitempty"`
	Uses            int              `json:"uses,omitempty"`
	CreatedDatetime string           `json:"createdDatetime,omitempty"`
	UpdatedDatetime string           `json:"updatedDatetime,omitempty"`
}

// MapMacro converts a wire macro to the internal shape.
func MapMacro(w WireMacro) Macro {
	return Macro{
		ID:              w.ID,
		Name:            w.Name,
		Intention:       w.Intention,
		Actions:         w.Actions,
		Uses:            w.Uses,
		CreatedDatetime: w.CreatedDatetime,
		UpdatedDatetime: w.UpdatedDatetime,
	}
}

// Wire converts the internal shape back to wire field names.
func (m Macro) Wire() WireMacro {
	return WireMacro{
		ID:              m.ID,
		Name:            m.Name,
		Intention:       m.Intention,
		Actions:         m.Actions,
		Uses:            m.Uses,
		CreatedDatetime: m.CreatedDatetime,
		UpdatedDatetime: m.UpdatedDatetime,
	}
}

// MacroCreate is the payload for creating a macro.
type MacroCreate struct {
	Name      string           `json:"name"`
	Intention string           `json:"intention,omitempty"`
	Actions   []map[string]any `json:"actions"`
}

// MacroUpdate is the partial-update payload for a macro.
type MacroUpdate struct {
	Name      *string          `json:"name,omitempty"`
	Intention *string          `json:"intention,omitempty"`
	Actions   []map[string]any `json:"actions,omitempty"`
}
