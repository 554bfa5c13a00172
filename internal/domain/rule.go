package domain

// WireRule is the automation-rule shape received from the Gorgias API. Code
// is the rule AST, an untyped structured payload defined by the upstream.
type WireRule struct {
	ID              int64          `json:"id"`
	Name            string         `json:"name"`
	Code            map[string]any `json:"code,omitempty"`
	Priority        int            `json:"priority,omitempty"`
	Active          bool           `json:"active"`
	CreatedDatetime string         `json:"created_datetime,omitempty"`
	UpdatedDatetime string         `json:"updated_datetime,omitempty"`
}

// Rule is the internal automation-rule shape.
type Rule struct {
	ID              int64          `json:"id"`
	Name            string         `json:"name"`
	Code            map[string]any `json:"code,omitempty"`
	Priority        int            `json:"priority,omitempty"`
	Active          bool           `json:"active"`
	CreatedDatetime string         `json:"createdDatetime,omitempty"`
	UpdatedDatetime string         `json:"updatedDatetime,omitempty"`
}

// MapRule converts a wire rule to the internal shape.
func MapRule(w WireRule) Rule {
	return Rule{
		ID:              w.ID,
		Name:            w.Name,
		Code:            w.Code,
		Priority:        w.Priority,
		Active:          w.Active,
		CreatedDatetime: w.CreatedDatetime,
		UpdatedDatetime: w.UpdatedDatetime,
	}
}

// Wire converts the internal shape back to wire field names.
func (r Rule) Wire() WireRule {
	return WireRule{
		ID:              r.ID,
		Name:            r.Name,
		Code:            r.Code,
		Priority:        r.Priority,
		Active:          r.Active,
		CreatedDatetime: r.CreatedDatetime,
		UpdatedDatetime: r.UpdatedDatetime,
	}
}

// RuleCreate is the payload for creating a rule.
type RuleCreate struct {
	Name     string         `json:"name"`
	Code     map[string]any `json:"code"`
	Priority int            `json:"priority,omitempty"`
	Active   *bool          `json:"active,omitempty"`
}

// RuleUpdate is the partial-update payload for a rule.
type RuleUpdate struct {
	Name     *string        `json:"name,omitempty"`
	Code     map[string]any `json:"code,omitempty"`
	Priority *int           `json:"priority,omitempty"`
	Active   *bool          `json:"active,omitempty"`
}
