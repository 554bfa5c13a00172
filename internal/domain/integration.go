package domain

// IntegrationTypes is the closed set of integration kinds accepted on create.
var IntegrationTypes = []string{"http", "email-forward", "shopify", "facebook", "instagram", "twilio", "aircall"}

// WireIntegration is the integration shape received from the Gorgias API.
type WireIntegration struct {
	ID              int64                `json:"id"`
	Name            string               `json:"name"`
	Type            string               `json:"type"`
	Description     string               `json:"description,omitempty"`
	HTTP            *WireIntegrationHTTP `json:"http,omitempty"`
	CreatedDatetime string               `json:"created_datetime,omitempty"`
	UpdatedDatetime string               `json:"updated_datetime,omitempty"`
}

// WireIntegrationHTTP configures an outbound HTTP integration.
type WireIntegrationHTTP struct {
	URL     string            `json:"url"`
	Method  string            `json:"method,omitempty"`
	Headers map[string]string `json:"headers,omitempty"`
}

// Integration is the internal integration shape.
type Integration struct {
	ID              int64            `json:"id"`
	Name            string           `json:"name"`
	Type            string           `json:"type"`
	Description     string           `json:"description,omitempty"`
	HTTP            *IntegrationHTTP `json:"http,omitempty"`
	CreatedDatetime string           `json:"createdDatetime,omitempty"`
	UpdatedDatetime string           `json:"updatedDatetime,omitempty"`
}

// IntegrationHTTP is the internal shape of an HTTP integration config.
type IntegrationHTTP struct {
	URL     string            `json:"url"`
	Method  string            `json:"method,omitempty"`
	Headers map[string]string `json:"headers,omitempty"`
}

// MapIntegration converts a wire integration to the internal shape.
func MapIntegration(w WireIntegration) Integration {
	out := Integration{
		ID:              w.ID,
		Name:            w.Name,
		Type:            w.Type,
		Description:     w.Description,
		CreatedDatetime: w.CreatedDatetime,
		UpdatedDatetime: w.UpdatedDatetime,
	}
	if w.HTTP != nil {
		out.HTTP = &IntegrationHTTP{URL: w.HTTP.URL, Method: w.HTTP.Method, Headers: w.HTTP.Headers}
	}
	return out
}

// Wire converts the internal shape back to wire field names.
func (i Integration) Wire() WireIntegration {
	out := WireIntegration{
		ID:              i.ID,
		Name:            i.Name,
		Type:            i.Type,
		Description:     i.Description,
		CreatedDatetime: i.CreatedDatetime,
		UpdatedDatetime: i.UpdatedDatetime,
	}
	if i.HTTP != nil {
		out.HTTP = &WireIntegrationHTTP{URL: i.HTTP.URL, Method: i.HTTP.Method, Headers: i.HTTP.Headers}
	}
	return out
}

// IntegrationCreate is the payload for creating an integration.
type IntegrationCreate struct {
	Name        string               `json:"name"`
	Type        string               `json:"type"`
	Description string               `json:"description,omitempty"`
	HTTP        *WireIntegrationHTTP `json:"http,omitempty"`
}

// IntegrationUpdate is the partial-update payload for an integration.
type IntegrationUpdate struct {
	Name        *string              `json:"name,omitempty"`
	Description *string              `json:"description,omitempty"`
	HTTP        *WireIntegrationHTTP `json:"http,omitempty"`
}
