package domain

// WireCustomer is the customer shape received from the Gorgias API.
type WireCustomer struct {
	ID              int64  `json:"id"`
	ExternalID      string `json:"external_id,omitempty"`
	Email           string `json:"email,omitempty"`
	Name            string `json:"name,omitempty"`
	Firstname       string `json:"firstname,omitempty"`
	Lastname        string `json:"lastname,omitempty"`
	Language        string `json:"language,omitempty"`
	Timezone        string `json:"timezone,omitempty"`
	Note            string `json:"note,omitempty"`
	CreatedDatetime string `json:"created_datetime,omitempty"`
	UpdatedDatetime string `json:"updated_datetime,omitempty"`
}

// Customer is the internal customer shape.
type Customer struct {
	ID              int64  `json:"id"`
	ExternalID      string `json:"externalId,omitempty"`
	Email           string `json:"email,omitempty"`
	Name            string `json:"name,omitempty"`
	Firstname       string `json:"firstname,omitempty"`
	Lastname        string `json:"lastname,omitempty"`
	Language        string `json:"language,omitempty"`
	Timezone        string `json:"timezone,omitempty"`
	Note            string `json:"note,omitempty"`
	CreatedDatetime string `json:"createdDatetime,omitempty"`
	UpdatedDatetime string `json:"updatedDatetime,omitempty"`
}

// MapCustomer converts a wire customer to the internal shape.
func MapCustomer(w WireCustomer) Customer {
	return Customer{
		ID:              w.ID,
		ExternalID:      w.ExternalID,
		Email:           w.Email,
		Name:            w.Name,
		Firstname:       w.Firstname,
		Lastname:        w.Lastname,
		Language:        w.Language,
		Timezone:        w.Timezone,
		Note:            w.Note,
		CreatedDatetime: w.CreatedDatetime,
		UpdatedDatetime: w.UpdatedDatetime,
	}
}

// Wire converts the internal shape back to wire field names.
func (c Customer) Wire() WireCustomer {
	return WireCustomer{
		ID:              c.ID,
		ExternalID:      c.ExternalID,
		Email:           c.Email,
		Name:            c.Name,
		Firstname:       c.Firstname,
		Lastname:        c.Lastname,
		Language:        c.Language,
		Timezone:        c.Timezone,
		Note:            c.Note,
		CreatedDatetime: c.CreatedDatetime,
		UpdatedDatetime: c.UpdatedDatetime,
	}
}

// CustomerCreate is the payload for creating a customer.
type CustomerCreate struct {
	Email      string `json:"email"`
	Name       string `json:"name,omitempty"`
	Firstname  string `json:"firstname,omitempty"`
	Lastname   string `json:"lastname,omitempty"`
	Language   string `json:"language,omitempty"`
	Timezone   string `json:"timezone,omitempty"`
	ExternalID string `json:"external_id,omitempty"`
	Note       string `json:"note,omitempty"`
}

// CustomerUpdate is the partial-update payload for a customer.
type CustomerUpdate struct {
	Email      *string `json:"email,omitempty"`
	Name       *string `json:"name,omitempty"`
	Firstname  *string `json:"firstname,omitempty"`
	Lastname   *string `json:"lastname,omitempty"`
	Language   *string `json:"language,omitempty"`
	Timezone   *string `json:"timezone,omitempty"`
	ExternalID *string `json:"external_id,omitempty"`
	Note       *string `json:"note,omitempty"`
}

// CustomerMerge collapses the source customers into the target; the surviving
// target record is returned by the upstream.
type CustomerMerge struct {
	TargetID  int64   `json:"target_id"`
	SourceIDs []int64 `json:"source_ids"`
}
