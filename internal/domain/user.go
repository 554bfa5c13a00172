package domain

// UserRoles is the closed set of agent roles accepted on create/update.
var UserRoles = []string{"admin", "agent", "observer"}

// WireUser is the agent shape received from the Gorgias API.
type WireUser struct {
	ID                  int64  `json:"id"`
	ExternalID          string `json:"external_id,omitempty"`
	Email               string `json:"email"`
	Name                string `json:"name,omitempty"`
	Firstname           string `json:"firstname,omitempty"`
	Lastname            string `json:"lastname,omitempty"`
	Role                string `json:"role,omitempty"`
	Active              bool   `json:"active"`
	CreatedDatetime     string `json:"created_datetime,omitempty"`
	UpdatedDatetime     string `json:"updated_datetime,omitempty"`
	DeactivatedDatetime string `json:"deactivated_datetime,omitempty"`
}

// User is the internal agent shape.
type User struct {
	ID                  int64  `json:"id"`
	ExternalID          string `json:"externalId,omitempty"`
	Email               string `json:"email"`
	Name                string `json:"name,omitempty"`
	Firstname           string `json:"firstname,omitempty"`
	Lastname            string `json:"lastname,omitempty"`
	Role                string `json:"role,omitempty"`
	Active              bool   `json:"active"`
	CreatedDatetime     string `json:"createdDatetime,omitempty"`
	UpdatedDatetime     string `json:"updatedDatetime,omitempty"`
	DeactivatedDatetime string `json:"deactivatedDatetime,omitempty"`
}

// MapUser converts a wire user to the internal shape.
func MapUser(w WireUser) User {
	return User{
		ID:                  w.ID,
		ExternalID:          w.ExternalID,
		Email:               w.Email,
		Name:                w.Name,
		Firstname:           w.Firstname,
		Lastname:            w.Lastname,
		Role:                w.Role,
		Active:              w.Active,
		CreatedDatetime:     w.CreatedDatetime,
		UpdatedDatetime:     w.UpdatedDatetime,
		DeactivatedDatetime: w.DeactivatedDatetime,
	}
}

// Wire converts the internal shape back to wire field names.
func (u User) Wire() WireUser {
	return WireUser{
		ID:                  u.ID,
		ExternalID:          u.ExternalID,
		Email:               u.Email,
		Name:                u.Name,
		Firstname:           u.Firstname,
		Lastname:            u.Lastname,
		Role:                u.Role,
		Active:              u.Active,
		CreatedDatetime:     u.CreatedDatetime,
		UpdatedDatetime:     u.UpdatedDatetime,
		DeactivatedDatetime: u.DeactivatedDatetime,
	}
}

// UserCreate is the payload for creating an agent.
type UserCreate struct {
	Email     string `json:"email"`
	Firstname string `json:"firstname,omitempty"`
	Lastname  string `json:"lastname,omitempty"`
	Role      string `json:"role,omitempty"`
}

// UserUpdate is the partial-update payload for an agent.
type UserUpdate struct {
	Email     *string `json:"email,omitempty"`
	Firstname *string `json:"firstname,omitempty"`
	Lastname  *string `json:"lastname,omitempty"`
	Role      *string `json:"role,omitempty"`
	Active    *bool   `json:"active,omitempty"`
}
