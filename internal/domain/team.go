package domain

// WireTeam is the team shape received from the Gorgias API.
type WireTeam struct {
	ID              int64  `json:"id"`
	Name            string `json:"name"`
	Description     string `json:"description,omitempty"`
	Decoration      string `json:"decoration,omitempty"`
	CreatedDatetime string `json:"created_datetime,omitempty"`
	UpdatedDatetime string `json:"updated_datetime,omitempty"`
}

// Team is the internal team shape.
type Team struct {
	ID              int64  `json:"id"`
	Name            string `json:"name"`
	Description     string `json:"description,omitempty"`
	Decoration      string `json:"decoration,omitempty"`
	CreatedDatetime string `json:"createdDatetime,omitempty"`
	UpdatedDatetime string `json:"updatedDatetime,omitempty"`
}

// MapTeam converts a wire team to the internal shape.
func MapTeam(w WireTeam) Team {
	return Team{
		ID:              w.ID,
		Name:            w.Name,
		Description:     w.Description,
		Decoration:      w.Decoration,
		CreatedDatetime: w.CreatedDatetime,
		UpdatedDatetime: w.UpdatedDatetime,
	}
}

// Wire converts the internal shape back to wire field names.
func (t Team) Wire() WireTeam {
	return WireTeam{
		ID:              t.ID,
		Name:            t.Name,
		Description:     t.Description,
		Decoration:      t.Decoration,
		CreatedDatetime: t.CreatedDatetime,
		UpdatedDatetime: t.UpdatedDatetime,
	}
}

// TeamCreate is the payload for creating a team.
type TeamCreate struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Decoration  string `json:"decoration,omitempty"`
}

// TeamUpdate is the partial-update payload for a team.
type TeamUpdate struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	Decoration  *string `json:"decoration,omitempty"`
}
