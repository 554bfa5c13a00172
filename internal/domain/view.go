package domain

// ViewVisibilities is the closed set of view sharing modes.
var ViewVisibilities = []string{"public", "private", "shared"}

// WireView is the view shape received from the Gorgias API.
type WireView struct {
	ID              int64  `json:"id"`
	Name            string `json:"name,omitempty"`
	Slug            string `json:"slug,omitempty"`
	Type            string `json:"type,omitempty"`
	Visibility      string `json:"visibility,omitempty"`
	Filters         string `json:"filters,omitempty"`
	OrderBy         string `json:"order_by,omitempty"`
	OrderDir        string `json:"order_dir,omitempty"`
	CreatedDatetime string `json:"created_datetime,omitempty"`
	UpdatedDatetime string `json:"updated_datetime,omitempty"`
}

// View is the internal view shape.
type View struct {
	ID              int64  `json:"id"`
	Name            string `json:"name,omitempty"`
	Slug            string `json:"slug,omitempty"`
	Type            string `json:"type,omitempty"`
	Visibility      string `json:"visibility,omitempty"`
	Filters         string `json:"filters,omitempty"`
	OrderBy         string `json:"orderBy,omitempty"`
	OrderDir        string `json:"orderDir,omitempty"`
	CreatedDatetime string `json:"createdDatetime,omitempty"`
	UpdatedDatetime string `json:"updatedDatetime,omitempty"`
}

// MapView converts a wire view to the internal shape.
func MapView(w WireView) View {
	return View{
		ID:              w.ID,
		Name:            w.Name,
		Slug:            w.Slug,
		Type:            w.Type,
		Visibility:      w.Visibility,
		Filters:         w.Filters,
		OrderBy:         w.OrderBy,
		OrderDir:        w.OrderDir,
		CreatedDatetime: w.CreatedDatetime,
		UpdatedDatetime: w.UpdatedDatetime,
	}
}

// Wire converts the internal shape back to wire field names.
func (v View) Wire() WireView {
	return WireView{
		ID:              v.ID,
		Name:            v.Name,
		Slug:            v.Slug,
		Type:            v.Type,
		Visibility:      v.Visibility,
		Filters:         v.Filters,
		OrderBy:         v.OrderBy,
		OrderDir:        v.OrderDir,
		CreatedDatetime: v.CreatedDatetime,
		UpdatedDatetime: v.UpdatedDatetime,
	}
}

// ViewCreate is the payload for creating a view.
type ViewCreate struct {
	Name       string `json:"name"`
	Visibility string `json:"visibility,omitempty"`
	Filters    string `json:"filters,omitempty"`
	OrderBy    string `json:"order_by,omitempty"`
	OrderDir   string `json:"order_dir,omitempty"`
}

// ViewUpdate is the partial-update payload for a view.
type ViewUpdate struct {
	Name       *string `json:"name,omitempty"`
	Visibility *string `json:"visibility,omitempty"`
	Filters    *string `json:"filters,omitempty"`
	OrderBy    *string `json:"order_by,omitempty"`
	OrderDir   *string `json:"order_dir,omitempty"`
}
