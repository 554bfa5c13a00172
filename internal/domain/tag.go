package domain

// WireTag is the tag shape received from the Gorgias API.
type WireTag struct {
	ID              int64  `json:"id"`
	Name            string `json:"name"`
	Description     string `json:"description,omitempty"`
	Usage           int    `json:"usage,omitempty"`
	CreatedDatetime string `json:"created_datetime,omitempty"`
}

// Tag is the internal tag shape.
type Tag struct {
	ID              int64  `json:"id"`
	Name            string `json:"name"`
	Description     string `json:"description,omitempty"`
	Usage           int    `json:"usage,omitempty"`
	CreatedDatetime string `json:"createdDatetime,omitempty"`
}

// MapTag converts a wire tag to the internal shape.
func MapTag(w WireTag) Tag {
	return Tag{
		ID:              w.ID,
		Name:            w.Name,
		Description:     w.Description,
		Usage:           w.Usage,
		CreatedDatetime: w.CreatedDatetime,
	}
}

// Wire converts the internal shape back to wire field names.
func (t Tag) Wire() WireTag {
	return WireTag{
		ID:              t.ID,
		Name:            t.Name,
		Description:     t.Description,
		Usage:           t.Usage,
		CreatedDatetime: t.CreatedDatetime,
	}
}

// TagCreate is the payload for creating a tag.
type TagCreate struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// TagUpdate is the partial-update payload for a tag.
type TagUpdate struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
}

// TagMerge collapses the source tags into the target tag; the surviving
// target record is returned by the upstream.
type TagMerge struct {
	TargetID  int64   `json:"target_id"`
	SourceIDs []int64 `json:"source_ids"`
}
