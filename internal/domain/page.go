package domain

// Pagination bounds applied to every list operation. The environment can
// override the defaults; these are the hard-coded fallbacks.
const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// Page is one page of a cursor-paginated result set. An empty NextCursor
// means end of stream. Items is never nil for a successful page.
type Page[T any] struct {
	Items      []T    `json:"items"`
	NextCursor string `json:"nextCursor,omitempty"`
}

// ListOptions carries the caller-supplied pagination knobs forwarded to list
// operations. Cursor is an opaque upstream token forwarded verbatim.
type ListOptions struct {
	Limit   int
	Cursor  string
	OrderBy string
}

// ClampLimit normalizes a requested page size into [1, max]. Zero and
// negative requests fall back to the default size.
func ClampLimit(requested, def, max int) int {
	if def <= 0 {
		def = DefaultPageSize
	}
	if max <= 0 {
		max = MaxPageSize
	}
	if requested <= 0 {
		return def
	}
	if requested > max {
		return max
	}
	return requested
}
