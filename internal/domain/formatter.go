package domain

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"
	"unicode/utf8"
)

// Format selects how a successful tool result is rendered.
type Format string

const (
	// FormatJSON serializes the internal-shape result verbatim.
	FormatJSON Format = "json"
	// FormatTable renders a lossy human-readable table.
	FormatTable Format = "table"
)

// Formats lists the accepted values for the format tool argument.
var Formats = []string{string(FormatJSON), string(FormatTable)}

// ResultKind tags the shape of a tool result so the formatter never has to
// probe values at runtime.
type ResultKind int

const (
	// ResultSingle is one entity.
	ResultSingle ResultKind = iota
	// ResultList is a plain slice of entities with no cursor.
	ResultList
	// ResultPaginated is a page of entities plus an optional next cursor.
	ResultPaginated
)

// Result is the tagged value handed to the formatter by tool handlers.
type Result struct {
	Kind ResultKind
	// Entity names the entity kind for table column selection, e.g. "ticket".
	Entity string
	// Value is the single entity for ResultSingle.
	Value any
	// Items are the entities for ResultList and ResultPaginated.
	Items []any
	// NextCursor is the continuation token for ResultPaginated.
	NextCursor string
}

// Single wraps one entity in a tagged result.
func Single(entity string, v any) Result {
	return Result{Kind: ResultSingle, Entity: entity, Value: v}
}

// List wraps a plain slice in a tagged result. Use Paginated for cursor
// pages.
func List(entity string, items []any) Result {
	return Result{Kind: ResultList, Entity: entity, Items: items}
}

// Paginated wraps one page in a tagged result.
func Paginated(entity string, items []any, nextCursor string) Result {
	return Result{Kind: ResultPaginated, Entity: entity, Items: items, NextCursor: nextCursor}
}

// PageResult converts a typed page into a tagged result.
func PageResult[T any](entity string, p Page[T]) Result {
	items := make([]any, 0, len(p.Items))
	for _, it := range p.Items {
		items = append(items, it)
	}
	return Paginated(entity, items, p.NextCursor)
}

const (
	// cellBudget is the character budget for one table cell before
	// truncation.
	cellBudget = 60
	// fallbackColumnCap bounds the generic key-derived column set.
	fallbackColumnCap = 5
)

// tableColumns maps an entity kind to its fixed column set. Columns name
// camelCase fields of the internal shape.
var tableColumns = map[string][]string{
	"ticket":      {"id", "subject", "status", "priority", "channel", "createdDatetime"},
	"message":     {"id", "ticketId", "channel", "public", "bodyText", "createdDatetime"},
	"customer":    {"id", "email", "name", "language", "createdDatetime"},
	"user":        {"id", "email", "name", "role", "active"},
	"team":        {"id", "name", "description", "createdDatetime"},
	"tag":         {"id", "name", "usage", "createdDatetime"},
	"macro":       {"id", "name", "intention", "uses"},
	"rule":        {"id", "name", "priority", "active"},
	"integration": {"id", "name", "type", "createdDatetime"},
	"view":        {"id", "name", "visibility", "orderBy"},
	"survey":      {"id", "ticketId", "score", "scoredDatetime"},
	"customField": {"id", "objectType", "label", "dataType", "required"},
	"event":       {"id", "type", "objectType", "objectId", "createdDatetime"},
	"job":         {"id", "type", "status", "createdDatetime"},
	"widget":      {"id", "type", "context", "createdDatetime"},
}

// Formatter renders tool results as text. It is pure and never fails: any
// serializable value plus a format flag yields renderable text.
type Formatter struct {
	// CharLimit bounds the total rendered output; zero means unlimited.
	CharLimit int
}

// Render produces the textual payload for a tool result envelope.
func (f Formatter) Render(r Result, format Format) string {
	var out string
	switch format {
	case FormatTable:
		out = f.renderTable(r)
	default:
		out = f.renderJSON(r)
	}
	if f.CharLimit > 0 && len(out) > f.CharLimit {
		out = truncate(out, f.CharLimit) + "\n… (response truncated)"
	}
	return out
}

func (f Formatter) renderJSON(r Result) string {
	var v any
	switch r.Kind {
	case ResultSingle:
		v = r.Value
	case ResultList:
		v = map[string]any{"items": nonNil(r.Items)}
	case ResultPaginated:
		page := map[string]any{"items": nonNil(r.Items)}
		if r.NextCursor != "" {
			page["nextCursor"] = r.NextCursor
		}
		v = page
	}
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Sprintf("%v", v)
	}
	return string(data)
}

func (f Formatter) renderTable(r Result) string {
	switch r.Kind {
	case ResultSingle:
		return f.renderDetail(r.Value)
	default:
		var b strings.Builder
		b.WriteString(f.renderRows(r.Entity, r.Items))
		if r.Kind == ResultPaginated && r.NextCursor != "" {
			fmt.Fprintf(&b, "\nNext cursor: %s\n", r.NextCursor)
		}
		return b.String()
	}
}

// renderRows renders a markdown table from the fixed column set for the
// entity kind, falling back to key-derived columns for unknown kinds. The
// rendering is deliberately lossy.
func (f Formatter) renderRows(entity string, items []any) string {
	if len(items) == 0 {
		return "No results.\n"
	}

	rows := make([]map[string]any, 0, len(items))
	for _, it := range items {
		rows = append(rows, toFieldMap(it))
	}

	columns, ok := tableColumns[entity]
	if !ok {
		columns = fallbackColumns(rows[0])
	}

	var b strings.Builder
	b.WriteString("| " + strings.Join(columns, " | ") + " |\n")
	b.WriteString("|" + strings.Repeat(" --- |", len(columns)) + "\n")
	for _, row := range rows {
		cells := make([]string, 0, len(columns))
		for _, col := range columns {
			cells = append(cells, renderCell(row[col]))
		}
		b.WriteString("| " + strings.Join(cells, " | ") + " |\n")
	}
	return b.String()
}

// renderDetail renders a single entity as a field list. Nested objects and
// arrays go into a labeled fenced code block instead of being flattened.
func (f Formatter) renderDetail(v any) string {
	fields := toFieldMap(v)
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	var nested []string
	for _, k := range keys {
		val := fields[k]
		switch val.(type) {
		case map[string]any, []any:
			nested = append(nested, k)
		default:
			fmt.Fprintf(&b, "%s: %s\n", k, renderCell(val))
		}
	}
	for _, k := range nested {
		data, err := json.MarshalIndent(fields[k], "", "  ")
		if err != nil {
			continue
		}
		fmt.Fprintf(&b, "\n%s:\n```json\n%s\n```\n", k, string(data))
	}
	return b.String()
}

// renderCell formats one table cell: timestamps become calendar dates, long
// text is truncated with an ellipsis.
func renderCell(v any) string {
	if v == nil {
		return ""
	}
	s := fmt.Sprintf("%v", v)
	if str, ok := v.(string); ok {
		if ts, err := time.Parse(time.RFC3339, str); err == nil {
			return ts.Format("2006-01-02")
		}
		s = str
	}
	s = strings.ReplaceAll(s, "\n", " ")
	s = strings.ReplaceAll(s, "|", "\\|")
	if len(s) > cellBudget {
		return truncate(s, cellBudget) + "…"
	}
	return s
}

// truncate cuts s to at most n bytes without splitting a rune, so the
// output stays valid UTF-8.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n]
}

// toFieldMap flattens an entity into its JSON field map. Entities are plain
// structs with json tags, so a marshal round trip is the canonical view.
func toFieldMap(v any) map[string]any {
	if m, ok := v.(map[string]any); ok {
		return m
	}
	data, err := json.Marshal(v)
	if err != nil {
		return map[string]any{"value": fmt.Sprintf("%v", v)}
	}
	var m map[string]any
	if err := json.Unmarshal(data, &m); err != nil {
		return map[string]any{"value": string(data)}
	}
	return m
}

// fallbackColumns derives a capped, deterministic column set from the first
// item's own keys, id first.
func fallbackColumns(row map[string]any) []string {
	keys := make([]string, 0, len(row))
	for k := range row {
		if k == "id" {
			continue
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)
	columns := []string{}
	if _, ok := row["id"]; ok {
		columns = append(columns, "id")
	}
	for _, k := range keys {
		if len(columns) >= fallbackColumnCap {
			break
		}
		columns = append(columns, k)
	}
	return columns
}

func nonNil(items []any) []any {
	if items == nil {
		return []any{}
	}
	return items
}
